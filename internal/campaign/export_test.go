// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/goccy/go-json"

	"github.com/klawrence/brandgen/internal/dataset"
	"github.com/klawrence/brandgen/internal/models"
)

func TestExport(t *testing.T) {
	m := newTestManager(t, nil)

	c, _ := m.Create(validConfig(), dataset.GenerateSample(60, 42))
	if _, err := m.AnalyzeAudience(c.ID, nil, 2); err != nil {
		t.Fatalf("AnalyzeAudience() error = %v", err)
	}
	if _, err := m.AnalyzePerformance(c.ID, nil); err != nil {
		t.Fatalf("AnalyzePerformance() error = %v", err)
	}

	files, err := m.Export(c.ID)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	for _, artifact := range []string{"summary", "segments", "performance"} {
		path, ok := files[artifact]
		if !ok {
			t.Errorf("missing %s export", artifact)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("reading %s export: %v", artifact, err)
			continue
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Errorf("%s export is not valid JSON: %v", artifact, err)
		}
	}
}

func TestExport_OmitsAbsentArtifacts(t *testing.T) {
	m := newTestManager(t, nil)

	// Fresh campaign: no segmentation, no performance report.
	c, _ := m.Create(validConfig(), nil)

	files, err := m.Export(c.ID)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if _, ok := files["summary"]; !ok {
		t.Error("summary export missing")
	}
	if _, ok := files["segments"]; ok {
		t.Error("segments exported without analysis")
	}
	if _, ok := files["performance"]; ok {
		t.Error("performance exported without a report")
	}
}

func TestExportDashboardCSV(t *testing.T) {
	m := newTestManager(t, nil)

	c, _ := m.Create(validConfig(), nil)
	if _, err := m.AnalyzePerformance(c.ID, &models.PerformanceData{
		TotalImpressions: 10000,
		TotalClicks:      200,
		TotalConversions: 10,
		TotalEngagements: 300,
		TotalSpend:       500,
		TotalRevenue:     2000,
	}); err != nil {
		t.Fatalf("AnalyzePerformance() error = %v", err)
	}

	path, err := m.ExportDashboardCSV()
	if err != nil {
		t.Fatalf("ExportDashboardCSV() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 campaign", len(rows))
	}

	header := rows[0]
	if header[0] != "campaign_id" || header[len(header)-1] != "return_on_ad_spend" {
		t.Errorf("header = %v", header)
	}

	row := rows[1]
	if row[0] != c.ID || row[1] != "Summer Launch" {
		t.Errorf("row = %v", row)
	}
	// ROAS column: 2000/500*100 = 400.
	if row[len(row)-1] != "400" {
		t.Errorf("roas column = %q, want 400", row[len(row)-1])
	}
}
