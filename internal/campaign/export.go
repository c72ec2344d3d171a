// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/klawrence/brandgen/internal/dataset"
	"github.com/klawrence/brandgen/internal/models"
)

// Export writes a campaign's summary, segments and performance report
// as indented JSON files under the manager's export directory and
// returns the written paths keyed by artifact name. Segments and
// performance files are only written when the campaign has them.
func (m *Manager) Export(id string) (map[string]string, error) {
	c, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}
	summary, err := m.Summary(id)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(m.cfg.ExportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	exported := make(map[string]string)

	summaryPath := filepath.Join(m.cfg.ExportsDir, c.ID+"_summary.json")
	if err := writeJSON(summaryPath, summary); err != nil {
		return nil, err
	}
	exported["summary"] = summaryPath

	if c.Segments != nil {
		segmentsPath := filepath.Join(m.cfg.ExportsDir, c.ID+"_segments.json")
		if err := writeJSON(segmentsPath, c.Segments); err != nil {
			return nil, err
		}
		exported["segments"] = segmentsPath

		// One CSV per segment with the assigned customer rows.
		if c.Dataset.Len() > 0 {
			csvPaths, err := dataset.ExportSegments(c.Dataset, m.cfg.ExportsDir, c.ID)
			if err != nil {
				return nil, err
			}
			for i, p := range csvPaths {
				exported[fmt.Sprintf("segment_csv_%d", i)] = p
			}
		}
	}

	if c.Performance != nil {
		performancePath := filepath.Join(m.cfg.ExportsDir, c.ID+"_performance.json")
		if err := writeJSON(performancePath, c.Performance); err != nil {
			return nil, err
		}
		exported["performance"] = performancePath
	}

	m.logger.Info().
		Str("campaign_id", c.ID).
		Int("files", len(exported)).
		Msg("campaign data exported")
	return exported, nil
}

// ExportDashboardCSV writes a flat one-row-per-campaign rollup suitable
// for BI tool import, and returns the file path.
func (m *Manager) ExportDashboardCSV() (string, error) {
	campaigns, err := m.store.List()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(m.cfg.ExportsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(m.cfg.ExportsDir,
		fmt.Sprintf("campaign_dashboard_%s.csv", time.Now().UTC().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create dashboard export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"campaign_id", "campaign_name", "product", "status", "created_at", "images_generated",
		"engagement_rate", "click_through_rate", "conversion_rate", "cost_per_acquisition", "return_on_ad_spend",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, c := range campaigns {
		row := []string{
			c.ID,
			c.Config.Name,
			c.Config.Product,
			string(c.Status),
			c.CreatedAt.Format(time.RFC3339),
			strconv.Itoa(len(c.GeneratedImages)),
		}
		row = append(row, performanceColumns(c.Performance)...)
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write dashboard export: %w", err)
	}
	return path, nil
}

// performanceColumns renders the overall metrics, or zeros when the
// campaign has no performance report yet.
func performanceColumns(report *models.PerformanceReport) []string {
	metrics := models.PerformanceMetrics{}
	if report != nil {
		metrics = report.Overall
	}
	return []string{
		formatMetric(metrics.EngagementRate),
		formatMetric(metrics.ClickThroughRate),
		formatMetric(metrics.ConversionRate),
		formatMetric(metrics.CostPerAcquisition),
		formatMetric(metrics.ReturnOnAdSpend),
	}
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export %s: %w", path, err)
	}
	return nil
}
