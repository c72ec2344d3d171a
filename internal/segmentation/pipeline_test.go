// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/klawrence/brandgen/internal/logging"
	"github.com/klawrence/brandgen/internal/models"
)

func pipelineDataset() *models.Dataset {
	ds := &models.Dataset{
		Schema: models.Schema{
			"age":            models.FieldNumeric,
			"spending_score": models.FieldNumeric,
		},
	}
	// Two obvious groups: young low spenders and older high spenders.
	rows := []struct {
		age, spend float64
	}{
		{22, 10}, {24, 12}, {23, 11}, {25, 14},
		{58, 90}, {61, 88}, {59, 91}, {62, 87},
	}
	for i, r := range rows {
		ds.Records = append(ds.Records, models.CustomerRecord{
			ID:      string(rune('a' + i)),
			Numeric: map[string]float64{"age": r.age, "spending_score": r.spend},
			Segment: models.SegmentUnassigned,
		})
	}
	return ds
}

func TestPipelineRun(t *testing.T) {
	p := NewPipeline(DefaultConfig(), logging.NewTestLogger(nil))
	ds := pipelineDataset()

	res, err := p.Run(ds, []string{"age", "spending_score"}, 2)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.NClusters != 2 {
		t.Errorf("NClusters = %d, want 2", res.NClusters)
	}
	if len(res.Assignments) != 8 {
		t.Errorf("len(Assignments) = %d, want 8", len(res.Assignments))
	}
	if len(res.Profiles) != 2 {
		t.Fatalf("len(Profiles) = %d, want 2", len(res.Profiles))
	}

	// The two age groups must land in different segments.
	if res.Assignments["a"] == res.Assignments["e"] {
		t.Errorf("young and old groups share segment %d", res.Assignments["a"])
	}
	for _, id := range []string{"b", "c", "d"} {
		if res.Assignments[id] != res.Assignments["a"] {
			t.Errorf("record %s segment = %d, want %d", id, res.Assignments[id], res.Assignments["a"])
		}
	}

	// Records carry their assignment after a run.
	for i := range ds.Records {
		if ds.Records[i].Segment == models.SegmentUnassigned {
			t.Errorf("record %s still unassigned", ds.Records[i].ID)
		}
	}

	// Each profile carries recommendations.
	for _, profile := range res.Profiles {
		if profile.Recommendations == nil {
			t.Errorf("segment %d missing recommendations", profile.SegmentID)
		}
	}
}

func TestPipelineRun_Deterministic(t *testing.T) {
	p := NewPipeline(DefaultConfig(), logging.NewTestLogger(nil))

	first, err := p.Run(pipelineDataset(), []string{"age", "spending_score"}, 2)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := p.Run(pipelineDataset(), []string{"age", "spending_score"}, 2)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !reflect.DeepEqual(first.Assignments, second.Assignments) {
		t.Errorf("assignments diverged: %v vs %v", first.Assignments, second.Assignments)
	}
	if first.Inertia != second.Inertia {
		t.Errorf("inertia diverged: %v vs %v", first.Inertia, second.Inertia)
	}
}

func TestPipelineRun_DefaultClusterCount(t *testing.T) {
	p := NewPipeline(Config{DefaultClusters: 2, Seed: 42}, logging.NewTestLogger(nil))

	res, err := p.Run(pipelineDataset(), []string{"age"}, 0)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.NClusters != 2 {
		t.Errorf("NClusters = %d, want configured default 2", res.NClusters)
	}
}

func TestPipelineRun_Errors(t *testing.T) {
	p := NewPipeline(DefaultConfig(), logging.NewTestLogger(nil))

	tests := []struct {
		name      string
		ds        *models.Dataset
		features  []string
		nClusters int
		wantErr   error
	}{
		{
			name:     "empty dataset",
			ds:       &models.Dataset{Schema: models.Schema{"age": models.FieldNumeric}},
			features: []string{"age"},
			wantErr:  ErrEmptyDataset,
		},
		{
			name:     "unknown feature",
			ds:       pipelineDataset(),
			features: []string{"nonexistent"},
			wantErr:  ErrInvalidFeature,
		},
		{
			name:      "more clusters than records",
			ds:        pipelineDataset(),
			features:  []string{"age"},
			nClusters: 100,
			wantErr:   ErrInvalidClusterCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Run(tt.ds, tt.features, tt.nClusters)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
