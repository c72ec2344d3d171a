// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/klawrence/brandgen/internal/metrics"
	"github.com/klawrence/brandgen/internal/models"
)

// Config configures the pipeline. Pass it explicitly at construction;
// nothing here is read from ambient global state.
type Config struct {
	// DefaultClusters is used when a run requests zero clusters.
	DefaultClusters int

	// MaxIterations and Restarts tune the clusterer.
	MaxIterations int
	Restarts      int

	// Seed drives all clustering randomness for reproducible runs.
	Seed int64
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		DefaultClusters: 4,
		MaxIterations:   300,
		Restarts:        10,
		Seed:            42,
	}
}

// Pipeline runs the full segmentation flow. It holds configuration
// only - no per-run state - so a single Pipeline is safe for
// concurrent use.
type Pipeline struct {
	cfg    Config
	logger zerolog.Logger
}

// NewPipeline creates a pipeline with the given configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPipeline(cfg Config, logger zerolog.Logger) *Pipeline {
	if cfg.DefaultClusters <= 0 {
		cfg.DefaultClusters = 4
	}
	return &Pipeline{
		cfg:    cfg,
		logger: logger.With().Str("component", "segmentation").Logger(),
	}
}

// Run executes one segmentation pass: prepare features, scale, cluster,
// profile, recommend. The result is derived entirely from the inputs
// and the configured seed; identical inputs produce identical output.
//
// nClusters of 0 selects the configured default. Errors are
// ErrEmptyDataset, ErrInvalidFeature or ErrInvalidClusterCount.
func (p *Pipeline) Run(ds *models.Dataset, features []string, nClusters int) (*models.SegmentationResult, error) {
	start := time.Now()
	if nClusters == 0 {
		nClusters = p.cfg.DefaultClusters
	}

	matrix, err := PrepareFeatures(ds, features)
	if err != nil {
		return nil, err
	}

	scaled := Standardize(matrix)

	clusters, err := Cluster(scaled, KMeansConfig{
		K:             nClusters,
		MaxIterations: p.cfg.MaxIterations,
		Restarts:      p.cfg.Restarts,
		Seed:          p.cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	assignments := make(map[string]int, ds.Len())
	for i := range ds.Records {
		ds.Records[i].Segment = clusters.Assignments[i]
		assignments[ds.Records[i].ID] = clusters.Assignments[i]
	}

	profiles := BuildProfiles(ds, features, clusters.Assignments, nClusters)
	for i := range profiles {
		profiles[i].Recommendations = Recommend(&profiles[i])
	}

	elapsed := time.Since(start)
	metrics.SegmentationRuns.Inc()
	metrics.SegmentationDuration.Observe(elapsed.Seconds())
	metrics.SegmentationInertia.Set(clusters.Inertia)

	p.logger.Info().
		Int("records", ds.Len()).
		Int("n_clusters", nClusters).
		Int("feature_columns", matrix.Cols()).
		Float64("inertia", clusters.Inertia).
		Dur("elapsed", elapsed).
		Msg("segmentation run completed")

	return &models.SegmentationResult{
		NClusters:   nClusters,
		Assignments: assignments,
		Centroids:   clusters.Centroids,
		Inertia:     clusters.Inertia,
		Features:    append([]string(nil), scaled.Columns...),
		Profiles:    profiles,
	}, nil
}
