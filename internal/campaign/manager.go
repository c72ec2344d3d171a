// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/klawrence/brandgen/internal/dataset"
	"github.com/klawrence/brandgen/internal/imagegen"
	"github.com/klawrence/brandgen/internal/metrics"
	"github.com/klawrence/brandgen/internal/models"
	"github.com/klawrence/brandgen/internal/segmentation"
	"github.com/klawrence/brandgen/internal/validation"
)

// Errors returned by the manager.
var (
	ErrNoDataset   = errors.New("campaign has no customer data attached")
	ErrNotAnalyzed = errors.New("campaign has no audience analysis; run analysis first")
)

// Config tunes the campaign manager.
type Config struct {
	// DefaultFeatures are used for audience analysis when the request
	// names none. Features missing from the dataset are skipped.
	DefaultFeatures []string

	DefaultClusters int
	MaxClusters     int

	// ImagesDir and ExportsDir are the filesystem roots for generated
	// images and campaign exports.
	ImagesDir  string
	ExportsDir string

	// MaxImagesPerSegment caps image variations in one generation run.
	MaxImagesPerSegment int
}

// Manager orchestrates the campaign lifecycle over a Store, the
// segmentation pipeline and an optional image generator.
type Manager struct {
	store     Store
	pipeline  *segmentation.Pipeline
	generator imagegen.Generator // nil when image generation is disabled
	cfg       Config
	logger    zerolog.Logger
}

// NewManager wires a manager. generator may be nil; image endpoints
// then fail with ErrGenerationDisabled instead of calling out.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(store Store, pipeline *segmentation.Pipeline, generator imagegen.Generator, cfg Config, logger zerolog.Logger) *Manager {
	if cfg.DefaultClusters <= 0 {
		cfg.DefaultClusters = 4
	}
	if cfg.MaxClusters < cfg.DefaultClusters {
		cfg.MaxClusters = 10
	}
	if cfg.MaxImagesPerSegment <= 0 {
		cfg.MaxImagesPerSegment = 4
	}
	if len(cfg.DefaultFeatures) == 0 {
		cfg.DefaultFeatures = []string{
			models.FieldAge, models.FieldGender, models.FieldLocation,
			models.FieldInterests, "purchase_history",
		}
	}
	return &Manager{
		store:     store,
		pipeline:  pipeline,
		generator: generator,
		cfg:       cfg,
		logger:    logger.With().Str("component", "campaign").Logger(),
	}
}

// Create validates the config and persists a new campaign, optionally
// with an attached customer dataset.
func (m *Manager) Create(cfg models.CampaignConfig, ds *models.Dataset) (*models.Campaign, error) {
	if verr := validation.ValidateStruct(&cfg); verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	c := &models.Campaign{
		ID:        uuid.New().String(),
		Config:    cfg,
		CreatedAt: now,
		Status:    models.CampaignCreated,
		Dataset:   ds,
		History:   []string{fmt.Sprintf("Campaign created at %s", now.Format(time.RFC3339))},
	}

	if err := m.store.Put(c); err != nil {
		return nil, err
	}
	metrics.CampaignsCreated.Inc()

	m.logger.Info().
		Str("campaign_id", c.ID).
		Str("name", cfg.Name).
		Bool("has_dataset", ds != nil).
		Msg("campaign created")
	return c, nil
}

// Get returns one campaign by id.
func (m *Manager) Get(id string) (*models.Campaign, error) {
	return m.store.Get(id)
}

// Delete removes a campaign.
func (m *Manager) Delete(id string) error {
	return m.store.Delete(id)
}

// List returns compact views of all campaigns, newest first.
func (m *Manager) List() ([]models.CampaignListItem, error) {
	campaigns, err := m.store.List()
	if err != nil {
		return nil, err
	}

	items := make([]models.CampaignListItem, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, listItem(c))
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// AnalyzeAudience cleans the campaign's dataset, runs segmentation and
// computes dataset insights. An empty features slice selects the
// configured default features, filtered to the dataset's columns. A
// nSegments of 0 selects the configured default cluster count.
func (m *Manager) AnalyzeAudience(id string, features []string, nSegments int) (*models.Campaign, error) {
	c, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}
	if c.Dataset == nil || c.Dataset.Len() == 0 {
		return nil, ErrNoDataset
	}

	if nSegments == 0 {
		nSegments = m.cfg.DefaultClusters
	}
	if nSegments < 2 || nSegments > m.cfg.MaxClusters {
		return nil, fmt.Errorf("%w: %d segments requested, allowed range is 2-%d",
			segmentation.ErrInvalidClusterCount, nSegments, m.cfg.MaxClusters)
	}

	removed := dataset.Clean(c.Dataset)

	if len(features) == 0 {
		features = availableFeatures(m.cfg.DefaultFeatures, c.Dataset.Schema)
		if len(features) == 0 {
			return nil, fmt.Errorf("%w: none of the default features are present in the dataset",
				segmentation.ErrInvalidFeature)
		}
	}

	result, err := m.pipeline.Run(c.Dataset, features, nSegments)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.Segments = result
	c.Insights = dataset.Insights(c.Dataset)
	c.Status = models.CampaignAnalyzed
	c.History = append(c.History, fmt.Sprintf("Audience analysis completed at %s", now.Format(time.RFC3339)))

	if err := m.store.Put(c); err != nil {
		return nil, err
	}

	m.logger.Info().
		Str("campaign_id", c.ID).
		Int("segments", nSegments).
		Int("duplicates_removed", removed).
		Strs("features", features).
		Msg("audience analysis completed")
	return c, nil
}

// GenerateImages produces personalized images for every segment of an
// analyzed campaign. Each segment gets imagesPerSegment prompt
// variations; failures for individual prompts are recorded on the
// campaign rather than aborting the run.
func (m *Manager) GenerateImages(ctx context.Context, id string, imagesPerSegment int, opts imagegen.Options) (*models.Campaign, error) {
	c, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}
	if c.Segments == nil || len(c.Segments.Profiles) == 0 {
		return nil, ErrNotAnalyzed
	}
	if m.generator == nil {
		return nil, imagegen.ErrGenerationDisabled
	}

	if imagesPerSegment <= 0 {
		imagesPerSegment = 2
	}
	if imagesPerSegment > m.cfg.MaxImagesPerSegment {
		imagesPerSegment = m.cfg.MaxImagesPerSegment
	}

	// One prompt per segment, expanded into numbered variations.
	var prompts []string
	var segmentIDs []int
	for i := range c.Segments.Profiles {
		base := imagegen.PersonalizedPrompt(&c.Config, &c.Segments.Profiles[i])
		for v := 1; v <= imagesPerSegment; v++ {
			prompts = append(prompts, fmt.Sprintf("%s (Variation %d)", base, v))
			segmentIDs = append(segmentIDs, c.Segments.Profiles[i].SegmentID)
		}
	}

	results := imagegen.GenerateBatch(ctx, m.generator, prompts, opts)
	for i := range results {
		results[i].Image.SegmentID = segmentIDs[i]
	}

	dir := filepath.Join(m.cfg.ImagesDir, c.ID)
	saved, err := imagegen.SaveBatch(results, dir, c.Config.Name+"_segment")
	if err != nil {
		m.logger.Error().Err(err).Str("campaign_id", c.ID).Msg("failed to save generated images")
	}

	now := time.Now().UTC()
	images := make([]models.GeneratedImage, len(results))
	successes := 0
	for i := range results {
		images[i] = results[i].Image
		if images[i].Success {
			successes++
		}
	}
	c.GeneratedImages = append(c.GeneratedImages, images...)
	c.Status = models.CampaignGenerated
	c.History = append(c.History, fmt.Sprintf("Images generated at %s", now.Format(time.RFC3339)))

	if err := m.store.Put(c); err != nil {
		return nil, err
	}

	m.logger.Info().
		Str("campaign_id", c.ID).
		Int("requested", len(prompts)).
		Int("successful", successes).
		Int("saved_files", len(saved)).
		Msg("campaign image generation completed")
	return c, nil
}

// AnalyzePerformance derives campaign metrics from raw performance
// input and stores the resulting report. A nil data selects synthetic
// demo data seeded from the campaign id, so repeated analysis of the
// same campaign is stable.
func (m *Manager) AnalyzePerformance(id string, data *models.PerformanceData) (*models.PerformanceReport, error) {
	c, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}

	if data == nil {
		data = MockPerformanceData(seedFromID(c.ID))
	}

	overall := derivePerformance(data)
	segments := deriveSegmentPerformance(data.Segments)

	report := &models.PerformanceReport{
		Overall:         overall,
		Segments:        segments,
		Recommendations: performanceRecommendations(overall, segments),
		AnalyzedAt:      time.Now().UTC(),
	}

	c.Performance = report
	c.History = append(c.History,
		fmt.Sprintf("Performance analysis completed at %s", report.AnalyzedAt.Format(time.RFC3339)))

	if err := m.store.Put(c); err != nil {
		return nil, err
	}

	m.logger.Info().
		Str("campaign_id", c.ID).
		Float64("engagement_rate", overall.EngagementRate).
		Float64("roas", overall.ReturnOnAdSpend).
		Msg("performance analysis completed")
	return report, nil
}

// Summary builds the comprehensive dashboard view of one campaign.
func (m *Manager) Summary(id string) (*models.CampaignSummary, error) {
	c, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}

	successes := 0
	for i := range c.GeneratedImages {
		if c.GeneratedImages[i].Success {
			successes++
		}
	}

	return &models.CampaignSummary{
		CampaignInfo:     listItem(c),
		AudienceInsights: c.Insights,
		ImageGeneration: models.ImageGenSummary{
			TotalImages:           len(c.GeneratedImages),
			SuccessfulGenerations: successes,
		},
		Performance: c.Performance,
		History:     append([]string(nil), c.History...),
	}, nil
}

func listItem(c *models.Campaign) models.CampaignListItem {
	return models.CampaignListItem{
		ID:              c.ID,
		Name:            c.Config.Name,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
		Product:         c.Config.Product,
		ImagesGenerated: len(c.GeneratedImages),
	}
}

// availableFeatures filters wanted down to the columns the dataset
// carries, preserving the wanted order.
func availableFeatures(wanted []string, schema models.Schema) []string {
	var out []string
	for _, f := range wanted {
		if schema.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// seedFromID hashes a campaign id into a stable seed for demo data.
func seedFromID(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}
