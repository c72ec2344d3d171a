// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package models

import "time"

// CampaignStatus tracks a campaign through its lifecycle.
type CampaignStatus string

const (
	// CampaignCreated is the initial state after creation.
	CampaignCreated CampaignStatus = "created"
	// CampaignAnalyzed means audience analysis (segmentation) has run.
	CampaignAnalyzed CampaignStatus = "analyzed"
	// CampaignGenerated means per-segment images have been generated.
	CampaignGenerated CampaignStatus = "generated"
)

// CampaignConfig is the user-supplied campaign definition.
// Name, Product, TargetAudience, Style and Mood are required.
type CampaignConfig struct {
	Name           string `json:"name" validate:"required,max=120"`
	Product        string `json:"product" validate:"required,max=200"`
	TargetAudience string `json:"target_audience" validate:"required,max=200"`
	Style          string `json:"style" validate:"required,max=60"`
	Mood           string `json:"mood" validate:"required,max=60"`

	// AdditionalElements are optional visual elements to include in
	// generated images.
	AdditionalElements []string `json:"additional_elements,omitempty"`

	// Industry is optional context for prompt building.
	Industry string `json:"industry,omitempty" validate:"max=60"`

	// BudgetRange is an optional template hint (low/medium/high).
	BudgetRange string `json:"budget_range,omitempty" validate:"omitempty,oneof=low medium high"`
}

// GeneratedImage records one image-generation attempt for a campaign.
// Binary image data is kept on disk, not in the campaign record.
type GeneratedImage struct {
	ID            string    `json:"id"`
	SegmentID     int       `json:"segment_id"`
	Prompt        string    `json:"prompt"`
	RevisedPrompt string    `json:"revised_prompt,omitempty"`
	URL           string    `json:"url,omitempty"`
	FilePath      string    `json:"file_path,omitempty"`
	Size          string    `json:"size"`
	Quality       string    `json:"quality"`
	Style         string    `json:"style"`
	Model         string    `json:"model"`
	Success       bool      `json:"success"`
	Error         string    `json:"error,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Campaign is the full state of one marketing campaign. The campaign
// references segmentation output but does not own it - a new analysis
// run replaces Segments wholesale.
type Campaign struct {
	ID        string         `json:"id"`
	Config    CampaignConfig `json:"config"`
	CreatedAt time.Time      `json:"created_at"`
	Status    CampaignStatus `json:"status"`

	// Dataset is the customer data attached at creation, if any.
	Dataset *Dataset `json:"dataset,omitempty"`

	// Segments holds the latest audience analysis, if any.
	Segments *SegmentationResult `json:"segments,omitempty"`

	// Insights holds dataset-level insights from the latest analysis.
	Insights *DatasetInsights `json:"insights,omitempty"`

	// GeneratedImages records image-generation attempts.
	GeneratedImages []GeneratedImage `json:"generated_images,omitempty"`

	// Performance holds the latest performance analysis, if any.
	Performance *PerformanceReport `json:"performance,omitempty"`

	// History is an append-only audit trail of campaign events.
	History []string `json:"history"`
}

// PerformanceData is raw campaign performance input supplied by the
// caller (ad platform exports, tracking pixels, etc).
type PerformanceData struct {
	TotalImpressions int64 `json:"total_impressions"`
	TotalClicks      int64 `json:"total_clicks"`
	TotalEngagements int64 `json:"total_engagements"`
	TotalConversions int64 `json:"total_conversions"`

	TotalSpend   float64 `json:"total_spend"`
	TotalRevenue float64 `json:"total_revenue"`

	// Segments holds optional per-segment performance, keyed by
	// segment id.
	Segments map[int]SegmentPerformanceData `json:"segments,omitempty"`
}

// SegmentPerformanceData is raw per-segment performance input.
type SegmentPerformanceData struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Engagements int64   `json:"engagements"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

// PerformanceMetrics holds the derived campaign-level metrics.
// Rates are percentages.
type PerformanceMetrics struct {
	EngagementRate     float64 `json:"engagement_rate"`
	ClickThroughRate   float64 `json:"click_through_rate"`
	ConversionRate     float64 `json:"conversion_rate"`
	CostPerAcquisition float64 `json:"cost_per_acquisition"`
	ReturnOnAdSpend    float64 `json:"return_on_ad_spend"`
}

// SegmentPerformance holds derived per-segment metrics.
type SegmentPerformance struct {
	EngagementRate float64 `json:"engagement_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	ROI            float64 `json:"roi"`
}

// PerformanceReport is the full output of a performance analysis.
type PerformanceReport struct {
	Overall         PerformanceMetrics         `json:"overall_metrics"`
	Segments        map[int]SegmentPerformance `json:"segment_performance,omitempty"`
	Recommendations []string                   `json:"recommendations"`
	AnalyzedAt      time.Time                  `json:"analyzed_at"`
}

// ROIMetrics holds return-on-investment arithmetic for a campaign.
// Percentages are rounded to 2 decimal places.
type ROIMetrics struct {
	ROIPercentage float64 `json:"roi_percentage"`
	ROAS          float64 `json:"roas"`
	Profit        float64 `json:"profit"`
	ProfitMargin  float64 `json:"profit_margin"`
}

// CampaignListItem is the compact campaign view for list endpoints.
type CampaignListItem struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          CampaignStatus `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	Product         string         `json:"product"`
	ImagesGenerated int            `json:"images_generated"`
}

// CampaignSummary is the comprehensive campaign view for the dashboard.
type CampaignSummary struct {
	CampaignInfo     CampaignListItem   `json:"campaign_info"`
	AudienceInsights *DatasetInsights   `json:"audience_analysis,omitempty"`
	ImageGeneration  ImageGenSummary    `json:"image_generation"`
	Performance      *PerformanceReport `json:"performance,omitempty"`
	History          []string           `json:"history"`
}

// ImageGenSummary summarizes image generation for a campaign.
type ImageGenSummary struct {
	TotalImages           int `json:"total_images"`
	SuccessfulGenerations int `json:"successful_generations"`
}
