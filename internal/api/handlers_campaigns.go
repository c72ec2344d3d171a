// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/klawrence/brandgen/internal/campaign"
	"github.com/klawrence/brandgen/internal/imagegen"
	"github.com/klawrence/brandgen/internal/models"
)

// createCampaignRequest creates a campaign, optionally from a template
// and optionally attaching a previously uploaded dataset.
type createCampaignRequest struct {
	// Template is a built-in template id; its fields seed the config
	// and explicit Config fields override them.
	Template string `json:"template,omitempty"`

	Config models.CampaignConfig `json:"config"`

	// DatasetID references a registered dataset to attach.
	DatasetID string `json:"dataset_id,omitempty"`
}

// analyzeAudienceRequest configures an audience analysis run.
type analyzeAudienceRequest struct {
	Features  []string `json:"features,omitempty" validate:"omitempty,dive,featurename"`
	NSegments int      `json:"n_segments,omitempty" validate:"omitempty,min=2,max=10"`
}

// generateImagesRequest configures per-segment image generation.
type generateImagesRequest struct {
	ImagesPerSegment int    `json:"images_per_segment,omitempty" validate:"omitempty,min=1,max=10"`
	Size             string `json:"size,omitempty" validate:"omitempty,imagesize"`
	Quality          string `json:"quality,omitempty" validate:"omitempty,oneof=standard hd"`
	Style            string `json:"style,omitempty" validate:"omitempty,oneof=vivid natural"`
}

// roiRequest computes ROI metrics from revenue and spend.
type roiRequest struct {
	TotalRevenue float64 `json:"total_revenue" validate:"gte=0"`
	TotalSpend   float64 `json:"total_spend" validate:"gte=0"`
}

// CampaignCreate creates a new campaign.
func (h *Handler) CampaignCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req createCampaignRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
		return
	}

	cfg := req.Config
	if req.Template != "" {
		base, ok := campaign.Template(req.Template)
		if !ok {
			respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
				"Unknown campaign template: "+sanitizeLogValue(req.Template), nil)
			return
		}
		cfg = mergeConfig(base, req.Config)
	}

	var ds *models.Dataset
	if req.DatasetID != "" {
		var ok bool
		ds, ok = h.dataset(req.DatasetID)
		if !ok {
			respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Dataset not found", nil)
			return
		}
	}

	c, err := h.manager.Create(cfg, ds)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if req.DatasetID != "" {
		h.dropDataset(req.DatasetID)
	}

	respondSuccess(w, http.StatusCreated, c, start)
}

// CampaignList returns compact views of all campaigns, newest first.
func (h *Handler) CampaignList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	items, err := h.manager.List()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, items, start)
}

// CampaignGet returns one full campaign record.
func (h *Handler) CampaignGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	c, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, c, start)
}

// CampaignDelete removes a campaign.
func (h *Handler) CampaignDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := h.manager.Delete(chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": chi.URLParam(r, "id")}, start)
}

// CampaignAnalyze runs audience analysis on the campaign's dataset.
func (h *Handler) CampaignAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req analyzeAudienceRequest
	if r.ContentLength > 0 {
		if err := decodeJSONBody(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
			return
		}
		if apiErr := validateRequest(&req); apiErr != nil {
			respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
			return
		}
	}

	c, err := h.manager.AnalyzeAudience(chi.URLParam(r, "id"), req.Features, req.NSegments)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"segmentation": c.Segments,
		"insights":     c.Insights,
	}, start)
}

// CampaignGenerateImages generates per-segment marketing images.
func (h *Handler) CampaignGenerateImages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req generateImagesRequest
	if r.ContentLength > 0 {
		if err := decodeJSONBody(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
			return
		}
		if apiErr := validateRequest(&req); apiErr != nil {
			respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
			return
		}
	}

	c, err := h.manager.GenerateImages(r.Context(), chi.URLParam(r, "id"), req.ImagesPerSegment, imagegen.Options{
		Size:    req.Size,
		Quality: req.Quality,
		Style:   req.Style,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	successes := 0
	for i := range c.GeneratedImages {
		if c.GeneratedImages[i].Success {
			successes++
		}
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"total_generated":        len(c.GeneratedImages),
		"successful_generations": successes,
		"generated_images":       c.GeneratedImages,
	}, start)
}

// CampaignPerformance analyzes campaign performance. An empty body
// selects synthetic demo data.
func (h *Handler) CampaignPerformance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var data *models.PerformanceData
	if r.ContentLength > 0 {
		data = &models.PerformanceData{}
		if err := decodeJSONBody(r, data); err != nil {
			respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
			return
		}
	}

	report, err := h.manager.AnalyzePerformance(chi.URLParam(r, "id"), data)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, report, start)
}

// CampaignROI computes ROI metrics from supplied revenue and spend.
func (h *Handler) CampaignROI(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req roiRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	respondSuccess(w, http.StatusOK, campaign.CalculateROI(req.TotalRevenue, req.TotalSpend), start)
}

// CampaignSummary returns the comprehensive dashboard view.
func (h *Handler) CampaignSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	summary, err := h.manager.Summary(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, summary, start)
}

// CampaignExport writes campaign artifacts to the export directory and
// returns their paths.
func (h *Handler) CampaignExport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	files, err := h.manager.Export(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"exported_files": files}, start)
}

// DashboardExport writes a CSV summary of every campaign to the export
// directory and returns its path.
func (h *Handler) DashboardExport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	path, err := h.manager.ExportDashboardCSV()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"exported_file": path}, start)
}

// CampaignTemplates lists the built-in campaign templates.
func (h *Handler) CampaignTemplates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, campaign.Templates(), start)
}

// mergeConfig overlays explicit request fields on a template base.
func mergeConfig(base, override models.CampaignConfig) models.CampaignConfig {
	if override.Name != "" {
		base.Name = override.Name
	}
	if override.Product != "" {
		base.Product = override.Product
	}
	if override.TargetAudience != "" {
		base.TargetAudience = override.TargetAudience
	}
	if override.Style != "" {
		base.Style = override.Style
	}
	if override.Mood != "" {
		base.Mood = override.Mood
	}
	if len(override.AdditionalElements) > 0 {
		base.AdditionalElements = override.AdditionalElements
	}
	if override.Industry != "" {
		base.Industry = override.Industry
	}
	if override.BudgetRange != "" {
		base.BudgetRange = override.BudgetRange
	}
	return base
}
