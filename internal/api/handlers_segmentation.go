// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"net/http"
	"time"

	"github.com/klawrence/brandgen/internal/dataset"
	"github.com/klawrence/brandgen/internal/logging"
	"github.com/klawrence/brandgen/internal/models"
	"github.com/klawrence/brandgen/internal/segmentation"
)

// segmentationRequest runs clustering on a registered dataset without
// attaching it to a campaign.
type segmentationRequest struct {
	DatasetID string   `json:"dataset_id" validate:"required"`
	Features  []string `json:"features,omitempty" validate:"omitempty,dive,featurename"`
	NClusters int      `json:"n_clusters,omitempty" validate:"omitempty,min=2,max=10"`
}

// SegmentationRun executes the full segmentation pipeline on a
// registered dataset: clean, scale, cluster, profile, recommend. The
// dataset keeps its assignments for later requests.
func (h *Handler) SegmentationRun(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req segmentationRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ds, ok := h.dataset(req.DatasetID)
	if !ok {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Dataset not found", nil)
		return
	}

	dataset.Clean(ds)

	features := req.Features
	if len(features) == 0 {
		features = numericFeatures(ds.Schema)
	}

	pipeline := segmentation.NewPipeline(segmentation.Config{
		DefaultClusters: h.config.Segmentation.DefaultClusters,
		MaxIterations:   h.config.Segmentation.MaxIterations,
		Restarts:        h.config.Segmentation.Restarts,
		Seed:            h.config.Segmentation.Seed,
	}, logging.Logger())

	result, err := pipeline.Run(ds, features, req.NClusters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, result, start)
}

// numericFeatures returns all numeric columns in sorted order, the
// fallback feature set when a request names none.
func numericFeatures(schema models.Schema) []string {
	var out []string
	for _, name := range schema.FieldNames() {
		if schema[name] == models.FieldNumeric {
			out = append(out, name)
		}
	}
	return out
}
