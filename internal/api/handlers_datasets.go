// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/klawrence/brandgen/internal/dataset"
	"github.com/klawrence/brandgen/internal/logging"
	"github.com/klawrence/brandgen/internal/metrics"
	"github.com/klawrence/brandgen/internal/models"
)

// datasetUploadResponse is returned after a successful upload.
type datasetUploadResponse struct {
	DatasetID  string                    `json:"dataset_id"`
	Rows       int                       `json:"rows"`
	Columns    []string                  `json:"columns"`
	Validation *dataset.UploadValidation `json:"validation,omitempty"`
	Insights   *models.DatasetInsights   `json:"insights"`
}

// DatasetUpload accepts a multipart form with a "file" part holding a
// CSV or JSON customer dataset. The file is validated, parsed and
// registered; the response carries the dataset id to reference in
// later campaign and segmentation requests.
func (h *Handler) DatasetUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	maxBytes := int64(h.config.Storage.MaxUploadSizeMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+4096)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeUploadInvalid,
			"Request must be multipart/form-data with a 'file' part", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeUploadInvalid, "Failed to read uploaded file", err)
		return
	}
	metrics.DatasetUploadBytes.Observe(float64(len(data)))

	result := dataset.ValidateUpload(header.Filename, data, h.config.Storage.MaxUploadSizeMB)
	if !result.Valid {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Data:     result,
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error: &models.APIError{
				Code:    models.ErrCodeUploadInvalid,
				Message: "Uploaded file failed validation",
			},
		})
		return
	}

	ds, err := dataset.Load(bytes.NewReader(data), header.Filename)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	id := h.registerDataset(ds)
	logging.Info().
		Str("dataset_id", id).
		Str("filename", sanitizeLogValue(header.Filename)).
		Int("rows", ds.Len()).
		Msg("dataset uploaded")

	respondSuccess(w, http.StatusCreated, datasetUploadResponse{
		DatasetID:  id,
		Rows:       ds.Len(),
		Columns:    ds.Schema.FieldNames(),
		Validation: result,
		Insights:   dataset.Insights(ds),
	}, start)
}

// DatasetSample generates a seeded synthetic dataset and registers it.
// Query parameters: n (record count, default 1000), seed (default 42).
func (h *Handler) DatasetSample(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	n := getIntParam(r, "n", 1000)
	if n < 1 || n > 100000 {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"n must be between 1 and 100000", nil)
		return
	}
	seed := getIntParam(r, "seed", 42)

	ds := dataset.GenerateSample(n, uint64(seed))
	id := h.registerDataset(ds)

	respondSuccess(w, http.StatusCreated, datasetUploadResponse{
		DatasetID: id,
		Rows:      ds.Len(),
		Columns:   ds.Schema.FieldNames(),
		Insights:  dataset.Insights(ds),
	}, start)
}

// DatasetInsights returns summary statistics for a registered dataset.
func (h *Handler) DatasetInsights(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	ds, ok := h.dataset(id)
	if !ok {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Dataset not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, dataset.Insights(ds), start)
}
