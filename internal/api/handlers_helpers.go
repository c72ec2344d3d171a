// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/klawrence/brandgen/internal/campaign"
	"github.com/klawrence/brandgen/internal/dataset"
	"github.com/klawrence/brandgen/internal/imagegen"
	"github.com/klawrence/brandgen/internal/logging"
	"github.com/klawrence/brandgen/internal/models"
	"github.com/klawrence/brandgen/internal/segmentation"
	"github.com/klawrence/brandgen/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in the standard success envelope.
func respondSuccess(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			ElapsedMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag creates a simple ETag from data using FNV-1a hash.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		// Sanitize error output to prevent log injection attacks
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondDomainError maps domain errors to HTTP status and error code.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaign.ErrCampaignNotFound):
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Campaign not found", nil)
	case errors.Is(err, campaign.ErrNoDataset):
		respondError(w, http.StatusBadRequest, models.ErrCodeEmptyDataset, err.Error(), nil)
	case errors.Is(err, campaign.ErrNotAnalyzed):
		respondError(w, http.StatusConflict, models.ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, segmentation.ErrEmptyDataset):
		respondError(w, http.StatusBadRequest, models.ErrCodeEmptyDataset, err.Error(), nil)
	case errors.Is(err, segmentation.ErrInvalidFeature):
		respondError(w, http.StatusBadRequest, models.ErrCodeBadFeature, err.Error(), nil)
	case errors.Is(err, segmentation.ErrInvalidClusterCount):
		respondError(w, http.StatusBadRequest, models.ErrCodeBadClusters, err.Error(), nil)
	case errors.Is(err, imagegen.ErrGenerationDisabled):
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeImageGen, err.Error(), nil)
	case errors.Is(err, dataset.ErrUnsupportedFormat), errors.Is(err, dataset.ErrEmptyFile):
		respondError(w, http.StatusBadRequest, models.ErrCodeUploadInvalid, err.Error(), nil)
	default:
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			apiErr := verr.ToAPIError()
			respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "Internal server error", err)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSONBody decodes a request body into v, rejecting unknown
// fields so typos surface as errors rather than silent defaults.
func decodeJSONBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// parseCommaSeparated parses a comma-separated string into a slice.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	parts := strings.Split(value, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
