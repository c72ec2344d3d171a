// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. Status is "success" or "error"; Error is populated only
// when Status is "error".
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"profiles": [...]},
//	  "metadata": {"timestamp": "2026-08-27T12:00:00Z", "elapsed_ms": 12}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	ElapsedMS int64     `json:"elapsed_ms,omitempty"`
}

// APIError carries structured error details in an error response.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Common API error codes.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeEmptyDataset  = "EMPTY_DATASET"
	ErrCodeBadFeature    = "INVALID_FEATURE"
	ErrCodeBadClusters   = "INVALID_CLUSTER_COUNT"
	ErrCodeUploadInvalid = "UPLOAD_INVALID"
	ErrCodeImageGen      = "IMAGE_GENERATION_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
)
