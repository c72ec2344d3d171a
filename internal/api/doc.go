// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package api provides the HTTP API for BrandGen using the Chi router.
//
// All endpoints respond with the models.APIResponse envelope. Handler
// methods are split across files by concern:
//
//   - handlers.go: Handler struct, constructor, dataset registry
//   - handlers_helpers.go: shared response and parsing helpers
//   - handlers_health.go: health and readiness endpoints
//   - handlers_datasets.go: dataset upload, sample data, insights
//   - handlers_segmentation.go: standalone segmentation runs
//   - handlers_campaigns.go: campaign lifecycle endpoints
//
// Routing lives in router.go; Prometheus request instrumentation in
// middleware.go.
package api
