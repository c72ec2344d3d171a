// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package campaign manages marketing campaigns end to end: creation,
// audience analysis, per-segment image generation, performance
// analysis and export.
//
// Campaigns are persisted through the Store interface. The default
// implementation is BadgerDB with JSON-encoded values; an in-memory
// store backs tests and ephemeral deployments.
package campaign
