// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package models defines the shared data structures for BrandGen:
// customer records and dataset schemas, segment profiles with marketing
// recommendations, campaign state, and the API response envelope.
//
// All types are plain structured data suitable for direct JSON
// serialization. Nothing in this package performs I/O.
package models
