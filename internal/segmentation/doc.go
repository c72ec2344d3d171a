// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package segmentation implements the customer-segmentation pipeline:
// feature preparation, scaling, K-means clustering, segment profiling
// and rule-based marketing recommendations.
//
// Data flows one way through the pipeline:
//
//	records -> feature matrix -> scaled matrix -> assignments -> profiles -> recommendations
//
// No stage mutates an upstream stage's output after handoff, and the
// pipeline holds no state between runs: each run is a pure function of
// (records, feature selection, cluster count, seed). Runs with the same
// inputs and seed produce identical assignments, so callers may execute
// independent runs concurrently without synchronization.
package segmentation
