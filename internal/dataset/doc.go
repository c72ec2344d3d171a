// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package dataset loads, validates and summarizes customer datasets.
//
// Datasets arrive as CSV or JSON uploads. Column types are inferred
// from the values: a column whose non-empty values all parse as numbers
// is numeric, everything else is categorical. Cleaning removes exact
// duplicate rows and fills missing values (median for numeric columns,
// mode for categorical ones).
//
// The package also carries a seeded sample-data generator used by the
// demo endpoint and test fixtures. It never runs on the upload path.
package dataset
