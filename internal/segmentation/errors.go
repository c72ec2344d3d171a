// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation. All are raised synchronously at
// the point of violation; the pipeline performs no I/O and never retries.
var (
	// ErrEmptyDataset indicates zero input records were supplied.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidFeature indicates a requested feature name is absent
	// from the dataset schema.
	ErrInvalidFeature = errors.New("invalid feature")

	// ErrInvalidClusterCount indicates the cluster count is less than 1
	// or exceeds the number of records.
	ErrInvalidClusterCount = errors.New("invalid cluster count")
)

// invalidFeature wraps ErrInvalidFeature with the offending name.
func invalidFeature(name string) error {
	return fmt.Errorf("%w: %q not in dataset schema", ErrInvalidFeature, name)
}

// invalidClusterCount wraps ErrInvalidClusterCount with context.
func invalidClusterCount(k, rows int) error {
	return fmt.Errorf("%w: k=%d with %d records", ErrInvalidClusterCount, k, rows)
}
