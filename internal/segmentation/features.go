// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import (
	"math"
	"sort"

	"github.com/klawrence/brandgen/internal/models"
)

// FeatureMatrix is a rectangular numeric table: one row per customer
// record, one column per selected feature, with categorical features
// expanded into indicator columns. The column set is fixed for the
// duration of one clustering run.
type FeatureMatrix struct {
	// Columns holds the column names in matrix order.
	Columns []string

	// Data holds the row-major values. len(Data) equals the input
	// record count; every row has len(Columns) values.
	Data [][]float64
}

// Rows returns the number of rows.
func (m *FeatureMatrix) Rows() int { return len(m.Data) }

// Cols returns the number of columns.
func (m *FeatureMatrix) Cols() int { return len(m.Columns) }

// PrepareFeatures builds a FeatureMatrix from records and a feature
// selection. Columns are ordered deterministically: numeric features
// first in input order, then indicator columns grouped by source
// categorical feature with categories in first-seen order.
//
// Missing numeric values are filled with the column median; missing
// categorical values with the column mode, or "Unknown" when the column
// is entirely empty. Indicator columns are named "feature_value" to
// disambiguate by source feature.
//
// Returns ErrEmptyDataset for zero records and ErrInvalidFeature for a
// feature name absent from the schema.
func PrepareFeatures(ds *models.Dataset, features []string) (*FeatureMatrix, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	var numeric, categorical []string
	for _, f := range features {
		kind, ok := ds.Schema[f]
		if !ok {
			return nil, invalidFeature(f)
		}
		switch kind {
		case models.FieldNumeric:
			numeric = append(numeric, f)
		case models.FieldCategorical:
			categorical = append(categorical, f)
		}
	}

	n := ds.Len()
	m := &FeatureMatrix{}

	// Numeric columns, input order.
	for _, f := range numeric {
		col := numericColumn(ds.Records, f)
		m.Columns = append(m.Columns, f)
		appendColumn(m, n, col)
	}

	// Categorical columns, one indicator column per observed category.
	for _, f := range categorical {
		values := categoricalColumn(ds.Records, f)

		// First-seen category order keeps the expansion deterministic.
		var categories []string
		seen := make(map[string]bool)
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				categories = append(categories, v)
			}
		}

		for _, cat := range categories {
			m.Columns = append(m.Columns, f+"_"+cat)
			col := make([]float64, n)
			for i, v := range values {
				if v == cat {
					col[i] = 1
				}
			}
			appendColumn(m, n, col)
		}
	}

	return m, nil
}

// appendColumn grows each row of m by one value from col.
func appendColumn(m *FeatureMatrix, n int, col []float64) {
	if m.Data == nil {
		m.Data = make([][]float64, n)
	}
	for i := 0; i < n; i++ {
		m.Data[i] = append(m.Data[i], col[i])
	}
}

// numericColumn extracts a numeric column, filling missing values with
// the median of the present values. A column with no present values
// fills with zero.
func numericColumn(records []models.CustomerRecord, field string) []float64 {
	col := make([]float64, len(records))
	present := make([]bool, len(records))
	var observed []float64

	for i := range records {
		if v, ok := records[i].NumericValue(field); ok && !math.IsNaN(v) {
			col[i] = v
			present[i] = true
			observed = append(observed, v)
		}
	}

	fill := 0.0
	if len(observed) > 0 {
		fill = median(observed)
	}
	for i := range col {
		if !present[i] {
			col[i] = fill
		}
	}
	return col
}

// categoricalColumn extracts a categorical column, filling missing
// values with the mode, or "Unknown" when every value is missing.
func categoricalColumn(records []models.CustomerRecord, field string) []string {
	values := make([]string, len(records))
	counts := make(map[string]int)

	for i := range records {
		if v, ok := records[i].CategoricalValue(field); ok {
			values[i] = v
			counts[v]++
		}
	}

	fill := "Unknown"
	if len(counts) > 0 {
		fill = modeOf(counts)
	}
	for i := range values {
		if values[i] == "" {
			values[i] = fill
		}
	}
	return values
}

// modeOf returns the most frequent value; ties break lexicographically
// so the fill is deterministic.
func modeOf(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestCount := "", -1
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

// median returns the middle value of xs, averaging the two middle
// values for even lengths. xs is not modified.
func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
