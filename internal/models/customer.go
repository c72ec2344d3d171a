// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package models

import "sort"

// FieldKind classifies a dataset column as numeric or categorical.
type FieldKind int

const (
	// FieldNumeric is a scalar numeric column (age, income, scores).
	FieldNumeric FieldKind = iota
	// FieldCategorical is a string-valued column (gender, location).
	FieldCategorical
)

// String returns a human-readable name for the field kind.
func (k FieldKind) String() string {
	switch k {
	case FieldNumeric:
		return "numeric"
	case FieldCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Well-known customer fields. Datasets are free to carry additional
// columns; these names are the ones the profiler and recommendation
// rules key on.
const (
	FieldAge               = "age"
	FieldIncome            = "income"
	FieldSpendingScore     = "spending_score"
	FieldPurchaseFrequency = "purchase_frequency"
	FieldEngagementRate    = "engagement_rate"
	FieldDigitalSavvy      = "digital_savvy"
	FieldBrandLoyalty      = "brand_loyalty"

	FieldPreferredCategory = "preferred_category"
	FieldGender            = "gender"
	FieldLocation          = "location"
	FieldInterests         = "interests"
)

// Schema maps column names to their kind for one dataset.
type Schema map[string]FieldKind

// Has reports whether the schema contains the named field.
func (s Schema) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// FieldNames returns all field names in deterministic (sorted) order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SegmentUnassigned marks a record that has not been through clustering.
const SegmentUnassigned = -1

// CustomerRecord is one row of customer data. Values are keyed by column
// name; a name absent from both maps is a missing value for that record.
// Records are immutable once loaded - only the derived Segment label is
// written after clustering.
type CustomerRecord struct {
	// ID is the unique customer identifier.
	ID string `json:"id"`

	// Numeric holds the record's numeric field values.
	Numeric map[string]float64 `json:"numeric"`

	// Categorical holds the record's string field values.
	Categorical map[string]string `json:"categorical"`

	// Segment is the assigned segment id, or SegmentUnassigned.
	Segment int `json:"segment"`
}

// NumericValue returns the value for a numeric field and whether it is
// present on this record.
func (r *CustomerRecord) NumericValue(field string) (float64, bool) {
	v, ok := r.Numeric[field]
	return v, ok
}

// CategoricalValue returns the value for a categorical field and whether
// it is present (non-empty) on this record.
func (r *CustomerRecord) CategoricalValue(field string) (string, bool) {
	v, ok := r.Categorical[field]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Dataset is an ordered collection of customer records sharing a schema.
type Dataset struct {
	Schema  Schema           `json:"schema"`
	Records []CustomerRecord `json:"records"`
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// DatasetInsights summarizes a loaded dataset for the dashboard.
type DatasetInsights struct {
	TotalCustomers int         `json:"total_customers"`
	DataQuality    DataQuality `json:"data_quality"`

	// AgeDistribution is present when the dataset has an age column.
	AgeDistribution *AgeDistribution `json:"age_distribution,omitempty"`

	// GenderDistribution is present when the dataset has a gender column.
	GenderDistribution map[string]int `json:"gender_distribution,omitempty"`

	// LocationDistribution holds the top locations by count, when the
	// dataset has a location column.
	LocationDistribution map[string]int `json:"location_distribution,omitempty"`
}

// DataQuality reports missing and duplicate counts for a dataset.
type DataQuality struct {
	MissingValues int `json:"missing_values"`
	DuplicateRows int `json:"duplicate_rows"`
}

// AgeDistribution summarizes the age column of a dataset.
type AgeDistribution struct {
	MeanAge   float64        `json:"mean_age"`
	AgeRanges map[string]int `json:"age_ranges"`
}
