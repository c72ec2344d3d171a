// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/klawrence/brandgen/internal/models"
)

// Insights computes dashboard summary statistics for a dataset:
// totals, data quality counts, and distributions for the well-known
// age, gender and location columns when present.
func Insights(ds *models.Dataset) *models.DatasetInsights {
	ins := &models.DatasetInsights{
		TotalCustomers: ds.Len(),
		DataQuality: models.DataQuality{
			MissingValues: countMissing(ds),
			DuplicateRows: countDuplicates(ds),
		},
	}

	if ds.Schema.Has(models.FieldAge) {
		ins.AgeDistribution = ageDistribution(ds)
	}
	if ds.Schema.Has(models.FieldGender) {
		ins.GenderDistribution = valueCounts(ds, models.FieldGender, 0)
	}
	if ds.Schema.Has(models.FieldLocation) {
		// Top 10 locations by count.
		ins.LocationDistribution = valueCounts(ds, models.FieldLocation, 10)
	}

	return ins
}

// countMissing counts cells that are absent across all schema columns.
func countMissing(ds *models.Dataset) int {
	missing := 0
	for i := range ds.Records {
		for name, kind := range ds.Schema {
			switch kind {
			case models.FieldNumeric:
				if _, ok := ds.Records[i].NumericValue(name); !ok {
					missing++
				}
			case models.FieldCategorical:
				if _, ok := ds.Records[i].CategoricalValue(name); !ok {
					missing++
				}
			}
		}
	}
	return missing
}

// countDuplicates counts rows whose field values exactly match an
// earlier row, without modifying the dataset.
func countDuplicates(ds *models.Dataset) int {
	seen := make(map[string]bool, len(ds.Records))
	dupes := 0
	for i := range ds.Records {
		key := recordKey(&ds.Records[i], ds.Schema)
		if seen[key] {
			dupes++
			continue
		}
		seen[key] = true
	}
	return dupes
}

// ageDistribution summarizes the age column: mean rounded to 1 decimal
// place and counts per fixed range.
func ageDistribution(ds *models.Dataset) *models.AgeDistribution {
	var ages []float64
	for i := range ds.Records {
		if v, ok := ds.Records[i].NumericValue(models.FieldAge); ok {
			ages = append(ages, v)
		}
	}
	if len(ages) == 0 {
		return nil
	}

	ranges := map[string]int{
		"18-25": 0,
		"26-35": 0,
		"36-45": 0,
		"46+":   0,
	}
	for _, a := range ages {
		switch {
		case a >= 18 && a <= 25:
			ranges["18-25"]++
		case a >= 26 && a <= 35:
			ranges["26-35"]++
		case a >= 36 && a <= 45:
			ranges["36-45"]++
		case a >= 46:
			ranges["46+"]++
		}
	}

	return &models.AgeDistribution{
		MeanAge:   math.Round(stat.Mean(ages, nil)*10) / 10,
		AgeRanges: ranges,
	}
}

// valueCounts tallies a categorical column. When top > 0 only the top
// most frequent values are kept, ties broken lexicographically.
func valueCounts(ds *models.Dataset, field string, top int) map[string]int {
	counts := make(map[string]int)
	for i := range ds.Records {
		if v, ok := ds.Records[i].CategoricalValue(field); ok {
			counts[v]++
		}
	}
	if top <= 0 || len(counts) <= top {
		return counts
	}

	type vc struct {
		value string
		count int
	}
	ordered := make([]vc, 0, len(counts))
	for v, n := range counts {
		ordered = append(ordered, vc{v, n})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].value < ordered[j].value
	})

	out := make(map[string]int, top)
	for _, e := range ordered[:top] {
		out[e.value] = e.count
	}
	return out
}
