// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/klawrence/brandgen/internal/models"
)

// BuildProfiles computes one SegmentProfile per non-empty segment from
// the original (unscaled) records and the cluster assignments. Profiles
// are ordered by segment id; segments with zero members are omitted.
//
// Numeric features get mean/median/standard-deviation rounded to 2
// decimal places; categorical features get mode and distinct-value
// count. The descriptive name is derived from the segment's mean age,
// income and digital-savvy score.
func BuildProfiles(ds *models.Dataset, features []string, assignments []int, k int) []models.SegmentProfile {
	total := ds.Len()
	profiles := make([]models.SegmentProfile, 0, k)

	for seg := 0; seg < k; seg++ {
		var members []int
		for i, a := range assignments {
			if a == seg {
				members = append(members, i)
			}
		}
		// Cannot occur given the clusterer's invariants, but an empty
		// segment must not crash the profiler.
		if len(members) == 0 {
			continue
		}

		p := models.SegmentProfile{
			SegmentID:   seg,
			Size:        len(members),
			Percentage:  round2(float64(len(members)) / float64(total) * 100),
			Numeric:     make(map[string]models.NumericSummary),
			Categorical: make(map[string]models.CategoricalSummary),
		}

		for _, f := range features {
			switch ds.Schema[f] {
			case models.FieldNumeric:
				p.Numeric[f] = numericSummary(ds.Records, members, f)
			case models.FieldCategorical:
				p.Categorical[f] = categoricalSummary(ds.Records, members, f)
			}
		}

		p.AvgAge = segmentMean(ds.Records, members, models.FieldAge)
		p.AvgIncome = segmentMean(ds.Records, members, models.FieldIncome)
		p.AvgSpendingScore = segmentMean(ds.Records, members, models.FieldSpendingScore)
		p.AvgEngagement = segmentMean(ds.Records, members, models.FieldEngagementRate)
		p.DigitalSavvyScore = segmentMean(ds.Records, members, models.FieldDigitalSavvy)
		p.BrandLoyaltyScore = segmentMean(ds.Records, members, models.FieldBrandLoyalty)
		p.Name = segmentName(p.AvgAge, p.AvgIncome, p.DigitalSavvyScore)

		profiles = append(profiles, p)
	}

	return profiles
}

// segmentName derives the three-part descriptive label from threshold
// rules on mean age, income and digital-savvy score.
func segmentName(age, income, digital float64) string {
	var ageGroup string
	switch {
	case age < 30:
		ageGroup = "Young"
	case age < 50:
		ageGroup = "Middle-aged"
	default:
		ageGroup = "Mature"
	}

	var incomeLevel string
	switch {
	case income > 75000:
		incomeLevel = "High-income"
	case income > 45000:
		incomeLevel = "Mid-income"
	default:
		incomeLevel = "Budget-conscious"
	}

	var techLevel string
	switch {
	case digital > 7:
		techLevel = "Tech-savvy"
	case digital > 4:
		techLevel = "Moderate-tech"
	default:
		techLevel = "Traditional"
	}

	return ageGroup + " " + incomeLevel + " " + techLevel
}

// numericSummary computes mean/median/std over the members' present
// values for one numeric feature, rounded to 2 decimal places.
func numericSummary(records []models.CustomerRecord, members []int, field string) models.NumericSummary {
	var xs []float64
	for _, i := range members {
		if v, ok := records[i].NumericValue(field); ok {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return models.NumericSummary{}
	}

	s := models.NumericSummary{
		Mean:   round2(stat.Mean(xs, nil)),
		Median: round2(median(xs)),
	}
	// Sample standard deviation, matching the convention of the
	// descriptive statistics this replaces. Undefined below 2 values.
	if len(xs) >= 2 {
		s.StdDev = round2(stat.StdDev(xs, nil))
	}
	return s
}

// categoricalSummary computes mode and distinct count over the members'
// present values for one categorical feature.
func categoricalSummary(records []models.CustomerRecord, members []int, field string) models.CategoricalSummary {
	counts := make(map[string]int)
	for _, i := range members {
		if v, ok := records[i].CategoricalValue(field); ok {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return models.CategoricalSummary{Mode: "N/A"}
	}
	return models.CategoricalSummary{
		Mode:         modeOf(counts),
		UniqueValues: len(counts),
	}
}

// segmentMean averages the members' present values for a field,
// returning 0 when the field is absent from every member.
func segmentMean(records []models.CustomerRecord, members []int, field string) float64 {
	var sum float64
	var n int
	for _, i := range members {
		if v, ok := records[i].NumericValue(field); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
