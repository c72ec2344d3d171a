// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"math"
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/klawrence/brandgen/internal/models"
)

// sampleCategories are the preferred-category values the generator
// draws from uniformly.
var sampleCategories = []string{"Fashion", "Technology", "Food", "Beauty", "Automotive"}

// GenerateSample produces a synthetic customer dataset of n records
// from a seeded generator. The same n and seed always yield the same
// dataset.
//
// Column distributions: age Normal(35, 12) clipped to [18, 80], income
// LogNormal(10.5, 0.5), spending_score uniform 1-100, purchase
// frequency Poisson(3), engagement_rate Beta(2, 5), digital_savvy
// uniform 1-10, brand_loyalty Beta(3, 2), preferred_category uniform
// over five categories. Ages and incomes are truncated to integers.
func GenerateSample(n int, seed uint64) *models.Dataset {
	if n <= 0 {
		n = 1000
	}

	src := rand.New(rand.NewPCG(seed, seed))

	age := distuv.Normal{Mu: 35, Sigma: 12, Src: src}
	income := distuv.LogNormal{Mu: 10.5, Sigma: 0.5, Src: src}
	purchaseFreq := distuv.Poisson{Lambda: 3, Src: src}
	engagement := distuv.Beta{Alpha: 2, Beta: 5, Src: src}
	loyalty := distuv.Beta{Alpha: 3, Beta: 2, Src: src}

	schema := models.Schema{
		models.FieldAge:               models.FieldNumeric,
		models.FieldIncome:            models.FieldNumeric,
		models.FieldSpendingScore:     models.FieldNumeric,
		models.FieldPurchaseFrequency: models.FieldNumeric,
		models.FieldEngagementRate:    models.FieldNumeric,
		models.FieldDigitalSavvy:      models.FieldNumeric,
		models.FieldBrandLoyalty:      models.FieldNumeric,
		models.FieldPreferredCategory: models.FieldCategorical,
	}

	records := make([]models.CustomerRecord, n)
	for i := 0; i < n; i++ {
		records[i] = models.CustomerRecord{
			ID: strconv.Itoa(i + 1),
			Numeric: map[string]float64{
				models.FieldAge:               clip(math.Trunc(age.Rand()), 18, 80),
				models.FieldIncome:            math.Trunc(income.Rand()),
				models.FieldSpendingScore:     float64(src.IntN(100) + 1),
				models.FieldPurchaseFrequency: purchaseFreq.Rand(),
				models.FieldEngagementRate:    engagement.Rand(),
				models.FieldDigitalSavvy:      float64(src.IntN(10) + 1),
				models.FieldBrandLoyalty:      loyalty.Rand(),
			},
			Categorical: map[string]string{
				models.FieldPreferredCategory: sampleCategories[src.IntN(len(sampleCategories))],
			},
			Segment: models.SegmentUnassigned,
		}
	}

	return &models.Dataset{Schema: schema, Records: records}
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
