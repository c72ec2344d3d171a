// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"reflect"
	"testing"

	"github.com/klawrence/brandgen/internal/models"
)

func TestGenerateSample(t *testing.T) {
	ds := GenerateSample(200, 42)

	if ds.Len() != 200 {
		t.Fatalf("Len() = %d, want 200", ds.Len())
	}

	for _, field := range []string{
		models.FieldAge, models.FieldIncome, models.FieldSpendingScore,
		models.FieldPurchaseFrequency, models.FieldEngagementRate,
		models.FieldDigitalSavvy, models.FieldBrandLoyalty,
	} {
		if ds.Schema[field] != models.FieldNumeric {
			t.Errorf("schema[%q] = %v, want numeric", field, ds.Schema[field])
		}
	}
	if ds.Schema[models.FieldPreferredCategory] != models.FieldCategorical {
		t.Errorf("preferred_category kind = %v, want categorical", ds.Schema[models.FieldPreferredCategory])
	}

	validCategories := make(map[string]bool)
	for _, c := range sampleCategories {
		validCategories[c] = true
	}

	for i := range ds.Records {
		r := &ds.Records[i]

		age, _ := r.NumericValue(models.FieldAge)
		if age < 18 || age > 80 {
			t.Errorf("record %d age %v outside [18, 80]", i, age)
		}
		if age != float64(int(age)) {
			t.Errorf("record %d age %v not integral", i, age)
		}

		spend, _ := r.NumericValue(models.FieldSpendingScore)
		if spend < 1 || spend > 100 {
			t.Errorf("record %d spending_score %v outside [1, 100]", i, spend)
		}

		eng, _ := r.NumericValue(models.FieldEngagementRate)
		if eng < 0 || eng > 1 {
			t.Errorf("record %d engagement_rate %v outside [0, 1]", i, eng)
		}

		loyalty, _ := r.NumericValue(models.FieldBrandLoyalty)
		if loyalty < 0 || loyalty > 1 {
			t.Errorf("record %d brand_loyalty %v outside [0, 1]", i, loyalty)
		}

		savvy, _ := r.NumericValue(models.FieldDigitalSavvy)
		if savvy < 1 || savvy > 10 {
			t.Errorf("record %d digital_savvy %v outside [1, 10]", i, savvy)
		}

		cat, _ := r.CategoricalValue(models.FieldPreferredCategory)
		if !validCategories[cat] {
			t.Errorf("record %d preferred_category %q not in %v", i, cat, sampleCategories)
		}

		if r.Segment != models.SegmentUnassigned {
			t.Errorf("record %d pre-assigned to segment %d", i, r.Segment)
		}
	}
}

func TestGenerateSample_Deterministic(t *testing.T) {
	a := GenerateSample(50, 42)
	b := GenerateSample(50, 42)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different datasets")
	}

	c := GenerateSample(50, 7)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical datasets")
	}
}

func TestGenerateSample_DefaultsSize(t *testing.T) {
	ds := GenerateSample(0, 42)
	if ds.Len() != 1000 {
		t.Errorf("Len() = %d, want default 1000", ds.Len())
	}
}
