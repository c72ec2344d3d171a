// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/klawrence/brandgen/internal/models"
)

const sampleCSV = `customer_id,age,income,gender,location
c1,25,40000,female,NYC
c2,35,60000,male,LA
c3,45,,female,NYC
c4,55,80000,,Chicago
`

func TestParseCSV(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	if ds.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", ds.Len())
	}

	// customer_id is the record ID, not a schema column.
	if ds.Schema.Has("customer_id") {
		t.Error("customer_id leaked into the schema")
	}
	if ds.Records[0].ID != "c1" {
		t.Errorf("Records[0].ID = %q, want c1", ds.Records[0].ID)
	}

	// Kinds inferred from the data.
	if ds.Schema["age"] != models.FieldNumeric {
		t.Errorf("age kind = %v, want numeric", ds.Schema["age"])
	}
	if ds.Schema["gender"] != models.FieldCategorical {
		t.Errorf("gender kind = %v, want categorical", ds.Schema["gender"])
	}

	// Empty cells are missing, not zero.
	if _, ok := ds.Records[2].NumericValue("income"); ok {
		t.Error("empty income cell parsed as a value")
	}
	if _, ok := ds.Records[3].CategoricalValue("gender"); ok {
		t.Error("empty gender cell parsed as a value")
	}
}

func TestParseCSV_NoIDColumn(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader("age,gender\n25,female\n35,male\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if ds.Records[0].ID != "1" || ds.Records[1].ID != "2" {
		t.Errorf("row-position IDs = %q, %q, want 1, 2", ds.Records[0].ID, ds.Records[1].ID)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no content", ""},
		{"header only", "age,gender\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			if !errors.Is(err, ErrEmptyFile) {
				t.Errorf("ParseCSV() error = %v, want ErrEmptyFile", err)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	input := `[
		{"customer_id": "c1", "age": 25, "gender": "female"},
		{"customer_id": "c2", "age": 35, "gender": "male"},
		{"customer_id": "c3", "age": null, "gender": "female"}
	]`

	ds, err := ParseJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	if ds.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ds.Len())
	}
	if ds.Records[0].ID != "c1" {
		t.Errorf("Records[0].ID = %q, want c1", ds.Records[0].ID)
	}
	if ds.Schema["age"] != models.FieldNumeric {
		t.Errorf("age kind = %v, want numeric", ds.Schema["age"])
	}
	if _, ok := ds.Records[2].NumericValue("age"); ok {
		t.Error("null age parsed as a value")
	}
}

func TestParseJSON_MixedColumnDemotesToCategorical(t *testing.T) {
	input := `[
		{"size": 10},
		{"size": "large"}
	]`

	ds, err := ParseJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if ds.Schema["size"] != models.FieldCategorical {
		t.Errorf("mixed column kind = %v, want categorical", ds.Schema["size"])
	}
	if v, _ := ds.Records[0].CategoricalValue("size"); v != "10" {
		t.Errorf("numeric value stringified to %q, want 10", v)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(strings.NewReader("data"), "customers.xlsx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestClean_RemovesDuplicates(t *testing.T) {
	csv := `age,gender
25,female
25,female
35,male
`
	ds, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	removed := Clean(ds)
	if removed != 1 {
		t.Errorf("Clean() removed = %d, want 1", removed)
	}
	if ds.Len() != 2 {
		t.Errorf("Len() after Clean = %d, want 2", ds.Len())
	}
}

func TestClean_FillsMissing(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	Clean(ds)

	// Missing income filled with the median of 40000/60000/80000.
	if v, ok := ds.Records[2].NumericValue("income"); !ok || v != 60000 {
		t.Errorf("filled income = %v (present %v), want 60000", v, ok)
	}
	// Missing gender filled with the mode "female".
	if v, ok := ds.Records[3].CategoricalValue("gender"); !ok || v != "female" {
		t.Errorf("filled gender = %q (present %v), want female", v, ok)
	}
}

func TestClean_AllMissingCategoricalGetsUnknown(t *testing.T) {
	ds := &models.Dataset{
		Schema: models.Schema{"notes": models.FieldCategorical},
		Records: []models.CustomerRecord{
			{ID: "1", Numeric: map[string]float64{}, Categorical: map[string]string{}},
			{ID: "2", Numeric: map[string]float64{}, Categorical: map[string]string{}},
		},
	}

	Clean(ds)
	for i := range ds.Records {
		if v, _ := ds.Records[i].CategoricalValue("notes"); v != "Unknown" {
			t.Errorf("record %d notes = %q, want Unknown", i, v)
		}
	}
}

func TestModeOfCounts_TieBreaksLexicographic(t *testing.T) {
	counts := map[string]int{"b": 3, "a": 3, "c": 1}
	if got := modeOfCounts(counts); got != "a" {
		t.Errorf("modeOfCounts() = %q, want a", got)
	}
}
