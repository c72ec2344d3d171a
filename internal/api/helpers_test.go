// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/klawrence/brandgen/internal/models"
)

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"status":"success"}`))
	b := generateETag([]byte(`{"status":"success"}`))
	c := generateETag([]byte(`{"status":"error"}`))

	if a == "" {
		t.Fatal("empty ETag")
	}
	if a != b {
		t.Errorf("same payload produced different ETags: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different payloads produced the same ETag: %s", a)
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"present", "/x?n=25", 25},
		{"absent", "/x", 10},
		{"not a number", "/x?n=abc", 10},
		{"negative", "/x?n=-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := getIntParam(r, "n", 10); got != tt.want {
				t.Errorf("getIntParam(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseCommaSeparated(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"age", []string{"age"}},
		{"age,income", []string{"age", "income"}},
		{" age , income ", []string{"age", "income"}},
		{"age,,income,", []string{"age", "income"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseCommaSeparated(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseCommaSeparated(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "customers.csv", "customers.csv"},
		{"newline", "a\nb", `a\x0ab`},
		{"carriage return", "a\rb", `a\x0db`},
		{"delete", "a\x7fb", `a\x7fb`},
		{"unicode kept", "café", "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMergeConfig(t *testing.T) {
	base := models.CampaignConfig{
		Name:               "Template Name",
		Product:            "Template Product",
		TargetAudience:     "everyone",
		Style:              "modern",
		Mood:               "calm",
		AdditionalElements: []string{"logo"},
		Industry:           "Retail",
		BudgetRange:        "medium",
	}

	got := mergeConfig(base, models.CampaignConfig{
		Name:    "My Campaign",
		Product: "My Product",
		Mood:    "bold",
	})

	if got.Name != "My Campaign" || got.Product != "My Product" || got.Mood != "bold" {
		t.Errorf("overrides not applied: %+v", got)
	}
	if got.TargetAudience != "everyone" || got.Style != "modern" || got.Industry != "Retail" {
		t.Errorf("base fields lost: %+v", got)
	}
	if len(got.AdditionalElements) != 1 || got.AdditionalElements[0] != "logo" {
		t.Errorf("elements = %v", got.AdditionalElements)
	}

	// A non-empty override replaces the element list wholesale.
	got = mergeConfig(base, models.CampaignConfig{AdditionalElements: []string{"skyline", "neon"}})
	if !reflect.DeepEqual(got.AdditionalElements, []string{"skyline", "neon"}) {
		t.Errorf("elements = %v", got.AdditionalElements)
	}
}

func TestNumericFeatures(t *testing.T) {
	schema := models.Schema{
		"age":    models.FieldNumeric,
		"income": models.FieldNumeric,
		"gender": models.FieldCategorical,
	}

	got := numericFeatures(schema)
	if !reflect.DeepEqual(got, []string{"age", "income"}) {
		t.Errorf("numericFeatures() = %v", got)
	}
}
