// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"strings"
	"testing"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		data      string
		maxSizeMB int
		wantValid bool
		wantErr   string
	}{
		{
			name:      "valid csv",
			filename:  "customers.csv",
			data:      "age,gender\n25,female\n",
			maxSizeMB: 10,
			wantValid: true,
		},
		{
			name:      "valid json",
			filename:  "customers.json",
			data:      `[{"age": 25, "gender": "female"}]`,
			maxSizeMB: 10,
			wantValid: true,
		},
		{
			name:      "empty file",
			filename:  "customers.csv",
			data:      "",
			maxSizeMB: 10,
			wantValid: false,
			wantErr:   "file is empty",
		},
		{
			name:      "unsupported extension",
			filename:  "customers.xlsx",
			data:      "data",
			maxSizeMB: 10,
			wantValid: false,
			wantErr:   "unsupported file type",
		},
		{
			name:      "malformed json",
			filename:  "customers.json",
			data:      `{"not": "an array"}`,
			maxSizeMB: 10,
			wantValid: false,
			wantErr:   "unable to read JSON file",
		},
		{
			name:      "empty json array",
			filename:  "customers.json",
			data:      `[]`,
			maxSizeMB: 10,
			wantValid: false,
			wantErr:   "JSON file contains no records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateUpload(tt.filename, []byte(tt.data), tt.maxSizeMB)

			if result.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if tt.wantErr != "" {
				found := false
				for _, e := range result.Errors {
					if strings.Contains(e, tt.wantErr) {
						found = true
					}
				}
				if !found {
					t.Errorf("Errors = %v, want one containing %q", result.Errors, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateUpload_SizeLimit(t *testing.T) {
	big := make([]byte, 2*1024*1024)
	result := ValidateUpload("customers.csv", big, 1)

	if result.Valid {
		t.Error("oversized file passed validation")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "exceeds maximum allowed size") {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors = %v, want a size error", result.Errors)
	}
}

func TestValidateUpload_HeaderOnlyWarns(t *testing.T) {
	result := ValidateUpload("customers.csv", []byte("age,gender\n"), 10)

	if !result.Valid {
		t.Errorf("header-only CSV rejected: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a no-data-rows warning")
	}
	if len(result.FileInfo.Columns) != 2 {
		t.Errorf("Columns = %v, want 2 entries", result.FileInfo.Columns)
	}
}
