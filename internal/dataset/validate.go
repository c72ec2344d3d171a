// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// supportedExtensions lists the upload formats the loader understands.
var supportedExtensions = []string{".csv", ".json"}

// UploadValidation is the result of validating an uploaded file before
// it is parsed into a dataset.
type UploadValidation struct {
	Valid    bool       `json:"valid"`
	Errors   []string   `json:"errors,omitempty"`
	Warnings []string   `json:"warnings,omitempty"`
	FileInfo UploadInfo `json:"file_info"`
}

// UploadInfo describes the uploaded file.
type UploadInfo struct {
	Name      string   `json:"name"`
	SizeBytes int64    `json:"size_bytes"`
	SizeMB    float64  `json:"size_mb"`
	Extension string   `json:"extension"`
	Columns   []string `json:"columns,omitempty"`
}

// ValidateUpload checks an uploaded file's size, extension and
// readability without fully parsing it. The content is read from data;
// only the header region is inspected for structure.
func ValidateUpload(name string, data []byte, maxSizeMB int) *UploadValidation {
	ext := strings.ToLower(extension(name))
	result := &UploadValidation{
		FileInfo: UploadInfo{
			Name:      name,
			SizeBytes: int64(len(data)),
			SizeMB:    float64(len(data)) / (1024 * 1024),
			Extension: ext,
		},
	}

	if len(data) == 0 {
		result.Errors = append(result.Errors, "file is empty")
	}
	if maxSizeMB > 0 && int64(len(data)) > int64(maxSizeMB)*1024*1024 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("file size (%.2f MB) exceeds maximum allowed size (%d MB)", result.FileInfo.SizeMB, maxSizeMB))
	}

	if !extensionSupported(ext) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("unsupported file type %q, supported types: %s", ext, strings.Join(supportedExtensions, ", ")))
		result.Valid = len(result.Errors) == 0
		return result
	}

	switch ext {
	case ".csv":
		validateCSVHeader(data, result)
	case ".json":
		validateJSONShape(data, result)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func extensionSupported(ext string) bool {
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// validateCSVHeader checks that the CSV has a parseable header row with
// at least one column.
func validateCSVHeader(data []byte, result *UploadValidation) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unable to read CSV file: %v", err))
		return
	}
	nonEmpty := 0
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if header[i] != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		result.Errors = append(result.Errors, "CSV file appears to be empty or invalid")
		return
	}
	result.FileInfo.Columns = header

	if _, err := cr.Read(); err == io.EOF {
		result.Warnings = append(result.Warnings, "CSV file has a header but no data rows")
	}
}

// validateJSONShape checks that the JSON payload is an array of objects.
func validateJSONShape(data []byte, result *UploadValidation) {
	var probe []map[string]interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unable to read JSON file: %v", err))
		return
	}
	if len(probe) == 0 {
		result.Errors = append(result.Errors, "JSON file contains no records")
		return
	}
	for name := range probe[0] {
		result.FileInfo.Columns = append(result.FileInfo.Columns, name)
	}
}
