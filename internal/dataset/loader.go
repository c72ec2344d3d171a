// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/klawrence/brandgen/internal/models"
)

// Errors returned by the loader.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("file contains no records")
)

// idColumns are recognized as the customer identifier, checked in order.
var idColumns = []string{"customer_id", "id"}

// Load parses a dataset from r based on the file extension of name.
// Supported extensions are .csv and .json.
func Load(r io.Reader, name string) (*models.Dataset, error) {
	ext := strings.ToLower(extension(name))
	switch ext {
	case ".csv":
		return ParseCSV(r)
	case ".json":
		return ParseJSON(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// extension returns the file extension of name including the dot.
func extension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// ParseCSV reads a headered CSV stream into a Dataset. Column kinds are
// inferred: a column is numeric when every non-empty value parses as a
// float, categorical otherwise. An empty cell is a missing value.
//
// A customer_id or id column (first match wins) becomes the record ID
// and is excluded from the schema. Without one, IDs are assigned by row
// position starting at 1.
func ParseCSV(r io.Reader) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	idCol := findIDColumn(header)

	// Infer column kinds from the data.
	numeric := make([]bool, len(header))
	for col := range header {
		numeric[col] = columnIsNumeric(rows, col)
	}

	schema := make(models.Schema, len(header))
	for col, name := range header {
		if col == idCol || name == "" {
			continue
		}
		if numeric[col] {
			schema[name] = models.FieldNumeric
		} else {
			schema[name] = models.FieldCategorical
		}
	}

	records := make([]models.CustomerRecord, 0, len(rows))
	for i, row := range rows {
		rec := models.CustomerRecord{
			Numeric:     make(map[string]float64),
			Categorical: make(map[string]string),
			Segment:     models.SegmentUnassigned,
		}
		for col, name := range header {
			if col >= len(row) || name == "" {
				continue
			}
			val := strings.TrimSpace(row[col])
			if col == idCol {
				rec.ID = val
				continue
			}
			if val == "" {
				continue
			}
			if numeric[col] {
				f, err := strconv.ParseFloat(val, 64)
				if err != nil {
					continue
				}
				rec.Numeric[name] = f
			} else {
				rec.Categorical[name] = val
			}
		}
		if rec.ID == "" {
			rec.ID = strconv.Itoa(i + 1)
		}
		records = append(records, rec)
	}

	return &models.Dataset{Schema: schema, Records: records}, nil
}

// jsonRecord is one row of a JSON-array dataset with arbitrary columns.
type jsonRecord map[string]interface{}

// ParseJSON reads a JSON array of flat objects into a Dataset. Numeric
// JSON values map to numeric columns; strings to categorical ones. A
// column holding both is categorical, with numbers formatted back to
// strings. Null values are missing.
func ParseJSON(r io.Reader) (*models.Dataset, error) {
	var raw []jsonRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyFile
	}

	// First pass: classify columns across all rows.
	numeric := make(map[string]bool)
	seen := make(map[string]bool)
	for _, row := range raw {
		for name, v := range row {
			if v == nil {
				continue
			}
			_, isNum := v.(float64)
			if !seen[name] {
				seen[name] = true
				numeric[name] = isNum
			} else if numeric[name] && !isNum {
				numeric[name] = false
			}
		}
	}

	idCol := ""
	for _, cand := range idColumns {
		if seen[cand] {
			idCol = cand
			break
		}
	}

	schema := make(models.Schema, len(seen))
	for name := range seen {
		if name == idCol {
			continue
		}
		if numeric[name] {
			schema[name] = models.FieldNumeric
		} else {
			schema[name] = models.FieldCategorical
		}
	}

	records := make([]models.CustomerRecord, 0, len(raw))
	for i, row := range raw {
		rec := models.CustomerRecord{
			Numeric:     make(map[string]float64),
			Categorical: make(map[string]string),
			Segment:     models.SegmentUnassigned,
		}
		for name, v := range row {
			if v == nil {
				continue
			}
			if name == idCol {
				rec.ID = stringify(v)
				continue
			}
			if numeric[name] {
				if f, ok := v.(float64); ok {
					rec.Numeric[name] = f
				}
				continue
			}
			rec.Categorical[name] = stringify(v)
		}
		if rec.ID == "" {
			rec.ID = strconv.Itoa(i + 1)
		}
		records = append(records, rec)
	}

	return &models.Dataset{Schema: schema, Records: records}, nil
}

// stringify renders a decoded JSON scalar as a string.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// findIDColumn returns the index of the identifier column, or -1.
func findIDColumn(header []string) int {
	for _, cand := range idColumns {
		for i, name := range header {
			if strings.EqualFold(name, cand) {
				return i
			}
		}
	}
	return -1
}

// columnIsNumeric reports whether every non-empty value in the column
// parses as a float. A column with no values at all is categorical.
func columnIsNumeric(rows [][]string, col int) bool {
	any := false
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[col])
		if val == "" {
			continue
		}
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			return false
		}
		any = true
	}
	return any
}

// Clean removes exact duplicate rows and fills missing values in place:
// numeric columns with the column median, categorical columns with the
// column mode (or "Unknown" when the column is entirely empty). It
// returns the number of duplicates removed.
func Clean(ds *models.Dataset) int {
	removed := dedupeRecords(ds)
	fillMissing(ds)
	return removed
}

// dedupeRecords removes records whose field values exactly match an
// earlier record, keeping the first occurrence. The ID is not part of
// the comparison, matching duplicate detection on row content.
func dedupeRecords(ds *models.Dataset) int {
	seen := make(map[string]bool, len(ds.Records))
	kept := ds.Records[:0]
	removed := 0
	for i := range ds.Records {
		key := recordKey(&ds.Records[i], ds.Schema)
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		kept = append(kept, ds.Records[i])
	}
	ds.Records = kept
	return removed
}

// recordKey builds a canonical string of all field values in schema
// order for duplicate detection.
func recordKey(r *models.CustomerRecord, schema models.Schema) string {
	var b strings.Builder
	for _, name := range schema.FieldNames() {
		b.WriteString(name)
		b.WriteByte('=')
		switch schema[name] {
		case models.FieldNumeric:
			if v, ok := r.NumericValue(name); ok {
				b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		case models.FieldCategorical:
			if v, ok := r.CategoricalValue(name); ok {
				b.WriteString(v)
			}
		}
		b.WriteByte('\x1f')
	}
	return b.String()
}

// fillMissing imputes missing values column by column.
func fillMissing(ds *models.Dataset) {
	for _, name := range ds.Schema.FieldNames() {
		switch ds.Schema[name] {
		case models.FieldNumeric:
			fillNumeric(ds, name)
		case models.FieldCategorical:
			fillCategorical(ds, name)
		}
	}
}

func fillNumeric(ds *models.Dataset, field string) {
	var present []float64
	for i := range ds.Records {
		if v, ok := ds.Records[i].NumericValue(field); ok {
			present = append(present, v)
		}
	}
	if len(present) == 0 || len(present) == len(ds.Records) {
		return
	}
	med := medianOf(present)
	for i := range ds.Records {
		if _, ok := ds.Records[i].NumericValue(field); !ok {
			ds.Records[i].Numeric[field] = med
		}
	}
}

func fillCategorical(ds *models.Dataset, field string) {
	counts := make(map[string]int)
	for i := range ds.Records {
		if v, ok := ds.Records[i].CategoricalValue(field); ok {
			counts[v]++
		}
	}
	fill := "Unknown"
	if len(counts) > 0 {
		fill = modeOfCounts(counts)
	}
	for i := range ds.Records {
		if _, ok := ds.Records[i].CategoricalValue(field); !ok {
			ds.Records[i].Categorical[field] = fill
		}
	}
}

// medianOf returns the median of xs without modifying it.
func medianOf(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// modeOfCounts returns the most frequent value, breaking ties toward
// the lexicographically smaller one for determinism.
func modeOfCounts(counts map[string]int) string {
	best := ""
	bestN := -1
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best = v
			bestN = n
		}
	}
	return best
}
