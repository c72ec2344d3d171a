// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/klawrence/brandgen/internal/models"
)

// ExportSegments writes one CSV file per assigned segment under dir,
// named <prefix>_segment_<id>.csv, and returns the written paths in
// segment order. Columns are customer_id, the schema fields in sorted
// order, then segment. Unassigned records are skipped; missing values
// render as empty cells.
func ExportSegments(ds *models.Dataset, dir, prefix string) ([]string, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyFile
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create segment export directory: %w", err)
	}

	bySegment := make(map[int][]*models.CustomerRecord)
	for i := range ds.Records {
		r := &ds.Records[i]
		if r.Segment == models.SegmentUnassigned {
			continue
		}
		bySegment[r.Segment] = append(bySegment[r.Segment], r)
	}

	segments := make([]int, 0, len(bySegment))
	for id := range bySegment {
		segments = append(segments, id)
	}
	sort.Ints(segments)

	fields := ds.Schema.FieldNames()
	header := append(append([]string{"customer_id"}, fields...), "segment")

	var paths []string
	for _, id := range segments {
		path := filepath.Join(dir, fmt.Sprintf("%s_segment_%d.csv", prefix, id))
		if err := writeSegmentCSV(path, header, fields, bySegment[id]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSegmentCSV(path string, header, fields []string, records []*models.CustomerRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create segment export %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, r := range records {
		row[0] = r.ID
		for i, field := range fields {
			row[i+1] = cellValue(r, field)
		}
		row[len(row)-1] = strconv.Itoa(r.Segment)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write segment export %s: %w", path, err)
	}
	return nil
}

func cellValue(r *models.CustomerRecord, field string) string {
	if v, ok := r.NumericValue(field); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v, ok := r.CategoricalValue(field); ok {
		return v
	}
	return ""
}
