// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Standardize returns a matrix of equal shape where every column has
// zero mean and unit standard deviation, computed over the given matrix
// only. A zero-variance column scales to all zeros (0/0 is defined as 0
// here, not an error).
//
// The transform is stateless: no scaling parameters are retained across
// runs, and the input matrix is not modified.
func Standardize(m *FeatureMatrix) *FeatureMatrix {
	rows, cols := m.Rows(), m.Cols()

	out := &FeatureMatrix{
		Columns: append([]string(nil), m.Columns...),
		Data:    make([][]float64, rows),
	}
	for i := range out.Data {
		out.Data[i] = make([]float64, cols)
	}

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = m.Data[i][j]
		}

		mean := stat.Mean(col, nil)
		std := popStdDev(col, mean)

		for i := 0; i < rows; i++ {
			if std == 0 {
				out.Data[i][j] = 0
				continue
			}
			out.Data[i][j] = (col[i] - mean) / std
		}
	}

	return out
}

// popStdDev computes the population standard deviation about a known
// mean. The population form (divide by n) matches the scaler contract;
// stat.StdDev uses the sample form.
func popStdDev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}
