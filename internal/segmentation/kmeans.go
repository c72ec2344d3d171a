// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// KMeansConfig configures the clusterer.
type KMeansConfig struct {
	// K is the number of clusters. Must be in [1, rows].
	K int

	// MaxIterations bounds the Lloyd's relocation loop per restart.
	// Default: 300.
	MaxIterations int

	// Restarts is the number of seeded k-means++ initializations; the
	// run with the lowest inertia wins. Default: 10.
	Restarts int

	// Seed drives all randomness. The same seed, data and K always
	// produce the same assignments.
	Seed int64
}

// DefaultKMeansConfig returns the default clustering configuration.
func DefaultKMeansConfig() KMeansConfig {
	return KMeansConfig{
		K:             4,
		MaxIterations: 300,
		Restarts:      10,
		Seed:          42,
	}
}

// ClusterResult is the output of one clustering run.
type ClusterResult struct {
	// Assignments holds one segment id in [0, K) per input row.
	Assignments []int

	// Centroids holds the K mean feature vectors, in the scaled space.
	Centroids [][]float64

	// Inertia is the total within-cluster sum of squared distances.
	// Lower is tighter clustering.
	Inertia float64
}

// Cluster partitions the rows of a scaled feature matrix into cfg.K
// groups using Lloyd's K-means with k-means++ initialization. Distance
// ties prefer the lower-indexed centroid.
//
// Returns ErrEmptyDataset for a zero-row matrix and
// ErrInvalidClusterCount when K is less than 1 or exceeds the row count.
func Cluster(m *FeatureMatrix, cfg KMeansConfig) (*ClusterResult, error) {
	rows := m.Rows()
	if rows == 0 {
		return nil, ErrEmptyDataset
	}
	if cfg.K < 1 || cfg.K > rows {
		return nil, invalidClusterCount(cfg.K, rows)
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 300
	}
	if cfg.Restarts <= 0 {
		cfg.Restarts = 10
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // seeded math/rand is the point: reproducible clustering

	var best *ClusterResult
	for r := 0; r < cfg.Restarts; r++ {
		res := lloyd(m, cfg.K, cfg.MaxIterations, rng)
		if best == nil || res.Inertia < best.Inertia {
			best = res
		}
	}

	return best, nil
}

// lloyd runs one full K-means pass: k-means++ seeding, then alternate
// assignment and centroid-relocation until assignments stabilize or the
// iteration budget runs out.
func lloyd(m *FeatureMatrix, k, maxIter int, rng *rand.Rand) *ClusterResult {
	rows, cols := m.Rows(), m.Cols()

	centroids := seedCentroids(m, k, rng)
	assignments := make([]int, rows)
	for i := range assignments {
		assignments[i] = -1
	}
	counts := make([]int, k)

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, row := range m.Data {
			c := nearestCentroid(row, centroids)
			if c != assignments[i] {
				assignments[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}

		// Relocate centroids to the mean of their members. A cluster
		// that lost all members keeps its previous centroid.
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, cols)
			counts[c] = 0
		}
		for i, row := range m.Data {
			c := assignments[i]
			floats.Add(sums[c], row)
			counts[c]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			floats.Scale(1/float64(counts[c]), sums[c])
			centroids[c] = sums[c]
		}
	}

	var inertia float64
	for i, row := range m.Data {
		inertia += sqDist(row, centroids[assignments[i]])
	}

	return &ClusterResult{
		Assignments: assignments,
		Centroids:   centroids,
		Inertia:     inertia,
	}
}

// seedCentroids picks k initial centroids with k-means++: the first
// uniformly at random, each subsequent one with probability proportional
// to its squared distance from the nearest chosen centroid.
func seedCentroids(m *FeatureMatrix, k int, rng *rand.Rand) [][]float64 {
	rows := m.Rows()
	centroids := make([][]float64, 0, k)

	first := rng.Intn(rows)
	centroids = append(centroids, cloneRow(m.Data[first]))

	dists := make([]float64, rows)
	for len(centroids) < k {
		var total float64
		for i, row := range m.Data {
			d := math.Inf(1)
			for _, c := range centroids {
				if sd := sqDist(row, c); sd < d {
					d = sd
				}
			}
			dists[i] = d
			total += d
		}

		// All remaining points coincide with a centroid; fall back to
		// a uniform pick to keep the centroid count at k.
		if total == 0 {
			centroids = append(centroids, cloneRow(m.Data[rng.Intn(rows)]))
			continue
		}

		target := rng.Float64() * total
		var cum float64
		pick := rows - 1
		for i, d := range dists {
			cum += d
			if cum >= target {
				pick = i
				break
			}
		}
		centroids = append(centroids, cloneRow(m.Data[pick]))
	}

	return centroids
}

// nearestCentroid returns the index of the closest centroid by squared
// Euclidean distance. Exact ties go to the lower index.
func nearestCentroid(row []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := sqDist(row, centroid); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// sqDist returns the squared Euclidean distance between two vectors of
// equal length.
func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func cloneRow(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)
	return out
}
