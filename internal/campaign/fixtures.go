// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"math/rand/v2"

	"github.com/klawrence/brandgen/internal/models"
)

// MockPerformanceData produces plausible synthetic campaign
// performance for demos and tests: clicks land at 1-5% of impressions,
// conversions at 2-8% of clicks, revenue at 1.2-3.5x spend. The same
// seed always yields the same data.
func MockPerformanceData(seed uint64) *models.PerformanceData {
	rng := rand.New(rand.NewPCG(seed, seed))

	impressions := int64(rng.IntN(90001) + 10000)
	clicks := randBetween(rng, impressions/100, impressions/20)
	conversions := randBetween(rng, clicks*2/100, clicks*8/100)
	spend := float64(rng.IntN(4501) + 500)
	revenue := float64(randBetween(rng, int64(spend*1.2), int64(spend*3.5)))

	return &models.PerformanceData{
		TotalImpressions: impressions,
		TotalClicks:      clicks,
		TotalEngagements: randBetween(rng, clicks, clicks*3/2),
		TotalConversions: conversions,
		TotalSpend:       spend,
		TotalRevenue:     revenue,
	}
}

// randBetween returns a value in [lo, hi]; a degenerate range returns lo.
func randBetween(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Int64N(hi-lo+1)
}
