// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"fmt"
	"math"
	"sort"

	"github.com/klawrence/brandgen/internal/models"
)

// CalculateROI derives return-on-investment metrics from campaign
// revenue and spend. ROAS is a percentage (revenue/spend * 100). With
// zero spend the percentages collapse: ROI and ROAS are 0, profit is
// the full revenue and margin is 100 when any revenue exists.
func CalculateROI(totalRevenue, totalSpend float64) models.ROIMetrics {
	if totalSpend == 0 {
		margin := 0.0
		if totalRevenue > 0 {
			margin = 100
		}
		return models.ROIMetrics{
			Profit:       totalRevenue,
			ProfitMargin: margin,
		}
	}

	profit := totalRevenue - totalSpend
	margin := 0.0
	if totalRevenue > 0 {
		margin = profit / totalRevenue * 100
	}

	return models.ROIMetrics{
		ROIPercentage: round2(profit / totalSpend * 100),
		ROAS:          round2(totalRevenue / totalSpend * 100),
		Profit:        round2(profit),
		ProfitMargin:  round2(margin),
	}
}

// derivePerformance computes campaign-level metrics from raw input.
// Denominators are floored at 1 so a campaign with no impressions or
// clicks yields zero rates instead of dividing by zero.
func derivePerformance(data *models.PerformanceData) models.PerformanceMetrics {
	return models.PerformanceMetrics{
		EngagementRate:     float64(data.TotalEngagements) / maxInt64(data.TotalImpressions, 1) * 100,
		ClickThroughRate:   float64(data.TotalClicks) / maxInt64(data.TotalImpressions, 1) * 100,
		ConversionRate:     float64(data.TotalConversions) / maxInt64(data.TotalClicks, 1) * 100,
		CostPerAcquisition: data.TotalSpend / maxInt64(data.TotalConversions, 1),
		ReturnOnAdSpend:    data.TotalRevenue / maxFloat(data.TotalSpend, 1) * 100,
	}
}

// deriveSegmentPerformance computes per-segment metrics with the same
// guarded denominators.
func deriveSegmentPerformance(segments map[int]models.SegmentPerformanceData) map[int]models.SegmentPerformance {
	if len(segments) == 0 {
		return nil
	}
	out := make(map[int]models.SegmentPerformance, len(segments))
	for id, seg := range segments {
		out[id] = models.SegmentPerformance{
			EngagementRate: float64(seg.Engagements) / maxInt64(seg.Impressions, 1) * 100,
			ConversionRate: float64(seg.Conversions) / maxInt64(seg.Clicks, 1) * 100,
			ROI:            seg.Revenue / maxFloat(seg.Spend, 1) * 100,
		}
	}
	return out
}

// performanceRecommendations produces actionable guidance from derived
// metrics. Thresholds are rough industry baselines: engagement 2%,
// CTR 1%, conversion 2%, ROAS 300%.
func performanceRecommendations(metrics models.PerformanceMetrics, segments map[int]models.SegmentPerformance) []string {
	var recs []string

	if metrics.EngagementRate < 2.0 {
		recs = append(recs, "Low engagement rate detected. Consider refreshing creative content or adjusting targeting.")
	}
	if metrics.ClickThroughRate < 1.0 {
		recs = append(recs, "CTR is below industry average. Review ad copy and visual elements.")
	}
	if metrics.ConversionRate < 2.0 {
		recs = append(recs, "Low conversion rate. Optimize landing pages and review user journey.")
	}
	if metrics.ReturnOnAdSpend < 300 {
		recs = append(recs, "ROAS is below target. Consider budget reallocation or campaign optimization.")
	}

	if len(segments) > 0 {
		best, worst := extremeROISegments(segments)
		recs = append(recs,
			fmt.Sprintf("Segment %d shows highest ROI. Consider increasing budget allocation.", best),
			fmt.Sprintf("Segment %d underperforming. Review targeting and creative for this segment.", worst))
	}

	return recs
}

// extremeROISegments returns the segment ids with the highest and
// lowest ROI. Ties resolve to the lower segment id.
func extremeROISegments(segments map[int]models.SegmentPerformance) (best, worst int) {
	ids := make([]int, 0, len(segments))
	for id := range segments {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	best, worst = ids[0], ids[0]
	for _, id := range ids[1:] {
		if segments[id].ROI > segments[best].ROI {
			best = id
		}
		if segments[id].ROI < segments[worst].ROI {
			worst = id
		}
	}
	return best, worst
}

func maxInt64(x int64, floor int64) float64 {
	if x < floor {
		x = floor
	}
	return float64(x)
}

func maxFloat(x, floor float64) float64 {
	if x < floor {
		return floor
	}
	return x
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
