// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"strings"
	"testing"

	"github.com/klawrence/brandgen/internal/models"
)

func TestCalculateROI(t *testing.T) {
	tests := []struct {
		name    string
		revenue float64
		spend   float64
		want    models.ROIMetrics
	}{
		{
			name:    "profitable campaign",
			revenue: 15000,
			spend:   5000,
			want: models.ROIMetrics{
				ROIPercentage: 200,
				ROAS:          300,
				Profit:        10000,
				ProfitMargin:  66.67,
			},
		},
		{
			name:    "losing campaign",
			revenue: 3000,
			spend:   5000,
			want: models.ROIMetrics{
				ROIPercentage: -40,
				ROAS:          60,
				Profit:        -2000,
				ProfitMargin:  -66.67,
			},
		},
		{
			name:    "zero spend with revenue",
			revenue: 1000,
			spend:   0,
			want: models.ROIMetrics{
				Profit:       1000,
				ProfitMargin: 100,
			},
		},
		{
			name:    "zero spend zero revenue",
			revenue: 0,
			spend:   0,
			want:    models.ROIMetrics{},
		},
		{
			name:    "zero revenue with spend",
			revenue: 0,
			spend:   500,
			want: models.ROIMetrics{
				ROIPercentage: -100,
				Profit:        -500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateROI(tt.revenue, tt.spend); got != tt.want {
				t.Errorf("CalculateROI(%v, %v) = %+v, want %+v", tt.revenue, tt.spend, got, tt.want)
			}
		})
	}
}

func TestDerivePerformance(t *testing.T) {
	data := &models.PerformanceData{
		TotalImpressions: 10000,
		TotalClicks:      200,
		TotalConversions: 10,
		TotalEngagements: 300,
		TotalSpend:       500,
		TotalRevenue:     2000,
	}

	got := derivePerformance(data)
	if got.EngagementRate != 3 {
		t.Errorf("EngagementRate = %v, want 3", got.EngagementRate)
	}
	if got.ClickThroughRate != 2 {
		t.Errorf("ClickThroughRate = %v, want 2", got.ClickThroughRate)
	}
	if got.ConversionRate != 5 {
		t.Errorf("ConversionRate = %v, want 5", got.ConversionRate)
	}
	if got.CostPerAcquisition != 50 {
		t.Errorf("CostPerAcquisition = %v, want 50", got.CostPerAcquisition)
	}
	if got.ReturnOnAdSpend != 400 {
		t.Errorf("ReturnOnAdSpend = %v, want 400", got.ReturnOnAdSpend)
	}
}

func TestDerivePerformance_ZeroDenominators(t *testing.T) {
	got := derivePerformance(&models.PerformanceData{})
	if got.EngagementRate != 0 || got.ClickThroughRate != 0 || got.ConversionRate != 0 {
		t.Errorf("zero input produced nonzero rates: %+v", got)
	}
	if got.CostPerAcquisition != 0 || got.ReturnOnAdSpend != 0 {
		t.Errorf("zero input produced nonzero spend metrics: %+v", got)
	}
}

func TestPerformanceRecommendations_Thresholds(t *testing.T) {
	weak := models.PerformanceMetrics{
		EngagementRate:   1.0,
		ClickThroughRate: 0.5,
		ConversionRate:   1.0,
		ReturnOnAdSpend:  100,
	}

	recs := performanceRecommendations(weak, nil)
	if len(recs) != 4 {
		t.Fatalf("len(recs) = %d, want 4: %v", len(recs), recs)
	}
	wantFragments := []string{
		"Low engagement rate",
		"CTR is below industry average",
		"Low conversion rate",
		"ROAS is below target",
	}
	for i, frag := range wantFragments {
		if !strings.Contains(recs[i], frag) {
			t.Errorf("recs[%d] = %q, want fragment %q", i, recs[i], frag)
		}
	}

	strong := models.PerformanceMetrics{
		EngagementRate:   5,
		ClickThroughRate: 2,
		ConversionRate:   4,
		ReturnOnAdSpend:  400,
	}
	if recs := performanceRecommendations(strong, nil); len(recs) != 0 {
		t.Errorf("strong metrics produced recommendations: %v", recs)
	}
}

func TestPerformanceRecommendations_SegmentExtremes(t *testing.T) {
	strong := models.PerformanceMetrics{
		EngagementRate:   5,
		ClickThroughRate: 2,
		ConversionRate:   4,
		ReturnOnAdSpend:  400,
	}
	segments := map[int]models.SegmentPerformance{
		0: {ROI: 150},
		1: {ROI: 420},
		2: {ROI: 80},
	}

	recs := performanceRecommendations(strong, segments)
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], "Segment 1 shows highest ROI") {
		t.Errorf("recs[0] = %q", recs[0])
	}
	if !strings.Contains(recs[1], "Segment 2 underperforming") {
		t.Errorf("recs[1] = %q", recs[1])
	}
}

func TestExtremeROISegments_TiesPreferLowerID(t *testing.T) {
	segments := map[int]models.SegmentPerformance{
		0: {ROI: 100},
		1: {ROI: 100},
		2: {ROI: 100},
	}
	best, worst := extremeROISegments(segments)
	if best != 0 || worst != 0 {
		t.Errorf("extremeROISegments() = %d, %d, want 0, 0", best, worst)
	}
}
