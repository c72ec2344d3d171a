// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package models

// NumericSummary holds descriptive statistics for one numeric feature
// within a segment. Values are rounded to 2 decimal places.
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std"`
}

// CategoricalSummary holds descriptive statistics for one categorical
// feature within a segment.
type CategoricalSummary struct {
	// Mode is the most frequent value, or "N/A" for an empty column.
	Mode string `json:"mode"`

	// UniqueValues is the number of distinct values observed.
	UniqueValues int `json:"unique_values"`
}

// SegmentProfile describes one customer segment produced by clustering.
// Profiles are computed from the original (unscaled) records and are
// never mutated in place - a new analysis run replaces them wholesale.
type SegmentProfile struct {
	// SegmentID is the cluster index in [0, n_clusters).
	SegmentID int `json:"segment_id"`

	// Name is the derived three-part descriptive label, e.g.
	// "Young High-income Tech-savvy".
	Name string `json:"name"`

	// Size is the number of customers in the segment.
	Size int `json:"size"`

	// Percentage is the segment's share of all customers (0-100,
	// rounded to 2 decimal places).
	Percentage float64 `json:"percentage"`

	// Numeric holds per-feature statistics for the numeric features
	// used in the run.
	Numeric map[string]NumericSummary `json:"numeric"`

	// Categorical holds per-feature statistics for the categorical
	// features used in the run.
	Categorical map[string]CategoricalSummary `json:"categorical"`

	// Headline means used for labeling and recommendation rules.
	AvgAge            float64 `json:"avg_age"`
	AvgIncome         float64 `json:"avg_income"`
	AvgSpendingScore  float64 `json:"avg_spending_score"`
	AvgEngagement     float64 `json:"avg_engagement"`
	DigitalSavvyScore float64 `json:"digital_savvy_score"`
	BrandLoyaltyScore float64 `json:"brand_loyalty_score"`

	// Recommendations holds the marketing heuristics derived from this
	// profile. Populated by the recommendation engine.
	Recommendations *Recommendations `json:"recommendations,omitempty"`
}

// Recommendations holds the marketing heuristics for one segment.
type Recommendations struct {
	// PreferredChannels is a deduplicated list of marketing channels,
	// in rule-evaluation order.
	PreferredChannels []string `json:"preferred_channels"`

	// CampaignTypes lists recommended campaign archetypes.
	CampaignTypes []string `json:"campaign_types"`

	// MessagingTone is the single recommended tone, from the first
	// matching rule in priority order.
	MessagingTone string `json:"messaging_tone"`

	// BudgetAllocation splits the campaign budget across the four
	// fixed categories. Percentages always sum to 100.
	BudgetAllocation BudgetAllocation `json:"budget_allocation"`
}

// BudgetAllocation is a percentage split across the four fixed budget
// categories. The four values sum to 100.
type BudgetAllocation struct {
	Digital         float64 `json:"digital"`
	Traditional     float64 `json:"traditional"`
	ContentCreation float64 `json:"content_creation"`
	Analytics       float64 `json:"analytics"`
}

// Total returns the sum of all categories.
func (b BudgetAllocation) Total() float64 {
	return b.Digital + b.Traditional + b.ContentCreation + b.Analytics
}

// SegmentationResult is the full output of one segmentation run:
// assignments, centroids and inertia from the clusterer, plus the
// per-segment profiles with recommendations.
type SegmentationResult struct {
	// NClusters is the requested cluster count.
	NClusters int `json:"n_clusters"`

	// Assignments maps customer ID to segment id in [0, NClusters).
	// Stale after any change to the cluster count or feature set.
	Assignments map[string]int `json:"assignments"`

	// Centroids holds one mean feature vector per cluster, in the
	// scaled feature space.
	Centroids [][]float64 `json:"centroids"`

	// Inertia is the total within-cluster sum of squared distances.
	Inertia float64 `json:"inertia"`

	// Features is the feature set the run used, in matrix column order.
	Features []string `json:"features"`

	// Profiles holds one profile per non-empty segment, ordered by
	// segment id.
	Profiles []SegmentProfile `json:"profiles"`
}
