// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package segmentation

import "github.com/klawrence/brandgen/internal/models"

// Recommend derives the marketing heuristics for one segment profile:
// preferred channels, campaign archetypes, a messaging tone, and a
// budget split across the four fixed categories.
//
// The rules are priority chains with overlapping conditions; evaluation
// order is load-bearing and must not be reordered.
func Recommend(p *models.SegmentProfile) *models.Recommendations {
	return &models.Recommendations{
		PreferredChannels: recommendChannels(p),
		CampaignTypes:     recommendCampaignTypes(p),
		MessagingTone:     recommendMessagingTone(p),
		BudgetAllocation:  recommendBudget(p),
	}
}

// recommendChannels returns the deduplicated channel list in
// rule-evaluation order.
func recommendChannels(p *models.SegmentProfile) []string {
	var channels []string
	if p.DigitalSavvyScore > 6 {
		channels = append(channels, "Social Media", "Email Marketing", "Online Ads")
	}
	if p.AvgAge < 35 {
		channels = append(channels, "Instagram", "TikTok", "YouTube")
	}
	if p.AvgIncome > 60000 {
		channels = append(channels, "Premium Publications", "LinkedIn")
	}
	if p.DigitalSavvyScore < 5 {
		channels = append(channels, "Traditional Media", "Print Ads", "Radio")
	}
	return dedupe(channels)
}

func recommendCampaignTypes(p *models.SegmentProfile) []string {
	var campaigns []string
	if p.BrandLoyaltyScore > 0.7 {
		campaigns = append(campaigns, "Loyalty Program")
	}
	if p.AvgSpendingScore > 70 {
		campaigns = append(campaigns, "Premium Product Launch")
	}
	if p.AvgAge < 30 {
		campaigns = append(campaigns, "Trend-focused Campaign")
	}
	if p.DigitalSavvyScore > 7 {
		campaigns = append(campaigns, "Interactive Digital Campaign")
	}
	return campaigns
}

// recommendMessagingTone returns the first matching rule. The age rule
// takes priority over income, which takes priority over digital savvy.
func recommendMessagingTone(p *models.SegmentProfile) string {
	switch {
	case p.AvgAge < 30:
		return "Casual and trendy"
	case p.AvgIncome > 75000:
		return "Professional and sophisticated"
	case p.DigitalSavvyScore > 7:
		return "Tech-forward and innovative"
	default:
		return "Friendly and trustworthy"
	}
}

// recommendBudget starts from the fixed 40/30/20/10 split and applies
// the digital-savvy and age adjustments. Each adjustment is
// zero-sum, so the four categories always total 100.
func recommendBudget(p *models.SegmentProfile) models.BudgetAllocation {
	b := models.BudgetAllocation{
		Digital:         40,
		Traditional:     30,
		ContentCreation: 20,
		Analytics:       10,
	}

	if p.DigitalSavvyScore > 7 {
		b.Digital += 20
		b.Traditional -= 20
	}
	if p.AvgAge < 30 {
		b.ContentCreation += 10
		b.Analytics += 10
		b.Traditional -= 20
	}

	return b
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
