// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package imagegen

import (
	"strings"

	"github.com/klawrence/brandgen/internal/models"
)

// MarketingPrompt builds the base image prompt for a campaign.
func MarketingPrompt(cfg *models.CampaignConfig) string {
	var b strings.Builder
	b.WriteString("Create a ")
	b.WriteString(orDefault(cfg.Style, "modern"))
	b.WriteString(" marketing image for ")
	b.WriteString(orDefault(cfg.Product, "product"))
	b.WriteString(" targeting ")
	b.WriteString(orDefault(cfg.TargetAudience, "a general audience"))
	b.WriteString(". The mood should be ")
	b.WriteString(orDefault(cfg.Mood, "professional"))
	b.WriteString(". ")

	if len(cfg.AdditionalElements) > 0 {
		b.WriteString("Include these elements: ")
		b.WriteString(strings.Join(cfg.AdditionalElements, ", "))
		b.WriteString(". ")
	}

	b.WriteString("High quality, professional photography style, clean composition, ")
	b.WriteString("suitable for digital marketing campaigns.")
	return b.String()
}

// PersonalizedPrompt builds a segment-specific prompt by folding the
// segment's demographics into the campaign's base description. The
// audience clause is derived from the segment's mean age and, when
// available, its dominant gender and interests.
func PersonalizedPrompt(cfg *models.CampaignConfig, profile *models.SegmentProfile) string {
	var b strings.Builder
	b.WriteString("Create a ")
	b.WriteString(orDefault(cfg.Style, "modern"))
	b.WriteString(" marketing image for ")
	b.WriteString(orDefault(cfg.Product, "product"))
	b.WriteString(" targeting ")
	b.WriteString(audienceBand(profile.AvgAge))
	b.WriteString(" ")

	if g, ok := profile.Categorical[models.FieldGender]; ok {
		mode := strings.ToLower(g.Mode)
		if mode == "male" || mode == "female" {
			b.WriteString("primarily ")
			b.WriteString(mode)
			b.WriteString(" audience ")
		} else {
			b.WriteString("diverse audience ")
		}
	}

	if in, ok := profile.Categorical[models.FieldInterests]; ok && in.Mode != "" && in.Mode != "N/A" {
		b.WriteString("with interests in ")
		b.WriteString(in.Mode)
		b.WriteString(" ")
	}

	b.WriteString(". Style: ")
	b.WriteString(orDefault(cfg.Style, "modern"))
	b.WriteString(", Mood: ")
	b.WriteString(orDefault(cfg.Mood, "professional"))
	b.WriteString(". High quality, professional, suitable for digital marketing.")
	return b.String()
}

// PersonalizedPrompts builds one prompt per segment profile, in profile
// order.
func PersonalizedPrompts(cfg *models.CampaignConfig, profiles []models.SegmentProfile) []string {
	prompts := make([]string, len(profiles))
	for i := range profiles {
		prompts[i] = PersonalizedPrompt(cfg, &profiles[i])
	}
	return prompts
}

// audienceBand maps a segment's mean age to an audience description.
func audienceBand(age float64) string {
	switch {
	case age < 25:
		return "young adults (18-25)"
	case age < 35:
		return "millennials (25-35)"
	case age < 50:
		return "middle-aged professionals (35-50)"
	default:
		return "mature adults (50+)"
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
