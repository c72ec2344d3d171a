// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"sort"

	"github.com/klawrence/brandgen/internal/models"
)

// campaignTemplates are the built-in starting points for common
// campaign shapes.
var campaignTemplates = map[string]models.CampaignConfig{
	"fashion_brand": {
		Name:               "Fashion Brand Campaign",
		Product:            "Fashion collection",
		Style:              "modern",
		Mood:               "stylish",
		TargetAudience:     "fashion-conscious consumers",
		AdditionalElements: []string{"trendy models", "urban background", "vibrant colors"},
		Industry:           "Fashion",
		BudgetRange:        "medium",
	},
	"tech_product": {
		Name:               "Tech Product Launch",
		Product:            "Tech gadget",
		Style:              "futuristic",
		Mood:               "innovative",
		TargetAudience:     "tech enthusiasts",
		AdditionalElements: []string{"sleek design", "minimalist", "high-tech environment"},
		Industry:           "Technology",
		BudgetRange:        "high",
	},
	"food_restaurant": {
		Name:               "Restaurant Promotion",
		Product:            "Gourmet food",
		Style:              "appetizing",
		Mood:               "warm and inviting",
		TargetAudience:     "food lovers",
		AdditionalElements: []string{"delicious presentation", "cozy atmosphere", "natural lighting"},
		Industry:           "Food & Beverage",
		BudgetRange:        "low",
	},
	"fitness_health": {
		Name:               "Fitness Brand",
		Product:            "Fitness program",
		Style:              "energetic",
		Mood:               "motivational",
		TargetAudience:     "fitness enthusiasts",
		AdditionalElements: []string{"active people", "gym environment", "dynamic poses"},
		Industry:           "Health & Fitness",
		BudgetRange:        "medium",
	},
	"luxury_goods": {
		Name:               "Luxury Brand",
		Product:            "Luxury items",
		Style:              "elegant",
		Mood:               "sophisticated",
		TargetAudience:     "affluent consumers",
		AdditionalElements: []string{"premium materials", "elegant lighting", "refined setting"},
		Industry:           "Luxury",
		BudgetRange:        "high",
	},
}

// Templates returns all built-in campaign templates keyed by template id.
func Templates() map[string]models.CampaignConfig {
	out := make(map[string]models.CampaignConfig, len(campaignTemplates))
	for k, v := range campaignTemplates {
		v.AdditionalElements = append([]string(nil), v.AdditionalElements...)
		out[k] = v
	}
	return out
}

// Template returns one built-in template by id.
func Template(id string) (models.CampaignConfig, bool) {
	cfg, ok := campaignTemplates[id]
	if ok {
		cfg.AdditionalElements = append([]string(nil), cfg.AdditionalElements...)
	}
	return cfg, ok
}

// TemplateIDs returns the template ids in sorted order.
func TemplateIDs() []string {
	ids := make([]string, 0, len(campaignTemplates))
	for id := range campaignTemplates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
