// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package imagegen generates marketing images through the OpenAI
// image API (DALL-E 3).
//
// The client wraps outbound calls in a circuit breaker and a
// client-side rate limiter. Batch generation continues past individual
// failures so one rejected prompt does not abort a campaign's whole
// image run. Binary image data is written to disk; campaign records
// only carry file paths and metadata.
//
// Prompt construction lives in prompts.go and is pure: the same
// campaign config and segment profile always produce the same prompt.
package imagegen
