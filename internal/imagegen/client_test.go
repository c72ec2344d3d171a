// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package imagegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klawrence/brandgen/internal/logging"
	"github.com/klawrence/brandgen/internal/models"
)

// scriptedGenerator fails for prompts listed in failOn.
type scriptedGenerator struct {
	failOn map[string]bool
}

func (s *scriptedGenerator) Generate(_ context.Context, prompt string, opts Options) (*Result, error) {
	if s.failOn[prompt] {
		return nil, errors.New("simulated API failure")
	}
	return &Result{
		Image: models.GeneratedImage{
			ID:        "ok",
			SegmentID: models.SegmentUnassigned,
			Prompt:    prompt,
			Size:      opts.Size,
			Success:   true,
			Timestamp: time.Now().UTC(),
		},
		Data: []byte{0x89, 'P', 'N', 'G'},
	}, nil
}

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(Config{}, logging.NewTestLogger(nil))
	if !errors.Is(err, ErrGenerationDisabled) {
		t.Errorf("NewOpenAIClient() error = %v, want ErrGenerationDisabled", err)
	}
}

func TestNewOpenAIClient_Defaults(t *testing.T) {
	c, err := NewOpenAIClient(Config{APIKey: "test-key"}, logging.NewTestLogger(nil))
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	got := c.fillDefaults(Options{})
	want := Options{Size: "1024x1024", Quality: "standard", Style: "vivid", Model: "dall-e-3"}
	if got != want {
		t.Errorf("defaults = %+v, want %+v", got, want)
	}

	// Explicit options win over defaults.
	got = c.fillDefaults(Options{Size: "512x512", Quality: "hd"})
	if got.Size != "512x512" || got.Quality != "hd" || got.Style != "vivid" {
		t.Errorf("merged options = %+v", got)
	}
}

func TestGenerateBatch_ContinuesPastFailures(t *testing.T) {
	g := &scriptedGenerator{failOn: map[string]bool{"prompt-b": true}}

	results := GenerateBatch(context.Background(), g, []string{"prompt-a", "prompt-b", "prompt-c"}, Options{Size: "1024x1024"})
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	if !results[0].Image.Success || !results[2].Image.Success {
		t.Error("successful prompts not marked successful")
	}
	if results[1].Image.Success {
		t.Error("failed prompt marked successful")
	}
	if results[1].Image.Error == "" {
		t.Error("failed prompt missing error message")
	}
	if results[1].Image.Prompt != "prompt-b" {
		t.Errorf("failure prompt = %q, want prompt-b", results[1].Image.Prompt)
	}
	if results[1].Data != nil {
		t.Error("failed prompt carries image data")
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveImage([]byte("fake-image"), "test.png", dir)
	if err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved image: %v", err)
	}
	if string(data) != "fake-image" {
		t.Errorf("saved bytes = %q", data)
	}

	// A missing extension defaults to .png.
	path, err = SaveImage([]byte("x"), "noext", dir)
	if err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("extension = %q, want .png", filepath.Ext(path))
	}
}

func TestSaveBatch(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Image: models.GeneratedImage{Success: true}, Data: []byte("one")},
		{Image: models.GeneratedImage{Success: false}},
		{Image: models.GeneratedImage{Success: true}, Data: []byte("three")},
	}

	saved, err := SaveBatch(results, dir, "campaign_segment")
	if err != nil {
		t.Fatalf("SaveBatch() error = %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("len(saved) = %d, want 2 (failures skipped)", len(saved))
	}

	// Saved results carry their file path; the failed one does not.
	if results[0].Image.FilePath == "" || results[2].Image.FilePath == "" {
		t.Error("successful results missing FilePath")
	}
	if results[1].Image.FilePath != "" {
		t.Error("failed result has a FilePath")
	}

	for _, p := range saved {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("saved file missing: %v", err)
		}
	}
}
