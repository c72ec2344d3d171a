// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig() fails validation: %v", err)
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.OpenAI.Enabled {
		t.Error("OpenAI.Enabled = true, want disabled by default")
	}
	if cfg.OpenAI.Model != "dall-e-3" || cfg.OpenAI.ImageSize != "1024x1024" {
		t.Errorf("OpenAI defaults = %q / %q", cfg.OpenAI.Model, cfg.OpenAI.ImageSize)
	}
	if cfg.Segmentation.DefaultClusters != 4 || cfg.Segmentation.Seed != 42 {
		t.Errorf("Segmentation defaults = %d clusters, seed %d", cfg.Segmentation.DefaultClusters, cfg.Segmentation.Seed)
	}
	if cfg.API.RateLimitWindow != time.Minute {
		t.Errorf("API.RateLimitWindow = %s, want 1m", cfg.API.RateLimitWindow)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: "server.timeout",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Server.Environment = "staging" },
			wantErr: "server.environment",
		},
		{
			name:    "enabled without key",
			mutate:  func(c *Config) { c.OpenAI.Enabled = true },
			wantErr: "openai.api_key",
		},
		{
			name:    "batch too large",
			mutate:  func(c *Config) { c.OpenAI.MaxImagesPerBatch = 50 },
			wantErr: "openai.max_images_per_batch",
		},
		{
			name:    "bad image size",
			mutate:  func(c *Config) { c.OpenAI.ImageSize = "640x480" },
			wantErr: "openai.image_size",
		},
		{
			name:    "one cluster",
			mutate:  func(c *Config) { c.Segmentation.DefaultClusters = 1 },
			wantErr: "segmentation.default_clusters",
		},
		{
			name:    "max below default",
			mutate:  func(c *Config) { c.Segmentation.MaxClusters = 2 },
			wantErr: "segmentation.max_clusters",
		},
		{
			name:    "zero upload limit",
			mutate:  func(c *Config) { c.Storage.MaxUploadSizeMB = 0 },
			wantErr: "storage.max_upload_size_mb",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.API.RateLimitReqs = 0 },
			wantErr: "api.rate_limit_reqs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	cfg := defaultConfig()
	if cfg.IsProduction() {
		t.Error("development config reports production")
	}
	cfg.Server.Environment = "production"
	if !cfg.IsProduction() {
		t.Error("production config not detected")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"OPENAI_API_KEY", "openai.api_key"},
		{"SEGMENTATION_SEED", "segmentation.seed"},
		{"RATE_LIMIT_REQUESTS", "api.rate_limit_reqs"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"RANDOM_UNRELATED_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}
