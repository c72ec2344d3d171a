// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for BrandGen.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	OpenAI       OpenAIConfig       `koanf:"openai"`
	Segmentation SegmentationConfig `koanf:"segmentation"`
	Storage      StorageConfig      `koanf:"storage"`
	API          APIConfig          `koanf:"api"`
	Logging      LoggingConfig      `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	// Timeout is applied as read, write and shutdown timeout.
	Timeout time.Duration `koanf:"timeout"`
	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// OpenAIConfig holds image generation settings. When Enabled is false
// or APIKey is empty the image endpoints return a clear error instead
// of calling out.
type OpenAIConfig struct {
	Enabled bool   `koanf:"enabled"`
	APIKey  string `koanf:"api_key"`
	// BaseURL overrides the API endpoint, for proxies and tests.
	BaseURL      string `koanf:"base_url"`
	Model        string `koanf:"model"`
	ImageSize    string `koanf:"image_size"`
	ImageQuality string `koanf:"image_quality"`
	ImageStyle   string `koanf:"image_style"`
	// MaxImagesPerBatch caps one generation request.
	MaxImagesPerBatch int `koanf:"max_images_per_batch"`
	// RequestsPerMinute throttles outbound generation calls.
	RequestsPerMinute int `koanf:"requests_per_minute"`
	// Circuit breaker settings for the OpenAI client.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// SegmentationConfig tunes the clustering pipeline.
type SegmentationConfig struct {
	DefaultClusters int   `koanf:"default_clusters"`
	MaxClusters     int   `koanf:"max_clusters"`
	Seed            int64 `koanf:"seed"`
	MaxIterations   int   `koanf:"max_iterations"`
	Restarts        int   `koanf:"restarts"`
	// DefaultFeatures are used when an analysis request names none.
	// Features absent from the uploaded dataset are skipped.
	DefaultFeatures []string `koanf:"default_features"`
}

// StorageConfig holds filesystem and database paths.
type StorageConfig struct {
	DataDir            string `koanf:"data_dir"`
	GeneratedImagesDir string `koanf:"generated_images_dir"`
	ExportsDir         string `koanf:"exports_dir"`
	// CampaignStorePath is the Badger database directory. Empty selects
	// an in-memory store.
	CampaignStorePath string `koanf:"campaign_store_path"`
	MaxUploadSizeMB   int    `koanf:"max_upload_size_mb"`
}

// APIConfig holds HTTP API settings.
type APIConfig struct {
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for invalid values. It returns the
// first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}

	if c.OpenAI.Enabled && c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required when openai.enabled is true")
	}
	if c.OpenAI.MaxImagesPerBatch < 1 || c.OpenAI.MaxImagesPerBatch > 10 {
		return fmt.Errorf("openai.max_images_per_batch must be between 1 and 10, got %d", c.OpenAI.MaxImagesPerBatch)
	}
	if !validImageSize(c.OpenAI.ImageSize) {
		return fmt.Errorf("openai.image_size must be one of 1024x1024, 1024x1792, 1792x1024, got %q", c.OpenAI.ImageSize)
	}

	if c.Segmentation.DefaultClusters < 2 {
		return fmt.Errorf("segmentation.default_clusters must be at least 2, got %d", c.Segmentation.DefaultClusters)
	}
	if c.Segmentation.MaxClusters < c.Segmentation.DefaultClusters {
		return fmt.Errorf("segmentation.max_clusters (%d) must be >= default_clusters (%d)",
			c.Segmentation.MaxClusters, c.Segmentation.DefaultClusters)
	}
	if c.Segmentation.MaxIterations < 1 {
		return fmt.Errorf("segmentation.max_iterations must be positive, got %d", c.Segmentation.MaxIterations)
	}
	if c.Segmentation.Restarts < 1 {
		return fmt.Errorf("segmentation.restarts must be positive, got %d", c.Segmentation.Restarts)
	}

	if c.Storage.MaxUploadSizeMB < 1 {
		return fmt.Errorf("storage.max_upload_size_mb must be positive, got %d", c.Storage.MaxUploadSizeMB)
	}

	if c.API.RateLimitReqs < 1 {
		return fmt.Errorf("api.rate_limit_reqs must be positive, got %d", c.API.RateLimitReqs)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive, got %s", c.API.RateLimitWindow)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

func validImageSize(size string) bool {
	switch size {
	case "1024x1024", "1024x1792", "1792x1024":
		return true
	}
	return false
}
