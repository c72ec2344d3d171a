// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/brandgen/config.yaml",
	"/etc/brandgen/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8501,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		OpenAI: OpenAIConfig{
			Enabled:            false, // Off by default - demo placeholders are returned instead
			APIKey:             "",
			BaseURL:            "",
			Model:              "dall-e-3",
			ImageSize:          "1024x1024",
			ImageQuality:       "standard",
			ImageStyle:         "vivid",
			MaxImagesPerBatch:  4,
			RequestsPerMinute:  5,
			BreakerMaxFailures: 3,
			BreakerTimeout:     60 * time.Second,
		},
		Segmentation: SegmentationConfig{
			DefaultClusters: 4,
			MaxClusters:     10,
			Seed:            42,
			MaxIterations:   300,
			Restarts:        10,
			DefaultFeatures: []string{"age", "gender", "location", "interests", "purchase_history"},
		},
		Storage: StorageConfig{
			DataDir:            "/data",
			GeneratedImagesDir: "/data/generated_images",
			ExportsDir:         "/data/exports",
			CampaignStorePath:  "/data/campaigns",
			MaxUploadSizeMB:    25,
		},
		API: APIConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"segmentation.default_features",
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		// If it's a string, split by comma
		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - OPENAI_API_KEY -> openai.api_key
//   - HTTP_PORT -> server.port
//   - SEGMENTATION_SEED -> segmentation.seed
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// OpenAI mappings
		"openai_enabled":              "openai.enabled",
		"openai_api_key":              "openai.api_key",
		"openai_base_url":             "openai.base_url",
		"openai_model":                "openai.model",
		"openai_image_size":           "openai.image_size",
		"openai_image_quality":        "openai.image_quality",
		"openai_image_style":          "openai.image_style",
		"openai_max_images_per_batch": "openai.max_images_per_batch",
		"openai_requests_per_minute":  "openai.requests_per_minute",
		"openai_breaker_max_failures": "openai.breaker_max_failures",
		"openai_breaker_timeout":      "openai.breaker_timeout",

		// Segmentation mappings
		"segmentation_default_clusters": "segmentation.default_clusters",
		"segmentation_max_clusters":     "segmentation.max_clusters",
		"segmentation_seed":             "segmentation.seed",
		"segmentation_max_iterations":   "segmentation.max_iterations",
		"segmentation_restarts":         "segmentation.restarts",
		"segmentation_features":         "segmentation.default_features",

		// Storage mappings
		"data_dir":             "storage.data_dir",
		"generated_images_dir": "storage.generated_images_dir",
		"exports_dir":          "storage.exports_dir",
		"campaign_store_path":  "storage.campaign_store_path",
		"max_upload_size_mb":   "storage.max_upload_size_mb",

		// API mappings
		"rate_limit_requests": "api.rate_limit_reqs",
		"rate_limit_window":   "api.rate_limit_window",
		"cors_origins":        "api.cors_origins",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
