// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package main is the entry point for the BrandGen server.
//
// BrandGen is an AI-assisted marketing campaign studio. It ingests
// customer datasets, segments audiences with K-means clustering,
// profiles each segment, generates personalized marketing imagery via
// the OpenAI Images API, and tracks campaign performance and ROI.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 with layered sources (defaults, YAML file, env)
//  2. Campaign store: BadgerDB key-value persistence (in-memory when unconfigured)
//  3. Segmentation pipeline: Gonum-backed clustering and profiling
//  4. Image generator: OpenAI client with rate limiter and circuit breaker
//  5. HTTP server: chi router with CORS, rate limiting and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 (highest priority wins):
//   - Environment variables (BRANDGEN_* and well-known names like OPENAI_API_KEY)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Image generation is off by default; enable it with:
//
//	export OPENAI_ENABLED=true
//	export OPENAI_API_KEY=sk-...
//	./brandgen
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the
// configured timeout, then closes the campaign store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klawrence/brandgen/internal/api"
	"github.com/klawrence/brandgen/internal/campaign"
	"github.com/klawrence/brandgen/internal/config"
	"github.com/klawrence/brandgen/internal/imagegen"
	"github.com/klawrence/brandgen/internal/logging"
	"github.com/klawrence/brandgen/internal/segmentation"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Bool("image_generation", cfg.OpenAI.Enabled).
		Msg("Starting BrandGen")

	store, err := campaign.NewBadgerStore(cfg.Storage.CampaignStorePath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Storage.CampaignStorePath).Msg("Failed to open campaign store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing campaign store")
		}
	}()
	if cfg.Storage.CampaignStorePath == "" {
		logging.Warn().Msg("No campaign store path configured, campaigns are held in memory only")
	}

	pipeline := segmentation.NewPipeline(segmentation.Config{
		DefaultClusters: cfg.Segmentation.DefaultClusters,
		MaxIterations:   cfg.Segmentation.MaxIterations,
		Restarts:        cfg.Segmentation.Restarts,
		Seed:            cfg.Segmentation.Seed,
	}, logging.Logger())

	// Image generation is optional. A nil generator makes the image
	// endpoints report the feature as disabled rather than failing.
	var generator imagegen.Generator
	if cfg.OpenAI.Enabled {
		client, err := imagegen.NewOpenAIClient(imagegen.Config{
			APIKey:             cfg.OpenAI.APIKey,
			BaseURL:            cfg.OpenAI.BaseURL,
			Model:              cfg.OpenAI.Model,
			Size:               cfg.OpenAI.ImageSize,
			Quality:            cfg.OpenAI.ImageQuality,
			Style:              cfg.OpenAI.ImageStyle,
			RequestsPerMinute:  cfg.OpenAI.RequestsPerMinute,
			BreakerMaxFailures: cfg.OpenAI.BreakerMaxFailures,
			BreakerTimeout:     cfg.OpenAI.BreakerTimeout,
		}, logging.Logger())
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize OpenAI client")
		}
		generator = client
		logging.Info().Str("model", cfg.OpenAI.Model).Msg("OpenAI image generation enabled")
	} else {
		logging.Info().Msg("OpenAI image generation disabled")
	}

	manager := campaign.NewManager(store, pipeline, generator, campaign.Config{
		DefaultFeatures:     cfg.Segmentation.DefaultFeatures,
		DefaultClusters:     cfg.Segmentation.DefaultClusters,
		MaxClusters:         cfg.Segmentation.MaxClusters,
		ImagesDir:           cfg.Storage.GeneratedImagesDir,
		ExportsDir:          cfg.Storage.ExportsDir,
		MaxImagesPerSegment: cfg.OpenAI.MaxImagesPerBatch,
	}, logging.Logger())

	handler := api.NewHandler(manager, cfg)
	router := api.NewRouter(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logging.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-quit:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		_ = server.Close()
	}

	logging.Info().Msg("Server stopped")
}
