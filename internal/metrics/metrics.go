// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package metrics exposes Prometheus instrumentation for BrandGen:
// API endpoint latency and throughput, segmentation pipeline runs,
// image generation outcomes and campaign activity.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brandgen_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "brandgen_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Segmentation Pipeline Metrics
	SegmentationRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brandgen_segmentation_runs_total",
			Help: "Total number of segmentation pipeline runs",
		},
	)

	SegmentationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brandgen_segmentation_duration_seconds",
			Help:    "Duration of segmentation pipeline runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	SegmentationInertia = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "brandgen_segmentation_inertia",
			Help: "Within-cluster sum of squares of the most recent segmentation run",
		},
	)

	// Image Generation Metrics
	ImageGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brandgen_image_generations_total",
			Help: "Total number of image generation attempts",
		},
		[]string{"status"}, // "success", "error", "breaker_open"
	)

	ImageGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brandgen_image_generation_duration_seconds",
			Help:    "Duration of single image generation calls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	// Campaign Metrics
	CampaignsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brandgen_campaigns_created_total",
			Help: "Total number of campaigns created",
		},
	)

	DatasetUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brandgen_dataset_upload_bytes",
			Help:    "Size distribution of uploaded dataset files in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, path string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordImageGeneration records one image generation attempt.
func RecordImageGeneration(status string, duration time.Duration) {
	ImageGenerations.WithLabelValues(status).Inc()
	ImageGenerationDuration.Observe(duration.Seconds())
}
