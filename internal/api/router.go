// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the HTTP routing tree for the REST API.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(MetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.API.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(httprate.LimitByIP(h.config.API.RateLimitReqs, h.config.API.RateLimitWindow))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)

		r.Route("/datasets", func(r chi.Router) {
			r.Post("/", h.DatasetUpload)
			r.Post("/sample", h.DatasetSample)
			r.Get("/{id}/insights", h.DatasetInsights)
		})

		r.Post("/segmentation/run", h.SegmentationRun)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.CampaignCreate)
			r.Get("/", h.CampaignList)
			r.Get("/templates", h.CampaignTemplates)
			r.Post("/export", h.DashboardExport)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.CampaignGet)
				r.Delete("/", h.CampaignDelete)
				r.Post("/analyze", h.CampaignAnalyze)
				r.Post("/images", h.CampaignGenerateImages)
				r.Post("/performance", h.CampaignPerformance)
				r.Post("/roi", h.CampaignROI)
				r.Get("/summary", h.CampaignSummary)
				r.Post("/export", h.CampaignExport)
			})
		})
	})

	return r
}
