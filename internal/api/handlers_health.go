// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"net/http"
	"time"
)

// healthStatus is the health endpoint payload.
type healthStatus struct {
	Status         string `json:"status"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	ImageGenReady  bool   `json:"image_generation_ready"`
	Environment    string `json:"environment"`
	DatasetsLoaded int    `json:"datasets_loaded"`
}

// Health reports overall service status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	h.mu.RLock()
	loaded := len(h.datasets)
	h.mu.RUnlock()

	respondSuccess(w, http.StatusOK, healthStatus{
		Status:         "healthy",
		UptimeSeconds:  int64(time.Since(h.startTime).Seconds()),
		ImageGenReady:  h.config.OpenAI.Enabled,
		Environment:    h.config.Server.Environment,
		DatasetsLoaded: loaded,
	}, start)
}

// HealthLive is the Kubernetes liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// HealthReady is the readiness probe. The service is ready once the
// campaign store answers queries.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.manager.List(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("store unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
