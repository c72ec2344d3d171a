// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/klawrence/brandgen/internal/campaign"
	"github.com/klawrence/brandgen/internal/config"
	"github.com/klawrence/brandgen/internal/models"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	manager   *campaign.Manager
	config    *config.Config
	startTime time.Time

	// Uploaded datasets live in memory until attached to a campaign.
	// They are addressed by a server-assigned id.
	mu       sync.RWMutex
	datasets map[string]*models.Dataset
}

// NewHandler creates an API handler over the campaign manager.
func NewHandler(manager *campaign.Manager, cfg *config.Config) *Handler {
	return &Handler{
		manager:   manager,
		config:    cfg,
		startTime: time.Now(),
		datasets:  make(map[string]*models.Dataset),
	}
}

// registerDataset stores an uploaded dataset and returns its id.
func (h *Handler) registerDataset(ds *models.Dataset) string {
	id := uuid.New().String()
	h.mu.Lock()
	h.datasets[id] = ds
	h.mu.Unlock()
	return id
}

// dataset returns a registered dataset by id.
func (h *Handler) dataset(id string) (*models.Dataset, bool) {
	h.mu.RLock()
	ds, ok := h.datasets[id]
	h.mu.RUnlock()
	return ds, ok
}

// dropDataset removes a dataset from the registry, typically after it
// has been attached to a campaign.
func (h *Handler) dropDataset(id string) {
	h.mu.Lock()
	delete(h.datasets, id)
	h.mu.Unlock()
}
