// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"errors"
	"testing"
	"time"

	"github.com/klawrence/brandgen/internal/models"
)

func storedCampaign(id string) *models.Campaign {
	return &models.Campaign{
		ID:        id,
		Config:    validConfig(),
		CreatedAt: time.Now().UTC(),
		Status:    models.CampaignCreated,
		History:   []string{"Campaign created at 2026-01-01T00:00:00Z"},
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Put(storedCampaign("c1")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get("c1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Config.Name != "Summer Launch" {
		t.Errorf("Name = %q", got.Config.Name)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get("missing"); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("Get() error = %v, want ErrCampaignNotFound", err)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Put(storedCampaign("c1"))

	first, _ := s.Get("c1")
	first.Config.Name = "mutated"

	second, _ := s.Get("c1")
	if second.Config.Name == "mutated" {
		t.Error("mutating a returned campaign leaked into the store")
	}
}

func TestMemoryStore_List(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Put(storedCampaign("c1"))
	_ = s.Put(storedCampaign("c2"))

	all, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len = %d, want 2", len(all))
	}
}

func TestMemoryStore_DeleteMissingIsNoError(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Delete("never-existed"); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
}

func TestBadgerStore_InMemory(t *testing.T) {
	s, err := NewBadgerStore("")
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	c := storedCampaign("c1")
	if err := s.Put(c); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get("c1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != "c1" || got.Status != models.CampaignCreated {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrCampaignNotFound", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("List() len = %d, want 1", len(all))
	}

	if err := s.Delete("c1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get("c1"); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrCampaignNotFound", err)
	}
	if err := s.Delete("c1"); err != nil {
		t.Errorf("Delete() of missing id error = %v, want nil", err)
	}
}
