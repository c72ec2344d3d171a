// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package campaign

import (
	"errors"
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/klawrence/brandgen/internal/models"
)

// ErrCampaignNotFound is returned when a campaign id does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// campaignKeyPrefix namespaces campaign records in the shared database.
const campaignKeyPrefix = "campaign:"

// Store persists campaigns. Implementations must be safe for
// concurrent use.
type Store interface {
	Put(c *models.Campaign) error
	Get(id string) (*models.Campaign, error)
	List() ([]*models.Campaign, error)
	Delete(id string) error
	Close() error
}

// BadgerStore persists campaigns in BadgerDB as JSON values.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a Badger database at path. An
// empty path selects an in-memory database that is lost on close.
func NewBadgerStore(path string) (*BadgerStore, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = nil // Badger's own logger is noisy; we log at the store level

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open campaign store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Put writes or replaces a campaign record.
func (s *BadgerStore) Put(c *models.Campaign) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign %s: %w", c.ID, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(campaignKeyPrefix+c.ID), data)
	})
}

// Get returns the campaign with the given id, or ErrCampaignNotFound.
func (s *BadgerStore) Get(id string) (*models.Campaign, error) {
	var c models.Campaign
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(campaignKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrCampaignNotFound
		}
		if err != nil {
			return fmt.Errorf("get campaign: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &c)
		})
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all campaigns in key order.
func (s *BadgerStore) List() ([]*models.Campaign, error) {
	var out []*models.Campaign
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(campaignKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var c models.Campaign
				if err := json.Unmarshal(val, &c); err != nil {
					return fmt.Errorf("corrupt campaign record: %w", err)
				}
				out = append(out, &c)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a campaign. Deleting a missing id is not an error.
func (s *BadgerStore) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(campaignKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Close flushes and closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	mu        sync.RWMutex
	campaigns map[string]*models.Campaign
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{campaigns: make(map[string]*models.Campaign)}
}

// Put stores a deep copy of the campaign so later mutations by the
// caller do not leak into the store, matching database semantics.
func (s *MemoryStore) Put(c *models.Campaign) error {
	clone, err := cloneCampaign(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = clone
	return nil
}

// Get returns a copy of the stored campaign, or ErrCampaignNotFound.
func (s *MemoryStore) Get(id string) (*models.Campaign, error) {
	s.mu.RLock()
	c, ok := s.campaigns[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrCampaignNotFound
	}
	return cloneCampaign(c)
}

// List returns copies of all stored campaigns.
func (s *MemoryStore) List() ([]*models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		clone, err := cloneCampaign(c)
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}
	return out, nil
}

// Delete removes a campaign. Deleting a missing id is not an error.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.campaigns, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// cloneCampaign deep-copies through JSON, the same encoding the Badger
// store uses.
func cloneCampaign(c *models.Campaign) (*models.Campaign, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal campaign %s: %w", c.ID, err)
	}
	var clone models.Campaign
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign %s: %w", c.ID, err)
	}
	return &clone, nil
}
