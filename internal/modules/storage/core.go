// Package storage implements the Storage capability.
//
// Core owns an in-memory string map. It can be backed by a Backend, in which
// case every mutation is written through as a full snapshot; a failed write
// rolls the in-memory change back and returns the backend's error unchanged.
package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/versten1uk/new-arch-spike/internal/capability"
)

// Backend persists storage snapshots beyond the process lifetime
type Backend interface {
	Load() (map[string]string, error)
	Save(snapshot map[string]string) error
}

// Core owns the key-value state
type Core struct {
	mu      sync.RWMutex
	items   map[string]string
	backend Backend
}

var _ capability.Storage = (*Core)(nil)

// NewCore creates an in-memory store
func NewCore() *Core {
	return &Core{items: make(map[string]string)}
}

// NewPersistentCore creates a store seeded from and written through to backend
func NewPersistentCore(backend Backend) (*Core, error) {
	items, err := backend.Load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make(map[string]string)
	}
	return &Core{items: items, backend: backend}, nil
}

// SetItem stores value under key, overwriting any existing value
func (c *Core) SetItem(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, had := c.items[key]
	c.items[key] = value

	if err := c.persist(); err != nil {
		if had {
			c.items[key] = prev
		} else {
			delete(c.items, key)
		}
		return err
	}
	return nil
}

// GetItem returns the value for key or capability.ErrNotFound
func (c *Core) GetItem(key string) (string, error) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("key %q: %w", key, capability.ErrNotFound)
	}
	return value, nil
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (c *Core) RemoveItem(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, had := c.items[key]
	if !had {
		return nil
	}
	delete(c.items, key)

	if err := c.persist(); err != nil {
		c.items[key] = prev
		return err
	}
	return nil
}

// AllKeys returns every key in sorted order
func (c *Core) AllKeys() []string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	c.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Clear removes every key in a single step
func (c *Core) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.items
	c.items = make(map[string]string)

	if err := c.persist(); err != nil {
		c.items = prev
		return err
	}
	return nil
}

// Len returns the number of stored keys
func (c *Core) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// persist must be called with mu held
func (c *Core) persist() error {
	if c.backend == nil {
		return nil
	}

	snapshot := make(map[string]string, len(c.items))
	for k, v := range c.items {
		snapshot[k] = v
	}
	return c.backend.Save(snapshot)
}
