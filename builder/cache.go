// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes built configurations by environment name. Entries are
// never evicted. A Cache is safe for concurrent use, and concurrent first
// builds of the same environment share a single build.
//
// Each builder owns a fresh Cache unless Options.Store is set. Sharing a
// Cache between builders with different roots makes them serve each
// other's entries.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Configuration
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Configuration)}
}

// Get returns the stored configuration for env. An unfrozen entry is
// returned as a copy, so changes to it never reach later builds.
func (c *Cache) Get(env string) (*Configuration, bool) {
	cfg, ok := c.lookup(env)
	if ok && !cfg.Frozen() {
		return cfg.clone(), true
	}
	return cfg, ok
}

func (c *Cache) lookup(env string) (*Configuration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cfg, ok := c.entries[env]
	return cfg, ok
}

// Len returns the number of stored environments.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Environments returns the stored environment names in lexical order.
func (c *Cache) Environments() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.entries))
}

func (c *Cache) store(env string, cfg *Configuration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[env] = cfg
}

// getOrBuild returns the entry for env, running build at most once per
// env at a time when it is missing. Failed builds are not stored. hit
// reports whether the entry already existed.
func (c *Cache) getOrBuild(env string, build func() (*Configuration, error)) (cfg *Configuration, hit bool, err error) {
	if cfg, ok := c.lookup(env); ok {
		return cfg, true, nil
	}

	v, err, _ := c.group.Do(env, func() (any, error) {
		if cfg, ok := c.lookup(env); ok {
			return cfg, nil
		}

		cfg, err := build()
		if err != nil {
			return nil, err
		}
		c.store(env, cfg)
		return cfg, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*Configuration), false, nil
}
