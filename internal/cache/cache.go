// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small least-recently-used cache.
package cache

import (
	"sort"
	"sync"
)

// Cache is a thread-safe LRU cache with a soft limit. Once it holds more
// than limit entries, the least recently used quarter is evicted.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    uint64
	hits    uint64
	misses  uint64
}

type entry[V any] struct {
	value V
	atime uint64
}

// New creates a cache holding about limit entries. A limit of 0 means
// unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Get returns the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores value under key, evicting old entries if over the limit.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

// DeleteFunc removes every entry whose key matches.
func (c *Cache[K, V]) DeleteFunc(match func(K) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if match(k) {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the entry count and the hit and miss counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}

// evict drops the oldest entries down to three quarters of the limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	target := max(c.limit*3/4, 1)
	if len(c.entries) <= target {
		return
	}

	type aged struct {
		key   K
		atime uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })
	for _, a := range all[:len(all)-target] {
		delete(c.entries, a.key)
	}
}

// Stats describes cache usage.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}
