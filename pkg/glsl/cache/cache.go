// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cache

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultCapacity is the entry cap a zero-configured cache uses.
const DefaultCapacity = 256

// evictFraction is the share of entries dropped when the cap is reached.
const evictFraction = 4

// entry wraps one cached value with the bookkeeping the eviction score
// needs.
type entry[V any] struct {
	value       V
	accessCount int64
	insertedAt  time.Time
}

// Cache is a concurrent fingerprint-keyed map shared across translator
// instances: lookups take a read lock so they do not block each other, and
// eviction is LFU-with-aging — when full, the quarter of entries with the
// lowest (accessCount − age in seconds) score is dropped.
type Cache[V any] struct {
	mu       sync.RWMutex
	entries  map[Fingerprint]*entry[V]
	capacity int

	hits   int64
	misses int64
}

// New constructs a cache with the given entry cap (DefaultCapacity if
// non-positive).
func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Cache[V]{
		entries:  make(map[Fingerprint]*entry[V]),
		capacity: capacity,
	}
}

// Get returns the cached value for key, if present.
func (c *Cache[V]) Get(key Fingerprint) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)

		var zero V

		return zero, false
	}

	atomic.AddInt64(&e.accessCount, 1)
	atomic.AddInt64(&c.hits, 1)

	return e.value, true
}

// Put stores value under key, evicting the lowest-scoring quarter of
// entries first if the cache is full.
func (c *Cache[V]) Put(key Fingerprint, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictLocked()
	}

	c.entries[key] = &entry[V]{value: value, accessCount: 1, insertedAt: time.Now()}
}

// evictLocked drops the evictFraction of entries with the lowest
// (accessCount − age_seconds) score. Caller holds the write lock.
func (c *Cache[V]) evictLocked() {
	type scored struct {
		key   Fingerprint
		score int64
	}

	now := time.Now()
	all := make([]scored, 0, len(c.entries))

	for k, e := range c.entries {
		age := int64(now.Sub(e.insertedAt).Seconds())
		all = append(all, scored{key: k, score: e.accessCount - age})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].score < all[j].score })

	drop := len(all) / evictFraction
	if drop == 0 {
		drop = 1
	}

	for _, s := range all[:drop] {
		delete(c.entries, s.key)
	}

	log.Debugf("cache evicted %d of %d entries", drop, len(all))
}

// Len reports the current entry count.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear discards every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Fingerprint]*entry[V])
}

// Stats reports cumulative hit/miss counts.
func (c *Cache[V]) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}
