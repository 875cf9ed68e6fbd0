/*
 * Copyright 2026 Cortado Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Cortado is a fixed-capacity, in-memory key/value cache with exact LRU and
// LFU eviction. Every operation is O(1) amortized, eviction order is fully
// deterministic, and the cache never holds more than its configured capacity,
// not even transiently.
package cortado

import (
	"errors"
	"sync"
)

// RemoveReason tells an eviction callback why an entry left the cache.
type RemoveReason int

const (
	// ReasonEvicted means the policy removed the entry to satisfy the
	// capacity bound.
	ReasonEvicted RemoveReason = iota
	// ReasonRemoved means the caller removed the entry with Remove.
	ReasonRemoved
	// ReasonCleared means the entry was dropped by Clear.
	ReasonCleared
)

func (r RemoveReason) String() string {
	switch r {
	case ReasonEvicted:
		return "evicted"
	case ReasonRemoved:
		return "removed"
	case ReasonCleared:
		return "cleared"
	default:
		return "unidentified"
	}
}

// Config is passed to NewCache for creating new Cache instances.
type Config[K comparable, V any] struct {
	// Capacity is the maximum number of entries the cache holds. It must be
	// positive; a non-positive capacity is a configuration error, never
	// silently clamped.
	Capacity int
	// Policy selects the eviction ordering. The zero value is LRU.
	Policy Policy
	// Metrics is true when you want real-time logging of a variety of stats.
	// The reason this is a Config flag is because there's a small cost to
	// maintaining the counters.
	Metrics bool
	// OnEvict is called for every entry that leaves the cache, with the
	// reason it left. It runs while the cache lock is held, so it must not
	// call back into the cache.
	OnEvict func(key K, value V, reason RemoveReason)
}

// Cache ties everything together. The two main components are:
//
//  1. The key index: the hash map that is the source of truth for existence.
//  2. The eviction policy: the ordering structure that picks victims.
//
// Every structural mutation, including the touch performed by Get on a hit,
// runs under one coarse lock. Reordering on read is part of the correctness
// contract, so there is no lock-free read path.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	data     *keyIndex[K, V]
	policy   policy[K, V]
	capacity int
	onEvict  func(key K, value V, reason RemoveReason)

	// Metrics contains a variety of stats about the cache, or nil when the
	// Config did not ask for them.
	Metrics *Metrics
}

// NewCache returns a new Cache instance and any configuration errors, if any.
func NewCache[K comparable, V any](config *Config[K, V]) (*Cache[K, V], error) {
	switch {
	case config.Capacity <= 0:
		return nil, errors.New("Capacity must be positive.")
	case config.Policy != LRU && config.Policy != LFU:
		return nil, errors.New("Policy must be LRU or LFU.")
	}
	cache := &Cache[K, V]{
		data:     newKeyIndex[K, V](),
		policy:   newPolicy[K, V](config.Policy),
		capacity: config.Capacity,
		onEvict:  config.OnEvict,
	}
	if config.Metrics {
		cache.Metrics = newMetrics()
	}
	return cache, nil
}

// Get returns the value (if any) and a bool representing whether the value
// was found or not. A hit refreshes the entry's eviction ranking; a miss
// changes nothing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ent, ok := c.data.lookup(key)
	if !ok {
		c.Metrics.add(miss, 1)
		var zero V
		return zero, false
	}
	c.policy.touch(ent)
	c.Metrics.add(hit, 1)
	return ent.value, true
}

// Put adds the key-value pair to the cache, evicting the policy's victim
// first if the cache is full. It returns the evicted key and true when an
// eviction happened. Putting an existing key updates its value in place and
// counts as a single access.
func (c *Cache[K, V]) Put(key K, value V) (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var evictedKey K
	if ent, ok := c.data.lookup(key); ok {
		ent.value = value
		c.policy.touch(ent)
		c.Metrics.add(keyUpdate, 1)
		return evictedKey, false
	}

	// Evict before inserting so the size bound holds at every observable
	// point, never just eventually.
	evicted := false
	if c.data.len() >= c.capacity {
		victim := c.policy.victim()
		c.deleteEntry(victim, ReasonEvicted)
		c.Metrics.add(keyEvict, 1)
		evictedKey, evicted = victim.key, true
	}

	ent := newEntry(key, value)
	c.data.insert(key, ent)
	c.policy.insert(ent)
	c.Metrics.add(keyAdd, 1)
	return evictedKey, evicted
}

// Peek returns the value (if any) without updating the entry's eviction
// ranking or the hit/miss counters.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ent, ok := c.data.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return ent.value, true
}

// Contains reports whether key is in the cache, without updating its
// eviction ranking.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data.lookup(key)
	return ok
}

// Remove deletes the key-value pair from the cache, returning true if the key
// was present. Removing an absent key is a no-op.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	ent, ok := c.data.lookup(key)
	if !ok {
		return false
	}
	c.deleteEntry(ent, ReasonRemoved)
	c.Metrics.add(keyRemove, 1)
	return true
}

// Len returns the number of entries currently in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data.len()
}

// Capacity returns the maximum number of entries the cache holds.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys in eviction order, the policy's current
// victim first.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.policy.keys()
}

// Clear empties the cache and resets the eviction policy. Metrics survive a
// Clear; use Metrics.Clear to reset those too.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.onEvict != nil {
		c.data.foreach(func(ent *entry[K, V]) {
			c.onEvict(ent.key, ent.value, ReasonCleared)
		})
	}
	c.Metrics.add(keyRemove, uint64(c.data.len()))
	c.data.clear()
	c.policy.reset()
}

// deleteEntry unlinks the entry from the ordering structure and the key index
// in one step, keeping the two in lockstep. Callers hold c.mu.
func (c *Cache[K, V]) deleteEntry(ent *entry[K, V], reason RemoveReason) {
	c.policy.remove(ent)
	c.data.erase(ent.key)
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value, reason)
	}
}
