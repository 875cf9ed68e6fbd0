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

package cortado

import "github.com/cortado-io/cortado/list"

// Policy selects the eviction behavior of a Cache. It is fixed at
// construction time.
type Policy int

const (
	// LRU evicts the least recently used entry.
	LRU Policy = iota
	// LFU evicts the least frequently used entry, breaking ties in favor of
	// the entry that has been at that frequency the longest.
	LFU
)

func (p Policy) String() string {
	switch p {
	case LRU:
		return "LRU"
	case LFU:
		return "LFU"
	default:
		return "unknown"
	}
}

// entry is a cache record. Entries are owned exclusively by the Cache: the
// key index holds the only long-lived handle, and node gives the entry's
// position inside whichever ordering structure the active policy maintains.
type entry[K comparable, V any] struct {
	key   K
	value V

	// freq is the access count used by LFU. It starts at 1 when the entry is
	// inserted and grows by exactly 1 per hit. LRU leaves it at zero.
	freq uint64

	node *list.Element[*entry[K, V]]
}

func newEntry[K comparable, V any](key K, value V) *entry[K, V] {
	ent := &entry[K, V]{key: key, value: value}
	ent.node = &list.Element[*entry[K, V]]{Value: ent}
	return ent
}

// policy is the contract shared by the eviction orderings. The caller (the
// Cache) is responsible for keeping the key index in sync; a policy never
// reaches back into it, so the bijection between the two stays auditable.
//
// Every method is O(1) except victim, which may scan frequency buckets after
// a Remove left the minimum-frequency marker stale.
type policy[K comparable, V any] interface {
	// insert places a brand new entry into the ordering.
	insert(ent *entry[K, V])
	// touch updates the entry's eviction ranking after a hit.
	touch(ent *entry[K, V])
	// remove takes the entry out of the ordering.
	remove(ent *entry[K, V])
	// victim returns the eviction candidate without removing it, or nil if
	// the ordering is empty.
	victim() *entry[K, V]
	// reset drops all entries.
	reset()
	// keys returns all keys in eviction order, victim first.
	keys() []K
}

func newPolicy[K comparable, V any](p Policy) policy[K, V] {
	if p == LFU {
		return newLFUPolicy[K, V]()
	}
	return newLRUPolicy[K, V]()
}
