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

// keyIndex is the hash map for the entire cache and the single source of
// truth for entry existence. It never mutates the eviction ordering; keeping
// the two structures in sync is the Cache's job, which makes the bijection
// between them auditable at the call sites.
//
// keyIndex is not safe for concurrent use. The Cache serializes access with
// its own lock.
type keyIndex[K comparable, V any] struct {
	data map[K]*entry[K, V]
}

func newKeyIndex[K comparable, V any]() *keyIndex[K, V] {
	return &keyIndex[K, V]{data: make(map[K]*entry[K, V])}
}

// lookup returns the entry for key, if present.
func (i *keyIndex[K, V]) lookup(key K) (*entry[K, V], bool) {
	ent, ok := i.data[key]
	return ent, ok
}

// insert adds the entry under key. The key must not already be present;
// the Cache updates existing entries in place instead of reinserting.
func (i *keyIndex[K, V]) insert(key K, ent *entry[K, V]) {
	i.data[key] = ent
}

// erase removes key from the index.
func (i *keyIndex[K, V]) erase(key K) {
	delete(i.data, key)
}

func (i *keyIndex[K, V]) len() int {
	return len(i.data)
}

// foreach visits every entry in no particular order.
func (i *keyIndex[K, V]) foreach(fn func(ent *entry[K, V])) {
	for _, ent := range i.data {
		fn(ent)
	}
}

func (i *keyIndex[K, V]) clear() {
	i.data = make(map[K]*entry[K, V])
}
