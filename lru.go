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

// lruPolicy orders entries by recency on a single intrusive list. The front
// of the list is the most recently used entry and the back is the victim.
// The ring sentinel inside list.List means link and unlink never special-case
// the boundaries.
type lruPolicy[K comparable, V any] struct {
	order *list.List[*entry[K, V]]
}

func newLRUPolicy[K comparable, V any]() *lruPolicy[K, V] {
	return &lruPolicy[K, V]{order: list.New[*entry[K, V]]()}
}

func (p *lruPolicy[K, V]) insert(ent *entry[K, V]) {
	p.order.PushFront(ent.node)
}

func (p *lruPolicy[K, V]) touch(ent *entry[K, V]) {
	ent.node.MoveToFront()
}

func (p *lruPolicy[K, V]) remove(ent *entry[K, V]) {
	ent.node.Remove()
}

func (p *lruPolicy[K, V]) victim() *entry[K, V] {
	back := p.order.Back()
	if back == nil {
		return nil
	}
	return back.Value
}

func (p *lruPolicy[K, V]) reset() {
	p.order.Init()
}

func (p *lruPolicy[K, V]) keys() []K {
	keys := make([]K, 0, p.order.Len())
	for e := p.order.Back(); e != nil; e = e.Prev() {
		keys = append(keys, e.Value.key)
	}
	return keys
}
