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

import (
	"sort"

	"github.com/cortado-io/cortado/list"
)

// lfuPolicy buckets entries by access frequency. Each bucket is an intrusive
// list ordered by arrival at that frequency: new arrivals are pushed to the
// front, so the back of the minimum-frequency bucket is the entry that has
// been least frequently used and, among equals, resident the longest. Because
// a frequency only ever grows by exactly 1 per hit, a touch migrates an entry
// to at most one neighboring bucket, which is what keeps touch O(1).
type lfuPolicy[K comparable, V any] struct {
	buckets map[uint64]*list.List[*entry[K, V]]

	// minFreq is the smallest frequency present in buckets while the policy
	// is non-empty. insert and touch keep it exact; remove may leave it
	// pointing at an emptied bucket, and victim recomputes it lazily. That
	// recomputation is the one operation allowed to cost more than O(1).
	minFreq uint64
}

func newLFUPolicy[K comparable, V any]() *lfuPolicy[K, V] {
	return &lfuPolicy[K, V]{buckets: make(map[uint64]*list.List[*entry[K, V]])}
}

func (p *lfuPolicy[K, V]) bucket(freq uint64) *list.List[*entry[K, V]] {
	if b, ok := p.buckets[freq]; ok {
		return b
	}
	b := list.New[*entry[K, V]]()
	p.buckets[freq] = b
	return b
}

func (p *lfuPolicy[K, V]) insert(ent *entry[K, V]) {
	ent.freq = 1
	p.bucket(1).PushFront(ent.node)
	p.minFreq = 1
}

func (p *lfuPolicy[K, V]) touch(ent *entry[K, V]) {
	freq := ent.freq
	ent.node.Remove()
	if b := p.buckets[freq]; b != nil && b.Len() == 0 {
		delete(p.buckets, freq)
		if p.minFreq == freq {
			p.minFreq = freq + 1
		}
	}

	ent.freq = freq + 1
	p.bucket(ent.freq).PushFront(ent.node)
}

func (p *lfuPolicy[K, V]) remove(ent *entry[K, V]) {
	freq := ent.freq
	ent.node.Remove()
	if b := p.buckets[freq]; b != nil && b.Len() == 0 {
		// minFreq may now point at a missing bucket. victim repairs it on its
		// next call instead of scanning here.
		delete(p.buckets, freq)
	}
}

func (p *lfuPolicy[K, V]) victim() *entry[K, V] {
	if len(p.buckets) == 0 {
		return nil
	}
	b, ok := p.buckets[p.minFreq]
	if !ok || b.Len() == 0 {
		p.recomputeMinFreq()
		b = p.buckets[p.minFreq]
	}
	return b.Back().Value
}

// recomputeMinFreq repairs a stale minimum after remove emptied the tracked
// bucket. Only called while at least one bucket is non-empty.
func (p *lfuPolicy[K, V]) recomputeMinFreq() {
	first := true
	for freq := range p.buckets {
		if first || freq < p.minFreq {
			p.minFreq = freq
			first = false
		}
	}
}

func (p *lfuPolicy[K, V]) reset() {
	p.buckets = make(map[uint64]*list.List[*entry[K, V]])
	p.minFreq = 0
}

func (p *lfuPolicy[K, V]) keys() []K {
	freqs := make([]uint64, 0, len(p.buckets))
	n := 0
	for freq, b := range p.buckets {
		freqs = append(freqs, freq)
		n += b.Len()
	}
	sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })

	keys := make([]K, 0, n)
	for _, freq := range freqs {
		for e := p.buckets[freq].Back(); e != nil; e = e.Prev() {
			keys = append(keys, e.Value.key)
		}
	}
	return keys
}
