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
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

type metricType int

const (
	// The following 2 keep track of hits and misses.
	hit metricType = iota
	miss
	// The following 3 keep track of number of keys added, updated and evicted.
	keyAdd
	keyUpdate
	keyEvict
	// keyRemove tracks keys removed by explicit Remove or Clear, as opposed
	// to policy-driven eviction.
	keyRemove
	// This should be the final enum. Other enums should be set before this.
	doNotUse
)

func stringFor(t metricType) string {
	switch t {
	case hit:
		return "hit"
	case miss:
		return "miss"
	case keyAdd:
		return "keys-added"
	case keyUpdate:
		return "keys-updated"
	case keyEvict:
		return "keys-evicted"
	case keyRemove:
		return "keys-removed"
	default:
		return "unidentified"
	}
}

// Metrics is a snapshot of performance statistics for the lifetime of a cache
// instance. Counters are atomic so they can be read without holding the cache
// lock. All methods are safe to call on a nil receiver.
type Metrics struct {
	all [doNotUse]uint64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (p *Metrics) add(t metricType, delta uint64) {
	if p == nil {
		return
	}
	atomic.AddUint64(&p.all[t], delta)
}

func (p *Metrics) get(t metricType) uint64 {
	if p == nil {
		return 0
	}
	return atomic.LoadUint64(&p.all[t])
}

// Hits is the number of Get calls where a value was found for the
// corresponding key.
func (p *Metrics) Hits() uint64 {
	return p.get(hit)
}

// Misses is the number of Get calls where a value was not found for the
// corresponding key.
func (p *Metrics) Misses() uint64 {
	return p.get(miss)
}

// KeysAdded is the total number of Put calls where a new key-value entry was
// created.
func (p *Metrics) KeysAdded() uint64 {
	return p.get(keyAdd)
}

// KeysUpdated is the total number of Put calls where the value of an existing
// key was updated.
func (p *Metrics) KeysUpdated() uint64 {
	return p.get(keyUpdate)
}

// KeysEvicted is the total number of keys evicted by the policy to satisfy
// the capacity bound.
func (p *Metrics) KeysEvicted() uint64 {
	return p.get(keyEvict)
}

// KeysRemoved is the total number of keys removed by Remove or Clear.
func (p *Metrics) KeysRemoved() uint64 {
	return p.get(keyRemove)
}

// Ratio is the number of Hits over all accesses (Hits + Misses). This is the
// percentage of successful Get calls.
func (p *Metrics) Ratio() float64 {
	if p == nil {
		return 0.0
	}
	hits, misses := p.get(hit), p.get(miss)
	if hits == 0 && misses == 0 {
		return 0.0
	}
	return float64(hits) / float64(hits+misses)
}

// Clear resets all the metrics.
func (p *Metrics) Clear() {
	if p == nil {
		return
	}
	for i := 0; i < int(doNotUse); i++ {
		atomic.StoreUint64(&p.all[i], 0)
	}
}

// String returns a string representation of the metrics.
func (p *Metrics) String() string {
	if p == nil {
		return ""
	}
	var buf bytes.Buffer
	for i := 0; i < int(doNotUse); i++ {
		t := metricType(i)
		fmt.Fprintf(&buf, "%s: %s ", stringFor(t), humanize.Comma(int64(p.get(t))))
	}
	fmt.Fprintf(&buf, "gets-total: %s ", humanize.Comma(int64(p.get(hit)+p.get(miss))))
	fmt.Fprintf(&buf, "hit-ratio: %.2f", p.Ratio())
	return buf.String()
}
