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
	"strconv"
	"testing"

	"github.com/cespare/xxhash/v2"

	"github.com/cortado-io/cortado/sim"
)

// workloadSize is the size of the array storing the sequence of keys in our
// benchmark workloads. Benchmarks iterate over it in circular fashion.
const workloadSize = 1 << 16

// zipfWorkload generates a skewed key sequence so benchmarks exercise hits,
// misses and evictions in realistic proportions.
func zipfWorkload() []uint64 {
	return sim.Collection(sim.NewZipfian(1.25, 2, workloadSize/4), workloadSize)
}

func benchmarkGet(b *testing.B, policy Policy) {
	keys := zipfWorkload()
	c, err := NewCache(&Config[uint64, uint64]{
		Capacity: workloadSize / 16,
		Policy:   policy,
	})
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range keys {
		c.Put(k, k)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		c.Get(keys[n&(workloadSize-1)])
	}
}

func BenchmarkGetLRU(b *testing.B) { benchmarkGet(b, LRU) }
func BenchmarkGetLFU(b *testing.B) { benchmarkGet(b, LFU) }

func benchmarkPut(b *testing.B, policy Policy) {
	keys := zipfWorkload()
	c, err := NewCache(&Config[uint64, uint64]{
		Capacity: workloadSize / 16,
		Policy:   policy,
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		k := keys[n&(workloadSize-1)]
		c.Put(k, k)
	}
}

func BenchmarkPutLRU(b *testing.B) { benchmarkPut(b, LRU) }
func BenchmarkPutLFU(b *testing.B) { benchmarkPut(b, LFU) }

// String keys hashed down to uint64 with xxhash, the common shape for request
// memoization.
func BenchmarkGetHashedStringKeys(b *testing.B) {
	keys := make([]uint64, workloadSize)
	for i := range keys {
		keys[i] = xxhash.Sum64String("/object/" + strconv.Itoa(i%(workloadSize/16)))
	}
	c, err := NewCache(&Config[uint64, string]{
		Capacity: workloadSize / 16,
		Policy:   LRU,
	})
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range keys {
		c.Put(k, "value")
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		c.Get(keys[n&(workloadSize-1)])
	}
}
