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

// Package sim generates and parses cache access traces. Synthetic simulators
// produce keys from common distributions, and readers replay recorded traces,
// so hit-ratio tests and benchmarks can drive a cache with realistic access
// patterns.
package sim

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/dgryski/go-farm"
	"github.com/pkg/errors"
)

// ErrDone is returned by a Simulator when its trace is exhausted.
var ErrDone = errors.New("simulator is done")

// Simulator returns the next key of an access trace.
type Simulator func() (uint64, error)

// NewZipfian returns a Simulator drawing keys from a Zipfian distribution
// over [0, n), which approximates the skewed access patterns seen by real
// caches.
func NewZipfian(s, v float64, n uint64) Simulator {
	z := rand.NewZipf(rand.New(rand.NewSource(time.Now().UnixNano())), s, v, n)
	return func() (uint64, error) {
		return z.Uint64(), nil
	}
}

// NewUniform returns a Simulator drawing keys uniformly from [0, n).
func NewUniform(n uint64) Simulator {
	m := int64(n)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func() (uint64, error) {
		return uint64(r.Int63n(m)), nil
	}
}

// Parser turns one line of a trace file into a key.
type Parser func(string, error) (uint64, error)

// NewReader returns a Simulator replaying the trace in file, one line per
// access, using parser to decode each line.
func NewReader(parser Parser, file io.Reader) Simulator {
	b := bufio.NewReader(file)
	return func() (uint64, error) {
		return parser(b.ReadString('\n'))
	}
}

// ParseLirs parses a line of a LIRS-format trace: one decimal key per line,
// CRLF terminated.
func ParseLirs(line string, err error) (uint64, error) {
	if line != "" {
		// example: "1\r\n"
		key, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "bad lirs line %q", line)
		}
		return key, nil
	}
	return 0, ErrDone
}

// ParseKeyed parses a line whose first whitespace-separated field is an
// opaque key, such as a URL or request path, and fingerprints it into a
// uint64. Everything after the first field is ignored.
func ParseKeyed(line string, err error) (uint64, error) {
	if line == "" {
		return 0, ErrDone
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, errors.Errorf("bad keyed line %q", line)
	}
	return farm.Fingerprint64([]byte(fields[0])), nil
}

// Collection evaluates the simulator size times and collects the results.
func Collection(simulator Simulator, size uint64) []uint64 {
	collection := make([]uint64, size)
	for i := range collection {
		collection[i], _ = simulator()
	}
	return collection
}
