// Copyright 2025 go-parallel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algo

import (
	"flag"
	"math/rand"
	"os"
	"testing"

	"github.com/ajroetker/go-parallel/par"
)

var seedFlag = flag.Uint("seed", 0, "random number generator seed for this run")

var testSeed int64

func TestMain(m *testing.M) {
	flag.Parse()
	testSeed = int64(*seedFlag)
	if testSeed == 0 {
		testSeed = 0x5eed
	}
	os.Exit(m.Run())
}

// testRand returns a deterministic generator for one test.
func testRand() *rand.Rand {
	return rand.New(rand.NewSource(testSeed))
}

// blockingPolicies covers every variant that collects failures plus
// the vectorised tiers, with assorted chunkings.
func blockingPolicies() []par.Policy {
	return []par.Policy{
		par.Seq,
		par.Unseq,
		par.Par,
		par.Par.With(par.StaticChunkSize(1)),
		par.Par.With(par.StaticChunkSize(3)),
		par.Par.With(par.StaticChunkSize(1000)),
		par.Par.With(par.DynamicChunkSize()),
		par.ParUnseq,
	}
}

// catchingPolicies are the variants under which a panicking callable
// surfaces as an error instead of terminating.
func catchingPolicies() []par.Policy {
	return []par.Policy{
		par.Seq,
		par.Par,
		par.Par.With(par.StaticChunkSize(7)),
	}
}

// fwdIter is a forward-only iterator with an unsized sentinel, for
// exercising the sequential fallback paths.
type fwdIter struct {
	s []int
	i int
}

func (it fwdIter) Value() int { return it.s[it.i] }
func (it fwdIter) Next() fwdIter {
	it.i++
	return it
}

type fwdEnd struct {
	end int
}

func (s fwdEnd) Done(it fwdIter) bool { return it.i >= s.end }

// iotaSlice returns [start, start+1, ...) of length n.
func iotaSlice(n int, start int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

func requireEqualInts(t *testing.T, got, want []int, label string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", label, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: element %d = %d, want %d", label, i, got[i], want[i])
		}
	}
}
