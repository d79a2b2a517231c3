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
	"errors"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/go-parallel/par"
)

func sortedRandom(n, bound int) []int {
	rng := testRand()
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(bound)
	}
	sort.Ints(out)
	return out
}

func TestMergeMatchesReference(t *testing.T) {
	less := func(a, b int) bool { return a < b }

	shapes := []struct {
		name   string
		na, nb int
	}{
		{name: "balanced", na: 2357, nb: 2357},
		{name: "skewed", na: 10007, nb: 13},
		{name: "left_empty", na: 0, nb: 100},
		{name: "right_empty", na: 100, nb: 0},
		{name: "both_empty", na: 0, nb: 0},
	}

	for _, sh := range shapes {
		t.Run(sh.name, func(t *testing.T) {
			a := sortedRandom(sh.na, 1000)
			b := sortedRandom(sh.nb, 1000)

			ref := make([]int, sh.na+sh.nb)
			if _, err := Merge(par.Seq, a, b, ref, less); err != nil {
				t.Fatalf("sequential reference: %v", err)
			}

			for _, pol := range blockingPolicies() {
				dst := make([]int, sh.na+sh.nb)
				n, err := Merge(pol, a, b, dst, less)
				if err != nil {
					t.Fatalf("Merge(%v): %v", pol.Kind(), err)
				}
				if n != sh.na+sh.nb {
					t.Fatalf("Merge(%v) wrote %d of %d", pol.Kind(), n, sh.na+sh.nb)
				}
				requireEqualInts(t, dst, ref, pol.Kind().String())
			}
		})
	}
}

type keyed struct {
	key int
	src int // 0 = a, 1 = b
	ord int // position within its source
}

func TestMergeStability(t *testing.T) {
	// Many duplicate keys; equal runs must come out a-first and in
	// source order within each input.
	rng := testRand()
	mk := func(n, src int) []keyed {
		out := make([]keyed, n)
		for i := range out {
			out[i] = keyed{key: rng.Intn(8), src: src, ord: i}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].key < out[j].key })
		for i := range out {
			out[i].ord = i
		}
		return out
	}
	a := mk(997, 0)
	b := mk(1013, 1)
	less := func(x, y keyed) bool { return x.key < y.key }

	for _, pol := range []par.Policy{par.Seq, par.Par, par.Par.With(par.StaticChunkSize(10))} {
		dst := make([]keyed, len(a)+len(b))
		if _, err := Merge(pol, a, b, dst, less); err != nil {
			t.Fatalf("Merge(%v): %v", pol.Kind(), err)
		}

		for i := 1; i < len(dst); i++ {
			p, q := dst[i-1], dst[i]
			if p.key > q.key {
				t.Fatalf("%v: not sorted at %d", pol.Kind(), i)
			}
			if p.key == q.key {
				if p.src > q.src {
					t.Fatalf("%v: b element before a element within key %d", pol.Kind(), p.key)
				}
				if p.src == q.src && p.ord > q.ord {
					t.Fatalf("%v: source order broken within key %d", pol.Kind(), p.key)
				}
			}
		}
	}
}

func TestMergeShortDestination(t *testing.T) {
	_, err := Merge(par.Par, []int{1}, []int{2}, make([]int, 1), func(a, b int) bool { return a < b })
	var serr *par.ShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("got %T (%v), want *ShapeError", err, err)
	}
}

func TestMergeComparatorFailure(t *testing.T) {
	a := sortedRandom(4096, 100)
	b := sortedRandom(4096, 100)
	dst := make([]int, len(a)+len(b))

	for _, pol := range catchingPolicies() {
		var calls atomic.Int64
		_, err := Merge(pol, a, b, dst, func(x, y int) bool {
			if calls.Add(1) == 1000 {
				panic("comparator failure")
			}
			return x < y
		})
		var cerr *par.CallableError
		if !errors.As(err, &cerr) {
			t.Fatalf("Merge(%v) returned %T (%v), want *CallableError", pol.Kind(), err, err)
		}
	}
}

func TestMergeAsync(t *testing.T) {
	a := sortedRandom(2048, 500)
	b := sortedRandom(1024, 500)
	less := func(x, y int) bool { return x < y }

	ref := make([]int, len(a)+len(b))
	if _, err := Merge(par.Seq, a, b, ref, less); err != nil {
		t.Fatal(err)
	}

	dst := make([]int, len(a)+len(b))
	f := MergeAsync(par.Par.Task(), a, b, dst, less)
	if _, err := f.Wait(); err != nil {
		t.Fatalf("async merge: %v", err)
	}
	requireEqualInts(t, dst, ref, "async merge")
}
