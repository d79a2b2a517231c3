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
	"github.com/ajroetker/go-parallel/par"
)

// Merge merges the sorted inputs a and b into dst, which must hold
// len(a)+len(b) elements. The merge is stable: equal elements keep
// their relative order, with elements of a before elements of b.
// Returns the number of elements written.
//
// The parallel path splits dst into spans and locates each span's
// source boundaries with binary searches (the merge-path co-ranking),
// so chunks merge disjoint sub-ranges independently.
func Merge[T any](pol par.Policy, a, b, dst []T, less func(T, T) bool) (int, error) {
	const op = "Merge"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}
	n := len(a) + len(b)
	if len(dst) < n {
		return 0, par.NewShapeError(op, "destination holds %d of %d elements", len(dst), n)
	}
	if n == 0 {
		return 0, nil
	}

	if !pol.Parallel() {
		err := par.Protect(pol, op, func() {
			mergeSeq(a, b, dst[:n], less)
		})
		if err != nil {
			return 0, err
		}
		return n, nil
	}

	spans := par.Plan(pol, n)

	// Co-rank the span boundaries. The searches are cheap relative to
	// the merges and run the comparator, so they stay protected.
	bounds := make([]int, len(spans)+1)
	bounds[len(spans)] = len(a)
	err := par.Protect(pol, op, func() {
		for k := 1; k < len(spans); k++ {
			bounds[k] = corank(spans[k].Lo, a, b, less)
		}
	})
	if err != nil {
		return 0, err
	}

	err = par.Run(pol, op, spans, func(sp par.Span) {
		i0, i1 := bounds[sp.Index], bounds[sp.Index+1]
		j0, j1 := sp.Lo-i0, sp.Hi-i1
		mergeSeq(a[i0:i1], b[j0:j1], dst[sp.Lo:sp.Hi], less)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// MergeAsync is the future-returning form of Merge.
func MergeAsync[T any](pol par.Policy, a, b, dst []T, less func(T, T) bool) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return Merge(p, a, b, dst, less)
	})
}

// mergeSeq is the stable sequential merge kernel: ties take from a.
func mergeSeq[T any](a, b, dst []T, less func(T, T) bool) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// corank returns the largest i such that taking a[:i] and b[:t-i]
// yields the first t elements of the stable merge.
func corank[T any](t int, a, b []T, less func(T, T) bool) int {
	lo := max(0, t-len(b))
	hi := min(t, len(a))
	for lo < hi {
		i := (lo + hi + 1) / 2
		j := t - i
		// a[i-1] may precede b[j] only when !less(b[j], a[i-1]).
		if i > 0 && j < len(b) && less(b[j], a[i-1]) {
			hi = i - 1
		} else {
			lo = i
		}
	}
	return lo
}
