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

// StablePartition reorders data so that every element satisfying pred
// precedes every element that does not, preserving relative order
// within both groups. Returns the index of the first element of the
// false group. The predicate is applied exactly once per element.
func StablePartition[T any](pol par.Policy, data []T, pred func(T) bool) (int, error) {
	const op = "StablePartition"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}
	n := len(data)
	if n == 0 {
		return 0, nil
	}

	if !pol.Parallel() {
		split := 0
		err := par.Protect(pol, op, func() {
			split = stablePartitionSeq(data, pred)
		})
		return split, err
	}

	spans := par.Plan(pol, n)

	// Pass 1: evaluate the predicate in parallel, once per element.
	flags := make([]bool, n)
	counts := make([]int, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		c := 0
		for i := sp.Lo; i < sp.Hi; i++ {
			flags[i] = pred(data[i])
			if flags[i] {
				c++
			}
		}
		counts[sp.Index] = c
	})
	if err != nil {
		return 0, err
	}

	// Offsets for each chunk's true and false runs, in source order.
	total := 0
	trueOff := make([]int, len(spans))
	for k, c := range counts {
		trueOff[k] = total
		total += c
	}

	// Pass 2: scatter into a staging buffer. No user code runs here.
	tmp := make([]T, n)
	err = par.Run(pol, op, spans, func(sp par.Span) {
		ti := trueOff[sp.Index]
		fi := total + sp.Lo - trueOff[sp.Index]
		for i := sp.Lo; i < sp.Hi; i++ {
			if flags[i] {
				tmp[ti] = data[i]
				ti++
			} else {
				tmp[fi] = data[i]
				fi++
			}
		}
	})
	if err != nil {
		return 0, err
	}

	// Pass 3: copy back in parallel.
	err = par.Run(pol, op, spans, func(sp par.Span) {
		copy(data[sp.Lo:sp.Hi], tmp[sp.Lo:sp.Hi])
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// StablePartitionAsync is the future-returning form of
// StablePartition. The future carries the split index.
func StablePartitionAsync[T any](pol par.Policy, data []T, pred func(T) bool) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return StablePartition(p, data, pred)
	})
}

// StablePartitionRange partitions [first, last) through a writable
// iterator, preserving relative order within both groups, and returns
// the iterator at the split. The iterator must support bidirectional
// traversal or better. The predicate runs in parallel under a parallel
// policy; the rearrangement itself is a single ordered write-back.
func StablePartitionRange[I par.MutIter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, pred func(T) bool) (I, error) {
	const op = "StablePartition"
	if err := par.RequireBlocking(pol, op); err != nil {
		return first, err
	}
	if par.CategoryOf(first) < par.CategoryBidirectional {
		return first, par.NewShapeError(op, "requires bidirectional traversal, have %s", par.CategoryOf(first))
	}

	n, sized := par.Size(first, last)
	if !sized {
		n = par.Distance(first, last)
	}
	if n == 0 {
		return first, nil
	}

	// Evaluate the predicate once per element, in parallel when the
	// policy allows.
	flags := make([]bool, n)
	if pol.Parallel() {
		spans := par.Plan(pol, n)
		starts := par.SpanStarts(first, spans)
		err := par.Run(pol, op, spans, func(sp par.Span) {
			it := starts[sp.Index]
			for i := sp.Lo; i < sp.Hi; i++ {
				flags[i] = pred(it.Value())
				it = it.Next()
			}
		})
		if err != nil {
			return first, err
		}
	} else {
		i := 0
		err := par.Protect(pol, op, func() {
			for it := first; !last.Done(it); it = it.Next() {
				flags[i] = pred(it.Value())
				i++
			}
		})
		if err != nil {
			return first, err
		}
	}

	// Collect both groups in source order, then write back.
	trues := make([]T, 0, n)
	falses := make([]T, 0, n)
	i := 0
	for it := first; i < n; it = it.Next() {
		if flags[i] {
			trues = append(trues, it.Value())
		} else {
			falses = append(falses, it.Value())
		}
		i++
	}

	it := first
	for _, v := range trues {
		it.Set(v)
		it = it.Next()
	}
	split := it
	for _, v := range falses {
		it.Set(v)
		it = it.Next()
	}
	return split, nil
}

// StablePartitionRangeAsync is the future-returning form of
// StablePartitionRange. The future carries the split iterator.
func StablePartitionRangeAsync[I par.MutIter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, pred func(T) bool) *par.Future[I] {
	return par.Async(pol, func(p par.Policy) (I, error) {
		return StablePartitionRange(p, first, last, pred)
	})
}

// stablePartitionSeq buffers both groups and rewrites data in place.
func stablePartitionSeq[T any](data []T, pred func(T) bool) int {
	trues := make([]T, 0, len(data))
	falses := make([]T, 0, len(data))
	for _, v := range data {
		if pred(v) {
			trues = append(trues, v)
		} else {
			falses = append(falses, v)
		}
	}
	copy(data, trues)
	copy(data[len(trues):], falses)
	return len(trues)
}
