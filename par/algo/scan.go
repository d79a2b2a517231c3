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

// The parallel scans use a two-pass kernel: pass one folds each chunk
// locally without writing output, a sequential prefix over the chunk
// sums produces each chunk's seed, and pass two rewrites the chunk
// with the seed applied. The combiner is never invoked with operands
// out of source order, so non-commutative operators (string
// concatenation, matrix products) scan correctly under every chunking.

// InclusiveScan writes the running fold of [first, last) to dst:
// dst[i] = a₀ ⊕ … ⊕ aᵢ. Returns the number of elements written. An
// empty input writes nothing.
func InclusiveScan[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, dst []T, combine func(T, T) T) (int, error) {
	var zero T
	return scan(pol, "InclusiveScan", first, last, dst, combine, zero, false, false)
}

// InclusiveScanInit is InclusiveScan with an initial value folded in
// front of the first element: dst[i] = init ⊕ a₀ ⊕ … ⊕ aᵢ.
func InclusiveScanInit[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, dst []T, init T, combine func(T, T) T) (int, error) {
	return scan(pol, "InclusiveScan", first, last, dst, combine, init, true, false)
}

// ExclusiveScan writes the running fold of [first, last) to dst,
// excluding each position's own element: dst[0] = init and
// dst[i] = init ⊕ a₀ ⊕ … ⊕ aᵢ₋₁. Returns the number of elements
// written. An empty input writes nothing.
func ExclusiveScan[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, dst []T, init T, combine func(T, T) T) (int, error) {
	return scan(pol, "ExclusiveScan", first, last, dst, combine, init, true, true)
}

// InclusiveScanAsync is the future-returning form of InclusiveScan.
// For an empty input the future resolves immediately.
func InclusiveScanAsync[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, dst []T, combine func(T, T) T) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return InclusiveScan(p, first, last, dst, combine)
	})
}

// ExclusiveScanAsync is the future-returning form of ExclusiveScan.
func ExclusiveScanAsync[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, dst []T, init T, combine func(T, T) T) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return ExclusiveScan(p, first, last, dst, init, combine)
	})
}

func scan[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, op string, first I, last S, dst []T, combine func(T, T) T, init T, hasInit, exclusive bool) (int, error) {
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}

	n, sized := par.Size(first, last)
	if sized && len(dst) < n {
		return 0, par.NewShapeError(op, "destination holds %d of %d elements", len(dst), n)
	}

	if !pol.Parallel() || !sized {
		return scanSeq(pol, op, first, last, dst, combine, init, hasInit, exclusive)
	}
	if n == 0 {
		return 0, nil
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)

	// Pass 1: fold each chunk locally, writing no output.
	sums := make([]T, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		acc := it.Value()
		it = it.Next()
		for range sp.Len() - 1 {
			acc = combine(acc, it.Value())
			it = it.Next()
		}
		sums[sp.Index] = acc
	})
	if err != nil {
		return 0, err
	}

	// Prefix over the chunk sums, sequentially, in source order.
	seeds := make([]T, len(spans))
	seeded := make([]bool, len(spans))
	acc, have := init, hasInit
	for k := range spans {
		seeds[k], seeded[k] = acc, have
		if have {
			acc = combine(acc, sums[k])
		} else {
			acc, have = sums[k], true
		}
	}

	// Pass 2: rewrite each chunk with its seed applied.
	err = par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		acc, have := seeds[sp.Index], seeded[sp.Index]
		for i := sp.Lo; i < sp.Hi; i++ {
			v := it.Value()
			if exclusive {
				dst[i] = acc
				acc = combine(acc, v)
			} else {
				if have {
					acc = combine(acc, v)
				} else {
					acc, have = v, true
				}
				dst[i] = acc
			}
			it = it.Next()
		}
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func scanSeq[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, op string, first I, last S, dst []T, combine func(T, T) T, init T, hasInit, exclusive bool) (int, error) {
	count := 0
	overflow := false
	err := par.Protect(pol, op, func() {
		acc, have := init, hasInit
		i := 0
		for it := first; !last.Done(it); it = it.Next() {
			if i >= len(dst) {
				overflow = true
				return
			}
			v := it.Value()
			if exclusive {
				dst[i] = acc
				acc = combine(acc, v)
			} else {
				if have {
					acc = combine(acc, v)
				} else {
					acc, have = v, true
				}
				dst[i] = acc
			}
			i++
		}
		count = i
	})
	if err != nil {
		return 0, err
	}
	if overflow {
		return 0, par.NewShapeError(op, "destination holds %d elements, input is longer", len(dst))
	}
	return count, nil
}
