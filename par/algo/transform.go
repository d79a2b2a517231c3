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

// Transform applies f to every element of [first, last) and writes the
// results to dst in order. Returns the number of elements written.
func Transform[I par.Iter[I, T], S par.Sentinel[I], T, U any](pol par.Policy, first I, last S, dst []U, f func(T) U) (int, error) {
	const op = "Transform"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}

	n, sized := par.Size(first, last)
	if sized && len(dst) < n {
		return 0, par.NewShapeError(op, "destination holds %d of %d elements", len(dst), n)
	}

	if !pol.Parallel() || !sized {
		count := 0
		overflow := false
		err := par.Protect(pol, op, func() {
			i := 0
			for it := first; !last.Done(it); it = it.Next() {
				if i >= len(dst) {
					overflow = true
					return
				}
				dst[i] = f(it.Value())
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

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	err := par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		for i := sp.Lo; i < sp.Hi; i++ {
			dst[i] = f(it.Value())
			it = it.Next()
		}
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// TransformAsync is the future-returning form of Transform.
func TransformAsync[I par.Iter[I, T], S par.Sentinel[I], T, U any](pol par.Policy, first I, last S, dst []U, f func(T) U) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return Transform(p, first, last, dst, f)
	})
}

// TransformBinary applies f pairwise over a and b, writing results to
// dst in order. The inputs must be the same length.
func TransformBinary[A, B, V any](pol par.Policy, a []A, b []B, dst []V, f func(A, B) V) (int, error) {
	const op = "TransformBinary"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}
	if len(a) != len(b) {
		return 0, par.NewShapeError(op, "input lengths differ: %d vs %d", len(a), len(b))
	}
	if len(dst) < len(a) {
		return 0, par.NewShapeError(op, "destination holds %d of %d elements", len(dst), len(a))
	}

	n := len(a)
	if !pol.Parallel() {
		err := par.Protect(pol, op, func() {
			for i := range n {
				dst[i] = f(a[i], b[i])
			}
		})
		if err != nil {
			return 0, err
		}
		return n, nil
	}

	spans := par.Plan(pol, n)
	err := par.Run(pol, op, spans, func(sp par.Span) {
		for i := sp.Lo; i < sp.Hi; i++ {
			dst[i] = f(a[i], b[i])
		}
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// TransformBinaryAsync is the future-returning form of TransformBinary.
func TransformBinaryAsync[A, B, V any](pol par.Policy, a []A, b []B, dst []V, f func(A, B) V) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return TransformBinary(p, a, b, dst, f)
	})
}
