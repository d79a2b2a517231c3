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

// Reduce folds [first, last) into init with op. The combiner must be
// associative; commutativity is not required. Partial results are
// folded in source order, so init ⊕ a₀ ⊕ a₁ ⊕ … is the value produced
// for every chunking.
func Reduce[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, init T, op func(T, T) T) (T, error) {
	const name = "Reduce"
	if err := par.RequireBlocking(pol, name); err != nil {
		return init, err
	}

	n, sized := par.Size(first, last)
	if !pol.Parallel() || !sized {
		acc := init
		err := par.Protect(pol, name, func() {
			for it := first; !last.Done(it); it = it.Next() {
				acc = op(acc, it.Value())
			}
		})
		if err != nil {
			return init, err
		}
		return acc, nil
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	partials := make([]T, len(spans))
	err := par.Run(pol, name, spans, func(sp par.Span) {
		it := starts[sp.Index]
		acc := it.Value()
		it = it.Next()
		for range sp.Len() - 1 {
			acc = op(acc, it.Value())
			it = it.Next()
		}
		partials[sp.Index] = acc
	})
	if err != nil {
		return init, err
	}

	acc := init
	for _, p := range partials {
		acc = op(acc, p)
	}
	return acc, nil
}

// ReduceAsync is the future-returning form of Reduce.
func ReduceAsync[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, init T, op func(T, T) T) *par.Future[T] {
	return par.Async(pol, func(p par.Policy) (T, error) {
		return Reduce(p, first, last, init, op)
	})
}

// TransformReduce projects every element through transform and folds
// the projections into init with reduce, in source order.
func TransformReduce[I par.Iter[I, T], S par.Sentinel[I], T, R any](pol par.Policy, first I, last S, init R, reduce func(R, R) R, transform func(T) R) (R, error) {
	const name = "TransformReduce"
	if err := par.RequireBlocking(pol, name); err != nil {
		return init, err
	}

	n, sized := par.Size(first, last)
	if !pol.Parallel() || !sized {
		acc := init
		err := par.Protect(pol, name, func() {
			for it := first; !last.Done(it); it = it.Next() {
				acc = reduce(acc, transform(it.Value()))
			}
		})
		if err != nil {
			return init, err
		}
		return acc, nil
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	partials := make([]R, len(spans))
	err := par.Run(pol, name, spans, func(sp par.Span) {
		it := starts[sp.Index]
		acc := transform(it.Value())
		it = it.Next()
		for range sp.Len() - 1 {
			acc = reduce(acc, transform(it.Value()))
			it = it.Next()
		}
		partials[sp.Index] = acc
	})
	if err != nil {
		return init, err
	}

	acc := init
	for _, p := range partials {
		acc = reduce(acc, p)
	}
	return acc, nil
}

// TransformReduceAsync is the future-returning form of TransformReduce.
func TransformReduceAsync[I par.Iter[I, T], S par.Sentinel[I], T, R any](pol par.Policy, first I, last S, init R, reduce func(R, R) R, transform func(T) R) *par.Future[R] {
	return par.Async(pol, func(p par.Policy) (R, error) {
		return TransformReduce(p, first, last, init, reduce, transform)
	})
}

// TransformReduceBinary combines a and b pairwise and folds the
// combinations into init, in source order. With addition and
// multiplication this is the inner product.
func TransformReduceBinary[A, B, R any](pol par.Policy, a []A, b []B, init R, reduce func(R, R) R, combine func(A, B) R) (R, error) {
	const name = "TransformReduceBinary"
	if err := par.RequireBlocking(pol, name); err != nil {
		return init, err
	}
	if len(a) != len(b) {
		return init, par.NewShapeError(name, "input lengths differ: %d vs %d", len(a), len(b))
	}

	n := len(a)
	if n == 0 {
		return init, nil
	}

	if !pol.Parallel() {
		acc := init
		err := par.Protect(pol, name, func() {
			for i := range n {
				acc = reduce(acc, combine(a[i], b[i]))
			}
		})
		if err != nil {
			return init, err
		}
		return acc, nil
	}

	spans := par.Plan(pol, n)
	partials := make([]R, len(spans))
	err := par.Run(pol, name, spans, func(sp par.Span) {
		acc := combine(a[sp.Lo], b[sp.Lo])
		for i := sp.Lo + 1; i < sp.Hi; i++ {
			acc = reduce(acc, combine(a[i], b[i]))
		}
		partials[sp.Index] = acc
	})
	if err != nil {
		return init, err
	}

	acc := init
	for _, p := range partials {
		acc = reduce(acc, p)
	}
	return acc, nil
}

// TransformReduceBinaryAsync is the future-returning form of
// TransformReduceBinary.
func TransformReduceBinaryAsync[A, B, R any](pol par.Policy, a []A, b []B, init R, reduce func(R, R) R, combine func(A, B) R) *par.Future[R] {
	return par.Async(pol, func(p par.Policy) (R, error) {
		return TransformReduceBinary(p, a, b, init, reduce, combine)
	})
}
