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

// ForEach applies f to every element of [first, last) and returns the
// iterator positioned at the end of the range. Chunks run in parallel
// under a parallel policy; within a chunk iteration is in order.
func ForEach[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, f func(T)) (I, error) {
	const op = "ForEach"
	if err := par.RequireBlocking(pol, op); err != nil {
		return first, err
	}

	n, sized := par.Size(first, last)
	if !pol.Parallel() || !sized {
		end := first
		err := par.Protect(pol, op, func() {
			it := first
			for !last.Done(it) {
				f(it.Value())
				it = it.Next()
			}
			end = it
		})
		return end, err
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	err := par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		for range sp.Len() {
			f(it.Value())
			it = it.Next()
		}
	})
	if err != nil {
		return first, err
	}
	return par.AdvanceToSentinel(first, last), nil
}

// ForEachAsync is the future-returning form of ForEach.
func ForEachAsync[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, f func(T)) *par.Future[I] {
	return par.Async(pol, func(p par.Policy) (I, error) {
		return ForEach(p, first, last, f)
	})
}

// ForEachRange applies f to every element of r.
func ForEachRange[I par.Iter[I, T], S par.Sentinel[I], T any](pol par.Policy, r par.Range[I, S], f func(T)) (I, error) {
	return ForEach(pol, r.First, r.Last, f)
}

// ForEachN applies f to the first n elements starting at first and
// returns the iterator advanced by n.
func ForEachN[I par.Iter[I, T], T any](pol par.Policy, first I, n int, f func(T)) (I, error) {
	const op = "ForEachN"
	if err := par.RequireBlocking(pol, op); err != nil {
		return first, err
	}
	if n < 0 {
		return first, par.NewShapeError(op, "negative count %d", n)
	}

	if !pol.Parallel() {
		end := first
		err := par.Protect(pol, op, func() {
			it := first
			for range n {
				f(it.Value())
				it = it.Next()
			}
			end = it
		})
		return end, err
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	err := par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		for range sp.Len() {
			f(it.Value())
			it = it.Next()
		}
	})
	if err != nil {
		return first, err
	}
	return par.Advance(first, n), nil
}

// ForEachSlice applies f to a pointer to every element of data,
// allowing in-place mutation.
func ForEachSlice[T any](pol par.Policy, data []T, f func(*T)) error {
	const op = "ForEachSlice"
	if err := par.RequireBlocking(pol, op); err != nil {
		return err
	}

	if !pol.Parallel() {
		return par.Protect(pol, op, func() {
			for i := range data {
				f(&data[i])
			}
		})
	}

	spans := par.Plan(pol, len(data))
	return par.Run(pol, op, spans, func(sp par.Span) {
		for i := sp.Lo; i < sp.Hi; i++ {
			f(&data[i])
		}
	})
}

// ForEachSliceAsync is the future-returning form of ForEachSlice. The
// future carries the number of elements visited.
func ForEachSliceAsync[T any](pol par.Policy, data []T, f func(*T)) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		if err := ForEachSlice(p, data, f); err != nil {
			return 0, err
		}
		return len(data), nil
	})
}

// ForLoop invokes body once per position of [first, last), passing the
// iterator itself so the body can read or write through it.
func ForLoop[I par.Stepper[I], S par.Sentinel[I]](pol par.Policy, first I, last S, body func(I)) error {
	const op = "ForLoop"
	if err := par.RequireBlocking(pol, op); err != nil {
		return err
	}

	n, sized := par.Size(first, last)
	if !pol.Parallel() || !sized {
		return par.Protect(pol, op, func() {
			for it := first; !last.Done(it); it = it.Next() {
				body(it)
			}
		})
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	return par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		for range sp.Len() {
			body(it)
			it = it.Next()
		}
	})
}

// ForLoopReduce is ForLoop with a reduction: the body receives the
// iterator and a shadow accumulator for its chunk. Shadows start at
// the reduction's identity and are folded left-to-right into the live
// location after every chunk completes.
func ForLoopReduce[I par.Stepper[I], S par.Sentinel[I], R any](pol par.Policy, first I, last S, red *par.Reduction[R], body func(I, *R)) error {
	const op = "ForLoopReduce"
	if err := par.RequireBlocking(pol, op); err != nil {
		return err
	}

	n, sized := par.Size(first, last)
	if !pol.Parallel() || !sized {
		shadows := red.Shadows(1)
		err := par.Protect(pol, op, func() {
			for it := first; !last.Done(it); it = it.Next() {
				body(it, &shadows[0])
			}
		})
		if err != nil {
			return err
		}
		red.Fold(shadows)
		return nil
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	shadows := red.Shadows(len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		acc := &shadows[sp.Index]
		for range sp.Len() {
			body(it, acc)
			it = it.Next()
		}
	})
	if err != nil {
		return err
	}
	red.Fold(shadows)
	return nil
}

// ForLoopReduceRange is ForLoopReduce over a bundled range.
func ForLoopReduceRange[I par.Stepper[I], S par.Sentinel[I], R any](pol par.Policy, r par.Range[I, S], red *par.Reduction[R], body func(I, *R)) error {
	return ForLoopReduce(pol, r.First, r.Last, red, body)
}

// ForLoopReduceAsync is the future-returning form of ForLoopReduce.
// The live location holds the combined result once the future
// resolves.
func ForLoopReduceAsync[I par.Stepper[I], S par.Sentinel[I], R any](pol par.Policy, first I, last S, red *par.Reduction[R], body func(I, *R)) *par.Future[struct{}] {
	return par.Async(pol, func(p par.Policy) (struct{}, error) {
		return struct{}{}, ForLoopReduce(p, first, last, red, body)
	})
}
