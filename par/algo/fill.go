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

// Fill assigns value to every element of data.
func Fill[T any](pol par.Policy, data []T, value T) error {
	const op = "Fill"
	if err := par.RequireBlocking(pol, op); err != nil {
		return err
	}

	if !pol.Parallel() {
		for i := range data {
			data[i] = value
		}
		return nil
	}

	spans := par.Plan(pol, len(data))
	return par.Run(pol, op, spans, func(sp par.Span) {
		for i := sp.Lo; i < sp.Hi; i++ {
			data[i] = value
		}
	})
}

// FillN assigns value to exactly the first n elements of data.
func FillN[T any](pol par.Policy, data []T, n int, value T) error {
	const op = "FillN"
	if err := par.RequireBlocking(pol, op); err != nil {
		return err
	}
	if n < 0 || n > len(data) {
		return par.NewShapeError(op, "count %d outside [0, %d]", n, len(data))
	}
	return Fill(pol, data[:n], value)
}

// UninitializedFillN constructs value in the first n cells of raw
// storage. Go zero-initialises all allocations, so construction and
// assignment coincide and this is FillN under a name that keeps
// call-site symmetry with placement-style APIs.
func UninitializedFillN[T any](pol par.Policy, data []T, n int, value T) error {
	const op = "UninitializedFillN"
	if err := par.RequireBlocking(pol, op); err != nil {
		return err
	}
	if n < 0 || n > len(data) {
		return par.NewShapeError(op, "count %d outside [0, %d]", n, len(data))
	}
	return Fill(pol, data[:n], value)
}

// FillNAsync is the future-returning form of FillN. The future
// carries the number of cells assigned.
func FillNAsync[T any](pol par.Policy, data []T, n int, value T) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		if err := FillN(p, data, n, value); err != nil {
			return 0, err
		}
		return n, nil
	})
}

// FillRange assigns value through a writable iterator over
// [first, last) and returns the iterator at the end of the range.
func FillRange[I par.MutIter[I, T], S par.Sentinel[I], T any](pol par.Policy, first I, last S, value T) (I, error) {
	const op = "FillRange"
	if err := par.RequireBlocking(pol, op); err != nil {
		return first, err
	}

	n, sized := par.Size(first, last)
	if !pol.Parallel() || !sized {
		it := first
		for !last.Done(it) {
			it.Set(value)
			it = it.Next()
		}
		return it, nil
	}

	spans := par.Plan(pol, n)
	starts := par.SpanStarts(first, spans)
	err := par.Run(pol, op, spans, func(sp par.Span) {
		it := starts[sp.Index]
		for range sp.Len() {
			it.Set(value)
			it = it.Next()
		}
	})
	if err != nil {
		return first, err
	}
	return par.AdvanceToSentinel(first, last), nil
}

// Copy copies src into dst, which must hold len(src) elements.
// Returns the number of elements copied.
func Copy[T any](pol par.Policy, src, dst []T) (int, error) {
	const op = "Copy"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}
	if len(dst) < len(src) {
		return 0, par.NewShapeError(op, "destination holds %d of %d elements", len(dst), len(src))
	}

	if !pol.Parallel() {
		return copy(dst, src), nil
	}

	spans := par.Plan(pol, len(src))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		copy(dst[sp.Lo:sp.Hi], src[sp.Lo:sp.Hi])
	})
	if err != nil {
		return 0, err
	}
	return len(src), nil
}

// CopyN copies the first n elements of src into dst. Returns the
// number of elements copied.
func CopyN[T any](pol par.Policy, src, dst []T, n int) (int, error) {
	const op = "CopyN"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}
	if n < 0 || n > len(src) {
		return 0, par.NewShapeError(op, "count %d outside [0, %d]", n, len(src))
	}
	return Copy(pol, src[:n], dst)
}
