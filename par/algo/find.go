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
	"github.com/ajroetker/go-parallel/par/simd"
)

// The search and quantifier facades. Find and Count run their inner
// loops on vector packs under Unseq and ParUnseq policies, comparing a
// full pack per step and answering with the mask horizontals; a tail
// that does not fill a pack runs scalar. The *Vec forms hand the
// predicate packs under every policy, and a final short pack covers
// the tail.

// Find returns the index of the first element equal to value, or -1.
func Find[T simd.Lanes](pol par.Policy, data []T, value T) (int, error) {
	const op = "Find"
	if err := par.RequireBlocking(pol, op); err != nil {
		return -1, err
	}

	kernel := func(chunk []T) int {
		if pol.Vectorized() {
			return findPacked(chunk, value)
		}
		for i, v := range chunk {
			if v == value {
				return i
			}
		}
		return -1
	}

	if !pol.Parallel() {
		return kernel(data), nil
	}

	spans := par.Plan(pol, len(data))
	found := make([]int, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		found[sp.Index] = kernel(data[sp.Lo:sp.Hi])
	})
	if err != nil {
		return -1, err
	}
	for k, sp := range spans {
		if found[k] >= 0 {
			return sp.Lo + found[k], nil
		}
	}
	return -1, nil
}

// Count returns the number of elements equal to value.
func Count[T simd.Lanes](pol par.Policy, data []T, value T) (int, error) {
	const op = "Count"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}

	kernel := func(chunk []T) int {
		if pol.Vectorized() {
			return countPacked(chunk, value)
		}
		c := 0
		for _, v := range chunk {
			if v == value {
				c++
			}
		}
		return c
	}

	if !pol.Parallel() {
		return kernel(data), nil
	}

	spans := par.Plan(pol, len(data))
	counts := make([]int, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		counts[sp.Index] = kernel(data[sp.Lo:sp.Hi])
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// CountAsync is the future-returning form of Count.
func CountAsync[T simd.Lanes](pol par.Policy, data []T, value T) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return Count(p, data, value)
	})
}

// FindIf returns the index of the first element satisfying pred, or
// -1.
func FindIf[T any](pol par.Policy, data []T, pred func(T) bool) (int, error) {
	const op = "FindIf"
	if err := par.RequireBlocking(pol, op); err != nil {
		return -1, err
	}

	kernel := func(chunk []T) int {
		for i, v := range chunk {
			if pred(v) {
				return i
			}
		}
		return -1
	}

	if !pol.Parallel() {
		found := -1
		err := par.Protect(pol, op, func() { found = kernel(data) })
		return found, err
	}

	spans := par.Plan(pol, len(data))
	found := make([]int, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		found[sp.Index] = kernel(data[sp.Lo:sp.Hi])
	})
	if err != nil {
		return -1, err
	}
	for k, sp := range spans {
		if found[k] >= 0 {
			return sp.Lo + found[k], nil
		}
	}
	return -1, nil
}

// CountIf returns the number of elements satisfying pred.
func CountIf[T any](pol par.Policy, data []T, pred func(T) bool) (int, error) {
	const op = "CountIf"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}

	if !pol.Parallel() {
		c := 0
		err := par.Protect(pol, op, func() {
			for _, v := range data {
				if pred(v) {
					c++
				}
			}
		})
		return c, err
	}

	spans := par.Plan(pol, len(data))
	counts := make([]int, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		c := 0
		for i := sp.Lo; i < sp.Hi; i++ {
			if pred(data[i]) {
				c++
			}
		}
		counts[sp.Index] = c
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// CountIfBy projects each element before testing it: the count of
// elements whose projection satisfies pred.
func CountIfBy[T, P any](pol par.Policy, data []T, proj func(T) P, pred func(P) bool) (int, error) {
	return CountIf(pol, data, func(v T) bool { return pred(proj(v)) })
}

// FindIfBy projects each element before testing it.
func FindIfBy[T, P any](pol par.Policy, data []T, proj func(T) P, pred func(P) bool) (int, error) {
	return FindIf(pol, data, func(v T) bool { return pred(proj(v)) })
}

// AllOf reports whether pred holds for every element. True for an
// empty input.
func AllOf[T any](pol par.Policy, data []T, pred func(T) bool) (bool, error) {
	c, err := quantify(pol, "AllOf", data, pred)
	return c == len(data), err
}

// AnyOf reports whether pred holds for at least one element.
func AnyOf[T any](pol par.Policy, data []T, pred func(T) bool) (bool, error) {
	c, err := quantify(pol, "AnyOf", data, pred)
	return c > 0, err
}

// NoneOf reports whether pred holds for no element.
func NoneOf[T any](pol par.Policy, data []T, pred func(T) bool) (bool, error) {
	c, err := quantify(pol, "NoneOf", data, pred)
	return c == 0, err
}

func quantify[T any](pol par.Policy, op string, data []T, pred func(T) bool) (int, error) {
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}

	if !pol.Parallel() {
		c := 0
		err := par.Protect(pol, op, func() {
			for _, v := range data {
				if pred(v) {
					c++
				}
			}
		})
		return c, err
	}

	spans := par.Plan(pol, len(data))
	counts := make([]int, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		c := 0
		for i := sp.Lo; i < sp.Hi; i++ {
			if pred(data[i]) {
				c++
			}
		}
		counts[sp.Index] = c
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// AllOfVec reports whether pred's mask is fully set over every pack of
// data. The predicate sees whole packs; a final short pack covers the
// tail.
func AllOfVec[T simd.Lanes](pol par.Policy, data []T, pred func(simd.Pack[T]) simd.Mask[T]) (bool, error) {
	const op = "AllOfVec"
	if err := par.RequireBlocking(pol, op); err != nil {
		return false, err
	}

	kernel := func(chunk []T) bool {
		lanes := simd.MaxLanes[T]()
		for i := 0; i < len(chunk); i += lanes {
			if !pred(simd.Load(chunk[i:])).All() {
				return false
			}
		}
		return true
	}

	if !pol.Parallel() {
		ok := false
		err := par.Protect(pol, op, func() { ok = kernel(data) })
		return ok, err
	}

	spans := par.Plan(pol, len(data))
	oks := make([]bool, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		oks[sp.Index] = kernel(data[sp.Lo:sp.Hi])
	})
	if err != nil {
		return false, err
	}
	for _, ok := range oks {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// AnyOfVec reports whether pred's mask has any lane set over any pack
// of data.
func AnyOfVec[T simd.Lanes](pol par.Policy, data []T, pred func(simd.Pack[T]) simd.Mask[T]) (bool, error) {
	const op = "AnyOfVec"
	if err := par.RequireBlocking(pol, op); err != nil {
		return false, err
	}

	kernel := func(chunk []T) bool {
		lanes := simd.MaxLanes[T]()
		for i := 0; i < len(chunk); i += lanes {
			if pred(simd.Load(chunk[i:])).Any() {
				return true
			}
		}
		return false
	}

	if !pol.Parallel() {
		ok := false
		err := par.Protect(pol, op, func() { ok = kernel(data) })
		return ok, err
	}

	spans := par.Plan(pol, len(data))
	oks := make([]bool, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		oks[sp.Index] = kernel(data[sp.Lo:sp.Hi])
	})
	if err != nil {
		return false, err
	}
	for _, ok := range oks {
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// NoneOfVec reports whether pred's mask is empty over every pack of
// data.
func NoneOfVec[T simd.Lanes](pol par.Policy, data []T, pred func(simd.Pack[T]) simd.Mask[T]) (bool, error) {
	found, err := AnyOfVec(pol, data, pred)
	return !found, err
}

// CountIfVec returns the total number of set mask lanes produced by
// pred across data, using the mask popcount horizontal per pack.
func CountIfVec[T simd.Lanes](pol par.Policy, data []T, pred func(simd.Pack[T]) simd.Mask[T]) (int, error) {
	const op = "CountIfVec"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}

	kernel := func(chunk []T) int {
		lanes := simd.MaxLanes[T]()
		c := 0
		for i := 0; i < len(chunk); i += lanes {
			c += pred(simd.Load(chunk[i:])).CountTrue()
		}
		return c
	}

	if !pol.Parallel() {
		c := 0
		err := par.Protect(pol, op, func() { c = kernel(data) })
		return c, err
	}

	spans := par.Plan(pol, len(data))
	counts := make([]int, len(spans))
	err := par.Run(pol, op, spans, func(sp par.Span) {
		counts[sp.Index] = kernel(data[sp.Lo:sp.Hi])
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// findPacked compares a full pack per step; entry and tail run scalar.
func findPacked[T simd.Lanes](data []T, value T) int {
	n := len(data)
	lanes := simd.MaxLanes[T]()
	target := simd.Set(value)

	i := 0
	for ; i+lanes <= n; i += lanes {
		mask := simd.Equal(simd.Load(data[i:]), target)
		if idx := mask.FirstTrue(); idx >= 0 {
			return i + idx
		}
	}
	for ; i < n; i++ {
		if data[i] == value {
			return i
		}
	}
	return -1
}

// countPacked counts matches with the mask popcount horizontal; the
// tail runs through the scalar fallback.
func countPacked[T simd.Lanes](data []T, value T) int {
	n := len(data)
	lanes := simd.MaxLanes[T]()
	target := simd.Set(value)

	count := 0
	i := 0
	for ; i+lanes <= n; i += lanes {
		count += simd.Equal(simd.Load(data[i:]), target).CountTrue()
	}
	for ; i < n; i++ {
		count += simd.PopCount(data[i] == value)
	}
	return count
}
