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

// Rotate left-rotates data so that the element at middle becomes the
// first element. Returns len(data)-middle, the position where the
// element previously at position zero lands (the past-the-end
// position when middle is zero).
func Rotate[T any](pol par.Policy, data []T, middle int) (int, error) {
	const op = "Rotate"
	if err := par.RequireBlocking(pol, op); err != nil {
		return 0, err
	}
	n := len(data)
	if middle < 0 || middle > n {
		return 0, par.NewShapeError(op, "rotation point %d outside [0, %d]", middle, n)
	}
	if middle == 0 || middle == n {
		return n - middle, nil
	}

	if !pol.Parallel() {
		rotateSeq(data, middle)
		return n - middle, nil
	}

	// Stage the rotated order, then copy back; both passes are
	// element-wise parallel and run no user code.
	tmp := make([]T, n)
	spans := par.Plan(pol, n)
	err := par.Run(pol, op, spans, func(sp par.Span) {
		for i := sp.Lo; i < sp.Hi; i++ {
			src := i + middle
			if src >= n {
				src -= n
			}
			tmp[i] = data[src]
		}
	})
	if err != nil {
		return 0, err
	}
	err = par.Run(pol, op, spans, func(sp par.Span) {
		copy(data[sp.Lo:sp.Hi], tmp[sp.Lo:sp.Hi])
	})
	if err != nil {
		return 0, err
	}
	return n - middle, nil
}

// RotateAsync is the future-returning form of Rotate. The future
// carries the new index of the element previously at position zero.
func RotateAsync[T any](pol par.Policy, data []T, middle int) *par.Future[int] {
	return par.Async(pol, func(p par.Policy) (int, error) {
		return Rotate(p, data, middle)
	})
}

// rotateSeq rotates in place with the swap-cycle kernel: no scratch
// allocation; an element may be swapped more than once before it
// reaches its final position.
func rotateSeq[T any](data []T, middle int) {
	first, next, m := 0, middle, middle
	for first != next {
		data[first], data[next] = data[next], data[first]
		first++
		next++
		if next == len(data) {
			next = m
		} else if first == m {
			m = next
		}
	}
}
