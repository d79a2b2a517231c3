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

package par

import "cmp"

// Numeric is the constraint for the arithmetic reduction factories.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Bits is the constraint for the bitwise reduction factories.
type Bits interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Reduction pairs a live result location with an identity and a
// combiner. The partitioner materialises one shadow per chunk,
// initialised to the identity; the user body accumulates into its
// shadow; after all chunks complete the shadows are folded
// left-to-right into the live location, exactly once.
type Reduction[R any] struct {
	live     *R
	identity R
	combine  func(R, R) R
}

// NewReduction builds a reduction handle from a live location, an
// identity element and a combiner. When the algorithm completes the
// live location is assigned exactly the fold of the identity with the
// per-chunk shadows; its prior value does not participate.
func NewReduction[R any](live *R, identity R, combine func(R, R) R) *Reduction[R] {
	return &Reduction[R]{live: live, identity: identity, combine: combine}
}

// ReductionPlus accumulates a sum into *live.
func ReductionPlus[R Numeric](live *R) *Reduction[R] {
	return NewReduction(live, 0, func(a, b R) R { return a + b })
}

// ReductionMultiplies accumulates a product into *live.
func ReductionMultiplies[R Numeric](live *R) *Reduction[R] {
	return NewReduction(live, 1, func(a, b R) R { return a * b })
}

// ReductionMin accumulates a minimum into *live. The live location's
// value at construction time is the identity, so untouched shadows do
// not disturb the result.
func ReductionMin[R cmp.Ordered](live *R) *Reduction[R] {
	return NewReduction(live, *live, func(a, b R) R { return min(a, b) })
}

// ReductionMax accumulates a maximum into *live.
func ReductionMax[R cmp.Ordered](live *R) *Reduction[R] {
	return NewReduction(live, *live, func(a, b R) R { return max(a, b) })
}

// ReductionBitAnd accumulates a bitwise conjunction into *live.
func ReductionBitAnd[R Bits](live *R) *Reduction[R] {
	var ones R
	ones = ^ones
	return NewReduction(live, ones, func(a, b R) R { return a & b })
}

// ReductionBitOr accumulates a bitwise disjunction into *live.
func ReductionBitOr[R Bits](live *R) *Reduction[R] {
	return NewReduction(live, 0, func(a, b R) R { return a | b })
}

// ReductionBitXor accumulates a bitwise exclusive-or into *live.
func ReductionBitXor[R Bits](live *R) *Reduction[R] {
	return NewReduction(live, 0, func(a, b R) R { return a ^ b })
}

// Shadows allocates per-chunk accumulators initialised to the
// identity.
func (r *Reduction[R]) Shadows(n int) []R {
	shadows := make([]R, n)
	for i := range shadows {
		shadows[i] = r.identity
	}
	return shadows
}

// Fold combines the identity with the shadows left-to-right and
// assigns the result to the live location.
func (r *Reduction[R]) Fold(shadows []R) {
	acc := r.identity
	for _, s := range shadows {
		acc = r.combine(acc, s)
	}
	*r.live = acc
}
