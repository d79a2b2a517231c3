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

package simd

// TailMask creates a mask with the first count lanes set, for handling
// the remainder of an array whose size is not a lane multiple.
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	count = min(max(count, 0), maxLanes)

	bits := make([]bool, maxLanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail walks size elements in lane-width steps, calling
// fullFn(offset) for each full pack and tailFn(offset, count) once for
// the remainder, if any.
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullPacks := size / maxLanes
	for i := range fullPacks {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullPacks*maxLanes, remaining)
	}
}

// AlignedSize rounds size up to the next lane multiple.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned reports whether size is a lane multiple.
func IsAligned[T Lanes](size int) bool {
	return size%MaxLanes[T]() == 0
}
