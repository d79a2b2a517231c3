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

// SliceIter is a random-access, writable iterator over a slice.
type SliceIter[T any] struct {
	s []T
	i int
}

// Begin returns an iterator positioned at the first element of s.
func Begin[T any](s []T) SliceIter[T] {
	return SliceIter[T]{s: s}
}

// Value returns the element at the iterator's position.
func (it SliceIter[T]) Value() T { return it.s[it.i] }

// Set writes the element at the iterator's position.
func (it SliceIter[T]) Set(v T) { it.s[it.i] = v }

// Next returns an iterator advanced by one position.
func (it SliceIter[T]) Next() SliceIter[T] {
	it.i++
	return it
}

// Prev returns an iterator moved back by one position.
func (it SliceIter[T]) Prev() SliceIter[T] {
	it.i--
	return it
}

// Advance returns an iterator moved by n positions.
func (it SliceIter[T]) Advance(n int) SliceIter[T] {
	it.i += n
	return it
}

// Distance returns the number of steps from it to other.
func (it SliceIter[T]) Distance(other SliceIter[T]) int { return other.i - it.i }

// Index returns the iterator's position within the slice.
func (it SliceIter[T]) Index() int { return it.i }

// Contiguous exposes the underlying storage and the iterator's offset
// into it, so pack loads and stores can run directly against the
// slice. The algorithm facades do not call it.
func (it SliceIter[T]) Contiguous() ([]T, int) { return it.s, it.i }

// SliceSentinel is the sized end-of-slice sentinel produced by End.
type SliceSentinel[T any] struct {
	end int
}

// End returns the sentinel marking the end of s.
func End[T any](s []T) SliceSentinel[T] {
	return SliceSentinel[T]{end: len(s)}
}

// Done reports whether the iterator has reached the end of the slice.
func (s SliceSentinel[T]) Done(it SliceIter[T]) bool { return it.i >= s.end }

// Distance returns the number of elements between the iterator and the
// end of the slice.
func (s SliceSentinel[T]) Distance(it SliceIter[T]) int { return s.end - it.i }

// OfSlice bundles a whole slice as a range.
func OfSlice[T any](s []T) Range[SliceIter[T], SliceSentinel[T]] {
	return NewRange(Begin(s), End(s))
}

// CountingIter iterates over the integers themselves: the value at
// each position is the position. Useful as an index generator and for
// exercising iterator/sentinel pairs of distinct types.
type CountingIter struct {
	N int
}

// Value returns the current count.
func (it CountingIter) Value() int { return it.N }

// Next returns an iterator advanced by one.
func (it CountingIter) Next() CountingIter {
	it.N++
	return it
}

// Prev returns an iterator moved back by one.
func (it CountingIter) Prev() CountingIter {
	it.N--
	return it
}

// Advance returns an iterator moved by n.
func (it CountingIter) Advance(n int) CountingIter {
	it.N += n
	return it
}

// Distance returns the number of steps from it to other.
func (it CountingIter) Distance(other CountingIter) int { return other.N - it.N }

// CountUntil is the sized sentinel terminating a CountingIter range.
type CountUntil struct {
	Limit int
}

// Done reports whether the counter has reached the limit.
func (s CountUntil) Done(it CountingIter) bool { return it.N >= s.Limit }

// Distance returns the number of counts remaining before the limit.
func (s CountUntil) Distance(it CountingIter) int { return s.Limit - it.N }
