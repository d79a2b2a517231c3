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

import "testing"

// fwdIter is a deliberately minimal forward-only iterator used to
// exercise the linear code paths.
type fwdIter struct {
	s []int
	i int
}

func (it fwdIter) Value() int { return it.s[it.i] }
func (it fwdIter) Next() fwdIter {
	it.i++
	return it
}

// fwdEnd is an unsized sentinel for fwdIter.
type fwdEnd struct {
	end int
}

func (s fwdEnd) Done(it fwdIter) bool { return it.i >= s.end }

func TestCategoryOf(t *testing.T) {
	data := []int{1, 2, 3}

	if got := CategoryOf(Begin(data)); got != CategoryRandomAccess {
		t.Errorf("CategoryOf(SliceIter) = %v, want random-access", got)
	}
	if got := CategoryOf(CountingIter{}); got != CategoryRandomAccess {
		t.Errorf("CategoryOf(CountingIter) = %v, want random-access", got)
	}
	if got := CategoryOf(fwdIter{s: data}); got != CategoryForward {
		t.Errorf("CategoryOf(fwdIter) = %v, want forward", got)
	}
}

func TestSizeKnown(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}

	n, ok := Size(Begin(data), End(data))
	if !ok || n != 5 {
		t.Errorf("Size(slice) = %d, %v; want 5, true", n, ok)
	}

	n, ok = Size(Begin(data).Advance(2), End(data))
	if !ok || n != 3 {
		t.Errorf("Size(slice+2) = %d, %v; want 3, true", n, ok)
	}

	if _, ok := Size(fwdIter{s: data}, fwdEnd{end: 5}); ok {
		t.Error("Size(fwdIter) reported a size for an unsized sentinel")
	}
}

func TestDistance(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7}

	if got := Distance(Begin(data), End(data)); got != 7 {
		t.Errorf("Distance(slice) = %d, want 7", got)
	}
	if got := Distance(fwdIter{s: data}, fwdEnd{end: 7}); got != 7 {
		t.Errorf("Distance(fwdIter) = %d, want 7", got)
	}
	if got := Distance(CountingIter{N: 10}, CountUntil{Limit: 110}); got != 100 {
		t.Errorf("Distance(counting) = %d, want 100", got)
	}
}

func TestAdvanceToSentinel(t *testing.T) {
	data := []int{1, 2, 3, 4}

	end := AdvanceToSentinel(Begin(data), End(data))
	if end.Index() != 4 {
		t.Errorf("AdvanceToSentinel(slice).Index() = %d, want 4", end.Index())
	}

	fend := AdvanceToSentinel(fwdIter{s: data}, fwdEnd{end: 4})
	if fend.i != 4 {
		t.Errorf("AdvanceToSentinel(fwdIter) stopped at %d, want 4", fend.i)
	}

	cend := AdvanceToSentinel(CountingIter{}, CountUntil{Limit: 100})
	if cend.Value() != 100 {
		t.Errorf("AdvanceToSentinel(counting).Value() = %d, want 100", cend.Value())
	}
}

func TestAdvance(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}

	if got := Advance(Begin(data), 4).Value(); got != 4 {
		t.Errorf("Advance(slice, 4).Value() = %d, want 4", got)
	}
	if got := Advance(fwdIter{s: data}, 3).Value(); got != 3 {
		t.Errorf("Advance(fwdIter, 3).Value() = %d, want 3", got)
	}
}

func TestSliceIterReadWrite(t *testing.T) {
	data := []int{1, 2, 3}

	it := Begin(data).Next()
	it.Set(20)
	if data[1] != 20 {
		t.Errorf("Set did not write through: data = %v", data)
	}
	if it.Prev().Value() != 1 {
		t.Errorf("Prev().Value() = %d, want 1", it.Prev().Value())
	}
	if Begin(data).Distance(it) != 1 {
		t.Errorf("Distance = %d, want 1", Begin(data).Distance(it))
	}

	r := OfSlice(data)
	if n, ok := Size(r.First, r.Last); !ok || n != 3 {
		t.Errorf("Size(OfSlice) = %d, %v; want 3, true", n, ok)
	}
}
