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
	"errors"
	"slices"
	"testing"

	"github.com/ajroetker/go-parallel/par"
)

func TestFill(t *testing.T) {
	for _, pol := range blockingPolicies() {
		data := make([]int, 1009)
		if err := Fill(pol, data, 42); err != nil {
			t.Fatalf("Fill(%v): %v", pol.Kind(), err)
		}
		for i, v := range data {
			if v != 42 {
				t.Fatalf("Fill(%v): element %d = %d", pol.Kind(), i, v)
			}
		}
	}
}

func TestUninitializedFillNSetsExactlyK(t *testing.T) {
	const n = 10007
	for _, k := range []int{1, 2, 7, 64, 1000, 10006, 10007} {
		c := make([]int, n)
		if err := UninitializedFillN(par.Par, c, k, 10); err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		for i := range k {
			if c[i] != 10 {
				t.Fatalf("k=%d: cell %d = %d, want 10", k, i, c[i])
			}
		}
		for i := k; i < n; i++ {
			if c[i] != 0 {
				t.Fatalf("k=%d: cell %d = %d past the fill", k, i, c[i])
			}
		}
	}
}

func TestFillNBounds(t *testing.T) {
	data := make([]int, 10)
	var serr *par.ShapeError

	if err := FillN(par.Par, data, 11, 1); !errors.As(err, &serr) {
		t.Errorf("count past end: got %v", err)
	}
	if err := FillN(par.Par, data, -1, 1); !errors.As(err, &serr) {
		t.Errorf("negative count: got %v", err)
	}
	if err := FillN(par.Par, data, 0, 1); err != nil {
		t.Errorf("zero count: %v", err)
	}
}

func TestFillNAsync(t *testing.T) {
	data := make([]int, 5000)
	f := FillNAsync(par.Par.Task(), data, 3000, 7)
	n, err := f.Wait()
	if err != nil || n != 3000 {
		t.Fatalf("FillNAsync = %d, %v", n, err)
	}
	if data[2999] != 7 || data[3000] != 0 {
		t.Errorf("fill boundary wrong: %d, %d", data[2999], data[3000])
	}
}

func TestFillRange(t *testing.T) {
	for _, pol := range []par.Policy{par.Seq, par.Par} {
		data := make([]int, 513)
		end, err := FillRange(pol, par.Begin(data), par.End(data), 9)
		if err != nil {
			t.Fatalf("FillRange(%v): %v", pol.Kind(), err)
		}
		if end.Index() != len(data) {
			t.Errorf("end at %d", end.Index())
		}
		for i, v := range data {
			if v != 9 {
				t.Fatalf("element %d = %d", i, v)
			}
		}
	}
}

func TestCopy(t *testing.T) {
	src := iotaSlice(4097, 3)
	for _, pol := range blockingPolicies() {
		dst := make([]int, len(src))
		n, err := Copy(pol, src, dst)
		if err != nil {
			t.Fatalf("Copy(%v): %v", pol.Kind(), err)
		}
		if n != len(src) {
			t.Fatalf("Copy(%v) = %d", pol.Kind(), n)
		}
		requireEqualInts(t, dst, src, pol.Kind().String())
	}

	var serr *par.ShapeError
	if _, err := Copy(par.Par, src, make([]int, 10)); !errors.As(err, &serr) {
		t.Errorf("short destination: got %v", err)
	}
}

func TestCopyN(t *testing.T) {
	src := iotaSlice(100, 0)
	dst := make([]int, 100)
	n, err := CopyN(par.Par, src, dst, 40)
	if err != nil || n != 40 {
		t.Fatalf("CopyN = %d, %v", n, err)
	}
	requireEqualInts(t, dst[:40], src[:40], "copied prefix")
	if dst[40] != 0 {
		t.Errorf("CopyN wrote past the count")
	}
}

func TestRotateMatchesReference(t *testing.T) {
	const n = 1009
	base := iotaSlice(n, 0)

	for _, middle := range []int{0, 1, 7, 500, n - 1, n} {
		want := slices.Clone(base)
		slices.Reverse(want[:middle])
		slices.Reverse(want[middle:])
		slices.Reverse(want)

		for _, pol := range blockingPolicies() {
			work := slices.Clone(base)
			got, err := Rotate(pol, work, middle)
			if err != nil {
				t.Fatalf("Rotate(%v, %d): %v", pol.Kind(), middle, err)
			}
			if got != n-middle {
				t.Errorf("Rotate(%v, %d) = %d, want %d", pol.Kind(), middle, got, n-middle)
			}
			requireEqualInts(t, work, want, pol.Kind().String())
		}
	}
}

func TestRotateBounds(t *testing.T) {
	var serr *par.ShapeError
	if _, err := Rotate(par.Par, []int{1, 2, 3}, 4); !errors.As(err, &serr) {
		t.Errorf("middle past end: got %v", err)
	}
	if _, err := Rotate(par.Par, []int{1, 2, 3}, -1); !errors.As(err, &serr) {
		t.Errorf("negative middle: got %v", err)
	}
}

func TestRotateAsync(t *testing.T) {
	data := iotaSlice(1000, 0)
	f := RotateAsync(par.Par.Task(), data, 300)
	got, err := f.Wait()
	if err != nil || got != 700 {
		t.Fatalf("RotateAsync = %d, %v", got, err)
	}
	if data[0] != 300 || data[700] != 0 {
		t.Errorf("rotation wrong: data[0]=%d data[700]=%d", data[0], data[700])
	}
}
