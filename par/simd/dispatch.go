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

import (
	"os"
	"runtime"
	"strconv"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Pack width is fixed at startup from the host's widest vector
// extension. PAR_WIDTH overrides it (in bytes) for testing; PAR_NO_SIMD
// forces the narrowest width.

var (
	currentWidth int
	currentName  string
)

func init() {
	currentWidth, currentName = detectWidth()

	if os.Getenv("PAR_NO_SIMD") != "" {
		currentWidth, currentName = 16, "forced-128bit"
	}
	if v := os.Getenv("PAR_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w >= 8 && w <= 64 && w&(w-1) == 0 {
			currentWidth, currentName = w, "env"
		}
	}
}

func detectWidth() (int, string) {
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasAVX512F {
			return 64, "avx512"
		}
		if cpu.X86.HasAVX2 {
			return 32, "avx2"
		}
		return 16, "sse2"
	case "arm64":
		// NEON is baseline on arm64.
		return 16, "neon"
	}
	return 16, "portable"
}

// Width returns the pack width in bytes.
func Width() int { return currentWidth }

// WidthName returns a human-readable name for the detected vector
// extension.
func WidthName() string { return currentName }

// MaxLanes returns the number of lanes of type T per pack.
func MaxLanes[T Lanes]() int {
	var dummy T
	n := currentWidth / int(unsafe.Sizeof(dummy))
	return max(n, 1)
}
