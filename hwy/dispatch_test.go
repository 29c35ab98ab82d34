// Copyright 2025 go-highway Authors
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

package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDispatchLevel(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}

	if name == "" || name == "unknown" {
		t.Errorf("CurrentName = %q, want a known target", name)
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with HWY_NO_SIMD=%q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	maxI8 := MaxLanes[int8]()
	maxI32 := MaxLanes[int32]()
	maxI64 := MaxLanes[int64]()
	maxU16 := MaxLanes[uint16]()

	t.Logf("MaxLanes: int8=%d, int32=%d, int64=%d, uint16=%d", maxI8, maxI32, maxI64, maxU16)

	if maxI64 <= 0 {
		t.Error("MaxLanes[int64] should be positive")
	}
	if maxI32 != 2*maxI64 {
		t.Errorf("MaxLanes[int32] = %d, want 2*MaxLanes[int64] = %d", maxI32, 2*maxI64)
	}
	if maxI8 != CurrentWidth() {
		t.Errorf("MaxLanes[int8] = %d, want CurrentWidth() = %d", maxI8, CurrentWidth())
	}
	if maxU16 != maxI32*2 {
		t.Errorf("MaxLanes[uint16] = %d, want %d", maxU16, maxI32*2)
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[int64]()
	sizes := []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2, 100}

	for _, size := range sizes {
		var visited []int
		fullBlocks := 0
		tails := 0

		ProcessWithTail[int64](size,
			func(offset int) {
				fullBlocks++
				for i := offset; i < offset+lanes; i++ {
					visited = append(visited, i)
				}
			},
			func(offset, count int) {
				tails++
				if count <= 0 || count >= lanes {
					t.Errorf("size=%d: tail count %d out of range (0, %d)", size, count, lanes)
				}
				for i := offset; i < offset+count; i++ {
					visited = append(visited, i)
				}
			},
		)

		if fullBlocks != size/lanes {
			t.Errorf("size=%d: %d full blocks, want %d", size, fullBlocks, size/lanes)
		}
		wantTails := 0
		if size%lanes != 0 {
			wantTails = 1
		}
		if tails != wantTails {
			t.Errorf("size=%d: %d tails, want %d", size, tails, wantTails)
		}

		want := make([]int, size)
		for i := range want {
			want[i] = i
		}
		if diff := cmp.Diff(want, visited, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("size=%d: visited indices mismatch (-want +got):\n%s", size, diff)
		}
	}
}
