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

package spaces

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRank(t *testing.T) {
	tests := []struct {
		name    string
		rank    int
		extents []int
		wantErr error
	}{
		{"ok", 3, []int{2, 3, 4}, nil},
		{"rank0", 0, nil, nil},
		{"zero_extent", 2, []int{0, 4}, nil},
		{"too_few", 3, []int{2, 3}, ErrRankMismatch},
		{"too_many", 1, []int{2, 3}, ErrRankMismatch},
		{"negative", 2, []int{2, -1}, ErrNegativeExtent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewRank(tt.rank, tt.extents...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewRank error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if e.Rank() != tt.rank {
				t.Errorf("Rank() = %d, want %d", e.Rank(), tt.rank)
			}
		})
	}
}

func TestMustRankPanics(t *testing.T) {
	expectPanic(t, ErrRankMismatch, func() { MustRank(2, 1, 2, 3) })
}

func TestNewNegativeExtent(t *testing.T) {
	expectPanic(t, ErrNegativeExtent, func() { New(3, -2) })
}

func TestExtentsAccessors(t *testing.T) {
	in := []int{4, 5, 6}
	e := New(in...)
	in[0] = 100 // New copies its input
	if e.Extent(0) != 4 {
		t.Errorf("Extent(0) = %d after changing the input slice, want 4", e.Extent(0))
	}
	out := e.Extents()
	out[1] = 100
	if diff := cmp.Diff([]int{4, 5, 6}, e.Extents()); diff != "" {
		t.Errorf("Extents() leaked internal state (-want +got):\n%s", diff)
	}
	if e.Size() != 120 {
		t.Errorf("Size() = %d, want 120", e.Size())
	}
	if New().Size() != 1 {
		t.Errorf("rank 0 Size() = %d, want 1", New().Size())
	}
	expectPanic(t, ErrDimensionOutOfRange, func() { e.Extent(3) })
}

func TestSizeOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Size did not panic on overflow")
		}
	}()
	New(math.MaxInt/2, 3).Size()
}

func TestSizeZeroBeatsOverflow(t *testing.T) {
	if got := New(math.MaxInt, 2, 0).Size(); got != 0 {
		t.Errorf("Size() = %d, want 0", got)
	}
}

func TestRangeIsRestartable(t *testing.T) {
	e := New(3, 2)
	outer := outermost(2)
	seq := e.Range(1, outer)
	for pass := range 2 {
		var got []int
		for el := range seq {
			got = append(got, el.Value().Index())
		}
		if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
			t.Errorf("pass %d mismatch (-want +got):\n%s", pass, diff)
		}
	}
}

func TestRangeCarriesOuterTuple(t *testing.T) {
	e := New(3, 2, 4)
	outer := outermost(3)
	outer.buf[2] = 3
	var got [][]int
	for el := range e.Range(1, outer.inner(2)) {
		got = append(got, append([]int(nil), el.Value().Coords()...))
	}
	if diff := cmp.Diff([][]int{{0, 3}, {1, 3}}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRangePreconditions(t *testing.T) {
	e := New(2, 2)
	expectPanic(t, ErrDimensionOutOfRange, func() { e.Range(2, outermost(2)) })
	expectPanic(t, ErrRankMismatch, func() { e.Range(1, outermost(3).inner(2)) })
	// The outer tuple must belong to the next dimension out.
	expectPanic(t, ErrRankMismatch, func() { e.Range(0, outermost(2)) })
}

func TestNewBox(t *testing.T) {
	b := NewBox([]int{1, 0, 3}, []int{4, 2, 3})
	if b.Rank() != 3 {
		t.Errorf("Rank() = %d, want 3", b.Rank())
	}
	if b.Extent(0) != 3 || b.Lo(0) != 1 || b.Hi(0) != 4 {
		t.Errorf("dimension 0 = [%d, %d) extent %d, want [1, 4) extent 3", b.Lo(0), b.Hi(0), b.Extent(0))
	}
	if b.Size() != 0 {
		t.Errorf("Size() = %d, want 0", b.Size())
	}

	expectPanic(t, ErrRankMismatch, func() { NewBox([]int{0}, []int{1, 2}) })
	expectPanic(t, ErrInvalidBounds, func() { NewBox([]int{3}, []int{2}) })
	expectPanic(t, ErrInvalidBounds, func() { NewBox([]int{-1}, []int{2}) })
}

func TestTuple(t *testing.T) {
	tup := NewTuple(4, 5, 6)
	if tup.Dim() != 0 || tup.Rank() != 3 || tup.Len() != 3 {
		t.Errorf("NewTuple shape = dim %d rank %d len %d, want 0 3 3", tup.Dim(), tup.Rank(), tup.Len())
	}
	if got := tup.String(); got != "(4, 5, 6)" {
		t.Errorf("String() = %q, want \"(4, 5, 6)\"", got)
	}

	outer := Tuple{buf: tup.buf, dim: 1}
	if outer.Index() != 5 || outer.At(1) != 6 || outer.Len() != 2 {
		t.Errorf("dimension 1 view = %v, want (5, 6)", outer)
	}
	c := outer.Clone()
	outer.SetIndex(9)
	if c.Index() != 5 {
		t.Errorf("Clone shares storage with the original")
	}
	if tup.At(1) != 9 {
		t.Errorf("SetIndex did not write through to the shared buffer")
	}
	if c.Equal(outer) || !c.Equal(Tuple{buf: []int{0, 5, 6}, dim: 1}) {
		t.Errorf("Equal compares coordinates outside the tuple")
	}
}
