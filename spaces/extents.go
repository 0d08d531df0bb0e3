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
	"fmt"
	"iter"
	"math"
)

// Seq is the sequence a space produces for one dimension. Absent elements
// were filtered out by a view.
type Seq = iter.Seq[Optional[Tuple]]

// Space is an N-dimensional index space.
//
// Range returns the sequence for dimension dim given outer, the tuple
// already fixed for dimensions dim+1 through Rank-1. Every element extends
// outer with an index for dim. Range must return a fresh sequence on each
// call and every sequence must be finite.
type Space interface {
	Rank() int
	// Extent returns the number of indices the undecorated dimension has.
	Extent(dim int) int
	Range(dim int, outer Tuple) Seq
}

// Interval reports whether dimension dim of space is a plain half-open
// interval [lo, hi) with no view attached, which the driver runs as a
// counted loop. Only Extents, Box and binders over them qualify. Any other
// type, including one that embeds them, is iterated through its Range.
func Interval(space Space, dim int) (lo, hi int, ok bool) {
	checkDim(dim, space.Rank())
	return interval(space, dim)
}

// interval matches exact types so that methods promoted through embedding
// never stand in for an overridden Range.
func interval(space Space, dim int) (int, int, bool) {
	switch s := space.(type) {
	case Extents:
		return 0, s.data[dim], true
	case Box:
		return s.lo[dim], s.hi[dim], true
	case *Binder:
		if dim == s.dim {
			return 0, 0, false
		}
		return interval(s.underlying, dim)
	}
	return 0, 0, false
}

// Extents is the basic index space: dimension d ranges over [0, extent[d]).
// It is the cursor every binding chain starts from.
type Extents struct {
	data []int
}

var _ Space = Extents{}

// New returns the index space with the given extents, one per dimension.
// It panics if an extent is negative.
func New(extents ...int) Extents {
	for d, n := range extents {
		if n < 0 {
			violated(ErrNegativeExtent, "extent %d of dimension %d", n, d)
		}
	}
	return Extents{data: append([]int(nil), extents...)}
}

// NewRank is New for a space whose rank is fixed by the caller. It returns
// ErrRankMismatch if the number of extents differs from rank and
// ErrNegativeExtent if any extent is negative.
func NewRank(rank int, extents ...int) (Extents, error) {
	if len(extents) != rank {
		return Extents{}, fmt.Errorf("spaces: %w: %d extents for rank %d", ErrRankMismatch, len(extents), rank)
	}
	for d, n := range extents {
		if n < 0 {
			return Extents{}, fmt.Errorf("spaces: %w: extent %d of dimension %d", ErrNegativeExtent, n, d)
		}
	}
	return Extents{data: append([]int(nil), extents...)}, nil
}

// MustRank is like NewRank but panics on error.
func MustRank(rank int, extents ...int) Extents {
	e, err := NewRank(rank, extents...)
	if err != nil {
		panic(err)
	}
	return e
}

// Rank returns the number of dimensions.
func (e Extents) Rank() int { return len(e.data) }

// Extent returns the extent of dimension dim.
func (e Extents) Extent(dim int) int {
	checkDim(dim, len(e.data))
	return e.data[dim]
}

// Extents returns a copy of the extents.
func (e Extents) Extents() []int { return append([]int(nil), e.data...) }

// Size returns the number of coordinate tuples in the space, 1 for rank 0.
func (e Extents) Size() int { return product(e.data) }

// Range returns the sequence of (i, outer...) for i in [0, Extent(dim)).
func (e Extents) Range(dim int, outer Tuple) Seq {
	checkDim(dim, len(e.data))
	checkRank(outer.Rank(), len(e.data))
	return indexRange(outer.inner(dim), 0, e.data[dim])
}

// Pipe applies factories to e from left to right.
func (e Extents) Pipe(factories ...Factory) Space { return Pipe(e, factories...) }

// Box is an index space with explicit lower bounds: dimension d ranges over
// [lo[d], hi[d]).
type Box struct {
	lo, hi []int
}

var _ Space = Box{}

// NewBox returns the space of the half-open box [lo, hi). It panics if the
// slices differ in length or if 0 <= lo[d] <= hi[d] does not hold.
func NewBox(lo, hi []int) Box {
	checkRank(len(hi), len(lo))
	for d := range lo {
		if lo[d] < 0 || lo[d] > hi[d] {
			violated(ErrInvalidBounds, "dimension %d: [%d, %d)", d, lo[d], hi[d])
		}
	}
	return Box{lo: append([]int(nil), lo...), hi: append([]int(nil), hi...)}
}

// Rank returns the number of dimensions.
func (b Box) Rank() int { return len(b.lo) }

// Extent returns the number of indices of dimension dim.
func (b Box) Extent(dim int) int {
	checkDim(dim, len(b.lo))
	return b.hi[dim] - b.lo[dim]
}

// Lo returns the inclusive lower bound of dimension dim.
func (b Box) Lo(dim int) int {
	checkDim(dim, len(b.lo))
	return b.lo[dim]
}

// Hi returns the exclusive upper bound of dimension dim.
func (b Box) Hi(dim int) int {
	checkDim(dim, len(b.hi))
	return b.hi[dim]
}

// Size returns the number of coordinate tuples in the box.
func (b Box) Size() int {
	n := make([]int, len(b.lo))
	for d := range n {
		n[d] = b.hi[d] - b.lo[d]
	}
	return product(n)
}

// Range returns the sequence of (i, outer...) for i in [Lo(dim), Hi(dim)).
func (b Box) Range(dim int, outer Tuple) Seq {
	checkDim(dim, len(b.lo))
	checkRank(outer.Rank(), len(b.lo))
	return indexRange(outer.inner(dim), b.lo[dim], b.hi[dim])
}

// Pipe applies factories to b from left to right.
func (b Box) Pipe(factories ...Factory) Space { return Pipe(b, factories...) }

// indexRange yields t with its leading index set to each of [lo, hi).
func indexRange(t Tuple, lo, hi int) Seq {
	return func(yield func(Optional[Tuple]) bool) {
		for i := lo; i < hi; i++ {
			t.buf[t.dim] = i
			if !yield(Some(t)) {
				return
			}
		}
	}
}

func product(extents []int) int {
	for _, n := range extents {
		if n == 0 {
			return 0
		}
	}
	size := 1
	for _, n := range extents {
		if size > math.MaxInt/n {
			panic("spaces: space size overflows int")
		}
		size *= n
	}
	return size
}
