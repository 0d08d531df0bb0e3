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
	"strconv"
	"strings"
)

// Tuple is the coordinate tuple produced for one dimension of a space: the
// coordinates of dimensions Dim through Rank-1, the current index first.
// At dimension 0 it is the complete coordinate list in declaration order.
//
// Tuples handed out during a traversal alias the traversal's coordinate
// buffer and are only valid until the function receiving them returns. Use
// Clone to keep one.
type Tuple struct {
	buf []int // one slot per dimension; only buf[dim:] is meaningful
	dim int
}

// NewTuple returns a complete (dimension 0) tuple holding a copy of coords.
func NewTuple(coords ...int) Tuple {
	return Tuple{buf: append([]int(nil), coords...)}
}

// outermost returns the empty tuple a traversal of the given rank starts from.
func outermost(rank int) Tuple {
	return Tuple{buf: make([]int, rank), dim: rank}
}

// Dim returns the dimension whose index comes first in t.
func (t Tuple) Dim() int { return t.dim }

// Rank returns the rank of the space t was produced for.
func (t Tuple) Rank() int { return len(t.buf) }

// Len returns the number of coordinates in t, Rank() - Dim().
func (t Tuple) Len() int { return len(t.buf) - t.dim }

// At returns the k-th coordinate of t, that is the index of dimension
// Dim()+k.
func (t Tuple) At(k int) int { return t.buf[t.dim+k] }

// Index returns the index of dimension Dim(), the same as At(0).
func (t Tuple) Index() int { return t.buf[t.dim] }

// Coords returns the coordinates of t. The slice aliases t.
func (t Tuple) Coords() []int { return t.buf[t.dim:] }

// SetIndex overwrites the index of dimension Dim(). Since t aliases the
// traversal buffer, inner dimensions and the callback see the new value.
func (t Tuple) SetIndex(i int) { t.buf[t.dim] = i }

// Clone returns a copy of t that no longer aliases the traversal buffer.
func (t Tuple) Clone() Tuple {
	return Tuple{buf: append([]int(nil), t.buf...), dim: t.dim}
}

// Equal reports whether t and u hold the same coordinates for the same
// dimensions.
func (t Tuple) Equal(u Tuple) bool {
	if t.dim != u.dim || len(t.buf) != len(u.buf) {
		return false
	}
	for k := t.dim; k < len(t.buf); k++ {
		if t.buf[k] != u.buf[k] {
			return false
		}
	}
	return true
}

// String formats t as "(i, j, k)".
func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for k, c := range t.Coords() {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(')')
	return sb.String()
}

// inner returns the tuple of dimension dim sharing t's buffer. t must be the
// tuple of dimension dim+1.
func (t Tuple) inner(dim int) Tuple {
	if t.dim != dim+1 {
		violated(ErrRankMismatch, "outer tuple of dimension %d cannot hold dimension %d", t.dim, dim)
	}
	return Tuple{buf: t.buf, dim: dim}
}
