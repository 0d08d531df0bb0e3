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

// Span is a layout-left view of a slice as an array with the shape of an
// Extents: the first dimension is contiguous and the last has the largest
// stride, so ForEach visits a Span's elements in memory order.
type Span[T any] struct {
	data    []T
	extents Extents
	strides []int
}

// NewSpan returns a Span over data with shape e. It panics if data holds
// fewer than e.Size() elements.
func NewSpan[T any](data []T, e Extents) Span[T] {
	size := e.Size()
	if len(data) < size {
		panic("spaces: span data too short")
	}
	strides := make([]int, e.Rank())
	stride := 1
	for d := range strides {
		strides[d] = stride
		stride *= e.data[d]
	}
	return Span[T]{data: data[:size], extents: e, strides: strides}
}

// Extents returns the shape of s.
func (s Span[T]) Extents() Extents { return s.extents }

// Extent returns the extent of dimension dim.
func (s Span[T]) Extent(dim int) int { return s.extents.Extent(dim) }

// Stride returns the distance in elements between consecutive indices of
// dimension dim.
func (s Span[T]) Stride(dim int) int {
	checkDim(dim, len(s.strides))
	return s.strides[dim]
}

// Data returns the elements of s in memory order.
func (s Span[T]) Data() []T { return s.data }

// Offset returns the position of coords in Data. Coordinates are not
// bounds checked individually; an offset past the end panics on access.
func (s Span[T]) Offset(coords ...int) int {
	checkRank(len(coords), len(s.strides))
	off := 0
	for d, c := range coords {
		off += c * s.strides[d]
	}
	return off
}

// At returns the element at coords.
func (s Span[T]) At(coords ...int) T { return s.data[s.Offset(coords...)] }

// Set stores v at coords.
func (s Span[T]) Set(v T, coords ...int) { s.data[s.Offset(coords...)] = v }

// Line returns the contiguous run of dimension 0 at the given outer
// coordinates, which hold one index for each of dimensions 1 through
// Rank-1.
func (s Span[T]) Line(outer ...int) []T {
	checkRank(len(outer)+1, len(s.strides))
	off := 0
	for d, c := range outer {
		off += c * s.strides[d+1]
	}
	n := s.extents.data[0]
	return s.data[off : off+n]
}
