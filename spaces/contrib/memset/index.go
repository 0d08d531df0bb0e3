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

package memset

import "iter"

// Index2D is a forward cursor over the pairs (i, j) of an n×m space with i
// varying fastest. It advances like an odometer: Next steps i and carries
// into j when i wraps.
type Index2D struct {
	i, j int
	n, m int
}

// NewIndex2D returns a cursor positioned at (0, 0), or already done if the
// space is empty.
func NewIndex2D(n, m int) Index2D {
	it := Index2D{n: n, m: m}
	if n == 0 {
		it.j = m
	}
	return it
}

// Done reports whether the cursor has moved past the last pair.
func (it *Index2D) Done() bool { return it.j >= it.m }

// Next moves to the following pair.
func (it *Index2D) Next() {
	it.i++
	if it.i == it.n {
		it.j++
		it.i = 0
	}
}

// At returns the current pair.
func (it *Index2D) At() (i, j int) { return it.i, it.j }

// Ordinal returns the number of pairs before the current one.
func (it *Index2D) Ordinal() int { return it.j*it.n + it.i }

// Distance returns the number of pairs left, the current one included.
func (it *Index2D) Distance() int {
	if it.Done() {
		return 0
	}
	return it.n*it.m - it.Ordinal()
}

// Advance returns the cursor d pairs ahead of it.
func (it *Index2D) Advance(d int) Index2D {
	next := *it
	if d == 0 || it.n == 0 {
		return next
	}
	k := it.Ordinal() + d
	next.i, next.j = k%it.n, k/it.n
	return next
}

// Index returns the pair d positions ahead of the current one.
func (it *Index2D) Index(d int) (i, j int) {
	next := it.Advance(d)
	return next.i, next.j
}

// Storage2D walks the linear storage locations of an n×m layout-left array
// and decomposes each one back into (i, j).
type Storage2D struct {
	loc, size, n int
}

// NewStorage2D returns a cursor at location 0.
func NewStorage2D(n, m int) Storage2D {
	return Storage2D{size: n * m, n: n}
}

// Done reports whether every location has been visited.
func (s *Storage2D) Done() bool { return s.loc >= s.size }

// Next moves to the following location.
func (s *Storage2D) Next() { s.loc++ }

// At returns the coordinates of the current location.
func (s *Storage2D) At() (i, j int) { return s.loc % s.n, s.loc / s.n }

// Indices2D generates the pairs of an n×m space, i fastest.
func Indices2D(n, m int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for j := 0; j < m; j++ {
			for i := 0; i < n; i++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
