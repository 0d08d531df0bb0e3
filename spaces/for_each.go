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

import "iter"

// ForEach calls f with the coordinates of every tuple of space that
// survives its views. Dimension Rank-1 is the outermost loop and dimension
// 0 the innermost, so the first coordinate varies fastest. A rank 0 space
// calls f once with no coordinates; a space with a zero extent never calls
// it.
//
// coords aliases the traversal buffer: it is overwritten after f returns.
func ForEach(space Space, f func(coords []int)) {
	walkAll(space, func(t Tuple) bool {
		f(t.buf)
		return true
	})
}

// ForEach1 is ForEach for rank 1 spaces. It panics before iterating if
// space is not rank 1.
func ForEach1(space Space, f func(i int)) {
	checkRank(space.Rank(), 1)
	walkAll(space, func(t Tuple) bool {
		f(t.buf[0])
		return true
	})
}

// ForEach2 is ForEach for rank 2 spaces. It panics before iterating if
// space is not rank 2.
func ForEach2(space Space, f func(i, j int)) {
	checkRank(space.Rank(), 2)
	walkAll(space, func(t Tuple) bool {
		f(t.buf[0], t.buf[1])
		return true
	})
}

// ForEach3 is ForEach for rank 3 spaces. It panics before iterating if
// space is not rank 3.
func ForEach3(space Space, f func(i, j, k int)) {
	checkRank(space.Rank(), 3)
	walkAll(space, func(t Tuple) bool {
		f(t.buf[0], t.buf[1], t.buf[2])
		return true
	})
}

// All returns the traversal of ForEach as a sequence of complete tuples,
// which allows stopping early:
//
//	for t := range spaces.All(space) {
//	    if t.At(0) == want {
//	        break
//	    }
//	}
//
// The yielded tuples alias the traversal buffer; Clone them to keep them.
func All(space Space) iter.Seq[Tuple] {
	return func(yield func(Tuple) bool) {
		walkAll(space, yield)
	}
}

// Count returns the number of tuples ForEach would visit.
func Count(space Space) int {
	n := 0
	walkAll(space, func(Tuple) bool {
		n++
		return true
	})
	return n
}

// walker holds the state of one traversal. The coordinate buffer lives in
// the tuples it passes down.
type walker struct {
	space Space
	rank  int
	lower bool // run undecorated dimensions as counted loops
	yield func(Tuple) bool
}

func walkAll(space Space, yield func(Tuple) bool) {
	w := walker{space: space, rank: space.Rank(), lower: lowering, yield: yield}
	outer := outermost(w.rank)
	if w.rank == 0 {
		yield(outer)
		return
	}
	w.walk(w.rank-1, outer)
}

// walk runs dimension dim below outer. It returns false once yield asked to
// stop.
func (w *walker) walk(dim int, outer Tuple) bool {
	if w.lower {
		if lo, hi, ok := interval(w.space, dim); ok {
			return w.counted(dim, outer, lo, hi)
		}
	}
	for e := range w.space.Range(dim, outer) {
		t, ok := e.Get()
		if !ok {
			continue
		}
		if dim == 0 {
			if !w.yield(t) {
				return false
			}
			continue
		}
		if !w.walk(dim-1, t) {
			return false
		}
	}
	return true
}

// counted is walk for an undecorated dimension: a plain loop over [lo, hi).
func (w *walker) counted(dim int, outer Tuple, lo, hi int) bool {
	checkRank(outer.Rank(), w.rank)
	t := outer.inner(dim)
	buf := t.buf
	if dim == 0 {
		for i := lo; i < hi; i++ {
			buf[0] = i
			if !w.yield(t) {
				return false
			}
		}
		return true
	}
	for i := lo; i < hi; i++ {
		buf[dim] = i
		if !w.walk(dim-1, t) {
			return false
		}
	}
	return true
}
