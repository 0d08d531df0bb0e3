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

import "github.com/bits-and-blooms/bitset"

// View adapts the sequence of one dimension. Views are lazy: nothing runs
// until the driver ranges over the returned sequence.
//
// A View is also a Factory that binds to dimension 0, where the tuple holds
// every coordinate of the space.
//
// Every element of a sequence aliases the same traversal buffer, and the
// next element overwrites it. A view that holds elements back, for example
// to reorder or collect them, must keep Tuple.Clone copies.
type View func(Seq) Seq

// Apply binds v to dimension 0 of space.
func (v View) Apply(space Space) Space { return Bind(space, 0, v) }

// Filter returns a View that marks elements for which pred is false as
// absent. Absent elements stay in the sequence but the driver skips their
// inner dimensions and the callback. pred is never called on elements that
// are already absent.
func Filter(pred func(Tuple) bool) View {
	return func(seq Seq) Seq {
		return func(yield func(Optional[Tuple]) bool) {
			for e := range seq {
				if t, ok := e.Get(); ok && !pred(t) {
					e = None[Tuple]()
				}
				if !yield(e) {
					return
				}
			}
		}
	}
}

// FilterIndex is Filter on the index of the bound dimension alone.
func FilterIndex(pred func(i int) bool) View {
	return Filter(func(t Tuple) bool { return pred(t.Index()) })
}

// FilterSet keeps the indices of the bound dimension that are members of
// set. Negative indices are never members.
func FilterSet(set *bitset.BitSet) View {
	return FilterIndex(func(i int) bool {
		return i >= 0 && set.Test(uint(i))
	})
}

// Where returns a View that drops elements for which pred is false, so they
// never appear in the sequence at all. Absent elements are dropped too.
func Where(pred func(Tuple) bool) View {
	return func(seq Seq) Seq {
		return func(yield func(Optional[Tuple]) bool) {
			for e := range seq {
				t, ok := e.Get()
				if !ok || !pred(t) {
					continue
				}
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Transform returns a View that replaces each present element by f's
// result. An absent result filters the element. The returned tuple must
// belong to the same dimension and rank as its input; returning the input,
// possibly after SetIndex, is the common case.
func Transform(f func(Tuple) Optional[Tuple]) View {
	return func(seq Seq) Seq {
		return func(yield func(Optional[Tuple]) bool) {
			for e := range seq {
				if !yield(InvokeFlat(f, e)) {
					return
				}
			}
		}
	}
}

// MapIndex returns a View that replaces the index of the bound dimension by
// f(index). Every present element stays present.
func MapIndex(f func(i int) int) View {
	return Transform(func(t Tuple) Optional[Tuple] {
		t.SetIndex(f(t.Index()))
		return Some(t)
	})
}

// Visit returns a View that calls f on each present element and passes
// nothing on: inner dimensions and the callback never run below the bound
// dimension.
func Visit(f func(Tuple)) View {
	return func(seq Seq) Seq {
		return func(yield func(Optional[Tuple]) bool) {
			for e := range seq {
				InvokeVoid(f, e)
				if !yield(None[Tuple]()) {
					return
				}
			}
		}
	}
}

// Chain composes views left to right: the first view sees the dimension's
// raw sequence.
func Chain(views ...View) View {
	return func(seq Seq) Seq {
		for _, v := range views {
			seq = v(seq)
		}
		return seq
	}
}
