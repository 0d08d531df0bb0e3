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

// Binder decorates one dimension of an underlying space with a View.
// Requests for any other dimension pass through unchanged, so binders on
// different dimensions compose by nesting, and two binders on the same
// dimension apply the outer view to the inner view's output.
type Binder struct {
	underlying Space
	dim        int
	view       View
}

var _ Space = (*Binder)(nil)

// Bind returns space with view attached to dimension dim. It panics if dim
// is not in [0, space.Rank()) or if view is nil.
func Bind(space Space, dim int, view View) *Binder {
	checkDim(dim, space.Rank())
	if view == nil {
		panic("spaces: Bind with nil view")
	}
	return &Binder{underlying: space, dim: dim, view: view}
}

// OnExtentOf binds view to dimension dim of space. It is the same as Bind.
func OnExtentOf(space Space, dim int, view View) *Binder {
	return Bind(space, dim, view)
}

// Rank returns the rank of the underlying space.
func (b *Binder) Rank() int { return b.underlying.Rank() }

// Extent returns the undecorated extent of dimension dim.
func (b *Binder) Extent(dim int) int { return b.underlying.Extent(dim) }

// Dim returns the bound dimension.
func (b *Binder) Dim() int { return b.dim }

// Underlying returns the space b decorates.
func (b *Binder) Underlying() Space { return b.underlying }

// Range returns the view applied to the underlying sequence when dim is the
// bound dimension, and the underlying sequence otherwise.
func (b *Binder) Range(dim int, outer Tuple) Seq {
	if dim == b.dim {
		return b.view(b.underlying.Range(dim, outer))
	}
	return b.underlying.Range(dim, outer)
}

// Pipe applies factories to b from left to right.
func (b *Binder) Pipe(factories ...Factory) Space { return Pipe(b, factories...) }

// Factory turns a space into a decorated one. Views are factories for
// dimension 0; OnExtent makes one for any dimension.
type Factory interface {
	Apply(space Space) Space
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(Space) Space

// Apply calls f(space).
func (f FactoryFunc) Apply(space Space) Space { return f(space) }

type extentFactory struct {
	dim  int
	view View
}

func (f extentFactory) Apply(space Space) Space { return Bind(space, f.dim, f.view) }

// OnExtent returns a Factory that binds view to dimension dim of whatever
// space it is applied to. Piping it into a space is equivalent to
// Bind(space, dim, view); the dimension is checked against the rank when
// the factory is applied.
func OnExtent(dim int, view View) Factory {
	if dim < 0 {
		violated(ErrDimensionOutOfRange, "dimension %d", dim)
	}
	if view == nil {
		panic("spaces: OnExtent with nil view")
	}
	return extentFactory{dim: dim, view: view}
}

// Pipe applies factories to space from left to right, so the last factory
// produces the outermost binder.
func Pipe(space Space, factories ...Factory) Space {
	for _, f := range factories {
		space = f.Apply(space)
	}
	return space
}
