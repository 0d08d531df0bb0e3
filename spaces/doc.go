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

// Package spaces describes multidimensional index spaces as composable values
// and lowers them into nested loops.
//
// An index space is an ordered list of extents, one per dimension. Extents is
// the basic space (the "cursor"); Box is the variant with explicit lower
// bounds. Any dimension can be decorated with a View through Bind or the
// point-free OnExtent factory, and ForEach walks the result from the last
// dimension (outermost) down to the first (innermost), calling the user
// function with every coordinate tuple that survives the views.
//
// # Traversal
//
//	// Visits (0,0), (1,0), (0,1), (1,1), (0,2), (1,2).
//	spaces.ForEach2(spaces.New(2, 3), func(i, j int) {
//	    a[i+j*2] = 0
//	})
//
// The first dimension varies fastest, matching a layout-left (column-major)
// array where it is also the contiguous one. Undecorated dimensions are
// lowered to plain counted loops, so the innermost loop stays a candidate for
// the compiler's bounds-check elimination and for hand vectorization with hwy.
//
// # Views
//
// For dimension I the driver requests a sequence of Optional[Tuple]. Each
// tuple holds the coordinates of dimensions I through Rank-1, the current
// index first. A View rewrites that sequence:
//
//   - Filter marks rejected elements absent; absent elements skip every
//     inner dimension and the callback.
//   - Where removes rejected elements from the sequence.
//   - Transform and MapIndex rewrite elements.
//   - Visit consumes elements and passes nothing through.
//
// A View piped into a space binds to dimension 0, where the tuple is the full
// coordinate list:
//
//	diag := spaces.New(n, n).Pipe(spaces.Filter(func(t spaces.Tuple) bool {
//	    return t.At(0) == t.At(1)
//	}))
//
// OnExtent targets any other dimension:
//
//	plane := spaces.New(n, m, o).Pipe(spaces.OnExtent(1, spaces.Filter(
//	    func(t spaces.Tuple) bool { return t.At(0) == t.At(1) }, // j == k
//	)))
//
// # Preconditions
//
// Rank mismatches, negative extents, inverted bounds and out-of-range binding
// dimensions panic with an error wrapping one of the package's sentinel
// errors, before any iteration begins. Filtering is never an error.
//
// # Environment
//
// Setting SPACES_NO_LOWERING=1 disables the counted-loop lowering so every
// dimension goes through its sequence. Results are identical; only the speed
// changes.
package spaces
