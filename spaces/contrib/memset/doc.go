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

// Package memset zeroes layout-left float64 arrays with every iteration
// strategy the spaces package competes with.
//
// All kernels take the backing slice followed by the extents, first (and
// contiguous) dimension first, so element (i, j) of an n×m array lives at
// a[i+j*n] and element (i, j, k) of an n×m×o array at a[i+j*n+k*n*m].
// Kernels in one family have the same observable result and differ only in
// how they enumerate indices:
//
//   - Full 2D: Reference2D, IndexRange2D, IndexRangeRandomAccess2D,
//     IndexRangeKnownDistance2D, StorageRange2D, Generator2D, ForEach2D,
//     Vectorized2D, Fill2D, Parallel2D; ImageRows2D for padded images.
//   - Diagonal 2D (i == j): DiagonalReference2D, DiagonalWhere2D,
//     DiagonalFilter2D.
//   - Plane 3D (i == j): PlaneReference3D, PlaneWhere3D, PlaneFilter3D.
//   - Plane 3D (j == k): PlaneJKReference3D, PlaneOnExtent3D.
//
// Every kernel panics if the slice is shorter than the product of the
// extents.
package memset
