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

import "github.com/ajroetker/go-spaces/spaces"

// PlaneReference3D zeroes the elements (i, i, k) of the n×m×o array a.
func PlaneReference3D(a []float64, n, m, o int) {
	checkLen(a, n*m*o)
	for k := 0; k < o; k++ {
		for i := 0; i < min(n, m); i++ {
			a[i+i*n+k*n*m] = 0
		}
	}
}

// PlaneWhere3D zeroes the i == j plane with Where over full tuples.
func PlaneWhere3D(a []float64, n, m, o int) {
	checkLen(a, n*m*o)
	space := spaces.New(n, m, o).Pipe(spaces.Where(onDiagonal))
	spaces.ForEach3(space, func(i, j, k int) {
		a[i+j*n+k*n*m] = 0
	})
}

// PlaneFilter3D zeroes the i == j plane with Filter over full tuples.
func PlaneFilter3D(a []float64, n, m, o int) {
	checkLen(a, n*m*o)
	space := spaces.New(n, m, o).Pipe(spaces.Filter(onDiagonal))
	spaces.ForEach3(space, func(i, j, k int) {
		a[i+j*n+k*n*m] = 0
	})
}

// PlaneJKReference3D zeroes the elements (i, j, j) of the n×m×o array a.
func PlaneJKReference3D(a []float64, n, m, o int) {
	checkLen(a, n*m*o)
	for j := 0; j < min(m, o); j++ {
		for i := 0; i < n; i++ {
			a[i+j*n+j*n*m] = 0
		}
	}
}

// PlaneOnExtent3D zeroes the j == k plane by filtering dimension 1, whose
// tuples are (j, k). Rejected (j, k) pairs skip the whole inner loop.
func PlaneOnExtent3D(a []float64, n, m, o int) {
	checkLen(a, n*m*o)
	space := spaces.New(n, m, o).Pipe(spaces.OnExtent(1, spaces.Filter(onDiagonal)))
	spaces.ForEach3(space, func(i, j, k int) {
		a[i+j*n+k*n*m] = 0
	})
}
