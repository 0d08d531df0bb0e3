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

func onDiagonal(t spaces.Tuple) bool { return t.At(0) == t.At(1) }

// DiagonalReference2D zeroes the elements (i, i) of the n×m array a.
func DiagonalReference2D(a []float64, n, m int) {
	checkLen(a, n*m)
	for i := 0; i < min(n, m); i++ {
		a[i+i*n] = 0
	}
}

// DiagonalWhere2D zeroes the diagonal by removing off-diagonal tuples from
// the sequence of dimension 0.
func DiagonalWhere2D(a []float64, n, m int) {
	checkLen(a, n*m)
	spaces.ForEach2(spaces.New(n, m).Pipe(spaces.Where(onDiagonal)), func(i, j int) {
		a[i+j*n] = 0
	})
}

// DiagonalFilter2D zeroes the diagonal by marking off-diagonal tuples absent.
func DiagonalFilter2D(a []float64, n, m int) {
	checkLen(a, n*m)
	spaces.ForEach2(spaces.New(n, m).Pipe(spaces.Filter(onDiagonal)), func(i, j int) {
		a[i+j*n] = 0
	})
}
