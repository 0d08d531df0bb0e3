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

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
	"github.com/ajroetker/go-highway/hwy/contrib/image"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/ajroetker/go-spaces/spaces"
	"github.com/ajroetker/go-spaces/spaces/contrib/parallel"
)

func checkLen(a []float64, size int) {
	if len(a) < size {
		panic("memset: A slice too short")
	}
}

// Reference2D zeroes the n×m array a with two raw loops.
func Reference2D(a []float64, n, m int) {
	checkLen(a, n*m)
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			a[i+j*n] = 0
		}
	}
}

// IndexRange2D zeroes a by stepping an Index2D cursor until it is done.
func IndexRange2D(a []float64, n, m int) {
	checkLen(a, n*m)
	for it := NewIndex2D(n, m); !it.Done(); it.Next() {
		i, j := it.At()
		a[i+j*n] = 0
	}
}

// IndexRangeRandomAccess2D zeroes a by indexing an Index2D cursor at every
// distance from its start.
func IndexRangeRandomAccess2D(a []float64, n, m int) {
	checkLen(a, n*m)
	it := NewIndex2D(n, m)
	dist := it.Distance()
	for d := 0; d < dist; d++ {
		i, j := it.Index(d)
		a[i+j*n] = 0
	}
}

// IndexRangeKnownDistance2D zeroes a by stepping an Index2D cursor a known
// number of times instead of testing for the end.
func IndexRangeKnownDistance2D(a []float64, n, m int) {
	checkLen(a, n*m)
	it := NewIndex2D(n, m)
	for d, dist := 0, n*m; d < dist; d++ {
		i, j := it.At()
		a[i+j*n] = 0
		it.Next()
	}
}

// StorageRange2D zeroes a by walking its storage locations and recovering
// the coordinates of each.
func StorageRange2D(a []float64, n, m int) {
	checkLen(a, n*m)
	for s := NewStorage2D(n, m); !s.Done(); s.Next() {
		i, j := s.At()
		a[i+j*n] = 0
	}
}

// Generator2D zeroes a by ranging over Indices2D.
func Generator2D(a []float64, n, m int) {
	checkLen(a, n*m)
	for i, j := range Indices2D(n, m) {
		a[i+j*n] = 0
	}
}

// ForEach2D zeroes a with spaces.ForEach2 over the n×m extents.
func ForEach2D(a []float64, n, m int) {
	checkLen(a, n*m)
	spaces.ForEach2(spaces.New(n, m), func(i, j int) {
		a[i+j*n] = 0
	})
}

// Vectorized2D zeroes a one contiguous column of dimension 0 at a time with
// full-width vector stores and a masked store for the tail.
func Vectorized2D(a []float64, n, m int) {
	checkLen(a, n*m)
	span := spaces.NewSpan(a, spaces.New(n, m))
	spaces.ForEach1(spaces.New(m), func(j int) {
		zeroLine(span.Line(j))
	})
}

// Fill2D zeroes a as the single contiguous block it occupies.
func Fill2D(a []float64, n, m int) {
	checkLen(a, n*m)
	algo.Fill(a[:n*m], 0)
}

// ImageRows2D zeroes every row of img, padding included. Rows are padded to
// a multiple of the vector width, so no tail store is needed.
func ImageRows2D(img *image.Image[float64]) {
	spaces.ForEach1(spaces.New(img.Height()), func(y int) {
		zeroLine(img.Row(y))
	})
}

// Parallel2D zeroes a on pool, splitting dimension 1 across workers.
func Parallel2D(pool *workerpool.Pool, a []float64, n, m int) {
	checkLen(a, n*m)
	parallel.ForEach(pool, spaces.New(n, m), func(c []int) {
		a[c[0]+c[1]*n] = 0
	})
}

func zeroLine(line []float64) {
	zero := hwy.Zero[float64]()
	hwy.ProcessWithTail[float64](len(line),
		func(offset int) {
			hwy.Store(zero, line[offset:])
		},
		func(offset, count int) {
			hwy.MaskStore(hwy.TailMask[float64](count), zero, line[offset:])
		},
	)
}
