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
	"fmt"
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/image"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"github.com/google/go-cmp/cmp"
)

// guard is the number of elements past the array that kernels must leave
// untouched.
const guard = 3

// initial returns an array of size elements plus guard, each holding its
// offset plus one so that no element starts at zero.
func initial(size int) []float64 {
	a := make([]float64, size+guard)
	for i := range a {
		a[i] = float64(i + 1)
	}
	return a
}

type kernel2D struct {
	name string
	fn   func(a []float64, n, m int)
}

func fullKernels(pool *workerpool.Pool) []kernel2D {
	return []kernel2D{
		{"Reference", Reference2D},
		{"IndexRange", IndexRange2D},
		{"IndexRangeRandomAccess", IndexRangeRandomAccess2D},
		{"IndexRangeKnownDistance", IndexRangeKnownDistance2D},
		{"StorageRange", StorageRange2D},
		{"Generator", Generator2D},
		{"ForEach", ForEach2D},
		{"Vectorized", Vectorized2D},
		{"Fill", Fill2D},
		{"Parallel", func(a []float64, n, m int) { Parallel2D(pool, a, n, m) }},
	}
}

var sizes2D = [][2]int{
	{0, 0}, {0, 4}, {4, 0}, {1, 1}, {3, 5}, {7, 2}, {17, 9}, {64, 3}, {33, 65},
}

func TestFull2D(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, k := range fullKernels(pool) {
		for _, sz := range sizes2D {
			n, m := sz[0], sz[1]
			t.Run(fmt.Sprintf("%s/%dx%d", k.name, n, m), func(t *testing.T) {
				a := initial(n * m)
				k.fn(a, n, m)
				for i := 0; i < n*m; i++ {
					if a[i] != 0 {
						t.Errorf("A[%d]: got %v, want 0", i, a[i])
					}
				}
				for i := n * m; i < len(a); i++ {
					if want := float64(i + 1); a[i] != want {
						t.Errorf("A[%d] past the end: got %v, want %v", i, a[i], want)
					}
				}
			})
		}
	}
}

func TestDiagonal2D(t *testing.T) {
	kernels := []kernel2D{
		{"Where", DiagonalWhere2D},
		{"Filter", DiagonalFilter2D},
	}
	for _, sz := range sizes2D {
		n, m := sz[0], sz[1]
		want := initial(n * m)
		DiagonalReference2D(want, n, m)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				got, zero := want[i+j*n], i == j
				if (got == 0) != zero {
					t.Fatalf("%dx%d reference A(%d, %d) = %v", n, m, i, j, got)
				}
			}
		}

		for _, k := range kernels {
			t.Run(fmt.Sprintf("%s/%dx%d", k.name, n, m), func(t *testing.T) {
				got := initial(n * m)
				k.fn(got, n, m)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

type kernel3D struct {
	name string
	fn   func(a []float64, n, m, o int)
}

var sizes3D = [][3]int{
	{0, 0, 0}, {2, 2, 2}, {3, 4, 5}, {5, 4, 3}, {8, 8, 8}, {1, 6, 6}, {6, 1, 9},
}

func TestPlane3D(t *testing.T) {
	groups := []struct {
		name      string
		reference func(a []float64, n, m, o int)
		zero      func(i, j, k int) bool
		kernels   []kernel3D
	}{
		{
			name:      "IJ",
			reference: PlaneReference3D,
			zero:      func(i, j, k int) bool { return i == j },
			kernels:   []kernel3D{{"Where", PlaneWhere3D}, {"Filter", PlaneFilter3D}},
		},
		{
			name:      "JK",
			reference: PlaneJKReference3D,
			zero:      func(i, j, k int) bool { return j == k },
			kernels:   []kernel3D{{"OnExtent", PlaneOnExtent3D}},
		},
	}

	for _, g := range groups {
		for _, sz := range sizes3D {
			n, m, o := sz[0], sz[1], sz[2]
			want := initial(n * m * o)
			g.reference(want, n, m, o)
			for k := 0; k < o; k++ {
				for j := 0; j < m; j++ {
					for i := 0; i < n; i++ {
						if got := want[i+j*n+k*n*m]; (got == 0) != g.zero(i, j, k) {
							t.Fatalf("%s %v: reference A(%d, %d, %d) = %v", g.name, sz, i, j, k, got)
						}
					}
				}
			}

			for _, kn := range g.kernels {
				t.Run(fmt.Sprintf("%s/%s/%dx%dx%d", g.name, kn.name, n, m, o), func(t *testing.T) {
					got := initial(n * m * o)
					kn.fn(got, n, m, o)
					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("mismatch (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

func TestImageRows2D(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {3, 2}, {17, 5}, {64, 4}} {
		w, h := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			img := image.NewImage[float64](w, h)
			for y := 0; y < img.Height(); y++ {
				row := img.Row(y)
				for x := range row {
					row[x] = float64(x + y*img.Stride() + 1)
				}
			}

			ImageRows2D(img)

			for y := 0; y < img.Height(); y++ {
				for x, v := range img.Row(y) {
					if v != 0 {
						t.Errorf("row %d [%d]: got %v, want 0", y, x, v)
					}
				}
			}
		})
	}
}

func TestImageRows2DEmpty(t *testing.T) {
	ImageRows2D(image.NewImage[float64](0, 0))
}

func TestShortSlicePanics(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	check := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			if r != "memset: A slice too short" {
				t.Errorf("recovered %v, want slice too short panic", r)
			}
		}()
		fn()
	}

	short := make([]float64, 5)
	for _, k := range fullKernels(pool) {
		t.Run(k.name, func(t *testing.T) {
			check(t, func() { k.fn(short, 2, 3) })
		})
	}
	for _, k := range []kernel2D{{"DiagonalReference", DiagonalReference2D}, {"DiagonalWhere", DiagonalWhere2D}, {"DiagonalFilter", DiagonalFilter2D}} {
		t.Run(k.name, func(t *testing.T) {
			check(t, func() { k.fn(short, 3, 3) })
		})
	}
	for _, k := range []kernel3D{
		{"PlaneReference", PlaneReference3D},
		{"PlaneWhere", PlaneWhere3D},
		{"PlaneFilter", PlaneFilter3D},
		{"PlaneJKReference", PlaneJKReference3D},
		{"PlaneOnExtent", PlaneOnExtent3D},
	} {
		t.Run(k.name, func(t *testing.T) {
			check(t, func() { k.fn(short, 2, 2, 2) })
		})
	}
}
