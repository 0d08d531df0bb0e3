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

package parallel

import (
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/ajroetker/go-spaces/spaces"
)

// ForEach calls f for every tuple of space, distributing the elements of the
// outermost dimension over pool. f must be safe for concurrent use, and the
// coordinates it receives are only valid during the call.
//
// Only an undecorated outermost dimension is split, so every view runs
// exactly once per element. A nil pool, a space of rank 0, or one whose
// outermost dimension has a view or a custom Range runs sequentially.
func ForEach(pool *workerpool.Pool, space spaces.Space, f func(coords []int)) {
	rank := space.Rank()
	if pool == nil || rank == 0 {
		spaces.ForEach(space, f)
		return
	}
	outer := rank - 1
	lo, hi, ok := spaces.Interval(space, outer)
	if !ok {
		spaces.ForEach(space, f)
		return
	}
	n := hi - lo
	pool.ParallelFor(n, func(start, end int) {
		spaces.ForEach(spaces.Bind(space, outer, chunk(start, end, end == n)), f)
	})
}

// ForEachN is ForEach on a pool of the given number of workers, created for
// this call. workers <= 0 uses GOMAXPROCS.
func ForEachN(workers int, space spaces.Space, f func(coords []int)) {
	pool := workerpool.New(workers)
	defer pool.Close()
	ForEach(pool, space, f)
}

// chunk keeps the elements at positions [start, end) of a sequence, or
// [start, ∞) for the last chunk.
func chunk(start, end int, last bool) spaces.View {
	return func(seq spaces.Seq) spaces.Seq {
		return func(yield func(spaces.Optional[spaces.Tuple]) bool) {
			pos := 0
			for e := range seq {
				if !last && pos >= end {
					return
				}
				if pos >= start && !yield(e) {
					return
				}
				pos++
			}
		}
	}
}
