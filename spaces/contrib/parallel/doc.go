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

// Package parallel runs spaces traversals on a worker pool by splitting the
// outermost dimension into contiguous chunks.
//
// Each chunk is an independent sequential traversal with its own coordinate
// buffer, so the callback sees the same tuples as spaces.ForEach, in an
// unspecified order across chunks.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	parallel.ForEach(pool, spaces.New(n, m, o), func(c []int) {
//	    a[c[0]+c[1]*n+c[2]*n*m] = 0
//	})
package parallel
