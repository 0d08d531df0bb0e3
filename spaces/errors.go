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

import (
	"errors"
	"fmt"
)

var (
	// ErrRankMismatch reports a number of extents, bounds or callback
	// coordinates that differs from the rank of the space.
	ErrRankMismatch = errors.New("rank mismatch")

	// ErrNegativeExtent reports an extent below zero.
	ErrNegativeExtent = errors.New("negative extent")

	// ErrInvalidBounds reports a Box dimension whose lower bound is negative
	// or greater than its upper bound.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrDimensionOutOfRange reports a dimension index outside [0, Rank).
	ErrDimensionOutOfRange = errors.New("dimension out of range")
)

// violated panics with an error wrapping err. Structural errors are
// precondition violations, so they never reach a traversal.
func violated(err error, format string, args ...any) {
	panic(fmt.Errorf("spaces: %w: "+format, append([]any{err}, args...)...))
}

func checkDim(dim, rank int) {
	if dim < 0 || dim >= rank {
		violated(ErrDimensionOutOfRange, "dimension %d, rank %d", dim, rank)
	}
}

func checkRank(got, want int) {
	if got != want {
		violated(ErrRankMismatch, "got %d, want %d", got, want)
	}
}
