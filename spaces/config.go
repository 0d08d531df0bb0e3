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
	"os"
	"strconv"
)

// lowering enables the counted-loop fast path for undecorated dimensions.
// Set once at init from SPACES_NO_LOWERING.
var lowering = !NoLoweringEnv()

// NoLoweringEnv checks if the SPACES_NO_LOWERING environment variable is set.
// When set, every dimension is iterated through its Range sequence, even the
// ones that could run as plain counted loops. Useful for testing the views
// path and for comparing the two in benchmarks.
func NoLoweringEnv() bool {
	val := os.Getenv("SPACES_NO_LOWERING")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SetLowering turns the counted-loop lowering on or off and returns the
// previous setting. It is not safe to call concurrently with a traversal.
func SetLowering(enabled bool) bool {
	prev := lowering
	lowering = enabled
	return prev
}
