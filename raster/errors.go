//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package raster

import "errors"

var (
	// ErrOutOfBounds indicates a motion that would leave the grid, or
	// a browser constructed at an invalid position. The browser
	// position prior to the failing step remains valid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrPredicateUnsatisfied indicates a bounded search that
	// exhausted its budget without the predicate resolving. Unlike
	// ErrOutOfBounds it can occur deep inside valid grid space.
	ErrPredicateUnsatisfied = errors.New("predicate unsatisfied within bound")
)
