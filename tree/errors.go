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
package tree

import (
	"errors"
	"fmt"
)

// ErrStructuralLimit is the class of recoverable "the outline cannot
// bend that way" conditions. The specific errors below wrap it so
// callers can match the class with errors.Is and still print the
// specific message.
var ErrStructuralLimit = errors.New("structural limit")

var (
	// ErrAtMinIndent indicates an indent with no sibling above to
	// become the new parent.
	ErrAtMinIndent = fmt.Errorf("%w: already at minimum indentation", ErrStructuralLimit)

	// ErrAtTopLevel indicates an unindent of a bullet whose parent is
	// the root.
	ErrAtTopLevel = fmt.Errorf("%w: cannot unindent a top-level bullet", ErrStructuralLimit)

	// ErrLastBullet indicates a delete of the only remaining bullet.
	ErrLastBullet = fmt.Errorf("%w: cannot delete the last bullet", ErrStructuralLimit)
)

// ErrUnknownIdentity indicates a lookup by an identity that is not in
// the tree, typically a stale id held across a delete.
var ErrUnknownIdentity = errors.New("unknown node identity")
