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
package operations

import (
	gout "github.com/timburks/gout/types"
)

// Indent

// Indent nests the active bullet under its sibling above, as that
// sibling's last child unless AsFirst is set. Unindent is its exact
// inverse: the bullet lands immediately after its former parent, which
// was its sibling above.
type Indent struct {
	operation
	AsFirst bool
}

func (op *Indent) Perform(e gout.Editor, multiplier int) (gout.Operation, error) {
	op.init(e, multiplier)

	if err := e.Indent(op.AsFirst); err != nil {
		return nil, err
	}

	inverse := &Unindent{}
	inverse.copyForUndo(&op.operation)
	return inverse, nil
}

// Unindent

// Unindent moves the active bullet out of its parent, to directly
// below it. Undoing requires more than an Indent: a bullet unindented
// from the middle of its siblings re-nests at the end, so the inverse
// restores a recorded copy at the exact former position instead.
type Unindent struct {
	operation
}

func (op *Unindent) Perform(e gout.Editor, multiplier int) (gout.Operation, error) {
	op.init(e, multiplier)

	record := e.GetSubtree()
	moved := e.ActiveID()
	if err := e.Unindent(); err != nil {
		return nil, err
	}

	inverse := &Restore{Record: record, ReplaceID: moved}
	inverse.copyForUndo(&op.operation)
	return inverse, nil
}
