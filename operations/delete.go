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

// DeleteBullet

// DeleteBullet removes the active bullet and its subtree, leaving a
// copy on the clipboard. The inverse restores the copy at the exact
// former position.
type DeleteBullet struct {
	operation
}

func (op *DeleteBullet) Perform(e gout.Editor, multiplier int) (gout.Operation, error) {
	op.init(e, multiplier)

	record := e.GetSubtree()
	if err := e.Delete(); err != nil {
		return nil, err
	}
	e.SetClipboard(record)

	inverse := &Restore{Record: record}
	inverse.copyForUndo(&op.operation)
	return inverse, nil
}

// DeleteByID

// DeleteByID removes a bullet named by identity; it undoes a
// CreateSibling or a Paste. Undoing an undo is not supported, so it
// has no inverse.
type DeleteByID struct {
	operation
	ID int
}

func (op *DeleteByID) Perform(e gout.Editor, multiplier int) (gout.Operation, error) {
	op.init(e, multiplier)

	if err := e.Activate(op.ID); err != nil {
		return nil, err
	}
	if err := e.Delete(); err != nil {
		return nil, err
	}
	return nil, nil
}
