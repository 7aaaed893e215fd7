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
	"errors"

	gout "github.com/timburks/gout/types"
)

// Paste

// Paste inserts the clipboard subtree adjacent to the active bullet.
// Every paste receives fresh identities, so the same clipboard can be
// pasted any number of times.
type Paste struct {
	operation
	Below bool
}

func (op *Paste) Perform(e gout.Editor, multiplier int) (gout.Operation, error) {
	op.init(e, multiplier)

	st := e.Clipboard()
	if st == nil {
		return nil, errors.New("clipboard is empty")
	}
	e.InsertSubtree(st, op.Below)

	inverse := &DeleteByID{ID: e.ActiveID()}
	inverse.copyForUndo(&op.operation)
	return inverse, nil
}
