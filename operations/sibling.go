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

// CreateSibling

// CreateSibling adds a fresh empty bullet adjacent to the active one
// and makes it active.
type CreateSibling struct {
	operation
	Below bool
}

func (op *CreateSibling) Perform(e gout.Editor, multiplier int) (gout.Operation, error) {
	op.init(e, multiplier)

	e.CreateSibling(op.Below)

	inverse := &DeleteByID{ID: e.ActiveID()}
	inverse.copyForUndo(&op.operation)
	return inverse, nil
}
