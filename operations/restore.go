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
	"github.com/timburks/gout/tree"
	gout "github.com/timburks/gout/types"
)

// Restore

// Restore splices a recorded subtree back at its recorded position;
// it undoes a DeleteBullet or, with ReplaceID set to the bullet an
// Unindent moved, an Unindent. It has no inverse.
type Restore struct {
	operation
	Record    *tree.Subtree
	ReplaceID int
}

func (op *Restore) Perform(e gout.Editor, multiplier int) (gout.Operation, error) {
	op.init(e, multiplier)

	if op.ReplaceID != 0 {
		if err := e.Activate(op.ReplaceID); err != nil {
			return nil, err
		}
		if err := e.Delete(); err != nil {
			return nil, err
		}
	}
	if err := e.RestoreSubtree(op.Record); err != nil {
		return nil, err
	}
	return nil, nil
}
