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
package commander

import (
	"errors"
	"fmt"
	"os"

	"github.com/steelseries/golisp"
	"github.com/timburks/gout/operations"
	gout "github.com/timburks/gout/types"
)

// current is the editor the lisp primitives act on. One editor runs
// per process; bindEditor sets it when the commander is built.
var current gout.Editor

func bindEditor(e gout.Editor) {
	current = e
}

func init() {
	golisp.MakePrimitiveFunction("bullet", "0", BulletImpl)
	golisp.MakePrimitiveFunction("bullet-above", "0", BulletAboveImpl)
	golisp.MakePrimitiveFunction("indent", "0", IndentImpl)
	golisp.MakePrimitiveFunction("indent-first", "0", IndentFirstImpl)
	golisp.MakePrimitiveFunction("unindent", "0", UnindentImpl)
	golisp.MakePrimitiveFunction("delete-bullet", "0", DeleteBulletImpl)
	golisp.MakePrimitiveFunction("yank", "0", YankImpl)
	golisp.MakePrimitiveFunction("paste", "0", PasteImpl)
	golisp.MakePrimitiveFunction("paste-above", "0", PasteAboveImpl)
	golisp.MakePrimitiveFunction("undo", "0", UndoImpl)
	golisp.MakePrimitiveFunction("text", "1", TextImpl)
	golisp.MakePrimitiveFunction("append-text", "1", AppendTextImpl)
	golisp.MakePrimitiveFunction("content", "0", ContentImpl)
	golisp.MakePrimitiveFunction("active", "0", ActiveImpl)
	golisp.MakePrimitiveFunction("goto", "1", GotoImpl)
	golisp.MakePrimitiveFunction("bullet-count", "0", BulletCountImpl)
	golisp.MakePrimitiveFunction("dump", "0", DumpImpl)
}

func perform(op gout.Operation) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	if err := current.Perform(op, 1); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(current.ActiveID())), nil
}

func BulletImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.CreateSibling{Below: true})
}

func BulletAboveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.CreateSibling{Below: false})
}

func IndentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Indent{})
}

func IndentFirstImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Indent{AsFirst: true})
}

func UnindentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Unindent{})
}

func DeleteBulletImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.DeleteBullet{})
}

func YankImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	current.SetClipboard(current.GetSubtree())
	return golisp.IntegerWithValue(int64(current.ActiveID())), nil
}

func PasteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Paste{Below: true})
}

func PasteAboveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return perform(&operations.Paste{Below: false})
}

func UndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	if err := current.PerformUndo(); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(current.ActiveID())), nil
}

func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("text requires a string argument")
	}
	current.SetActiveContent(golisp.StringValue(val))
	return val, nil
}

func AppendTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("append-text requires a string argument")
	}
	current.SetActiveContent(current.ActiveContent() + golisp.StringValue(val))
	return golisp.StringWithValue(current.ActiveContent()), nil
}

func ContentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	return golisp.StringWithValue(current.ActiveContent()), nil
}

func ActiveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	return golisp.IntegerWithValue(int64(current.ActiveID())), nil
}

func GotoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("goto requires an integer argument")
	}
	if err := current.Activate(int(golisp.IntegerValue(val))); err != nil {
		return nil, err
	}
	return val, nil
}

func BulletCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	return golisp.IntegerWithValue(int64(current.BulletCount())), nil
}

func DumpImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errors.New("no editor is bound")
	}
	return golisp.StringWithValue(current.OutlineString()), nil
}

// ParseEval evaluates a lisp expression, returning a message for the
// message bar.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates a file of lisp expressions; used for
// scripted, screenless runs.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	value, err := golisp.ParseAndEvalAll(string(bytes))
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}
