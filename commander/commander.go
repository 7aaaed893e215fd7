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
	"fmt"
	"strconv"

	"github.com/timburks/gout/operations"
	gout "github.com/timburks/gout/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor     gout.Editor
	mode       int    // editor mode
	debug      bool   // debug mode displays information about events (key codes, etc)
	editKeys   string // edit key sequences in progress
	lispText   string // lisp command as it is being typed
	message    string // status message
	multiplier string // multiplier string as it is being entered
}

func NewCommander(e gout.Editor) *Commander {
	bindEditor(e)
	return &Commander{editor: e, mode: gout.ModeCommand}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gout.ModeQuit
}

func (c *Commander) ProcessEvent(event *gout.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gout.EventKey:
		return c.ProcessKey(event)
	case gout.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *gout.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *gout.Event) error {
	var err error
	switch c.mode {
	case gout.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case gout.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case gout.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

// report routes a command's failure to the message bar; motions that
// run into an edge are ordinary, not fatal.
func (c *Commander) report(err error) {
	if err != nil {
		c.message = err.Error()
	} else {
		c.message = ""
	}
}

func (c *Commander) ProcessKeyCommandMode(event *gout.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		switch c.editKeys {
		case "d":
			switch ch {
			case 'd':
				if err := e.ActivateAtCursor(); err != nil {
					c.report(err)
				} else {
					c.report(e.Perform(&operations.DeleteBullet{}, c.Multiplier()))
				}
			}
		case "y":
			switch ch {
			case 'y':
				c.report(e.Yank())
			}
		}
		c.editKeys = ""
		return nil
	}
	if key != 0 {
		switch key {
		case gout.KeyEsc:
			c.mode = gout.ModeQuit
		case gout.KeyArrowUp:
			c.report(e.MoveCursor(gout.MoveUp, c.Multiplier()))
		case gout.KeyArrowDown:
			c.report(e.MoveCursor(gout.MoveDown, c.Multiplier()))
		case gout.KeyArrowLeft:
			c.report(e.MoveCursor(gout.MoveLeft, c.Multiplier()))
		case gout.KeyArrowRight:
			c.report(e.MoveCursor(gout.MoveRight, c.Multiplier()))
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers are saved when operations are created
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = gout.ModeLisp
			c.lispText = "("
		//
		// cursor movement isn't logged
		//
		case 'h':
			c.report(e.MoveCursor(gout.MoveLeft, c.Multiplier()))
		case 'j':
			c.report(e.MoveCursor(gout.MoveDown, c.Multiplier()))
		case 'k':
			c.report(e.MoveCursor(gout.MoveUp, c.Multiplier()))
		case 'l':
			c.report(e.MoveCursor(gout.MoveRight, c.Multiplier()))
		case 'w':
			c.report(e.MoveCursorToNextWord(c.Multiplier()))
		case 'b':
			c.report(e.MoveCursorToPreviousWord(c.Multiplier()))
		case 'e':
			c.report(e.MoveCursorToEndOfWord(c.Multiplier()))
		//
		// mode changes
		//
		case 'i':
			if err := e.EnterInsert(); err != nil {
				c.report(err)
			} else {
				c.mode = gout.ModeInsert
			}
		case 'A':
			if err := e.EnterInsertAtEnd(); err != nil {
				c.report(err)
			} else {
				c.mode = gout.ModeInsert
			}
		//
		// "performed" operations are saved for undo and repetition
		//
		case 'o':
			c.openSibling(true)
		case 'O':
			c.openSibling(false)
		case 'p':
			if err := e.ActivateAtCursor(); err != nil {
				c.report(err)
			} else {
				c.report(e.Perform(&operations.Paste{Below: true}, c.Multiplier()))
			}
		case 'P':
			if err := e.ActivateAtCursor(); err != nil {
				c.report(err)
			} else {
				c.report(e.Perform(&operations.Paste{Below: false}, c.Multiplier()))
			}
		//
		// a few keys open multi-key commands
		//
		case 'd':
			c.editKeys = "d"
		case 'y':
			c.editKeys = "y"
		//
		// undo
		//
		case 'u':
			c.report(e.PerformUndo())
		//
		// repeat
		//
		case '.':
			c.report(e.Repeat())
		}
	}
	return nil
}

// openSibling is the o/O command: a fresh bullet next to the one under
// the cursor, entered in insert mode.
func (c *Commander) openSibling(below bool) {
	e := c.editor
	if err := e.ActivateAtCursor(); err != nil {
		c.report(err)
		return
	}
	if err := e.Perform(&operations.CreateSibling{Below: below}, c.Multiplier()); err != nil {
		c.report(err)
		return
	}
	e.StartInsert()
	c.mode = gout.ModeInsert
	c.message = ""
}

func (c *Commander) ProcessKeyInsertMode(event *gout.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gout.KeyEsc, gout.KeyCtrlC: // end an insert operation.
			c.report(e.CloseInsert())
			c.mode = gout.ModeCommand
		case gout.KeyBackspace, gout.KeyBackspace2:
			c.report(e.Backspace())
		case gout.KeyTab, gout.KeyCtrlT:
			c.report(e.Perform(&operations.Indent{}, 1))
		case gout.KeyCtrlD:
			c.report(e.Perform(&operations.Unindent{}, 1))
		case gout.KeyEnter:
			if err := e.Perform(&operations.CreateSibling{Below: true}, 1); err != nil {
				c.report(err)
			} else {
				e.StartInsert()
			}
		case gout.KeySpace:
			c.report(e.InsertRune(' '))
		}
	}
	if ch != 0 {
		c.report(e.InsertRune(ch))
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gout.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gout.KeyEsc:
			c.mode = gout.ModeCommand
		case gout.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.mode = gout.ModeCommand
		case gout.KeyBackspace, gout.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case gout.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	if err != nil {
		c.multiplier = ""
		return 1
	}
	c.multiplier = ""
	return int(i)
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessage() string {
	return c.message
}
