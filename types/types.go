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
package types

import (
	"github.com/timburks/gout/tree"
)

// Editor modes
const (
	ModeCommand = 0
	ModeInsert  = 1
	ModeLisp    = 2
	ModeQuit    = 9999
)

// Move directions
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
	MoveRight
	MoveLeft
)

// Event types
const (
	EventKey = iota
	EventResize
)

// Keys recognized by the commander. The screen translates terminal
// events into these so the core never sees termbox.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyBackspace2
	KeyCtrlC
	KeyCtrlD
	KeyCtrlT
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeySpace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Color int

const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlack
	ColorYellow
)

// A Display is anything that can accept rendered cells: the termbox
// screen in production, a fake grid in tests.
type Display interface {
	SetCell(j int, i int, c rune, color Color)
}

// An Operation is a reversible structural edit. Perform applies the
// operation and returns its inverse, which the editor pushes on the
// undo stack. Operations that cannot fail return a nil error.
type Operation interface {
	Perform(e Editor, multiplier int) (Operation, error)
}

// The Editor manages the outline document and the cursor over its
// rendered image.
type Editor interface {
	// cursor
	GetCursor() Point
	SetCursor(cursor Point)

	// rendering; also recomputes the cursor against the fresh raster
	Render(d Display, size Size)

	// command-mode motions
	MoveCursor(direction Direction, multiplier int) error
	MoveCursorToNextWord(multiplier int) error
	MoveCursorToPreviousWord(multiplier int) error
	MoveCursorToEndOfWord(multiplier int) error

	// mode transitions
	EnterInsert() error
	EnterInsertAtEnd() error
	StartInsert()
	CloseInsert() error

	// insert-mode editing
	InsertRune(c rune) error
	Backspace() error

	// undoable operations
	Perform(op Operation, multiplier int) error
	PerformUndo() error
	Repeat() error

	// clipboard
	Yank() error
	SetClipboard(st *tree.Subtree)
	Clipboard() *tree.Subtree

	// document surface used by operations and scripts
	ActivateAtCursor() error
	Activate(id int) error
	ActiveID() int
	ActiveContent() string
	SetActiveContent(text string)
	BulletCount() int
	OutlineString() string
	CreateSibling(below bool)
	Indent(asFirst bool) error
	Unindent() error
	Delete() error
	GetSubtree() *tree.Subtree
	InsertSubtree(st *tree.Subtree, below bool)
	RestoreSubtree(st *tree.Subtree) error
}

// The Commander converts user input into commands for the Editor.
type Commander interface {
	SetMode(int)
	GetMode() int
	GetMessage() string
	GetLispText() string
}
