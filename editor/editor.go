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
// Package editor holds the outline document, the cursor over its
// rendered image, the undo stack, and the clipboard.
package editor

import (
	"errors"

	"github.com/timburks/gout/raster"
	"github.com/timburks/gout/render"
	"github.com/timburks/gout/tree"
	"github.com/timburks/gout/types"
)

var errNoContent = errors.New("no content here")

// sequence hands out identities, counting up from one. Zero is the
// tree's root.
type sequence struct {
	next int
}

func (s *sequence) Gen() int {
	v := s.next
	s.next++
	return v
}

// The Editor pairs a document tree with the raster of its last
// rendered frame. Motions read the raster; edits go to the tree and
// take effect on the next render.
type Editor struct {
	tree   *tree.Tree
	raster *raster.Raster
	cursor types.Point
	// col is the remembered column for vertical motion: moving through
	// a short row clamps the cursor left, but the preference survives.
	col    int
	insert bool
	// offset is measured in runes back from the end of the active
	// content, so typing at the insertion point never changes it.
	offset    int
	clipboard *tree.Subtree
	undo      []types.Operation
	previous  types.Operation
	// reposition is set by structural edits: the next render moves the
	// command-mode cursor to the active bullet.
	reposition bool
}

func NewEditor() *Editor {
	return &Editor{tree: tree.NewTree(&sequence{next: 1})}
}

func (e *Editor) GetCursor() types.Point {
	return e.cursor
}

func (e *Editor) SetCursor(cursor types.Point) {
	e.cursor = cursor
	e.col = cursor.Col
}

// Render draws the document and recomputes the cursor against the
// fresh raster: in insert mode the cursor is the insertion anchor, in
// command mode it is clamped back onto browsable content near where it
// was.
func (e *Editor) Render(d types.Display, size types.Size) {
	offset := 0
	if e.insert {
		offset = e.offset
	}
	r, anchor := render.Tree(d, e.tree, size, offset)
	e.raster = r
	if e.insert {
		if anchor != nil {
			e.cursor = *anchor
		}
		return
	}
	if cell, ok := r.Get(e.cursor); ok && cell.Browsable() && !e.reposition {
		return
	}
	e.reposition = false
	if anchor == nil {
		return
	}
	col := e.col
	if col >= size.Cols {
		col = size.Cols - 1
	}
	if pos, err := e.clampToText(types.Point{Row: anchor.Row, Col: col}); err == nil {
		e.cursor = pos
	}
}

// clampToText finds a browsable cell at or left of the position,
// falling back to the first content cell at or after the row start.
func (e *Editor) clampToText(p types.Point) (types.Point, error) {
	b, err := e.raster.Browser(p)
	if err != nil {
		return p, err
	}
	if pos, err := findLeftText(b, p.Col); err == nil {
		return pos, nil
	}
	b, err = e.raster.Browser(types.Point{Row: p.Row, Col: 0})
	if err != nil {
		return p, err
	}
	if b.Cell().Browsable() {
		return b.Pos(), nil
	}
	b, err = b.GoWhile(types.MoveRight, notBrowsable)
	return b.Pos(), err
}

// ActivateAtCursor makes the bullet under the cursor active. It fails
// when the cursor is not on content, which in command mode it always
// should be.
func (e *Editor) ActivateAtCursor() error {
	cell, ok := e.raster.Get(e.cursor)
	if !ok || !cell.Browsable() {
		return errNoContent
	}
	return e.tree.Activate(cell.ID)
}

// Perform applies an operation and pushes its inverse, if any, on the
// undo stack.
func (e *Editor) Perform(op types.Operation, multiplier int) error {
	inverse, err := op.Perform(e, multiplier)
	if err != nil {
		return err
	}
	e.previous = op
	e.reposition = true
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
	return nil
}

// PerformUndo pops and applies the most recent inverse.
func (e *Editor) PerformUndo() error {
	if len(e.undo) == 0 {
		return errors.New("nothing to undo")
	}
	last := len(e.undo) - 1
	op := e.undo[last]
	e.undo = e.undo[0:last]
	e.reposition = true
	_, err := op.Perform(e, 0)
	return err
}

// Repeat applies the last operation again.
func (e *Editor) Repeat() error {
	if e.previous == nil {
		return errors.New("nothing to repeat")
	}
	return e.Perform(e.previous, 0)
}

// Yank copies the bullet under the cursor, with its descendants, to
// the clipboard.
func (e *Editor) Yank() error {
	if err := e.ActivateAtCursor(); err != nil {
		return err
	}
	e.clipboard = e.tree.GetSubtree()
	return nil
}

func (e *Editor) SetClipboard(st *tree.Subtree) {
	e.clipboard = st
}

func (e *Editor) Clipboard() *tree.Subtree {
	return e.clipboard
}

// document surface

func (e *Editor) Activate(id int) error {
	return e.tree.Activate(id)
}

func (e *Editor) ActiveID() int {
	return e.tree.ActiveID()
}

func (e *Editor) ActiveContent() string {
	return e.tree.ActiveContent()
}

func (e *Editor) SetActiveContent(text string) {
	e.tree.SetActiveContent(text)
}

func (e *Editor) BulletCount() int {
	return e.tree.BulletCount()
}

func (e *Editor) OutlineString() string {
	return e.tree.String()
}

func (e *Editor) CreateSibling(below bool) {
	e.tree.CreateSibling(below)
}

func (e *Editor) Indent(asFirst bool) error {
	return e.tree.Indent(asFirst)
}

func (e *Editor) Unindent() error {
	return e.tree.Unindent()
}

func (e *Editor) Delete() error {
	return e.tree.Delete()
}

func (e *Editor) GetSubtree() *tree.Subtree {
	return e.tree.GetSubtree()
}

func (e *Editor) InsertSubtree(st *tree.Subtree, below bool) {
	e.tree.InsertSubtree(st, below)
}

func (e *Editor) RestoreSubtree(st *tree.Subtree) error {
	return e.tree.RestoreSubtree(st)
}
