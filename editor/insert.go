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
package editor

import "github.com/timburks/gout/types"

// EnterInsert begins inserting before the rune under the cursor, on
// the bullet under the cursor.
func (e *Editor) EnterInsert() error {
	cell, ok := e.raster.Get(e.cursor)
	if !ok || !cell.Browsable() {
		return errNoContent
	}
	if err := e.tree.Activate(cell.ID); err != nil {
		return err
	}
	e.offset = 0
	if cell.IsText() {
		e.offset = len([]rune(e.tree.ActiveContent())) - cell.Offset
	}
	e.insert = true
	return nil
}

// EnterInsertAtEnd begins inserting at the end of the bullet under the
// cursor.
func (e *Editor) EnterInsertAtEnd() error {
	cell, ok := e.raster.Get(e.cursor)
	if !ok || !cell.Browsable() {
		return errNoContent
	}
	if err := e.tree.Activate(cell.ID); err != nil {
		return err
	}
	e.StartInsert()
	return nil
}

// StartInsert begins inserting at the end of the active bullet without
// consulting the cursor; used right after a bullet is created.
func (e *Editor) StartInsert() {
	e.offset = 0
	e.insert = true
}

// CloseInsert leaves insert mode, settling the cursor back onto
// content: the insertion anchor sits one cell past the text when
// inserting at the end, so step left onto the last rune.
func (e *Editor) CloseInsert() error {
	e.insert = false
	cell, ok := e.raster.Get(e.cursor)
	if ok && cell.Browsable() {
		e.col = e.cursor.Col
		return nil
	}
	if b, err := e.raster.Browser(e.cursor); err == nil {
		if b, err = b.GoWhile(types.MoveLeft, notBrowsable); err == nil {
			e.SetCursor(b.Pos())
			return nil
		}
	}
	if pos, err := e.clampToText(e.cursor); err == nil {
		e.SetCursor(pos)
	}
	return nil
}

// InsertRune types one rune at the insertion point.
func (e *Editor) InsertRune(c rune) error {
	content := []rune(e.tree.ActiveContent())
	index := len(content) - e.offset
	updated := make([]rune, 0, len(content)+1)
	updated = append(updated, content[:index]...)
	updated = append(updated, c)
	updated = append(updated, content[index:]...)
	e.tree.SetActiveContent(string(updated))
	return nil
}

// Backspace deletes the rune before the insertion point. At the start
// of an empty bullet it deletes the bullet itself and keeps inserting
// on the bullet that takes its place.
func (e *Editor) Backspace() error {
	content := []rune(e.tree.ActiveContent())
	index := len(content) - e.offset - 1
	if index < 0 {
		if len(content) > 0 {
			return nil
		}
		if err := e.tree.Delete(); err != nil {
			return err
		}
		e.offset = 0
		return nil
	}
	updated := append([]rune{}, content[:index]...)
	updated = append(updated, content[index+1:]...)
	e.tree.SetActiveContent(string(updated))
	return nil
}
