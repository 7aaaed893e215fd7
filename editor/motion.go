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

import (
	"github.com/timburks/gout/raster"
	"github.com/timburks/gout/types"
)

// wordSeparators delimit words for the b/w/e motions.
const wordSeparators = " "

func browsable(c raster.Cell) bool {
	return c.Browsable()
}

func notBrowsable(c raster.Cell) bool {
	return !c.Browsable()
}

// findLeftText resolves a position to the nearest browsable cell at or
// left of it, looking at most budget cells left.
func findLeftText(b raster.Browser, budget int) (types.Point, error) {
	if b.Cell().Browsable() {
		return b.Pos(), nil
	}
	return raster.Map(b, func(b raster.Browser) (types.Point, error) {
		left, err := b.GoWhileOrCount(types.MoveLeft, budget, notBrowsable)
		if err != nil {
			return left.Pos(), err
		}
		return left.Pos(), nil
	})
}

// MoveCursor implements the four cardinal motions. Horizontal motion
// crosses exactly multiplier browsable cells, skipping markers and
// margins, and may flow onto adjacent rows. Vertical motion goes one
// grid row at a time, steering back toward the remembered column.
func (e *Editor) MoveCursor(direction types.Direction, multiplier int) error {
	switch direction {
	case types.MoveLeft, types.MoveRight:
		return e.moveAcross(direction, multiplier)
	default:
		return e.moveVertical(direction, multiplier)
	}
}

func (e *Editor) moveAcross(direction types.Direction, multiplier int) error {
	b, err := e.raster.Browser(e.cursor)
	if err != nil {
		return err
	}
	b, err = b.GoUntilCount(direction, multiplier, browsable)
	if err != nil {
		return err
	}
	e.SetCursor(b.Pos())
	return nil
}

func (e *Editor) moveVertical(direction types.Direction, multiplier int) error {
	for i := 0; i < multiplier; i++ {
		if err := e.verticalStep(direction); err != nil {
			return err
		}
	}
	return nil
}

// verticalStep moves one grid row, then right toward the remembered
// column, then clamps onto content. A row with no content at or left
// of the remembered column rejects the step.
func (e *Editor) verticalStep(direction types.Direction) error {
	b, err := e.raster.Browser(e.cursor)
	if err != nil {
		return err
	}
	b, err = b.GoNoWrap(direction, 1)
	if err != nil {
		return err
	}
	if gap := e.col - b.Pos().Col; gap > 0 {
		if b, err = b.GoNoWrap(types.MoveRight, gap); err != nil {
			return err
		}
	}
	pos, err := findLeftText(b, e.col)
	if err != nil {
		return err
	}
	e.cursor = pos
	return nil
}

// MoveCursorToNextWord is the w motion: the first rune of the next
// word, flowing into the next bullet from the last word of a line.
func (e *Editor) MoveCursorToNextWord(multiplier int) error {
	return e.repeatWordMotion(multiplier, types.MoveRight, 1)
}

// MoveCursorToPreviousWord is the b motion: the first rune of the
// previous word.
func (e *Editor) MoveCursorToPreviousWord(multiplier int) error {
	return e.repeatWordMotion(multiplier, types.MoveLeft, 1)
}

// MoveCursorToEndOfWord is the e motion: the last rune of the next
// word.
func (e *Editor) MoveCursorToEndOfWord(multiplier int) error {
	return e.repeatWordMotion(multiplier, types.MoveRight, -1)
}

func (e *Editor) repeatWordMotion(multiplier int, direction types.Direction, finalOffset int) error {
	for i := 0; i < multiplier; i++ {
		if err := e.wordStep(direction, finalOffset); err != nil {
			return err
		}
	}
	return nil
}

// wordStep is one b/w/e jump. It starts from a text cell; standing on
// the line's extreme rune in the motion's direction first hops across
// the margin to the neighboring bullet's text.
func (e *Editor) wordStep(direction types.Direction, finalOffset int) error {
	b, err := e.raster.Browser(e.cursor)
	if err != nil {
		return err
	}
	cell := b.Cell()
	if !cell.IsText() {
		return errNoContent
	}
	content := []rune(mustContent(e, cell.ID))

	skipIndex := 0
	if direction == types.MoveRight {
		skipIndex = len(content) - 1
	}
	if cell.Offset == skipIndex {
		if b, err = b.GoWhile(direction, notBrowsable); err != nil {
			return err
		}
		cell = b.Cell()
		if !cell.IsText() {
			return errNoContent
		}
		content = []rune(mustContent(e, cell.ID))
	}

	if b, err = jumpToSeparator(b, content, cell.Offset, direction, finalOffset); err != nil {
		return err
	}
	e.SetCursor(b.Pos())
	return nil
}

func mustContent(e *Editor, id int) string {
	content, err := e.tree.Content(id)
	if err != nil {
		panic(err)
	}
	return content
}

func isSeparator(c rune) bool {
	for _, s := range wordSeparators {
		if c == s {
			return true
		}
	}
	return false
}

// findSeparator scans content outward from index for the nearest
// separator rune, never reporting position 0. Returns -1 when the line
// ends without one.
func findSeparator(content []rune, index int, direction types.Direction) int {
	if index >= len(content) {
		return -1
	}
	if direction == types.MoveLeft {
		for i := index - 1; i >= 1; i-- {
			if isSeparator(content[i]) {
				return i
			}
		}
	} else {
		for i := index + 1; i < len(content); i++ {
			if isSeparator(content[i]) {
				return i
			}
		}
	}
	return -1
}

// jumpToSeparator moves the browser to the next separator in content
// plus finalOffset, clamped to the content; with no separator it goes
// to the line's extremity. A separator directly adjacent to the start
// is stepped over first, so runs of separators act as one.
func jumpToSeparator(b raster.Browser, content []rune, index int, direction types.Direction, finalOffset int) (raster.Browser, error) {
	sep := findSeparator(content, index, direction)
	var target int
	switch {
	case sep >= 0 && abs(sep-index) == 1:
		next, err := b.GoWrap(direction, 1)
		if err != nil {
			return next, err
		}
		return jumpToSeparator(next, content, sep, direction, finalOffset)
	case sep >= 0:
		target = sep + finalOffset
	case direction == types.MoveLeft:
		target = 0
	default:
		target = len(content) - 1
	}
	if target < 0 {
		target = 0
	}
	if target > len(content)-1 {
		target = len(content) - 1
	}
	return b.GoWrap(direction, abs(target-index))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
