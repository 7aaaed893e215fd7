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
// Package render draws a document tree onto a display and produces the
// matching cell raster in one pass.
package render

import (
	"github.com/timburks/gout/raster"
	"github.com/timburks/gout/tree"
	"github.com/timburks/gout/types"
)

const (
	bulletGlyph = '•'
	indentWidth = 2
)

// Tree draws the whole outline. Every cell of the display is written,
// so rendering is also a clear. Bullets start at a column proportional
// to their depth; wrapped content rows are padded back to the text
// column with filler. The second return value is the insertion anchor
// of the active bullet, insertOffset runes back from the end of its
// content, or nil when the active bullet fell below the last row.
func Tree(d types.Display, t *tree.Tree, size types.Size, insertOffset int) (*raster.Raster, *types.Point) {
	rn := &renderer{
		d:      d,
		r:      raster.New(size),
		size:   size,
		tree:   t,
		offset: insertOffset,
	}
	for _, id := range t.Children(t.Root()) {
		rn.renderBullet(id, 0)
	}
	for !rn.r.Full() {
		rn.put(' ', types.ColorWhite, raster.Cell{})
	}
	return rn.r, rn.anchor
}

type renderer struct {
	d      types.Display
	r      *raster.Raster
	size   types.Size
	tree   *tree.Tree
	offset int
	anchor *types.Point
}

// put writes one cell to both the display and the raster.
func (rn *renderer) put(c rune, color types.Color, cell raster.Cell) {
	pos := rn.r.Cursor()
	rn.d.SetCell(pos.Col, pos.Row, c, color)
	rn.r.Push(cell)
}

func (rn *renderer) markAnchor() {
	pos := rn.r.Cursor()
	rn.anchor = &pos
}

func (rn *renderer) renderBullet(id int, depth int) {
	if rn.r.Full() {
		return
	}
	indent := depth * indentWidth
	if max := rn.size.Cols - indentWidth - 1; indent > max {
		indent = max
	}
	if indent < 0 {
		indent = 0
	}
	active := id == rn.tree.ActiveID()
	color := types.ColorWhite
	if active {
		color = types.ColorYellow
	}

	for i := 0; i < indent && !rn.r.Full(); i++ {
		rn.put(' ', types.ColorWhite, raster.Cell{})
	}
	if rn.r.Full() {
		return
	}
	rn.put(bulletGlyph, color, raster.BulletCell(id))
	if rn.r.Full() {
		return
	}
	rn.put(' ', types.ColorWhite, raster.FillerCell(id))

	content, _ := rn.tree.Content(id)
	runes := []rune(content)
	textColumn := indent + indentWidth

	if len(runes) == 0 {
		if rn.r.Full() {
			return
		}
		if active {
			rn.markAnchor()
		}
		rn.put(' ', types.ColorWhite, raster.PlaceholderCell(id))
	} else {
		insertAt := -1
		if active {
			insertAt = len(runes) - rn.offset
			if insertAt < 0 {
				insertAt = 0
			}
		}
		for k, c := range runes {
			if rn.r.Full() {
				return
			}
			if rn.r.Cursor().Col == 0 {
				// wrapped continuation row
				for i := 0; i < textColumn && !rn.r.Full(); i++ {
					rn.put(' ', types.ColorWhite, raster.FillerCell(id))
				}
				if rn.r.Full() {
					return
				}
			}
			if k == insertAt {
				rn.markAnchor()
			}
			rn.put(c, types.ColorWhite, raster.TextCell(id, k))
		}
		if insertAt == len(runes) && !rn.r.Full() {
			rn.markAnchor()
		}
	}

	for rn.r.Cursor().Col != 0 && !rn.r.Full() {
		rn.put(' ', types.ColorWhite, raster.Cell{})
	}
	for _, child := range rn.tree.Children(id) {
		rn.renderBullet(child, depth+1)
	}
}
