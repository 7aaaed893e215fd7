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
// Package raster models the rendered outline as a grid of classified
// cells. The renderer populates it in document order; cursor motion
// reads it back through a Browser instead of re-deriving positions
// from the tree.
package raster

import "github.com/timburks/gout/types"

// CellKind classifies one grid cell.
type CellKind int

const (
	// Empty cells carry no content: margins, gaps after short lines,
	// rows below the last bullet.
	Empty CellKind = iota
	// Bullet cells hold a bullet marker glyph.
	Bullet
	// Filler cells pad a bullet's block without carrying text: the gap
	// after the marker, the indent of wrapped continuation rows.
	Filler
	// Text cells hold one rune of a bullet's content.
	Text
	// Placeholder cells stand in for the text of an empty bullet so it
	// stays reachable by the cursor.
	Placeholder
)

// A Cell is one classified grid position. ID names the owning bullet
// for every kind except Empty; Offset is the rune index within the
// bullet's content and is meaningful only for Text.
type Cell struct {
	Kind   CellKind
	ID     int
	Offset int
}

// TextCell makes a cell holding rune offset of bullet id.
func TextCell(id int, offset int) Cell {
	return Cell{Kind: Text, ID: id, Offset: offset}
}

// BulletCell makes a marker cell for bullet id.
func BulletCell(id int) Cell {
	return Cell{Kind: Bullet, ID: id}
}

// FillerCell makes a padding cell owned by bullet id.
func FillerCell(id int) Cell {
	return Cell{Kind: Filler, ID: id}
}

// PlaceholderCell makes the stand-in cell for an empty bullet id.
func PlaceholderCell(id int) Cell {
	return Cell{Kind: Placeholder, ID: id}
}

// Browsable reports whether the command-mode cursor may rest on the
// cell. Only content positions qualify: text runes and the
// placeholder of an empty bullet.
func (c Cell) Browsable() bool {
	return c.Kind == Text || c.Kind == Placeholder
}

// IsText reports whether the cell holds a content rune.
func (c Cell) IsText() bool {
	return c.Kind == Text
}

// A Raster is the cell image of one rendered frame. Cells are pushed
// in document order, left to right then top to bottom; positions never
// pushed stay Empty.
type Raster struct {
	cells []Cell
	size  types.Size
	next  int
}

// New makes an all-Empty raster of the given size.
func New(size types.Size) *Raster {
	return &Raster{
		cells: make([]Cell, size.Rows*size.Cols),
		size:  size,
	}
}

func (r *Raster) Size() types.Size {
	return r.size
}

// Full reports whether every cell has been pushed.
func (r *Raster) Full() bool {
	return r.next >= len(r.cells)
}

// Cursor returns the position the next Push will fill.
func (r *Raster) Cursor() types.Point {
	return types.Point{Row: r.next / r.size.Cols, Col: r.next % r.size.Cols}
}

// Push appends one cell at the cursor. Pushing past the end is a
// renderer bug, not a runtime condition, and panics.
func (r *Raster) Push(c Cell) {
	if r.next >= len(r.cells) {
		panic("push to full raster")
	}
	r.cells[r.next] = c
	r.next++
}

// PushRepeat appends count copies of a cell.
func (r *Raster) PushRepeat(c Cell, count int) {
	for i := 0; i < count; i++ {
		r.Push(c)
	}
}

func (r *Raster) contains(p types.Point) bool {
	return p.Row >= 0 && p.Row < r.size.Rows && p.Col >= 0 && p.Col < r.size.Cols
}

// Get returns the cell at a position, or false if the position lies
// outside the grid.
func (r *Raster) Get(p types.Point) (Cell, bool) {
	if !r.contains(p) {
		return Cell{}, false
	}
	return r.cells[p.Row*r.size.Cols+p.Col], true
}

// Browser starts a browser at a position.
func (r *Raster) Browser(p types.Point) (Browser, error) {
	if !r.contains(p) {
		return Browser{}, ErrOutOfBounds
	}
	return Browser{raster: r, pos: p}, nil
}

// LinearMove advances a position by offset cells along the row-major
// order of a grid, wrapping across row boundaries in both directions.
// Reports false when the result leaves the grid.
func LinearMove(pos types.Point, size types.Size, offset int) (types.Point, bool) {
	index := pos.Row*size.Cols + pos.Col + offset
	if index < 0 || index >= size.Rows*size.Cols {
		return types.Point{}, false
	}
	return types.Point{Row: index / size.Cols, Col: index % size.Cols}, true
}
