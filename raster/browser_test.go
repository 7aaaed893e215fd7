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
package raster

import (
	"errors"
	"testing"

	"github.com/timburks/gout/types"
)

// testRaster builds the image of two short bullets:
//
//	• ab
//	• c
//
// on a 3x5 grid; the last row is empty.
func testRaster(t *testing.T) *Raster {
	t.Helper()
	r := New(types.Size{Rows: 3, Cols: 5})
	r.Push(BulletCell(1))
	r.Push(FillerCell(1))
	r.Push(TextCell(1, 0))
	r.Push(TextCell(1, 1))
	r.Push(Cell{})
	r.Push(BulletCell(2))
	r.Push(FillerCell(2))
	r.Push(TextCell(2, 0))
	r.PushRepeat(Cell{}, 2)
	return r
}

func browsable(c Cell) bool {
	return c.Browsable()
}

func notBrowsable(c Cell) bool {
	return !c.Browsable()
}

func TestBrowserRejectsInvalidStart(t *testing.T) {
	r := testRaster(t)
	if _, err := r.Browser(types.Point{Row: 3, Col: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected out of bounds, got %v", err)
	}
}

func TestGoWhileCrossesMargins(t *testing.T) {
	r := testRaster(t)
	b, err := r.Browser(types.Point{Row: 0, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	// from the first rune of bullet 1, skipping non-content cells
	// backward fails at the grid edge
	if _, err := b.GoWhile(types.MoveLeft, notBrowsable); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected out of bounds, got %v", err)
	}
	// forward from the last rune, the next content is bullet 2's text
	b, err = r.Browser(types.Point{Row: 0, Col: 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err = b.GoWhile(types.MoveRight, notBrowsable)
	if err != nil {
		t.Fatal(err)
	}
	if b.Pos() != (types.Point{Row: 1, Col: 2}) {
		t.Errorf("unexpected position %v", b.Pos())
	}
	if cell := b.Cell(); cell.ID != 2 || cell.Offset != 0 {
		t.Errorf("unexpected cell %+v", cell)
	}
}

func TestGoWhileFailureKeepsLastValidPosition(t *testing.T) {
	r := testRaster(t)
	b, err := r.Browser(types.Point{Row: 1, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	// nothing browsable after bullet 2: the browser runs to the grid
	// end and reports how far it got
	moved, err := b.GoWhile(types.MoveRight, notBrowsable)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected out of bounds, got %v", err)
	}
	if moved.Pos() != (types.Point{Row: 2, Col: 4}) {
		t.Errorf("unexpected position %v", moved.Pos())
	}
	// the receiver is untouched
	if b.Pos() != (types.Point{Row: 1, Col: 2}) {
		t.Errorf("receiver moved to %v", b.Pos())
	}
}

func TestGoWhileOrCount(t *testing.T) {
	r := testRaster(t)
	b, err := r.Browser(types.Point{Row: 1, Col: 1})
	if err != nil {
		t.Fatal(err)
	}
	// budget reaches the text one step left of it
	moved, err := b.GoWhileOrCount(types.MoveRight, 3, notBrowsable)
	if err != nil {
		t.Fatal(err)
	}
	if moved.Pos() != (types.Point{Row: 1, Col: 2}) {
		t.Errorf("unexpected position %v", moved.Pos())
	}
	// too small a budget gives up inside the margin
	b, err = r.Browser(types.Point{Row: 2, Col: 4})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.GoWhileOrCount(types.MoveLeft, 1, notBrowsable); !errors.Is(err, ErrPredicateUnsatisfied) {
		t.Errorf("expected predicate unsatisfied, got %v", err)
	}
}

func TestGoUntilCount(t *testing.T) {
	r := testRaster(t)
	b, err := r.Browser(types.Point{Row: 0, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	// the second content cell to the right lives on the next row
	moved, err := b.GoUntilCount(types.MoveRight, 2, browsable)
	if err != nil {
		t.Fatal(err)
	}
	if moved.Pos() != (types.Point{Row: 1, Col: 2}) {
		t.Errorf("unexpected position %v", moved.Pos())
	}
	// asking for more content than the grid holds fails
	if _, err := b.GoUntilCount(types.MoveRight, 3, browsable); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected out of bounds, got %v", err)
	}
}

func TestGoNoWrap(t *testing.T) {
	r := testRaster(t)
	b, err := r.Browser(types.Point{Row: 0, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	moved, err := b.GoNoWrap(types.MoveDown, 1)
	if err != nil {
		t.Fatal(err)
	}
	if moved.Pos() != (types.Point{Row: 1, Col: 2}) {
		t.Errorf("unexpected position %v", moved.Pos())
	}
	// vertical motion does not wrap around columns
	if _, err := b.GoNoWrap(types.MoveUp, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected out of bounds, got %v", err)
	}
	if _, err := b.GoNoWrap(types.MoveRight, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected out of bounds, got %v", err)
	}
}

func TestGoWrap(t *testing.T) {
	r := testRaster(t)
	b, err := r.Browser(types.Point{Row: 0, Col: 4})
	if err != nil {
		t.Fatal(err)
	}
	moved, err := b.GoWrap(types.MoveRight, 3)
	if err != nil {
		t.Fatal(err)
	}
	if moved.Pos() != (types.Point{Row: 1, Col: 2}) {
		t.Errorf("unexpected position %v", moved.Pos())
	}
	moved, err = moved.GoWrap(types.MoveLeft, 7)
	if err != nil {
		t.Fatal(err)
	}
	if moved.Pos() != (types.Point{Row: 0, Col: 0}) {
		t.Errorf("unexpected position %v", moved.Pos())
	}
}

func TestMap(t *testing.T) {
	r := testRaster(t)
	b, err := r.Browser(types.Point{Row: 0, Col: 0})
	if err != nil {
		t.Fatal(err)
	}
	id, err := Map(b, func(b Browser) (int, error) {
		moved, err := b.GoWhile(types.MoveRight, notBrowsable)
		if err != nil {
			return 0, err
		}
		return moved.Cell().ID, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
}
