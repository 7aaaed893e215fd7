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
	"testing"

	"github.com/timburks/gout/types"
)

func TestLinearMove(t *testing.T) {
	size := types.Size{Rows: 10, Cols: 10}

	pos, ok := LinearMove(types.Point{Row: 1, Col: 1}, size, 11)
	if !ok || pos != (types.Point{Row: 2, Col: 2}) {
		t.Errorf("expected (2,2), got %v ok=%v", pos, ok)
	}
	pos, ok = LinearMove(types.Point{Row: 1, Col: 1}, size, -11)
	if !ok || pos != (types.Point{Row: 0, Col: 0}) {
		t.Errorf("expected (0,0), got %v ok=%v", pos, ok)
	}
	// wrapping across a row boundary
	pos, ok = LinearMove(types.Point{Row: 0, Col: 9}, size, 1)
	if !ok || pos != (types.Point{Row: 1, Col: 0}) {
		t.Errorf("expected (1,0), got %v ok=%v", pos, ok)
	}
	// off either end
	if _, ok = LinearMove(types.Point{Row: 0, Col: 0}, size, -1); ok {
		t.Errorf("expected failure moving before the grid")
	}
	if _, ok = LinearMove(types.Point{Row: 9, Col: 9}, size, 1); ok {
		t.Errorf("expected failure moving past the grid")
	}
}

func TestPushAndGet(t *testing.T) {
	r := New(types.Size{Rows: 2, Cols: 3})
	r.Push(BulletCell(1))
	r.Push(FillerCell(1))
	r.PushRepeat(TextCell(1, 0), 1)

	cell, ok := r.Get(types.Point{Row: 0, Col: 0})
	if !ok || cell.Kind != Bullet || cell.ID != 1 {
		t.Errorf("unexpected cell %+v", cell)
	}
	cell, ok = r.Get(types.Point{Row: 0, Col: 2})
	if !ok || cell.Kind != Text || cell.Offset != 0 {
		t.Errorf("unexpected cell %+v", cell)
	}
	// cells never pushed read back Empty
	cell, ok = r.Get(types.Point{Row: 1, Col: 2})
	if !ok || cell.Kind != Empty {
		t.Errorf("unexpected cell %+v", cell)
	}
	if _, ok = r.Get(types.Point{Row: 2, Col: 0}); ok {
		t.Errorf("expected out-of-bounds get to fail")
	}
}

func TestCursorTracksPushes(t *testing.T) {
	r := New(types.Size{Rows: 2, Cols: 2})
	if r.Cursor() != (types.Point{Row: 0, Col: 0}) {
		t.Errorf("unexpected cursor %v", r.Cursor())
	}
	r.PushRepeat(Cell{}, 3)
	if r.Cursor() != (types.Point{Row: 1, Col: 1}) {
		t.Errorf("unexpected cursor %v", r.Cursor())
	}
	if r.Full() {
		t.Errorf("raster reported full early")
	}
	r.Push(Cell{})
	if !r.Full() {
		t.Errorf("raster not full after last push")
	}
}

func TestBrowsable(t *testing.T) {
	if !TextCell(1, 0).Browsable() || !PlaceholderCell(1).Browsable() {
		t.Errorf("text and placeholder cells must be browsable")
	}
	if BulletCell(1).Browsable() || FillerCell(1).Browsable() || (Cell{}).Browsable() {
		t.Errorf("marker, filler, and empty cells must not be browsable")
	}
}
