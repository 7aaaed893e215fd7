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

import "github.com/timburks/gout/types"

// A Browser is a read cursor over a raster. It is a value: every
// motion returns a new browser and leaves the receiver untouched, so a
// failed compound motion cannot corrupt the caller's position. On
// error the returned browser holds the last valid position reached,
// letting callers see how far the motion got.
type Browser struct {
	raster *Raster
	pos    types.Point
}

func (b Browser) Pos() types.Point {
	return b.pos
}

// Cell returns the cell under the browser.
func (b Browser) Cell() Cell {
	c, _ := b.raster.Get(b.pos)
	return c
}

// step moves one cell along row-major order, wrapping across rows.
func (b Browser) step(direction types.Direction) (Browser, error) {
	offset := 1
	if direction == types.MoveLeft {
		offset = -1
	}
	pos, ok := LinearMove(b.pos, b.raster.size, offset)
	if !ok {
		return b, ErrOutOfBounds
	}
	return Browser{raster: b.raster, pos: pos}, nil
}

// GoWhile steps in a direction, wrapping across rows, as long as the
// landed cell satisfies the predicate. It always steps at least once
// and stops on the first cell where the predicate fails.
func (b Browser) GoWhile(direction types.Direction, predicate func(Cell) bool) (Browser, error) {
	current := b
	for {
		next, err := current.step(direction)
		if err != nil {
			return current, err
		}
		current = next
		if !predicate(current.Cell()) {
			return current, nil
		}
	}
}

// GoWhileOrCount is GoWhile with a step budget. Exhausting the budget
// while the predicate still holds fails with ErrPredicateUnsatisfied;
// the returned browser sits where the search gave up.
func (b Browser) GoWhileOrCount(direction types.Direction, count int, predicate func(Cell) bool) (Browser, error) {
	current := b
	for i := 0; i < count; i++ {
		next, err := current.step(direction)
		if err != nil {
			return current, err
		}
		current = next
		if !predicate(current.Cell()) {
			return current, nil
		}
	}
	if predicate(current.Cell()) {
		return current, ErrPredicateUnsatisfied
	}
	return current, nil
}

// GoUntilCount steps in a direction, wrapping across rows, until it
// has landed on count cells satisfying the predicate; it stops on the
// last of them. Hitting the grid edge first fails.
func (b Browser) GoUntilCount(direction types.Direction, count int, predicate func(Cell) bool) (Browser, error) {
	current := b
	for matched := 0; matched < count; {
		next, err := current.step(direction)
		if err != nil {
			return current, err
		}
		current = next
		if predicate(current.Cell()) {
			matched++
		}
	}
	return current, nil
}

// GoNoWrap jumps count cells in a cardinal direction without row
// wrapping. A jump that leaves the grid fails with the position
// unchanged.
func (b Browser) GoNoWrap(direction types.Direction, count int) (Browser, error) {
	target := b.pos
	switch direction {
	case types.MoveUp:
		target.Row -= count
	case types.MoveDown:
		target.Row += count
	case types.MoveLeft:
		target.Col -= count
	case types.MoveRight:
		target.Col += count
	}
	if !b.raster.contains(target) {
		return b, ErrOutOfBounds
	}
	return Browser{raster: b.raster, pos: target}, nil
}

// GoWrap jumps count cells along row-major order, wrapping across
// rows.
func (b Browser) GoWrap(direction types.Direction, count int) (Browser, error) {
	offset := count
	if direction == types.MoveLeft {
		offset = -count
	}
	pos, ok := LinearMove(b.pos, b.raster.size, offset)
	if !ok {
		return b, ErrOutOfBounds
	}
	return Browser{raster: b.raster, pos: pos}, nil
}

// Map threads a browser through a motion pipeline, turning the result
// into a value. It exists so compound motions read as one expression.
func Map[T any](b Browser, f func(Browser) (T, error)) (T, error) {
	return f(b)
}
