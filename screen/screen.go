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
package screen

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	gout "github.com/timburks/gout/types"
)

// The Screen draws the state of an Editor. The top rows are the
// outline; the last two are the info bar and the message bar.
type Screen struct {
	size gout.Size // screen size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e gout.Editor, c gout.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize gout.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	outlineSize := screenSize
	outlineSize.Rows -= 2
	e.Render(s, outlineSize)

	s.RenderInfoBar(e, c)
	s.RenderMessageBar(e, c)
	termbox.SetCursor(e.GetCursor().Col, e.GetCursor().Row)
	termbox.Flush()
}

func (s *Screen) SetCell(j int, i int, c rune, color gout.Color) {
	termbox.SetCell(j, i, c, attribute(color), 0x01)
}

func attribute(color gout.Color) termbox.Attribute {
	switch color {
	case gout.ColorWhite:
		return termbox.ColorWhite
	case gout.ColorBlack:
		return termbox.ColorBlack
	case gout.ColorYellow:
		return termbox.ColorYellow
	default:
		return termbox.ColorDefault
	}
}

func (s *Screen) RenderInfoBar(e gout.Editor, c gout.Commander) {
	cursor := e.GetCursor()
	finalText := fmt.Sprintf(" %d bullets - %d @ %d,%d ",
		e.BulletCount(), e.ActiveID(), cursor.Row, cursor.Col)
	text := " the gout outliner "
	for runewidth.StringWidth(text) < s.size.Cols-runewidth.StringWidth(finalText)-1 {
		text = text + " "
	}
	text += finalText
	text = runewidth.Truncate(text, s.size.Cols, "")
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) RenderMessageBar(e gout.Editor, c gout.Commander) {
	var line string
	switch c.GetMode() {
	case gout.ModeLisp:
		line += c.GetLispText()
	case gout.ModeInsert:
		line += "-- INSERT -- " + c.GetMessage()
	default:
		line += c.GetMessage()
	}
	line = runewidth.Truncate(line, s.size.Cols, "")
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) GetNextEvent() *gout.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &gout.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) gout.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gout.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gout.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gout.KeyArrowRight
	case termbox.KeyArrowUp:
		return gout.KeyArrowUp
	case termbox.KeyBackspace:
		return gout.KeyBackspace
	case termbox.KeyBackspace2:
		return gout.KeyBackspace2
	case termbox.KeyCtrlC:
		return gout.KeyCtrlC
	case termbox.KeyCtrlD:
		return gout.KeyCtrlD
	case termbox.KeyCtrlT:
		return gout.KeyCtrlT
	case termbox.KeyEnd:
		return gout.KeyEnd
	case termbox.KeyEnter:
		return gout.KeyEnter
	case termbox.KeyEsc:
		return gout.KeyEsc
	case termbox.KeyHome:
		return gout.KeyHome
	case termbox.KeySpace:
		return gout.KeySpace
	case termbox.KeyTab:
		return gout.KeyTab
	default:
		return gout.KeyUnsupported
	}
}
