package src

import "github.com/asibahi/terminal-chess-app/src/base"

// Shade is the background kind of one rendered square, most important last.
type Shade uint8

const (
	ShadeLight Shade = iota
	ShadeDark
	ShadeCursor
	ShadeOrigin
)

type SquareView struct {
	Glyph rune // 0 when the square is empty
	Back  Shade
}

// BoardView is indexed by base.Square.Index().
type BoardView [64]SquareView

// Render projects the current state into a per-square glyph and background.
// Pure, recomputed on every draw, never cached across mutations.
func (s *Session) Render() BoardView {
	var view BoardView
	for i := 0; i < 64; i++ {
		sq := base.SquareFromIndex(i)

		var glyph rune
		if c, r, ok := s.eng.PieceAt(sq); ok {
			glyph = base.Glyph(c, r)
		}

		back := ShadeLight
		if sq.Dark() {
			back = ShadeDark
		}
		if s.cursorSet && sq == s.cursor {
			back = ShadeCursor
		}
		if s.sel != selNone && sq == s.origin {
			back = ShadeOrigin
		}

		view[i] = SquareView{Glyph: glyph, Back: back}
	}
	return view
}
