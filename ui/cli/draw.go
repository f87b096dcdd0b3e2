package cli

import (
	"fmt"
	"io"

	"github.com/asibahi/terminal-chess-app/src"
	"github.com/asibahi/terminal-chess-app/src/base"
)

// PrintBoard renders the session's per-square table with ANSI backgrounds,
// rank 8 at the top, 3-column cells.
func PrintBoard(out io.Writer, view src.BoardView, style string) {
	// ANSI-code
	const (
		reset    = "\033[0m"
		lightBg  = "\033[47m"
		darkBg   = "\033[100m"
		originBg = "\033[43m"  // dark yellow, selected origin
		cursorBg = "\033[103m" // light yellow, keyboard cursor
		whiteF   = "\033[97m"
		blackF   = "\033[30m"
	)

	shadeBg := func(s src.Shade) string {
		switch s {
		case src.ShadeOrigin:
			return originBg
		case src.ShadeCursor:
			return cursorBg
		case src.ShadeDark:
			return darkBg
		default:
			return lightBg
		}
	}

	fmt.Fprint(out, "   a  b  c  d  e  f  g  h\r\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(out, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sv := view[base.NewSquare(file, rank).Index()]

			g := sv.Glyph
			fg := blackF
			if g == 0 {
				g = ' '
			} else if color, role, ok := base.GlyphPiece(g); ok {
				if style == "ascii" {
					g = base.GlyphASCII(color, role)
				}
				if color == base.White && sv.Back == src.ShadeDark {
					fg = whiteF
				}
			}

			fmt.Fprintf(out, "%s%s %c %s", shadeBg(sv.Back), fg, g, reset)
		}
		fmt.Fprintf(out, " %d\r\n", rank+1)
	}
	fmt.Fprint(out, "   a  b  c  d  e  f  g  h\r\n")
}
