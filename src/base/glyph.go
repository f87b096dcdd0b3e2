package base

// Piece -> unicode glyph, twelve symbols: six roles x two colors.
var glyphs = map[Color]map[Role]rune{
	White: {
		King:   '♔',
		Queen:  '♕',
		Rook:   '♖',
		Bishop: '♗',
		Knight: '♘',
		Pawn:   '♙',
	},
	Black: {
		King:   '♚',
		Queen:  '♛',
		Rook:   '♜',
		Bishop: '♝',
		Knight: '♞',
		Pawn:   '♟',
	},
}

// ASCII letters for terminals without the chess glyphs and for the GUI font.
var asciiGlyphs = map[Role]rune{
	King:   'K',
	Queen:  'Q',
	Rook:   'R',
	Bishop: 'B',
	Knight: 'N',
	Pawn:   'P',
}

func Glyph(c Color, r Role) rune {
	return glyphs[c][r]
}

func GlyphASCII(c Color, r Role) rune {
	g := asciiGlyphs[r]
	if c == Black {
		g += 'a' - 'A'
	}
	return g
}

// GlyphPiece is the reverse lookup used by hosts that restyle glyphs.
func GlyphPiece(g rune) (Color, Role, bool) {
	for c, roles := range glyphs {
		for r, sym := range roles {
			if sym == g {
				return c, r, true
			}
		}
	}
	return White, NoRole, false
}
