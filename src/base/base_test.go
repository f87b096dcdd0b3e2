package base

import "testing"

func TestSquareStringAndParse(t *testing.T) {
	tests := []struct {
		file, rank int
		want       string
	}{
		{0, 0, "a1"},
		{7, 7, "h8"},
		{4, 1, "e2"},
		{2, 6, "c7"},
	}
	for _, tt := range tests {
		s := NewSquare(tt.file, tt.rank)
		if s.String() != tt.want {
			t.Errorf("square (%d,%d) = %s, want %s", tt.file, tt.rank, s, tt.want)
		}
		parsed, ok := ParseSquare(tt.want)
		if !ok || parsed != s {
			t.Errorf("parse %s = %v (%v)", tt.want, parsed, ok)
		}
	}

	for _, bad := range []string{"", "e", "e9", "i2", "22", "ee"} {
		if _, ok := ParseSquare(bad); ok {
			t.Errorf("parse %q accepted", bad)
		}
	}
}

func TestSquareIndexRoundtrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		if got := SquareFromIndex(i).Index(); got != i {
			t.Fatalf("index %d roundtrips to %d", i, got)
		}
	}
}

func TestSquareDark(t *testing.T) {
	a1, _ := ParseSquare("a1")
	h1, _ := ParseSquare("h1")
	e4, _ := ParseSquare("e4")
	if !a1.Dark() {
		t.Error("a1 should be dark")
	}
	if h1.Dark() {
		t.Error("h1 should be light")
	}
	if e4.Dark() {
		t.Error("e4 should be light")
	}
}

func TestGlyphTableDistinct(t *testing.T) {
	seen := map[rune]bool{}
	for _, c := range []Color{White, Black} {
		for _, r := range []Role{Pawn, Knight, Bishop, Rook, Queen, King} {
			g := Glyph(c, r)
			if g == 0 {
				t.Fatalf("no glyph for %s %s", c, r)
			}
			if seen[g] {
				t.Fatalf("duplicate glyph %q", g)
			}
			seen[g] = true

			gotC, gotR, ok := GlyphPiece(g)
			if !ok || gotC != c || gotR != r {
				t.Fatalf("reverse lookup %q = %s %s (%v)", g, gotC, gotR, ok)
			}
		}
	}
	if len(seen) != 12 {
		t.Fatalf("%d glyphs, want 12", len(seen))
	}
}

func TestGlyphASCIICase(t *testing.T) {
	if GlyphASCII(White, Knight) != 'N' {
		t.Error("white knight should be N")
	}
	if GlyphASCII(Black, Knight) != 'n' {
		t.Error("black knight should be n")
	}
}
