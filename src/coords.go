package src

import "github.com/asibahi/terminal-chess-app/src/base"

// Each board square occupies CellW columns x 1 row in the reference
// rendering, rank 8 at the top.
const CellW = 3

// CellToSquare maps a raw screen cell to a board square given the board's
// on-screen origin. Locations outside the 8x8 area map to nothing.
func CellToSquare(x, y, originX, originY int) (base.Square, bool) {
	dx := x - originX
	dy := y - originY
	if dx < 0 || dy < 0 {
		return base.Square{}, false
	}
	file := dx / CellW
	if file > 7 || dy > 7 {
		return base.Square{}, false
	}
	return base.NewSquare(file, 7-dy), true
}

// StepCursor moves one file or rank in the given direction. A step that
// would leave the board returns sq unchanged, never wraps.
func StepCursor(sq base.Square, d base.Dir) base.Square {
	switch d {
	case base.DirRight:
		if sq.File < 7 {
			sq.File++
		}
	case base.DirLeft:
		if sq.File > 0 {
			sq.File--
		}
	case base.DirUp:
		if sq.Rank < 7 {
			sq.Rank++
		}
	case base.DirDown:
		if sq.Rank > 0 {
			sq.Rank--
		}
	}
	return sq
}
