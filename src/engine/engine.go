package engine

import "github.com/asibahi/terminal-chess-app/src/base"

// Move is an opaque value produced by an Engine. The controller never builds
// one itself, it only picks from the engine's legal set.
type Move interface {
	From() base.Square
	To() base.Square
	Promotion() base.Role // NoRole when the move is not a promotion
}

// Engine owns board state and is the sole authority on legality and
// termination. See chesslib for the production implementation.
type Engine interface {
	// LegalMoves returns the full legal-move set for the side to move.
	LegalMoves() []Move
	// Apply mutates the position. The move must come from this engine's
	// own legal set.
	Apply(mv Move)
	PieceAt(sq base.Square) (base.Color, base.Role, bool)
	OccupiedBySideToMove(sq base.Square) bool
	IsCheckmate() bool
	// IsGameOver is true for checkmate, stalemate and any other terminal
	// condition the engine recognizes.
	IsGameOver() bool
	WhiteToMove() bool
	FEN() string
}
