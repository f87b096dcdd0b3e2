package chesslib

import (
	"fmt"

	nchess "github.com/corentings/chess/v2"

	"github.com/asibahi/terminal-chess-app/src/base"
	"github.com/asibahi/terminal-chess-app/src/engine"
)

// Engine adapts corentings/chess/v2 to the narrow interface the session
// consumes.
type Engine struct {
	game *nchess.Game
}

func New() *Engine {
	return &Engine{game: nchess.NewGame()}
}

func NewFromFEN(fen string) (*Engine, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("error parse FEN: %w", err)
	}
	return &Engine{game: nchess.NewGame(opt)}, nil
}

type Move struct {
	mv *nchess.Move
}

func (m Move) From() base.Square {
	return squareOf(m.mv.S1())
}

func (m Move) To() base.Square {
	return squareOf(m.mv.S2())
}

func (m Move) Promotion() base.Role {
	return roleOf(m.mv.Promo())
}

func (m Move) String() string {
	return m.mv.String()
}

func (e *Engine) LegalMoves() []engine.Move {
	valid := e.game.ValidMoves()
	out := make([]engine.Move, 0, len(valid))
	for i := range valid {
		out = append(out, Move{mv: &valid[i]})
	}
	return out
}

func (e *Engine) Apply(mv engine.Move) {
	m, ok := mv.(Move)
	if !ok {
		panic(fmt.Sprintf("chesslib: foreign move %v", mv))
	}
	if err := e.game.Move(m.mv, nil); err != nil {
		// only reachable when fed a move that is not from our legal set
		panic(fmt.Sprintf("chesslib: illegal move %s: %v", m.mv, err))
	}
}

func (e *Engine) PieceAt(sq base.Square) (base.Color, base.Role, bool) {
	p := e.game.Position().Board().Piece(nativeSquare(sq))
	if p == nchess.NoPiece {
		return base.White, base.NoRole, false
	}
	return colorOf(p.Color()), roleOf(p.Type()), true
}

func (e *Engine) OccupiedBySideToMove(sq base.Square) bool {
	p := e.game.Position().Board().Piece(nativeSquare(sq))
	return p != nchess.NoPiece && p.Color() == e.game.Position().Turn()
}

func (e *Engine) IsCheckmate() bool {
	return e.game.Method() == nchess.Checkmate
}

func (e *Engine) IsGameOver() bool {
	return e.game.Outcome() != nchess.NoOutcome
}

func (e *Engine) WhiteToMove() bool {
	return e.game.Position().Turn() == nchess.White
}

func (e *Engine) FEN() string {
	return e.game.FEN()
}

// squares in corentings/chess are numbered a1=0 .. h8=63, rank-major
func squareOf(sq nchess.Square) base.Square {
	return base.SquareFromIndex(int(sq))
}

func nativeSquare(sq base.Square) nchess.Square {
	return nchess.Square(sq.Index())
}

func colorOf(c nchess.Color) base.Color {
	if c == nchess.White {
		return base.White
	}
	return base.Black
}

func roleOf(t nchess.PieceType) base.Role {
	switch t {
	case nchess.Pawn:
		return base.Pawn
	case nchess.Knight:
		return base.Knight
	case nchess.Bishop:
		return base.Bishop
	case nchess.Rook:
		return base.Rook
	case nchess.Queen:
		return base.Queen
	case nchess.King:
		return base.King
	default:
		return base.NoRole
	}
}
