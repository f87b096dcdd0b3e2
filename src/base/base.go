package base

import "fmt"

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// PromotableRoles in dialog order.
var PromotableRoles = [4]Role{Queen, Rook, Bishop, Knight}

// Square addresses one of 64 cells, file a..h = 0..7, rank 1..8 = 0..7.
type Square struct {
	File uint8
	Rank uint8
}

func NewSquare(file, rank int) Square {
	return Square{File: uint8(file), Rank: uint8(rank)}
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// Dark reports the intrinsic checkerboard color (a1 is dark).
func (s Square) Dark() bool {
	return (s.File+s.Rank)%2 == 0
}

func (s Square) Index() int {
	return int(s.Rank)*8 + int(s.File)
}

func SquareFromIndex(i int) Square {
	return Square{File: uint8(i % 8), Rank: uint8(i / 8)}
}

func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	f := s[0]
	r := s[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Square{}, false
	}
	return Square{File: f - 'a', Rank: r - '1'}, true
}

type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// InputEvent is the tagged variant consumed by the session dispatcher:
// a pointer cell, a cursor step, a confirm, or a promotion role choice.
type InputEvent interface {
	inputEvent()
}

type EventPointer struct {
	X int // screen column, cells
	Y int // screen row
}

type EventDirection struct {
	Dir Dir
}

type EventConfirm struct{}

type EventPromote struct {
	Role Role
}

func (EventPointer) inputEvent()   {}
func (EventDirection) inputEvent() {}
func (EventConfirm) inputEvent()   {}
func (EventPromote) inputEvent()   {}

type GameOutcome uint8

const (
	Ongoing GameOutcome = iota
	HumanWins
	OpponentWins
	Draw
)

func (o GameOutcome) String() string {
	switch o {
	case HumanWins:
		return "human wins"
	case OpponentWins:
		return "opponent wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Message is the modal text the hosts show when a session ends.
func (o GameOutcome) Message() string {
	switch o {
	case HumanWins:
		return "Game Over. You win."
	case OpponentWins:
		return "Game Over. I win."
	default:
		return "Game Over."
	}
}

// InputResult is what the host gets back for every event it forwards.
type InputResult struct {
	Consumed bool
	Outcome  *GameOutcome
}
