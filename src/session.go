package src

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/asibahi/terminal-chess-app/src/base"
	"github.com/asibahi/terminal-chess-app/src/engine"
	"github.com/asibahi/terminal-chess-app/src/logx"
)

type selState uint8

const (
	selNone selState = iota
	selOrigin
	selPromotion // origin selected, role dialog open
)

// Session is the interaction state machine for one game: it owns selection,
// cursor and promotion-choice state plus a handle to the position engine.
// Single-threaded; one input event is processed to completion before the
// next is accepted.
type Session struct {
	id     uuid.UUID
	eng    engine.Engine
	rng    *rand.Rand
	logger logx.Logger

	sel         selState
	origin      base.Square
	promoChoice base.Role

	// keyboard cursor, independent of selection; seeded on first use and
	// kept across turns
	cursor    base.Square
	cursorSet bool

	// board top-left on screen, used to resolve pointer events
	originX int
	originY int
}

func NewSession(eng engine.Engine, rng *rand.Rand, logger logx.Logger) *Session {
	s := &Session{
		id:     uuid.New(),
		eng:    eng,
		rng:    rng,
		logger: logger,
	}
	s.logger.Infof("new session %s: %s", s.id, eng.FEN())
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) SetBoardOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// AwaitingPromotion tells the host to present the role-choice dialog.
func (s *Session) AwaitingPromotion() bool {
	return s.sel == selPromotion
}

func (s *Session) Cursor() (base.Square, bool) {
	return s.cursor, s.cursorSet
}

func (s *Session) Engine() engine.Engine { return s.eng }

// HandleInput is the single dispatcher for host events. A non-nil Outcome
// means the game ended this event and the host should tear the view down.
func (s *Session) HandleInput(ev base.InputEvent) base.InputResult {
	switch e := ev.(type) {
	case base.EventPointer:
		sq, ok := CellToSquare(e.X, e.Y, s.originX, s.originY)
		if !ok {
			return base.InputResult{}
		}
		return s.handleSquareChosen(sq)

	case base.EventDirection:
		if !s.cursorSet {
			s.cursor = base.NewSquare(0, 0)
			s.cursorSet = true
			return base.InputResult{Consumed: true}
		}
		s.cursor = StepCursor(s.cursor, e.Dir)
		return base.InputResult{Consumed: true}

	case base.EventConfirm:
		if !s.cursorSet {
			s.cursor = base.NewSquare(0, 0)
			s.cursorSet = true
			return base.InputResult{Consumed: true}
		}
		return s.handleSquareChosen(s.cursor)

	case base.EventPromote:
		if s.sel != selPromotion {
			return base.InputResult{}
		}
		s.logger.Debugf("promotion role chosen: %s", e.Role)
		s.promoChoice = e.Role
		s.sel = selOrigin
		return base.InputResult{Consumed: true}
	}
	return base.InputResult{}
}

func (s *Session) handleSquareChosen(sq base.Square) base.InputResult {
	switch s.sel {
	case selNone:
		if !s.eng.OccupiedBySideToMove(sq) {
			// empty or enemy square, nothing to do
			return base.InputResult{Consumed: true}
		}
		s.origin = sq
		s.sel = selOrigin
		s.promoChoice = base.NoRole
		if s.promotionTrigger(sq) {
			s.logger.Debugf("origin %s has promoting moves, opening role dialog", sq)
			s.sel = selPromotion
		}
		return base.InputResult{Consumed: true}

	default:
		// selOrigin and selPromotion resolve destinations the same way: a
		// destination chosen before a role only finalizes when unambiguous
		var matches []engine.Move
		for _, mv := range s.eng.LegalMoves() {
			if mv.From() != s.origin || mv.To() != sq {
				continue
			}
			if s.promoChoice != base.NoRole && mv.Promotion() != s.promoChoice {
				continue
			}
			matches = append(matches, mv)
		}
		if len(matches) == 1 {
			outcome := s.finalize(matches[0])
			if outcome != base.Ongoing {
				return base.InputResult{Consumed: true, Outcome: &outcome}
			}
			return base.InputResult{Consumed: true}
		}
		// changed my mind, or no legal move to that square
		s.sel = selNone
		s.promoChoice = base.NoRole
		return base.InputResult{Consumed: true}
	}
}

// promotionTrigger reports whether the piece on sq is the mover's pawn one
// rank before its promotion rank with at least one promoting move available.
func (s *Session) promotionTrigger(sq base.Square) bool {
	c, r, ok := s.eng.PieceAt(sq)
	if !ok || r != base.Pawn {
		return false
	}
	if c == base.White && sq.Rank != 6 {
		return false
	}
	if c == base.Black && sq.Rank != 1 {
		return false
	}
	for _, mv := range s.eng.LegalMoves() {
		if mv.From() == sq && mv.Promotion() != base.NoRole {
			return true
		}
	}
	return false
}

// finalize runs a full turn: human ply, terminal check, opponent reply,
// terminal check. Selection always resets; the cursor stays where it was.
func (s *Session) finalize(mv engine.Move) base.GameOutcome {
	defer func() {
		s.sel = selNone
		s.promoChoice = base.NoRole
	}()

	s.logger.Infof("session %s: play %s%s promo=%s", s.id, mv.From(), mv.To(), mv.Promotion())
	s.eng.Apply(mv)

	if s.eng.IsCheckmate() {
		s.logger.Infof("session %s: checkmate by human", s.id)
		return base.HumanWins
	}
	if s.eng.IsGameOver() {
		s.logger.Infof("session %s: drawn after human move", s.id)
		return base.Draw
	}

	reply := ChooseUniform(s.rng, s.eng.LegalMoves())
	s.logger.Infof("session %s: reply %s%s promo=%s", s.id, reply.From(), reply.To(), reply.Promotion())
	s.eng.Apply(reply)

	if s.eng.IsCheckmate() {
		s.logger.Infof("session %s: checkmate by opponent", s.id)
		return base.OpponentWins
	}
	if s.eng.IsGameOver() {
		s.logger.Infof("session %s: drawn after reply", s.id)
		return base.Draw
	}
	return base.Ongoing
}
