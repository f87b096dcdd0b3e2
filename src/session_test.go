package src

import (
	"io"
	"math/rand"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/asibahi/terminal-chess-app/src/base"
	"github.com/asibahi/terminal-chess-app/src/engine"
	"github.com/asibahi/terminal-chess-app/src/logx"
)

type fakeMove struct {
	from, to base.Square
	promo    base.Role
}

func (m fakeMove) From() base.Square    { return m.from }
func (m fakeMove) To() base.Square      { return m.to }
func (m fakeMove) Promotion() base.Role { return m.promo }

type fakePiece struct {
	c base.Color
	r base.Role
}

// fakeState is what the engine becomes after the next Apply.
type fakeState struct {
	legal []engine.Move
	mate  bool
	over  bool
}

type fakeEngine struct {
	legal   []engine.Move
	pieces  map[base.Square]fakePiece
	white   bool
	mate    bool
	over    bool
	applied []engine.Move
	script  []fakeState
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{pieces: map[base.Square]fakePiece{}, white: true}
}

func (e *fakeEngine) LegalMoves() []engine.Move { return e.legal }

func (e *fakeEngine) Apply(mv engine.Move) {
	e.applied = append(e.applied, mv)
	e.white = !e.white
	if len(e.script) > 0 {
		next := e.script[0]
		e.script = e.script[1:]
		e.legal, e.mate, e.over = next.legal, next.mate, next.over
	}
}

func (e *fakeEngine) PieceAt(sq base.Square) (base.Color, base.Role, bool) {
	p, ok := e.pieces[sq]
	return p.c, p.r, ok
}

func (e *fakeEngine) OccupiedBySideToMove(sq base.Square) bool {
	p, ok := e.pieces[sq]
	if !ok {
		return false
	}
	if e.white {
		return p.c == base.White
	}
	return p.c == base.Black
}

func (e *fakeEngine) IsCheckmate() bool { return e.mate }
func (e *fakeEngine) IsGameOver() bool  { return e.mate || e.over }
func (e *fakeEngine) WhiteToMove() bool { return e.white }
func (e *fakeEngine) FEN() string       { return "fake" }

func testLogger() logx.Logger {
	l := logx.NewLogx(zapcore.ErrorLevel, false, false)
	l.InitLogger(io.Discard)
	return l
}

func testSession(e engine.Engine) *Session {
	return NewSession(e, rand.New(rand.NewSource(1)), testLogger())
}

func sq(s string) base.Square {
	out, ok := base.ParseSquare(s)
	if !ok {
		panic("bad square " + s)
	}
	return out
}

func originShade(v BoardView) (base.Square, bool) {
	for i := range v {
		if v[i].Back == ShadeOrigin {
			return base.SquareFromIndex(i), true
		}
	}
	return base.Square{}, false
}

func TestEmptySquareWithNoOriginIsConsumedNoOp(t *testing.T) {
	e := newFakeEngine()
	s := testSession(e)
	before := s.Render()

	res := s.HandleInput(base.EventPointer{X: 12, Y: 4}) // e4, empty board
	if !res.Consumed {
		t.Fatal("event not consumed")
	}
	if res.Outcome != nil {
		t.Fatalf("unexpected outcome %v", *res.Outcome)
	}
	if len(e.applied) != 0 {
		t.Fatalf("applied %d moves, want 0", len(e.applied))
	}
	if s.Render() != before {
		t.Fatal("render changed after a no-op selection")
	}
}

func TestEnemyPieceNotSelectable(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("e7")] = fakePiece{c: base.Black, r: base.Pawn}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 12, Y: 1}) // e7
	if _, ok := originShade(s.Render()); ok {
		t.Fatal("enemy piece became the origin")
	}
}

func TestOwnPieceBecomesOrigin(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("e2")] = fakePiece{c: base.White, r: base.Pawn}
	s := testSession(e)

	res := s.HandleInput(base.EventPointer{X: 12, Y: 6}) // e2
	if !res.Consumed {
		t.Fatal("event not consumed")
	}
	origin, ok := originShade(s.Render())
	if !ok || origin != sq("e2") {
		t.Fatalf("origin highlight at %v (%v), want e2", origin, ok)
	}
}

func TestUnreachableDestinationResetsSelection(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("e2")] = fakePiece{c: base.White, r: base.Pawn}
	e.legal = []engine.Move{fakeMove{from: sq("e2"), to: sq("e4")}}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 0, Y: 7})  // a1... actually selects nothing
	s.HandleInput(base.EventPointer{X: 12, Y: 6}) // e2 origin
	res := s.HandleInput(base.EventPointer{X: 12, Y: 2})
	if !res.Consumed {
		t.Fatal("event not consumed")
	}
	if len(e.applied) != 0 {
		t.Fatal("move applied for unreachable destination")
	}
	if _, ok := originShade(s.Render()); ok {
		t.Fatal("selection not reset")
	}
}

func TestFinalizeAppliesHumanAndReply(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("e2")] = fakePiece{c: base.White, r: base.Pawn}
	human := fakeMove{from: sq("e2"), to: sq("e4")}
	reply := fakeMove{from: sq("e7"), to: sq("e5")}
	e.legal = []engine.Move{human}
	e.script = []fakeState{
		{legal: []engine.Move{reply}},
		{legal: []engine.Move{fakeMove{from: sq("a2"), to: sq("a3")}}},
	}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 12, Y: 6}) // e2
	res := s.HandleInput(base.EventPointer{X: 12, Y: 4})
	if res.Outcome != nil {
		t.Fatalf("unexpected outcome %v", *res.Outcome)
	}
	if len(e.applied) != 2 {
		t.Fatalf("applied %d moves, want 2", len(e.applied))
	}
	if e.applied[0] != engine.Move(human) || e.applied[1] != engine.Move(reply) {
		t.Fatalf("applied %v", e.applied)
	}
	if _, ok := originShade(s.Render()); ok {
		t.Fatal("selection not reset after finalize")
	}
}

func TestHumanCheckmateStopsBeforeReply(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("h5")] = fakePiece{c: base.White, r: base.Queen}
	mate := fakeMove{from: sq("h5"), to: sq("f7")}
	e.legal = []engine.Move{mate}
	e.script = []fakeState{{mate: true}}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 21, Y: 3}) // h5
	res := s.HandleInput(base.EventPointer{X: 15, Y: 1})
	if res.Outcome == nil || *res.Outcome != base.HumanWins {
		t.Fatalf("outcome = %v, want human wins", res.Outcome)
	}
	if len(e.applied) != 1 {
		t.Fatalf("applied %d moves after mate, want 1", len(e.applied))
	}
}

func TestStalemateAfterHumanMoveIsDraw(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("c2")] = fakePiece{c: base.White, r: base.Queen}
	mv := fakeMove{from: sq("c2"), to: sq("c7")}
	e.legal = []engine.Move{mv}
	e.script = []fakeState{{over: true}}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 6, Y: 6})
	res := s.HandleInput(base.EventPointer{X: 6, Y: 1})
	if res.Outcome == nil || *res.Outcome != base.Draw {
		t.Fatalf("outcome = %v, want draw", res.Outcome)
	}
	if len(e.applied) != 1 {
		t.Fatalf("applied %d moves, want 1", len(e.applied))
	}
}

func TestOpponentCheckmateReported(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("f2")] = fakePiece{c: base.White, r: base.Pawn}
	human := fakeMove{from: sq("f2"), to: sq("f3")}
	reply := fakeMove{from: sq("d8"), to: sq("h4")}
	e.legal = []engine.Move{human}
	e.script = []fakeState{
		{legal: []engine.Move{reply}},
		{mate: true},
	}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 15, Y: 6})
	res := s.HandleInput(base.EventPointer{X: 15, Y: 5})
	if res.Outcome == nil || *res.Outcome != base.OpponentWins {
		t.Fatalf("outcome = %v, want opponent wins", res.Outcome)
	}
	if len(e.applied) != 2 {
		t.Fatalf("applied %d moves, want 2", len(e.applied))
	}
}

func TestPromotionRequiresRole(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("a7")] = fakePiece{c: base.White, r: base.Pawn}
	var promos []engine.Move
	for _, r := range base.PromotableRoles {
		promos = append(promos, fakeMove{from: sq("a7"), to: sq("a8"), promo: r})
	}
	e.legal = promos
	e.script = []fakeState{
		{legal: []engine.Move{fakeMove{from: sq("h8"), to: sq("h7")}}},
		{legal: []engine.Move{fakeMove{from: sq("a2"), to: sq("a3")}}},
	}
	s := testSession(e)

	// selecting the pawn opens the role dialog
	s.HandleInput(base.EventPointer{X: 0, Y: 1}) // a7
	if !s.AwaitingPromotion() {
		t.Fatal("role dialog not opened for promoting pawn")
	}

	// destination before role: four candidates, nothing finalized
	res := s.HandleInput(base.EventPointer{X: 0, Y: 0}) // a8
	if !res.Consumed {
		t.Fatal("event not consumed")
	}
	if len(e.applied) != 0 {
		t.Fatal("ambiguous promotion was finalized")
	}
	if s.AwaitingPromotion() {
		t.Fatal("selection not reset")
	}
	if _, ok := originShade(s.Render()); ok {
		t.Fatal("origin survived the reset")
	}

	// reselect, choose knight, then the destination
	s.HandleInput(base.EventPointer{X: 0, Y: 1})
	if !s.AwaitingPromotion() {
		t.Fatal("role dialog did not reopen")
	}
	if res := s.HandleInput(base.EventPromote{Role: base.Knight}); !res.Consumed {
		t.Fatal("role choice not consumed")
	}
	if s.AwaitingPromotion() {
		t.Fatal("dialog still open after role choice")
	}
	s.HandleInput(base.EventPointer{X: 0, Y: 0})
	if len(e.applied) != 2 {
		t.Fatalf("applied %d moves, want 2", len(e.applied))
	}
	if e.applied[0].Promotion() != base.Knight {
		t.Fatalf("finalized promotion = %s, want knight", e.applied[0].Promotion())
	}
}

func TestPromotionDialogNotOpenedOffSeventhRank(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("e2")] = fakePiece{c: base.White, r: base.Pawn}
	e.legal = []engine.Move{fakeMove{from: sq("e2"), to: sq("e4")}}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 12, Y: 6})
	if s.AwaitingPromotion() {
		t.Fatal("dialog opened for a pawn far from promotion")
	}
}

func TestPromotionTriggerUsesMoverRank(t *testing.T) {
	// black pawn one rank before its own promotion rank
	e := newFakeEngine()
	e.white = false
	e.pieces[sq("b2")] = fakePiece{c: base.Black, r: base.Pawn}
	var promos []engine.Move
	for _, r := range base.PromotableRoles {
		promos = append(promos, fakeMove{from: sq("b2"), to: sq("b1"), promo: r})
	}
	e.legal = promos
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 3, Y: 6}) // b2
	if !s.AwaitingPromotion() {
		t.Fatal("dialog not opened for black pawn on rank 2")
	}
}

func TestPromoteEventIgnoredWithoutDialog(t *testing.T) {
	e := newFakeEngine()
	s := testSession(e)
	if res := s.HandleInput(base.EventPromote{Role: base.Queen}); res.Consumed {
		t.Fatal("stray role choice was consumed")
	}
}

func TestChangingOriginClearsStoredRole(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("a7")] = fakePiece{c: base.White, r: base.Pawn}
	e.pieces[sq("b2")] = fakePiece{c: base.White, r: base.Rook}
	var legal []engine.Move
	for _, r := range base.PromotableRoles {
		legal = append(legal, fakeMove{from: sq("a7"), to: sq("a8"), promo: r})
	}
	legal = append(legal, fakeMove{from: sq("b2"), to: sq("b4")})
	e.legal = legal
	e.script = []fakeState{{}, {}}
	s := testSession(e)

	s.HandleInput(base.EventPointer{X: 0, Y: 1}) // a7, dialog opens
	s.HandleInput(base.EventPromote{Role: base.Queen})
	// abandon the pawn: picking a non-promoting destination resets, then a
	// fresh origin selection clears the stored role
	s.HandleInput(base.EventPointer{X: 3, Y: 6}) // b2 is not reachable from a7 -> reset
	s.HandleInput(base.EventPointer{X: 3, Y: 6}) // now selects the rook
	origin, ok := originShade(s.Render())
	if !ok || origin != sq("b2") {
		t.Fatalf("origin = %v (%v), want b2", origin, ok)
	}
	if s.promoChoice != base.NoRole {
		t.Fatalf("stored role = %s, want none", s.promoChoice)
	}
}

func TestCursorSeedsAndSteps(t *testing.T) {
	e := newFakeEngine()
	s := testSession(e)

	if _, set := s.Cursor(); set {
		t.Fatal("cursor set before first keyboard event")
	}
	// first engagement seeds a1, does not step
	res := s.HandleInput(base.EventDirection{Dir: base.DirUp})
	if !res.Consumed {
		t.Fatal("seed event not consumed")
	}
	cur, set := s.Cursor()
	if !set || cur != sq("a1") {
		t.Fatalf("cursor = %v (%v), want a1", cur, set)
	}

	s.HandleInput(base.EventDirection{Dir: base.DirUp})
	s.HandleInput(base.EventDirection{Dir: base.DirRight})
	cur, _ = s.Cursor()
	if cur != sq("b2") {
		t.Fatalf("cursor = %v, want b2", cur)
	}
}

func TestCursorClampedAtFileH(t *testing.T) {
	e := newFakeEngine()
	s := testSession(e)
	s.HandleInput(base.EventDirection{Dir: base.DirRight}) // seeds a1
	for i := 0; i < 10; i++ {
		res := s.HandleInput(base.EventDirection{Dir: base.DirRight})
		if !res.Consumed {
			t.Fatal("clamped step not consumed")
		}
	}
	cur, _ := s.Cursor()
	if cur != sq("h1") {
		t.Fatalf("cursor = %v, want h1", cur)
	}
}

func TestConfirmSelectsCursorSquare(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("a1")] = fakePiece{c: base.White, r: base.Rook}
	s := testSession(e)

	s.HandleInput(base.EventConfirm{}) // seeds a1
	s.HandleInput(base.EventConfirm{}) // selects it
	origin, ok := originShade(s.Render())
	if !ok || origin != sq("a1") {
		t.Fatalf("origin = %v (%v), want a1", origin, ok)
	}
}

func TestCursorSurvivesFinalize(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("e2")] = fakePiece{c: base.White, r: base.Pawn}
	e.legal = []engine.Move{fakeMove{from: sq("e2"), to: sq("e3")}}
	e.script = []fakeState{
		{legal: []engine.Move{fakeMove{from: sq("e7"), to: sq("e6")}}},
		{},
	}
	s := testSession(e)

	s.HandleInput(base.EventDirection{Dir: base.DirUp}) // seed a1
	s.HandleInput(base.EventDirection{Dir: base.DirUp}) // a2
	s.HandleInput(base.EventPointer{X: 12, Y: 6})
	s.HandleInput(base.EventPointer{X: 12, Y: 5})
	cur, set := s.Cursor()
	if !set || cur != sq("a2") {
		t.Fatalf("cursor = %v (%v) after finalize, want a2", cur, set)
	}
}

func TestPointerOutsideBoardIgnored(t *testing.T) {
	e := newFakeEngine()
	e.pieces[sq("e2")] = fakePiece{c: base.White, r: base.Pawn}
	s := testSession(e)
	s.SetBoardOrigin(2, 1)

	if res := s.HandleInput(base.EventPointer{X: 0, Y: 5}); res.Consumed {
		t.Fatal("off-board pointer consumed")
	}
	if _, ok := originShade(s.Render()); ok {
		t.Fatal("off-board pointer changed selection")
	}
}
