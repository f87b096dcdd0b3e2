package gdraw

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/asibahi/terminal-chess-app/src"
	"github.com/asibahi/terminal-chess-app/src/base"
	"github.com/asibahi/terminal-chess-app/ui/gui/gctx"
	"github.com/asibahi/terminal-chess-app/ui/gui/ghelper"
)

// PlayDrawer is the single scene: the board, arrow/space input, click-click
// moves and the promotion button row.
type PlayDrawer struct {
	// layout
	boardX, boardY int // top-left pixel
	boardSize      int
	sqSize         int

	session *src.Session

	promoButtons  []*ghelper.Button
	prevMouseDown bool

	face font.Face
}

func NewPlayDrawer(ctx *gctx.GUIGameContext) *PlayDrawer {
	pd := &PlayDrawer{
		session: ctx.Fresh(),
		face:    basicfont.Face7x13,
	}
	pd.recalcLayout(ctx)
	pd.makePromoButtons(ctx)
	return pd
}

func (pd *PlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	ww := ctx.Conf.WindowW
	wh := ctx.Conf.WindowH

	maxSize := ww - 40
	if maxSize > wh-160 {
		maxSize = wh - 160
	}
	if maxSize < 320 {
		maxSize = 320
	}
	pd.sqSize = maxSize / 8
	pd.boardSize = pd.sqSize * 8
	pd.boardX = (ww - pd.boardSize) / 2
	pd.boardY = 40
}

func (pd *PlayDrawer) makePromoButtons(ctx *gctx.GUIGameContext) {
	pd.promoButtons = nil
	labels := [4]string{"Queen", "Rook", "Bishop", "Knight"}

	w, h := 110, 40
	total := 4*w + 3*12
	x := pd.boardX + (pd.boardSize-total)/2
	y := pd.boardY + pd.boardSize + 52
	for _, label := range labels {
		img := ghelper.RenderRoundedRect(w, h, 10, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
		pd.promoButtons = append(pd.promoButtons, &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
		})
		x += w + 12
	}
}

func (pd *PlayDrawer) Update(ctx *gctx.GUIGameContext) error {
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	// keyboard cursor
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		pd.dispatch(ctx, base.EventDirection{Dir: base.DirUp})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		pd.dispatch(ctx, base.EventDirection{Dir: base.DirDown})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		pd.dispatch(ctx, base.EventDirection{Dir: base.DirLeft})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		pd.dispatch(ctx, base.EventDirection{Dir: base.DirRight})
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		pd.dispatch(ctx, base.EventConfirm{})
	}

	// promotion role buttons, visible only while a role is awaited
	if pd.session.AwaitingPromotion() {
		for i, b := range pd.promoButtons {
			if b.HandleInput(mx, my, justPressed, justReleased) {
				pd.dispatch(ctx, base.EventPromote{Role: base.PromotableRoles[i]})
			}
		}
	}

	// click-click board interaction
	if justPressed && ghelper.PointInRect(mx, my, pd.boardX, pd.boardY, pd.boardSize, pd.boardSize) {
		file := (mx - pd.boardX) / pd.sqSize
		row := (my - pd.boardY) / pd.sqSize
		pd.dispatch(ctx, base.EventPointer{X: file * src.CellW, Y: row})
	}

	return nil
}

func (pd *PlayDrawer) dispatch(ctx *gctx.GUIGameContext, ev base.InputEvent) {
	res := pd.session.HandleInput(ev)
	if res.Outcome == nil {
		return
	}
	ctx.Logx.Infof("session %s over: %s", pd.session.ID(), res.Outcome)
	dialog.Message("%s", res.Outcome.Message()).Title("Chess").Info()
	pd.session = ctx.Fresh()
}

func (pd *PlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	view := pd.session.Render()
	for i := 0; i < 64; i++ {
		sq := base.SquareFromIndex(i)
		sx := pd.boardX + int(sq.File)*pd.sqSize
		sy := pd.boardY + (7-int(sq.Rank))*pd.sqSize

		col := ctx.Theme.BoardLight
		switch view[i].Back {
		case src.ShadeDark:
			col = ctx.Theme.BoardDark
		case src.ShadeCursor:
			col = ctx.Theme.CursorHl
		case src.ShadeOrigin:
			col = ctx.Theme.OriginHl
		}
		ghelper.FillRect(screen, sx, sy, pd.sqSize, pd.sqSize, col)

		if g := view[i].Glyph; g != 0 {
			color, role, ok := base.GlyphPiece(g)
			if !ok {
				continue
			}
			letter := string(base.GlyphASCII(base.White, role))
			pc := ctx.Theme.WhitePiece
			if color == base.Black {
				pc = ctx.Theme.BlackPiece
			}
			text.Draw(screen, letter, pd.face, sx+pd.sqSize/2-3, sy+pd.sqSize/2+4, pc)
		}
	}

	// legends
	for f := 0; f < 8; f++ {
		label := fmt.Sprintf("%c", 'a'+f)
		text.Draw(screen, label, pd.face, pd.boardX+f*pd.sqSize+pd.sqSize/2-3, pd.boardY+pd.boardSize+14, ctx.Theme.Label)
	}
	for r := 0; r < 8; r++ {
		label := fmt.Sprintf("%d", r+1)
		text.Draw(screen, label, pd.face, pd.boardX-14, pd.boardY+(7-r)*pd.sqSize+pd.sqSize/2+4, ctx.Theme.Label)
	}

	if pd.session.AwaitingPromotion() {
		text.Draw(screen, "Promote to:", pd.face, pd.boardX, pd.boardY+pd.boardSize+40, ctx.Theme.Label)
		for _, b := range pd.promoButtons {
			b.Draw(screen, pd.face, ctx.Theme.ButtonText)
		}
	}
}
