package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/asibahi/terminal-chess-app/ui/gui/gctx"
	"github.com/asibahi/terminal-chess-app/ui/gui/gdraw"
)

type GUIProcessing struct {
	scene *gdraw.PlayDrawer
	ctx   *gctx.GUIGameContext
}

func NewGUI(ctx *gctx.GUIGameContext) *GUIProcessing {
	return &GUIProcessing{
		scene: gdraw.NewPlayDrawer(ctx),
		ctx:   ctx,
	}
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Conf.WindowW, gp.ctx.Conf.WindowH)
	ebiten.SetWindowTitle("Chess")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.scene.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.scene.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Conf.WindowW, gp.ctx.Conf.WindowH
}
