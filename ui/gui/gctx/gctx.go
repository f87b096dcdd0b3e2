package gctx

import (
	"image/color"

	"github.com/asibahi/terminal-chess-app/src"
	"github.com/asibahi/terminal-chess-app/src/conf"
	"github.com/asibahi/terminal-chess-app/src/logx"
)

type Palette struct {
	Bg           color.RGBA
	BoardLight   color.RGBA
	BoardDark    color.RGBA
	CursorHl     color.RGBA
	OriginHl     color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	WhitePiece   color.RGBA
	BlackPiece   color.RGBA
	Label        color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Bg:           color.RGBA{0x2b, 0x2b, 0x2b, 0xff},
		BoardLight:   color.RGBA{0xd8, 0xd8, 0xc8, 0xff},
		BoardDark:    color.RGBA{0x6e, 0x6e, 0x6e, 0xff},
		CursorHl:     color.RGBA{0xf0, 0xe0, 0x60, 0xff},
		OriginHl:     color.RGBA{0xc0, 0xa0, 0x20, 0xff},
		ButtonFill:   color.RGBA{0x44, 0x44, 0x44, 0xff},
		ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
		ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
		WhitePiece:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		BlackPiece:   color.RGBA{0x10, 0x10, 0x10, 0xff},
		Label:        color.RGBA{0xbb, 0xbb, 0xbb, 0xff},
	}
}

// GUIGameContext is passed to every scene call.
type GUIGameContext struct {
	Conf  *conf.Config
	Logx  logx.Logger
	Theme Palette

	// Fresh builds a new session from the configured start position; the
	// play scene calls it on start and after every game over.
	Fresh func() *src.Session
}
