package ghelper

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// RenderRoundedRect draws an anti-aliased rounded rectangle with gg and
// uploads it as an ebiten image.
func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func FillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// Button is a pre-rendered rounded rect with press tracking.
type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image

	Pressed bool
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput returns true when a click finished on this button.
func (b *Button) HandleInput(px, py int, justPressed, justReleased bool) bool {
	inside := b.Contains(px, py)
	if justPressed && inside {
		b.Pressed = true
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		return clicked
	}
	return false
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, textColor color.RGBA) {
	if b.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.X), float64(b.Y))
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	tx := b.X + (b.W-bounds.Dx())/2
	ty := b.Y + (b.H+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, textColor)
}
