package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/user-none/eblitmenu/gui/style"
)

const (
	logoWidth  = 120
	logoHeight = 28
)

// newLogo draws the small menu logo
func newLogo(name string) *ebiten.Image {
	img := ebiten.NewImage(logoWidth, logoHeight)
	img.Fill(style.Primary)
	vector.DrawFilledRect(img, 0, logoHeight-3, logoWidth, 3, style.Accent, false)

	w, h := text.Measure(name, *style.FontFace(), 0)
	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate((logoWidth-w)/2, (logoHeight-3-h)/2)
	textOpts.ColorScale.ScaleWithColor(color.White)
	text.Draw(img, name, *style.FontFace(), textOpts)
	return img
}
