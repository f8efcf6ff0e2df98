// Package style holds the colors, fonts and ebitenui image sets the
// dialogs are drawn with.
package style

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Dialog colors
var (
	Overlay       = color.NRGBA{0x00, 0x00, 0x00, 0xb0} // Dims the game behind the menu
	Panel         = color.NRGBA{0x1e, 0x1e, 0x30, 0xff}
	Surface       = color.NRGBA{0x2a, 0x2a, 0x42, 0xff}
	Primary       = color.NRGBA{0x4a, 0x4a, 0x8a, 0xff}
	PrimaryHover  = color.NRGBA{0x5c, 0x5c, 0xa0, 0xff}
	Text          = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary = color.NRGBA{0xa0, 0xa0, 0xb0, 0xff}
	TextDisabled  = color.NRGBA{0x68, 0x68, 0x78, 0xff}
	Accent        = color.NRGBA{0xff, 0xd7, 0x00, 0xff}
	Border        = color.NRGBA{0x3a, 0x3a, 0x5a, 0xff}
)

var fontFace text.Face

// FontFace returns the face all dialog text uses
func FontFace() *text.Face {
	if fontFace == nil {
		fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return &fontFace
}

// ButtonImage is the image set of a regular button
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage is the image set of a default action button
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ActiveButtonImage picks the primary set for an active toggle (checked
// checkbox, selected tab or slot) and the regular set otherwise
func ActiveButtonImage(active bool) *widget.ButtonImage {
	if active {
		return PrimaryButtonImage()
	}
	return ButtonImage()
}

// ButtonTextColor is the text color set of every button
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextDisabled,
	}
}

// SliderHandleImage is the image set of a slider handle
func SliderHandleImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// SliderTrackImage is the image set of a slider track
func SliderTrackImage() *widget.SliderTrackImage {
	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceColor(Border),
		Hover: image.NewNineSliceColor(Border),
	}
}

// TextInputImage is the image set of a text field
func TextInputImage() *widget.TextInputImage {
	return &widget.TextInputImage{
		Idle:     image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// TextColor returns the label color for an enabled or disabled widget
func TextColor(enabled bool) color.Color {
	if enabled {
		return Text
	}
	return TextDisabled
}
