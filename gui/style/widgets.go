package style

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// TextButton creates a regular button. opts are applied last.
func TextButton(label string, handler func(*widget.ButtonClickedEventArgs), opts ...widget.ButtonOpt) *widget.Button {
	return ToggleButton(label, false, handler, opts...)
}

// ToggleButton creates a button drawn as active or inactive. Checkboxes,
// tabs and chooser rows are toggle buttons.
func ToggleButton(label string, active bool, handler func(*widget.ButtonClickedEventArgs), opts ...widget.ButtonOpt) *widget.Button {
	all := []widget.ButtonOpt{
		widget.ButtonOpts.Image(ActiveButtonImage(active)),
		widget.ButtonOpts.Text(label, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(ButtonPadding)),
		widget.ButtonOpts.ClickedHandler(handler),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	}
	return widget.NewButton(append(all, opts...)...)
}

// Label creates a line of text
func Label(s string, c color.Color, pos widget.TextPosition) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, FontFace(), c),
		widget.TextOpts.Position(pos, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
}

// Column creates a vertical row layout container
func Column(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
}

// Row creates a horizontal row layout container
func Row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
}

// DialogPanel creates the centered panel a dialog is drawn in
func DialogPanel(minWidth int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(DefaultSpacing),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(DialogPadding)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

// OverlayRoot creates the full screen container that dims the game and
// centers a dialog panel
func OverlayRoot() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(Overlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
}

// TooltipContent creates the container shown as a widget tooltip
func TooltipContent(s string) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(Border)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(SmallSpacing)),
		)),
	)
	c.AddChild(widget.NewText(widget.TextOpts.Text(s, FontFace(), Text)))
	return c
}

// ScrollSlider creates a vertical scrollbar driving sc
func ScrollSlider(sc *widget.ScrollContainer, needsScroll func() bool) *widget.Slider {
	return widget.NewSlider(
		widget.SliderOpts.TabOrder(-1),
		widget.SliderOpts.Direction(widget.DirectionVertical),
		widget.SliderOpts.MinMax(0, 1000),
		widget.SliderOpts.Images(SliderTrackImage(), SliderHandleImage()),
		widget.SliderOpts.FixedHandleSize(SliderHandleSize*2),
		widget.SliderOpts.PageSizeFunc(func() int {
			if !needsScroll() {
				return 1000
			}
			return int(float64(sc.ViewRect().Dy()) / float64(sc.ContentRect().Dy()) * 1000)
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if !needsScroll() {
				sc.ScrollTop = 0
				return
			}
			sc.ScrollTop = float64(args.Current) / 1000
		}),
	)
}

// ScrollableContainer wraps content in a scroll area with a scrollbar and
// mouse wheel support. It returns the widget to add to a layout.
func ScrollableContainer(content *widget.Container, minHeight int) widget.PreferredSizeLocateableWidget {
	sc := widget.NewScrollContainer(
		widget.ScrollContainerOpts.Content(content),
		widget.ScrollContainerOpts.StretchContentWidth(),
		widget.ScrollContainerOpts.Image(&widget.ScrollContainerImage{
			Idle: image.NewNineSliceColor(Panel),
			Mask: image.NewNineSliceColor(Panel),
		}),
	)

	needsScroll := func() bool {
		content := sc.ContentRect().Dy()
		view := sc.ViewRect().Dy()
		return content > 0 && view > 0 && content > view
	}
	bar := ScrollSlider(sc, needsScroll)

	sc.GetWidget().ScrolledEvent.AddHandler(func(args interface{}) {
		if !needsScroll() {
			sc.ScrollTop = 0
			return
		}
		a := args.(*widget.WidgetScrolledEventArgs)
		p := clamp01(sc.ScrollTop + a.Y*ScrollWheelSensitivity)
		sc.ScrollTop = p
		bar.Current = int(p * 1000)
	})

	wrapper := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(SmallSpacing, 0),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, minHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	wrapper.AddChild(sc)
	wrapper.AddChild(bar)
	return wrapper
}
