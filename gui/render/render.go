// Package render draws the top dialog of a gui.Manager with ebitenui.
//
// The widget model is rebuilt into a fresh ebitenui tree whenever the
// manager or a handled input reports a change; ebitenui only ever sees
// throwaway widgets.
package render

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/gui/style"
)

// Renderer owns the ebitenui UI for a manager
type Renderer struct {
	mgr   *gui.Manager
	ui    *ebitenui.UI
	logo  *ebiten.Image
	dirty bool
}

// New creates a renderer for mgr
func New(mgr *gui.Manager) *Renderer {
	return &Renderer{mgr: mgr, dirty: true}
}

// SetLogo sets the image drawn for gui.ImageLogo
func (r *Renderer) SetLogo(img *ebiten.Image) {
	r.logo = img
	r.dirty = true
}

// Update handles keyboard input for the top dialog, rebuilds the widget
// tree when needed and updates ebitenui
func (r *Renderer) Update() {
	top := r.mgr.Top()
	if top == nil {
		r.ui = nil
		return
	}

	r.handleKeys(top)

	if r.mgr.TakeDirty() || r.dirty || r.ui == nil {
		r.rebuild()
	}
	if r.ui != nil {
		r.ui.Update()
	}
}

// Draw draws the top dialog over screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.ui == nil || r.mgr.Top() == nil {
		return
	}
	r.ui.Draw(screen)
}

func (r *Renderer) handleKeys(top gui.Dialog) {
	if kc, ok := top.(gui.KeyCapturer); ok && kc.CapturingKey() {
		if keys := inpututil.AppendJustPressedKeys(nil); len(keys) > 0 {
			kc.CaptureKey(keys[0])
			r.dirty = true
		}
		return
	}

	if edit := focusedEdit(top); edit != nil {
		for _, ch := range ebiten.AppendInputChars(nil) {
			if edit.InsertChar(ch) {
				r.dirty = true
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && edit.Backspace() {
			r.dirty = true
		}
	} else {
		for _, ch := range ebiten.AppendInputChars(nil) {
			if top.HandleKey(ch) {
				r.dirty = true
				return
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if top.HandleKey('\r') {
			r.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if !top.HandleKey(0x1b) {
			top.HandleCommand(nil, gui.CmdClose, 0)
		}
		r.dirty = true
	}
}

func focusedEdit(c gui.Container) *gui.EditText {
	for _, w := range c.Children() {
		if e, ok := w.(*gui.EditText); ok && e.IsFocused() && e.IsEnabled() {
			return e
		}
		if sub, ok := w.(gui.Container); ok {
			if e := focusedEdit(sub); e != nil {
				return e
			}
		}
	}
	return nil
}

func (r *Renderer) rebuild() {
	r.dirty = false
	top := r.mgr.Top()
	if top == nil {
		r.ui = nil
		return
	}

	width := style.DialogMinWidth
	if w := r.mgr.Width() - 2*style.DialogPadding; w < width {
		width = w
	}
	panel := style.DialogPanel(width)
	r.addChildren(panel, top)

	root := style.OverlayRoot()
	root.AddChild(panel)
	r.ui = &ebitenui.UI{Container: root}
}

func (r *Renderer) addChildren(parent *widget.Container, c gui.Container) {
	for _, w := range r.ordered(c) {
		if !w.IsVisible() {
			continue
		}
		if built := r.build(w); built != nil {
			parent.AddChild(built)
		}
	}
}

// ordered returns the children of c sorted by the theme layout declared
// for it, if any. Slot names are relative to the layout name.
func (r *Renderer) ordered(c gui.Container) []gui.Widget {
	children := c.Children()
	name := layoutName(c)
	if name == "" {
		return children
	}
	layout := r.mgr.Theme().Dialog(name)
	if layout == nil {
		return children
	}

	byName := make(map[string]gui.Widget, len(children))
	for _, w := range children {
		byName[w.Name()] = w
	}
	out := make([]gui.Widget, 0, len(children))
	placed := make(map[gui.Widget]bool, len(children))
	for _, slot := range layout.Widgets() {
		w, ok := byName[name+"."+slot.Name]
		if !ok {
			w, ok = byName[slot.Name]
		}
		if ok && !placed[w] {
			out = append(out, w)
			placed[w] = true
		}
	}
	for _, w := range children {
		if !placed[w] {
			out = append(out, w)
		}
	}
	return out
}

func layoutName(c gui.Container) string {
	switch c := c.(type) {
	case interface{ DialogLayout() string }:
		return c.DialogLayout()
	case gui.Dialog:
		return c.Name()
	}
	return ""
}

func (r *Renderer) build(w gui.Widget) widget.PreferredSizeLocateableWidget {
	switch w := w.(type) {
	case *gui.Button:
		return r.button(w)
	case *gui.Checkbox:
		return r.checkbox(w)
	case *gui.StaticText:
		return style.Label(w.Label(), style.TextColor(w.IsEnabled()), textPosition(w.Align()))
	case *gui.Graphics:
		return r.graphics(w)
	case *gui.Slider:
		return r.slider(w)
	case *gui.EditText:
		return r.editText(w)
	case *gui.TabWidget:
		return r.tabs(w)
	case *gui.ScrollContainer:
		content := style.Column(style.SmallSpacing)
		r.addChildren(content, w)
		return style.ScrollableContainer(content, r.mgr.Height()/3)
	case gui.Container:
		content := style.Column(style.SmallSpacing)
		r.addChildren(content, w)
		return content
	}
	return nil
}

func (r *Renderer) buttonOpts(tooltip string) []widget.ButtonOpt {
	opts := []widget.ButtonOpt{
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, r.mgr.Theme().GetVar("Globals.Button.Height", 24)),
		),
	}
	if tooltip != "" {
		opts = append(opts, widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.ToolTip(
				widget.NewToolTip(
					widget.ToolTipOpts.Content(style.TooltipContent(tooltip)),
				),
			),
		))
	}
	return opts
}

func (r *Renderer) button(b *gui.Button) *widget.Button {
	btn := style.TextButton(b.Label(), func(args *widget.ButtonClickedEventArgs) {
		b.Click()
		r.dirty = true
	}, r.buttonOpts(b.Tooltip())...)
	btn.GetWidget().Disabled = !b.IsEnabled()
	return btn
}

func (r *Renderer) checkbox(c *gui.Checkbox) *widget.Button {
	mark := "[ ]"
	if c.State() {
		mark = "[x]"
	}
	btn := style.ToggleButton(mark+" "+c.Label(), c.State(), func(args *widget.ButtonClickedEventArgs) {
		c.Toggle()
		r.dirty = true
	}, r.buttonOpts(c.Tooltip())...)
	btn.GetWidget().Disabled = !c.IsEnabled()
	return btn
}

func (r *Renderer) graphics(g *gui.Graphics) widget.PreferredSizeLocateableWidget {
	if r.logo == nil || g.Gfx() == "" {
		return nil
	}
	return widget.NewGraphic(
		widget.GraphicOpts.Image(r.logo),
		widget.GraphicOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
}

func (r *Renderer) slider(s *gui.Slider) widget.PreferredSizeLocateableWidget {
	row := style.Row(style.DefaultSpacing)
	value := style.Label(fmt.Sprintf("%d", s.Value()), style.TextColor(s.IsEnabled()), widget.TextPositionEnd)

	sl := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(s.Min(), s.Max()),
		widget.SliderOpts.Images(style.SliderTrackImage(), style.SliderHandleImage()),
		widget.SliderOpts.FixedHandleSize(style.SliderHandleSize),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(style.SliderWidth, style.SliderHandleSize),
		),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			s.SetValue(args.Current)
			value.Label = fmt.Sprintf("%d", s.Value())
		}),
	)
	sl.Current = s.Value()
	sl.GetWidget().Disabled = !s.IsEnabled()

	row.AddChild(sl)
	row.AddChild(value)
	return row
}

func (r *Renderer) editText(e *gui.EditText) widget.PreferredSizeLocateableWidget {
	text := e.Text()
	if e.IsFocused() && e.IsEnabled() {
		text += "_"
	}
	if text == "" {
		text = e.Tooltip()
	}
	return style.ToggleButton(text, e.IsFocused(), func(args *widget.ButtonClickedEventArgs) {
		e.SetFocused(true)
		r.dirty = true
	}, r.buttonOpts("")...)
}

func (r *Renderer) tabs(t *gui.TabWidget) widget.PreferredSizeLocateableWidget {
	col := style.Column(style.DefaultSpacing)
	bar := style.Row(style.SmallSpacing)
	for i, title := range t.Titles() {
		i := i
		tab := style.ToggleButton(title, i == t.ActiveTab(), func(args *widget.ButtonClickedEventArgs) {
			t.SetActiveTab(i)
			r.dirty = true
		}, widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(style.TabButtonMinWidth, 0),
		))
		bar.AddChild(tab)
	}
	col.AddChild(bar)

	if page := t.Tab(t.ActiveTab()); page != nil {
		content := style.Column(style.SmallSpacing)
		r.addChildren(content, page)
		col.AddChild(content)
	}
	return col
}

func textPosition(a gui.TextAlign) widget.TextPosition {
	switch a {
	case gui.AlignCenter:
		return widget.TextPositionCenter
	case gui.AlignRight:
		return widget.TextPositionEnd
	}
	return widget.TextPositionStart
}
