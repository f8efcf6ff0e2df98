package gui

import "unicode"

// Widget is anything that can live in a dialog
type Widget interface {
	Name() string
	Tooltip() string
	IsEnabled() bool
	SetEnabled(enabled bool)
	IsVisible() bool
	SetVisible(visible bool)
}

// Container is a widget owner. Widgets created with a container as their
// boss are added to it and fire their commands at its Target.
type Container interface {
	AddWidget(w Widget)
	RemoveWidget(w Widget)
	Children() []Widget
	Target() CommandReceiver
}

// WidgetBase implements the common Widget state
type WidgetBase struct {
	name     string
	tooltip  string
	disabled bool
	hidden   bool
}

func newWidgetBase(name, tooltip string) WidgetBase {
	return WidgetBase{name: name, tooltip: tooltip}
}

// Name returns the theme slot name of the widget
func (w *WidgetBase) Name() string { return w.name }

// Tooltip returns the widget's tooltip text
func (w *WidgetBase) Tooltip() string { return w.tooltip }

// IsEnabled returns whether the widget reacts to input
func (w *WidgetBase) IsEnabled() bool { return !w.disabled }

// SetEnabled enables or disables the widget
func (w *WidgetBase) SetEnabled(enabled bool) { w.disabled = !enabled }

// IsVisible returns whether the widget is drawn
func (w *WidgetBase) IsVisible() bool { return !w.hidden }

// SetVisible shows or hides the widget
func (w *WidgetBase) SetVisible(visible bool) { w.hidden = !visible }

// Button fires its command when clicked
type Button struct {
	WidgetBase
	commandSender
	label  string
	hotkey rune
}

// NewButton creates a button in boss. label may carry "~X~" hotkey markup;
// an explicit hotkey overrides it.
func NewButton(boss Container, name, label, tooltip string, cmd Command, hotkey rune) *Button {
	b := &Button{
		WidgetBase:    newWidgetBase(name, tooltip),
		commandSender: commandSender{cmd: cmd, target: boss.Target()},
	}
	b.SetLabel(label)
	if hotkey != 0 {
		b.hotkey = unicode.ToLower(hotkey)
	}
	boss.AddWidget(b)
	return b
}

// Label returns the button text without hotkey markup
func (b *Button) Label() string { return b.label }

// Hotkey returns the lowercased hotkey, or 0
func (b *Button) Hotkey() rune { return b.hotkey }

// SetLabel replaces the button text, picking up a new hotkey from markup
func (b *Button) SetLabel(label string) {
	b.label, b.hotkey = ParseHotkey(label)
}

// Click fires the button's command if it is enabled and visible
func (b *Button) Click() {
	if !b.IsEnabled() || !b.IsVisible() {
		return
	}
	b.send(b, b.cmd, 0)
}

// Checkbox is a two-state toggle
type Checkbox struct {
	WidgetBase
	commandSender
	label string
	state bool
}

// NewCheckbox creates a checkbox in boss. cmd may be CmdNone.
func NewCheckbox(boss Container, name, label, tooltip string, cmd Command) *Checkbox {
	c := &Checkbox{
		WidgetBase:    newWidgetBase(name, tooltip),
		commandSender: commandSender{cmd: cmd, target: boss.Target()},
		label:         CleanupHotkey(label),
	}
	boss.AddWidget(c)
	return c
}

// Label returns the checkbox text
func (c *Checkbox) Label() string { return c.label }

// State returns whether the box is checked
func (c *Checkbox) State() bool { return c.state }

// SetState checks or unchecks the box. A change fires the checkbox's
// command with data 1 for checked and 0 for unchecked.
func (c *Checkbox) SetState(state bool) {
	if c.state == state {
		return
	}
	c.state = state
	var data uint32
	if state {
		data = 1
	}
	c.send(c, c.cmd, data)
}

// Toggle flips the state when the checkbox is enabled
func (c *Checkbox) Toggle() {
	if !c.IsEnabled() {
		return
	}
	c.SetState(!c.state)
}

// TextAlign is the horizontal alignment of static text
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// StaticText is a label
type StaticText struct {
	WidgetBase
	label string
	align TextAlign
}

// NewStaticText creates a label in boss
func NewStaticText(boss Container, name, label string) *StaticText {
	t := &StaticText{
		WidgetBase: newWidgetBase(name, ""),
		label:      label,
	}
	boss.AddWidget(t)
	return t
}

// Label returns the text
func (t *StaticText) Label() string { return t.label }

// SetLabel replaces the text
func (t *StaticText) SetLabel(label string) { t.label = label }

// Align returns the text alignment
func (t *StaticText) Align() TextAlign { return t.align }

// SetAlign changes the text alignment
func (t *StaticText) SetAlign(align TextAlign) { t.align = align }

// ThemeImage names an image provided by the theme
type ThemeImage string

const (
	ImageLogo      ThemeImage = "logo"
	ImageLogoSmall ThemeImage = "logo_small"
)

// Graphics shows a theme image
type Graphics struct {
	WidgetBase
	gfx ThemeImage
}

// NewGraphics creates an empty image widget in boss
func NewGraphics(boss Container, name string) *Graphics {
	g := &Graphics{WidgetBase: newWidgetBase(name, "")}
	boss.AddWidget(g)
	return g
}

// SetGfxFromTheme selects the theme image to draw
func (g *Graphics) SetGfxFromTheme(img ThemeImage) { g.gfx = img }

// Gfx returns the selected theme image
func (g *Graphics) Gfx() ThemeImage { return g.gfx }

// Slider selects an integer in [min, max]
type Slider struct {
	WidgetBase
	commandSender
	min, max, value int
}

// NewSlider creates a slider in boss. cmd fires with the new value on change.
func NewSlider(boss Container, name, tooltip string, min, max int, cmd Command) *Slider {
	s := &Slider{
		WidgetBase:    newWidgetBase(name, tooltip),
		commandSender: commandSender{cmd: cmd, target: boss.Target()},
		min:           min,
		max:           max,
		value:         min,
	}
	boss.AddWidget(s)
	return s
}

// Value returns the current value
func (s *Slider) Value() int { return s.value }

// Min returns the lower bound
func (s *Slider) Min() int { return s.min }

// Max returns the upper bound
func (s *Slider) Max() int { return s.max }

// SetValue clamps v into range and stores it, firing the command on change
func (s *Slider) SetValue(v int) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if v == s.value {
		return
	}
	s.value = v
	s.send(s, s.cmd, uint32(v))
}

// EditText holds a single line of user text
type EditText struct {
	WidgetBase
	text    string
	maxLen  int
	focused bool
}

// NewEditText creates a text field in boss. maxLen <= 0 means unlimited.
func NewEditText(boss Container, name, text, tooltip string, maxLen int) *EditText {
	e := &EditText{
		WidgetBase: newWidgetBase(name, tooltip),
		text:       text,
		maxLen:     maxLen,
	}
	boss.AddWidget(e)
	return e
}

// Text returns the current text
func (e *EditText) Text() string { return e.text }

// SetText replaces the text
func (e *EditText) SetText(text string) { e.text = text }

// IsFocused returns whether typed characters go to this field
func (e *EditText) IsFocused() bool { return e.focused }

// SetFocused gives or takes keyboard focus
func (e *EditText) SetFocused(focused bool) { e.focused = focused }

// InsertChar appends one typed character if the field accepts it
func (e *EditText) InsertChar(r rune) bool {
	if !e.IsEnabled() || !unicode.IsPrint(r) {
		return false
	}
	if e.maxLen > 0 && len([]rune(e.text)) >= e.maxLen {
		return false
	}
	e.text += string(r)
	return true
}

// Backspace deletes the last character
func (e *EditText) Backspace() bool {
	if !e.IsEnabled() || e.text == "" {
		return false
	}
	runes := []rune(e.text)
	e.text = string(runes[:len(runes)-1])
	return true
}
