package gui

import "unicode"

// Dialog is a modal window run by a Manager
type Dialog interface {
	Container
	CommandReceiver

	Name() string
	// Open is called by the manager when the dialog is pushed
	Open()
	// Close pops the dialog and runs its continuation
	Close()
	IsOpen() bool
	Result() int
	// ReflowLayout refreshes size dependent widgets
	ReflowLayout()
	// HandleKey clicks the button bound to hotkey r
	HandleKey(r rune) bool
}

// Builder is implemented by dialogs that fill their widgets from the
// configuration store each time they open
type Builder interface {
	Build()
}

// DialogBase implements Dialog. Embedders call Init with themselves so
// commands and overrides reach the outer type.
type DialogBase struct {
	widgetList
	mgr    *Manager
	self   Dialog
	name   string
	result int
	open   bool
}

// Init binds the dialog to mgr. self is the dialog embedding d.
func (d *DialogBase) Init(mgr *Manager, name string, self Dialog) {
	d.mgr = mgr
	d.name = name
	d.self = self
}

// Name returns the theme dialog name
func (d *DialogBase) Name() string { return d.name }

// Manager returns the manager running the dialog
func (d *DialogBase) Manager() *Manager { return d.mgr }

// Self returns the outermost dialog
func (d *DialogBase) Self() Dialog { return d.self }

// Target returns the outermost dialog
func (d *DialogBase) Target() CommandReceiver { return d.self }

// FindWidget searches the dialog's widget tree by name
func (d *DialogBase) FindWidget(name string) Widget {
	return FindWidget(d, name)
}

// Open resets the result and marks the dialog open
func (d *DialogBase) Open() {
	d.open = true
	d.result = 0
}

// IsOpen reports whether the dialog is on the modal stack
func (d *DialogBase) IsOpen() bool { return d.open }

// Close pops the dialog from the manager
func (d *DialogBase) Close() {
	if !d.open {
		return
	}
	d.open = false
	if d.mgr != nil {
		d.mgr.closeDialog(d.self)
	}
}

// Result returns the value handed to the continuation
func (d *DialogBase) Result() int { return d.result }

// SetResult sets the value handed to the continuation
func (d *DialogBase) SetResult(result int) { d.result = result }

// HandleCommand closes the dialog on CmdClose
func (d *DialogBase) HandleCommand(sender Widget, cmd Command, data uint32) {
	if cmd == CmdClose {
		d.self.Close()
	}
}

// ReflowLayout does nothing for plain dialogs
func (d *DialogBase) ReflowLayout() {}

// HandleKey clicks the first enabled, visible button with hotkey r
func (d *DialogBase) HandleKey(r rune) bool {
	r = unicode.ToLower(r)
	if r == 0 {
		return false
	}
	if b := findHotkey(d, r); b != nil {
		b.Click()
		return true
	}
	return false
}

func findHotkey(c Container, r rune) *Button {
	for _, w := range c.Children() {
		if b, ok := w.(*Button); ok && b.Hotkey() == r && b.IsEnabled() && b.IsVisible() {
			return b
		}
		if tabs, ok := w.(*TabWidget); ok {
			if tab := tabs.Tab(tabs.ActiveTab()); tab != nil {
				if b := findHotkey(tab, r); b != nil {
					return b
				}
			}
			continue
		}
		if sub, ok := w.(Container); ok {
			if b := findHotkey(sub, r); b != nil {
				return b
			}
		}
	}
	return nil
}
