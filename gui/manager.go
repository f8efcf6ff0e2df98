package gui

import "log"

type modal struct {
	dialog Dialog
	done   func(result int)
}

// Manager owns the modal dialog stack. Only the top dialog receives input.
type Manager struct {
	stack  []modal
	theme  *ThemeEval
	width  int
	height int
	dirty  bool
}

// NewManager creates a manager for a width x height GUI
func NewManager(theme *ThemeEval, width, height int) *Manager {
	if theme == nil {
		theme = NewThemeEval()
	}
	return &Manager{theme: theme, width: width, height: height}
}

// Theme returns the layout evaluator
func (m *Manager) Theme() *ThemeEval { return m.theme }

// Width returns the GUI width in pixels
func (m *Manager) Width() int { return m.width }

// Height returns the GUI height in pixels
func (m *Manager) Height() int { return m.height }

// SetScreenSize resizes the GUI and reflows every open dialog on change
func (m *Manager) SetScreenSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	for _, e := range m.stack {
		e.dialog.ReflowLayout()
	}
	m.dirty = true
}

// RunModal opens d on top of the stack. done, which may be nil, runs with
// the dialog's result once it closes.
func (m *Manager) RunModal(d Dialog, done func(result int)) {
	if d.IsOpen() {
		log.Printf("Warning: dialog %s is already open", d.Name())
		return
	}
	m.stack = append(m.stack, modal{dialog: d, done: done})
	d.Open()
	if b, ok := d.(Builder); ok {
		b.Build()
	}
	d.ReflowLayout()
	m.dirty = true
}

// ShowMessage runs a message dialog with an OK button
func (m *Manager) ShowMessage(message string, done func()) {
	m.RunModal(NewMessageDialog(m, message, "", ""), func(int) {
		if done != nil {
			done()
		}
	})
}

func (m *Manager) closeDialog(d Dialog) {
	idx := -1
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i].dialog == d {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if idx != len(m.stack)-1 {
		log.Printf("Warning: closing %s while it is not the top dialog", d.Name())
	}
	entry := m.stack[idx]
	m.stack = append(m.stack[:idx], m.stack[idx+1:]...)
	m.dirty = true
	if entry.done != nil {
		entry.done(d.Result())
	}
}

// Top returns the dialog receiving input, or nil
func (m *Manager) Top() Dialog {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1].dialog
}

// Dialogs returns the open dialogs, bottom first
func (m *Manager) Dialogs() []Dialog {
	dialogs := make([]Dialog, len(m.stack))
	for i, e := range m.stack {
		dialogs[i] = e.dialog
	}
	return dialogs
}

// IsActive reports whether any dialog is open
func (m *Manager) IsActive() bool { return len(m.stack) > 0 }

// MarkDirty requests a rebuild of the rendered widgets
func (m *Manager) MarkDirty() { m.dirty = true }

// TakeDirty returns and clears the rebuild request
func (m *Manager) TakeDirty() bool {
	d := m.dirty
	m.dirty = false
	return d
}
