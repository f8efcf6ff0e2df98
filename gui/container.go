package gui

// widgetList is the child storage shared by containers
type widgetList struct {
	children []Widget
}

// AddWidget appends w
func (l *widgetList) AddWidget(w Widget) {
	l.children = append(l.children, w)
}

// RemoveWidget drops w if present
func (l *widgetList) RemoveWidget(w Widget) {
	for i, c := range l.children {
		if c == w {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
}

// Children returns the owned widgets in insertion order
func (l *widgetList) Children() []Widget {
	return l.children
}

func (l *widgetList) clear() {
	l.children = nil
}

// FindWidget searches root and its nested containers for a widget by name
func FindWidget(root Container, name string) Widget {
	for _, w := range root.Children() {
		if w.Name() == name {
			return w
		}
		if c, ok := w.(Container); ok {
			if found := FindWidget(c, name); found != nil {
				return found
			}
		}
	}
	return nil
}

// ScrollContainer holds a scrollable column of widgets, typically a single
// options widget contributed by an engine or backend
type ScrollContainer struct {
	WidgetBase
	widgetList
	target CommandReceiver
}

// NewScrollContainer creates an empty scroll container in boss
func NewScrollContainer(boss Container, name string) *ScrollContainer {
	s := &ScrollContainer{
		WidgetBase: newWidgetBase(name, ""),
		target:     boss.Target(),
	}
	boss.AddWidget(s)
	return s
}

// Target returns the receiver for widgets created inside the container
func (s *ScrollContainer) Target() CommandReceiver { return s.target }

// SetTarget changes the receiver for widgets created afterwards
func (s *ScrollContainer) SetTarget(target CommandReceiver) { s.target = target }

// OptionsWidget is an options panel contributed by foreign code. The
// owning dialog only calls Load and Save on it.
type OptionsWidget interface {
	Widget
	Container
	CommandReceiver

	// Load refreshes the widgets from the configuration store
	Load()
	// Save writes the widgets to the configuration store and reports
	// whether anything was saved
	Save() bool

	SetParentDialog(d Dialog)
	DefineLayout(theme *ThemeEval, layoutName, overlayedLayout string)
	ReflowLayout(theme *ThemeEval)
}

// OptionsContainerWidget is embedded by OptionsWidget implementations.
// Widgets created with WidgetsBoss fire their commands at the embedding
// widget.
type OptionsContainerWidget struct {
	WidgetBase
	widgetList
	self         OptionsWidget
	dialogLayout string
	domain       string
	parent       Dialog
}

// InitOptionsContainer sets up the embedded container and adds self to boss.
// self must be the widget embedding c.
func (c *OptionsContainerWidget) InitOptionsContainer(boss Container, name, dialogLayout, domain string, self OptionsWidget) {
	c.WidgetBase = newWidgetBase(name, "")
	c.self = self
	c.dialogLayout = dialogLayout
	c.domain = domain
	boss.AddWidget(self)
}

// Target returns the embedding widget
func (c *OptionsContainerWidget) Target() CommandReceiver {
	return c.self
}

// WidgetsBoss returns the container new child widgets belong to
func (c *OptionsContainerWidget) WidgetsBoss() Container {
	return c
}

// Domain returns the configuration domain the widget edits
func (c *OptionsContainerWidget) Domain() string { return c.domain }

// DialogLayout returns the theme dialog name holding the widget's layout
func (c *OptionsContainerWidget) DialogLayout() string { return c.dialogLayout }

// SetParentDialog records the dialog the widget lives in
func (c *OptionsContainerWidget) SetParentDialog(d Dialog) { c.parent = d }

// ParentDialog returns the dialog the widget lives in, or nil
func (c *OptionsContainerWidget) ParentDialog() Dialog { return c.parent }

// HandleCommand ignores everything; embedding widgets override it
func (c *OptionsContainerWidget) HandleCommand(sender Widget, cmd Command, data uint32) {}

// ReflowLayout asks the embedding widget to define its layout the first
// time the theme lacks it
func (c *OptionsContainerWidget) ReflowLayout(theme *ThemeEval) {
	if theme == nil || theme.HasDialog(c.dialogLayout) {
		return
	}
	c.self.DefineLayout(theme, c.dialogLayout, c.Name())
}
