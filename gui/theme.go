package gui

import "log"

// LayoutType is the flow direction of a layout
type LayoutType int

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// ItemKind says what a LayoutItem describes
type ItemKind int

const (
	ItemLayout ItemKind = iota
	ItemWidget
	ItemSpace
)

// Insets is layout padding in pixels
type Insets struct {
	Left, Right, Top, Bottom int
}

// LayoutItem is a node of a dialog layout
type LayoutItem struct {
	Kind     ItemKind
	Layout   LayoutType
	Padding  Insets
	Name     string // widget slot name
	Type     string // widget slot type, e.g. "Checkbox"
	Size     int    // space size
	Children []*LayoutItem
}

// DialogLayout is the declared layout of one named dialog
type DialogLayout struct {
	Name    string
	Overlay string
	Root    *LayoutItem
}

// Widgets returns the widget slots in declaration order
func (d *DialogLayout) Widgets() []*LayoutItem {
	var out []*LayoutItem
	var walk func(item *LayoutItem)
	walk = func(item *LayoutItem) {
		if item == nil {
			return
		}
		if item.Kind == ItemWidget {
			out = append(out, item)
		}
		for _, c := range item.Children {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}

// ThemeEval holds theme variables and declared dialog layouts. Layouts
// are declared with a chained builder:
//
//	theme.AddDialog(name, overlay).
//		AddLayout(LayoutVertical).AddPadding(0, 0, 0, 0).
//		AddWidget(name+".customOption1Checkbox", "Checkbox").
//		CloseLayout().
//		CloseDialog()
type ThemeEval struct {
	vars           map[string]int
	dialogs        map[string]*DialogLayout
	current        *DialogLayout
	stack          []*LayoutItem
	supportsImages bool
}

// NewThemeEval creates an evaluator with the built-in variables
func NewThemeEval() *ThemeEval {
	return &ThemeEval{
		vars: map[string]int{
			"Globals.ShowGlobalMenuLogo": 0,
			"Globals.Button.Height":      24,
			"Globals.Line.Height":        16,
		},
		dialogs: make(map[string]*DialogLayout),
	}
}

// GetVar returns a theme variable or def when unset
func (t *ThemeEval) GetVar(name string, def int) int {
	if v, ok := t.vars[name]; ok {
		return v
	}
	return def
}

// SetVar sets a theme variable
func (t *ThemeEval) SetVar(name string, value int) {
	t.vars[name] = value
}

// SupportsImages reports whether the theme can draw images
func (t *ThemeEval) SupportsImages() bool { return t.supportsImages }

// SetSupportsImages toggles image support
func (t *ThemeEval) SetSupportsImages(v bool) { t.supportsImages = v }

// HasDialog reports whether a layout is declared for name
func (t *ThemeEval) HasDialog(name string) bool {
	_, ok := t.dialogs[name]
	return ok
}

// Dialog returns the layout declared for name, or nil
func (t *ThemeEval) Dialog(name string) *DialogLayout {
	return t.dialogs[name]
}

// AddDialog starts declaring the layout of name. overlay names the dialog
// or widget whose area the layout fills.
func (t *ThemeEval) AddDialog(name, overlay string) *ThemeEval {
	if t.current != nil {
		log.Printf("Warning: dialog %s declared inside %s", name, t.current.Name)
	}
	t.current = &DialogLayout{Name: name, Overlay: overlay}
	t.stack = nil
	return t
}

// AddLayout opens a nested layout
func (t *ThemeEval) AddLayout(layout LayoutType) *ThemeEval {
	item := &LayoutItem{Kind: ItemLayout, Layout: layout}
	if len(t.stack) == 0 {
		if t.current != nil && t.current.Root == nil {
			t.current.Root = item
		} else {
			log.Printf("Warning: layout declared outside a dialog")
		}
	} else {
		t.appendItem(item)
	}
	t.stack = append(t.stack, item)
	return t
}

// AddPadding sets the padding of the open layout
func (t *ThemeEval) AddPadding(left, right, top, bottom int) *ThemeEval {
	if len(t.stack) > 0 {
		t.stack[len(t.stack)-1].Padding = Insets{left, right, top, bottom}
	}
	return t
}

// AddWidget declares a widget slot in the open layout
func (t *ThemeEval) AddWidget(name, typ string) *ThemeEval {
	t.appendItem(&LayoutItem{Kind: ItemWidget, Name: name, Type: typ})
	return t
}

// AddSpace declares fixed space in the open layout
func (t *ThemeEval) AddSpace(size int) *ThemeEval {
	t.appendItem(&LayoutItem{Kind: ItemSpace, Size: size})
	return t
}

// CloseLayout ends the open layout
func (t *ThemeEval) CloseLayout() *ThemeEval {
	if len(t.stack) > 0 {
		t.stack = t.stack[:len(t.stack)-1]
	}
	return t
}

// CloseDialog ends the dialog declaration and registers it
func (t *ThemeEval) CloseDialog() *ThemeEval {
	if t.current == nil {
		return t
	}
	if len(t.stack) > 0 {
		log.Printf("Warning: dialog %s closed with %d open layouts", t.current.Name, len(t.stack))
	}
	t.dialogs[t.current.Name] = t.current
	t.current = nil
	t.stack = nil
	return t
}

func (t *ThemeEval) appendItem(item *LayoutItem) {
	if len(t.stack) == 0 {
		log.Printf("Warning: theme item %q declared outside a layout", item.Name)
		return
	}
	parent := t.stack[len(t.stack)-1]
	parent.Children = append(parent.Children, item)
}
