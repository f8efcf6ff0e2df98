package gui

// Tab is one page of a TabWidget
type Tab struct {
	widgetList
	Title      string
	LayoutName string
}

// Target returns nil; widgets are created through the TabWidget
func (t *Tab) Target() CommandReceiver { return nil }

// TabWidget is a set of pages with one active at a time. Widgets added to
// the TabWidget land in the most recently added tab.
type TabWidget struct {
	WidgetBase
	boss   Container
	tabs   []*Tab
	active int
}

// NewTabWidget creates an empty tab widget in boss
func NewTabWidget(boss Container, name string) *TabWidget {
	t := &TabWidget{
		WidgetBase: newWidgetBase(name, ""),
		boss:       boss,
		active:     -1,
	}
	boss.AddWidget(t)
	return t
}

// AddTab appends a page and makes it the target of AddWidget. It returns the
// page index.
func (t *TabWidget) AddTab(title, layoutName string) int {
	t.tabs = append(t.tabs, &Tab{Title: title, LayoutName: layoutName})
	return len(t.tabs) - 1
}

// RemoveTab drops the page at index along with its widgets
func (t *TabWidget) RemoveTab(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	t.tabs = append(t.tabs[:index], t.tabs[index+1:]...)
	switch {
	case len(t.tabs) == 0:
		t.active = -1
	case t.active >= len(t.tabs):
		t.active = len(t.tabs) - 1
	case t.active > index:
		t.active--
	}
}

// SetActiveTab selects the visible page
func (t *TabWidget) SetActiveTab(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	t.active = index
}

// ActiveTab returns the visible page index, or -1 without pages
func (t *TabWidget) ActiveTab() int { return t.active }

// TabCount returns the number of pages
func (t *TabWidget) TabCount() int { return len(t.tabs) }

// Tab returns the page at index
func (t *TabWidget) Tab(index int) *Tab {
	if index < 0 || index >= len(t.tabs) {
		return nil
	}
	return t.tabs[index]
}

// Titles returns the page titles in order
func (t *TabWidget) Titles() []string {
	titles := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		titles[i] = tab.Title
	}
	return titles
}

// FindTab returns the index of the page titled title, or -1
func (t *TabWidget) FindTab(title string) int {
	for i, tab := range t.tabs {
		if tab.Title == title {
			return i
		}
	}
	return -1
}

// AddWidget adds w to the last page
func (t *TabWidget) AddWidget(w Widget) {
	if len(t.tabs) == 0 {
		t.AddTab("", "")
	}
	t.tabs[len(t.tabs)-1].AddWidget(w)
}

// RemoveWidget removes w from whichever page holds it
func (t *TabWidget) RemoveWidget(w Widget) {
	for _, tab := range t.tabs {
		tab.RemoveWidget(w)
	}
}

// Children returns the widgets of every page
func (t *TabWidget) Children() []Widget {
	var all []Widget
	for _, tab := range t.tabs {
		all = append(all, tab.children...)
	}
	return all
}

// Target returns the receiver of the boss
func (t *TabWidget) Target() CommandReceiver {
	return t.boss.Target()
}
