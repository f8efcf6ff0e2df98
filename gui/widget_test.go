package gui

import "testing"

type firedCommand struct {
	sender Widget
	cmd    Command
	data   uint32
}

// recorder is a Container that records the commands fired at it
type recorder struct {
	widgetList
	fired []firedCommand
}

func (r *recorder) Target() CommandReceiver { return r }

func (r *recorder) HandleCommand(sender Widget, cmd Command, data uint32) {
	r.fired = append(r.fired, firedCommand{sender, cmd, data})
}

func TestButtonClick(t *testing.T) {
	r := &recorder{}
	b := NewButton(r, "Test.Button", "~O~pen", "tip", CmdOK, 0)

	if b.Label() != "Open" || b.Hotkey() != 'o' {
		t.Errorf("label/hotkey = %q/%q", b.Label(), b.Hotkey())
	}
	if len(r.Children()) != 1 {
		t.Fatalf("button not added to boss")
	}

	b.Click()
	if len(r.fired) != 1 || r.fired[0].cmd != CmdOK || r.fired[0].sender != b {
		t.Fatalf("unexpected commands: %+v", r.fired)
	}

	b.SetEnabled(false)
	b.Click()
	b.SetEnabled(true)
	b.SetVisible(false)
	b.Click()
	if len(r.fired) != 1 {
		t.Errorf("disabled or hidden button fired: %+v", r.fired)
	}
}

func TestButtonExplicitHotkey(t *testing.T) {
	r := &recorder{}
	b := NewButton(r, "Test.Button", "~R~esume", "", CmdOK, 'P')
	if b.Hotkey() != 'p' {
		t.Errorf("hotkey = %q, want 'p'", b.Hotkey())
	}
	if b.Label() != "Resume" {
		t.Errorf("label = %q", b.Label())
	}
}

func TestCheckboxSetStateFiresOnChange(t *testing.T) {
	r := &recorder{}
	c := NewCheckbox(r, "Test.Checkbox", "Option", "", CmdOK)

	c.SetState(false)
	if len(r.fired) != 0 {
		t.Fatalf("unchanged state fired %+v", r.fired)
	}

	c.SetState(true)
	c.SetState(false)
	if len(r.fired) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(r.fired))
	}
	if r.fired[0].data != 1 || r.fired[1].data != 0 {
		t.Errorf("data = %d, %d, want 1, 0", r.fired[0].data, r.fired[1].data)
	}
}

func TestCheckboxToggleRespectsEnabled(t *testing.T) {
	r := &recorder{}
	c := NewCheckbox(r, "Test.Checkbox", "Option", "", CmdNone)

	c.Toggle()
	if !c.State() {
		t.Fatal("toggle did not check")
	}
	c.SetEnabled(false)
	c.Toggle()
	if !c.State() {
		t.Error("disabled checkbox toggled")
	}
	if len(r.fired) != 0 {
		t.Errorf("CmdNone fired %+v", r.fired)
	}
}

func TestSliderClamps(t *testing.T) {
	r := &recorder{}
	s := NewSlider(r, "Test.Slider", "", 0, 256, CmdUser)

	tests := []struct {
		in, want int
	}{
		{100, 100},
		{-5, 0},
		{999, 256},
	}
	for _, tt := range tests {
		s.SetValue(tt.in)
		if s.Value() != tt.want {
			t.Errorf("SetValue(%d) -> %d, want %d", tt.in, s.Value(), tt.want)
		}
	}
	if len(r.fired) != 3 {
		t.Errorf("expected 3 change commands, got %d", len(r.fired))
	}
}

func TestEditText(t *testing.T) {
	r := &recorder{}
	e := NewEditText(r, "Test.Edit", "", "", 3)

	for _, ch := range "abcd" {
		e.InsertChar(ch)
	}
	if e.Text() != "abc" {
		t.Errorf("text = %q, want %q", e.Text(), "abc")
	}
	if e.InsertChar('\n') {
		t.Error("control character accepted")
	}
	e.Backspace()
	if e.Text() != "ab" {
		t.Errorf("after backspace = %q", e.Text())
	}

	e.SetText("é")
	e.Backspace()
	if e.Text() != "" {
		t.Errorf("multibyte backspace left %q", e.Text())
	}
	if e.Backspace() {
		t.Error("backspace on empty text reported a change")
	}
}

func TestTabWidget(t *testing.T) {
	r := &recorder{}
	tabs := NewTabWidget(r, "Test.TabWidget")

	game := tabs.AddTab("Game", "GameOptions")
	NewStaticText(tabs, "game.text", "g")
	audio := tabs.AddTab("Audio", "AudioOptions")
	NewStaticText(tabs, "audio.text", "a")
	tabs.AddTab("Backend", "BackendOptions")

	if got := len(tabs.Tab(game).Children()); got != 1 {
		t.Errorf("game tab has %d children", got)
	}
	if tabs.Tab(audio).Children()[0].Name() != "audio.text" {
		t.Errorf("widget landed in wrong tab")
	}

	tabs.SetActiveTab(2)
	tabs.RemoveTab(game)
	if tabs.TabCount() != 2 || tabs.FindTab("Game") != -1 {
		t.Fatalf("tabs after removal: %v", tabs.Titles())
	}
	if tabs.ActiveTab() != 1 {
		t.Errorf("active tab = %d, want 1", tabs.ActiveTab())
	}

	if FindWidget(r, "audio.text") == nil {
		t.Error("FindWidget did not search tab pages")
	}
	if FindWidget(r, "game.text") != nil {
		t.Error("removed tab still owns its widgets")
	}
}
