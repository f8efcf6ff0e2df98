package gui

import (
	"strings"
	"testing"
	"time"
)

type fakeSaves struct {
	saves   []SaveStateDescriptor
	maxSlot int
	target  string
}

func (f *fakeSaves) ListSaves(target string) []SaveStateDescriptor {
	f.target = target
	return f.saves
}

func (f *fakeSaves) MaxSaveSlot() int { return f.maxSlot }

func newTestSaves(now time.Time) *fakeSaves {
	return &fakeSaves{
		maxSlot: 3,
		saves: []SaveStateDescriptor{
			{Slot: 1, Description: "Castle ~gate~", SaveTime: now.Add(-3 * time.Minute), PlayTime: 63 * time.Minute},
		},
	}
}

func TestSaveLoadChooserLoadMode(t *testing.T) {
	mgr := NewManager(nil, 640, 480)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	saves := newTestSaves(now)
	c := NewSaveLoadChooser(mgr, "Load game:", "Load", false)
	c.now = func() time.Time { return now }

	got := -2
	c.RunModalForTarget(saves, "demo", func(slot int) { got = slot })

	if saves.target != "demo" {
		t.Errorf("listed target %q", saves.target)
	}
	rows := c.SlotButtons()
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if rows[1].Label() != " 1. Castle ~gate~" {
		t.Errorf("row label = %q", rows[1].Label())
	}
	if rows[0].IsEnabled() || !rows[1].IsEnabled() {
		t.Error("load mode should only enable existing saves")
	}
	if c.DescriptionEdit() != nil {
		t.Error("load mode has a description field")
	}

	rows[0].Click()
	if c.Selected() != -1 {
		t.Error("empty slot selectable in load mode")
	}
	rows[1].Click()
	if !strings.Contains(c.Info(), "3 minutes ago") || !strings.Contains(c.Info(), "Playtime:") {
		t.Errorf("info = %q", c.Info())
	}

	c.HandleCommand(nil, CmdChoose, 0)
	if got != 1 {
		t.Errorf("result = %d, want 1", got)
	}
}

func TestSaveLoadChooserSaveMode(t *testing.T) {
	mgr := NewManager(nil, 640, 480)
	now := time.Now()
	saves := newTestSaves(now)
	c := NewSaveLoadChooser(mgr, "Save game:", "Save", true)

	got := -2
	c.RunModalForTarget(saves, "demo", func(slot int) { got = slot })

	rows := c.SlotButtons()
	if !rows[0].IsEnabled() {
		t.Fatal("save mode should allow empty slots")
	}
	rows[1].Click()
	if c.DescriptionEdit().Text() != "Castle ~gate~" {
		t.Errorf("description not prefilled: %q", c.DescriptionEdit().Text())
	}

	rows[2].Click()
	edit := c.DescriptionEdit()
	if edit.Text() != "" {
		t.Errorf("empty slot prefilled %q", edit.Text())
	}
	for _, ch := range "  my save " {
		edit.InsertChar(ch)
	}
	c.HandleCommand(nil, CmdChoose, 0)

	if got != 2 {
		t.Errorf("result = %d, want 2", got)
	}
	if c.ResultString() != "  my save " {
		t.Errorf("result string = %q", c.ResultString())
	}
}

func TestSaveLoadChooserCancel(t *testing.T) {
	mgr := NewManager(nil, 640, 480)
	c := NewSaveLoadChooser(mgr, "Save game:", "Save", true)

	got := -2
	c.RunModalForTarget(newTestSaves(time.Now()), "demo", func(slot int) { got = slot })
	c.SlotButtons()[0].Click()
	c.HandleCommand(nil, CmdClose, 0)

	if got != -1 {
		t.Errorf("cancel result = %d, want -1", got)
	}
	if mgr.IsActive() {
		t.Error("chooser still open")
	}
}

func TestSaveLoadChooserChooseNeedsSelection(t *testing.T) {
	mgr := NewManager(nil, 640, 480)
	c := NewSaveLoadChooser(mgr, "Save game:", "Save", true)
	c.RunModalForTarget(newTestSaves(time.Now()), "demo", nil)

	c.HandleCommand(nil, CmdChoose, 0)
	if !c.IsOpen() {
		t.Error("choose without a slot closed the chooser")
	}
}

func TestCreateDefaultSaveDescription(t *testing.T) {
	c := NewSaveLoadChooser(NewManager(nil, 640, 480), "Save game:", "Save", true)
	tests := []struct {
		slot int
		want string
	}{
		{0, "Save 1"},
		{4, "Save 5"},
	}
	for _, tt := range tests {
		if got := c.CreateDefaultSaveDescription(tt.slot); got != tt.want {
			t.Errorf("slot %d: %q, want %q", tt.slot, got, tt.want)
		}
	}
}
