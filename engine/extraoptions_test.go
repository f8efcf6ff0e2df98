package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/storage"
)

type optionsBoss struct {
	children []gui.Widget
}

func (b *optionsBoss) AddWidget(w gui.Widget)      { b.children = append(b.children, w) }
func (b *optionsBoss) RemoveWidget(w gui.Widget)   {}
func (b *optionsBoss) Children() []gui.Widget      { return b.children }
func (b *optionsBoss) Target() gui.CommandReceiver { return nil }

func newOptionsConfig() *storage.ConfigManager {
	cfg := storage.NewConfigManager(nil, nil)
	cfg.AddGameDomain("demo")
	cfg.AddGameDomain("other")
	cfg.SetActiveDomain("demo")
	return cfg
}

func TestExtraOptionsLayoutByDomain(t *testing.T) {
	cfg := newOptionsConfig()
	tests := []struct {
		domain string
		want   string
	}{
		{"demo", "GlobalConfig_Engine_Container"},
		{"other", "GameOptions_Engine_Container"},
	}

	for _, tt := range tests {
		w := NewExtraGuiOptionsWidget(&optionsBoss{}, "Container", tt.domain, cfg, testOptions)
		if w.DialogLayout() != tt.want {
			t.Errorf("domain %s: layout %q, want %q", tt.domain, w.DialogLayout(), tt.want)
		}
		for i, cb := range w.Checkboxes() {
			want := fmt.Sprintf("%s.customOption%dCheckbox", tt.want, i+1)
			if cb.Name() != want {
				t.Errorf("checkbox %d named %q, want %q", i, cb.Name(), want)
			}
		}
	}
}

func TestExtraOptionsNoOptions(t *testing.T) {
	boss := &optionsBoss{}
	if w := BuildExtraOptionsWidget(boss, "Container", "demo", newOptionsConfig(), nil); w != nil {
		t.Errorf("widget = %v, want nil", w)
	}
	if len(boss.children) != 0 {
		t.Error("nil widget still added to boss")
	}
}

func TestExtraOptionsLoad(t *testing.T) {
	cfg := newOptionsConfig()
	cfg.SetBool("colors", true, "demo")
	cfg.SetBool("rainbow", true, "demo")
	cfg.SetBool("trails", false, "other")

	w := NewExtraGuiOptionsWidget(&optionsBoss{}, "Container", "demo", cfg, testOptions)
	w.Load()

	want := []bool{true, true, true}
	for i, cb := range w.Checkboxes() {
		if cb.State() != want[i] {
			t.Errorf("option %d state = %v, want %v", i, cb.State(), want[i])
		}
	}
	if !w.Checkboxes()[2].IsEnabled() {
		t.Error("member disabled with its leader checked")
	}
}

func TestExtraOptionsLoadDisablesGroup(t *testing.T) {
	cfg := newOptionsConfig()
	w := NewExtraGuiOptionsWidget(&optionsBoss{}, "Container", "demo", cfg, testOptions)
	w.Load()

	if w.Checkboxes()[1].State() {
		t.Fatal("leader checked without a stored value")
	}
	if w.Checkboxes()[2].IsEnabled() {
		t.Error("member enabled with its leader unchecked")
	}
	if !w.Checkboxes()[0].IsEnabled() {
		t.Error("ungrouped option disabled")
	}
}

func TestExtraOptionsGroupLeaderToggle(t *testing.T) {
	cfg := newOptionsConfig()
	w := NewExtraGuiOptionsWidget(&optionsBoss{}, "Container", "demo", cfg, testOptions)
	w.Load()
	leader, member := w.Checkboxes()[1], w.Checkboxes()[2]

	leader.Toggle()
	if !member.IsEnabled() {
		t.Error("member still disabled after checking the leader")
	}
	leader.Toggle()
	if member.IsEnabled() {
		t.Error("member enabled after unchecking the leader")
	}

	// Toggling a member fires nothing
	member.SetEnabled(true)
	member.Toggle()
	if !leader.IsEnabled() || leader.State() {
		t.Error("member toggle changed its leader")
	}
}

func TestExtraOptionsSave(t *testing.T) {
	cfg := newOptionsConfig()
	w := NewExtraGuiOptionsWidget(&optionsBoss{}, "Container", "demo", cfg, testOptions)
	w.Load()

	// A checked member of a disabled group saves as false
	w.Checkboxes()[2].SetState(true)
	if !w.Save() {
		t.Fatal("Save reported failure")
	}

	tests := []struct {
		key  string
		want bool
	}{
		{"trails", true},
		{"colors", false},
		{"rainbow", false},
	}
	for _, tt := range tests {
		if !cfg.HasKey(tt.key, "demo") {
			t.Errorf("%s not stored", tt.key)
		}
		if got := cfg.GetBool(tt.key, "demo"); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestExtraOptionsDefineLayout(t *testing.T) {
	cfg := newOptionsConfig()
	w := NewExtraGuiOptionsWidget(&optionsBoss{}, "Container", "demo", cfg, testOptions)
	theme := gui.NewThemeEval()

	w.ReflowLayout(theme)
	layout := theme.Dialog("GlobalConfig_Engine_Container")
	if layout == nil {
		t.Fatal("layout not defined")
	}
	if layout.Overlay != "Container" {
		t.Errorf("overlay = %q", layout.Overlay)
	}
	if layout.Root.Layout != gui.LayoutVertical || layout.Root.Padding != (gui.Insets{}) {
		t.Errorf("root = %+v", layout.Root)
	}

	slots := layout.Widgets()
	if len(slots) != len(testOptions) {
		t.Fatalf("slots = %d, want %d", len(slots), len(testOptions))
	}
	for i, s := range slots {
		if want := fmt.Sprintf("customOption%dCheckbox", i+1); s.Name != want || s.Type != "Checkbox" {
			t.Errorf("slot %d = %s/%s", i, s.Name, s.Type)
		}
	}

	// An existing layout is left alone
	theme.AddDialog("GlobalConfig_Engine_Container", "Theme").
		AddLayout(gui.LayoutHorizontal).CloseLayout().CloseDialog()
	w.ReflowLayout(theme)
	if theme.Dialog("GlobalConfig_Engine_Container").Overlay != "Theme" {
		t.Error("reflow replaced a theme defined layout")
	}
}

func TestErrorDescription(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"description", NewError(ErrWritingFailed, "Disk full"), "Disk full"},
		{"code text", NewError(ErrPathNotFound, ""), "Path not found"},
		{"wrapped", fmt.Errorf("slot 2: %w", NewError(ErrUnsupported, "")), "Operation not supported"},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorDescription(tt.err); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFeatureString(t *testing.T) {
	if FeatureSupportsHelp.String() != "help" || Feature(99).String() != "unknown" {
		t.Errorf("names = %s, %s", FeatureSupportsHelp, Feature(99))
	}
}

func TestExtraOptionsLabelKeepsPercent(t *testing.T) {
	options := ExtraGuiOptions{{Label: "Volume 100%", Tooltip: "Play at 100% speed", ConfigOption: "loud"}}
	w := NewExtraGuiOptionsWidget(&optionsBoss{}, "Container", "demo", newOptionsConfig(), options)

	if got := w.Checkboxes()[0].Label(); got != "Volume 100%" {
		t.Errorf("label = %q, want %q", got, "Volume 100%")
	}
}
