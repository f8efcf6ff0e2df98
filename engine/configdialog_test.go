package engine

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/keymap"
)

var testOptions = ExtraGuiOptions{
	{Label: "Trails", ConfigOption: "trails", DefaultState: true},
	{Label: "Colors", ConfigOption: "colors", GroupLeaderID: 1},
	{Label: "Rainbow", ConfigOption: "rainbow", GroupID: 1},
}

func testKeymaps() keymap.Array {
	km := keymap.New("game", "Game")
	km.AddAction("pause", "Pause", ebiten.KeyP)
	return keymap.Array{km}
}

func TestConfigDialogTabs(t *testing.T) {
	tests := []struct {
		name     string
		features []Feature
		options  ExtraGuiOptions
		keymaps  bool
		backend  bool
		info     achievements.Info
		want     []string
	}{
		{
			name: "audio only",
			want: []string{"Audio"},
		},
		{
			name:     "runtime options without engine options",
			features: []Feature{FeatureSupportsChangingOptionsDuringRuntime},
			want:     []string{"Audio"},
		},
		{
			name:    "engine options without runtime support",
			options: testOptions,
			want:    []string{"Audio"},
		},
		{
			name:     "everything",
			features: []Feature{FeatureSupportsChangingOptionsDuringRuntime},
			options:  testOptions,
			keymaps:  true,
			backend:  true,
			info: achievements.Info{
				Platform:     "none",
				AppID:        "demo",
				Descriptions: []achievements.AchievementDescription{{ID: "first", Title: "First"}},
				Stats:        []achievements.StatDescription{{ID: "bounces", Comment: "Bounces"}},
			},
			want: []string{"Game", "Audio", "Keymaps", "Backend", "Achievements", "Statistics"},
		},
		{
			name: "statistics without achievements",
			info: achievements.Info{
				Platform: "none",
				AppID:    "demo",
				Stats:    []achievements.StatDescription{{ID: "bounces", Comment: "Bounces"}},
			},
			want: []string{"Audio", "Statistics"},
		},
		{
			name: "achievements without statistics",
			info: achievements.Info{
				Platform:     "none",
				AppID:        "demo",
				Descriptions: []achievements.AchievementDescription{{ID: "first", Title: "First"}},
			},
			want: []string{"Audio", "Achievements"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContext(tt.features...)
			tc.meta.options = tt.options
			tc.meta.info = tt.info
			if tt.keymaps {
				tc.meta.keymaps = testKeymaps()
			}
			if tt.backend {
				tc.backend.options = func(boss gui.Container, name, domain string) gui.OptionsWidget {
					return BuildExtraOptionsWidget(boss, name, domain, tc.Config, ExtraGuiOptions{
						{Label: "Fullscreen", ConfigOption: "fullscreen"},
					})
				}
			}

			d := NewConfigDialog(tc.Context)
			if got := d.Tabs().Titles(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tabs = %v, want %v", got, tt.want)
			}
			if d.Tabs().ActiveTab() != 0 {
				t.Errorf("active tab = %d, want 0", d.Tabs().ActiveTab())
			}
		})
	}
}

func TestConfigDialogEngineDomain(t *testing.T) {
	tc := newTestContext(FeatureSupportsChangingOptionsDuringRuntime)
	tc.meta.options = testOptions
	d := NewConfigDialog(tc.Context)

	if !reflect.DeepEqual(tc.meta.domains, []string{"demo"}) {
		t.Errorf("engine widget domains = %v", tc.meta.domains)
	}
	w, ok := d.EngineOptions().(*ExtraGuiOptionsWidget)
	if !ok {
		t.Fatalf("engine options = %T", d.EngineOptions())
	}
	if w.ParentDialog() != d {
		t.Error("engine widget not parented to the dialog")
	}
	if w.DialogLayout() != "GlobalConfig_Engine_Container" {
		t.Errorf("layout = %q", w.DialogLayout())
	}
	if d.FindWidget("GlobalConfig_Engine_Container.customOption1Checkbox") == nil {
		t.Error("engine checkbox not reachable from the dialog")
	}
}

func TestConfigDialogBackendDomain(t *testing.T) {
	tc := newTestContext()
	NewConfigDialog(tc.Context)

	if !reflect.DeepEqual(tc.backend.domains, []string{"demo"}) {
		t.Errorf("backend widget domains = %v, want [demo]", tc.backend.domains)
	}
}

func TestConfigDialogSubtitleControls(t *testing.T) {
	for _, supported := range []bool{false, true} {
		var features []Feature
		if supported {
			features = append(features, FeatureSupportsSubtitleOptions)
		}
		tc := newTestContext(features...)
		d := NewConfigDialog(tc.Context)
		got := d.FindWidget("GlobalConfig_Audio.subToggleButton") != nil
		if got != supported {
			t.Errorf("subtitles supported=%v: controls present=%v", supported, got)
		}
	}
}

func TestConfigDialogOKApplies(t *testing.T) {
	tc := newTestContext(FeatureSupportsChangingOptionsDuringRuntime)
	tc.meta.options = testOptions
	d := NewConfigDialog(tc.Context)
	tc.GUI.RunModal(d, nil)

	w := d.EngineOptions().(*ExtraGuiOptionsWidget)
	if !w.Checkboxes()[0].State() {
		t.Fatal("default state not loaded on open")
	}
	w.Checkboxes()[0].Toggle()
	slider := d.FindWidget("GlobalConfig_Audio.vcMusicSlider").(*gui.Slider)
	slider.SetValue(64)

	d.FindWidget("GlobalConfig.Ok").(*gui.Button).Click()

	if d.IsOpen() {
		t.Error("dialog open after OK")
	}
	if !tc.Config.HasKey("trails", "demo") || tc.Config.GetBool("trails", "demo") {
		t.Error("engine option not saved to the game domain")
	}
	if got := tc.Config.GetInt(gui.KeyMusicVolume, ""); got != 64 {
		t.Errorf("music volume = %d, want 64", got)
	}
	if tc.flushes != 1 {
		t.Errorf("flushes = %d, want 1", tc.flushes)
	}
}

func TestConfigDialogCancelDiscards(t *testing.T) {
	tc := newTestContext(FeatureSupportsChangingOptionsDuringRuntime)
	tc.meta.options = testOptions
	d := NewConfigDialog(tc.Context)
	tc.GUI.RunModal(d, nil)

	d.EngineOptions().(*ExtraGuiOptionsWidget).Checkboxes()[0].Toggle()
	d.FindWidget("GlobalConfig_Audio.vcMusicSlider").(*gui.Slider).SetValue(10)
	d.FindWidget("GlobalConfig.Cancel").(*gui.Button).Click()

	if d.IsOpen() {
		t.Error("dialog open after cancel")
	}
	if tc.Config.HasKey("trails", "demo") {
		t.Error("cancel saved engine options")
	}
	if got := tc.Config.GetInt(gui.KeyMusicVolume, ""); got != 192 {
		t.Errorf("music volume = %d, want default", got)
	}
	if tc.flushes != 0 {
		t.Errorf("flushes = %d, want 0", tc.flushes)
	}
}

func TestConfigDialogReflowDefinesEngineLayout(t *testing.T) {
	tc := newTestContext(FeatureSupportsChangingOptionsDuringRuntime)
	tc.meta.options = testOptions
	theme := tc.GUI.Theme()
	if theme.HasDialog("GlobalConfig_Engine_Container") {
		t.Fatal("layout defined before the dialog ran")
	}

	tc.GUI.RunModal(NewConfigDialog(tc.Context), nil)
	if !theme.HasDialog("GlobalConfig_Engine_Container") {
		t.Error("opening the dialog did not define the engine layout")
	}
}

func TestConfigDialogAchievementsVisibleToManager(t *testing.T) {
	tc := newTestContext()
	tc.meta.info = achievements.Info{
		Platform:     "none",
		AppID:        "demo",
		Descriptions: []achievements.AchievementDescription{{ID: "first", Title: "First"}},
	}
	d := NewConfigDialog(tc.Context)

	if !tc.Achievements.IsReady() {
		t.Fatal("manager not pointed at the game")
	}
	cb, ok := d.FindWidget("GlobalConfig_Achievements.Achievement1.Checkbox").(*gui.Checkbox)
	if !ok || cb.IsEnabled() || cb.State() {
		t.Errorf("achievement checkbox = %+v", cb)
	}
}
