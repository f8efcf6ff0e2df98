package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/keymap"
	"github.com/user-none/eblitmenu/storage"
)

type testOptionsDialog struct {
	OptionsDialog
	tabs    *TabWidget
	applied int
}

func newTestOptionsDialog(mgr *Manager, cfg *storage.ConfigManager, keymaps keymap.Array) *testOptionsDialog {
	d := &testOptionsDialog{}
	d.InitOptions(mgr, cfg, "", "TestOptions", d)
	d.tabs = NewTabWidget(d, "TestOptions.TabWidget")
	d.tabs.AddTab("Audio", "TestOptions_Audio")
	d.AddVolumeControls(d.tabs, "TestOptions_Audio.")
	d.AddSubtitleControls(d.tabs, "TestOptions_Audio.", MaxTalkSpeed)
	if len(keymaps) > 0 {
		d.tabs.AddTab("Keymaps", "TestOptions_KeyMapper")
		d.AddKeyMapperControls(d.tabs, "TestOptions_KeyMapper.", keymaps)
	}
	return d
}

func (d *testOptionsDialog) Apply() {
	d.applied++
	d.OptionsDialog.Apply()
}

func newTestConfig() *storage.ConfigManager {
	cfg := storage.NewConfigManager(nil, nil)
	RegisterDefaults(cfg)
	cfg.AddGameDomain("demo")
	cfg.SetActiveDomain("demo")
	return cfg
}

func TestOptionsDialogBuildReadsConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.SetInt(KeyMusicVolume, 100, "")
	cfg.SetBool(KeySubtitles, true, "")
	cfg.SetBool(KeySpeechMute, true, "")
	cfg.SetInt(KeyTalkSpeed, 200, "")

	mgr := NewManager(nil, 640, 480)
	d := newTestOptionsDialog(mgr, cfg, nil)
	mgr.RunModal(d, nil)

	if d.musicVolume.Value() != 100 || d.sfxVolume.Value() != 192 {
		t.Errorf("volumes = %d/%d", d.musicVolume.Value(), d.sfxVolume.Value())
	}
	if d.SubtitleMode() != SubtitleModeSubtitles || d.subToggle.Label() != "Subtitles" {
		t.Errorf("subtitle mode = %d (%q)", d.SubtitleMode(), d.subToggle.Label())
	}
	if d.subSpeed.Value() != 200 {
		t.Errorf("talk speed = %d", d.subSpeed.Value())
	}
}

func TestOptionsDialogMuteDisablesSliders(t *testing.T) {
	mgr := NewManager(nil, 640, 480)
	d := newTestOptionsDialog(mgr, newTestConfig(), nil)
	mgr.RunModal(d, nil)

	d.muteCheckbox.Toggle()
	if d.musicVolume.IsEnabled() || d.speechVolume.IsEnabled() {
		t.Error("sliders enabled while muted")
	}
	d.muteCheckbox.Toggle()
	if !d.sfxVolume.IsEnabled() {
		t.Error("sliders stayed disabled after unmute")
	}
}

func TestOptionsDialogOKAppliesThroughOuterDialog(t *testing.T) {
	cfg := newTestConfig()
	mgr := NewManager(nil, 640, 480)
	d := newTestOptionsDialog(mgr, cfg, nil)
	mgr.RunModal(d, nil)

	d.musicVolume.SetValue(64)
	d.HandleCommand(d.subToggle, CmdSubtitleToggle, 0) // Both -> Subtitles
	d.HandleCommand(nil, CmdOK, 0)

	if d.applied != 1 {
		t.Errorf("outer Apply called %d times", d.applied)
	}
	if d.IsOpen() {
		t.Error("OK did not close")
	}
	if got := cfg.GetInt(KeyMusicVolume, "demo"); got != 64 {
		t.Errorf("music_volume in game domain = %d", got)
	}
	if !cfg.GetBool(KeySpeechMute, "demo") || !cfg.GetBool(KeySubtitles, "demo") {
		t.Error("subtitle mode not stored")
	}
}

func TestOptionsDialogCancelDoesNotApply(t *testing.T) {
	cfg := newTestConfig()
	mgr := NewManager(nil, 640, 480)
	d := newTestOptionsDialog(mgr, cfg, nil)
	mgr.RunModal(d, nil)

	d.musicVolume.SetValue(10)
	d.HandleCommand(nil, CmdClose, 0)

	if d.applied != 0 || cfg.HasKey(KeyMusicVolume, "demo") {
		t.Error("cancel wrote configuration")
	}
}

func TestOptionsDialogKeyRemap(t *testing.T) {
	km := keymap.New("game", "Game")
	km.AddAction("jump", "Jump", ebiten.KeySpace)
	km.AddAction("fire", "Fire", ebiten.KeyX)

	cfg := newTestConfig()
	mgr := NewManager(nil, 640, 480)
	d := newTestOptionsDialog(mgr, cfg, keymap.Array{km})
	mgr.RunModal(d, nil)

	jump := d.keymapRows[0]
	if jump.bindings.Label() != keymap.FormatKeys([]ebiten.Key{ebiten.KeySpace}) {
		t.Errorf("bindings label = %q", jump.bindings.Label())
	}

	jump.remap.Click()
	if !d.CapturingKey() {
		t.Fatal("remap did not start key capture")
	}
	d.CaptureKey(ebiten.KeyX)
	if d.CapturingKey() {
		t.Error("capture did not finish")
	}
	if got := km.Bindings("jump"); len(got) != 1 || got[0] != ebiten.KeyX {
		t.Errorf("jump bindings = %v", got)
	}
	if got := km.Bindings("fire"); len(got) != 0 {
		t.Errorf("fire kept stolen key: %v", got)
	}

	d.HandleCommand(nil, CmdOK, 0)
	if got := cfg.Get(keymap.ConfigKey("game", "jump"), "demo"); got != keymap.FormatKeys([]ebiten.Key{ebiten.KeyX}) {
		t.Errorf("stored jump = %q", got)
	}
}

func TestOptionsDialogRemapEscapeCancels(t *testing.T) {
	km := keymap.New("game", "Game")
	km.AddAction("jump", "Jump", ebiten.KeySpace)

	mgr := NewManager(nil, 640, 480)
	d := newTestOptionsDialog(mgr, newTestConfig(), keymap.Array{km})
	mgr.RunModal(d, nil)

	d.keymapRows[0].remap.Click()
	d.CaptureKey(ebiten.KeyEscape)
	if got := km.Bindings("jump"); len(got) != 1 || got[0] != ebiten.KeySpace {
		t.Errorf("escape changed bindings: %v", got)
	}

	km.SetBindings("jump", ebiten.KeyA)
	d.keymapRows[0].reset.Click()
	if got := km.Bindings("jump"); len(got) != 1 || got[0] != ebiten.KeySpace {
		t.Errorf("reset bindings = %v", got)
	}
}

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestAchievementsControlsMaskHidden(t *testing.T) {
	mgr := achievements.NewManager(memStore{})
	mgr.SetActiveDomain(achievements.Info{
		Platform: "test",
		AppID:    "demo",
		Descriptions: []achievements.AchievementDescription{
			{ID: "first", Title: "First", Comment: "Do it"},
			{ID: "secret", Title: "Secret", Comment: "Shh", Hidden: true},
		},
		Stats: []achievements.StatDescription{{ID: "bounces", Comment: "Bounces"}},
	})
	mgr.SetAchievement("first")
	mgr.SetStat("bounces", 12345)

	r := &recorder{}
	o := &OptionsDialog{}
	o.AddAchievementsControls(r, "A.", mgr)
	o.AddStatisticsControls(r, "S.", mgr)

	first, _ := FindWidget(r, "A.Achievement1.Checkbox").(*Checkbox)
	secret, _ := FindWidget(r, "A.Achievement2.Checkbox").(*Checkbox)
	if first == nil || secret == nil {
		t.Fatal("achievement checkboxes missing")
	}
	if !first.State() || first.IsEnabled() {
		t.Error("unlocked achievement should be checked and read-only")
	}
	if secret.Label() == "Secret" || FindWidget(r, "A.Achievement2.Description") != nil {
		t.Error("hidden achievement revealed")
	}

	unlocked, _ := FindWidget(r, "S.StatAchievements").(*StaticText)
	if unlocked == nil || unlocked.Label() != "Achievements unlocked: 1 / 2" {
		t.Errorf("unlock summary = %v", unlocked)
	}
	stat, _ := FindWidget(r, "S.Stat1").(*StaticText)
	if stat == nil || stat.Label() != "Bounces: 12,345" {
		t.Errorf("stat label = %v", stat)
	}
}
