package gui

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/i18n"
	"github.com/user-none/eblitmenu/keymap"
	"github.com/user-none/eblitmenu/storage"
)

// Configuration keys written by the options dialog
const (
	KeyMusicVolume  = "music_volume"
	KeySFXVolume    = "sfx_volume"
	KeySpeechVolume = "speech_volume"
	KeyMuteAll      = "mute"
	KeySubtitles    = "subtitles"
	KeySpeechMute   = "speech_mute"
	KeyTalkSpeed    = "talkspeed"
)

const (
	MaxVolume    = 256
	MaxTalkSpeed = 255
)

// Subtitle modes
const (
	SubtitleModeSpeech = iota
	SubtitleModeBoth
	SubtitleModeSubtitles
	subtitleModeCount
)

// RegisterDefaults installs the default values of the options keys
func RegisterDefaults(cfg *storage.ConfigManager) {
	cfg.RegisterDefaultInt(KeyMusicVolume, 192)
	cfg.RegisterDefaultInt(KeySFXVolume, 192)
	cfg.RegisterDefaultInt(KeySpeechVolume, 192)
	cfg.RegisterDefaultBool(KeyMuteAll, false)
	cfg.RegisterDefaultBool(KeySubtitles, true)
	cfg.RegisterDefaultBool(KeySpeechMute, false)
	cfg.RegisterDefaultInt(KeyTalkSpeed, 60)
}

// Applier is implemented by dialogs that persist their widgets on OK
type Applier interface {
	Apply()
}

// KeyCapturer is implemented by dialogs waiting for a raw key press
type KeyCapturer interface {
	CapturingKey() bool
	CaptureKey(key ebiten.Key)
}

type keymapRow struct {
	km       *keymap.Keymap
	action   *keymap.Action
	bindings *StaticText
	remap    *Button
	reset    *Button
}

// OptionsDialog is the base of dialogs editing a configuration domain.
// Embedders add the control groups they need and may override Build and
// Apply, calling through to the base.
type OptionsDialog struct {
	DialogBase
	cfg    *storage.ConfigManager
	domain string

	musicVolume   *Slider
	sfxVolume     *Slider
	speechVolume  *Slider
	muteCheckbox  *Checkbox
	volumeEnabled bool

	subToggle       *Button
	subSpeed        *Slider
	subMode         int
	subtitleEnabled bool

	keymaps    keymap.Array
	keymapRows []*keymapRow
	remapping  *keymapRow

	backendOptions OptionsWidget
}

// InitOptions binds the dialog to mgr and the domain it edits
func (o *OptionsDialog) InitOptions(mgr *Manager, cfg *storage.ConfigManager, domain, name string, self Dialog) {
	o.Init(mgr, name, self)
	o.cfg = cfg
	o.domain = domain
}

// Config returns the configuration store
func (o *OptionsDialog) Config() *storage.ConfigManager { return o.cfg }

// Domain returns the edited domain; "" means the active settings
func (o *OptionsDialog) Domain() string { return o.domain }

// AddVolumeControls adds the music, sound effect and speech sliders and the
// mute checkbox to boss
func (o *OptionsDialog) AddVolumeControls(boss Container, prefix string) {
	NewStaticText(boss, prefix+"vcMusicText", i18n.T("Music volume:"))
	o.musicVolume = NewSlider(boss, prefix+"vcMusicSlider", i18n.T("Music volume"), 0, MaxVolume, CmdNone)
	NewStaticText(boss, prefix+"vcSfxText", i18n.T("SFX volume:"))
	o.sfxVolume = NewSlider(boss, prefix+"vcSfxSlider", i18n.T("Special sound effects volume"), 0, MaxVolume, CmdNone)
	NewStaticText(boss, prefix+"vcSpeechText", i18n.T("Speech volume:"))
	o.speechVolume = NewSlider(boss, prefix+"vcSpeechSlider", i18n.T("Speech volume"), 0, MaxVolume, CmdNone)
	o.muteCheckbox = NewCheckbox(boss, prefix+"vcMuteCheckbox", i18n.T("Mute all"), "", CmdMuteAllChanged)
	o.volumeEnabled = true
}

// SetVolumeSettingsState enables or disables the volume group. Sliders
// stay disabled while mute is checked.
func (o *OptionsDialog) SetVolumeSettingsState(enabled bool) {
	if o.muteCheckbox == nil {
		return
	}
	o.volumeEnabled = enabled
	sliders := enabled && !o.muteCheckbox.State()
	o.musicVolume.SetEnabled(sliders)
	o.sfxVolume.SetEnabled(sliders)
	o.speechVolume.SetEnabled(sliders)
	o.muteCheckbox.SetEnabled(enabled)
}

// AddSubtitleControls adds the subtitle mode toggle and talk speed slider
func (o *OptionsDialog) AddSubtitleControls(boss Container, prefix string, maxSliderVal int) {
	NewStaticText(boss, prefix+"subToggleDesc", i18n.T("Text and speech:"))
	o.subToggle = NewButton(boss, prefix+"subToggleButton", "", i18n.T("Show subtitles and play speech"), CmdSubtitleToggle, 0)
	NewStaticText(boss, prefix+"subSubtitleSpeedDesc", i18n.T("Subtitle speed:"))
	o.subSpeed = NewSlider(boss, prefix+"subSubtitleSpeedSlider", "", 0, maxSliderVal, CmdNone)
	o.subtitleEnabled = true
	o.setSubtitleMode(SubtitleModeBoth)
}

// SetSubtitleSettingsState enables or disables the subtitle group
func (o *OptionsDialog) SetSubtitleSettingsState(enabled bool) {
	if o.subToggle == nil {
		return
	}
	o.subtitleEnabled = enabled
	o.subToggle.SetEnabled(enabled)
	o.subSpeed.SetEnabled(enabled)
}

// SubtitleMode returns the selected subtitle mode
func (o *OptionsDialog) SubtitleMode() int { return o.subMode }

func (o *OptionsDialog) setSubtitleMode(mode int) {
	o.subMode = mode % subtitleModeCount
	if o.subToggle == nil {
		return
	}
	labels := [subtitleModeCount]string{
		i18n.T("Speech"),
		i18n.T("Both"),
		i18n.T("Subtitles"),
	}
	o.subToggle.label = labels[o.subMode]
}

// AddKeyMapperControls adds one row per action of every keymap with its
// bound keys and remap/reset buttons
func (o *OptionsDialog) AddKeyMapperControls(boss Container, prefix string, keymaps keymap.Array) {
	o.keymaps = keymaps
	o.keymapRows = nil
	for _, km := range keymaps {
		NewStaticText(boss, prefix+km.ID+".Title", km.Description)
		for _, a := range km.Actions {
			base := prefix + km.ID + "." + a.ID
			NewStaticText(boss, base+".Description", a.Description)
			row := &keymapRow{km: km, action: a}
			row.bindings = NewStaticText(boss, base+".Bindings", "")
			row.remap = NewButton(boss, base+".Remap", i18n.T("Remap"), i18n.T("Bind a new key to this action"), CmdRemap, 0)
			row.reset = NewButton(boss, base+".Reset", i18n.T("Reset"), i18n.T("Restore the default keys"), CmdResetMapping, 0)
			o.keymapRows = append(o.keymapRows, row)
		}
	}
	o.refreshKeymapRows()
}

// Keymaps returns the keymaps being edited
func (o *OptionsDialog) Keymaps() keymap.Array { return o.keymaps }

func (o *OptionsDialog) refreshKeymapRows() {
	for _, row := range o.keymapRows {
		if row == o.remapping {
			row.bindings.SetLabel(i18n.T("Press a key..."))
			continue
		}
		keys := keymap.FormatKeys(row.km.Bindings(row.action.ID))
		if keys == "" {
			keys = i18n.T("(none)")
		}
		row.bindings.SetLabel(keys)
	}
}

// CapturingKey reports whether the dialog waits for a key to bind
func (o *OptionsDialog) CapturingKey() bool { return o.remapping != nil }

// CaptureKey binds key to the action being remapped. Escape cancels.
func (o *OptionsDialog) CaptureKey(key ebiten.Key) {
	row := o.remapping
	if row == nil {
		return
	}
	o.remapping = nil
	if key != ebiten.KeyEscape {
		row.km.SetBindings(row.action.ID, key)
	}
	o.refreshKeymapRows()
}

// AddAchievementsControls lists the achievements of the active domain.
// Hidden achievements are masked until unlocked.
func (o *OptionsDialog) AddAchievementsControls(boss Container, prefix string, mgr *achievements.Manager) {
	for i, a := range mgr.Descriptions() {
		achieved := mgr.IsAchieved(a.ID)
		title, comment := a.Title, a.Comment
		if a.Hidden && !achieved {
			title = i18n.T("Hidden achievement")
			comment = ""
		}
		name := fmt.Sprintf("%sAchievement%d", prefix, i+1)
		cb := NewCheckbox(boss, name+".Checkbox", title, comment, CmdNone)
		cb.SetState(achieved)
		cb.SetEnabled(false)
		if comment != "" {
			NewStaticText(boss, name+".Description", comment)
		}
		if at, ok := mgr.AchievedAt(a.ID); ok {
			NewStaticText(boss, name+".Unlocked", i18n.T("Unlocked %s", humanize.Time(at)))
		}
	}
}

// AddStatisticsControls shows the unlock count and every statistic
func (o *OptionsDialog) AddStatisticsControls(boss Container, prefix string, mgr *achievements.Manager) {
	if n := mgr.GetAchievementCount(); n > 0 {
		NewStaticText(boss, prefix+"StatAchievements", i18n.T("Achievements unlocked: %d / %d", mgr.AchievedCount(), n))
	}
	for i, s := range mgr.Stats() {
		label := fmt.Sprintf("%s: %s", s.Comment, humanize.Comma(int64(mgr.GetStat(s.ID))))
		NewStaticText(boss, fmt.Sprintf("%sStat%d", prefix, i+1), label)
	}
}

// SetBackendOptions records the backend's options widget for load and save
func (o *OptionsDialog) SetBackendOptions(w OptionsWidget) {
	o.backendOptions = w
	if w != nil {
		w.SetParentDialog(o.Self())
	}
}

// BackendOptions returns the backend's options widget, or nil
func (o *OptionsDialog) BackendOptions() OptionsWidget { return o.backendOptions }

// Build loads every control group from the configuration store
func (o *OptionsDialog) Build() {
	o.remapping = nil
	if o.muteCheckbox != nil {
		o.musicVolume.SetValue(o.cfg.GetInt(KeyMusicVolume, o.domain))
		o.sfxVolume.SetValue(o.cfg.GetInt(KeySFXVolume, o.domain))
		o.speechVolume.SetValue(o.cfg.GetInt(KeySpeechVolume, o.domain))
		o.muteCheckbox.SetState(o.cfg.GetBool(KeyMuteAll, o.domain))
		o.SetVolumeSettingsState(true)
	}
	if o.subToggle != nil {
		mode := SubtitleModeSpeech
		if o.cfg.GetBool(KeySubtitles, o.domain) {
			mode = SubtitleModeBoth
			if o.cfg.GetBool(KeySpeechMute, o.domain) {
				mode = SubtitleModeSubtitles
			}
		}
		o.setSubtitleMode(mode)
		speed := o.cfg.GetInt(KeyTalkSpeed, o.domain)
		o.subSpeed.SetValue((speed*o.subSpeed.Max() + MaxTalkSpeed/2) / MaxTalkSpeed)
		o.SetSubtitleSettingsState(true)
	}
	for _, km := range o.keymaps {
		km.LoadMappings(o.cfg, o.domain)
	}
	o.refreshKeymapRows()
	if o.backendOptions != nil {
		o.backendOptions.Load()
	}
}

// Apply writes every enabled control group and flushes the store
func (o *OptionsDialog) Apply() {
	if o.muteCheckbox != nil && o.volumeEnabled {
		o.cfg.SetInt(KeyMusicVolume, o.musicVolume.Value(), o.domain)
		o.cfg.SetInt(KeySFXVolume, o.sfxVolume.Value(), o.domain)
		o.cfg.SetInt(KeySpeechVolume, o.speechVolume.Value(), o.domain)
		o.cfg.SetBool(KeyMuteAll, o.muteCheckbox.State(), o.domain)
	}
	if o.subToggle != nil && o.subtitleEnabled {
		o.cfg.SetBool(KeySubtitles, o.subMode != SubtitleModeSpeech, o.domain)
		o.cfg.SetBool(KeySpeechMute, o.subMode == SubtitleModeSubtitles, o.domain)
		top := o.subSpeed.Max()
		if top <= 0 {
			top = MaxTalkSpeed
		}
		o.cfg.SetInt(KeyTalkSpeed, (o.subSpeed.Value()*MaxTalkSpeed+top/2)/top, o.domain)
	}
	for _, km := range o.keymaps {
		km.SaveMappings(o.cfg, o.domain)
	}
	if o.backendOptions != nil {
		o.backendOptions.Save()
	}
	if err := o.cfg.Flush(); err != nil {
		log.Printf("Warning: failed to save config: %v", err)
	}
}

// HandleCommand implements OK, cancel and the control group commands
func (o *OptionsDialog) HandleCommand(sender Widget, cmd Command, data uint32) {
	switch cmd {
	case CmdOK:
		if a, ok := o.Self().(Applier); ok {
			a.Apply()
		} else {
			o.Apply()
		}
		o.Self().Close()
	case CmdClose:
		o.Self().Close()
	case CmdSubtitleToggle:
		o.setSubtitleMode(o.subMode + 1)
	case CmdMuteAllChanged:
		o.SetVolumeSettingsState(o.volumeEnabled)
	case CmdRemap:
		for _, row := range o.keymapRows {
			if row.remap == sender {
				o.remapping = row
			}
		}
		o.refreshKeymapRows()
	case CmdResetMapping:
		for _, row := range o.keymapRows {
			if row.reset == sender {
				row.km.ResetBindings(row.action.ID)
			}
		}
		o.refreshKeymapRows()
	default:
		o.DialogBase.HandleCommand(sender, cmd, data)
	}
}
