package engine

import (
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/i18n"
)

// ConfigDialog is the in-game options dialog. It edits the active
// settings and collects tabs contributed by the engine and the backend.
type ConfigDialog struct {
	gui.OptionsDialog
	ctx *Context

	tabs          *gui.TabWidget
	engineOptions gui.OptionsWidget
	gameDomain    string
}

// configTab is one candidate tab. A tab is added when present reports
// true, and removed again when build reports it had nothing to show.
type configTab struct {
	title   string
	layout  string
	present func(d *ConfigDialog) bool
	build   func(d *ConfigDialog) bool
}

var configTabs = []configTab{
	{
		title:  "Game",
		layout: "GlobalConfig_Engine",
		present: func(d *ConfigDialog) bool {
			return d.ctx.Engine.HasFeature(FeatureSupportsChangingOptionsDuringRuntime)
		},
		build: (*ConfigDialog).buildEngineTab,
	},
	{
		title:  "Audio",
		layout: "GlobalConfig_Audio",
		build:  (*ConfigDialog).buildAudioTab,
	},
	{
		title:  "Keymaps",
		layout: "GlobalConfig_KeyMapper",
		build:  (*ConfigDialog).buildKeymapTab,
	},
	{
		title:  "Backend",
		layout: "GlobalConfig_Backend",
		build:  (*ConfigDialog).buildBackendTab,
	},
	{
		title:  "Achievements",
		layout: "GlobalConfig_Achievements",
		present: func(d *ConfigDialog) bool {
			return d.ctx.Achievements.GetAchievementCount() > 0
		},
		build: func(d *ConfigDialog) bool {
			d.AddAchievementsControls(d.tabs, "GlobalConfig_Achievements.", d.ctx.Achievements)
			return true
		},
	},
	{
		title:  "Statistics",
		layout: "GlobalConfig_Achievements",
		present: func(d *ConfigDialog) bool {
			return d.ctx.Achievements.GetStatCount() > 0
		},
		build: func(d *ConfigDialog) bool {
			d.AddStatisticsControls(d.tabs, "GlobalConfig_Achievements.", d.ctx.Achievements)
			return true
		},
	},
}

// NewConfigDialog builds the options dialog for the engine in ctx
func NewConfigDialog(ctx *Context) *ConfigDialog {
	d := &ConfigDialog{ctx: ctx}
	d.InitOptions(ctx.GUI, ctx.Config, "", "GlobalConfig", d)
	d.gameDomain = ctx.Config.ActiveDomainName()

	// Achievement tabs read the manager, so point it at this game first
	meta := ctx.Engine.MetaEngine()
	ctx.Achievements.SetActiveDomain(meta.AchievementsInfo(d.gameDomain))

	d.tabs = gui.NewTabWidget(d, "GlobalConfig.TabWidget")
	for _, t := range configTabs {
		if t.present != nil && !t.present(d) {
			continue
		}
		id := d.tabs.AddTab(i18n.Translate(t.title), t.layout)
		if !t.build(d) {
			d.tabs.RemoveTab(id)
		}
	}
	d.tabs.SetActiveTab(0)

	gui.NewButton(d, "GlobalConfig.Ok", i18n.T("~O~K"), "", gui.CmdOK, 0)
	gui.NewButton(d, "GlobalConfig.Cancel", i18n.T("~C~ancel"), "", gui.CmdClose, 0)
	return d
}

func (d *ConfigDialog) buildEngineTab() bool {
	scroll := gui.NewScrollContainer(d.tabs, "GlobalConfig_Engine.Scroll")
	scroll.SetTarget(d)
	w := d.ctx.Engine.MetaEngine().BuildEngineOptionsWidget(scroll, "GlobalConfig_Engine.Container", d.gameDomain)
	if w == nil {
		return false
	}
	w.SetParentDialog(d)
	d.engineOptions = w
	return true
}

func (d *ConfigDialog) buildAudioTab() bool {
	d.AddVolumeControls(d.tabs, "GlobalConfig_Audio.")
	d.SetVolumeSettingsState(true)
	if d.ctx.Engine.HasFeature(FeatureSupportsSubtitleOptions) {
		d.AddSubtitleControls(d.tabs, "GlobalConfig_Audio.", gui.MaxTalkSpeed)
		d.SetSubtitleSettingsState(true)
	}
	return true
}

func (d *ConfigDialog) buildKeymapTab() bool {
	keymaps := d.ctx.Engine.MetaEngine().InitKeymaps(d.gameDomain)
	if len(keymaps) == 0 {
		return false
	}
	d.AddKeyMapperControls(d.tabs, "GlobalConfig_KeyMapper.", keymaps)
	return true
}

func (d *ConfigDialog) buildBackendTab() bool {
	scroll := gui.NewScrollContainer(d.tabs, "GlobalConfig_Backend.Scroll")
	scroll.SetTarget(d)
	w := d.ctx.Backend.BuildBackendOptionsWidget(scroll, "GlobalConfig_Backend.Container", d.gameDomain)
	if w == nil {
		return false
	}
	d.SetBackendOptions(w)
	return true
}

// Tabs returns the dialog's tab widget
func (d *ConfigDialog) Tabs() *gui.TabWidget { return d.tabs }

// EngineOptions returns the engine's options widget, or nil
func (d *ConfigDialog) EngineOptions() gui.OptionsWidget { return d.engineOptions }

// Build loads the base controls, then the engine options
func (d *ConfigDialog) Build() {
	d.OptionsDialog.Build()
	if d.engineOptions != nil {
		d.engineOptions.Load()
	}
}

// Apply saves the engine options, then the base controls
func (d *ConfigDialog) Apply() {
	if d.engineOptions != nil {
		d.engineOptions.Save()
	}
	d.OptionsDialog.Apply()
}

// ReflowLayout lets contributed widgets declare their layouts
func (d *ConfigDialog) ReflowLayout() {
	theme := d.Manager().Theme()
	if d.engineOptions != nil {
		d.engineOptions.ReflowLayout(theme)
	}
	if b := d.BackendOptions(); b != nil {
		b.ReflowLayout(theme)
	}
	d.OptionsDialog.ReflowLayout()
}
