package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/eblitmenu/engine"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/i18n"
	"github.com/user-none/eblitmenu/storage"
	"github.com/user-none/eblitmenu/system"
)

// Config keys of the backend options
const (
	KeyFullscreen = "fullscreen"
	KeyVSync      = "vsync"
)

// RegisterDefaults installs the defaults of every key the host and its
// dialogs read
func RegisterDefaults(cfg *storage.ConfigManager) {
	engine.RegisterDefaults(cfg)
	cfg.RegisterDefaultBool(KeyFullscreen, false)
	cfg.RegisterDefaultBool(KeyVSync, true)
}

// videoSettings applies window settings; replaced in tests
type videoSettings struct {
	setFullscreen func(bool)
	setVsync      func(bool)
}

var ebitenVideo = videoSettings{
	setFullscreen: ebiten.SetFullscreen,
	setVsync:      ebiten.SetVsyncEnabled,
}

// BackendOptionsWidget holds the window options of the ebiten host
type BackendOptionsWidget struct {
	gui.OptionsContainerWidget
	cfg   *storage.ConfigManager
	video videoSettings

	fullscreen     *gui.Checkbox
	vsync          *gui.Checkbox
	launcherAtExit *gui.Checkbox
}

func newBackendOptionsWidget(boss gui.Container, name, domain string, cfg *storage.ConfigManager, features func(system.Feature) bool, video videoSettings) *BackendOptionsWidget {
	w := &BackendOptionsWidget{cfg: cfg, video: video}
	w.InitOptionsContainer(boss, name, "GlobalConfig_Backend_Container", domain, w)

	prefix := w.DialogLayout() + "."
	if features(system.FeatureFullscreenMode) {
		w.fullscreen = gui.NewCheckbox(w.WidgetsBoss(), prefix+"fullscreenCheckbox", i18n.T("~F~ullscreen mode"), "", gui.CmdNone)
	}
	if features(system.FeatureVSync) {
		w.vsync = gui.NewCheckbox(w.WidgetsBoss(), prefix+"vsyncCheckbox", i18n.T("V-Sync"), i18n.T("Wait for the vertical blank before drawing"), gui.CmdNone)
	}
	w.launcherAtExit = gui.NewCheckbox(w.WidgetsBoss(), prefix+"launcherAtExitCheckbox",
		i18n.T("Return to the launcher when leaving a game"), "", gui.CmdNone)
	return w
}

// Load sets the checkboxes from the store
func (w *BackendOptionsWidget) Load() {
	if w.fullscreen != nil {
		w.fullscreen.SetState(w.cfg.GetBool(KeyFullscreen, w.Domain()))
	}
	if w.vsync != nil {
		w.vsync.SetState(w.cfg.GetBool(KeyVSync, w.Domain()))
	}
	w.launcherAtExit.SetState(w.cfg.GetBool(engine.KeyReturnToLauncherAtExit, w.Domain()))
}

// Save stores the options and applies the window settings at once
func (w *BackendOptionsWidget) Save() bool {
	if w.fullscreen != nil {
		w.cfg.SetBool(KeyFullscreen, w.fullscreen.State(), w.Domain())
		w.video.setFullscreen(w.fullscreen.State())
	}
	if w.vsync != nil {
		w.cfg.SetBool(KeyVSync, w.vsync.State(), w.Domain())
		w.video.setVsync(w.vsync.State())
	}
	w.cfg.SetBool(engine.KeyReturnToLauncherAtExit, w.launcherAtExit.State(), w.Domain())
	return true
}

// DefineLayout declares the checkboxes in a vertical layout
func (w *BackendOptionsWidget) DefineLayout(theme *gui.ThemeEval, layoutName, overlayedLayout string) {
	theme.AddDialog(layoutName, overlayedLayout).
		AddLayout(gui.LayoutVertical).AddPadding(0, 0, 0, 0).
		AddWidget("fullscreenCheckbox", "Checkbox").
		AddWidget("vsyncCheckbox", "Checkbox").
		AddWidget("launcherAtExitCheckbox", "Checkbox").
		CloseLayout().
		CloseDialog()
}

// HasFeature reports the host's capabilities
func (a *App) HasFeature(f system.Feature) bool {
	switch f {
	case system.FeatureNoQuit:
		return a.noQuit
	case system.FeatureFullscreenMode, system.FeatureVSync:
		return true
	}
	return false
}

// BuildBackendOptionsWidget returns the window options for domain
func (a *App) BuildBackendOptionsWidget(boss gui.Container, name, domain string) gui.OptionsWidget {
	return newBackendOptionsWidget(boss, name, domain, a.cfg, a.HasFeature, a.video)
}

// EventQueue returns the queue the menus post system events to
func (a *App) EventQueue() *system.EventQueue { return a.events }

// applyVideoSettings applies the stored window settings
func (a *App) applyVideoSettings() {
	a.video.setFullscreen(a.cfg.GetBool(KeyFullscreen, ""))
	a.video.setVsync(a.cfg.GetBool(KeyVSync, ""))
}
