package engine

import (
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/storage"
	"github.com/user-none/eblitmenu/system"
)

// Context carries the services every in-game dialog needs
type Context struct {
	Config       *storage.ConfigManager
	Achievements *achievements.Manager
	Engine       Engine
	Backend      system.Backend
	GUI          *gui.Manager

	AppName string
	Version string
	Credits []string
}

// Config keys read by the dialogs in this package
const (
	KeyReturnToLauncherAtExit = "gui_return_to_launcher_at_exit"
)

// RegisterDefaults installs the defaults of the keys the in-game dialogs use
func RegisterDefaults(cfg *storage.ConfigManager) {
	gui.RegisterDefaults(cfg)
	cfg.RegisterDefaultBool(KeyReturnToLauncherAtExit, false)
}
