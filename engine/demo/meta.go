// Package demo is a small bouncing ball game that exercises everything the
// in-game menu offers: saves, engine options with groups, keymaps and
// achievements.
package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/engine"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/keymap"
	"github.com/user-none/eblitmenu/storage"
)

// Name is the meta engine name and the default game target
const Name = "bouncer"

// Option keys
const (
	KeyTrail        = "trail"
	KeyColorCycle   = "color_cycle"
	KeyRainbowTrail = "rainbow_trail"
	KeyFastCycle    = "fast_cycle"
	KeyDoubleSpeed  = "double_speed"
)

// Keymap actions
const (
	ActionPause  = "pause"
	ActionFaster = "faster"
	ActionSlower = "slower"
	ActionMenu   = "menu"
)

// Achievement and statistic IDs
const (
	AchievementFirstBounce = "first_bounce"
	AchievementCentury     = "century"
	AchievementCorner      = "corner"

	StatBounces = "bounces"
	StatCorners = "corners"
)

// colorGroup groups the options that only matter with color cycling on
const colorGroup = 1

var extraOptions = engine.ExtraGuiOptions{
	{
		Label:        "Show trail",
		Tooltip:      "Draw a fading trail behind the ball",
		ConfigOption: KeyTrail,
		DefaultState: true,
	},
	{
		Label:         "Color cycling",
		Tooltip:       "Slowly change the ball color",
		ConfigOption:  KeyColorCycle,
		GroupLeaderID: colorGroup,
	},
	{
		Label:        "Rainbow trail",
		Tooltip:      "Color the trail with past ball colors",
		ConfigOption: KeyRainbowTrail,
		GroupID:      colorGroup,
	},
	{
		Label:        "Fast color cycle",
		ConfigOption: KeyFastCycle,
		GroupID:      colorGroup,
	},
	{
		Label:        "Double speed",
		Tooltip:      "Move the ball twice as fast",
		ConfigOption: KeyDoubleSpeed,
	},
}

// Meta describes the bouncer game to the menus
type Meta struct {
	cfg *storage.ConfigManager
}

// NewMeta creates the meta engine reading options from cfg
func NewMeta(cfg *storage.ConfigManager) *Meta {
	return &Meta{cfg: cfg}
}

// Name returns the engine name
func (m *Meta) Name() string { return Name }

// RegisterDefaults installs the option defaults
func (m *Meta) RegisterDefaults() {
	for _, opt := range extraOptions {
		m.cfg.RegisterDefaultBool(opt.ConfigOption, opt.DefaultState)
	}
}

// ExtraOptions returns the engine options shown in the Game tab
func (m *Meta) ExtraOptions() engine.ExtraGuiOptions { return extraOptions }

// BuildEngineOptionsWidget returns the option checkboxes for domain
func (m *Meta) BuildEngineOptionsWidget(boss gui.Container, name, domain string) gui.OptionsWidget {
	return engine.BuildExtraOptionsWidget(boss, name, domain, m.cfg, extraOptions)
}

// InitKeymaps returns a fresh keymap with default bindings
func (m *Meta) InitKeymaps(domain string) keymap.Array {
	km := keymap.New(Name, "Bouncer")
	km.AddAction(ActionPause, "Pause", ebiten.KeyP, ebiten.KeySpace)
	km.AddAction(ActionFaster, "Speed up", ebiten.KeyArrowUp)
	km.AddAction(ActionSlower, "Slow down", ebiten.KeyArrowDown)
	km.AddAction(ActionMenu, "Open menu", ebiten.KeyF5)
	return keymap.Array{km}
}

// AchievementsInfo describes the achievements of a game target
func (m *Meta) AchievementsInfo(domain string) achievements.Info {
	if domain == "" {
		domain = Name
	}
	return achievements.Info{
		Platform: Name,
		AppID:    domain,
		Descriptions: []achievements.AchievementDescription{
			{ID: AchievementFirstBounce, Title: "First contact", Comment: "Bounce off a wall"},
			{ID: AchievementCentury, Title: "Century", Comment: "Bounce 100 times"},
			{ID: AchievementCorner, Title: "Perfect corner", Comment: "Hit a corner exactly", Hidden: true},
		},
		Stats: []achievements.StatDescription{
			{ID: StatBounces, Comment: "Wall bounces"},
			{ID: StatCorners, Comment: "Corner hits"},
		},
	}
}

// ListSaves returns the occupied save slots of target
func (m *Meta) ListSaves(target string) []gui.SaveStateDescriptor {
	return listSaves(target)
}

// MaxSaveSlot returns the highest save slot
func (m *Meta) MaxSaveSlot() int { return MaxSaveSlot }
