// Package app hosts the menus and the demo game in an ebiten window.
package app

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/engine"
	"github.com/user-none/eblitmenu/engine/demo"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/gui/render"
	"github.com/user-none/eblitmenu/storage"
	"github.com/user-none/eblitmenu/system"
)

// AppState is the screen the host shows
type AppState int

const (
	StateLauncher AppState = iota
	StatePlaying
)

// Options configures a new App
type Options struct {
	AppName string
	Version string
	Credits []string
	// Target is the game domain started from the launcher
	Target string

	Config *storage.ConfigManager
	// ConfigLoadFailed keeps a broken config.json from being overwritten
	ConfigLoadFailed bool
	// Store persists achievements; nil keeps them in memory
	Store achievements.Store

	// StartInGame skips the launcher
	StartInGame bool
	// NoQuit hides every quit action, for platforms that cannot quit
	NoQuit bool
}

// App implements ebiten.Game and system.Backend
type App struct {
	appName string
	version string
	credits []string
	target  string

	cfg              *storage.ConfigManager
	configLoadFailed bool
	achievements     *achievements.Manager
	meta             *demo.Meta
	events           *system.EventQueue
	video            videoSettings
	noQuit           bool

	state    AppState
	game     *demo.Bouncer
	ctx      *engine.Context
	gui      *gui.Manager
	renderer *render.Renderer
	launcher *ebitenui.UI

	playfield *ebiten.Image
	logo      *ebiten.Image

	startPending bool
	quitPending  bool

	windowWidth  int
	windowHeight int
}

// New creates the host
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = storage.NewConfigManager(nil, nil)
	}
	target := opts.Target
	if target == "" {
		target = demo.Name
	}

	a := &App{
		appName:          opts.AppName,
		version:          opts.Version,
		credits:          opts.Credits,
		target:           target,
		cfg:              cfg,
		configLoadFailed: opts.ConfigLoadFailed,
		achievements:     achievements.NewManager(opts.Store),
		meta:             demo.NewMeta(cfg),
		events:           system.NewEventQueue(),
		video:            ebitenVideo,
		noQuit:           opts.NoQuit,
	}
	RegisterDefaults(cfg)
	a.meta.RegisterDefaults()

	theme := gui.NewThemeEval()
	theme.SetSupportsImages(true)
	theme.SetVar("Globals.ShowGlobalMenuLogo", 1)
	a.gui = gui.NewManager(theme, demo.Width*2, demo.Height*2)
	a.renderer = render.New(a.gui)

	a.applyVideoSettings()
	if opts.StartInGame {
		a.startGame()
	}
	return a
}

// State returns the screen being shown
func (a *App) State() AppState { return a.state }

// Manager returns the dialog manager
func (a *App) Manager() *gui.Manager { return a.gui }

func (a *App) startGame() {
	a.cfg.AddGameDomain(a.target)
	a.cfg.SetActiveDomain(a.target)
	a.game = demo.NewBouncer(a.meta, a.cfg, a.achievements, a.target)
	a.ctx = &engine.Context{
		Config:       a.cfg,
		Achievements: a.achievements,
		Engine:       a.game,
		Backend:      a,
		GUI:          a.gui,
		AppName:      a.appName,
		Version:      a.version,
		Credits:      a.credits,
	}
	a.state = StatePlaying
}

func (a *App) returnToLauncher() {
	a.game = nil
	a.ctx = nil
	a.achievements.UnsetActiveDomain()
	a.cfg.SetActiveDomain("")
	a.flushConfig()
	a.state = StateLauncher
}

// openMenu shows the main menu over the game
func (a *App) openMenu() {
	if a.gui.IsActive() || a.ctx == nil {
		return
	}
	game := a.game
	a.gui.RunModal(engine.NewMainMenuDialog(a.ctx), func(int) {
		// The menu may have ended the game
		if a.game == game && game != nil {
			game.SyncSettings()
		}
	})
}

// handleEvents drains the system events and reports whether to quit
func (a *App) handleEvents() bool {
	for {
		e, ok := a.events.Poll()
		if !ok {
			return false
		}
		switch e.Type {
		case system.EventReturnToLauncher:
			a.returnToLauncher()
		case system.EventQuit:
			return true
		}
	}
}

// Update implements ebiten.Game
func (a *App) Update() error {
	if a.handleEvents() || a.quitPending {
		a.Shutdown()
		return ebiten.Termination
	}

	switch a.state {
	case StateLauncher:
		if a.launcher == nil {
			a.launcher = a.buildLauncher()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.startPending = true
		}
		a.launcher.Update()
		if a.startPending {
			a.startPending = false
			a.startGame()
		}
	case StatePlaying:
		if a.gui.IsActive() {
			a.renderer.Update()
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || a.game.MenuRequested() {
			a.openMenu()
			return nil
		}
		a.game.Update()
	}
	return nil
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	if a.logo == nil {
		a.logo = newLogo(a.appName)
		a.renderer.SetLogo(a.logo)
	}

	switch a.state {
	case StateLauncher:
		if a.launcher != nil {
			a.launcher.Draw(screen)
		}
	case StatePlaying:
		a.drawGame(screen)
		a.renderer.Draw(screen)
	}
}

// drawGame scales the playfield to fit the window
func (a *App) drawGame(screen *ebiten.Image) {
	if a.playfield == nil {
		a.playfield = ebiten.NewImage(demo.Width, demo.Height)
	}
	a.game.Draw(a.playfield)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := float64(sw) / demo.Width
	if s := float64(sh) / demo.Height; s < scale {
		scale = s
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate((float64(sw)-demo.Width*scale)/2, (float64(sh)-demo.Height*scale)/2)
	screen.DrawImage(a.playfield, opts)
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.windowWidth = outsideWidth
	a.windowHeight = outsideHeight
	a.gui.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Shutdown saves the configuration. It is safe to call more than once.
func (a *App) Shutdown() {
	a.flushConfig()
}

func (a *App) flushConfig() {
	// Don't overwrite a config the user may want to fix by hand
	if a.configLoadFailed {
		return
	}
	if err := a.cfg.Flush(); err != nil {
		log.Printf("Warning: failed to save config: %v", err)
	}
}
