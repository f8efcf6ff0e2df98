package demo

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/engine"
	"github.com/user-none/eblitmenu/keymap"
	"github.com/user-none/eblitmenu/storage"
)

// Playfield size in pixels
const (
	Width  = 320
	Height = 200
)

const (
	ballSize   = 8
	trailLen   = 16
	introTicks = 120
	tickRate   = 60
	minSpeed   = 0.5
	maxSpeed   = 6
	century    = 100
)

const msgIntro = "Cannot do that during the intro"

// ballState is everything a save slot restores
type ballState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Hue     float64 `json:"hue"`
	Ticks   int     `json:"ticks"`
	Bounces int     `json:"bounces"`
}

type trailPoint struct {
	x, y, hue float64
}

// settings is the part of the configuration read each sync
type settings struct {
	trail, colorCycle, rainbowTrail, fastCycle, doubleSpeed bool
}

// Bouncer is the running bouncer game
type Bouncer struct {
	meta         *Meta
	cfg          *storage.ConfigManager
	achievements *achievements.Manager
	target       string
	features     map[engine.Feature]bool

	keymap   *keymap.Keymap
	settings settings

	state       ballState
	trail       []trailPoint
	paused      bool
	pendingLoad int
	now         func() time.Time
}

// NewBouncer starts a game for target
func NewBouncer(meta *Meta, cfg *storage.ConfigManager, ach *achievements.Manager, target string) *Bouncer {
	b := &Bouncer{
		meta:         meta,
		cfg:          cfg,
		achievements: ach,
		target:       target,
		features: map[engine.Feature]bool{
			engine.FeatureSupportsHelp:                         true,
			engine.FeatureSupportsReturnToLauncher:             true,
			engine.FeatureSupportsLoadingDuringRuntime:         true,
			engine.FeatureSupportsSavingDuringRuntime:          true,
			engine.FeatureSupportsChangingOptionsDuringRuntime: true,
			engine.FeatureSupportsSubtitleOptions:              false,
		},
		keymap:      meta.InitKeymaps(target)[0],
		pendingLoad: -1,
		now:         time.Now,
		state: ballState{
			X:  Width / 3,
			Y:  Height / 4,
			VX: 1.5,
			VY: 1.1,
		},
	}
	ach.SetActiveDomain(meta.AchievementsInfo(target))
	b.SyncSettings()
	return b
}

// HasFeature reports the capabilities of the bouncer
func (b *Bouncer) HasFeature(f engine.Feature) bool { return b.features[f] }

// CanLoadGameStateCurrently refuses during the intro
func (b *Bouncer) CanLoadGameStateCurrently() (bool, string) {
	if b.inIntro() {
		return false, msgIntro
	}
	return true, ""
}

// CanSaveGameStateCurrently refuses during the intro
func (b *Bouncer) CanSaveGameStateCurrently() (bool, string) {
	if b.inIntro() {
		return false, msgIntro
	}
	return true, ""
}

func (b *Bouncer) inIntro() bool { return b.state.Ticks < introTicks }

// SaveGameState writes the ball to slot
func (b *Bouncer) SaveGameState(slot int, desc string) error {
	if slot < 0 || slot > MaxSaveSlot {
		return engine.NewError(engine.ErrUnsupported, fmt.Sprintf("No save slot %d", slot))
	}
	f := &saveFile{
		Description: desc,
		SaveTime:    b.now(),
		PlayTime:    b.PlayTime(),
		State:       b.state,
	}
	if err := writeSlot(b.target, slot, f); err != nil {
		log.Printf("Warning: Failed to write save slot %d: %v", slot, err)
		return engine.NewError(engine.ErrWritingFailed, "")
	}
	return nil
}

// SetGameToLoadSlot loads slot on the next update; -1 cancels
func (b *Bouncer) SetGameToLoadSlot(slot int) {
	b.pendingLoad = slot
}

// MetaEngine returns the game's meta engine
func (b *Bouncer) MetaEngine() engine.MetaEngine { return b.meta }

// PlayTime returns the time played so far
func (b *Bouncer) PlayTime() time.Duration {
	return time.Duration(b.state.Ticks) * time.Second / tickRate
}

// Bounces returns the wall bounces of this game
func (b *Bouncer) Bounces() int { return b.state.Bounces }

// Paused reports whether the ball is stopped
func (b *Bouncer) Paused() bool { return b.paused }

// SyncSettings rereads the options and key bindings. Call it after the
// options dialog closes.
func (b *Bouncer) SyncSettings() {
	b.settings = settings{
		trail:        b.cfg.GetBool(KeyTrail, ""),
		colorCycle:   b.cfg.GetBool(KeyColorCycle, ""),
		rainbowTrail: b.cfg.GetBool(KeyRainbowTrail, ""),
		fastCycle:    b.cfg.GetBool(KeyFastCycle, ""),
		doubleSpeed:  b.cfg.GetBool(KeyDoubleSpeed, ""),
	}
	b.keymap.LoadMappings(b.cfg, "")
	if !b.settings.trail {
		b.trail = nil
	}
}

// MenuRequested reports whether a menu key was just pressed
func (b *Bouncer) MenuRequested() bool {
	return b.justPressed(ActionMenu)
}

func (b *Bouncer) justPressed(action string) bool {
	for _, k := range b.keymap.Bindings(action) {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Update reads the game keys and advances one tick
func (b *Bouncer) Update() {
	if b.justPressed(ActionPause) {
		b.paused = !b.paused
	}
	if b.justPressed(ActionFaster) {
		b.scaleSpeed(1.25)
	}
	if b.justPressed(ActionSlower) {
		b.scaleSpeed(0.8)
	}
	b.tick()
}

// tick applies a pending load and moves the ball
func (b *Bouncer) tick() {
	if b.pendingLoad >= 0 {
		b.load(b.pendingLoad)
		b.pendingLoad = -1
	}
	if b.paused {
		return
	}

	b.state.Ticks++
	steps := 1
	if b.settings.doubleSpeed {
		steps = 2
	}
	for i := 0; i < steps; i++ {
		b.move()
	}

	if b.settings.colorCycle {
		rate := 0.5
		if b.settings.fastCycle {
			rate = 3
		}
		b.state.Hue += rate
		for b.state.Hue >= 360 {
			b.state.Hue -= 360
		}
	}
	if b.settings.trail {
		b.trail = append(b.trail, trailPoint{b.state.X, b.state.Y, b.state.Hue})
		if len(b.trail) > trailLen {
			b.trail = b.trail[len(b.trail)-trailLen:]
		}
	}
}

func (b *Bouncer) move() {
	s := &b.state
	s.X += s.VX
	s.Y += s.VY

	hitX, hitY := false, false
	if s.X < 0 {
		s.X, s.VX, hitX = -s.X, -s.VX, true
	} else if s.X > Width-ballSize {
		s.X, s.VX, hitX = 2*(Width-ballSize)-s.X, -s.VX, true
	}
	if s.Y < 0 {
		s.Y, s.VY, hitY = -s.Y, -s.VY, true
	} else if s.Y > Height-ballSize {
		s.Y, s.VY, hitY = 2*(Height-ballSize)-s.Y, -s.VY, true
	}

	if hitX || hitY {
		b.bounced(hitX && hitY)
	}
}

func (b *Bouncer) bounced(corner bool) {
	b.state.Bounces++
	b.achievements.SetAchievement(AchievementFirstBounce)
	if b.achievements.IncrementStat(StatBounces, 1) >= century {
		b.achievements.SetAchievement(AchievementCentury)
	}
	if corner {
		b.achievements.IncrementStat(StatCorners, 1)
		b.achievements.SetAchievement(AchievementCorner)
	}
}

func (b *Bouncer) scaleSpeed(f float64) {
	vx, vy := b.state.VX*f, b.state.VY*f
	if abs(vx) < minSpeed || abs(vx) > maxSpeed || abs(vy) < minSpeed || abs(vy) > maxSpeed {
		return
	}
	b.state.VX, b.state.VY = vx, vy
}

func (b *Bouncer) load(slot int) {
	f, err := readSlot(b.target, slot)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: save slot %d is empty", slot)
		} else {
			log.Printf("Warning: Failed to load save slot %d: %v", slot, err)
		}
		return
	}
	b.state = f.State
	b.trail = nil
}

// Draw renders the playfield onto screen
func (b *Bouncer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	for i, p := range b.trail {
		clr := ballColor(b.state.Hue, b.settings.colorCycle)
		if b.settings.rainbowTrail && b.settings.colorCycle {
			clr = ballColor(p.hue, true)
		}
		clr.A = uint8(0x20 + 0xa0*i/trailLen)
		size := float32(ballSize) / 2
		vector.DrawFilledRect(screen, float32(p.x)+size/2, float32(p.y)+size/2, size, size, clr, false)
	}
	vector.DrawFilledRect(screen, float32(b.state.X), float32(b.state.Y), ballSize, ballSize,
		ballColor(b.state.Hue, b.settings.colorCycle), false)
}

// ballColor returns the ball color; hue in degrees
func ballColor(hue float64, cycle bool) color.NRGBA {
	if !cycle {
		return color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}
	}
	h := hue / 60
	x := 1 - abs(mod2(h)-1)
	var r, g, bl float64
	switch int(h) % 6 {
	case 0:
		r, g = 1, x
	case 1:
		r, g = x, 1
	case 2:
		g, bl = 1, x
	case 3:
		g, bl = x, 1
	case 4:
		r, bl = x, 1
	default:
		r, bl = 1, x
	}
	return color.NRGBA{uint8(r * 0xff), uint8(g * 0xff), uint8(bl * 0xff), 0xff}
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
