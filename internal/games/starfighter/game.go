// Package starfighter implements the free-flight shooter on top of the sim core.
// The player steers a ship through 24 headings, thrusts with drifting momentum
// and fires from a pool of eight bullets over a scrolling starfield.
package starfighter

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfighter/internal/config"
	"github.com/vovakirdan/starfighter/internal/core"
	"github.com/vovakirdan/starfighter/internal/registry"
	"github.com/vovakirdan/starfighter/internal/sim"
)

// Game IDs.
const (
	IDScroll = "starfighter"
	IDWrap   = "starfighter_wrap"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// boundaryOverride replaces field.boundary for the scroll mode when set.
var boundaryOverride string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetBoundary overrides the configured boundary mode ("scroll" or "wrap").
func SetBoundary(mode string) {
	boundaryOverride = mode
}

// Game implements registry.Game.
type Game struct {
	id       string
	wrapOnly bool

	cfg     config.StarfighterConfig
	runtime core.RuntimeConfig
	layout  layout
	mode    sim.BoundaryMode

	world   *sim.World
	sprites *spriteTable
	stars   *Starfield
	audio   sim.Audio
	sampler *core.HoldSampler
	frame   sim.Frame

	tick           int // input clock; runs while paused
	score          int
	paused         bool
	screenTooSmall bool
}

// New creates the scrolling game mode.
func New() *Game {
	return &Game{id: IDScroll}
}

// NewWrap creates the wrap-around game mode.
func NewWrap() *Game {
	return &Game{id: IDWrap, wrapOnly: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.wrapOnly {
		return "Starfighter (Wrap)"
	}
	return "Starfighter"
}

// SetAudio routes shot sounds to a. Takes effect on the next Reset.
func (g *Game) SetAudio(a sim.Audio) {
	g.audio = a
}

// loadConfig loads the YAML config and applies CLI overrides.
func (g *Game) loadConfig() config.StarfighterConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Warn("using default starfighter config", "error", err)
		cfg = config.DefaultStarfighterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStarfighterPreset(&cfg, difficultyPreset)
	}
	if boundaryOverride != "" {
		cfg.Field.Boundary = boundaryOverride
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.cfg = g.loadConfig()

	mode, err := sim.ParseBoundary(g.cfg.Field.Boundary)
	if err != nil {
		log.Warn("unknown boundary, using scroll", "error", err)
	}
	if g.wrapOnly {
		mode = sim.BoundaryWrap
	}
	g.mode = mode

	g.sampler = core.NewHoldSampler(g.cfg.Input.HoldTicks)
	g.tick = 0
	g.paused = false
	g.layout = newLayout(rc.ScreenW, rc.ScreenH, g.cfg.Field)
	g.screenTooSmall = rc.ScreenW < MinScreenW || rc.ScreenH < MinScreenH

	sf := g.cfg.Starfield
	g.stars = NewStarfield(rc.Seed, sf.Width, sf.Height, sf.NearFactor, sf.FarFactor, sf.NearDensity, sf.FarDensity)
	g.newFlight()
}

// params builds the simulation parameters for the current layout.
func (g *Game) params() sim.Params {
	w, h := g.layout.size()
	return sim.Params{
		Ship: sim.ShipParams{
			RotationRepeat: g.cfg.Ship.RotationRepeat,
			ThrustLimit:    g.cfg.Ship.ThrustLimit,
			FrictionDelay:  g.cfg.Ship.FrictionDelay,
			FrictionSteps:  g.cfg.Ship.FrictionSteps,
		},
		Bullets: sim.PoolParams{
			FireInterval: g.cfg.Bullets.FireInterval,
			MuzzleOffset: core.Pt(g.cfg.Bullets.MuzzleX, g.cfg.Bullets.MuzzleY),
		},
		Start:    core.Pt(w/2, h/2),
		Width:    w,
		Height:   h,
		Boundary: g.mode,
		Inset:    g.layout.inset(g.cfg.Field),
	}
}

// newFlight replaces the world with a fresh one, keeping the starfield.
func (g *Game) newFlight() {
	if g.world != nil {
		g.world.Close()
		g.world = nil
	}
	g.sprites = newSpriteTable()
	g.score = 0
	g.frame = sim.Frame{}
	if g.screenTooSmall {
		return
	}

	world, err := sim.NewWorld(g.params(), sim.Sinks{
		Presenter: g.sprites,
		Audio:     g.audio,
		Scroller:  g.stars,
	})
	if err != nil {
		// Config validation and the inset clamp make this unreachable for
		// screens above the minimum size.
		log.Error("cannot start flight", "error", err)
		g.screenTooSmall = true
		return
	}
	g.world = world
	g.frame = sim.Frame{Position: world.Ship().Position}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	// A fresh turn press cancels a still-held opposite turn.
	if in.Buttons.Has(core.ButtonRight) && !in.Buttons.Has(core.ButtonLeft) {
		g.sampler.Release(core.ButtonLeft)
	}
	if in.Buttons.Has(core.ButtonLeft) && !in.Buttons.Has(core.ButtonRight) {
		g.sampler.Release(core.ButtonRight)
	}
	g.sampler.Press(in.Buttons, g.tick)

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.newFlight()
		g.sampler.Reset()
		g.paused = false
	}

	if g.paused || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	g.frame = g.world.Step(g.sampler.Sample(g.tick))
	g.score = g.world.Stats().Distance / g.cfg.Field.CellWidth

	return core.StepResult{State: g.State()}
}

// State returns the current game state. Free flight never ends.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false,
		Paused:   g.paused,
	}
}

// Flight returns statistics for the current flight.
func (g *Game) Flight() core.FlightStats {
	fs := core.FlightStats{Boundary: g.mode.String()}
	if g.world != nil {
		st := g.world.Stats()
		fs.Ticks = st.Ticks
		fs.ShotsFired = st.ShotsFired
		fs.ShotsDropped = st.ShotsDropped
		fs.Distance = st.Distance
	}
	return fs
}

func init() {
	registry.Register(IDScroll, func() registry.Game {
		return New()
	})
	registry.Register(IDWrap, func() registry.Game {
		return NewWrap()
	})
}

var (
	_ registry.Game           = (*Game)(nil)
	_ registry.FlightRecorder = (*Game)(nil)
)
