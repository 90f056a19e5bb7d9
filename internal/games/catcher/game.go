// Package catcher adapts the catcher engine to the arcade platform.
// It maps logical arena units onto terminal cells, turns engine events into
// popups and host cues, and draws the HUD and overlays.
package catcher

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catcher/internal/catcher"
	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
	"github.com/vovakirdan/tui-catcher/internal/registry"
)

// PopupTTL is how long a score popup stays on screen.
const PopupTTL = time.Second

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values fall back
// to the loaded config unchanged.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// popup is a floating score delta in cell coordinates.
type popup struct {
	Text  string
	X, Y  int
	Color core.Color
	TTL   time.Duration
}

// Game implements registry.Game for one catcher variant.
type Game struct {
	id      string
	title   string
	variant string
	cfg     config.CatcherConfig
	fixed   bool // cfg supplied directly, skip loading on Reset
	preset  config.DifficultyPreset

	engine  *catcher.Engine
	runtime core.RuntimeConfig
	started bool
	popups  []popup
	ticks   uint64
}

// New creates a game for variant that loads its config on Reset.
func New(variant string) *Game {
	g := &Game{variant: variant, id: variant, title: titleFor(variant)}
	g.cfg = config.DefaultFor(variant)
	return g
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(variant string, cfg config.CatcherConfig) *Game {
	g := New(variant)
	g.cfg = cfg
	g.fixed = true
	return g
}

func titleFor(variant string) string {
	if variant == config.VariantRush {
		return "Orange Rush"
	}
	return "Orange Catcher"
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Reset loads the configuration, builds a fresh engine and returns to the
// title screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.popups = g.popups[:0]
	g.started = false
	g.ticks = 0

	if !g.fixed {
		preset := difficultyPreset
		if g.preset != "" {
			preset = g.preset
		}
		cfg, err := config.LoadValidated(g.variant, configPath, preset)
		if err != nil {
			logger.Warn("falling back to default config", "variant", g.variant, "err", err)
			cfg = config.DefaultFor(g.variant)
			config.ApplyPreset(&cfg, preset)
		}
		g.cfg = cfg
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng, err := catcher.New(g.cfg, catcher.WithSeed(seed), catcher.WithLogger(logger))
	if err != nil {
		logger.Error("invalid catcher config, using defaults", "err", err)
		g.cfg = config.DefaultFor(g.variant)
		eng, _ = catcher.New(g.cfg, catcher.WithSeed(seed), catcher.WithLogger(logger))
	}
	g.engine = eng
}

// SetPreset overrides the package-wide difficulty for this game only.
// It takes effect on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) { g.preset = p }

// Resize adapts the cell mapping to a new terminal size without
// interrupting the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.popups = g.popups[:0]
}

// Played reports the session time simulated so far.
func (g *Game) Played() time.Duration { return g.engine.Elapsed() }

// Engine exposes the underlying engine.
func (g *Game) Engine() *catcher.Engine { return g.engine }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []catcher.Event

	switch {
	case !g.started:
		if in.Has(core.ActionStart) {
			g.started = true
			events = g.engine.Start()
		}
	case in.Has(core.ActionRestart):
		g.popups = g.popups[:0]
		events = g.engine.Start()
	case in.Has(core.ActionPause):
		if g.engine.Phase() == catcher.PhasePaused {
			events = g.engine.Resume()
		} else {
			events = g.engine.Pause()
		}
	case g.engine.Phase() == catcher.PhaseOver && in.Has(core.ActionStart):
		g.popups = g.popups[:0]
		events = g.engine.Start()
	}

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = g.runtime.TickInterval()
	}
	if g.engine.Phase() == catcher.PhaseRunning {
		g.ticks++
		events = append(events, g.engine.Tick(elapsed, g.input(in))...)
		g.agePopups(elapsed)
	}

	return core.StepResult{State: g.State(), Cues: g.absorb(events)}
}

// input converts platform actions and the pointer cell into engine input.
func (g *Game) input(in core.InputFrame) catcher.Input {
	var out catcher.Input
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		out.Direction = catcher.DirLeft
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		out.Direction = catcher.DirRight
	}
	if in.Pointer.Down && g.runtime.ScreenW > 0 {
		out.PointerDown = true
		out.PointerX = (float64(in.Pointer.X) + 0.5) * g.cfg.Arena.Width / float64(g.runtime.ScreenW)
	}
	return out
}

// absorb turns engine events into popups and host cues.
func (g *Game) absorb(events []catcher.Event) []core.Cue {
	var cues []core.Cue
	for _, ev := range events {
		switch e := ev.(type) {
		case catcher.CatchCue:
			cues = append(cues, core.CueCatch)
		case catcher.MusicStarted, catcher.SessionResumed:
			cues = append(cues, core.CueMusicOn)
		case catcher.MusicStopped:
			cues = append(cues, core.CueMusicOff)
		case catcher.SessionPaused:
			cues = append(cues, core.CueMusicHold)
		case catcher.ScorePopup:
			g.addPopup(e)
		case catcher.SessionStarted:
			g.popups = g.popups[:0]
		}
	}
	return cues
}

func (g *Game) addPopup(e catcher.ScorePopup) {
	p := popup{
		Text:  signed(e.Delta),
		X:     g.cellX(e.X),
		Y:     g.cellY(e.Y) - 1,
		Color: core.ColorGreen,
		TTL:   PopupTTL,
	}
	if e.Delta < 0 {
		p.Color = core.ColorRed
	}
	p.X -= len(p.Text) / 2
	g.popups = append(g.popups, p)
}

func (g *Game) agePopups(elapsed time.Duration) {
	kept := g.popups[:0]
	for _, p := range g.popups {
		p.TTL -= elapsed
		if p.TTL > 0 {
			kept = append(kept, p)
		}
	}
	g.popups = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:  g.engine.Score(),
		Paused: g.engine.Phase() == catcher.PhasePaused,
	}
	if res, ok := g.engine.Result(); ok {
		st.GameOver = true
		st.Verdict = res.Verdict
	}
	return st
}

// Register both variants with the registry
func init() {
	for _, variant := range []string{config.VariantClassic, config.VariantRush} {
		registry.Register(variant, func() registry.Game {
			return New(variant)
		})
	}
}
