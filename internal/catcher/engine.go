// Package catcher implements the falling-object lifecycle and scoring state
// machine of the catcher game. It is a closed, single-threaded simulation:
// the host calls Tick with the elapsed time and an input snapshot, and the
// engine reports what happened as a list of events.
package catcher

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catcher/internal/config"
)

// Engine runs catcher sessions for one configuration.
type Engine struct {
	cfg      config.CatcherConfig
	log      *log.Logger
	listener Listener
	policy   Policy
	rng      Random

	objects *Registry
	sched   *Scheduler
	state   SessionState
	basket  Basket

	timed     bool
	timeoutID TimerID
	remaining time.Duration // frozen remaining time once the session is over
	tick      uint64
	result    *GameOver
	events    []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the built-in RNG.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = NewSimpleRNG(seed) }
}

// WithRandom replaces the random source used for spawn positions and, unless
// WithPolicy is also given, for classification.
func WithRandom(r Random) Option {
	return func(e *Engine) { e.rng = r }
}

// WithPolicy replaces the configured spawn policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithListener registers a listener that sees every event as it is emitted.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

// New validates cfg and returns an idle engine.
func New(cfg config.CatcherConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("catcher: %w", err)
	}

	e := &Engine{
		cfg:     cfg,
		objects: NewRegistry(),
		sched:   NewScheduler(),
		timed:   cfg.Session.EndOnTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.rng == nil {
		e.rng = NewSimpleRNG(time.Now().UnixNano())
	}
	if e.policy == nil {
		p, err := NewPolicy(cfg.Spawn, e.rng)
		if err != nil {
			return nil, err
		}
		e.policy = p
	}
	e.resetBasket()
	e.remaining = e.duration()
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() config.CatcherConfig { return e.cfg }

// Start begins a fresh session from any phase.
func (e *Engine) Start() []Event {
	e.events = nil

	e.sched.Reset()
	e.objects.Clear()
	e.result = nil
	e.state = SessionState{
		Score:       e.cfg.Session.InitialScore,
		TargetSpeed: e.cfg.Difficulty.InitialSpeed * e.cfg.Arena.ScaleFactor,
		Phase:       PhaseRunning,
	}
	e.resetBasket()
	e.remaining = e.duration()

	if e.timed {
		e.timeoutID = e.sched.Schedule(e.duration(), e.timeout)
	}
	e.log.Debug("session started", "score", e.state.Score, "speed", e.state.TargetSpeed)
	e.emit(SessionStarted{Score: e.state.Score, TargetSpeed: e.state.TargetSpeed, Remaining: e.Remaining()})

	for range e.cfg.Spawn.InitialTargets {
		e.spawn(false, nil)
	}
	e.emit(MusicStarted{})
	return e.events
}

// Tick advances a running session by elapsed.
// Outside the running phase it does nothing and returns no events.
func (e *Engine) Tick(elapsed time.Duration, in Input) []Event {
	e.events = nil
	if !e.state.Live() {
		return nil
	}
	if elapsed < 0 {
		elapsed = 0
	}

	e.tick++
	e.state.Clock += elapsed
	e.sched.RunDue(e.state.Clock, e.tick)
	if !e.state.Live() {
		return e.events
	}

	seconds := elapsed.Seconds()
	if e.basket.Move(in.Resolve(e.cfg.Arena.Width), seconds, e.cfg.Arena.Width) {
		e.emit(BasketMoved{X: e.basket.X, VX: e.basket.VX})
	}
	e.advanceObjects(seconds)

	for _, id := range e.collisions() {
		e.catch(id)
	}
	e.resolveBoundary()
	return e.events
}

// Pause suspends a running session without losing state.
func (e *Engine) Pause() []Event {
	e.events = nil
	if e.state.Phase != PhaseRunning {
		return nil
	}
	e.state.Phase = PhasePaused
	e.basket.VX = 0
	e.emit(SessionPaused{})
	return e.events
}

// Resume continues a paused session exactly where it stopped.
func (e *Engine) Resume() []Event {
	e.events = nil
	if e.state.Phase != PhasePaused {
		return nil
	}
	e.state.Phase = PhaseRunning
	e.emit(SessionResumed{})
	return e.events
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.state.Phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.state.Score }

// TargetSpeed returns the session fall speed in logical units per second.
func (e *Engine) TargetSpeed() float64 { return e.state.TargetSpeed }

// Elapsed returns session time spent running.
func (e *Engine) Elapsed() time.Duration { return e.state.Clock }

// Timed reports whether the session ends on a countdown.
func (e *Engine) Timed() bool { return e.timed }

// Remaining returns the countdown value. It is zero for untimed sessions
// and frozen once the session is over.
func (e *Engine) Remaining() time.Duration {
	if !e.timed {
		return 0
	}
	if e.state.Phase == PhaseOver || e.state.Phase == PhaseIdle {
		return e.remaining
	}
	if r, ok := e.sched.Remaining(e.timeoutID); ok {
		return r
	}
	return 0
}

// Basket returns a copy of the basket.
func (e *Engine) Basket() Basket { return e.basket }

// Objects returns copies of the live objects in registry order.
func (e *Engine) Objects() []FallingObject { return e.objects.Objects() }

// CountPrimary returns the number of live non-follow-up objects.
func (e *Engine) CountPrimary() int { return e.objects.CountPrimary() }

// Result returns the terminal event once the session is over.
func (e *Engine) Result() (GameOver, bool) {
	if e.result == nil {
		return GameOver{}, false
	}
	return *e.result, true
}

func (e *Engine) timeout() {
	if !e.state.Live() {
		return
	}
	e.log.Debug("time is up")
	e.end()
}

// end enters the terminal phase. Pending callbacks are dropped and nothing
// mutates the session afterwards.
func (e *Engine) end() {
	if e.state.Phase == PhaseOver {
		return
	}
	if e.timed {
		if r, ok := e.sched.Remaining(e.timeoutID); ok {
			e.remaining = r
		} else {
			e.remaining = 0
		}
	}
	e.state.Phase = PhaseOver
	e.sched.Clear()
	e.basket.VX = 0

	over := GameOver{FinalScore: e.state.Score, Verdict: e.state.Verdict(e.cfg.Session.WinScore)}
	e.result = &over
	e.log.Debug("session over", "score", over.FinalScore, "verdict", over.Verdict)
	e.emit(MusicStopped{})
	e.emit(over)
}

func (e *Engine) changeScore(delta int) {
	prev := e.state.AddScore(delta)
	if e.state.Score != prev {
		e.emit(ScoreChanged{Score: e.state.Score, Previous: prev})
	}
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
	if e.listener != nil {
		e.listener.OnEvent(ev)
	}
}

func (e *Engine) resetBasket() {
	b := e.cfg.Basket
	e.basket = Basket{
		X:     e.cfg.Arena.Width / 2,
		Y:     e.cfg.Arena.Height - b.BottomOffset*e.cfg.Arena.ScaleFactor,
		W:     b.Width,
		H:     b.Height,
		Speed: b.Speed * e.cfg.Arena.ScaleFactor,
	}
}

func (e *Engine) duration() time.Duration {
	if !e.timed {
		return 0
	}
	return secondsToDuration(e.cfg.Session.DurationSecs)
}
