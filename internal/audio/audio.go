// Package audio plays the catch cue and the background melody for a
// catcher session. It reacts to core.Cue values and never reads game state.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-catcher/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player routes cues to the speaker. A Player that was never initialized
// still tracks music state so hosts without a sound device behave the same.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	muted       bool
	initialized bool
	log         *log.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithVolume sets the linear output volume in (0, 1].
func WithVolume(v float64) Option {
	return func(p *Player) {
		if v > 0 && v <= 1 {
			p.volume = v
		}
	}
}

// WithMute disables output entirely.
func WithMute(muted bool) Option {
	return func(p *Player) { p.muted = muted }
}

// WithLogger sets the logger used for device errors.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPlayer creates a Player. Call Init to open the sound device.
func NewPlayer(opts ...Option) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: 0.5,
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init opens the speaker. On failure the Player mutes itself and stays usable.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.log.Warn("audio disabled", "err", err)
		p.muted = true
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle applies a batch of cues in order.
func (p *Player) Handle(cues []core.Cue) {
	for _, c := range cues {
		p.HandleCue(c)
	}
}

// HandleCue applies a single cue.
func (p *Player) HandleCue(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}

	p.lock()
	defer p.unlock()

	switch c {
	case core.CueCatch:
		p.mixer.Add(p.withVolume(catchSound()))
	case core.CueMusicOn:
		if p.music != nil {
			p.music.Paused = false
			return
		}
		p.music = &beep.Ctrl{Streamer: p.withVolume(newMelody(sampleRate)), Paused: false}
		p.mixer.Add(p.music)
	case core.CueMusicHold:
		if p.music != nil {
			p.music.Paused = true
		}
	case core.CueMusicOff:
		if p.music != nil {
			p.music.Paused = true
			p.music.Streamer = nil
			p.music = nil
		}
	}
}

// MusicPlaying reports whether the melody is active and unpaused.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil && !p.music.Paused
}

// Voices reports how many streamers the mixer currently holds.
func (p *Player) Voices() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close silences everything. The speaker itself stays open for reuse.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
	p.mixer.Clear()
}

func (p *Player) lock() {
	if p.initialized {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.initialized {
		speaker.Unlock()
	}
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(p.volume),
	}
}

// catchSound is a short rising two-note chirp.
func catchSound() beep.Streamer {
	low, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return beep.Silence(0)
	}
	high, err := generators.SineTone(sampleRate, 1320)
	if err != nil {
		return beep.Take(sampleRate.N(60*time.Millisecond), low)
	}
	return beep.Seq(
		beep.Take(sampleRate.N(60*time.Millisecond), low),
		beep.Take(sampleRate.N(80*time.Millisecond), high),
	)
}
