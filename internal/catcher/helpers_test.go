package catcher

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-catcher/internal/config"
)

const dt = 100 * time.Millisecond

// constRandom always returns the same draw.
type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }

// seqRandom cycles through vals.
type seqRandom struct {
	vals []float64
	i    int
}

func (s *seqRandom) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// scriptPolicy hands out kinds in order, then Normal forever.
type scriptPolicy struct {
	kinds []Kind
	i     int
}

func (p *scriptPolicy) Classify() Kind {
	if p.i >= len(p.kinds) {
		return KindNormal
	}
	k := p.kinds[p.i]
	p.i++
	return k
}

func (p *scriptPolicy) ShouldFollowUp(Kind, bool) bool { return false }

// recorder collects every event pushed to the listener.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func newEngine(t *testing.T, cfg config.CatcherConfig, opts ...Option) *Engine {
	t.Helper()
	e, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// countEvents returns how many events in evs have type T.
func countEvents[T Event](evs []Event) int {
	n := 0
	for _, ev := range evs {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

// findEvent returns the first event of type T.
func findEvent[T Event](evs []Event) (T, bool) {
	for _, ev := range evs {
		if v, ok := ev.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// tickUntil ticks with dt until cond holds on the tick's events.
func tickUntil(t *testing.T, e *Engine, maxTicks int, cond func([]Event) bool) []Event {
	t.Helper()
	for range maxTicks {
		evs := e.Tick(dt, Input{})
		if cond(evs) {
			return evs
		}
	}
	t.Fatalf("condition not met within %d ticks", maxTicks)
	return nil
}
