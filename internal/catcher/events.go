package catcher

import "time"

// Event is emitted by the engine for rendering, audio and overlay hosts.
// The set is closed: only types in this package implement it.
type Event interface {
	isEvent()
}

// Listener receives events as they are emitted.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// DestroyReason says why an object left the registry.
type DestroyReason int

const (
	ReasonCaught DestroyReason = iota
	ReasonMissed
)

func (r DestroyReason) String() string {
	if r == ReasonCaught {
		return "caught"
	}
	return "missed"
}

// Verdicts carried by GameOver.
const (
	VerdictWin  = "win"
	VerdictLose = "lose"
)

type (
	// SessionStarted is emitted by Start.
	SessionStarted struct {
		Score       int
		TargetSpeed float64
		Remaining   time.Duration
	}

	// ObjectSpawned carries a copy of the new object.
	ObjectSpawned struct{ Object FallingObject }

	// ObjectMoved reports a new position after motion.
	ObjectMoved struct {
		ID   ObjectID
		X, Y float64
	}

	// ObjectDestroyed reports removal from the registry.
	ObjectDestroyed struct {
		ID     ObjectID
		Kind   Kind
		Reason DestroyReason
	}

	// BasketMoved reports the basket center and velocity.
	BasketMoved struct{ X, VX float64 }

	// ScoreChanged is emitted whenever the clamped score actually changes.
	ScoreChanged struct{ Score, Previous int }

	// ScorePopup is a transient signed delta shown near (X, Y).
	ScorePopup struct {
		Delta int
		X, Y  float64
	}

	// TimerExtended is emitted when a bonus catch postpones the timeout.
	TimerExtended struct {
		Boost     time.Duration
		Remaining time.Duration
	}

	// LevelUp reports the new target fall speed.
	LevelUp struct{ TargetSpeed float64 }

	// CatchCue asks the audio host for the catch sound.
	CatchCue struct{ Kind Kind }

	// MusicStarted asks the audio host to start the background loop.
	MusicStarted struct{}

	// MusicStopped asks the audio host to stop the background loop.
	MusicStopped struct{}

	// SessionPaused is emitted by Pause.
	SessionPaused struct{}

	// SessionResumed is emitted by Resume.
	SessionResumed struct{}

	// GameOver is the single terminal event of a session.
	GameOver struct {
		FinalScore int
		Verdict    string
	}
)

func (SessionStarted) isEvent()  {}
func (ObjectSpawned) isEvent()   {}
func (ObjectMoved) isEvent()     {}
func (ObjectDestroyed) isEvent() {}
func (BasketMoved) isEvent()     {}
func (ScoreChanged) isEvent()    {}
func (ScorePopup) isEvent()      {}
func (TimerExtended) isEvent()   {}
func (LevelUp) isEvent()         {}
func (CatchCue) isEvent()        {}
func (MusicStarted) isEvent()    {}
func (MusicStopped) isEvent()    {}
func (SessionPaused) isEvent()   {}
func (SessionResumed) isEvent()  {}
func (GameOver) isEvent()        {}

// Won reports whether the verdict is a win.
func (g GameOver) Won() bool { return g.Verdict == VerdictWin }
