package catcher

import "time"

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota // No session started yet
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// SessionState is the mutable per-session state shared by the subsystems.
type SessionState struct {
	Score       int
	TargetSpeed float64
	Phase       Phase
	Clock       time.Duration // Session time, advanced only while running
}

// Live reports whether gameplay mutation is allowed.
func (s *SessionState) Live() bool { return s.Phase == PhaseRunning }

// AddScore applies delta and clamps the score at zero.
// Returns the score before the change.
func (s *SessionState) AddScore(delta int) int {
	prev := s.Score
	s.Score = max(0, s.Score+delta)
	return prev
}

// Verdict computes the win/lose verdict for the current score.
func (s *SessionState) Verdict(winScore int) string {
	if s.Score >= winScore {
		return VerdictWin
	}
	return VerdictLose
}
