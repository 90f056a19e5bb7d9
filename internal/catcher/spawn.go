package catcher

import (
	"time"
)

// spawn creates one object and registers it. Follow-ups are always penalties
// placed at xOverride; primaries roll their kind and a random x within the
// spawn margins. An eligible primary schedules its follow-up without
// delaying its own registration.
func (e *Engine) spawn(isFollowUp bool, xOverride *float64) FallingObject {
	arena := e.cfg.Arena

	var x float64
	if xOverride != nil {
		x = *xOverride
	} else {
		x = Between(e.rng, arena.SpawnMargin, arena.Width-arena.SpawnMargin)
	}

	kind := KindPenalty
	if !isFollowUp {
		kind = e.policy.Classify()
	}

	obj := FallingObject{
		Kind:       kind,
		X:          x,
		Y:          0,
		W:          e.cfg.Objects.Width,
		H:          e.cfg.Objects.Height,
		ScoreDelta: e.scoreDelta(kind),
		IsFollowUp: isFollowUp,
	}
	obj.ID = e.objects.Add(obj)
	e.emit(ObjectSpawned{Object: obj})

	if e.policy.ShouldFollowUp(kind, isFollowUp) {
		delay := time.Duration(e.cfg.Spawn.FollowUpDelayMS) * time.Millisecond
		at := x
		e.sched.Schedule(delay, func() {
			if !e.state.Live() {
				return
			}
			e.spawn(true, &at)
		})
	}
	return obj
}

func (e *Engine) scoreDelta(k Kind) int {
	switch k {
	case KindBonus:
		return e.cfg.Objects.BonusPoints
	case KindPenalty:
		return e.cfg.Objects.PenaltyPoints
	default:
		return e.cfg.Objects.NormalPoints
	}
}
