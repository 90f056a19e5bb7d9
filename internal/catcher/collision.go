package catcher

import (
	"time"
)

// collisions returns the IDs of objects overlapping the basket, in registry
// order. Scoring happens afterwards so the registry is not mutated mid-scan.
func (e *Engine) collisions() []ObjectID {
	basket := e.basket.Bounds()
	var hits []ObjectID
	e.objects.Each(func(o *FallingObject) {
		if basket.Intersects(o.Bounds()) {
			hits = append(hits, o.ID)
		}
	})
	return hits
}

// catch scores one overlap pair. Untracked IDs are ignored.
func (e *Engine) catch(id ObjectID) bool {
	if !e.state.Live() {
		return false
	}
	obj, ok := e.objects.Get(id)
	if !ok {
		e.log.Warn("catch on untracked object", "id", id)
		return false
	}
	caught := *obj

	e.emit(CatchCue{Kind: caught.Kind})

	if caught.Kind == KindBonus {
		e.extendTimer()
	}

	e.changeScore(caught.ScoreDelta)
	e.emit(ScorePopup{Delta: caught.ScoreDelta, X: caught.Bounds().CenterX(), Y: e.basket.Y})

	if e.cfg.Difficulty.ShouldLevelUp(e.state.Score) {
		e.state.TargetSpeed += e.cfg.Difficulty.SpeedIncreaseRate * e.cfg.Arena.ScaleFactor
		e.log.Debug("level up", "score", e.state.Score, "speed", e.state.TargetSpeed)
		e.emit(LevelUp{TargetSpeed: e.state.TargetSpeed})
	}

	e.objects.Remove(caught.ID)
	e.emit(ObjectDestroyed{ID: caught.ID, Kind: caught.Kind, Reason: ReasonCaught})

	if !caught.IsFollowUp {
		e.spawn(false, nil)
	}
	return true
}

// extendTimer pushes the timeout deadline back by the configured boost.
// Time already spent is kept.
func (e *Engine) extendTimer() {
	if !e.timed {
		return
	}
	boost := secondsToDuration(e.cfg.Session.TimeBoostSecs)
	if boost <= 0 || !e.sched.Postpone(e.timeoutID, boost) {
		return
	}
	remaining, _ := e.sched.Remaining(e.timeoutID)
	e.emit(TimerExtended{Boost: boost, Remaining: remaining})
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
