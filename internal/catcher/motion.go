package catcher

// advanceObjects moves every live object down by its fall speed.
func (e *Engine) advanceObjects(seconds float64) {
	e.objects.Each(func(o *FallingObject) {
		o.Y += o.FallSpeed(e.state.TargetSpeed) * seconds
		e.emit(ObjectMoved{ID: o.ID, X: o.X, Y: o.Y})
	})
}

// resolveBoundary handles every object whose top edge reached the arena
// floor, in registry order.
func (e *Engine) resolveBoundary() {
	for _, id := range e.objects.IDs() {
		if !e.state.Live() {
			return
		}
		obj, ok := e.objects.Get(id)
		if !ok || obj.Y < e.cfg.Arena.Height {
			continue
		}
		e.miss(*obj)
	}
}

// miss applies the off-screen rules to obj and replaces it when it was a
// primary object.
func (e *Engine) miss(obj FallingObject) {
	if !e.objects.Remove(obj.ID) {
		e.log.Warn("miss on untracked object", "id", obj.ID)
		return
	}

	if penalty := e.cfg.Objects.MissPenalty; penalty > 0 &&
		(obj.Kind == KindNormal || e.cfg.Objects.PenalizeSpecialMisses) {
		e.changeScore(-penalty)
		e.emit(ScorePopup{Delta: -penalty, X: obj.Bounds().CenterX(), Y: e.cfg.Arena.Height})
	}
	e.emit(ObjectDestroyed{ID: obj.ID, Kind: obj.Kind, Reason: ReasonMissed})

	if e.cfg.Session.EndOnZeroScore && e.state.Score == 0 {
		e.log.Debug("score hit zero after a miss")
		e.end()
		return
	}
	if !obj.IsFollowUp {
		e.spawn(false, nil)
	}
}
