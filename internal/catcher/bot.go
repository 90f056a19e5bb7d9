package catcher

// autopilotDeadband is how close, in logical units, the basket center must
// be to its target before the autopilot stops steering.
const autopilotDeadband = 10

// Autopilot steers toward the lowest Normal or Bonus object and ignores
// Penalty ones. Headless simulations and soak tests drive the engine with it.
func Autopilot(e *Engine) Input {
	var target *FallingObject
	for _, o := range e.Objects() {
		if o.Kind == KindPenalty {
			continue
		}
		if target == nil || o.Y > target.Y {
			target = &o
		}
	}
	if target == nil {
		return Input{}
	}

	b := e.Basket()
	switch cx := target.Bounds().CenterX(); {
	case cx < b.X-autopilotDeadband:
		return Input{Direction: DirLeft}
	case cx > b.X+autopilotDeadband:
		return Input{Direction: DirRight}
	default:
		return Input{}
	}
}
