package catcher

import (
	"github.com/vovakirdan/tui-catcher/internal/core"
)

// Direction is the tri-state horizontal intent.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Input is the per-tick input snapshot supplied by the host.
// PointerX is in logical arena units.
type Input struct {
	Direction   Direction
	PointerDown bool
	PointerX    float64
}

// Resolve returns the effective direction. Keyboard intent wins; otherwise a
// held pointer steers toward the half of the arena it is in.
func (in Input) Resolve(arenaWidth float64) Direction {
	if in.Direction != DirNone {
		return in.Direction
	}
	if !in.PointerDown {
		return DirNone
	}
	if in.PointerX < arenaWidth/2 {
		return DirLeft
	}
	return DirRight
}

// Basket is the player avatar. X is the horizontal center, Y the top edge.
type Basket struct {
	X, Y  float64
	W, H  float64
	VX    float64
	Speed float64
}

// Bounds returns the basket's AABB.
func (b Basket) Bounds() core.RectF {
	return core.NewRectF(b.X-b.W/2, b.Y, b.W, b.H)
}

// Move sets the velocity from dir and integrates over seconds, keeping the
// basket fully inside [0, arenaWidth]. Reports whether X or VX changed.
func (b *Basket) Move(dir Direction, seconds, arenaWidth float64) bool {
	prevX, prevVX := b.X, b.VX
	switch dir {
	case DirLeft:
		b.VX = -b.Speed
	case DirRight:
		b.VX = b.Speed
	default:
		b.VX = 0
	}
	b.X = core.ClampF(b.X+b.VX*seconds, b.W/2, arenaWidth-b.W/2)
	return b.X != prevX || b.VX != prevVX
}
