package catcher

import (
	"math"
)

// Snapshot captures the observable session state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	Phase       string
	Score       int
	TargetSpeed float64
	RemainingMS int64
	ElapsedMS   int64
	BasketX     float64

	// Objects, flattened: Kind, IsFollowUp (0/1), X, Y for each
	ObjectCount int
	ObjectData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	objs := g.engine.Objects()
	data := make([]float64, 0, len(objs)*4)
	for _, o := range objs {
		follow := 0.0
		if o.IsFollowUp {
			follow = 1
		}
		data = append(data, float64(o.Kind), follow, o.X, o.Y)
	}
	return Snapshot{
		Tick:        g.ticks,
		Phase:       g.engine.Phase().String(),
		Score:       g.engine.Score(),
		TargetSpeed: g.engine.TargetSpeed(),
		RemainingMS: g.engine.Remaining().Milliseconds(),
		ElapsedMS:   g.engine.Elapsed().Milliseconds(),
		BasketX:     g.engine.Basket().X,
		ObjectCount: len(objs),
		ObjectData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.TargetSpeed)
	h = h*31 + uint64(snap.RemainingMS) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ElapsedMS)   //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BasketX)
	h = h*31 + uint64(snap.ObjectCount) //#nosec G115 -- hash computation
	for _, v := range snap.ObjectData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
