package catcher

import (
	"slices"

	"github.com/vovakirdan/tui-catcher/internal/core"
)

// ObjectID is a registry handle. IDs are never reused within an engine.
type ObjectID uint64

// FallingObject is one live target. X is fixed at spawn, Y grows every tick.
// Coordinates are the top-left corner in logical arena units.
type FallingObject struct {
	ID            ObjectID
	Kind          Kind
	X, Y          float64
	W, H          float64
	SpeedOverride float64 // 0 means fall at the session target speed
	ScoreDelta    int
	IsFollowUp    bool
}

// FallSpeed returns the speed this object falls at given the session speed.
func (o FallingObject) FallSpeed(target float64) float64 {
	if o.SpeedOverride > 0 {
		return o.SpeedOverride
	}
	return target
}

// Bounds returns the object's AABB.
func (o FallingObject) Bounds() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Registry owns every live object, in spawn order.
type Registry struct {
	byID   map[ObjectID]*FallingObject
	order  []ObjectID
	nextID ObjectID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[ObjectID]*FallingObject)}
}

// Add stores obj under a fresh ID and returns that ID.
func (r *Registry) Add(obj FallingObject) ObjectID {
	r.nextID++
	obj.ID = r.nextID
	r.byID[obj.ID] = &obj
	r.order = append(r.order, obj.ID)
	return obj.ID
}

// Get returns the live object for id.
func (r *Registry) Get(id ObjectID) (*FallingObject, bool) {
	obj, ok := r.byID[id]
	return obj, ok
}

// Remove drops id. Reports false if the object was not tracked.
func (r *Registry) Remove(id ObjectID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Len returns the number of live objects.
func (r *Registry) Len() int { return len(r.order) }

// IDs returns a copy of the live IDs in registry order.
func (r *Registry) IDs() []ObjectID { return slices.Clone(r.order) }

// Each calls fn for every live object in registry order.
func (r *Registry) Each(fn func(*FallingObject)) {
	for _, id := range r.order {
		fn(r.byID[id])
	}
}

// Objects returns value copies of the live objects in registry order.
func (r *Registry) Objects() []FallingObject {
	out := make([]FallingObject, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

// CountPrimary returns how many live objects are not follow-ups.
func (r *Registry) CountPrimary() int {
	n := 0
	for _, id := range r.order {
		if !r.byID[id].IsFollowUp {
			n++
		}
	}
	return n
}

// Clear removes every object. IDs keep increasing.
func (r *Registry) Clear() {
	clear(r.byID)
	r.order = r.order[:0]
}
