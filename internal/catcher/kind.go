package catcher

import (
	"fmt"

	"github.com/vovakirdan/tui-catcher/internal/config"
)

// Kind is the type of a falling object.
type Kind int

const (
	KindNormal  Kind = iota // Regular orange
	KindBonus               // Golden orange: extra points and time
	KindPenalty             // Rotten orange: costs points when caught
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBonus:
		return "bonus"
	case KindPenalty:
		return "penalty"
	default:
		return "unknown"
	}
}

// Policy decides what to spawn.
type Policy interface {
	// Classify rolls the kind of the next primary object.
	Classify() Kind
	// ShouldFollowUp reports whether a freshly spawned object schedules a
	// delayed penalty at its position. Follow-ups never chain.
	ShouldFollowUp(k Kind, isFollowUp bool) bool
}

// NewPolicy builds the policy named in cfg.
func NewPolicy(cfg config.SpawnConfig, rng Random) (Policy, error) {
	switch cfg.Policy {
	case config.PolicyDirectRoll:
		return &DirectRoll{BonusChance: cfg.BonusChance, PenaltyChance: cfg.PenaltyChance, RNG: rng}, nil
	case config.PolicyFollowUp:
		return &FollowUp{
			DirectRoll:     DirectRoll{BonusChance: cfg.BonusChance, PenaltyChance: cfg.PenaltyChance, RNG: rng},
			FollowUpChance: cfg.FollowUpChance,
		}, nil
	default:
		return nil, fmt.Errorf("catcher: unknown spawn policy %q", cfg.Policy)
	}
}

// DirectRoll maps one uniform draw onto [0,bonus) Bonus,
// [bonus,bonus+penalty) Penalty, and Normal above that.
type DirectRoll struct {
	BonusChance   float64
	PenaltyChance float64
	RNG           Random
}

// Classify implements Policy.
func (p *DirectRoll) Classify() Kind {
	roll := p.RNG.Float64()
	switch {
	case roll < p.BonusChance:
		return KindBonus
	case roll < p.BonusChance+p.PenaltyChance:
		return KindPenalty
	default:
		return KindNormal
	}
}

// ShouldFollowUp implements Policy. Direct rolls never schedule follow-ups.
func (p *DirectRoll) ShouldFollowUp(Kind, bool) bool { return false }

// FollowUp classifies like DirectRoll and additionally gives every primary
// Normal object a chance to drag a rotten one behind it.
type FollowUp struct {
	DirectRoll
	FollowUpChance float64
}

// ShouldFollowUp implements Policy.
func (p *FollowUp) ShouldFollowUp(k Kind, isFollowUp bool) bool {
	if isFollowUp || k != KindNormal {
		return false
	}
	return p.RNG.Float64() < p.FollowUpChance
}
