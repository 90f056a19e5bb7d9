package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

//go:embed defaults/catcher_rush.yaml
var defaultRushYAML []byte

// Variant identifiers. They double as registry IDs and config file names.
const (
	VariantClassic = "catcher"
	VariantRush    = "catcher_rush"
)

// DefaultCatcherConfig returns the classic configuration: follow-up penalties,
// a 30 second countdown and a win at 20 points.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Arena: ArenaConfig{
			Width:       1200,
			Height:      758,
			SpawnMargin: 50,
			ScaleFactor: 1.0,
		},
		Objects: ObjectsConfig{
			Width:                 48,
			Height:                48,
			NormalPoints:          1,
			BonusPoints:           2,
			PenaltyPoints:         -2,
			MissPenalty:           1,
			PenalizeSpecialMisses: false,
		},
		Spawn: SpawnConfig{
			Policy:          PolicyFollowUp,
			BonusChance:     0.10,
			PenaltyChance:   0,
			FollowUpChance:  0.30,
			FollowUpDelayMS: 300,
			InitialTargets:  1,
		},
		Basket: BasketConfig{
			Width:        140,
			Height:       60,
			BottomOffset: 100,
			Speed:        450,
		},
		Difficulty: DifficultyConfig{
			InitialSpeed:      400,
			SpeedIncreaseRate: 20,
			LevelUpInterval:   5,
			LevelUpOnZero:     false,
		},
		Session: SessionConfig{
			DurationSecs:   30,
			TimeBoostSecs:  3,
			WinScore:       20,
			EndOnTimeout:   true,
			EndOnZeroScore: false,
			InitialScore:   0,
		},
	}
}

// DefaultRushConfig returns the rush configuration: direct penalty rolls, a
// 15 second countdown, and a session that also ends when the score drops to 0.
func DefaultRushConfig() CatcherConfig {
	cfg := DefaultCatcherConfig()
	cfg.Objects.BonusPoints = 3
	cfg.Spawn.Policy = PolicyDirectRoll
	cfg.Spawn.PenaltyChance = 0.15
	cfg.Spawn.FollowUpChance = 0
	cfg.Spawn.InitialTargets = 2
	cfg.Session.DurationSecs = 15
	cfg.Session.WinScore = 10
	cfg.Session.EndOnZeroScore = true
	cfg.Session.InitialScore = 3
	return cfg
}

// DefaultFor returns the hard-coded defaults for a variant.
func DefaultFor(variant string) CatcherConfig {
	if variant == VariantRush {
		return DefaultRushConfig()
	}
	return DefaultCatcherConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultCatcherYAML
	case VariantRush:
		return defaultRushYAML
	default:
		return nil
	}
}
