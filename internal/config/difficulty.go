package config

import (
	"fmt"
	"strings"
)

// DifficultyConfig controls fall speed and its progression.
type DifficultyConfig struct {
	InitialSpeed      float64 `yaml:"initial_speed" toml:"initial_speed"`
	SpeedIncreaseRate float64 `yaml:"speed_increase_rate" toml:"speed_increase_rate"`
	LevelUpInterval   int     `yaml:"level_up_interval" toml:"level_up_interval"` // 0 disables level-ups
	LevelUpOnZero     bool    `yaml:"level_up_on_zero" toml:"level_up_on_zero"`
}

// Progressive reports whether the fall speed ever increases.
func (d DifficultyConfig) Progressive() bool {
	return d.LevelUpInterval > 0 && d.SpeedIncreaseRate != 0
}

// ShouldLevelUp reports whether reaching score after a catch triggers a level-up.
// The check is a plain modulus, so a penalty catch landing on a multiple
// counts too. Negative scores never level up.
func (d DifficultyConfig) ShouldLevelUp(score int) bool {
	if !d.Progressive() || score < 0 {
		return false
	}
	if score == 0 {
		return d.LevelUpOnZero
	}
	return score%d.LevelUpInterval == 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.InitialSpeed *= 0.75
		cfg.Difficulty.SpeedIncreaseRate *= 0.5
		cfg.Session.DurationSecs += 10
	case DifficultyHard:
		cfg.Difficulty.InitialSpeed *= 1.25
		cfg.Difficulty.SpeedIncreaseRate *= 1.5
		cfg.Basket.Width *= 0.8
		if cfg.Session.DurationSecs > 10 {
			cfg.Session.DurationSecs -= 5
		}
	case DifficultyFixed:
		cfg.Difficulty.LevelUpInterval = 0
	}
}
