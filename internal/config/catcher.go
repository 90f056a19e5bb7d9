// Package config provides YAML/TOML game configuration loading, difficulty
// presets and validation for the catcher.
package config

// Spawn policy names.
const (
	PolicyFollowUp   = "follow_up"   // Normal spawns may schedule a delayed penalty
	PolicyDirectRoll = "direct_roll" // One roll decides normal/bonus/penalty
)

// CatcherConfig contains all configuration for one catcher variant.
type CatcherConfig struct {
	Arena      ArenaConfig      `yaml:"arena" toml:"arena"`
	Objects    ObjectsConfig    `yaml:"objects" toml:"objects"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Basket     BasketConfig     `yaml:"basket" toml:"basket"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Session    SessionConfig    `yaml:"session" toml:"session"`
}

// ArenaConfig defines the play area in logical units.
type ArenaConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	SpawnMargin float64 `yaml:"spawn_margin" toml:"spawn_margin"` // Horizontal spawn inset on each side
	ScaleFactor float64 `yaml:"scale_factor" toml:"scale_factor"` // Display-density factor applied to speeds
}

// ObjectsConfig defines falling object sizes and score deltas.
type ObjectsConfig struct {
	Width                 float64 `yaml:"width" toml:"width"`
	Height                float64 `yaml:"height" toml:"height"`
	NormalPoints          int     `yaml:"normal_points" toml:"normal_points"`
	BonusPoints           int     `yaml:"bonus_points" toml:"bonus_points"`
	PenaltyPoints         int     `yaml:"penalty_points" toml:"penalty_points"` // Negative
	MissPenalty           int     `yaml:"miss_penalty" toml:"miss_penalty"`     // Subtracted on a missed object
	PenalizeSpecialMisses bool    `yaml:"penalize_special_misses" toml:"penalize_special_misses"`
}

// SpawnConfig defines the classifier policy and spawn scheduling.
type SpawnConfig struct {
	Policy          string  `yaml:"policy" toml:"policy"`
	BonusChance     float64 `yaml:"bonus_chance" toml:"bonus_chance"`
	PenaltyChance   float64 `yaml:"penalty_chance" toml:"penalty_chance"` // direct_roll only
	FollowUpChance  float64 `yaml:"follow_up_chance" toml:"follow_up_chance"`
	FollowUpDelayMS int     `yaml:"follow_up_delay_ms" toml:"follow_up_delay_ms"`
	InitialTargets  int     `yaml:"initial_targets" toml:"initial_targets"`
}

// BasketConfig defines the player avatar.
type BasketConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from arena bottom to basket top
	Speed        float64 `yaml:"speed" toml:"speed"`
}

// SessionConfig defines the countdown and end conditions.
type SessionConfig struct {
	DurationSecs   float64 `yaml:"duration_secs" toml:"duration_secs"`
	TimeBoostSecs  float64 `yaml:"time_boost_secs" toml:"time_boost_secs"`
	WinScore       int     `yaml:"win_score" toml:"win_score"`
	EndOnTimeout   bool    `yaml:"end_on_timeout" toml:"end_on_timeout"`
	EndOnZeroScore bool    `yaml:"end_on_zero_score" toml:"end_on_zero_score"`
	InitialScore   int     `yaml:"initial_score" toml:"initial_score"`
}
