package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration cannot drive a session.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports every invalid field at once.
func (c CatcherConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		bad("arena: dimensions must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.ScaleFactor <= 0 {
		bad("arena: scale_factor must be positive, got %g", c.Arena.ScaleFactor)
	}
	if c.Arena.SpawnMargin < 0 {
		bad("arena: spawn_margin must not be negative, got %g", c.Arena.SpawnMargin)
	}
	if c.Arena.Width > 0 && 2*c.Arena.SpawnMargin+c.Objects.Width > c.Arena.Width {
		bad("arena: spawn_margin %g leaves no room for objects in width %g", c.Arena.SpawnMargin, c.Arena.Width)
	}

	if c.Objects.Width <= 0 || c.Objects.Height <= 0 {
		bad("objects: size must be positive, got %gx%g", c.Objects.Width, c.Objects.Height)
	}
	if c.Objects.MissPenalty < 0 {
		bad("objects: miss_penalty must not be negative, got %d", c.Objects.MissPenalty)
	}

	switch c.Spawn.Policy {
	case PolicyFollowUp, PolicyDirectRoll:
	default:
		bad("spawn: unknown policy %q", c.Spawn.Policy)
	}
	for _, prob := range []struct {
		name string
		p    float64
	}{
		{"bonus_chance", c.Spawn.BonusChance},
		{"penalty_chance", c.Spawn.PenaltyChance},
		{"follow_up_chance", c.Spawn.FollowUpChance},
	} {
		if prob.p < 0 || prob.p > 1 {
			bad("spawn: %s must be within [0,1], got %g", prob.name, prob.p)
		}
	}
	if c.Spawn.Policy == PolicyDirectRoll && c.Spawn.BonusChance+c.Spawn.PenaltyChance > 1 {
		bad("spawn: bonus_chance + penalty_chance exceeds 1")
	}
	if c.Spawn.FollowUpDelayMS < 0 {
		bad("spawn: follow_up_delay_ms must not be negative, got %d", c.Spawn.FollowUpDelayMS)
	}
	if c.Spawn.InitialTargets < 1 {
		bad("spawn: initial_targets must be at least 1, got %d", c.Spawn.InitialTargets)
	}

	if c.Basket.Width <= 0 || c.Basket.Height <= 0 {
		bad("basket: size must be positive, got %gx%g", c.Basket.Width, c.Basket.Height)
	}
	if c.Arena.Width > 0 && c.Basket.Width > c.Arena.Width {
		bad("basket: width %g exceeds arena width %g", c.Basket.Width, c.Arena.Width)
	}
	if c.Basket.Speed <= 0 {
		bad("basket: speed must be positive, got %g", c.Basket.Speed)
	}
	if c.Basket.BottomOffset < 0 || (c.Arena.Height > 0 && c.Basket.BottomOffset > c.Arena.Height) {
		bad("basket: bottom_offset %g outside arena height", c.Basket.BottomOffset)
	}

	if c.Difficulty.InitialSpeed <= 0 {
		bad("difficulty: initial_speed must be positive, got %g", c.Difficulty.InitialSpeed)
	}
	if c.Difficulty.SpeedIncreaseRate < 0 {
		bad("difficulty: speed_increase_rate must not be negative, got %g", c.Difficulty.SpeedIncreaseRate)
	}
	if c.Difficulty.LevelUpInterval < 0 {
		bad("difficulty: level_up_interval must not be negative, got %d", c.Difficulty.LevelUpInterval)
	}

	if c.Session.EndOnTimeout && c.Session.DurationSecs <= 0 {
		bad("session: duration_secs must be positive, got %g", c.Session.DurationSecs)
	}
	if c.Session.TimeBoostSecs < 0 {
		bad("session: time_boost_secs must not be negative, got %g", c.Session.TimeBoostSecs)
	}
	if !c.Session.EndOnTimeout && !c.Session.EndOnZeroScore {
		bad("session: at least one of end_on_timeout or end_on_zero_score must be set")
	}
	if c.Session.InitialScore < 0 {
		bad("session: initial_score must not be negative, got %d", c.Session.InitialScore)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
