package config

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/mask-arena/mask"
)

// Validate reports every inconsistency in one error
func (c Config) Validate() error {
	var errs []string

	// match
	if c.Match.CountdownSeconds <= 0 {
		errs = append(errs, "match.countdown_seconds must be >= 1")
	}
	if c.Match.DurationSeconds <= 0 {
		errs = append(errs, "match.duration_seconds must be > 0")
	}

	// spawn
	if c.Spawn.IntervalMin < 0 {
		errs = append(errs, "spawn.interval_min must be >= 0")
	}
	if c.Spawn.IntervalMin > c.Spawn.IntervalMax {
		errs = append(errs, "spawn.interval_min must be <= spawn.interval_max")
	}
	if c.Spawn.MaxLive <= 0 {
		errs = append(errs, "spawn.max_live must be >= 1")
	}
	if c.Spawn.MinPlayerDistance < 0 {
		errs = append(errs, "spawn.min_player_distance must be >= 0")
	}
	if c.Spawn.Attempts <= 0 {
		errs = append(errs, "spawn.attempts must be >= 1")
	}
	if r := c.Spawn.Region; r.MaxX <= r.MinX || r.MaxY <= r.MinY {
		errs = append(errs, "spawn.region must have max_x > min_x and max_y > min_y")
	}
	if len(c.Spawn.Roster) == 0 {
		errs = append(errs, "spawn.roster must name at least one mask")
	}
	for i, name := range c.Spawn.Roster {
		if _, err := mask.ParseKind(name); err != nil {
			errs = append(errs, fmt.Sprintf("spawn.roster[%d] unknown mask '%s'", i, name))
		}
	}

	// players
	if c.Players.MaxHealth <= 0 {
		errs = append(errs, "players.max_health must be >= 1")
	}
	if c.Players.Damage <= 0 {
		errs = append(errs, "players.damage must be >= 1")
	}
	if c.Players.Range <= 0 {
		errs = append(errs, "players.range must be > 0")
	}
	if c.Players.CooldownSeconds <= 0 {
		errs = append(errs, "players.cooldown_seconds must be > 0")
	}
	if c.Players.MoveSpeed < 0 {
		errs = append(errs, "players.move_speed must be >= 0")
	}
	if c.Players.PickupRange < 0 {
		errs = append(errs, "players.pickup_range must be >= 0")
	}
	if c.Players.BuffMultiplier <= 0 {
		errs = append(errs, "players.buff_multiplier must be > 0")
	}
	if c.Players.BuffSeconds < 0 || c.Players.InputHoldMs < 0 {
		errs = append(errs, "players.buff_seconds and players.input_hold_ms must be >= 0")
	}

	// engine
	if c.Engine.TickMs <= 0 {
		errs = append(errs, "engine.tick_ms must be >= 1")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, "audio.volume must be in [0,1]")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
