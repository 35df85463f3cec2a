// Package config loads match settings from defaults, a TOML or YAML file and the environment
package config

import (
	"time"

	"github.com/lixenwraith/mask-arena/combat"
	"github.com/lixenwraith/mask-arena/mask"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/parameter"
	"github.com/lixenwraith/mask-arena/player"
	"github.com/lixenwraith/mask-arena/spawn"
	"github.com/lixenwraith/mask-arena/vmath"
)

// Config is the complete runtime configuration
type Config struct {
	Match   MatchConfig   `toml:"match" yaml:"match" json:"match"`
	Spawn   SpawnConfig   `toml:"spawn" yaml:"spawn" json:"spawn"`
	Players PlayersConfig `toml:"players" yaml:"players" json:"players"`
	Engine  EngineConfig  `toml:"engine" yaml:"engine" json:"engine"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio" json:"audio"`
}

type MatchConfig struct {
	CountdownSeconds int     `toml:"countdown_seconds" yaml:"countdown_seconds" json:"countdown_seconds" jsonschema:"minimum=1,description=Countdown length before play"`
	DurationSeconds  float64 `toml:"duration_seconds" yaml:"duration_seconds" json:"duration_seconds" jsonschema:"description=Match length; timeout is a draw"`
}

type RegionConfig struct {
	MinX float64 `toml:"min_x" yaml:"min_x" json:"min_x"`
	MinY float64 `toml:"min_y" yaml:"min_y" json:"min_y"`
	MaxX float64 `toml:"max_x" yaml:"max_x" json:"max_x"`
	MaxY float64 `toml:"max_y" yaml:"max_y" json:"max_y"`
}

// Rect converts the region to arena coordinates
func (r RegionConfig) Rect() vmath.Rect {
	return vmath.NewRect(r.MinX, r.MinY, r.MaxX, r.MaxY)
}

type SpawnConfig struct {
	IntervalMin       float64      `toml:"interval_min" yaml:"interval_min" json:"interval_min" jsonschema:"description=Shortest delay between spawn attempts in seconds"`
	IntervalMax       float64      `toml:"interval_max" yaml:"interval_max" json:"interval_max" jsonschema:"description=Longest delay between spawn attempts in seconds"`
	MaxLive           int          `toml:"max_live" yaml:"max_live" json:"max_live" jsonschema:"minimum=1"`
	MinPlayerDistance float64      `toml:"min_player_distance" yaml:"min_player_distance" json:"min_player_distance" jsonschema:"minimum=0"`
	Attempts          int          `toml:"attempts" yaml:"attempts" json:"attempts" jsonschema:"minimum=1"`
	Region            RegionConfig `toml:"region" yaml:"region" json:"region"`
	Roster            []string     `toml:"roster" yaml:"roster" json:"roster" jsonschema:"description=Mask kinds that may spawn"`
}

// Point is an [x, y] pair
type Point [2]float64

func (p Point) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p[0], Y: p[1]}
}

type PlayersConfig struct {
	MaxHealth       int     `toml:"max_health" yaml:"max_health" json:"max_health" jsonschema:"minimum=1"`
	Damage          int     `toml:"damage" yaml:"damage" json:"damage" jsonschema:"minimum=1"`
	Range           float64 `toml:"range" yaml:"range" json:"range"`
	CooldownSeconds float64 `toml:"cooldown_seconds" yaml:"cooldown_seconds" json:"cooldown_seconds"`
	MoveSpeed       float64 `toml:"move_speed" yaml:"move_speed" json:"move_speed"`
	PickupRange     float64 `toml:"pickup_range" yaml:"pickup_range" json:"pickup_range"`
	BuffMultiplier  float64 `toml:"buff_multiplier" yaml:"buff_multiplier" json:"buff_multiplier"`
	BuffSeconds     float64 `toml:"buff_seconds" yaml:"buff_seconds" json:"buff_seconds"`
	InputHoldMs     int     `toml:"input_hold_ms" yaml:"input_hold_ms" json:"input_hold_ms" jsonschema:"description=How long a direction stays active after its last key report"`
	Spawn1          Point   `toml:"spawn_1" yaml:"spawn_1" json:"spawn_1"`
	Spawn2          Point   `toml:"spawn_2" yaml:"spawn_2" json:"spawn_2"`
}

type EngineConfig struct {
	TickMs int `toml:"tick_ms" yaml:"tick_ms" json:"tick_ms" jsonschema:"minimum=1"`
	// Seed of 0 picks one from the clock
	Seed uint64 `toml:"seed" yaml:"seed" json:"seed"`
	// FSMPath overrides the embedded phase graph
	FSMPath string `toml:"fsm_path" yaml:"fsm_path" json:"fsm_path"`
}

type AudioConfig struct {
	Muted  bool    `toml:"muted" yaml:"muted" json:"muted"`
	Volume float64 `toml:"volume" yaml:"volume" json:"volume" jsonschema:"minimum=0,maximum=1"`
}

// Default returns the stock configuration
func Default() Config {
	roster := make([]string, 0, mask.Count)
	for _, k := range mask.All() {
		roster = append(roster, k.String())
	}

	return Config{
		Match: MatchConfig{
			CountdownSeconds: parameter.MatchCountdownSeconds,
			DurationSeconds:  parameter.MatchDuration.Seconds(),
		},
		Spawn: SpawnConfig{
			IntervalMin:       parameter.SpawnIntervalMin.Seconds(),
			IntervalMax:       parameter.SpawnIntervalMax.Seconds(),
			MaxLive:           parameter.SpawnMaxLive,
			MinPlayerDistance: parameter.SpawnMinPlayerDistanceFloat,
			Attempts:          parameter.SpawnPlacementAttempts,
			Region: RegionConfig{
				MinX: parameter.ArenaMinXFloat,
				MinY: parameter.ArenaMinYFloat,
				MaxX: parameter.ArenaMaxXFloat,
				MaxY: parameter.ArenaMaxYFloat,
			},
			Roster: roster,
		},
		Players: PlayersConfig{
			MaxHealth:       parameter.CombatMaxHealth,
			Damage:          parameter.CombatAttackDamage,
			Range:           parameter.CombatAttackRangeFloat,
			CooldownSeconds: parameter.CombatAttackCooldown.Seconds(),
			MoveSpeed:       parameter.PlayerMoveSpeedFloat,
			PickupRange:     parameter.PlayerPickupRangeFloat,
			BuffMultiplier:  parameter.PlayerBuffMultiplierFloat,
			BuffSeconds:     parameter.PlayerBuffDuration.Seconds(),
			InputHoldMs:     int(parameter.PlayerInputHold / time.Millisecond),
			Spawn1:          Point{parameter.PlayerOneSpawnXFloat, parameter.PlayerSpawnYFloat},
			Spawn2:          Point{parameter.PlayerTwoSpawnXFloat, parameter.PlayerSpawnYFloat},
		},
		Engine: EngineConfig{
			TickMs: int(parameter.TickInterval / time.Millisecond),
		},
		Audio: AudioConfig{
			Volume: parameter.AudioCueVolume,
		},
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Tick returns the scheduler interval
func (c Config) Tick() time.Duration {
	return time.Duration(c.Engine.TickMs) * time.Millisecond
}

// CombatStats returns the per-entity attack stats
func (c Config) CombatStats() combat.Stats {
	return combat.Stats{
		Damage:   c.Players.Damage,
		Range:    c.Players.Range,
		Cooldown: seconds(c.Players.CooldownSeconds),
	}
}

// MatchConfig converts to the controller's rules
func (c Config) MatchConfig() match.Config {
	return match.Config{
		CountdownSeconds: c.Match.CountdownSeconds,
		CountdownStep:    parameter.MatchCountdownStep,
		Duration:         seconds(c.Match.DurationSeconds),
		MaxHealth:        c.Players.MaxHealth,
		Stats:            c.CombatStats(),
		Spawns:           [2]vmath.Vec2{c.Players.Spawn1.Vec(), c.Players.Spawn2.Vec()},
	}
}

// SpawnConfig converts to the scheduler's settings, unknown roster names are skipped
func (c Config) SpawnConfig() spawn.Config {
	roster := make([]mask.Kind, 0, len(c.Spawn.Roster))
	for _, name := range c.Spawn.Roster {
		if k, err := mask.ParseKind(name); err == nil {
			roster = append(roster, k)
		}
	}
	return spawn.Config{
		IntervalMin:       seconds(c.Spawn.IntervalMin),
		IntervalMax:       seconds(c.Spawn.IntervalMax),
		MaxLive:           c.Spawn.MaxLive,
		MinPlayerDistance: c.Spawn.MinPlayerDistance,
		Attempts:          c.Spawn.Attempts,
		Region:            c.Spawn.Region.Rect(),
		Roster:            roster,
		OverlapRadius:     parameter.SpawnOccupancyRadiusFloat,
	}
}

// PlayerConfig converts to the player controller's tuning
func (c Config) PlayerConfig() player.Config {
	return player.Config{
		MoveSpeed:      c.Players.MoveSpeed,
		PickupRange:    c.Players.PickupRange,
		BuffMultiplier: c.Players.BuffMultiplier,
		BuffDuration:   seconds(c.Players.BuffSeconds),
		InputHold:      time.Duration(c.Players.InputHoldMs) * time.Millisecond,
		Arena:          c.Spawn.Region.Rect(),
	}
}
