package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MASK_ARENA_"

// Load builds the configuration: defaults, then the file at path (optional), then the environment
// The result is validated
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML or YAML file over cfg, chosen by extension
// Keys missing from the file keep their current values
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("failed to parse TOML %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys in %s: %v", path, undecoded)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format '%s'", filepath.Ext(path))
	}
	return nil
}

// LoadDotEnv exports variables from the given .env files, missing files are skipped
// Variables already set in the process environment win
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg from MASK_ARENA_<SECTION>_<KEY> variables
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	var errs []string
	for _, b := range envBindings(cfg) {
		key := EnvPrefix + b.key
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		if err := b.set(strings.TrimSpace(raw)); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return nil
}

type envBinding struct {
	key string
	set func(string) error
}

func envBindings(cfg *Config) []envBinding {
	return []envBinding{
		{"MATCH_COUNTDOWN_SECONDS", setInt(&cfg.Match.CountdownSeconds)},
		{"MATCH_DURATION_SECONDS", setFloat(&cfg.Match.DurationSeconds)},
		{"SPAWN_INTERVAL_MIN", setFloat(&cfg.Spawn.IntervalMin)},
		{"SPAWN_INTERVAL_MAX", setFloat(&cfg.Spawn.IntervalMax)},
		{"SPAWN_MAX_LIVE", setInt(&cfg.Spawn.MaxLive)},
		{"SPAWN_MIN_PLAYER_DISTANCE", setFloat(&cfg.Spawn.MinPlayerDistance)},
		{"SPAWN_ATTEMPTS", setInt(&cfg.Spawn.Attempts)},
		{"SPAWN_ROSTER", setList(&cfg.Spawn.Roster)},
		{"PLAYERS_MAX_HEALTH", setInt(&cfg.Players.MaxHealth)},
		{"PLAYERS_DAMAGE", setInt(&cfg.Players.Damage)},
		{"PLAYERS_RANGE", setFloat(&cfg.Players.Range)},
		{"PLAYERS_COOLDOWN_SECONDS", setFloat(&cfg.Players.CooldownSeconds)},
		{"PLAYERS_MOVE_SPEED", setFloat(&cfg.Players.MoveSpeed)},
		{"PLAYERS_PICKUP_RANGE", setFloat(&cfg.Players.PickupRange)},
		{"ENGINE_TICK_MS", setInt(&cfg.Engine.TickMs)},
		{"ENGINE_SEED", setUint(&cfg.Engine.Seed)},
		{"ENGINE_FSM_PATH", setString(&cfg.Engine.FSMPath)},
		{"AUDIO_MUTED", setBool(&cfg.Audio.Muted)},
		{"AUDIO_VOLUME", setFloat(&cfg.Audio.Volume)},
	}
}

func setInt(dst *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func setUint(dst *uint64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func setFloat(dst *float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func setBool(dst *bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func setString(dst *string) func(string) error {
	return func(s string) error {
		*dst = s
		return nil
	}
}

// setList splits a comma separated value, empty items dropped
func setList(dst *[]string) func(string) error {
	return func(s string) error {
		out := make([]string, 0, 6)
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		*dst = out
		return nil
	}
}
