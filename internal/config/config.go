// Package config provides YAML-based configuration loading and validation
// for the dodger.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Config contains all tunable parameters for a dodger session.
type Config struct {
	Player     PlayerConfig     `yaml:"player"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Actors     ActorsConfig     `yaml:"actors"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scenes     ScenesConfig     `yaml:"scenes"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Units per second while a direction is held
	Size  float64 `yaml:"size"`  // Square side length
}

// SpawnerConfig defines projectile generation.
type SpawnerConfig struct {
	InitialDelay float64        `yaml:"initial_delay"` // Seconds before the first spawn
	Interval     float64        `yaml:"interval"`      // Seconds added to the timer on each spawn
	SpeedMin     float64        `yaml:"speed_min"`
	SpeedMax     float64        `yaml:"speed_max"`
	SizeMin      float64        `yaml:"size_min"`
	SizeMax      float64        `yaml:"size_max"`
	Weights      VariantWeights `yaml:"weights"`
}

// VariantWeights are relative draw weights per projectile variant.
type VariantWeights struct {
	Bullet float64 `yaml:"bullet"`
	Drunk  float64 `yaml:"drunk"`
	Homing float64 `yaml:"homing"`
}

// Total returns the sum of all weights.
func (w VariantWeights) Total() float64 {
	return w.Bullet + w.Drunk + w.Homing
}

// ActorsConfig defines variant motion constants.
type ActorsConfig struct {
	DrunkFactor      float64 `yaml:"drunk_factor"`
	HomingFactor     float64 `yaml:"homing_factor"`
	HomingSpeedLimit float64 `yaml:"homing_speed_limit"`
}

// SimulationConfig defines how the tick runs.
type SimulationConfig struct {
	Workers          int  `yaml:"workers"`           // 0 = GOMAXPROCS
	StrictDirections bool `yaml:"strict_directions"` // Fail the tick on zero-length directions
}

// StartMode selects what the start screen does on a movement key.
type StartMode string

const (
	// StartResume pops the gameplay scene paused beneath the start screen.
	StartResume StartMode = "resume"
	// StartFresh replaces the start screen with a new gameplay scene.
	StartFresh StartMode = "fresh"
)

// ScenesConfig defines scene stack policy.
type ScenesConfig struct {
	StartMode                  StartMode `yaml:"start_mode"`
	GameplayUpdateInBackground bool      `yaml:"gameplay_update_in_background"`
}

// InputConfig defines host input handling.
type InputConfig struct {
	// KeyHold is how long a terminal key press counts as held, since
	// terminals report no key releases.
	KeyHold time.Duration `yaml:"key_hold"`
}

// AudioConfig defines the sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
}

// Preset represents a named spawner configuration.
type Preset string

const (
	PresetStandard Preset = "standard"
	PresetClassic  Preset = "classic"
)

// ParsePreset validates a preset name. Empty means standard.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetStandard:
		return PresetStandard, nil
	case PresetClassic:
		return PresetClassic, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want standard or classic)", name)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetClassic:
		// First iteration of the game: plain and drunk bullets only, 90/10.
		cfg.Spawner.Weights = VariantWeights{Bullet: 90, Drunk: 10, Homing: 0}
	case PresetStandard:
		cfg.Spawner.Weights = DefaultConfig().Spawner.Weights
	}
}

// Validate reports every invalid setting, joined into one error.
func (c Config) Validate() error {
	var errs []error

	for _, f := range c.floats() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", f.name, f.value))
		}
	}
	if len(errs) > 0 {
		// Range checks below are meaningless for NaN and Inf.
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}

	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Player.Size < 0 {
		errs = append(errs, fmt.Errorf("player.size must not be negative, got %v", c.Player.Size))
	}

	s := c.Spawner
	if s.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawner.interval must be positive, got %v", s.Interval))
	}
	if s.InitialDelay < 0 {
		errs = append(errs, fmt.Errorf("spawner.initial_delay must not be negative, got %v", s.InitialDelay))
	}
	if s.SpeedMin < 0 || s.SpeedMin > s.SpeedMax {
		errs = append(errs, fmt.Errorf("spawner speed range [%v, %v] is invalid", s.SpeedMin, s.SpeedMax))
	}
	if s.SizeMin < 0 || s.SizeMin > s.SizeMax {
		errs = append(errs, fmt.Errorf("spawner size range [%v, %v] is invalid", s.SizeMin, s.SizeMax))
	}
	w := s.Weights
	if w.Bullet < 0 || w.Drunk < 0 || w.Homing < 0 {
		errs = append(errs, errors.New("spawner.weights must not be negative"))
	} else if w.Total() <= 0 {
		errs = append(errs, errors.New("spawner.weights must not all be zero"))
	}

	if c.Actors.HomingSpeedLimit <= 0 {
		errs = append(errs, fmt.Errorf("actors.homing_speed_limit must be positive, got %v", c.Actors.HomingSpeedLimit))
	}
	if c.Simulation.Workers < 0 {
		errs = append(errs, fmt.Errorf("simulation.workers must not be negative, got %d", c.Simulation.Workers))
	}

	switch c.Scenes.StartMode {
	case StartResume, StartFresh:
	default:
		errs = append(errs, fmt.Errorf("scenes.start_mode %q is invalid (want resume or fresh)", c.Scenes.StartMode))
	}

	if c.Input.KeyHold < 0 {
		errs = append(errs, fmt.Errorf("input.key_hold must not be negative, got %v", c.Input.KeyHold))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

type namedFloat struct {
	name  string
	value float64
}

func (c Config) floats() []namedFloat {
	s := c.Spawner
	return []namedFloat{
		{"player.speed", c.Player.Speed},
		{"player.size", c.Player.Size},
		{"spawner.initial_delay", s.InitialDelay},
		{"spawner.interval", s.Interval},
		{"spawner.speed_min", s.SpeedMin},
		{"spawner.speed_max", s.SpeedMax},
		{"spawner.size_min", s.SizeMin},
		{"spawner.size_max", s.SizeMax},
		{"spawner.weights.bullet", s.Weights.Bullet},
		{"spawner.weights.drunk", s.Weights.Drunk},
		{"spawner.weights.homing", s.Weights.Homing},
		{"actors.drunk_factor", c.Actors.DrunkFactor},
		{"actors.homing_factor", c.Actors.HomingFactor},
		{"actors.homing_speed_limit", c.Actors.HomingSpeedLimit},
		{"audio.volume", c.Audio.Volume},
	}
}
