// Package config provides YAML-based game configuration loading and the
// difficulty table for Bluebird Flight.
package config

import "fmt"

// Config contains all tunable parameters of a run.
// Distances are in abstract world units, times in seconds.
type Config struct {
	World      WorldConfig      `yaml:"world" koanf:"world"`
	Physics    PhysicsConfig    `yaml:"physics" koanf:"physics"`
	Player     PlayerConfig     `yaml:"player" koanf:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" koanf:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" koanf:"difficulty"`
	Pause      PauseConfig      `yaml:"pause" koanf:"pause"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width" koanf:"width"`
	Height float64 `yaml:"height" koanf:"height"`
}

// PhysicsConfig defines physics parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity" koanf:"gravity"`               // Downward acceleration, units/s^2
	FlapVelocity  float64 `yaml:"flap_velocity" koanf:"flap_velocity"`   // Upward speed set by a flap, units/s
	ObstacleSpeed float64 `yaml:"obstacle_speed" koanf:"obstacle_speed"` // Leftward obstacle speed, units/s
}

// PlayerConfig defines the player's hitbox and start position.
// Start positions are fractions of the world size.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x" koanf:"start_x"`
	StartY float64 `yaml:"start_y" koanf:"start_y"`
	Width  float64 `yaml:"width" koanf:"width"`
	Height float64 `yaml:"height" koanf:"height"`
}

// ObstacleConfig defines obstacle segment geometry.
type ObstacleConfig struct {
	Width  float64 `yaml:"width" koanf:"width"`
	Margin int     `yaml:"margin" koanf:"margin"` // Minimum distance between the gap and the world edge
}

// DifficultyConfig defines the starting tier, tier table and progression.
type DifficultyConfig struct {
	Start       Tier        `yaml:"start" koanf:"start"`
	Progression Progression `yaml:"progression" koanf:"progression"`
	Tiers       Table       `yaml:"tiers" koanf:"tiers"`
}

// PauseConfig defines the resume grace period.
type PauseConfig struct {
	CountdownSeconds int `yaml:"countdown_seconds" koanf:"countdown_seconds"`
}

// DifficultyPreset represents a named difficulty choice from the command line.
type DifficultyPreset string

const (
	PresetEasy   DifficultyPreset = "easy"
	PresetNormal DifficultyPreset = "normal"
	PresetHard   DifficultyPreset = "hard"
	PresetFixed  DifficultyPreset = "fixed" // Stay on the configured start tier
)

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case PresetFixed:
		cfg.Difficulty.Progression.Enabled = false
		return nil
	case PresetEasy, PresetNormal, PresetHard:
		cfg.Difficulty.Start = Tier(preset)
		cfg.Difficulty.Progression.Enabled = true
		return nil
	default:
		return fmt.Errorf("config: %w: preset %q", ErrUnknownTier, preset)
	}
}
