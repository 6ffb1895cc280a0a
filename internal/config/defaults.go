package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/bluebird.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/bluebird.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:       600,
			FlapVelocity:  300,
			ObstacleSpeed: 200,
		},
		Player: PlayerConfig{
			StartX: 0.1,
			StartY: 0.5,
			Width:  48,
			Height: 36,
		},
		Obstacles: ObstacleConfig{
			Width:  52,
			Margin: 20,
		},
		Difficulty: DifficultyConfig{
			Start:       TierEasy,
			Progression: DefaultProgression(),
			Tiers:       DefaultTable(),
		},
		Pause: PauseConfig{
			CountdownSeconds: 3,
		},
	}
}

// Validate checks every setting a run depends on.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: %w: world size %gx%g", ErrInvalidConfig, c.World.Width, c.World.Height)
	}
	if c.Physics.FlapVelocity <= 0 || c.Physics.ObstacleSpeed <= 0 {
		return fmt.Errorf("config: %w: flap velocity and obstacle speed must be positive", ErrInvalidConfig)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: %w: player hitbox %gx%g", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Margin < 0 {
		return fmt.Errorf("config: %w: obstacle width %g margin %d", ErrInvalidConfig, c.Obstacles.Width, c.Obstacles.Margin)
	}
	if !c.Difficulty.Start.Valid() {
		return fmt.Errorf("config: %w: start %q", ErrUnknownTier, c.Difficulty.Start)
	}
	p := c.Difficulty.Progression
	if p.NormalAt < 0 || p.HardAt < p.NormalAt {
		return fmt.Errorf("config: %w: thresholds normal=%d hard=%d", ErrInvalidConfig, p.NormalAt, p.HardAt)
	}
	if c.Pause.CountdownSeconds < 0 {
		return fmt.Errorf("config: %w: countdown %d", ErrInvalidConfig, c.Pause.CountdownSeconds)
	}
	return c.Difficulty.Tiers.Validate(c.World.Height, c.Obstacles.Margin)
}
