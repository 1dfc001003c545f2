// Package config provides YAML-based configuration loading for the island game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// IslandConfig contains all configuration for the island game.
type IslandConfig struct {
	Physics IslandPhysics `yaml:"physics"`
	Island  IslandRect    `yaml:"island"`
	Paddle  IslandPaddle  `yaml:"paddle"`
	Grid    IslandGrid    `yaml:"grid"`
}

// IslandPhysics defines the tick rate and ball motion.
type IslandPhysics struct {
	FPS       int     `yaml:"fps"`
	Speed     float64 `yaml:"speed"`      // Arena units per tick
	BallWidth float64 `yaml:"ball_width"` // Side of the square ball
}

// IslandRect is the fixed obstacle near the top of the arena.
type IslandRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// IslandPaddle defines the player paddle.
type IslandPaddle struct {
	Offset     float64 `yaml:"offset"`      // Paddle top is this far above the arena bottom
	Height     float64 `yaml:"height"`      //
	WidthRatio float64 `yaml:"width_ratio"` // Paddle width as a fraction of arena width
	Clamp      bool    `yaml:"clamp"`       // Keep the paddle inside the arena
	KeyStep    float64 `yaml:"key_step"`    // Units moved per key press
}

// IslandGrid maps arena units onto terminal cells.
type IslandGrid struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
}

// Validate checks that the configuration describes a playable arena.
func (c IslandConfig) Validate() error {
	switch {
	case c.Physics.FPS <= 0:
		return fmt.Errorf("config: physics.fps must be positive: %w", ErrInvalid)
	case c.Physics.Speed <= 0:
		return fmt.Errorf("config: physics.speed must be positive: %w", ErrInvalid)
	case c.Physics.BallWidth <= 0:
		return fmt.Errorf("config: physics.ball_width must be positive: %w", ErrInvalid)
	case c.Island.W <= 0 || c.Island.H <= 0:
		return fmt.Errorf("config: island size must be positive: %w", ErrInvalid)
	case c.Paddle.Height <= 0:
		return fmt.Errorf("config: paddle.height must be positive: %w", ErrInvalid)
	case c.Paddle.WidthRatio <= 0 || c.Paddle.WidthRatio > 1:
		return fmt.Errorf("config: paddle.width_ratio must be in (0, 1]: %w", ErrInvalid)
	case c.Paddle.KeyStep < 0:
		return fmt.Errorf("config: paddle.key_step must not be negative: %w", ErrInvalid)
	case c.Grid.UnitsPerCol <= 0 || c.Grid.UnitsPerRow <= 0:
		return fmt.Errorf("config: grid scale must be positive: %w", ErrInvalid)
	}
	return nil
}
