package config

import (
	_ "embed"
)

//go:embed defaults/island.yaml
var defaultIslandYAML []byte

// DefaultIslandConfig returns the built-in island configuration.
// It mirrors defaults/island.yaml and is used if the embedded file is unreadable.
func DefaultIslandConfig() IslandConfig {
	return IslandConfig{
		Physics: IslandPhysics{
			FPS:       60,
			Speed:     20,
			BallWidth: 25,
		},
		Island: IslandRect{
			X: 130,
			Y: 8,
			W: 127,
			H: 32,
		},
		Paddle: IslandPaddle{
			Offset:     100,
			Height:     32,
			WidthRatio: 0.5,
			Clamp:      true,
			KeyStep:    40,
		},
		Grid: IslandGrid{
			UnitsPerCol: 8,
			UnitsPerRow: 16,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultIslandYAML
}
