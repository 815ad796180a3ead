package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

//go:embed defaults/collector.yaml
var defaultCollectorYAML []byte

// DefaultDodgeConfig returns the default dodge tuning.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Canvas: CanvasConfig{
			Width:  320,
			Height: 480,
		},
		Physics: DodgePhysics{
			Gravity:      1200,
			JumpImpulse:  -420,
			MaxFallSpeed: 600,
		},
		Actor: DodgeActor{
			X:      60,
			Width:  34,
			Height: 24,
		},
		Obstacles: DodgeObstacles{
			Width:          52,
			BaseSpeed:      150,
			SpeedIncrement: 4,
			BaseInterval:   1.6,
			InitialGap:     170,
			GapDecrement:   2,
			MinGap:         80,
		},
	}
}

// DefaultCollectorConfig returns the default collector tuning.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		TickMillis:    200,
		InitialLength: 1,
	}
}
