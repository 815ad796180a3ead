// Package config provides YAML-based tuning for the arcade games.
// All simulation constants live here so a game never hardcodes physics;
// the loaded value is passed into the controller explicitly.
package config

// DodgeConfig contains all tuning for the obstacle dodger.
// The simulation runs on a fixed virtual canvas; positions, speeds and sizes
// are in virtual units (units per second for speeds), not cells.
type DodgeConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Physics   DodgePhysics   `yaml:"physics"`
	Actor     DodgeActor     `yaml:"actor"`
	Obstacles DodgeObstacles `yaml:"obstacles"`
}

// CanvasConfig is the virtual coordinate space of a continuous game.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgePhysics defines the actor's vertical physics.
type DodgePhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Units per second squared
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Velocity set on jump (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
}

// DodgeActor defines the player-controlled actor. Width and height are
// constant for the lifetime of a run.
type DodgeActor struct {
	X      float64 `yaml:"x"` // Fixed horizontal position of the left edge
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgeObstacles defines obstacle spawning and the difficulty ramp.
type DodgeObstacles struct {
	Width          float64 `yaml:"width"`
	BaseSpeed      float64 `yaml:"base_speed"`      // Leftward speed of the first obstacle
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to speed on every spawn
	BaseInterval   float64 `yaml:"base_interval"`   // Seconds between spawns before jitter
	InitialGap     float64 `yaml:"initial_gap"`     // Gap height of the first obstacle
	GapDecrement   float64 `yaml:"gap_decrement"`   // Subtracted from gap on every spawn
	MinGap         float64 `yaml:"min_gap"`         // Floor keeping the gap traversable
}

// CollectorConfig contains all tuning for the grid collector.
type CollectorConfig struct {
	Grid          GridConfig `yaml:"grid"`
	TickMillis    int        `yaml:"tick_millis"`    // Fixed step period; constant for a session
	InitialLength int        `yaml:"initial_length"` // Starting segment count
}

// GridConfig is the discrete play field of the collector.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
