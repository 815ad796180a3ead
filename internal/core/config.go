package core

import "time"

// MaxFrameDelta caps the elapsed time fed into a continuous-clock game.
// After a suspended terminal (the tab-in-background case in a browser) the
// next frame would otherwise integrate a huge physics step.
const MaxFrameDelta = 0.1 // seconds

// ClockMode selects how the platform drives a game's simulation.
type ClockMode int

const (
	// ClockFrame delivers rendering-synchronized updates carrying the real,
	// clamped elapsed time since the previous frame.
	ClockFrame ClockMode = iota
	// ClockFixed delivers one discrete step per fixed period; elapsed time
	// is ignored by the game.
	ClockFixed
)

// ClockSpec describes the clock a game wants to be driven by.
type ClockSpec struct {
	Mode     ClockMode
	Interval time.Duration // Step period for ClockFixed; ignored for ClockFrame
}

// RuntimeConfig is passed to games at initialization and restart. It is an
// explicit value built by the controller, never ambient state.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in cells
	ScreenH   int    // Screen height in cells
	TickRate  int    // Frame rate for ClockFrame games (default 60)
	Seed      int64  // RNG seed; 0 means the platform picks a time-based one
	Topic     string // Asset topic the session was started with
	HighScore int    // Persisted high score for (game, topic) at run start
	Theme     *Theme // Resolved topic assets; nil means all-fallback
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Topic:    "default",
	}
}

// GameState communicates a game's status to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by a game after each simulation step.
type StepResult struct {
	State GameState
}
