// Package tui provides the Bubble Tea integration for the arcade platform.
// It drives the game loop, maps terminal input to game actions, and turns
// the cell buffer into styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/topic-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation step. At carries the wall
// clock time, used to measure the real frame delta for variable-step games.
type TickMsg struct {
	At time.Time
}

// tickCmd returns a Bubble Tea command that fires the next tick after the
// given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}

// clockInterval resolves a game's clock declaration to the tick interval.
// Fixed-period games own their interval outright; frame games run at the
// configured frame rate.
func clockInterval(spec core.ClockSpec, tickRate int) time.Duration {
	if spec.Mode == core.ClockFixed && spec.Interval > 0 {
		return spec.Interval
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
