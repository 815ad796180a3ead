package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/topic-arcade/internal/core"
)

// Gesture geometry. Cell deltas are scaled to gesture units so the swipe
// threshold is independent of terminal size; the vertical scale is doubled
// because terminal cells are roughly twice as tall as they are wide.
const (
	swipeThreshold = 30.0 // Minimum gesture units along the dominant axis
	unitsPerCellX  = 8.0
	unitsPerCellY  = 16.0
)

// SwipeTracker turns press-release mouse pairs into a single action: a
// directional swipe along the dominant axis, or a tap when the movement
// stays below the threshold. Intermediate motion events are ignored.
type SwipeTracker struct {
	tracking       bool
	startX, startY int
}

// Track feeds one mouse message into the tracker. The returned action is
// valid only when ok is true, which happens on button release.
func (t *SwipeTracker) Track(msg tea.MouseMsg) (core.Action, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.ActionNone, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		t.tracking = true
		t.startX = msg.X
		t.startY = msg.Y
		return core.ActionNone, false

	case tea.MouseActionRelease:
		if !t.tracking {
			return core.ActionNone, false
		}
		t.tracking = false
		return t.resolve(msg.X, msg.Y), true
	}

	return core.ActionNone, false
}

// resolve classifies the gesture from press point to release point.
func (t *SwipeTracker) resolve(endX, endY int) core.Action {
	dx := float64(endX-t.startX) * unitsPerCellX
	dy := float64(endY-t.startY) * unitsPerCellY

	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}

	// Sub-threshold movement is a tap
	if adx < swipeThreshold && ady < swipeThreshold {
		return core.ActionJump
	}

	if adx >= ady {
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	}
	if dy > 0 {
		return core.ActionDown
	}
	return core.ActionUp
}
