package core

// Action is a semantic game action, abstracted from physical input. The
// platform normalizes keyboard keys, mouse clicks and press-release swipes
// into this single action space; games never see raw events.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up, tap/click - the dodge impulse
	ActionUp             // Up arrow, W, upward swipe
	ActionDown           // Down arrow, S, downward swipe
	ActionLeft           // Left arrow, A, leftward swipe
	ActionRight          // Right arrow, D, rightward swipe
	ActionConfirm        // Enter
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// DirectionVector returns the grid step for a directional action, and whether
// the action is directional at all.
func (a Action) DirectionVector() (dx, dy int, ok bool) {
	switch a {
	case ActionUp:
		return 0, -1, true
	case ActionDown:
		return 0, 1, true
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// InputFrame is the set of actions triggered since the previous simulation
// tick. Input callbacks only mutate the frame; the tick consumes and clears
// it, so entity state is never touched from the event path.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Any reports whether any action at all was triggered this frame. The dodge
// game restarts on any input while in game over.
func (f InputFrame) Any() bool {
	return len(f.Actions) > 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
