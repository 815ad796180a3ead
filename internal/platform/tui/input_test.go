package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/topic-arcade/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{keyMsg("w"), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{keyMsg("s"), core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{keyMsg("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{keyMsg("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{keyMsg("r"), core.ActionRestart, false},
		{keyMsg("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{keyMsg("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyMsg("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		got, isQuit := km.MapKey(tt.msg)
		if got != tt.want || isQuit != tt.isQuit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
		}
	}
}

func TestKeyMapperIgnoresUnboundInFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("x"), &frame)
	if frame.Any() {
		t.Fatal("unbound key reached the input frame")
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	if !frame.Has(core.ActionJump) {
		t.Fatal("space did not set the jump action")
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name           string
		startX, startY int
		endX, endY     int
		want           core.Action
	}{
		{"tap in place", 10, 10, 10, 10, core.ActionJump},
		{"tap with jitter", 10, 10, 12, 10, core.ActionJump}, // 2 cells = 16 units, below threshold
		{"swipe right", 10, 10, 16, 10, core.ActionRight},    // 6 cells = 48 units
		{"swipe left", 16, 10, 10, 11, core.ActionLeft},
		{"swipe down", 10, 5, 10, 8, core.ActionDown}, // 3 cells = 48 units
		{"swipe up", 10, 8, 11, 5, core.ActionUp},
		{"diagonal favors dominant axis", 10, 10, 20, 13, core.ActionRight}, // 80 vs 48 units
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr SwipeTracker

			if a, ok := tr.Track(press(tt.startX, tt.startY)); ok || a != core.ActionNone {
				t.Fatalf("press produced action %v", a)
			}
			a, ok := tr.Track(release(tt.endX, tt.endY))
			if !ok {
				t.Fatal("release produced no action")
			}
			if a != tt.want {
				t.Fatalf("gesture = %v, want %v", a, tt.want)
			}
		})
	}
}

func TestSwipeTrackerIgnoresStrayRelease(t *testing.T) {
	var tr SwipeTracker
	if _, ok := tr.Track(release(5, 5)); ok {
		t.Fatal("release without a press produced an action")
	}
}

func TestClockIntervalResolution(t *testing.T) {
	fixed := core.ClockSpec{Mode: core.ClockFixed, Interval: 200 * time.Millisecond}
	if got := clockInterval(fixed, 60); got != 200*time.Millisecond {
		t.Fatalf("fixed interval = %v, want 200ms", got)
	}

	frame := core.ClockSpec{Mode: core.ClockFrame}
	if got := clockInterval(frame, 60); got != time.Second/60 {
		t.Fatalf("frame interval = %v, want %v", got, time.Second/60)
	}

	if got := clockInterval(frame, 0); got != time.Second/60 {
		t.Fatalf("zero tick rate interval = %v, want %v", got, time.Second/60)
	}
}
