// Package collector implements the grid collector: a growing segment chain
// that gathers items on a bounded grid. One fixed-period tick is one grid
// step; the period never changes within a session.
package collector

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/akarpov/topic-arcade/internal/config"
	"github.com/akarpov/topic-arcade/internal/core"
	"github.com/akarpov/topic-arcade/internal/registry"
)

// Point is a grid cell or a direction vector.
type Point struct {
	X, Y int
}

// noItem marks the item as unplaceable (grid completely occupied).
var noItem = Point{X: -1, Y: -1}

// Game implements the collector game logic.
type Game struct {
	cfg   config.CollectorConfig
	rt    core.RuntimeConfig
	theme *core.Theme
	rng   *rand.Rand

	segments []Point // Head at index 0
	dir      Point   // Active direction
	pending  Point   // Buffered direction, consumed on the next tick
	growth   bool    // Tail is kept on the next move
	item     Point

	score    int
	gameOver bool
	paused   bool
}

// Package-level tuning applied at creation, set by the CLI before play.
var gameConfig = config.DefaultCollectorConfig()

// SetConfig installs the tuning used by new game instances.
func SetConfig(cfg config.CollectorConfig) {
	gameConfig = cfg
}

// New creates a new collector game instance.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("collector", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "collector"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grid Collector"
}

// Clock declares the fixed-period clock. The period is constant for the
// whole session; there is deliberately no speed ramp here.
func (g *Game) Clock() core.ClockSpec {
	return core.ClockSpec{
		Mode:     core.ClockFixed,
		Interval: time.Duration(g.cfg.TickMillis) * time.Millisecond,
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.theme = cfg.Theme
	if g.theme == nil {
		g.theme = core.DefaultTheme()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.growth = false
	g.dir = Point{X: 1, Y: 0}
	g.pending = g.dir

	// Initial segments extend left from the grid center
	length := core.Max(1, g.cfg.InitialLength)
	head := Point{X: g.cfg.Grid.Width / 2, Y: g.cfg.Grid.Height / 2}
	g.segments = g.segments[:0]
	for i := 0; i < length; i++ {
		g.segments = append(g.segments, Point{X: head.X - i, Y: head.Y})
	}

	g.spawnItem()
}

// Step performs one grid step. dt is ignored; the platform's fixed ticker
// defines the pace.
func (g *Game) Step(_ float64, in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.bufferDirection(in)
	g.move()

	return core.StepResult{State: g.State()}
}

// bufferDirection stores the latest directional input as the pending
// direction; 180-degree reversals are rejected while the chain is longer
// than one segment. Taps arrive as the jump action and are ignored here.
func (g *Game) bufferDirection(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		dx, dy, _ := a.DirectionVector()
		next := Point{X: dx, Y: dy}
		if len(g.segments) > 1 && next.X == -g.dir.X && next.Y == -g.dir.Y {
			continue // reversal attempt: pending direction unchanged
		}
		g.pending = next
	}
}

// move consumes the pending direction and advances the chain one cell.
func (g *Game) move() {
	g.dir = g.pending

	head := g.segments[0]
	newHead := Point{X: head.X + g.dir.X, Y: head.Y + g.dir.Y}

	if newHead.X < 0 || newHead.X >= g.cfg.Grid.Width ||
		newHead.Y < 0 || newHead.Y >= g.cfg.Grid.Height {
		g.gameOver = true
		return
	}

	// Self collision against every non-tail segment. The tail only counts
	// when a pending growth keeps it in place this move.
	checkLen := len(g.segments)
	if !g.growth && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.segments[i] == newHead {
			g.gameOver = true
			return
		}
	}

	g.segments = append([]Point{newHead}, g.segments...)

	// Consume a growth scheduled by the previous tick
	if g.growth {
		g.growth = false
	} else if len(g.segments) > 1 {
		g.segments = g.segments[:len(g.segments)-1]
	}

	// Collecting schedules growth for the next move
	if newHead == g.item {
		g.score++
		g.growth = true
		g.spawnItem()
	}
}

// spawnItem rejection-samples a uniformly random cell until it lands on one
// not occupied by any segment. A fully occupied grid parks the item off the
// board.
func (g *Game) spawnItem() {
	if len(g.segments) >= g.cfg.Grid.Width*g.cfg.Grid.Height {
		g.item = noItem
		return
	}
	for {
		p := Point{X: g.rng.Intn(g.cfg.Grid.Width), Y: g.rng.Intn(g.cfg.Grid.Height)}
		if !g.occupied(p) {
			g.item = p
			return
		}
	}
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// restart begins a fresh run with a new seed, keeping config and theme.
// A record run becomes the high score shown from now on.
func (g *Game) restart() {
	cfg := g.rt
	cfg.Seed = g.rng.Int63()
	if g.score > cfg.HighScore {
		cfg.HighScore = g.score
	}
	g.Reset(cfg)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// --- Rendering ---

// Render draws the static stretch-fit background, the play field, the chain
// and the item, then the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sw, sh := dst.Width(), dst.Height()
	if sw == 0 || sh == 0 {
		return
	}

	g.theme.Background.DrawStretched(dst, core.NewRect(0, 0, sw, sh))

	field := g.fieldRect(dst)
	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), core.ColorWhite)

	if g.item != noItem {
		g.theme.Item.DrawStretched(dst, g.cellRect(field, g.item))
	}

	for i := len(g.segments) - 1; i >= 1; i-- {
		dst.DrawRect(g.cellRect(field, g.segments[i]), '▓', g.theme.Actor.Color)
	}
	g.theme.Actor.DrawStretched(dst, g.cellRect(field, g.segments[0]))

	g.renderHUD(dst)

	if g.paused {
		g.renderOverlay(dst, "PAUSED", "Press P to resume", "")
	}
	if g.gameOver {
		dst.Dim()
		high := fmt.Sprintf("High score: %d", g.rt.HighScore)
		if g.score > g.rt.HighScore {
			high = "NEW HIGH SCORE!"
		}
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  %s", g.score, high), "Press R to restart")
	}
}

// fieldRect centers the grid on screen, stretch-fitting cells to at least
// one terminal cell each.
func (g *Game) fieldRect(dst *core.Screen) core.Rect {
	cellW := core.Max(1, (dst.Width()-2)/g.cfg.Grid.Width)
	cellH := core.Max(1, (dst.Height()-3)/g.cfg.Grid.Height)
	w := cellW * g.cfg.Grid.Width
	h := cellH * g.cfg.Grid.Height
	return core.NewRect((dst.Width()-w)/2, core.Max(1, (dst.Height()-h)/2), w, h)
}

// cellRect maps a grid cell into its on-screen block within the field.
func (g *Game) cellRect(field core.Rect, p Point) core.Rect {
	cellW := field.W / g.cfg.Grid.Width
	cellH := field.H / g.cfg.Grid.Height
	return core.NewRect(field.X+p.X*cellW, field.Y+p.Y*cellH, cellW, cellH)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, fmt.Sprintf(" Score: %d ", g.score))

	best := fmt.Sprintf(" Best: %d ", core.Max(g.rt.HighScore, g.score))
	dst.DrawText(dst.Width()-len(best)-1, 0, best)
}

func (g *Game) renderOverlay(dst *core.Screen, title, line, prompt string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(title), core.Max(len(line), len(prompt))) + 4
	boxH := 7
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, line)
	if prompt != "" {
		dst.DrawTextCentered(box.Y+5, prompt)
	}
}

// --- Test hooks ---

// Head returns the current head cell.
func (g *Game) Head() Point {
	return g.segments[0]
}

// Length returns the current segment count.
func (g *Game) Length() int {
	return len(g.segments)
}
