// Package dodge implements the obstacle dodger: a gravity-bound actor that
// jumps through gaps in scrolling barriers. The simulation is continuous,
// driven by clamped real frame time on a fixed 320x480 virtual canvas.
package dodge

import (
	"fmt"
	"math/rand"

	"github.com/akarpov/topic-arcade/internal/config"
	"github.com/akarpov/topic-arcade/internal/core"
	"github.com/akarpov/topic-arcade/internal/registry"
)

// Game implements the dodge game logic.
type Game struct {
	cfg   config.DodgeConfig
	rt    core.RuntimeConfig
	theme *core.Theme
	rng   *rand.Rand

	actorY   float64
	actorVel float64
	field    *Field
	scrollX  float64 // Background scroll position in virtual units

	score    int
	gameOver bool
	paused   bool
}

// Package-level tuning applied at creation, set by the CLI before play.
var gameConfig = config.DefaultDodgeConfig()

// SetConfig installs the tuning used by new game instances.
func SetConfig(cfg config.DodgeConfig) {
	gameConfig = cfg
}

// New creates a new dodge game instance.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sky Dodge"
}

// Clock declares the continuous frame clock: updates carry real elapsed
// time, clamped by the platform to core.MaxFrameDelta.
func (g *Game) Clock() core.ClockSpec {
	return core.ClockSpec{Mode: core.ClockFrame}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.theme = cfg.Theme
	if g.theme == nil {
		g.theme = core.DefaultTheme()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.actorY = (g.cfg.Canvas.Height - g.cfg.Actor.Height) / 2
	g.actorVel = 0
	g.scrollX = 0
	g.score = 0
	g.gameOver = false
	g.paused = false

	if g.field == nil {
		g.field = NewField(g.cfg.Obstacles, g.cfg.Canvas.Width, g.cfg.Canvas.Height, cfg.Seed)
	} else {
		g.field.Reset(cfg.Seed)
	}
}

// Step advances the simulation by dt seconds. Any input restarts the run
// once it has ended; while running, any gameplay input is a jump.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Any() {
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

	dt = core.ClampF(dt, 0, core.MaxFrameDelta)

	// Jump overrides integration for this update
	if jumpRequested(in) {
		g.actorVel = g.cfg.Physics.JumpImpulse
	} else {
		g.actorVel += g.cfg.Physics.Gravity * dt
		if g.actorVel > g.cfg.Physics.MaxFallSpeed {
			g.actorVel = g.cfg.Physics.MaxFallSpeed
		}
	}
	g.actorY += g.actorVel * dt

	g.scrollX += g.cfg.Obstacles.BaseSpeed * 0.5 * dt

	g.score += g.field.Advance(dt, g.cfg.Actor.X)

	// Leaving the vertical bounds ends the run on this same update
	if g.actorY < 0 || g.actorY > g.cfg.Canvas.Height-g.cfg.Actor.Height {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	if g.field.CollidesWith(g.actorBox()) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// jumpRequested reports whether any gameplay input arrived. Every supported
// channel (tap, swipe, key) triggers the single jump action while running.
func jumpRequested(in core.InputFrame) bool {
	return in.Has(core.ActionJump) ||
		in.Has(core.ActionUp) ||
		in.Has(core.ActionDown) ||
		in.Has(core.ActionLeft) ||
		in.Has(core.ActionRight) ||
		in.Has(core.ActionConfirm) ||
		in.Has(core.ActionRestart)
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

// actorBox returns the actor's bounding box in virtual coordinates.
func (g *Game) actorBox() core.RectF {
	return core.RectF{
		X: g.cfg.Actor.X,
		Y: g.actorY,
		W: g.cfg.Actor.Width,
		H: g.cfg.Actor.Height,
	}
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

// Render draws the current state: scrolling background, obstacles, actor,
// HUD, and the game-over overlay on top of the frozen final frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sw, sh := dst.Width(), dst.Height()
	if sw == 0 || sh == 0 {
		return
	}

	// Background loops horizontally; the offset scales with the projected
	// (aspect-ratio corrected) width so scroll speed tracks the canvas.
	offset := int(g.scrollX * float64(sw) / g.cfg.Canvas.Width)
	g.theme.Background.DrawScrolled(dst, core.NewRect(0, 0, sw, sh), offset)

	for _, o := range g.field.Obstacles() {
		g.drawObstacle(dst, o)
	}

	g.theme.Actor.DrawStretched(dst, g.project(g.actorBox(), dst))

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
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  %s", g.score, high), "Press any key to restart")
	}
}

// project maps a virtual-canvas box onto screen cells.
func (g *Game) project(r core.RectF, dst *core.Screen) core.Rect {
	sw := float64(dst.Width())
	sh := float64(dst.Height())
	x := int(r.X * sw / g.cfg.Canvas.Width)
	y := int(r.Y * sh / g.cfg.Canvas.Height)
	right := int(r.Right() * sw / g.cfg.Canvas.Width)
	bottom := int(r.Bottom() * sh / g.cfg.Canvas.Height)
	return core.NewRect(x, y, core.Max(1, right-x), core.Max(1, bottom-y))
}

func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	top := g.project(o.TopRegion(), dst)
	if o.GapY > 0 {
		g.theme.Item.DrawStretched(dst, top)
	}
	bottom := g.project(o.BottomRegion(g.cfg.Canvas.Height), dst)
	if bottom.H > 0 {
		g.theme.Item.DrawStretched(dst, bottom)
	}
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
