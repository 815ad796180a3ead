package dodge

import (
	"math/rand"

	"github.com/akarpov/topic-arcade/internal/config"
	"github.com/akarpov/topic-arcade/internal/core"
)

// Obstacle is a vertical barrier with a passable gap. It moves left at its
// own speed, captured at spawn time, and is destroyed once fully off-screen.
type Obstacle struct {
	X         float64
	GapY      float64 // Top of the gap
	GapHeight float64
	Width     float64
	Speed     float64
	Scored    bool
}

// TopRegion returns the forbidden region above the gap.
func (o Obstacle) TopRegion() core.RectF {
	return core.RectF{X: o.X, Y: 0, W: o.Width, H: o.GapY}
}

// BottomRegion returns the forbidden region below the gap.
func (o Obstacle) BottomRegion(canvasH float64) core.RectF {
	bottom := o.GapY + o.GapHeight
	return core.RectF{X: o.X, Y: bottom, W: o.Width, H: canvasH - bottom}
}

// Field owns obstacle spawning, movement, removal and the difficulty ramp.
type Field struct {
	cfg     config.DodgeObstacles
	canvasW float64
	canvasH float64
	rng     *rand.Rand

	obstacles  []Obstacle
	spawnTimer float64
	speed      float64 // Speed of the next spawn
	gap        float64 // Gap height of the next spawn
}

// NewField creates an obstacle field for the given canvas.
func NewField(cfg config.DodgeObstacles, canvasW, canvasH float64, seed int64) *Field {
	f := &Field{
		cfg:     cfg,
		canvasW: canvasW,
		canvasH: canvasH,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and restores the ramp to its base values.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.speed = f.cfg.BaseSpeed
	f.gap = f.cfg.InitialGap
	f.spawnTimer = f.nextInterval()
}

// nextInterval returns the countdown to the next spawn: the base interval
// jittered by U(0.8, 1.2).
func (f *Field) nextInterval() float64 {
	return f.cfg.BaseInterval * (0.8 + 0.4*f.rng.Float64())
}

// Advance moves every obstacle, runs the spawn countdown, flips score flags
// and drops off-screen obstacles. Returns the number of obstacles whose
// trailing edge cleared the actor this update; each flips Scored exactly
// once.
func (f *Field) Advance(dt, actorX float64) int {
	f.spawnTimer -= dt
	if f.spawnTimer <= 0 {
		f.spawn()
		f.spawnTimer = f.nextInterval()
	}

	passed := 0
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= o.Speed * dt

		if !o.Scored && o.X+o.Width < actorX {
			o.Scored = true
			passed++
		}

		// Destroyed only once fully off-screen
		if o.X >= -o.Width {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept

	return passed
}

// spawn creates one obstacle at the right edge, then ramps the difficulty
// for the next spawn: speed up, gap down, floored at the traversable minimum.
func (f *Field) spawn() {
	gap := f.gap

	minY := gap * 0.5
	maxY := f.canvasH - gap*1.5
	if maxY < minY {
		maxY = minY
	}
	gapY := minY + f.rng.Float64()*(maxY-minY)

	f.obstacles = append(f.obstacles, Obstacle{
		X:         f.canvasW,
		GapY:      gapY,
		GapHeight: gap,
		Width:     f.cfg.Width,
		Speed:     f.speed,
	})

	f.speed += f.cfg.SpeedIncrement
	f.gap -= f.cfg.GapDecrement
	if f.gap < f.cfg.MinGap {
		f.gap = f.cfg.MinGap
	}
}

// CollidesWith reports whether the actor's box enters any forbidden region:
// horizontal spans overlap and the actor's vertical span leaves the gap.
func (f *Field) CollidesWith(actor core.RectF) bool {
	for _, o := range f.obstacles {
		if actor.X >= o.X+o.Width || o.X >= actor.Right() {
			continue
		}
		if actor.Y < o.GapY || actor.Bottom() > o.GapY+o.GapHeight {
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacles for rendering.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}
