package motion

import (
	"math"
	"math/rand"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
)

// Cursor is the tracked pointer position. Tracked is false while the pointer
// is outside the scene.
type Cursor struct {
	X, Y    float64
	Tracked bool
}

// Observer sees every atom after each frame.
type Observer interface {
	OnFrame(list []*atoms.Atom, b bounds.Bounds, dt float64)
}

type Engine struct {
	tuning    Tuning
	rng       *rand.Rand
	observers []Observer
}

func New(t Tuning, rng *rand.Rand) *Engine {
	return &Engine{tuning: t.withDefaults(), rng: rng}
}

func (e *Engine) Tuning() Tuning         { return e.tuning }
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }
func (e *Engine) ClampDt(dt float64) float64 {
	if dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	return math.Min(dt, e.tuning.MaxDt)
}

// Step advances every atom by dt seconds (capped at MaxDt) and returns the dt
// actually used.
func (e *Engine) Step(list []*atoms.Atom, b bounds.Bounds, c Cursor, dt float64) float64 {
	dt = e.ClampDt(dt)
	for _, a := range list {
		e.drift(a, dt)
		e.clampSpeed(a)

		a.X += a.VX * dt
		a.Y += a.VY * dt

		if c.Tracked {
			e.repel(a, c, dt)
		}
		Reflect(a, b)
	}
	for _, o := range e.observers {
		o.OnFrame(list, b, dt)
	}
	return dt
}

func (e *Engine) drift(a *atoms.Atom, dt float64) {
	a.VX += (e.rng.Float64() - 0.5) * e.tuning.Drift * dt
	a.VY += (e.rng.Float64() - 0.5) * e.tuning.Drift * dt
}

// clampSpeed bounds each component independently, so the diagonal speed may
// exceed MaxSpeed by up to √2.
func (e *Engine) clampSpeed(a *atoms.Atom) {
	a.VX = clamp(a.VX, -e.tuning.MaxSpeed, e.tuning.MaxSpeed)
	a.VY = clamp(a.VY, -e.tuning.MaxSpeed, e.tuning.MaxSpeed)
}

func (e *Engine) repel(a *atoms.Atom, c Cursor, dt float64) {
	cx, cy := a.Center()
	dx, dy := cx-c.X, cy-c.Y
	dist := math.Hypot(dx, dy)

	force := e.Impulse(dist)
	if force == 0 {
		return
	}
	nx, ny := dx/dist, dy/dist
	a.VX += nx * force * dt
	a.VY += ny * force * dt

	a.VX += (e.rng.Float64() - 0.5) * e.tuning.Jitter * dt
	a.VY += (e.rng.Float64() - 0.5) * e.tuning.Jitter * dt
}

// Impulse is the repulsion acceleration at distance dist from the cursor:
// RepelStrength·(1 − dist/RepelRadius)² inside the radius, zero elsewhere.
func (e *Engine) Impulse(dist float64) float64 {
	if dist <= MinRepelDist || dist >= e.tuning.RepelRadius {
		return 0
	}
	k := 1 - dist/e.tuning.RepelRadius
	return e.tuning.RepelStrength * k * k
}

// Reflect keeps the atom's box inside b. Each axis is handled on its own: a
// contact clamps the position to the wall and flips that velocity component.
func Reflect(a *atoms.Atom, b bounds.Bounds) {
	maxX := b.MaxX - a.Size
	maxY := b.MaxY - a.Size

	if a.X <= b.MinX {
		a.X = b.MinX
		a.VX = -a.VX
	}
	if a.X >= maxX {
		a.X = maxX
		a.VX = -a.VX
	}
	if a.Y <= b.MinY {
		a.Y = b.MinY
		a.VY = -a.VY
	}
	if a.Y >= maxY {
		a.Y = maxY
		a.VY = -a.VY
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
