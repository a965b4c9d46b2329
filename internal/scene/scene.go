// Package scene ties the atoms, the motion engine and the display state
// together behind the event handlers a host calls from its loop.
package scene

import (
	"math/rand"
	"time"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
	"github.com/san-kum/atomscene/internal/motion"
	"github.com/san-kum/atomscene/internal/theme"
)

type Options struct {
	Width, Height float64
	Padding       bounds.Padding
	Specs         []atoms.Spec
	Tuning        motion.Tuning
	Mode          theme.Mode
	Rand          *rand.Rand
}

// Scene is not safe for concurrent use. Hosts call it from a single loop.
type Scene struct {
	Registry *atoms.Registry
	Engine   *motion.Engine
	Theme    *theme.Switcher

	bounds  bounds.Bounds
	padding bounds.Padding
	cursor  motion.Cursor
	width   float64
	height  float64
	last    time.Time
	elapsed float64
	frames  int
}

func New(opts Options) *Scene {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	specs := opts.Specs
	if specs == nil {
		specs = atoms.DefaultSpecs()
	}
	pad := opts.Padding.Normalize()

	s := &Scene{
		Engine:  motion.New(opts.Tuning, rng),
		Theme:   theme.NewSwitcher(opts.Mode),
		padding: pad,
		width:   opts.Width,
		height:  opts.Height,
	}
	s.bounds = bounds.Compute(opts.Width, opts.Height, pad)
	s.Registry = atoms.NewRegistry(specs, s.bounds, rng)
	return s
}

func (s *Scene) Bounds() bounds.Bounds   { return s.bounds }
func (s *Scene) Cursor() motion.Cursor   { return s.cursor }
func (s *Scene) Padding() bounds.Padding { return s.padding }
func (s *Scene) Elapsed() float64        { return s.elapsed }
func (s *Scene) Frames() int             { return s.frames }

func (s *Scene) Viewport() (float64, float64) {
	return s.width, s.height
}

func (s *Scene) PointerMove(x, y float64) {
	s.cursor = motion.Cursor{X: x, Y: y, Tracked: true}
}

func (s *Scene) PointerLeave() {
	s.cursor = motion.Cursor{}
}

// Resize recomputes the bounds and pulls every atom back inside them right
// away, without waiting for the next frame.
func (s *Scene) Resize(w, h float64) {
	s.width, s.height = w, h
	s.bounds = bounds.Compute(w, h, s.padding)
	for _, a := range s.Registry.All() {
		motion.Reflect(a, s.bounds)
	}
}

// SetPadding swaps the padding and re-clamps as a resize would.
func (s *Scene) SetPadding(p bounds.Padding) {
	s.padding = p.Normalize()
	s.Resize(s.width, s.height)
}

func (s *Scene) SetMode(m theme.Mode) {
	s.Theme.SetMode(m)
}

// Frame advances the scene to now. The first call only records the time.
func (s *Scene) Frame(now time.Time) float64 {
	var dt float64
	if !s.last.IsZero() {
		dt = now.Sub(s.last).Seconds()
	}
	s.last = now
	return s.Advance(dt)
}

// Advance steps the scene by a synthetic dt and returns the dt the engine
// used after capping.
func (s *Scene) Advance(dt float64) float64 {
	used := s.Engine.Step(s.Registry.All(), s.bounds, s.cursor, dt)
	s.elapsed += used
	s.frames++
	return used
}

// AtomAt returns the atom under a viewport point, if any.
func (s *Scene) AtomAt(x, y float64) *atoms.Atom {
	return s.Registry.HitTest(x, y)
}
