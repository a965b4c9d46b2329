// Package atoms holds the decorative items of the scene: their fixed
// description and their per-frame kinematic state.
package atoms

import (
	"math"
	"math/rand"

	"github.com/san-kum/atomscene/internal/bounds"
)

// InitialSpeed bounds each initial velocity component, in px/s.
const InitialSpeed = 18.0

// Spec describes one atom. It never changes after startup.
type Spec struct {
	ID    string  `yaml:"id" json:"id"`
	Image string  `yaml:"image" json:"image"`
	Link  string  `yaml:"link" json:"link"`
	Size  float64 `yaml:"size" json:"size"`
}

// Atom is a Spec plus its position (top-left corner) and velocity.
type Atom struct {
	Spec
	X, Y   float64
	VX, VY float64
}

func (a *Atom) Center() (float64, float64) {
	return a.X + a.Size/2, a.Y + a.Size/2
}

func (a *Atom) Speed() float64 {
	return math.Hypot(a.VX, a.VY)
}

// Contains reports whether the point lies in the atom's bounding box.
func (a *Atom) Contains(px, py float64) bool {
	return px >= a.X && px <= a.X+a.Size && py >= a.Y && py <= a.Y+a.Size
}

func DefaultSpecs() []Spec {
	return []Spec{
		{ID: "red", Image: "assets/red.png", Link: "https://example.com/red", Size: 55},
		{ID: "heytea", Image: "assets/heytea.png", Link: "https://www.instagram.com/p/DNwqxGV5ML4/?utm_source=ig_web_copy_link&igsh=NTc4MTIwNjQ2YQ==", Size: 95},
		{ID: "fivestars", Image: "assets/fivestars.png", Link: "https://example.com/fivestars", Size: 120},
		{ID: "green", Image: "assets/green.png", Link: "https://daynason.com/", Size: 130},
		{ID: "purple", Image: "assets/purple.png", Link: "https://example.com/purple", Size: 100},
		{ID: "blue", Image: "assets/blue.png", Link: "https://disney.fandom.com/wiki/Stitch", Size: 90},
		{ID: "pink", Image: "assets/pink.png", Link: "https://open.spotify.com/user/31vcphj4lct3i77xigq6u4qudp5m?si=4f634b17f8f64626", Size: 150},
	}
}

type Registry struct {
	atoms []*Atom
}

// NewRegistry places one atom per spec at a random spot inside b with a
// random gentle velocity.
func NewRegistry(specs []Spec, b bounds.Bounds, rng *rand.Rand) *Registry {
	r := &Registry{atoms: make([]*Atom, 0, len(specs))}
	for _, s := range specs {
		r.atoms = append(r.atoms, &Atom{
			Spec: s,
			X:    uniform(rng, b.MinX, b.MaxX-s.Size),
			Y:    uniform(rng, b.MinY, b.MaxY-s.Size),
			VX:   uniform(rng, -InitialSpeed, InitialSpeed),
			VY:   uniform(rng, -InitialSpeed, InitialSpeed),
		})
	}
	return r
}

func (r *Registry) All() []*Atom { return r.atoms }
func (r *Registry) Len() int     { return len(r.atoms) }

func (r *Registry) Find(id string) *Atom {
	for _, a := range r.atoms {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// HitTest returns the topmost atom under the point. Later atoms are drawn on
// top, so the search runs back to front.
func (r *Registry) HitTest(px, py float64) *Atom {
	for i := len(r.atoms) - 1; i >= 0; i-- {
		if r.atoms[i].Contains(px, py) {
			return r.atoms[i]
		}
	}
	return nil
}

// Snapshot flattens the registry into x, y, vx, vy per atom.
func (r *Registry) Snapshot() []float64 {
	out := make([]float64, 0, len(r.atoms)*4)
	for _, a := range r.atoms {
		out = append(out, a.X, a.Y, a.VX, a.VY)
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
