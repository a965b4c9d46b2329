package metrics

import (
	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
)

// Containment is the fraction of observed frames in which every atom lay
// inside the bounds.
type Containment struct {
	name       string
	violations int
	samples    int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(list []*atoms.Atom, b bounds.Bounds, t float64) {
	c.samples++
	for _, a := range list {
		if b.Fits(a.Size) && !b.Contains(a.X, a.Y, a.Size) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Violations() int { return c.violations }

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}

// WallContacts counts atom-frames spent touching an edge.
type WallContacts struct {
	name  string
	count int
}

func NewWallContacts() *WallContacts {
	return &WallContacts{name: "wall_contacts"}
}

func (w *WallContacts) Name() string { return w.name }

func (w *WallContacts) Observe(list []*atoms.Atom, b bounds.Bounds, t float64) {
	for _, a := range list {
		if a.X == b.MinX || a.X == b.MaxX-a.Size || a.Y == b.MinY || a.Y == b.MaxY-a.Size {
			w.count++
		}
	}
}

func (w *WallContacts) Value() float64 { return float64(w.count) }
func (w *WallContacts) Reset()         { w.count = 0 }
