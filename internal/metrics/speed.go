package metrics

import (
	"math"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
)

type MeanSpeed struct {
	name    string
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(list []*atoms.Atom, b bounds.Bounds, t float64) {
	for _, a := range list {
		m.total += a.Speed()
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}

// MaxComponent tracks the largest |vx| or |vy| seen.
type MaxComponent struct {
	name string
	max  float64
}

func NewMaxComponent() *MaxComponent {
	return &MaxComponent{name: "max_component"}
}

func (m *MaxComponent) Name() string { return m.name }

func (m *MaxComponent) Observe(list []*atoms.Atom, b bounds.Bounds, t float64) {
	for _, a := range list {
		m.max = math.Max(m.max, math.Max(math.Abs(a.VX), math.Abs(a.VY)))
	}
}

func (m *MaxComponent) Value() float64 { return m.max }
func (m *MaxComponent) Reset()         { m.max = 0 }
