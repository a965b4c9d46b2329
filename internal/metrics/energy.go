package metrics

import (
	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
)

// KineticEnergy averages ½·m·|v|² over frames, with mass proportional to the
// atom's area so large atoms weigh more.
type KineticEnergy struct {
	name    string
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(list []*atoms.Atom, b bounds.Bounds, t float64) {
	k.total += Energy(list)
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// Energy is the instantaneous kinetic energy of the whole registry.
func Energy(list []*atoms.Atom) float64 {
	e := 0.0
	for _, a := range list {
		mass := a.Size * a.Size / 10000
		e += 0.5 * mass * (a.VX*a.VX + a.VY*a.VY)
	}
	return e
}
