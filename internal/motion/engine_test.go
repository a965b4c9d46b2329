package motion_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
	"github.com/san-kum/atomscene/internal/motion"
)

type frameCounter struct {
	frames int
	lastDt float64
}

func (f *frameCounter) OnFrame(_ []*atoms.Atom, _ bounds.Bounds, dt float64) {
	f.frames++
	f.lastDt = dt
}

var _ = Describe("Engine", func() {
	var (
		b     bounds.Bounds
		eng   *motion.Engine
		still motion.Tuning
	)

	BeforeEach(func() {
		b = bounds.Compute(1280, 720, bounds.DefaultPadding)
		eng = motion.New(motion.DefaultTuning(), rand.New(rand.NewSource(7)))

		still = motion.DefaultTuning()
		still.Drift = 0
		still.Jitter = 0
	})

	Describe("dt handling", func() {
		It("caps long frames", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 50}, X: 600, Y: 300, VX: 10}
			used := motion.New(still, rand.New(rand.NewSource(1))).Step([]*atoms.Atom{a}, b, motion.Cursor{}, 5)
			Expect(used).To(Equal(motion.MaxDt))
			Expect(a.X).To(BeNumerically("~", 600+10*motion.MaxDt, 1e-9))
		})

		It("treats negative dt as a zero step", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 50}, X: 600, Y: 300, VX: 10, VY: -4}
			Expect(eng.Step([]*atoms.Atom{a}, b, motion.Cursor{}, -1)).To(BeZero())
			Expect(a.X).To(Equal(600.0))
			Expect(a.VX).To(Equal(10.0))
		})

		It("notifies observers with the capped dt", func() {
			obs := &frameCounter{}
			eng.AddObserver(obs)
			eng.Step(nil, b, motion.Cursor{}, 1)
			eng.Step(nil, b, motion.Cursor{}, 0.01)
			Expect(obs.frames).To(Equal(2))
			Expect(obs.lastDt).To(Equal(0.01))
		})
	})

	Describe("speed clamp", func() {
		It("bounds each component after drift for any dt or seed", func() {
			for seed := int64(0); seed < 20; seed++ {
				e := motion.New(motion.DefaultTuning(), rand.New(rand.NewSource(seed)))
				for _, dt := range []float64{0.001, 0.016, 0.033, 2} {
					a := &atoms.Atom{Spec: atoms.Spec{Size: 40}, X: 600, Y: 300, VX: 1e4, VY: -1e4}
					e.Step([]*atoms.Atom{a}, b, motion.Cursor{}, dt)
					Expect(math.Abs(a.VX)).To(BeNumerically("<=", motion.MaxSpeed))
					Expect(math.Abs(a.VY)).To(BeNumerically("<=", motion.MaxSpeed))
				}
			}
		})

		It("clamps per axis rather than by magnitude", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 40}, X: 600, Y: 300, VX: 30, VY: 30}
			motion.New(still, rand.New(rand.NewSource(1))).Step([]*atoms.Atom{a}, b, motion.Cursor{}, 0.01)
			Expect(a.VX).To(Equal(motion.MaxSpeed))
			Expect(a.VY).To(Equal(motion.MaxSpeed))
			Expect(a.Speed()).To(BeNumerically(">", motion.MaxSpeed))
		})
	})

	Describe("reflection", func() {
		It("clamps to the minimum edge and flips velocity", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 50}, X: b.MinX, Y: 300, VX: -10}
			motion.New(still, rand.New(rand.NewSource(1))).Step([]*atoms.Atom{a}, b, motion.Cursor{}, 0.016)
			Expect(a.X).To(Equal(b.MinX))
			Expect(a.VX).To(Equal(10.0))
		})

		It("clamps to the maximum edge minus the atom size", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 50}, X: 600, Y: b.MaxY - 50, VY: 12}
			motion.New(still, rand.New(rand.NewSource(1))).Step([]*atoms.Atom{a}, b, motion.Cursor{}, 0.016)
			Expect(a.Y).To(Equal(b.MaxY - 50))
			Expect(a.VY).To(Equal(-12.0))
		})

		It("reflects both axes at a corner in the same frame", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 50}, X: b.MinX - 3, Y: b.MinY - 3, VX: -5, VY: -6}
			motion.Reflect(a, b)
			Expect(a.X).To(Equal(b.MinX))
			Expect(a.Y).To(Equal(b.MinY))
			Expect(a.VX).To(Equal(5.0))
			Expect(a.VY).To(Equal(6.0))
		})

		It("keeps speed unchanged", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 50}, X: b.MaxX, Y: 300, VX: 8, VY: 3}
			before := a.Speed()
			motion.Reflect(a, b)
			Expect(a.Speed()).To(Equal(before))
		})
	})

	Describe("cursor repulsion", func() {
		It("weakens monotonically with distance and vanishes at the radius", func() {
			prev := math.Inf(1)
			for d := 1.0; d < motion.RepelRadius; d += 7 {
				f := eng.Impulse(d)
				Expect(f).To(BeNumerically("<", prev))
				Expect(f).To(BeNumerically(">", 0))
				prev = f
			}
			Expect(eng.Impulse(motion.RepelRadius)).To(BeZero())
			Expect(eng.Impulse(motion.RepelRadius + 40)).To(BeZero())
			Expect(eng.Impulse(0)).To(BeZero())
		})

		It("follows the quadratic falloff", func() {
			Expect(eng.Impulse(80)).To(BeNumerically("~", 900*0.25, 1e-9))
			Expect(eng.Impulse(40)).To(BeNumerically("~", 900*0.5625, 1e-9))
		})

		It("pushes the atom away from the cursor", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 40}, X: 600, Y: 300}
			cx, cy := a.Center()
			cursor := motion.Cursor{X: cx - 30, Y: cy, Tracked: true}

			motion.New(still, rand.New(rand.NewSource(1))).Step([]*atoms.Atom{a}, b, cursor, 0.02)
			Expect(a.VX).To(BeNumerically(">", 0))
			Expect(a.VY).To(BeNumerically("~", 0, 1e-12))

			k := 1 - 30/motion.RepelRadius
			Expect(a.VX).To(BeNumerically("~", motion.RepelStrength*k*k*0.02, 1e-9))
		})

		It("does nothing while the cursor is untracked", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 40}, X: 600, Y: 300}
			cx, cy := a.Center()
			cursor := motion.Cursor{X: cx - 10, Y: cy}

			motion.New(still, rand.New(rand.NewSource(1))).Step([]*atoms.Atom{a}, b, cursor, 0.02)
			Expect(a.VX).To(BeZero())
			Expect(a.VY).To(BeZero())
		})

		It("lets the repulsion impulse exceed the drift clamp", func() {
			a := &atoms.Atom{Spec: atoms.Spec{Size: 40}, X: 600, Y: 300, VX: motion.MaxSpeed}
			cx, cy := a.Center()
			cursor := motion.Cursor{X: cx - 1, Y: cy, Tracked: true}

			motion.New(still, rand.New(rand.NewSource(1))).Step([]*atoms.Atom{a}, b, cursor, 0.03)
			Expect(a.VX).To(BeNumerically(">", motion.MaxSpeed))
		})
	})

	Describe("determinism", func() {
		It("reproduces a trajectory from the same seed", func() {
			run := func() []float64 {
				rng := rand.New(rand.NewSource(99))
				reg := atoms.NewRegistry(atoms.DefaultSpecs(), b, rng)
				e := motion.New(motion.DefaultTuning(), rng)
				for i := 0; i < 500; i++ {
					e.Step(reg.All(), b, motion.Cursor{X: 640, Y: 360, Tracked: i%2 == 0}, 1.0/60)
				}
				return reg.Snapshot()
			}
			Expect(run()).To(Equal(run()))
		})
	})

	Describe("containment", func() {
		It("keeps every atom inside the bounds on every frame", func() {
			rng := rand.New(rand.NewSource(3))
			reg := atoms.NewRegistry(atoms.DefaultSpecs(), b, rng)
			e := motion.New(motion.DefaultTuning(), rng)

			for i := 0; i < 5000; i++ {
				c := motion.Cursor{X: rng.Float64() * 1280, Y: rng.Float64() * 720, Tracked: i%3 != 0}
				e.Step(reg.All(), b, c, rng.Float64()*0.05)
				for _, a := range reg.All() {
					Expect(b.Contains(a.X, a.Y, a.Size)).To(BeTrue(), "frame %d atom %s at (%.2f, %.2f)", i, a.ID, a.X, a.Y)
				}
			}
		})
	})
})
