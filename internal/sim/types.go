package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
)

type Metric interface {
	Name() string
	Observe(list []*atoms.Atom, b bounds.Bounds, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(list []*atoms.Atom, b bounds.Bounds, t float64)
}

// CursorPath scripts the pointer for a headless run. ok=false means the
// pointer is outside the scene at time t.
type CursorPath func(t float64) (x, y float64, ok bool)

type Config struct {
	Frames        int
	Dt            float64
	Seed          int64
	Path          CursorPath
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Frames:        600,
		Dt:            1.0 / 60,
		ValidateState: true,
	}
}

// Result holds one row per recorded frame: x, y, vx, vy for each atom in
// registry order.
type Result struct {
	IDs        []string
	Times      []float64
	States     [][]float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

type FrameError struct {
	Time    float64
	Frame   int
	Message string
}

func (e FrameError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %s", e.Frame, e.Time, e.Message)
}

func validState(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// OrbitPath circles the pointer around (cx, cy) and leaves the scene for the
// last quarter of every revolution.
func OrbitPath(cx, cy, radius, period float64) CursorPath {
	return func(t float64) (float64, float64, bool) {
		phase := math.Mod(t, period) / period
		if phase > 0.75 {
			return 0, 0, false
		}
		angle := 2 * math.Pi * phase
		return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle), true
	}
}
