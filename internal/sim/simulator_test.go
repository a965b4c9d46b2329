package sim

import (
	"context"
	"math/rand"
	"testing"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
	"github.com/san-kum/atomscene/internal/metrics"
	"github.com/san-kum/atomscene/internal/motion"
	"github.com/san-kum/atomscene/internal/scene"
)

func testScene(seed int64) *scene.Scene {
	return scene.New(scene.Options{
		Width:   1280,
		Height:  720,
		Padding: bounds.DefaultPadding,
		Tuning:  motion.DefaultTuning(),
		Rand:    rand.New(rand.NewSource(seed)),
	})
}

func TestSimulatorRun(t *testing.T) {
	s := New()
	cfg := Config{Frames: 10, Dt: 0.016, ValidateState: true}

	result, err := s.Run(context.Background(), testScene(1), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if len(result.IDs) != 7 || len(result.States[0]) != 28 {
		t.Errorf("unexpected layout: %d ids, %d columns", len(result.IDs), len(result.States[0]))
	}
	if last := result.Times[len(result.Times)-1]; last < 0.159 || last > 0.161 {
		t.Errorf("expected final time ~0.16, got %f", last)
	}
}

func TestSimulatorCapsDt(t *testing.T) {
	result, err := New().Run(context.Background(), testScene(1), Config{Frames: 3, Dt: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Times[3]; got < 3*motion.MaxDt-1e-9 || got > 3*motion.MaxDt+1e-9 {
		t.Errorf("expected capped time %f, got %f", 3*motion.MaxDt, got)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Frames: 10}},
		{"negative dt", Config{Dt: -0.1, Frames: 10}},
		{"zero frames", Config{Dt: 0.1, Frames: 0}},
		{"negative frames", Config{Dt: 0.1, Frames: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Run(context.Background(), testScene(1), tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New().Run(ctx, testScene(1), Config{Frames: 100, Dt: 0.01})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.StepsTaken != 0 {
		t.Errorf("expected partial result with no steps, got %+v", result)
	}
}

type countingObserver struct{ steps int }

func (c *countingObserver) OnStep([]*atoms.Atom, bounds.Bounds, float64) { c.steps++ }

func TestSimulatorMetricsAndPath(t *testing.T) {
	s := New()
	contain := metrics.NewContainment()
	maxc := metrics.NewMaxComponent()
	obs := &countingObserver{}
	s.AddMetric(contain)
	s.AddMetric(maxc)
	s.AddMetric(metrics.NewMeanSpeed())
	s.AddObserver(obs)

	cfg := Config{Frames: 2000, Dt: 1.0 / 60, Path: OrbitPath(640, 360, 200, 4)}
	result, err := s.Run(context.Background(), testScene(9), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Metrics["containment"] != 1 {
		t.Errorf("atoms escaped the bounds: containment=%v", result.Metrics["containment"])
	}
	if _, ok := result.Metrics["mean_speed"]; !ok {
		t.Error("mean_speed metric missing")
	}
	if obs.steps != 2000 {
		t.Errorf("expected 2000 observer calls, got %d", obs.steps)
	}
}

func TestOrbitPath(t *testing.T) {
	p := OrbitPath(100, 100, 10, 4)
	if x, y, ok := p(0); !ok || x != 110 || y != 100 {
		t.Errorf("p(0) = (%v, %v, %v)", x, y, ok)
	}
	if _, _, ok := p(3.5); ok {
		t.Error("pointer should be outside during the last quarter")
	}
}

func TestEnsemble(t *testing.T) {
	build := func(seed int64) *scene.Scene { return testScene(seed) }
	mk := func() []Metric { return []Metric{metrics.NewMeanSpeed()} }

	results, err := NewEnsemble(build, mk, 4, 10).Run(context.Background(), Config{Frames: 50, Dt: 0.02})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if equalRows(results[0].States[0], results[1].States[0]) {
		t.Error("different seeds produced identical initial states")
	}
}

func TestFrameError(t *testing.T) {
	err := FrameError{Time: 1.5, Frame: 150, Message: "test error"}
	expected := "frame 150 (t=1.5000): test error"
	if err.Error() != expected {
		t.Errorf("FrameError.Error() = %q, want %q", err.Error(), expected)
	}
}

func equalRows(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
