package automation

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/atomscene/internal/config"
	"github.com/san-kum/atomscene/internal/metrics"
	"github.com/san-kum/atomscene/internal/motion"
	"github.com/san-kum/atomscene/internal/scene"
	"github.com/san-kum/atomscene/internal/sim"
	"github.com/san-kum/atomscene/internal/theme"
)

// ParameterSweep runs headless simulations across a range of one motion
// tuning value.
type ParameterSweep struct {
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Frames    int
	Dt        float64
	Seed      int64
	Path      sim.CursorPath
}

type SweepResult struct {
	ParamValue   float64
	MeanSpeed    float64
	MaxComponent float64
	WallContacts float64
	Containment  float64
}

func setParam(t *motion.Tuning, name string, v float64) error {
	switch name {
	case "drift":
		t.Drift = v
	case "max_speed":
		t.MaxSpeed = v
	case "repel_radius":
		t.RepelRadius = v
	case "repel_strength":
		t.RepelStrength = v
	case "jitter":
		t.Jitter = v
	case "max_dt":
		t.MaxDt = v
	default:
		return fmt.Errorf("unknown motion parameter %q", name)
	}
	return nil
}

// checkRange rejects values the engine would replace with its defaults, so
// every reported row ran at the value it names.
func checkRange(name string, v float64) error {
	switch name {
	case "max_dt", "max_speed", "repel_radius":
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, v)
		}
	default:
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}
	return nil
}

// RunSweep builds a fresh scene from cfg for every value, all with the same
// seed, so only the swept parameter differs between runs.
func RunSweep(ctx context.Context, sweep *ParameterSweep, cfg *config.Config) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}
	check := cfg.Motion
	if err := setParam(&check, sweep.ParamName, sweep.ParamMin); err != nil {
		return nil, err
	}
	for _, v := range []float64{sweep.ParamMin, sweep.ParamMax} {
		if err := checkRange(sweep.ParamName, v); err != nil {
			return nil, err
		}
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep
		tuning := cfg.Motion
		_ = setParam(&tuning, sweep.ParamName, paramVal)

		sc := scene.New(scene.Options{
			Width:   float64(cfg.Window.Width),
			Height:  float64(cfg.Window.Height),
			Padding: cfg.Padding,
			Specs:   cfg.Atoms,
			Tuning:  tuning,
			Mode:    theme.ParseMode(cfg.Theme),
			Rand:    rand.New(rand.NewSource(sweep.Seed)),
		})

		s := sim.New()
		speed, maxc := metrics.NewMeanSpeed(), metrics.NewMaxComponent()
		contacts, contain := metrics.NewWallContacts(), metrics.NewContainment()
		s.AddMetric(speed)
		s.AddMetric(maxc)
		s.AddMetric(contacts)
		s.AddMetric(contain)

		if _, err := s.Run(ctx, sc, sim.Config{Frames: sweep.Frames, Dt: sweep.Dt, Seed: sweep.Seed, Path: sweep.Path}); err != nil {
			return results, fmt.Errorf("sweep %s=%.4f: %w", sweep.ParamName, paramVal, err)
		}

		results = append(results, SweepResult{
			ParamValue:   paramVal,
			MeanSpeed:    speed.Value(),
			MaxComponent: maxc.Value(),
			WallContacts: contacts.Value(),
			Containment:  contain.Value(),
		})
	}

	return results, nil
}
