package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/atomscene/internal/scene"
)

type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances sc by cfg.Frames synthetic frames and records every state,
// including the initial one.
func (s *Simulator) Run(ctx context.Context, sc *scene.Scene, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	list := sc.Registry.All()
	result := &Result{
		IDs:     make([]string, 0, len(list)),
		Times:   make([]float64, 0, cfg.Frames+1),
		States:  make([][]float64, 0, cfg.Frames+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}
	for _, a := range list {
		result.IDs = append(result.IDs, a.ID)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	result.Times = append(result.Times, t)
	result.States = append(result.States, sc.Registry.Snapshot())

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if cfg.Path != nil {
			if x, y, ok := cfg.Path(t); ok {
				sc.PointerMove(x, y)
			} else {
				sc.PointerLeave()
			}
		}

		t += sc.Advance(cfg.Dt)
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(list, sc.Bounds(), t)
		}
		for _, obs := range s.observers {
			obs.OnStep(list, sc.Bounds(), t)
		}

		row := sc.Registry.Snapshot()
		if cfg.ValidateState && !validState(row) {
			result.Errors = append(result.Errors, FrameError{Time: t, Frame: i, Message: "invalid state (NaN/Inf)"})
			break
		}
		result.Times = append(result.Times, t)
		result.States = append(result.States, row)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	return nil
}
