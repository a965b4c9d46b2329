package automation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/atomscene/internal/bounds"
	"github.com/san-kum/atomscene/internal/metrics"
	"github.com/san-kum/atomscene/internal/scene"
	"github.com/san-kum/atomscene/internal/theme"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of host events replayed against a scene.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one event. Action selects which of the other fields apply:
//
//	resize:  width, height
//	move:    x, y
//	leave
//	theme:   theme
//	padding: padding
//	frames:  frames, dt
type ScenarioStep struct {
	Action  string          `yaml:"action"`
	X       float64         `yaml:"x"`
	Y       float64         `yaml:"y"`
	Width   float64         `yaml:"width"`
	Height  float64         `yaml:"height"`
	Theme   string          `yaml:"theme"`
	Padding *bounds.Padding `yaml:"padding"`
	Frames  int             `yaml:"frames"`
	Dt      float64         `yaml:"dt"`
}

type Report struct {
	Steps      int
	Frames     int
	Elapsed    float64
	Violations int
	FinalTheme theme.Mode
	Metrics    map[string]float64
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	for i, step := range scenario.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &scenario, nil
}

func (s ScenarioStep) validate() error {
	switch strings.ToLower(s.Action) {
	case "resize":
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("resize needs positive width and height")
		}
	case "move", "leave", "theme":
	case "padding":
		if s.Padding == nil {
			return fmt.Errorf("padding step without padding")
		}
	case "frames":
		if s.Frames <= 0 {
			return fmt.Errorf("frames must be positive, got %d", s.Frames)
		}
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}

// RunScenario applies every step to sc in order. Containment is checked after
// every frame and after every resize, since a resize must re-clamp at once.
func RunScenario(ctx context.Context, scenario *Scenario, sc *scene.Scene) (*Report, error) {
	contain := metrics.NewContainment()
	speed := metrics.NewMeanSpeed()
	contacts := metrics.NewWallContacts()
	report := &Report{Metrics: make(map[string]float64)}

	observe := func() {
		list := sc.Registry.All()
		contain.Observe(list, sc.Bounds(), sc.Elapsed())
		speed.Observe(list, sc.Bounds(), sc.Elapsed())
		contacts.Observe(list, sc.Bounds(), sc.Elapsed())
	}

	for i, step := range scenario.Steps {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		switch strings.ToLower(step.Action) {
		case "resize":
			sc.Resize(step.Width, step.Height)
			observe()
		case "move":
			sc.PointerMove(step.X, step.Y)
		case "leave":
			sc.PointerLeave()
		case "theme":
			sc.SetMode(theme.ParseMode(step.Theme))
		case "padding":
			sc.SetPadding(*step.Padding)
			observe()
		case "frames":
			dt := step.Dt
			if dt <= 0 {
				dt = 1.0 / 60
			}
			for f := 0; f < step.Frames; f++ {
				if f%256 == 0 {
					if err := ctx.Err(); err != nil {
						return report, err
					}
				}
				sc.Advance(dt)
				observe()
				report.Frames++
			}
		default:
			return report, fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
		report.Steps++
	}

	report.Elapsed = sc.Elapsed()
	report.Violations = contain.Violations()
	report.FinalTheme = sc.Theme.Mode()
	for _, m := range []interface {
		Name() string
		Value() float64
	}{contain, speed, contacts} {
		report.Metrics[m.Name()] = m.Value()
	}
	return report, nil
}
