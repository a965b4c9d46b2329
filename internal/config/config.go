package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
	"github.com/san-kum/atomscene/internal/clock"
	"github.com/san-kum/atomscene/internal/motion"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowFPS    = 60
	DefaultCellWidth    = 10.0
	DefaultCellHeight   = 20.0
	DefaultTerminalFPS  = 30
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Timezone   string         `yaml:"timezone"`
	TzAbbrevs  []string       `yaml:"tz_abbrevs"`
	TzFallback string         `yaml:"tz_fallback"`
	Theme      string         `yaml:"theme"`
	Padding    bounds.Padding `yaml:"padding"`
	Motion     motion.Tuning  `yaml:"motion"`
	Window     WindowConfig   `yaml:"window"`
	Terminal   TerminalConfig `yaml:"terminal"`
	Atoms      []atoms.Spec   `yaml:"atoms"`
	Seed       int64          `yaml:"seed"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// TerminalConfig maps terminal cells to scene pixels.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	FPS        int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Timezone:   clock.DefaultZone,
		TzAbbrevs:  append([]string(nil), clock.DefaultAbbrevs...),
		TzFallback: clock.DefaultFallback,
		Theme:      "light",
		Padding:    bounds.DefaultPadding,
		Motion:     motion.DefaultTuning(),
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			FPS:    DefaultWindowFPS,
		},
		Terminal: TerminalConfig{
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
			FPS:        DefaultTerminalFPS,
		},
		Atoms: atoms.DefaultSpecs(),
	}
}

// Load reads a YAML file on top of DefaultConfig, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports problems the CLI should refuse to start with. Padding and
// motion values are not checked: they fall back to defaults on their own.
func (c *Config) Validate() error {
	var problems []string
	if len(c.Atoms) == 0 {
		problems = append(problems, "atom table is empty")
	}
	seen := make(map[string]bool, len(c.Atoms))
	for i, a := range c.Atoms {
		if a.ID == "" {
			problems = append(problems, fmt.Sprintf("atom %d has no id", i))
		} else if seen[a.ID] {
			problems = append(problems, fmt.Sprintf("duplicate atom id %q", a.ID))
		}
		seen[a.ID] = true
		if a.Size <= 0 {
			problems = append(problems, fmt.Sprintf("atom %q size must be positive, got %v", a.ID, a.Size))
		}
	}
	switch strings.ToLower(c.Theme) {
	case "", "light", "dark", "auto":
	default:
		problems = append(problems, fmt.Sprintf("unknown theme %q (light, dark, auto)", c.Theme))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Formatter builds the clock formatter for the configured zone.
func (c *Config) Formatter() (*clock.Formatter, error) {
	return clock.New(c.Timezone, c.TzAbbrevs, c.TzFallback)
}
