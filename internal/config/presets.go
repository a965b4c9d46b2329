package config

import (
	"sort"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/motion"
)

var Presets = map[string]func() *Config{
	"default": DefaultConfig,
	"calm": func() *Config {
		cfg := DefaultConfig()
		cfg.Motion.Drift = 2
		cfg.Motion.MaxSpeed = 10
		cfg.Motion.RepelStrength = 400
		cfg.Motion.Jitter = 6
		return cfg
	},
	"lively": func() *Config {
		cfg := DefaultConfig()
		cfg.Motion.Drift = 14
		cfg.Motion.MaxSpeed = 60
		cfg.Motion.RepelRadius = 220
		cfg.Motion.RepelStrength = 1600
		return cfg
	},
	"swarm": func() *Config {
		cfg := DefaultConfig()
		cfg.Atoms = swarmSpecs(24)
		cfg.Motion = motion.DefaultTuning()
		cfg.Motion.MaxSpeed = 35
		return cfg
	},
	"night": func() *Config {
		cfg := DefaultConfig()
		cfg.Theme = "dark"
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// swarmSpecs repeats the default table with shrinking sizes.
func swarmSpecs(n int) []atoms.Spec {
	base := atoms.DefaultSpecs()
	out := make([]atoms.Spec, 0, n)
	for i := 0; i < n; i++ {
		s := base[i%len(base)]
		s.ID = s.ID + "-" + string(rune('a'+i/len(base)))
		s.Size = s.Size * (0.4 + 0.1*float64(i%3))
		out = append(out, s)
	}
	return out
}
