package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timezone != "America/New_York" {
		t.Errorf("expected New York zone, got %s", cfg.Timezone)
	}
	if cfg.Padding != bounds.DefaultPadding {
		t.Errorf("unexpected padding %+v", cfg.Padding)
	}
	if len(cfg.Atoms) != 7 {
		t.Errorf("expected 7 atoms, got %d", len(cfg.Atoms))
	}
	if cfg.Motion.MaxDt != 0.033 {
		t.Errorf("expected max dt 0.033, got %v", cfg.Motion.MaxDt)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "theme: dark\npadding:\n  top: 40\nmotion:\n  max_speed: 30\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.Padding.Top != 40 || cfg.Padding.Left != 150 {
		t.Errorf("padding = %+v", cfg.Padding)
	}
	if cfg.Motion.MaxSpeed != 30 || cfg.Motion.RepelRadius != 160 {
		t.Errorf("motion = %+v", cfg.Motion)
	}
	if len(cfg.Atoms) != 7 {
		t.Errorf("atoms should keep defaults, got %d", len(cfg.Atoms))
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Atoms = []atoms.Spec{{ID: "solo", Image: "solo.png", Link: "https://example.com", Size: 64}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Seed != 42 || len(got.Atoms) != 1 || got.Atoms[0] != cfg.Atoms[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("padding: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty atoms", func(c *Config) { c.Atoms = nil }},
		{"zero size", func(c *Config) { c.Atoms[0].Size = 0 }},
		{"missing id", func(c *Config) { c.Atoms[1].ID = "" }},
		{"duplicate id", func(c *Config) { c.Atoms[1].ID = c.Atoms[0].ID }},
		{"unknown theme", func(c *Config) { c.Theme = "sepia" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestEnvApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "ATOMSCENE_PAD_TOP=40px\nATOMSCENE_PAD_LEFT=oops\nATOMSCENE_TZ=Europe/Paris\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ATOMSCENE_PAD_RIGHT", "75")

	env, err := LoadEnv(path, false)
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Padding.Bottom = 33
	env.Apply(cfg)

	want := bounds.Padding{Top: 40, Bottom: 33, Left: 150, Right: 75}
	if cfg.Padding != want {
		t.Errorf("padding = %+v, want %+v", cfg.Padding, want)
	}
	if cfg.Timezone != "Europe/Paris" || cfg.TzAbbrevs != nil {
		t.Errorf("timezone override not applied: %s %v", cfg.Timezone, cfg.TzAbbrevs)
	}
	if _, err := cfg.Formatter(); err != nil {
		t.Errorf("formatter for overridden zone: %v", err)
	}
}

func TestLoadEnvOptional(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")
	if _, err := LoadEnv(missing, true); err != nil {
		t.Errorf("optional missing env file: %v", err)
	}
	if _, err := LoadEnv(missing, false); err == nil {
		t.Error("required missing env file should fail")
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 || names[0] != "calm" {
		t.Errorf("ListPresets() = %v", names)
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s is nil", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}

	a := GetPreset("calm")
	a.Motion.Drift = 99
	if GetPreset("calm").Motion.Drift == 99 {
		t.Error("presets share state between calls")
	}
}
