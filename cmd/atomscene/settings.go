package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/atomscene/internal/clock"
	"github.com/san-kum/atomscene/internal/config"
	"github.com/san-kum/atomscene/internal/scene"
	"github.com/san-kum/atomscene/internal/theme"
	"github.com/spf13/cobra"
)

// loadConfig layers preset, config file, dotenv and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("preset") {
			log.Printf("--config given, ignoring preset %s", preset)
		}
		cfg = fileCfg
	}

	env, err := config.LoadEnv(envFile, !cmd.Flags().Changed("env"))
	if err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	env.Apply(cfg)

	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sceneSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func buildScene(cfg *config.Config, w, h float64) *scene.Scene {
	return buildSceneSeeded(cfg, w, h, sceneSeed(cfg))
}

func buildSceneSeeded(cfg *config.Config, w, h float64, s int64) *scene.Scene {
	return scene.New(scene.Options{
		Width:   w,
		Height:  h,
		Padding: cfg.Padding,
		Specs:   cfg.Atoms,
		Tuning:  cfg.Motion,
		Mode:    theme.Resolve(cfg.Theme),
		Rand:    rand.New(rand.NewSource(s)),
	})
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s preset to %s\n", preset, path)
	return nil
}

func listPresets() {
	fmt.Println("available presets:")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Printf("  - %-8s %2d atoms  max speed %.0f  repel %.0f/%.0f  theme %s\n",
			name, len(cfg.Atoms), cfg.Motion.MaxSpeed, cfg.Motion.RepelRadius, cfg.Motion.RepelStrength, cfg.Theme)
	}
}

func listAtoms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tIMAGE\tLINK")
	for _, a := range cfg.Atoms {
		link := a.Link
		if link == "" {
			link = "-"
		}
		fmt.Fprintf(w, "%s\t%.0f\t%s\t%s\n", a.ID, a.Size, a.Image, link)
	}
	return w.Flush()
}

func showClock(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	clk, err := cfg.Formatter()
	if err != nil {
		return err
	}

	show := func(r clock.Reading) { fmt.Printf("%s  %s\n", r.Date, r.Time) }
	if !follow {
		show(clk.Read(time.Now()))
		return nil
	}

	ctx, cancel := signalContext()
	defer cancel()
	err = clock.Run(ctx, time.Second, clk, show)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
