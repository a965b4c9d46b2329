package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/atomscene/internal/automation"
	"github.com/spf13/cobra"
)

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	sc := buildScene(cfg, float64(cfg.Window.Width), float64(cfg.Window.Height))
	name := scenario.Name
	if name == "" {
		name = args[0]
	}
	fmt.Printf("scenario: %s\n", name)
	if scenario.Description != "" {
		fmt.Printf("  %s\n", scenario.Description)
	}

	report, err := automation.RunScenario(ctx, scenario, sc)
	if err != nil {
		return err
	}

	fmt.Printf("steps: %d\n", report.Steps)
	fmt.Printf("frames: %d (%.2fs)\n", report.Frames, report.Elapsed)
	fmt.Printf("theme: %s\n", report.FinalTheme)
	fmt.Printf("containment violations: %d\n", report.Violations)
	printMetrics(report.Metrics)
	if report.Violations > 0 {
		return fmt.Errorf("%d atoms left the bounds", report.Violations)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := cursorPath(cursor, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	sweep := &automation.ParameterSweep{
		ParamName: args[0],
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Frames:    frames,
		Dt:        dt,
		Seed:      sceneSeed(cfg),
		Path:      path,
	}
	fmt.Printf("sweeping %s from %.3f to %.3f (%d steps)...\n", sweep.ParamName, sweepMin, sweepMax, sweepSteps)
	results, err := automation.RunSweep(ctx, sweep, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMEAN SPEED\tMAX COMPONENT\tWALL CONTACTS\tCONTAINMENT\n", sweep.ParamName)
	for _, r := range results {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\t%.0f\t%.3f\n", r.ParamValue, r.MeanSpeed, r.MaxComponent, r.WallContacts, r.Containment)
	}
	return w.Flush()
}
