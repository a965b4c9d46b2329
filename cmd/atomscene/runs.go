package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomscene/internal/config"
	"github.com/san-kum/atomscene/internal/export"
	"github.com/san-kum/atomscene/internal/metrics"
	"github.com/san-kum/atomscene/internal/scene"
	"github.com/san-kum/atomscene/internal/sim"
	"github.com/san-kum/atomscene/internal/storage"
	"github.com/san-kum/atomscene/internal/theme"
	"github.com/spf13/cobra"
)

func defaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewKineticEnergy(),
		metrics.NewMeanSpeed(),
		metrics.NewMaxComponent(),
		metrics.NewContainment(),
		metrics.NewWallContacts(),
	}
}

// cursorPath returns the scripted pointer for headless runs.
func cursorPath(name string, cfg *config.Config) (sim.CursorPath, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "orbit":
		w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
		return sim.OrbitPath(w/2, h/2, math.Min(w, h)/3, 8), nil
	default:
		return nil, fmt.Errorf("unknown cursor path %q (none, orbit)", name)
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := cursorPath(cursor, cfg)
	if err != nil {
		return err
	}
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	runSeed := sceneSeed(cfg)
	simCfg := sim.Config{Frames: frames, Dt: dt, Seed: runSeed, Path: path, ValidateState: true}

	ctx, cancel := signalContext()
	defer cancel()

	if ensemble > 0 {
		return runEnsemble(ctx, cfg, simCfg, w, h)
	}

	s := sim.New()
	for _, m := range defaultMetrics() {
		s.AddMetric(m)
	}

	fmt.Printf("running %s preset for %d frames...\n", preset, frames)
	start := time.Now()
	sc := buildSceneSeeded(cfg, w, h, runSeed)
	sizes := make([]float64, 0, sc.Registry.Len())
	for _, a := range sc.Registry.All() {
		sizes = append(sizes, a.Size)
	}
	result, err := s.Run(ctx, sc, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Preset: preset,
		Seed:   runSeed,
		Dt:     dt,
		Frames: frames,
		Width:  w,
		Height: h,
		Cursor: cursor,
		Sizes:  sizes,
	}, result)
	if err != nil {
		return err
	}

	if snapshot != "" {
		w, h := sc.Viewport()
		svg := export.SceneSVG(sc.Registry.All(), w, h, sc.Theme.Palette())
		if err := os.WriteFile(snapshot, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("snapshot: %s\n", snapshot)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	printMetrics(result.Metrics)
	return nil
}

func runEnsemble(ctx context.Context, cfg *config.Config, simCfg sim.Config, w, h float64) error {
	build := func(s int64) *scene.Scene { return buildSceneSeeded(cfg, w, h, s) }
	ens := sim.NewEnsemble(build, defaultMetrics, ensemble, simCfg.Seed)

	fmt.Printf("running %d seeds from %d...\n", ensemble, simCfg.Seed)
	results, err := ens.Run(ctx, simCfg)
	if err != nil {
		return err
	}

	sums := make(map[string][]float64)
	for _, r := range results {
		for name, v := range r.Metrics {
			sums[name] = append(sums[name], v)
		}
	}
	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	w2 := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w2, "METRIC\tMEAN\tMIN\tMAX")
	for _, name := range names {
		vals := sums[name]
		lo, hi, total := math.Inf(1), math.Inf(-1), 0.0
		for _, v := range vals {
			lo, hi, total = math.Min(lo, v), math.Max(hi, v), total+v
		}
		fmt.Fprintf(w2, "%s\t%.4f\t%.4f\t%.4f\n", name, total/float64(len(vals)), lo, hi)
	}
	return w2.Flush()
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tDT\tATOMS\tCURSOR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%d\t%s\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Dt,
			len(run.Atoms),
			run.Cursor,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(states))

	plotted := 0
	for i, id := range meta.Atoms {
		if atomID != "" && id != atomID {
			continue
		}
		speeds := storage.Speeds(states, i)
		if len(speeds) < 2 {
			continue
		}
		graph := asciigraph.Plot(speeds,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(id+" speed (px/s)"))
		fmt.Println(graph)
		fmt.Println()
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("no atom %q in run %s", atomID, runID)
	}
	return nil
}

// output returns the --out file or stdout. The closer is a no-op for stdout.
func output() (io.Writer, func() error, error) {
	if outFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(w, meta, states, times); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := storage.WriteCSV(cw, meta.Atoms, times, states); err != nil {
		closeOut()
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	palette := theme.PaletteFor(theme.Resolve(themeName))
	svg := export.TrajectorySVG(export.RunPaths(meta, states), meta.Width, meta.Height, palette)

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, svg+"\n"); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
