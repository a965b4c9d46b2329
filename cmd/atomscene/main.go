package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/san-kum/atomscene/internal/gui"
	"github.com/san-kum/atomscene/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	envFile    string
	preset     string
	themeName  string
	seed       int64
	frames     int
	dt         float64
	cursor     string
	ensemble   int
	width      int
	height     int
	frameRate  int
	follow     bool
	atomID     string
	outFile    string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	snapshot   string
)

func main() {
	log.SetPrefix("[atomscene] ")

	rootCmd := &cobra.Command{
		Use:          "atomscene",
		Short:        "floating atoms with a live clock and a day/night theme",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atomscene", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with ATOMSCENE_* overrides")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "default", "preset configuration")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "light, dark or auto")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the scene in a window",
		RunE:  runGUI,
	}
	for _, c := range []*cobra.Command{rootCmd, guiCmd} {
		c.Flags().IntVar(&width, "width", 0, "window width")
		c.Flags().IntVar(&height, "height", 0, "window height")
		c.Flags().IntVar(&frameRate, "fps", 0, "target frame rate")
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the scene in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save it",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	runCmd.Flags().Float64Var(&dt, "dt", 1.0/60, "frame time in seconds")
	runCmd.Flags().StringVar(&cursor, "cursor", "none", "scripted pointer: none or orbit")
	runCmd.Flags().StringVar(&snapshot, "snapshot", "", "write the final scene as SVG to this file")
	runCmd.Flags().IntVar(&ensemble, "ensemble", 0, "run N seeds in parallel and print aggregate metrics instead of saving")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot atom speeds of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&atomID, "atom", "", "plot only this atom")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw the atom trajectories of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	clockCmd := &cobra.Command{
		Use:   "clock",
		Short: "print the clock reading",
		RunE:  showClock,
	}
	clockCmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep printing every second")

	atomsCmd := &cobra.Command{
		Use:   "atoms",
		Short: "list the configured atoms",
		RunE:  listAtoms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Run: func(cmd *cobra.Command, args []string) {
			listPresets()
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "replay a scenario file against a headless scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one motion parameter and compare runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().IntVar(&frames, "frames", 600, "frames per run")
	sweepCmd.Flags().Float64Var(&dt, "dt", 1.0/60, "frame time in seconds")
	sweepCmd.Flags().StringVar(&cursor, "cursor", "orbit", "scripted pointer: none or orbit")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the selected preset as a config file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd,
		clockCmd, atomsCmd, presetsCmd, scriptCmd, sweepCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.Window.FPS = frameRate
	}
	clk, err := cfg.Formatter()
	if err != nil {
		return err
	}

	gui.Run(gui.Options{
		Scene:  buildScene(cfg, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		Clock:  clk,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		FPS:    cfg.Window.FPS,
	})
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Terminal.FPS = frameRate
	}
	clk, err := cfg.Formatter()
	if err != nil {
		return err
	}

	// The scene is resized to the terminal on the first WindowSizeMsg.
	sc := buildScene(cfg, float64(cfg.Window.Width), float64(cfg.Window.Height))
	return viz.Run(viz.Options{
		Scene:      sc,
		Clock:      clk,
		CellWidth:  cfg.Terminal.CellWidth,
		CellHeight: cfg.Terminal.CellHeight,
		FPS:        cfg.Terminal.FPS,
	})
}
