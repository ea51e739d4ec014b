package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/orbitviz/internal/config"
	"github.com/san-kum/orbitviz/internal/export"
	"github.com/san-kum/orbitviz/internal/gui"
	"github.com/san-kum/orbitviz/internal/storage"
	"github.com/san-kum/orbitviz/internal/viz"
)

var (
	configFile string
	preset     string
	scale      float64
	interval   float64
	stepDays   float64
	trailCap   int
	trailEvery int
	frameRate  int

	days    float64
	outFile string
	outDir  string
	svgSize [2]int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitviz",
		Short: "real-time orbital visualization",
		RunE:  runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	addTuningFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run terminal visualization",
		RunE:  runTUI,
	}
	addTuningFlags(runCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run windowed visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	addTuningFlags(guiCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "simulate headless and export an SVG of the orbits",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			h := runHeadless(cfg, days)
			if err := export.WriteFile(outFile, h.paths(), svgSize[0], svgSize[1]); err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Printf("wrote %s (%.0f simulated days)\n", outFile, days)
			return nil
		},
	}
	addTuningFlags(snapshotCmd)
	snapshotCmd.Flags().Float64Var(&days, "days", 365, "simulated days")
	snapshotCmd.Flags().StringVar(&outFile, "out", "orbits.svg", "output file")
	snapshotCmd.Flags().IntVar(&svgSize[0], "width", 1024, "image width")
	snapshotCmd.Flags().IntVar(&svgSize[1], "height", 768, "image height")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "simulate headless and persist the run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			h := runHeadless(cfg, days)

			store := storage.New(outDir)
			if err := store.Init(); err != nil {
				return err
			}
			name := preset
			if name == "" {
				name = "custom"
			}
			id, err := store.Save(name, h.stepper.Timestep(), h.metrics(), &h.series)
			if err != nil {
				return fmt.Errorf("failed to save run: %w", err)
			}
			fmt.Printf("saved run %s (%d samples)\n", id, len(h.series.Times))
			return nil
		},
	}
	addTuningFlags(recordCmd)
	recordCmd.Flags().Float64Var(&days, "days", 365, "simulated days")
	recordCmd.Flags().StringVar(&outDir, "dir", "runs", "run directory")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(outDir).List()
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Printf("%-32s %s  %d steps  dt=%.0fs\n",
					r.ID, r.Timestamp.Format("2006-01-02 15:04"), r.Steps, r.StepSeconds)
			}
			return nil
		},
	}
	runsCmd.Flags().StringVar(&outDir, "dir", "runs", "run directory")

	rootCmd.AddCommand(runCmd, guiCmd, presetsCmd, snapshotCmd, recordCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "scene units per meter")
	cmd.Flags().Float64Var(&interval, "interval", config.DefaultPhysicsInterval, "real seconds between physics steps")
	cmd.Flags().Float64Var(&stepDays, "step-days", config.DefaultStepDays, "simulated days per physics step")
	cmd.Flags().IntVar(&trailCap, "trail-cap", config.DefaultTrailCapacity, "trail points per body")
	cmd.Flags().IntVar(&trailEvery, "trail-every", config.DefaultTrailEvery, "sample trails every N frames")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

// resolveConfig layers preset, config file, and changed CLI flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("interval") {
		cfg.PhysicsInterval = interval
	}
	if cmd.Flags().Changed("step-days") {
		cfg.StepDays = stepDays
	}
	if cmd.Flags().Changed("trail-cap") {
		cfg.TrailCapacity = trailCap
	}
	if cmd.Flags().Changed("trail-every") {
		cfg.TrailEvery = trailEvery
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}

	return cfg, cfg.Validate()
}
