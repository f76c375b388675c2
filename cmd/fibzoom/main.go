package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fibzoom/internal/config"
	"github.com/san-kum/fibzoom/internal/export"
	"github.com/san-kum/fibzoom/internal/gui"
	"github.com/san-kum/fibzoom/internal/logging"
	"github.com/san-kum/fibzoom/internal/raster"
	"github.com/san-kum/fibzoom/internal/spiral"
	"github.com/san-kum/fibzoom/internal/viz"
)

var (
	verbose    bool
	configFile string
	preset     string
	// Terminal preview
	themeName string
	frameRate int
	// Offscreen rendering
	outPath   string
	width     int
	height    int
	atTime    float64
	atCycle   int
	numFrames int
	startTime float64
	jsonPath  string

	log logging.Logger = logging.Nop()
)

// main registers the fibzoom commands and runs the window when no subcommand is given.
// It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "fibzoom",
		Short:         "infinite Fibonacci spiral zoom",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.NewConsoleLogger(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(config.DefaultConfig(), log)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the zoom in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg, log)
		},
	}
	addConfigFlags(guiCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "preview the zoom in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fps := cfg.Window.FPS
			if frameRate > 0 {
				fps = frameRate
			}
			return viz.Run(cfg.Params(), viz.GetTheme(themeName), fps, log)
		},
	}
	addConfigFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&themeName, "theme", viz.ThemeEmber.Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	tuiCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate (default from config)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to PNG or SVG",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	addConfigFlags(snapshotCmd)
	addSizeFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "frame.png", "output file (.png or .svg)")
	snapshotCmd.Flags().Float64Var(&atTime, "time", 0, "animation time")
	snapshotCmd.Flags().IntVar(&atCycle, "cycle", 0, "cycle number")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render consecutive frames to an animated GIF",
		Args:  cobra.NoArgs,
		RunE:  runRecord,
	}
	addConfigFlags(recordCmd)
	addSizeFlags(recordCmd)
	recordCmd.Flags().StringVarP(&outPath, "out", "o", "zoom.gif", "output GIF")
	recordCmd.Flags().IntVarP(&numFrames, "frames", "n", 120, "number of frames")
	recordCmd.Flags().Float64Var(&startTime, "start", 0, "animation time before the first frame")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot visible squares over one cycle",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	addConfigFlags(plotCmd)
	addSizeFlags(plotCmd)
	plotCmd.Flags().StringVar(&jsonPath, "json", "", "also write per-frame statistics as JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list animation presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTEP\tPERIOD\tSCALE\tTERMS\tARC")
			for _, name := range config.ListPresets() {
				a := config.Presets[name]
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%d\t%d\n", name, a.Step, a.ResetPeriod, a.BaseScale, a.MaxTerms, a.ArcSteps)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, snapshotCmd, recordCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.NewConsoleLogger(verbose).Error("fibzoom failed", err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "animation preset ("+strings.Join(config.ListPresets(), ", ")+")")
	cmd.MarkFlagsMutuallyExclusive("config", "preset")
}

func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 0, "image width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "image height (default from config)")
}

func loadConfig() (*config.Config, error) {
	switch {
	case configFile != "":
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		log.Debug("config loaded", logging.String("path", configFile))
		return cfg, nil
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

// imageSize applies --width/--height over the configured window size.
func imageSize(cfg *config.Config) (int, int, error) {
	w, h := cfg.Window.Width, cfg.Window.Height
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	return w, h, nil
}

// checkTime rejects an animation time the clock could never hold.
func checkTime(flag string, t float64, cfg *config.Config) error {
	period := cfg.Animation.ResetPeriod
	if math.IsNaN(t) || t < 0 || t > period {
		return fmt.Errorf("%s must be within [0, %g], got %v", flag, period, t)
	}
	return nil
}

// fileSize formats the size of path for log output.
func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown"
	}
	return humanize.Bytes(uint64(info.Size()))
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, h, err := imageSize(cfg)
	if err != nil {
		return err
	}

	if err := checkTime("--time", atTime, cfg); err != nil {
		return err
	}
	if atCycle < 0 {
		return fmt.Errorf("--cycle must not be negative, got %d", atCycle)
	}

	clock := spiral.Clock{Time: atTime, Cycle: atCycle}
	viewport := spiral.RectFromSize(spiral.Point{}, float64(w), float64(h))
	frame := spiral.Compose(clock, viewport, cfg.Params())

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".svg":
		err = export.WriteSVG(outPath, frame)
	case ".png":
		var faces *raster.FaceCache
		if faces, err = raster.NewFaceCache(raster.DefaultFaceCacheSize); err != nil {
			return err
		}
		err = raster.SavePNG(outPath, frame, faces)
	default:
		return fmt.Errorf("unsupported output %q: use .png or .svg", outPath)
	}
	if err != nil {
		return err
	}

	log.Info("snapshot written",
		logging.String("path", outPath),
		logging.String("size", fileSize(outPath)),
		logging.Float64("time", atTime),
		logging.Int("visible", frame.Stats.Visible),
		logging.Int("labels", frame.Stats.Labels))
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, h, err := imageSize(cfg)
	if err != nil {
		return err
	}
	if err := checkTime("--start", startTime, cfg); err != nil {
		return err
	}
	faces, err := raster.NewFaceCache(raster.DefaultFaceCacheSize)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " rendering"
	s.Start()

	start := time.Now()
	anim, err := raster.Record(ctx, cfg.Params(), raster.RecordOptions{
		Frames: numFrames,
		Width:  w,
		Height: h,
		FPS:    cfg.Window.FPS,
		Start:  spiral.Clock{Time: startTime},
		Progress: func(done int) {
			s.Lock()
			s.Suffix = fmt.Sprintf(" rendered %d/%d frames", done, numFrames)
			s.Unlock()
		},
	}, faces)
	s.Stop()
	if err != nil {
		return err
	}

	if err := raster.WriteGIF(outPath, anim); err != nil {
		return err
	}
	log.Info("recording written",
		logging.String("path", outPath),
		logging.String("size", fileSize(outPath)),
		logging.Int("frames", len(anim.Image)),
		logging.Duration("elapsed", time.Since(start)))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, h, err := imageSize(cfg)
	if err != nil {
		return err
	}

	viewport := spiral.RectFromSize(spiral.Point{}, float64(w), float64(h))
	trace := export.CycleTrace(cfg.Params(), viewport)
	if jsonPath != "" {
		if err := export.WriteJSON(jsonPath, trace); err != nil {
			return err
		}
		log.Info("trace written", logging.String("path", jsonPath), logging.Int("frames", len(trace.Frames)))
	}
	if len(trace.Frames) == 0 {
		return nil
	}

	visible, labels := trace.Series()
	fmt.Println(asciigraph.PlotMany([][]float64{visible, labels},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Yellow, asciigraph.White),
		asciigraph.Caption(fmt.Sprintf("visible squares (yellow) and labels over %d frames", len(visible)))))
	return nil
}
