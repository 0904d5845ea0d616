package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/atotto/clipboard"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/config"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/export"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/gui"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/metrics"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/sim"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/viz"
	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/web"
)

var (
	configFile string
	width      int
	height     int
	seed       int64
	frames     int
	fps        int
	verbose    bool
	// render
	framesDir  string
	gifPath    string
	every      int
	caption    string
	renderPath string
	// svg
	svgOut  string
	svgPath string
	copySVG bool
	// stats
	statsPath string
	reportDir string
	// bench
	runs int
	// tui
	theme string
)

// main registers the commands and runs the live starfield window when no
// subcommand is given. It exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "backdrop",
		Short: "animated page backgrounds: star fields, ink and particle networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{config.DefaultVariant})
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.IntVar(&width, "width", config.DefaultWidth, "viewport width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "viewport height in pixels")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate (headless commands)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	liveCmd := &cobra.Command{
		Use:   "live [variant]",
		Short: "open a desktop preview window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	webCmd := &cobra.Command{
		Use:   "web [variant]",
		Short: "run the page background with its cards and tags",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWeb,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [variant]",
		Short: "preview in the terminal with Braille graphics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")

	renderCmd := &cobra.Command{
		Use:   "render [variant]",
		Short: "render frames headless to PNG files or a GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&framesDir, "out", "o", "frames", "directory for PNG frames")
	renderCmd.Flags().StringVar(&gifPath, "gif", "", "write an animated GIF instead of PNG frames")
	renderCmd.Flags().IntVar(&every, "every", 1, "keep every n-th frame")
	renderCmd.Flags().StringVar(&caption, "caption", "", "caption drawn on each frame")
	renderCmd.Flags().StringVar(&renderPath, "pointer", "orbit", "scripted pointer: still, orbit or sweep")

	svgCmd := &cobra.Command{
		Use:   "svg [variant]",
		Short: "write an SVG snapshot of the last frame",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "backdrop.svg", "output file, - for stdout")
	svgCmd.Flags().BoolVar(&copySVG, "copy", false, "copy the SVG to the clipboard")
	svgCmd.Flags().StringVar(&svgPath, "pointer", "still", "scripted pointer: still, orbit or sweep")

	statsCmd := &cobra.Command{
		Use:   "stats [variant]",
		Short: "simulate headless and report link and motion metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&statsPath, "pointer", "sweep", "scripted pointer: still, orbit or sweep")
	statsCmd.Flags().StringVar(&reportDir, "report", "", "also write report.json and frames.csv under this directory")

	benchCmd := &cobra.Command{
		Use:   "bench [variant]",
		Short: "run the variant across seeds in parallel",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in variants",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := "backdrop.yaml"
			if len(args) > 0 {
				dst = args[0]
			}
			if err := config.Save(dst, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dst)
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, webCmd, tuiCmd, renderCmd, svgCmd, statsCmd, benchCmd, presetsCmd, initCmd)
	return rootCmd
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig merges defaults, the config file and the changed flags, then
// resolves the variant named by args (or the config).
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, field.Variant, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, field.Variant{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") || configFile == "" {
		cfg.Width = width
	}
	if flags.Changed("height") || configFile == "" {
		cfg.Height = height
	}
	if flags.Changed("frames") || configFile == "" {
		cfg.Frames = frames
	}
	if flags.Changed("fps") || configFile == "" {
		cfg.FPS = fps
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if len(args) > 0 {
		cfg.Variant = args[0]
	}

	v, err := cfg.Resolve()
	if err != nil {
		return nil, field.Variant{}, err
	}
	return cfg, v, nil
}

func parsePath(name string, vp field.Viewport, n int) (sim.PointerPath, error) {
	switch name {
	case "", "still", "none":
		return sim.Still(), nil
	case "orbit":
		r := float64(min(vp.W, vp.H)) / 3
		return sim.Orbit(float64(vp.W)/2, float64(vp.H)/2, r, 240), nil
	case "sweep":
		return sim.Sweep(vp, n), nil
	default:
		return nil, fmt.Errorf("unknown pointer path: %s (available: still, orbit, sweep)", name)
	}
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		Frames:   cfg.Frames,
		Dt:       1,
		Seed:     cfg.Seed,
		Viewport: field.Viewport{W: cfg.Width, H: cfg.Height},
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr())
	log.Debug("live", "variant", v.Name, "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)
	return gui.Run(v, cfg.Seed, cfg.Width, cfg.Height, log)
}

func runWeb(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr())
	log.Debug("web", "variant", v.Name, "cards", len(cfg.Page.Cards), "tags", len(cfg.Page.Tags))
	return web.Run(v, cfg.Seed, cfg.Width, cfg.Height, cfg.Page, log)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	t := cfg.Theme
	if cmd.Flags().Changed("theme") || t == "" {
		t = theme
	}
	return viz.Run(v, cfg.Seed, cfg.FPS, t)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	sc := simConfig(cfg)
	p, err := parsePath(renderPath, sc.Viewport, sc.Frames)
	if err != nil {
		return err
	}
	r := sim.New(v)
	r.SetPath(p)

	start := time.Now()
	if gifPath != "" {
		rec := export.NewGIFRecorder(cfg.Width, cfg.Height, cfg.FPS)
		rec.Delay = export.GIFDelay(float64(cfg.FPS) / float64(max(every, 1)))
		rec.Every = every
		rec.Caption = caption
		r.AddObserver(rec)
		if _, err := r.Run(cmd.Context(), sc); err != nil {
			return err
		}
		if err := rec.Save(gifPath); err != nil {
			return fmt.Errorf("failed to write gif: %w", err)
		}
		log.Debug("render", "frames", rec.Len(), "elapsed", time.Since(start))
		fmt.Fprintf(out, "wrote %s (%d frames)\n", gifPath, rec.Len())
		return nil
	}

	if err := os.MkdirAll(framesDir, 0755); err != nil {
		return err
	}
	pngs := export.NewPNGFrames(framesDir, cfg.Width, cfg.Height)
	pngs.Prefix = v.Name
	pngs.Every = every
	pngs.Caption = caption
	r.AddObserver(pngs)
	if _, err := r.Run(cmd.Context(), sc); err != nil {
		return err
	}
	if err := pngs.Err(); err != nil {
		return err
	}
	log.Debug("render", "frames", len(pngs.Written()), "elapsed", time.Since(start))
	fmt.Fprintf(out, "wrote %d frames to %s\n", len(pngs.Written()), filepath.Clean(framesDir))
	return nil
}

// lastFrame keeps the field after the final frame of a run.
type lastFrame struct{ f *field.Field }

func (l *lastFrame) OnFrame(f *field.Field, _ int) { l.f = f }

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc := simConfig(cfg)
	p, err := parsePath(svgPath, sc.Viewport, sc.Frames)
	if err != nil {
		return err
	}

	last := &lastFrame{}
	r := sim.New(v)
	r.SetPath(p)
	r.AddObserver(last)
	if _, err := r.Run(cmd.Context(), sc); err != nil {
		return err
	}
	doc := export.Snapshot(last.f)

	if copySVG {
		if err := clipboard.WriteAll(doc); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "copied svg to clipboard")
	}
	if svgOut == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d particles)\n", svgOut, last.f.Len())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc := simConfig(cfg)
	p, err := parsePath(statsPath, sc.Viewport, sc.Frames)
	if err != nil {
		return err
	}

	r := sim.New(v)
	r.SetPath(p)
	for _, m := range metrics.Default() {
		r.AddMetric(m)
	}
	result, err := r.Run(cmd.Context(), sc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s at %dx%d, %d frames, seed %d\n\n", v.Name, cfg.Width, cfg.Height, result.Frames, cfg.Seed)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "particles\t%d\n", result.Particles[len(result.Particles)-1])
	for _, m := range metrics.Default() {
		fmt.Fprintf(w, "%s\t%.4f\n", m.Name(), result.Metrics[m.Name()])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if v.LinkDistance > 0 && len(result.Links) > 1 {
		data := make([]float64, len(result.Links))
		for i, n := range result.Links {
			data[i] = float64(n)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption("links per frame"))
		fmt.Fprintf(out, "\n%s\n", graph)
	}

	if reportDir != "" {
		rep := export.NewReport(v.Name, cfg.Seed, cfg.Width, cfg.Height, result)
		dir, err := export.WriteReport(reportDir, rep, result)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(out, "\nreport saved to %s\n", dir)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc := simConfig(cfg)
	r := sim.New(v)
	r.SetPath(sim.Sweep(sc.Viewport, sc.Frames))
	ens := sim.NewEnsemble(r, runs, cfg.Seed, metrics.Default)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %s: %d runs x %d frames at %dx%d\n\n", v.Name, runs, sc.Frames, cfg.Width, cfg.Height)

	start := time.Now()
	results, err := ens.Run(cmd.Context(), sc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSEED\tPARTICLES\tLINKS\tSPEED\tIN BOUNDS")
	total := 0
	for i, res := range results {
		total += res.Frames
		fmt.Fprintf(w, "%d\t%d\t%d\t%.1f\t%.3f\t%.2f\n",
			i, cfg.Seed+int64(i), res.Particles[len(res.Particles)-1],
			res.Metrics["links"], res.Metrics["mean_speed"], res.Metrics["in_bounds"])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d frames in %v (%.0f frames/sec)\n", total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	vp := field.Viewport{W: width, H: height}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "presets at %dx%d:\n", vp.W, vp.H)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range config.ListPresets() {
		v := config.GetPreset(name)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d particles\n", name, v.Boundary, v.Coloring, field.Count(vp, *v))
	}
	return w.Flush()
}
