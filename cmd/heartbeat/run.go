package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gopxl/beep"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heartbeat/internal/analysis"
	"github.com/san-kum/heartbeat/internal/animate"
	"github.com/san-kum/heartbeat/internal/audio"
	"github.com/san-kum/heartbeat/internal/cloud"
	"github.com/san-kum/heartbeat/internal/compute"
	"github.com/san-kum/heartbeat/internal/config"
	"github.com/san-kum/heartbeat/internal/export"
	"github.com/san-kum/heartbeat/internal/gui"
	"github.com/san-kum/heartbeat/internal/raster"
	"github.com/san-kum/heartbeat/internal/scene"
	"github.com/san-kum/heartbeat/internal/viz"
	"github.com/spf13/cobra"
)

// loadConfig resolves preset, then file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("caption") {
		cfg.Text.Caption = caption
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = frameRate
	}
	if flags.Changed("bloom") {
		cfg.Render.Bloom = bloom
	}
	if flags.Changed("gpu") {
		cfg.Render.GPU = gpu
	}
	if flags.Changed("audio") {
		cfg.Render.Audio = withAudio
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildScene(cfg *config.Config) (*cloud.Set, error) {
	src := cloud.NewSource(cfg.Seed)
	return cloud.Build(src, raster.New(), cfg.Heart, cfg.Text, cfg.Explosion)
}

func loadAll(cmd *cobra.Command) (*config.Config, *cloud.Set, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	set, err := buildScene(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, set, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, set, err := loadAll(cmd)
	if err != nil {
		return err
	}
	gui.Run(cfg, set)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, set, err := loadAll(cmd)
	if err != nil {
		return err
	}
	viz.SetTheme(theme)

	m := viz.NewModel(cfg.Name, animate.New(cfg.Animation()), set, cfg.Render.FPS)
	m.SetGIFPath(gifPath)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func printFrame(cmd *cobra.Command, args []string) error {
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", args[0], err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f := animate.New(cfg.Animation()).Frame(t)
	fmt.Printf("preset: %s\n", cfg.Name)
	fmt.Printf("t: %.4f  beat: %+.6f\n\n", f.Time, f.Beat)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tVISIBLE\tROT_X\tROT_Y\tSCALE\tSIZE\tCOLOR\tOPACITY")
	for _, name := range scene.Shapes {
		sf, _ := f.Shape(name)
		fmt.Fprintf(w, "%s\t%v\t%.4f\t%.4f\t%.4f\t%.4f\t(%.3f, %.3f, %.3f)\t%.2f\n",
			name, sf.Visible, sf.RotationX, sf.RotationY, sf.Scale, sf.Size,
			sf.Color.R, sf.Color.G, sf.Color.B, sf.Opacity)
	}
	return w.Flush()
}

func plotBeat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	anim := animate.New(cfg.Animation())

	samples := analysis.SampleBeat(anim, sampleRate, duration)
	if len(samples) == 0 {
		return fmt.Errorf("no samples: rate and time must be positive")
	}

	graph := asciigraph.Plot(samples,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("beat over %.1fs (%s)", duration, cfg.Name)),
	)
	fmt.Println(graph)
	fmt.Println()

	if showPhase {
		portrait := analysis.GeneratePhasePortrait(anim, sampleRate, duration)
		fmt.Println("phase portrait: beat vs d(beat)/dt")
		fmt.Println(analysis.PhasePortraitToASCII(portrait, 60, 20))
	}
	return nil
}

func analyzeBeat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	anim := animate.New(cfg.Animation())

	samples := analysis.SampleBeat(anim, sampleRate, duration)
	if len(samples) < 2 {
		return fmt.Errorf("not enough samples: increase --time or --rate")
	}

	fmt.Printf("frequency analysis: %s\n", cfg.Name)
	fmt.Printf("samples: %d at %.1f hz\n\n", len(samples), sampleRate)

	ps := analysis.PowerSpectrum(samples)
	plotData := ps[:min(len(ps), max(2, len(ps)/4))]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (beat)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(samples, sampleRate)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	st := analysis.ComputeStats(samples)
	fmt.Printf("beat: min %+.4f  max %+.4f  mean %+.4f  rms %.4f  bound %.4f\n",
		st.Min, st.Max, st.Mean, st.RMS, anim.MaxBeat())

	if cfg.Explosion.Enabled {
		th := cfg.Explosion.Threshold
		onsets := analysis.Crossings(samples, sampleRate, th)
		fmt.Printf("burst: threshold %.3f  duty %.1f%%  onsets %d\n",
			th, analysis.DutyCycle(samples, th)*100, len(onsets))
		for i, t := range onsets {
			if i == 5 {
				fmt.Printf("  ...\n")
				break
			}
			fmt.Printf("  %.3fs\n", t)
		}
	}
	return nil
}

func cloudStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	set, err := buildScene(cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("preset: %s  caption: %q  built in %v\n\n", cfg.Name, cfg.Text.Caption, elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tPOINTS\tMIN\tMAX")
	for _, name := range scene.Shapes {
		pc, _ := set.Cloud(name)
		lo, hi := pc.Bounds()
		fmt.Fprintf(w, "%s\t%d\t(%.3f, %.3f, %.3f)\t(%.3f, %.3f, %.3f)\n",
			name, pc.Len(), lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	}
	fmt.Fprintf(w, "total\t%d\t\t\n", set.Total())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbackend: %s\n", compute.GetBackend().Name())
	return nil
}

// output opens path for writing, or stdout when path is empty.
func output(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportCloud(cmd *cobra.Command, args []string) error {
	if err := export.CheckFormat(format); err != nil {
		return err
	}
	cfg, set, err := loadAll(cmd)
	if err != nil {
		return err
	}
	name := args[0]
	pc, ok := set.Cloud(name)
	if !ok {
		return fmt.Errorf("unknown shape %q (available: %v)", name, scene.Shapes)
	}

	out, err := output(cloudOut)
	if err != nil {
		return err
	}
	if err := export.WriteCloud(out, format, name, pc); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if cloudOut != "" {
		fmt.Printf("exported %d %s points (%s) to %s\n", pc.Len(), name, cfg.Name, cloudOut)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	anim := animate.New(cfg.Animation())
	stroke := string(viz.HexColor(anim.Frame(math.Pi / 6).Heart.Color))

	var svg string
	switch curve {
	case "beat":
		samples := analysis.SampleBeat(anim, sampleRate, duration)
		svg = export.CurveToSVG(export.BeatPoints(samples, sampleRate), 800, 300, stroke)
	case "phase":
		portrait := analysis.GeneratePhasePortrait(anim, sampleRate, duration)
		if portrait == nil {
			return fmt.Errorf("no samples: rate and time must be positive")
		}
		svg = export.CurveToSVG(portrait.Points, 500, 500, stroke)
	case "":
		if len(args) != 1 {
			return fmt.Errorf("export-svg needs a time unless --curve is set")
		}
		t, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid time %q: %w", args[0], err)
		}
		set, err := buildScene(cfg)
		if err != nil {
			return err
		}
		canvas := viz.NewCanvas(canvasW, canvasH)
		viz.RenderClouds(canvas, viz.NewCamera(), set, anim.Frame(t), nil, nil)
		svg = export.CanvasToSVG(canvas, svgScale)
	default:
		return fmt.Errorf("unknown curve %q (beat, phase)", curve)
	}

	if svg == "" {
		return fmt.Errorf("nothing to export")
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("exported svg to %s\n", svgOut)
	return nil
}

func exportWAV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := os.Create(wavOut)
	if err != nil {
		return err
	}
	defer f.Close()

	synth := audio.NewSynth(animate.New(cfg.Animation()))
	d := time.Duration(duration * float64(time.Second))
	if err := audio.WriteWAV(f, synth, beep.SampleRate(wavRate), d, volume); err != nil {
		return err
	}
	fmt.Printf("exported %.1fs of audio to %s\n", duration, wavOut)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tHEART\tBEAT\tBURST\tBLOOM")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f sin(%.0ft) + %.2f sin(%.0ft)\t%v\t%v\n",
			name, cfg.Heart.Count, cfg.Beat.A1, cfg.Beat.W1, cfg.Beat.A2, cfg.Beat.W2,
			cfg.Explosion.Enabled, cfg.Render.Bloom)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("wrote %s config to %s\n", cfg.Name, args[0])
	return nil
}
