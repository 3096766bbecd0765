package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heartbeat/internal/analysis"
	"github.com/san-kum/heartbeat/internal/animate"
	"github.com/san-kum/heartbeat/internal/scene"
	"github.com/san-kum/heartbeat/internal/storage"
	"github.com/spf13/cobra"
)

func recordRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if sampleRate <= 0 || duration <= 0 {
		return fmt.Errorf("rate and time must be positive")
	}

	anim := animate.New(cfg.Animation())
	n := int(sampleRate * duration)
	frames := make([]scene.Frame, n)
	beats := make([]float64, n)
	for i := range frames {
		frames[i] = anim.Frame(float64(i) / sampleRate)
		beats[i] = frames[i].Beat
	}

	st := analysis.ComputeStats(beats)
	stats := map[string]float64{
		"beat_min":  st.Min,
		"beat_max":  st.Max,
		"beat_rms":  st.RMS,
		"dominant":  analysis.DominantFrequency(beats, sampleRate),
		"max_scale": 1 + st.Max,
	}
	if cfg.Explosion.Enabled {
		stats["burst_duty"] = analysis.DutyCycle(beats, cfg.Explosion.Threshold)
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg.Name, cfg.Seed, sampleRate, frames, stats)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	fmt.Printf("recorded %d frames (%.1fs of %s)\n", n, duration, cfg.Name)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tRATE\tFRAMES\tPEAK")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.0f\t%d\t%.4f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Rate,
			run.Frames,
			run.Stats["beat_max"],
		)
	}
	return w.Flush()
}

func replayRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	store := storage.New(dataDir)
	meta, err := store.Load(runID)
	if err != nil {
		return err
	}
	frames, err := store.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s  seed: %d\n", meta.Preset, meta.Seed)
	fmt.Printf("frames: %d at %.0f fps\n\n", len(frames), meta.Rate)

	series := []struct {
		caption string
		value   func(scene.Frame) float64
	}{
		{"beat", func(f scene.Frame) float64 { return f.Beat }},
		{"heart scale", func(f scene.Frame) float64 { return f.Heart.Scale }},
		{"heart green", func(f scene.Frame) float64 { return f.Heart.Color.G }},
		{"explosion scale", func(f scene.Frame) float64 { return f.Explosion.Scale }},
	}

	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.value(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}
