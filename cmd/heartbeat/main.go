package main

import (
	"os"

	"github.com/san-kum/heartbeat/internal/export"
	"github.com/san-kum/heartbeat/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	caption    string
	dataDir    string

	frameRate int
	bloom     bool
	gpu       bool
	withAudio bool
	theme     string
	gifPath   string

	duration   float64
	sampleRate float64
	showPhase  bool

	cloudOut string
	svgOut   string
	wavOut   string
	format   string
	canvasW  int
	canvasH  int
	svgScale float64
	curve    string
	wavRate  int
	volume   float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the heartbeat commands. The root opens the window when
// no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "heartbeat",
		Short:        "pulsing particle heart",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a preset (classic, burst, calm)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.PersistentFlags().StringVar(&caption, "caption", "", "caption rendered under the heart")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heartbeat", "data directory for recorded runs")
	addRenderFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the scene in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addRenderFlags(guiCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "render the scene in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")
	liveCmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, "panel theme")
	liveCmd.Flags().StringVar(&gifPath, "gif", "heartbeat.gif", "where G recordings are written")

	frameCmd := &cobra.Command{
		Use:   "frame [t]",
		Short: "print the frame parameters at time t",
		Args:  cobra.ExactArgs(1),
		RunE:  printFrame,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the beat over time",
		Args:  cobra.NoArgs,
		RunE:  plotBeat,
	}
	addSampleFlags(plotCmd)
	plotCmd.Flags().BoolVar(&showPhase, "phase", false, "also draw the phase portrait")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the beat",
		Args:  cobra.NoArgs,
		RunE:  analyzeBeat,
	}
	addSampleFlags(analyzeCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "point counts and bounds of the generated clouds",
		Args:  cobra.NoArgs,
		RunE:  cloudStats,
	}

	exportCloudCmd := &cobra.Command{
		Use:   "export-cloud [shape]",
		Short: "export a point cloud (heart, text, explosion)",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCloud,
	}
	exportCloudCmd.Flags().StringVar(&format, "format", export.FormatCSV, "csv, json or yaml")
	exportCloudCmd.Flags().StringVarP(&cloudOut, "out", "o", "", "output file (stdout when empty)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [t]",
		Short: "export a terminal snapshot at time t, or a beat curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "heartbeat.svg", "output file")
	exportSVGCmd.Flags().IntVar(&canvasW, "width", 80, "canvas width in cells")
	exportSVGCmd.Flags().IntVar(&canvasH, "height", 30, "canvas height in cells")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 4, "pixels per dot")
	exportSVGCmd.Flags().StringVar(&curve, "curve", "", "plot a curve instead: beat or phase")
	addSampleFlags(exportSVGCmd)

	exportWAVCmd := &cobra.Command{
		Use:   "export-wav",
		Short: "render the heartbeat sound to a wav file",
		Args:  cobra.NoArgs,
		RunE:  exportWAV,
	}
	exportWAVCmd.Flags().Float64Var(&duration, "time", 10, "duration in seconds")
	exportWAVCmd.Flags().StringVarP(&wavOut, "out", "o", "heartbeat.wav", "output file")
	exportWAVCmd.Flags().IntVar(&wavRate, "rate", 44100, "sample rate")
	exportWAVCmd.Flags().Float64Var(&volume, "volume", 1, "linear volume")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "sample frames and store them as a run",
		Args:  cobra.NoArgs,
		RunE:  recordRun,
	}
	addSampleFlags(recordCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, frameCmd, plotCmd, analyzeCmd, statsCmd,
		exportCloudCmd, exportSVGCmd, exportWAVCmd, recordCmd, listCmd, replayCmd, presetsCmd, initConfigCmd)

	return rootCmd
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", 60, "target frames per second")
	cmd.Flags().BoolVar(&bloom, "bloom", false, "bloom post-processing")
	cmd.Flags().BoolVar(&gpu, "gpu", false, "draw points with OpenGL")
	cmd.Flags().BoolVar(&withAudio, "audio", false, "play the heartbeat")
}

func addSampleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&duration, "time", 10, "duration in seconds")
	cmd.Flags().Float64Var(&sampleRate, "rate", 30, "samples per second")
}
