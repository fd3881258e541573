package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/neurovolt/internal/config"
	"github.com/san-kum/neurovolt/internal/engine"
	"github.com/san-kum/neurovolt/internal/export"
	"github.com/san-kum/neurovolt/internal/metrics"
	"github.com/san-kum/neurovolt/internal/playback"
	"github.com/san-kum/neurovolt/internal/scenario"
	"github.com/san-kum/neurovolt/internal/storage"
	"github.com/san-kum/neurovolt/internal/viz"
)

var (
	dataDir    string
	configFile string
	engineCmd  string
	inputFile  string
	step       int
	frameRate  int
	noLoop     bool
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "neurovolt",
		Short: "synaptic summation demos in the terminal",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "simulate a scenario on the external engine and store the traces",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&engineCmd, "engine", "", "engine command (scenario JSON on stdin, traces on stdout)")
	runCmd.Flags().StringVar(&inputFile, "input", "", "import a recorded engine output file instead of running the engine")

	playCmd := &cobra.Command{
		Use:   "play [run_id]",
		Short: "replay stored traces as a looping annotated animation",
		Args:  cobra.ExactArgs(1),
		RunE:  playRun,
	}
	playCmd.Flags().IntVar(&step, "step", 0, "samples revealed per frame (0 = scenario default)")
	playCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate (0 = scenario default)")
	playCmd.Flags().BoolVar(&noLoop, "no-loop", false, "stop on the final frame instead of looping")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored traces without animation",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [run_id]",
		Short: "per-channel voltage summary",
		Args:  cobra.ExactArgs(1),
		RunE:  summarizeRun,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenario.List() {
				fmt.Printf("  %-12s %s\n", name, scenario.Get(name).Title)
			}
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export stored traces in the engine recording format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newStore().ExportJSON(args[0], os.Stdout)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export stored traces as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the fully revealed frame as an SVG figure",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.svg)")

	rootCmd.AddCommand(runCmd, playCmd, listCmd, plotCmd, summaryCmd, scenariosCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

func newStore() *storage.Store {
	return storage.New(dataDir)
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc := scenario.Get(args[0])
	if sc == nil {
		return fmt.Errorf("unknown scenario: %s (available: %v)", args[0], scenario.List())
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if engineCmd == "" {
		engineCmd = cfg.Engine
	}

	var rec *engine.Recording
	switch {
	case inputFile != "":
		rec, err = engine.ReadRecording(inputFile)
		if err != nil {
			return err
		}
	case engineCmd != "":
		runner, err := engine.NewRunner(engineCmd)
		if err != nil {
			return err
		}
		fmt.Printf("running %s on the engine...\n", sc.Name)
		rec, err = runner.Run(context.Background(), sc)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("no engine configured: pass --engine, set engine in the config file, or import with --input")
	}

	st := newStore()
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc.Name, sc.Sim.Dt, sc.Sim.Duration, rec)
	if err != nil {
		return err
	}

	set := rec.Traces()
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", set.Len())
	fmt.Printf("channels: %v\n", set.Channels())
	if dropped := set.Dropped(); len(dropped) > 0 {
		fmt.Printf("dropped (malformed): %v\n", dropped)
	}
	return nil
}

// playbackConfig resolves the replay settings for a run: scenario defaults,
// then config file, then CLI flags, most specific last.
func playbackConfig(sc *scenario.Scenario, cfg *config.Config) (playback.Config, int, float64, float64) {
	pb := scenario.Playback{Step: config.DefaultStep, Loop: true, FPS: config.DefaultFPS}
	if sc != nil {
		pb = sc.Playback
	}

	out := playback.Config{
		Step:     pb.Step,
		Loop:     pb.Loop,
		Triggers: pb.Triggers,
	}
	if pb.Highlight {
		out.Highlight = &playback.Window{Start: pb.HighlightStart, End: pb.HighlightEnd}
	}
	fps := pb.FPS

	if cfg.Playback.Step > 0 {
		out.Step = cfg.Playback.Step
	}
	if cfg.Playback.Loop != nil {
		out.Loop = *cfg.Playback.Loop
	}
	if cfg.Playback.FPS > 0 {
		fps = cfg.Playback.FPS
	}
	if len(cfg.Playback.Triggers) > 0 {
		out.Triggers = cfg.Playback.Triggers
	}
	if len(cfg.Playback.Highlight) == 2 {
		out.Highlight = &playback.Window{Start: cfg.Playback.Highlight[0], End: cfg.Playback.Highlight[1]}
	}

	if step > 0 {
		out.Step = step
	}
	if frameRate > 0 {
		fps = frameRate
	}
	if noLoop {
		out.Loop = false
	}

	return out, fps, pb.VMin, pb.VMax
}

func playRun(cmd *cobra.Command, args []string) error {
	st := newStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc := scenario.Get(meta.Scenario)
	pbCfg, fps, vMin, vMax := playbackConfig(sc, cfg)

	ctrl, err := playback.NewController(set, pbCfg)
	if err != nil {
		return err
	}

	title := meta.Scenario
	var labels map[string]string
	if sc != nil {
		title = sc.Title
		labels = sc.Labels
	}

	m := viz.NewModel(ctrl, title, labels, fps, vMin, vMax)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := newStore().List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tSAMPLES\tCHANNELS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fms\t%.3fms\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Samples,
			len(run.Channels),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := newStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", set.Len())

	sc := scenario.Get(meta.Scenario)
	for _, id := range set.Channels() {
		caption := id
		if sc != nil && sc.Labels[id] != "" {
			caption = sc.Labels[id]
		}
		graph := asciigraph.Plot(set.Values(id),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func summarizeRun(cmd *cobra.Command, args []string) error {
	st := newStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s)\n\n", meta.ID, meta.Scenario)

	sc := scenario.Get(meta.Scenario)
	summary := metrics.Summarize(set)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL\tPEAK (mV)\tMIN (mV)\tFINAL (mV)")
	for _, id := range set.Channels() {
		label := id
		if sc != nil && sc.Labels[id] != "" {
			label = fmt.Sprintf("%s (%s)", id, sc.Labels[id])
		}
		s := summary[id]
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", label, s.Peak, s.Min, s.Final)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	set, err := newStore().LoadTraces(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, set.Channels()...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, t := range set.Times() {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, id := range set.Channels() {
			row = append(row, strconv.FormatFloat(set.Values(id)[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := newStore()
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	opts := export.Options{Width: 960, Height: 540}
	if sc := scenario.Get(meta.Scenario); sc != nil {
		opts.Markers = sc.Playback.Triggers
		if sc.Playback.Highlight {
			opts.Highlight = &playback.Window{Start: sc.Playback.HighlightStart, End: sc.Playback.HighlightEnd}
		}
		opts.VMin, opts.VMax = sc.Playback.VMin, sc.Playback.VMax
	}

	svg := export.TracesToSVG(set, opts)
	if svg == "" {
		return fmt.Errorf("no data to export")
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
