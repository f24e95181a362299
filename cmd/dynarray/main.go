package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/export"
	"github.com/san-kum/dynarray/internal/script"
	"github.com/san-kum/dynarray/internal/storage"
	"github.com/san-kum/dynarray/internal/trace"
	"github.com/san-kum/dynarray/internal/tui"
	"github.com/san-kum/dynarray/internal/viz"
)

var (
	dataDir    string
	backend    string
	configFile string
	preset     string
	capacity   int
	growStep   int
	samples    int
	styled     bool
	format     string
	outputPath string
)

// main registers the dynarray commands and runs the demonstration when no
// subcommand is given. It exits with status 1 only when a command fails
// before or outside array operations.
func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dynarray",
		Short:        "resizable array lab",
		SilenceUsage: true,
		RunE:         runDemo,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&backend, "store", config.DefaultBackend, "trace store backend (file|bolt)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", config.DefaultCapacity, "initial capacity")
	rootCmd.PersistentFlags().IntVar(&growStep, "grow", config.DefaultGrowStep, "growth step")
	rootCmd.PersistentFlags().BoolVar(&styled, "styled", false, "render arrays with styled cells")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the demonstration sequence",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "run an operation script ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "record and plot capacity growth",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&samples, "n", config.DefaultTraceSamples, "number of adds to trace")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved traces",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [CAPxSTEP] [CAPxSTEP] ...",
		Short: "compare growth of several configurations",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareConfigs,
	}
	compareCmd.Flags().IntVar(&samples, "n", config.DefaultTraceSamples, "number of adds to trace")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved trace as json or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json|svg)")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive array session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(sessionArray(cfg))
		},
	}

	rootCmd.AddCommand(demoCmd, runCmd, traceCmd, compareCmd, listCmd, plotCmd, exportCmd, presetsCmd, tuiCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("grow") {
		cfg.GrowStep = growStep
	}
	if flags.Changed("styled") {
		cfg.Styled = styled
	}
	if flags.Changed("data") {
		cfg.Store.Dir = dataDir
	}
	if flags.Changed("store") {
		cfg.Store.Backend = backend
	}
	if flags.Lookup("n") != nil && flags.Changed("n") {
		cfg.Trace.Samples = samples
	}

	return cfg, nil
}

func diagnostics(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "dynarray: ", 0)
}

// newArray builds the configured array. Invalid parameters are reported
// and the fallback array is used, so the run continues.
func newArray(cmd *cobra.Command, cfg *config.Config) *dynarray.DynamicArray[int] {
	arr, _ := cfg.NewArray(dynarray.WithLogger(diagnostics(cmd)))
	return arr
}

// sessionArray builds the array for the interactive session. It carries no
// logger: stderr writes would land inside the alt screen, and the session
// already lists failures in its history.
func sessionArray(cfg *config.Config) *dynarray.DynamicArray[int] {
	arr, _ := cfg.NewArray()
	return arr
}

func execute(cmd *cobra.Command, cfg *config.Config, cmds []script.Command) {
	out := cmd.OutOrStdout()
	r := script.NewRunner(newArray(cmd, cfg), out)
	if cfg.Styled {
		r.Printer = viz.Printer
	}

	report := r.Run(cmds)
	if cfg.Styled {
		fmt.Fprintln(out, viz.RenderReport(report.Applied, report.Failed))
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if preset == "" && configFile == "" {
		if !cmd.Flags().Changed("capacity") {
			cfg.Capacity = script.DemoCapacity
		}
		if !cmd.Flags().Changed("grow") {
			cfg.GrowStep = script.DemoGrowStep
		}
	}

	execute(cmd, cfg, script.DemoCommands())
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var src io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	cmds, err := script.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	execute(cmd, cfg, cmds)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tr, err := trace.Record(cfg.Capacity, cfg.GrowStep, cfg.Trace.Samples)
	if err != nil {
		return err
	}

	st, err := storage.Open(cfg.Store.Backend, cfg.Store.Dir)
	if err != nil {
		return err
	}
	defer st.Close()

	runID, err := st.Save(tr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(tr.Samples) > 0 {
		graph := asciigraph.PlotMany([][]float64{tr.Capacities(), tr.Counts()},
			asciigraph.Height(cfg.Trace.Height),
			asciigraph.Width(cfg.Trace.Width),
			asciigraph.Caption("capacity and length vs adds"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "adds: %d\n", len(tr.Samples))
	fmt.Fprintf(out, "final capacity: %d\n", tr.FinalCapacity())
	fmt.Fprintf(out, "reallocations: %d\n", tr.Reallocs)
	fmt.Fprintf(out, "utilization: %.3f\n", tr.Utilization())
	return nil
}

func openStore(cmd *cobra.Command) (storage.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.Open(cfg.Store.Backend, cfg.Store.Dir)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCAP\tSTEP\tADDS\tFINAL\tREALLOCS\tUTIL")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.3f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.InitialCapacity,
			run.GrowStep,
			run.Samples,
			run.FinalCapacity,
			run.Reallocs,
			run.Utilization,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	smps, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(smps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	tr := &trace.Trace{InitialCapacity: meta.InitialCapacity, GrowStep: meta.GrowStep, Samples: smps}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "capacity %d, step %d, adds %d\n\n", meta.InitialCapacity, meta.GrowStep, meta.Samples)

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"capacity", tr.Capacities()},
		{"unused slots", tr.Slack()},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(config.DefaultPlotHeight),
			asciigraph.Width(config.DefaultPlotWidth),
			asciigraph.Caption(series.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "slack %s\n", viz.SparklineChart(tr.Slack(), 40))
	return nil
}

func compareConfigs(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	params := make([]trace.Params, 0, len(args))
	for _, arg := range args {
		p, err := trace.ParseParams(arg)
		if err != nil {
			return err
		}
		params = append(params, p)
	}

	traces, err := trace.NewEnsemble(params, cfg.Trace.Samples).Run(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	series := make([][]float64, len(traces))
	for i, tr := range traces {
		series[i] = tr.Capacities()
	}
	if cfg.Trace.Samples > 0 {
		graph := asciigraph.PlotMany(series,
			asciigraph.Height(cfg.Trace.Height),
			asciigraph.Width(cfg.Trace.Width),
			asciigraph.Caption("capacity vs adds"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONFIG\tFINAL\tREALLOCS\tUTIL\tSLACK")
	for i, tr := range traces {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\t%s\n",
			params[i],
			tr.FinalCapacity(),
			tr.Reallocs,
			tr.Utilization(),
			viz.SparklineChart(tr.Slack(), 20),
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	smps, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		return export.WriteJSON(w, export.NewExportData(meta, smps))
	case "svg":
		svg := export.SamplesToSVG(smps, 800, 400)
		if svg == "" {
			return fmt.Errorf("no data to export")
		}
		_, err := fmt.Fprintln(w, svg)
		return err
	default:
		return fmt.Errorf("unknown format: %s (available: json, svg)", format)
	}
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCAP\tSTEP\tSTORE\tADDS")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\n", name, p.Capacity, p.GrowStep, p.Store.Backend, p.Trace.Samples)
	}
	return w.Flush()
}
