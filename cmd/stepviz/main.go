package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/config"
	"github.com/san-kum/stepviz/internal/export"
	"github.com/san-kum/stepviz/internal/metrics"
	"github.com/san-kum/stepviz/internal/scenario"
	"github.com/san-kum/stepviz/internal/script"
	"github.com/san-kum/stepviz/internal/surface"
	"github.com/san-kum/stepviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	size       int
	theme      string
	logLevel   string
	scriptFile string
	step       int
	output     string
	scale      float64
	jsonOut    string
	csvOut     string
	svgOut     string
	classes    []string
)

// main registers the commands and runs the interactive player when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "stepviz [scenario]",
		Short:        "step through undo-logged animations",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runPlay,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&size, "size", config.DefaultSize, "scenario size")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&scriptFile, "script", "", "play a YAML script instead of a built-in scenario")

	playCmd := &cobra.Command{
		Use:   "play [scenario]",
		Short: "step through a scenario interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}

	renderCmd := &cobra.Command{
		Use:   "render [scenario]",
		Short: "print the frame after a number of steps",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&step, "step", -1, "step to show (default: last)")

	svgCmd := &cobra.Command{
		Use:   "svg [scenario]",
		Short: "write the frame after a number of steps as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&step, "step", -1, "step to draw (default: last)")
	svgCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	svgCmd.Flags().Float64Var(&scale, "scale", 40, "pixels per unit")

	statsCmd := &cobra.Command{
		Use:   "stats [scenario]",
		Short: "plot element count and undo depth over a full forward and backward pass",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&jsonOut, "json", "", "also write samples as JSON to this file")
	statsCmd.Flags().StringVar(&csvOut, "csv", "", "also write samples as CSV to this file")
	statsCmd.Flags().StringVar(&svgOut, "svg", "", "also plot undo depth as SVG to this file")
	statsCmd.Flags().StringSliceVar(&classes, "class", []string{"merged"}, "style classes to count")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a YAML script for configuration errors",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [scenario]",
		Short: "print a built-in scenario as a YAML script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	configCmd := &cobra.Command{
		Use:   "config [scenario]",
		Short: "print the resolved configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfig,
	}
	configCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := scenario.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range reg.List() {
				fmt.Fprintf(w, "%s\t%s\n", name, reg.Describe(name))
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Printf("  %-8s size=%d theme=%s\n", p, cfg.Size, cfg.Theme)
			}
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, renderCmd, svgCmd, statsCmd, validateCmd, dumpCmd, configCmd, scenariosCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := open(cmd, args, true)
	if err != nil {
		return err
	}
	if err := s.stepper.Seek(min(s.cfg.StartStep, s.stepper.Len())); err != nil {
		return err
	}
	p := viz.NewPlayer(s.title, s.stepper, s.tree, viz.Unit{Cols: s.cfg.Unit.Cols, Rows: s.cfg.Unit.Rows}, s.cfg.Theme)
	return viz.Run(p)
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := open(cmd, args, false)
	if err != nil {
		return err
	}
	if err := s.seek(step); err != nil {
		return err
	}
	canvas := viz.Rasterize(s.tree, viz.Unit{Cols: s.cfg.Unit.Cols, Rows: s.cfg.Unit.Rows}, viz.GetTheme(s.cfg.Theme))
	fmt.Printf("%s: step %d/%d\n\n", s.title, s.stepper.StepIndex(), s.stepper.Len())
	fmt.Print(canvas.Render(viz.GetTheme(s.cfg.Theme)))
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	s, err := open(cmd, args, false)
	if err != nil {
		return err
	}
	if err := s.seek(step); err != nil {
		return err
	}
	svg := export.FrameToSVG(s.tree, viz.GetTheme(s.cfg.Theme), scale)
	if output == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote step %d of %s to %s\n", s.stepper.StepIndex(), s.title, output)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := open(cmd, args, false)
	if err != nil {
		return err
	}

	depth := metrics.NewUndoDepth(s.stepper)
	rec := metrics.NewRecorder(metrics.NewAttached(s.tree), depth)
	for _, class := range classes {
		rec.Add(metrics.NewClassCount(s.tree, class))
	}
	rec.Sample(s.stepper.StepIndex())
	s.stepper.AddObserver(rec)

	if err := s.stepper.Seek(s.stepper.Len()); err != nil {
		return err
	}
	if err := s.stepper.Seek(0); err != nil {
		return err
	}

	for _, name := range rec.Names() {
		data := rec.Series(name)
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s (%s, forward then back)", name, s.title)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "STEP\tDIR")
	for _, name := range rec.Names() {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)
	for _, sample := range rec.Samples() {
		fmt.Fprintf(w, "%d\t%s", sample.Step, sample.Direction)
		for _, v := range sample.Values {
			fmt.Fprintf(w, "\t%.0f", v)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\npeak undo depth: %d\n", depth.Peak())

	if jsonOut != "" {
		if err := writeFile(jsonOut, func(w io.Writer) error {
			return export.StatsJSON(w, s.title, s.stepper.Len(), rec)
		}); err != nil {
			return err
		}
	}
	if csvOut != "" {
		if err := writeFile(csvOut, func(w io.Writer) error {
			return export.StatsCSV(w, rec)
		}); err != nil {
			return err
		}
	}
	if svgOut != "" {
		plot := export.SeriesToSVG(rec.Series(depth.Name()), 800, 240, string(viz.GetTheme(s.cfg.Theme).Primary))
		if plot == "" {
			return fmt.Errorf("%s: not enough samples to plot", s.title)
		}
		if err := writeFile(svgOut, func(w io.Writer) error {
			_, err := io.WriteString(w, plot)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := script.Load(args[0])
	if err != nil {
		return err
	}
	tree := surface.New()
	sc, err := f.Build(tree)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if _, err := anim.Normalize(sc); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if err := anim.Validate(tree, sc); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Printf("%s: ok (%d steps, %d actions, %d elements)\n", args[0], len(sc), len(sc.Actions()), len(tree.IDs()))
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	reg := scenario.NewRegistry()
	b, err := reg.Get(cfg.Scenario)
	if err != nil {
		return err
	}
	sc, err := b(surface.New(), cfg.Size)
	if err != nil {
		return err
	}
	f := script.FromScript(cfg.Scenario, sc)
	f.Description = reg.Describe(cfg.Scenario)
	if output != "" {
		if err := script.Save(output, f); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d steps) to %s\n", cfg.Scenario, len(sc), output)
		return nil
	}
	out, err := script.Marshal(f)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if output != "" {
		if err := config.Save(output, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote config to %s\n", output)
		return nil
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
