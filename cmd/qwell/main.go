package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/qwell/internal/config"
	"github.com/san-kum/qwell/internal/export"
	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/storage"
	"github.com/san-kum/qwell/internal/sweep"
	"github.com/san-kum/qwell/internal/tui"
	"github.com/san-kum/qwell/internal/viz"
	"github.com/san-kum/qwell/internal/wells"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	basisSize  int
	samples    int
	placement  string
	save       bool
	plot       bool
	density    bool
	maxStates  int
	asJSON     bool
	svgPath    string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// main registers the qwell commands and exits with status 1 if the selected
// command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "qwell",
		Short:        "bound states of piecewise-constant quantum wells",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qwell", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	solveCmd := &cobra.Command{
		Use:   "solve [preset]",
		Short: "solve for bound states",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	addProblemFlags(solveCmd)
	solveCmd.Flags().BoolVar(&save, "save", false, "store the run under the data directory")
	solveCmd.Flags().BoolVar(&plot, "plot", false, "plot potential and wavefunctions")
	solveCmd.Flags().BoolVar(&density, "density", false, "plot |psi|^2 instead of psi")
	solveCmd.Flags().IntVar(&maxStates, "states", 4, "number of states to plot (0 for all)")
	solveCmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	solveCmd.Flags().StringVar(&svgPath, "svg", "", "write a level diagram to this SVG file")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "tunnel splitting against barrier height",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addProblemFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1, "lowest barrier height")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 9, "highest barrier height")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 17, "number of heights")
	sweepCmd.Flags().BoolVar(&asJSON, "json", false, "print the sweep as JSON")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&plot, "plot", false, "plot potential and wavefunctions")
	showCmd.Flags().IntVar(&maxStates, "states", 4, "number of states to plot (0 for all)")
	showCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "plot resolution")
	showCmd.Flags().StringVar(&svgPath, "svg", "", "write a level diagram to this SVG file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [preset]",
		Short: "tune heights interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProblem(cmd, args)
			if err != nil {
				return err
			}
			return tui.Run(cfg.Name, cfg.Structure(), cfg.Basis)
		},
	}
	addProblemFlags(tuiCmd)

	rootCmd.AddCommand(solveCmd, sweepCmd, listCmd, showCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "problem file path (yaml)")
	cmd.Flags().IntVar(&basisSize, "basis", config.DefaultBasis, "number of basis functions")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "plot resolution")
	cmd.Flags().StringVar(&placement, "placement", "shifted", "barrier placement (shifted, adjacent)")
}

// loadProblem resolves the problem from a preset, a config file, or the
// defaults, in that order of precedence. Flags override both when set.
func loadProblem(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	} else if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("basis") {
		cfg.Basis = basisSize
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("placement") {
		p, err := wells.ParsePlacement(placement)
		if err != nil {
			return nil, err
		}
		cfg.Placement = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadProblem(cmd, args)
	if err != nil {
		return err
	}
	s := cfg.Structure()

	logger.Debug("solving", "name", cfg.Name, "basis", cfg.Basis, "wells", len(s.Wells), "L", s.Width())
	start := time.Now()
	res, err := solver.Solve(s, cfg.Basis)
	if err != nil {
		return err
	}
	logger.Info("solved", "name", cfg.Name, "bound", res.Len(), "elapsed", time.Since(start))

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Name, s, res)
		if err != nil {
			return err
		}
		logger.Info("stored run", "id", runID, "dir", dataDir)
	}

	if svgPath != "" {
		svg := export.StatesToSVG(wells.NewLayout(s), res, cfg.Samples, 800, 500)
		if err := export.WriteSVG(svgPath, svg); err != nil {
			return err
		}
		logger.Info("wrote level diagram", "path", svgPath)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Name      string          `json:"name"`
			Structure wells.Structure `json:"structure"`
			*solver.Result
		}{cfg.Name, s, res})
	}

	fmt.Println(viz.Summary(cfg.Name, s, cfg.Basis))
	fmt.Print(viz.SpectrumTable(res))
	if split, ok := res.Splitting(); ok {
		fmt.Printf("\nground-pair splitting: %.6g\n", split)
	}

	if plot {
		opts := viz.DefaultPlotOptions()
		opts.Samples = cfg.Samples
		opts.States = maxStates
		opts.Density = density
		fmt.Println()
		fmt.Print(viz.PlotStates(wells.NewLayout(s), res, opts))
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadProblem(cmd, args)
	if err != nil {
		return err
	}
	s := cfg.Structure()
	if len(s.Barriers) == 0 {
		return fmt.Errorf("%s has no barriers to sweep", cfg.Name)
	}

	heights := sweep.Linspace(sweepFrom, sweepTo, sweepSteps)
	logger.Debug("sweeping", "name", cfg.Name, "from", sweepFrom, "to", sweepTo, "steps", len(heights))
	start := time.Now()
	res, err := sweep.BarrierHeights(context.Background(), s, cfg.Basis, heights)
	if err != nil {
		return err
	}
	logger.Info("sweep done", "points", len(res.Points), "elapsed", time.Since(start))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BARRIER\tBOUND\tE0\tSPLITTING")
	for _, p := range res.Points {
		e0, split := "-", "-"
		if len(p.Energies) > 0 {
			e0 = fmt.Sprintf("%.6f", p.Energies[0])
		}
		if p.Splitting != nil {
			split = fmt.Sprintf("%.6g", *p.Splitting)
		}
		fmt.Fprintf(w, "%.4g\t%d\t%s\t%s\n", p.Barrier, len(p.Energies), e0, split)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	opts := viz.DefaultPlotOptions()
	fmt.Println()
	fmt.Println(viz.PlotSweep(res, opts))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIMESTAMP\tBASIS\tBOUND\tE0")
	for _, run := range runs {
		e0 := "-"
		if len(run.Energies) > 0 {
			e0 = fmt.Sprintf("%.6f", run.Energies[0])
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID, run.Name, run.Timestamp.Format("2006-01-02 15:04:05"), run.Basis, len(run.Energies), e0)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s)\n\n", meta.ID, meta.Timestamp.Format(time.RFC3339))
	fmt.Println(viz.Summary(meta.Name, meta.Structure, meta.Basis))
	fmt.Print(viz.SpectrumTable(res))

	if svgPath != "" {
		svg := export.StatesToSVG(wells.NewLayout(meta.Structure), res, samples, 800, 500)
		if err := export.WriteSVG(svgPath, svg); err != nil {
			return err
		}
	}

	if plot {
		opts := viz.DefaultPlotOptions()
		opts.Samples = samples
		opts.States = maxStates
		fmt.Println()
		fmt.Print(viz.PlotStates(wells.NewLayout(meta.Structure), res, opts))
	}
	return nil
}
