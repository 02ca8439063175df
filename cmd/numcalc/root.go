// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numcalc/calc"
	"github.com/katalvlaran/numcalc/internal/config"
	"github.com/katalvlaran/numcalc/internal/metrics"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// persistent flags
	cfgPath     string
	logLevel    string
	metricsFile string
	tolerance   float64
	maxIter     int
	roundDigits int
	bruteLimit  int
	workers     int

	cfg       config.Config
	logger    *slog.Logger
	collector *metrics.Collector
	engine    *calc.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "numcalc",
		Short: "Numerical methods calculator: linear systems, interpolation, regression",
		Long: `numcalc solves square linear systems (Gauss-Seidel with automatic row
reordering, or Gaussian elimination), builds interpolating and least-squares
polynomials from (x, y) observations and evaluates them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit (overrides config)")
	pf.Float64Var(&a.tolerance, "tolerance", 0, "convergence threshold of the iterative solver (overrides config)")
	pf.IntVar(&a.maxIter, "max-iterations", 0, "iteration cap of the iterative solver (overrides config)")
	pf.IntVar(&a.roundDigits, "round-digits", 0, "decimal digits kept in iterative solutions, -1 for raw (overrides config)")
	pf.IntVar(&a.bruteLimit, "brute-force-limit", 0, "largest system searched by permutation enumeration (overrides config)")
	pf.IntVar(&a.workers, "workers", 0, "batch concurrency (overrides config)")

	root.AddCommand(
		newSolveCmd(a),
		newInterpolateCmd(a),
		newRegressCmd(a),
		newEvalCmd(a),
		newBatchCmd(a),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if flags.Changed("tolerance") {
		cfg.Solver.Tolerance = a.tolerance
	}
	if flags.Changed("max-iterations") {
		cfg.Solver.MaxIterations = a.maxIter
	}
	if flags.Changed("round-digits") {
		cfg.Solver.RoundDigits = a.roundDigits
	}
	if flags.Changed("brute-force-limit") {
		cfg.Solver.BruteForceLimit = a.bruteLimit
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.collector = metrics.New()
	a.engine = calc.NewEngine(
		calc.WithLogger(a.logger),
		calc.WithSolverOptions(cfg.SolverOptions()...),
		calc.WithWorkers(cfg.Workers),
		calc.WithRecorder(a.collector),
	)
	a.logger.Debug("configured",
		slog.String("config", a.cfgPath),
		slog.Float64("tolerance", cfg.Solver.Tolerance),
		slog.Int("max_iterations", cfg.Solver.MaxIterations),
		slog.Int("workers", cfg.Workers),
	)

	return nil
}

// runE wraps a command body so metrics are written even when it fails.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if a.cfg.MetricsFile == "" {
			return err
		}
		if werr := a.collector.WriteTextfile(a.cfg.MetricsFile); werr != nil {
			if err != nil {
				return fmt.Errorf("%w (and %v)", err, werr)
			}
			return werr
		}

		return err
	}
}
