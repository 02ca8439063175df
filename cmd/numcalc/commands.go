// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numcalc/calc"
	"github.com/katalvlaran/numcalc/poly"
)

var errJobsFailed = errors.New("jobs failed")

// runJob executes a single job through the engine and prints it.
func (a *app) runJob(cmd *cobra.Command, job calc.Job) error {
	res := a.engine.Run(cmd.Context(), job)
	if res.Err != nil {
		return res.Err
	}
	writeResult(cmd.OutOrStdout(), job, res)

	return nil
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		rows     []string
		useGauss bool
	)
	cmd := &cobra.Command{
		Use:   "solve --row a11,...,a1n,b1 [--row ...]",
		Short: "Solve a square linear system given as augmented rows",
		Long: `Solve A·x = b. Each --row holds one equation: n coefficients followed by the
right-hand side. By default Gauss-Seidel is used after reordering the
equations into a diagonally dominant order; --direct uses Gaussian
elimination with partial pivoting instead.`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = a.runE(func(cmd *cobra.Command, _ []string) error {
		m, err := parseRows(rows)
		if err != nil {
			return err
		}
		kind := calc.KindSolve
		if useGauss {
			kind = calc.KindSolveDirect
		}

		return a.runJob(cmd, calc.Job{ID: "solve", Kind: kind, Matrix: m})
	})
	cmd.Flags().StringArrayVarP(&rows, "row", "r", nil, "augmented row, comma separated (repeat per equation)")
	cmd.Flags().BoolVar(&useGauss, "direct", false, "use Gaussian elimination instead of Gauss-Seidel")
	_ = cmd.MarkFlagRequired("row")

	return cmd
}

// fitFlags are shared by interpolate and regress.
type fitFlags struct {
	points []string
	at     []float64
	curve  bool
}

func (f *fitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.points, "point", "p", nil, `observation "x,y"; leave a side empty for a missing value`)
	cmd.Flags().Float64SliceVar(&f.at, "at", nil, "evaluate the polynomial at these x values")
	cmd.Flags().BoolVar(&f.curve, "curve", false, "print the chart series over [min x - 2, max x + 2] every 0.5")
}

func (f *fitFlags) job(id string, kind calc.Kind) (calc.Job, error) {
	obs, err := parsePoints(f.points)
	if err != nil {
		return calc.Job{}, err
	}

	return calc.Job{ID: id, Kind: kind, Observations: obs, At: f.at, Curve: f.curve}, nil
}

func newInterpolateCmd(a *app) *cobra.Command {
	var f fitFlags
	cmd := &cobra.Command{
		Use:   "interpolate --point x,y [--point ...]",
		Short: "Build the polynomial through every complete observation",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.runE(func(cmd *cobra.Command, _ []string) error {
		job, err := f.job("interpolate", calc.KindInterpolate)
		if err != nil {
			return err
		}

		return a.runJob(cmd, job)
	})
	f.register(cmd)

	return cmd
}

func newRegressCmd(a *app) *cobra.Command {
	var (
		f      fitFlags
		degree int
	)
	cmd := &cobra.Command{
		Use:   "regress --point x,y [--point ...] [--degree 1|2]",
		Short: "Least-squares polynomial of degree 1 or 2",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.runE(func(cmd *cobra.Command, _ []string) error {
		job, err := f.job("regress", calc.KindRegress)
		if err != nil {
			return err
		}
		job.Degree = degree

		return a.runJob(cmd, job)
	})
	f.register(cmd)
	cmd.Flags().IntVarP(&degree, "degree", "d", 1, "polynomial degree (1 or 2)")

	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	var coeffs []float64
	cmd := &cobra.Command{
		Use:   "eval --coeffs c0,c1,... x [x ...]",
		Short: "Evaluate c0 + c1·x + … at the given points, rounded to 4 decimals",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = a.runE(func(cmd *cobra.Command, args []string) error {
		p := poly.New(coeffs...)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, poly.Equation(p))
		for _, s := range args {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("x %q: %w", s, err)
			}
			fmt.Fprintf(out, "f(%s) = %s\n", formatFloat(x), formatFloat(poly.Evaluate(p, x)))
		}

		return nil
	})
	cmd.Flags().Float64SliceVarP(&coeffs, "coeffs", "c", nil, "coefficients, lowest power first")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}

// jobFile is the layout of a batch file.
type jobFile struct {
	Jobs []calc.Job `yaml:"jobs"`
}

func loadJobs(path string) ([]calc.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var jf jobFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&jf); err != nil {
		return nil, fmt.Errorf("batch file %s: %w", path, err)
	}
	for i := range jf.Jobs {
		if jf.Jobs[i].ID == "" {
			jf.Jobs[i].ID = strconv.Itoa(i + 1)
		}
	}

	return jf.Jobs, nil
}

func newBatchCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run the jobs of a YAML batch file concurrently",
		Long: `Run every job of FILE:

  jobs:
    - id: gs
      kind: solve            # solve | solve-direct | interpolate | regress
      matrix: [[1, 4, 6], [4, 1, 7]]
    - id: lsm
      kind: regress
      degree: 2
      observations: [{x: 0, y: 1}, {x: 1, y: 2}, {x: 2, y: 5}, {x: 3, y: 10}]
      at: [4]

Results keep the file order. The command fails when any job failed.`,
		Args: cobra.ExactArgs(1),
	}
	cmd.RunE = a.runE(func(cmd *cobra.Command, args []string) error {
		if output != "text" && output != "yaml" {
			return fmt.Errorf("--output %q: want text or yaml", output)
		}
		jobs, err := loadJobs(args[0])
		if err != nil {
			return err
		}
		results, err := a.engine.RunBatch(cmd.Context(), jobs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if output == "yaml" {
			if err = writeYAML(out, results); err != nil {
				return err
			}
		} else {
			for i, r := range results {
				fmt.Fprintf(out, "== %s (%s)\n", r.ID, r.Kind)
				writeResult(out, jobs[i], r)
			}
		}

		failed := 0
		for _, r := range results {
			if r.Failed() {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d: %w", failed, len(results), errJobsFailed)
		}

		return nil
	})
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")

	return cmd
}
