// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numcalc/calc"
	"github.com/katalvlaran/numcalc/poly"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeResult prints r in the human-readable layout.
func writeResult(w io.Writer, job calc.Job, r calc.Result) {
	if r.Err != nil {
		fmt.Fprintf(w, "error: %v\n", r.Err)
		return
	}
	switch r.Kind {
	case calc.KindSolve, calc.KindSolveDirect:
		fmt.Fprintf(w, "x = %v\n", r.Solution)
		if rep := r.Report; rep != nil {
			fmt.Fprintf(w, "iterations: %d, residual: %.3g, converged: %t\n", rep.Iterations, rep.Residual, rep.Converged)
			fmt.Fprintf(w, "order: %v (%s, %d steps)\n", rep.Order.Perm, rep.Order.Strategy, rep.Order.Steps)
		}
	default:
		fmt.Fprintln(w, r.Equation)
		for i, v := range r.Values {
			fmt.Fprintf(w, "f(%s) = %s\n", formatFloat(job.At[i]), formatFloat(v))
		}
		for _, p := range r.Curve {
			fmt.Fprintf(w, "%s\t%s\n", formatFloat(p.X), formatFloat(p.Y))
		}
	}
}

// resultView is the YAML shape of a Result.
type resultView struct {
	ID           string       `yaml:"id,omitempty"`
	Kind         string       `yaml:"kind"`
	Status       string       `yaml:"status"`
	Solution     []float64    `yaml:"solution,omitempty"`
	Iterations   int          `yaml:"iterations,omitempty"`
	Residual     float64      `yaml:"residual,omitempty"`
	Converged    *bool        `yaml:"converged,omitempty"`
	Order        []int        `yaml:"order,omitempty"`
	Coefficients []float64    `yaml:"coefficients,omitempty"`
	Equation     string       `yaml:"equation,omitempty"`
	Values       []float64    `yaml:"values,omitempty"`
	Curve        []poly.Point `yaml:"curve,omitempty"`
	Error        string       `yaml:"error,omitempty"`
}

func newResultView(r calc.Result) resultView {
	v := resultView{
		ID:       r.ID,
		Kind:     string(r.Kind),
		Status:   r.Status(),
		Solution: r.Solution,
		Equation: r.Equation,
		Values:   r.Values,
		Curve:    r.Curve,
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	if rep := r.Report; rep != nil && r.Err == nil {
		converged := rep.Converged
		v.Iterations, v.Residual, v.Converged, v.Order = rep.Iterations, rep.Residual, &converged, rep.Order.Perm
	}
	if r.Equation != "" {
		v.Coefficients = r.Polynomial.Coeffs()
	}

	return v
}

func writeYAML(w io.Writer, results []calc.Result) error {
	views := make([]resultView, len(results))
	for i, r := range results {
		views[i] = newResultView(r)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]resultView{"results": views}); err != nil {
		return err
	}

	return enc.Close()
}
