// SPDX-License-Identifier: MIT

package calc

import (
	"time"

	"github.com/katalvlaran/numcalc/fit"
	"github.com/katalvlaran/numcalc/iterative"
	"github.com/katalvlaran/numcalc/matrix"
	"github.com/katalvlaran/numcalc/poly"
)

// Kind selects the computation of a Job.
type Kind string

const (
	// KindSolve runs the Gauss–Seidel solver with automatic row reordering.
	KindSolve Kind = "solve"
	// KindSolveDirect runs Gaussian elimination with partial pivoting.
	KindSolveDirect Kind = "solve-direct"
	// KindInterpolate builds the interpolating polynomial.
	KindInterpolate Kind = "interpolate"
	// KindRegress builds the least-squares polynomial of Job.Degree.
	KindRegress Kind = "regress"
)

// Known reports whether k is one of the Kind constants.
func (k Kind) Known() bool {
	switch k {
	case KindSolve, KindSolveDirect, KindInterpolate, KindRegress:
		return true
	default:
		return false
	}
}

// Job is one unit of work. Matrix is used by the solve kinds, Observations
// by the fitting kinds. Degree 0 on a regression means 1.
type Job struct {
	ID           string            `yaml:"id" json:"id"`
	Kind         Kind              `yaml:"kind" json:"kind"`
	Matrix       [][]float64       `yaml:"matrix,omitempty" json:"matrix,omitempty"`
	Observations []fit.Observation `yaml:"observations,omitempty" json:"observations,omitempty"`
	Degree       int               `yaml:"degree,omitempty" json:"degree,omitempty"`
	// At lists points where the fitted polynomial is evaluated.
	At []float64 `yaml:"at,omitempty" json:"at,omitempty"`
	// Curve requests the chart series over the padded data domain.
	Curve bool `yaml:"curve,omitempty" json:"curve,omitempty"`
}

// Result is the outcome of one Job. Exactly one of Solution and Polynomial is
// meaningful, depending on the kind; Err is nil on success.
type Result struct {
	ID   string
	Kind Kind

	// Solution of a solve job.
	Solution matrix.Vector
	// Report of an iterative solve; nil for every other kind.
	Report *iterative.Report

	// Polynomial of a fitting job and its "y = …" rendering.
	Polynomial poly.Polynomial
	Equation   string
	// Values[i] is the polynomial at Job.At[i].
	Values []float64
	// Curve is the sampled chart series when Job.Curve is set.
	Curve []poly.Point

	Duration time.Duration
	Err      error
}

// Failed reports whether the job ended with an error.
func (r Result) Failed() bool { return r.Err != nil }

// Status is "ok", "unconverged" (iterative solve that hit its cap) or
// "failed".
func (r Result) Status() string {
	switch {
	case r.Err != nil:
		return StatusFailed
	case r.Report != nil && !r.Report.Converged:
		return StatusUnconverged
	default:
		return StatusOK
	}
}

// Result statuses.
const (
	StatusOK          = "ok"
	StatusUnconverged = "unconverged"
	StatusFailed      = "failed"
)
