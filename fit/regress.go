// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numcalc/direct"
	"github.com/katalvlaran/numcalc/matrix"
	"github.com/katalvlaran/numcalc/poly"
)

const (
	opRegress = "Regress"

	// MinRegressionPoints is the smallest number of complete observations a
	// regression accepts.
	MinRegressionPoints = 2
)

// fitErrorf wraps err with an operation tag, preserving it for errors.Is.
func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Regress returns the least-squares polynomial of the given degree (1 or 2)
// through the complete observations of obs.
//
// Errors:
//   - ErrUnsupportedDegree for any degree other than 1 or 2.
//   - ErrDegenerateFit for fewer than MinRegressionPoints retained points, a
//     zero closed-form denominator (all x equal), or singular normal
//     equations. The singular case also matches direct.ErrSingularMatrix.
//   - matrix.ErrNaNInf for a non-finite retained value.
func Regress(obs []Observation, degree int) (poly.Polynomial, error) {
	if degree != 1 && degree != 2 {
		return poly.Polynomial{}, fmt.Errorf("%s: degree %d: %w", opRegress, degree, ErrUnsupportedDegree)
	}
	xs, ys, err := points(obs)
	if err != nil {
		return poly.Polynomial{}, fitErrorf(opRegress, err)
	}
	if len(xs) < MinRegressionPoints {
		return poly.Polynomial{}, fmt.Errorf("%s: %d complete observations: %w", opRegress, len(xs), ErrDegenerateFit)
	}

	if degree == 1 {
		return linear(xs, ys)
	}

	return quadratic(xs, ys)
}

// Linear is Regress(obs, 1).
func Linear(obs []Observation) (poly.Polynomial, error) { return Regress(obs, 1) }

// Quadratic is Regress(obs, 2).
func Quadratic(obs []Observation) (poly.Polynomial, error) { return Regress(obs, 2) }

// linear evaluates the closed form
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	intercept = (Σx²·Σy − Σx·Σxy) / (n·Σx² − (Σx)²)
func linear(xs, ys []float64) (poly.Polynomial, error) {
	var sx, sy, sxy, sxx float64
	for i, x := range xs {
		sx += x
		sy += ys[i]
		sxy += x * ys[i]
		sxx += x * x
	}
	n := float64(len(xs))
	den := n*sxx - sx*sx
	if den == 0 {
		return poly.Polynomial{}, fmt.Errorf("%s: zero denominator: %w", opRegress, ErrDegenerateFit)
	}
	slope := (n*sxy - sx*sy) / den
	intercept := (sxx*sy - sx*sxy) / den

	return poly.New(intercept, slope), nil
}

// quadratic assembles and solves the normal equations
//
//	[ n    Σx   Σx²  | Σy   ]
//	[ Σx   Σx²  Σx³  | Σxy  ]
//	[ Σx²  Σx³  Σx⁴  | Σx²y ]
func quadratic(xs, ys []float64) (poly.Polynomial, error) {
	var s1, s2, s3, s4, sy, sxy, sx2y float64
	for i, x := range xs {
		x2 := x * x
		s1 += x
		s2 += x2
		s3 += x2 * x
		s4 += x2 * x2
		sy += ys[i]
		sxy += x * ys[i]
		sx2y += x2 * ys[i]
	}
	n := float64(len(xs))

	a, err := matrix.NewAugmented([][]float64{
		{n, s1, s2, sy},
		{s1, s2, s3, sxy},
		{s2, s3, s4, sx2y},
	})
	if err != nil {
		// overflowing power sums
		return poly.Polynomial{}, fitErrorf(opRegress, err)
	}
	c, err := direct.Solve(a)
	if errors.Is(err, direct.ErrSingularMatrix) {
		return poly.Polynomial{}, fmt.Errorf("%s: normal equations: %w: %w", opRegress, ErrDegenerateFit, err)
	}
	if err != nil {
		return poly.Polynomial{}, fitErrorf(opRegress, err)
	}

	return poly.New(c...), nil
}
