// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numcalc/matrix"
)

const (
	opSolve = "Solve"

	// zeroPivot is the exact magnitude that marks a column without a usable pivot.
	zeroPivot = 0.0
)

// directErrorf wraps err with an operation tag, preserving it for errors.Is.
func directErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve returns x with A·x = b for the augmented system a = [A | b].
//
// Implementation:
//   - Stage 1: validate a (non-nil, finite) and clone it; a is never mutated.
//   - Stage 2: forward elimination. For pivot column i pick the row in i..n-1
//     with the largest |A[k][i]| (strict '>' scan, earliest row wins ties);
//     fail with ErrSingularMatrix when that magnitude is exactly 0; swap the
//     full rows; for each k > i subtract factor·row[i] from row[k] on columns
//     i+1..n and force A[k][i] to exactly 0.
//   - Stage 3: back-substitution x[i] = (b[i] − Σ_{k>i} A[i][k]·x[k]) / A[i][i].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (validation).
//   - ErrSingularMatrix (zero pivot).
//
// Determinism:
//   - Fixed loop orders; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a *matrix.Augmented) (matrix.Vector, error) {
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, directErrorf(opSolve, err)
	}
	w := a.Clone()
	n := w.N()

	var (
		i, k, p    int
		best, mag  float64
		pivot, fac float64
		err        error
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: largest magnitude in column i at or below the diagonal.
		p, best = i, math.Abs(w.Coefficient(i, i))
		for k = i + 1; k < n; k++ {
			if mag = math.Abs(w.Coefficient(k, i)); mag > best {
				p, best = k, mag
			}
		}
		if best == zeroPivot {
			return nil, directErrorf(opSolve, fmt.Errorf("column %d: %w", i, ErrSingularMatrix))
		}
		if err = w.SwapRows(i, p); err != nil {
			return nil, directErrorf(opSolve, err)
		}

		pivot = w.Coefficient(i, i)
		for k = i + 1; k < n; k++ {
			fac = w.Coefficient(k, i) / pivot
			if fac == 0 {
				continue
			}
			if err = w.AddScaledRow(k, i, fac, i+1); err != nil {
				return nil, directErrorf(opSolve, err)
			}
			// The eliminated entry is set, not computed, to keep rounding noise out.
			if err = w.Set(k, i, 0); err != nil {
				return nil, directErrorf(opSolve, err)
			}
		}
	}

	return backSubstitute(w), nil
}

// backSubstitute solves the upper-triangular system left by elimination.
// Pivots are non-zero by construction.
func backSubstitute(u *matrix.Augmented) matrix.Vector {
	n := u.N()
	x := make(matrix.Vector, n)

	var (
		i, k int
		sum  float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = u.RHS(i)
		for k = i + 1; k < n; k++ {
			sum -= u.Coefficient(i, k) * x[k]
		}
		x[i] = sum / u.Coefficient(i, i)
	}

	return x
}

// SolveRows is a convenience wrapper building the augmented system from rows.
//
// Errors: those of matrix.NewAugmented and Solve.
func SolveRows(rows [][]float64) (matrix.Vector, error) {
	a, err := matrix.NewAugmented(rows)
	if err != nil {
		return nil, directErrorf(opSolve, err)
	}

	return Solve(a)
}
