// SPDX-License-Identifier: MIT

package iterative

import (
	"context"
	"fmt"

	"github.com/katalvlaran/numcalc/matrix"
)

const opSolve = "Solve"

// Solve approximates x with A·x = b for the augmented system a = [A | b].
//
// Implementation:
//   - Stage 1: validate a (non-nil, finite).
//   - Stage 2: FindDominantOrder; reorder a copy of the equations (a itself is
//     never mutated).
//   - Stage 3: Gauss–Seidel sweeps from x = 0:
//     x[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i], i ascending, in place,
//     so x[j] for j < i already holds this sweep's value.
//     Stop when max |Δx| < tolerance or after the iteration cap.
//   - Stage 4: round to the configured digits.
//
// Behavior highlights:
//   - Reaching the cap returns the last iterate with Report.Converged=false
//     and a nil error.
//   - The returned Report is filled even on ordering failures (Order.Steps).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (validation).
//   - ErrNotDiagonallyDominant, ctx.Err() (ordering search).
//   - ErrZeroRow when a dominant ordering contains an all-zero equation.
//
// Complexity:
//   - Time O(search + iters·n²), Space O(n²) for the reordered copy.
func Solve(ctx context.Context, a *matrix.Augmented, opts ...Option) (matrix.Vector, Report, error) {
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, Report{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	o := gatherOptions(opts...)

	order, err := FindDominantOrder(ctx, a, opts...)
	if err != nil {
		return nil, Report{Order: order}, fmt.Errorf("%s: %w", opSolve, err)
	}
	w, err := a.Permute(order.Perm)
	if err != nil {
		return nil, Report{Order: order}, fmt.Errorf("%s: %w", opSolve, err)
	}

	// Dominance with a zero diagonal means the whole coefficient row is zero.
	n := w.N()
	for i := 0; i < n; i++ {
		if w.Coefficient(i, i) == 0 {
			return nil, Report{Order: order}, fmt.Errorf("%s: equation %d: %w", opSolve, order.Perm[i], ErrZeroRow)
		}
	}

	x, rep := relax(w, o)
	rep.Order = order
	if o.digits != noRounding {
		x = x.Round(o.digits)
	}

	return x, rep, nil
}

// relax runs Gauss–Seidel sweeps on a system with a non-zero diagonal.
func relax(w *matrix.Augmented, o Options) (matrix.Vector, Report) {
	n := w.N()
	x := make(matrix.Vector, n)
	prev := make(matrix.Vector, n)

	var (
		iter, i, j int
		sum, delta float64
		rep        Report
	)
	for iter = 1; iter <= o.maxIter; iter++ {
		copy(prev, x)
		for i = 0; i < n; i++ {
			sum = w.RHS(i)
			for j = 0; j < n; j++ {
				if j != i {
					sum -= w.Coefficient(i, j) * x[j]
				}
			}
			x[i] = sum / w.Coefficient(i, i)
		}
		// lengths match by construction
		delta, _ = x.MaxAbsDiff(prev)
		rep.Iterations, rep.Residual = iter, delta
		if delta < o.tol {
			rep.Converged = true
			break
		}
	}

	return x, rep
}

// SolveRows is a convenience wrapper building the augmented system from rows.
func SolveRows(ctx context.Context, rows [][]float64, opts ...Option) (matrix.Vector, Report, error) {
	a, err := matrix.NewAugmented(rows)
	if err != nil {
		return nil, Report{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return Solve(ctx, a, opts...)
}
