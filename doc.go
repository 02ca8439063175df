// Package numcalc is a small numerical-methods toolkit: square linear
// systems, polynomial interpolation and least-squares regression, with a
// batch engine and a command-line front end on top.
//
// What is in the box?
//
//	• matrix/    - augmented systems [A | b], vectors, rounding, residuals
//	• direct/    - Gaussian elimination with partial pivoting
//	• iterative/ - Gauss–Seidel with automatic reordering into a diagonally
//	               dominant system (permutation search or bipartite matching)
//	• poly/      - immutable polynomials: arithmetic, Horner evaluation,
//	               display formatting, chart sampling
//	• fit/       - Lagrange interpolation and degree 1/2 least squares over
//	               observations with missing values
//	• calc/      - jobs, a concurrent batch runner, logging and metrics hooks
//	• cmd/numcalc - CLI: solve, interpolate, regress, eval, batch
//
// Quick example:
//
//	a, _ := matrix.NewAugmented([][]float64{{1, 4, 6}, {4, 1, 7}})
//	x, rep, _ := iterative.Solve(ctx, a)
//	// x = [1.4667 1.1333], rep.Order.Perm = [1 0], rep.Converged = true
//
//	p, _ := fit.Interpolate([]fit.Observation{fit.At(1, 1), fit.At(2, 4), fit.At(3, 9)})
//	poly.Format(p)      // "x²"
//	poly.Evaluate(p, 4) // 16
//
// Every library package is synchronous and free of package-level mutable
// state; errors are sentinel values matched with errors.Is.
package numcalc
