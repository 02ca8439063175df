// SPDX-License-Identifier: MIT

// Package direct solves square linear systems by Gaussian elimination with
// partial pivoting followed by back-substitution.
//
// What & Why:
//
//	Solve is the deterministic reference solver of numcalc. It is used on its
//	own (the 3×3 normal equations of quadratic regression) and to verify the
//	iterative solver.
//
// Pivoting:
//
//	For each column the row with the largest |A[k][i]| among the remaining
//	rows becomes the pivot row; on ties the earliest row wins. A best
//	magnitude of exactly 0 reports ErrSingularMatrix.
//
// Limitations:
//
//	Only an exact zero pivot is detected. A system without a unique solution
//	whose elimination never produces an exact zero pivot (rounding leaves a
//	tiny non-zero) yields an arbitrary numeric answer. No rank or consistency
//	diagnosis is attempted; callers that need one should inspect
//	matrix.Residual on the result.
//
// Complexity:
//
//	Time O(n³), Space O(n²) for the private working copy.
package direct
