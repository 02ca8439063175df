// SPDX-License-Identifier: MIT

// Package iterative solves square linear systems by Gauss–Seidel relaxation,
// reordering equations first so that the coefficient block is diagonally
// dominant.
//
// 🚀 Pipeline:
//
//  1. Dominance check: if every row already satisfies
//     |A[i][i]| ≥ Σ_{j≠i} |A[i][j]| the system is used as given.
//  2. Ordering search (FindDominantOrder): up to the brute-force limit
//     (default 7 equations) permutations of the rows are generated in
//     lexicographic order (first position fixed outward, starting from the
//     original row order) and the first dominant one wins. Larger systems use
//     bipartite matching between equations and positions, which finds a
//     dominant ordering iff one exists. No ordering ⇒ ErrNotDiagonallyDominant.
//  3. Relaxation from the zero vector, sweeping unknowns in increasing index
//     order and reusing values already updated in the same sweep. Stops when
//     the largest component change drops below the tolerance (default 1e-5)
//     or after the iteration cap (default 100).
//  4. The iterate is rounded to 4 decimal digits (configurable).
//
// ⚠ Iteration cap:
//
//	Reaching the cap is NOT an error: the last iterate is returned as a best
//	effort. Callers must consult Report.Converged to tell a converged answer
//	from an exhausted budget.
//
// Complexity:
//
//	Search: O(n!·n) worst case for the brute-force path (n ≤ limit; 5040
//	orderings at n = 7), O(n³) for matching. Relaxation: O(iters·n²).
//	The search honours context cancellation between candidate placements.
package iterative
