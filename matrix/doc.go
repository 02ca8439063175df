// SPDX-License-Identifier: MIT

// Package matrix provides the numeric containers shared by the solvers:
// a row-major Dense grid, the Augmented n×(n+1) system [A | b] and the
// Vector type holding solutions.
//
// What & Why:
//
//	Every solver in numcalc receives its input as an Augmented matrix and
//	returns a Vector. Keeping the containers in one package lets the direct
//	and iterative solvers share validation (shape, finite values), row
//	operations (swap, scale, permute) and the diagonal-dominance predicate.
//
// Ownership:
//
//	Constructors copy caller data. Solvers operate on Clone()s, so an
//	Augmented passed to a solver is never mutated.
//
// Complexity:
//
//	At/Set/Coefficient/RHS are O(1); SwapRows and ScaleRow are O(n);
//	Clone, Permute and IsDiagonallyDominant are O(n²).
package matrix
