// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the solvers built on top of it. Solvers MUST return these
// sentinels (possibly wrapped with an operation tag) and tests MUST check them
// via errors.Is. No exported function panics on user-supplied data.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Do not %w wrap these sentinels where they are created; wrap at the outer
// boundary with fmt.Errorf("ctx: %w", ErrX) and callers still match with
// errors.Is.
//
// ERROR PRIORITY (enforced in NewAugmented, covered by tests):
// nil -> shape -> row length -> NaN/Inf.

var (
	// ErrBadShape is returned when the requested system has no equations
	// (n < 1) or a dense shape is non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a ragged row (len != n+1 in an augmented
	// system), a permutation of the wrong length or a vector of wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadPermutation is returned by Permute when the index vector is not a
	// permutation of 0..n-1.
	ErrBadPermutation = errors.New("matrix: invalid permutation")
)
