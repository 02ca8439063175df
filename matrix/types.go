// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the small value types used by the solvers. Errors
// and options live in dedicated files (errors.go, options.go).
package matrix

// Vector is an ordered sequence of reals, one per unknown, index-aligned with
// the column order of the system it solves.
type Vector []float64
