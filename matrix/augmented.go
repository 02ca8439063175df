// SPDX-License-Identifier: MIT

// Package matrix - Augmented system [A | b].
//
// Purpose:
//   - Hold an n×(n+1) linear system in a single Dense buffer; column n is the
//     right-hand side.
//   - Offer the row primitives the solvers need (swap, scale, axpy-style
//     elimination, reordering) with bounds checks at the public surface.
//   - Provide the diagonal-dominance predicates used by the iterative solver.
//
// Ownership:
//   - NewAugmented copies caller rows; Data() returns a copy. Solvers clone
//     before mutating.

package matrix

import (
	"fmt"
	"math"
)

const (
	opNewAugmented = "NewAugmented"
	opPermute      = "Permute"
	opAddScaled    = "AddScaledRow"
)

// Augmented is an n×(n+1) linear system. Rows are equations; columns 0..n-1
// hold coefficients and column n holds the right-hand side.
type Augmented struct {
	n int    // number of equations / unknowns
	d *Dense // n×(n+1) storage
}

// NewAugmented validates rows and copies them into a fresh Augmented.
//
// Implementation:
//   - Stage 1: n = len(rows) must be ≥ 1 (ErrBadShape).
//   - Stage 2: every row must have exactly n+1 entries (ErrDimensionMismatch).
//   - Stage 3: copy values; under the default policy NaN/±Inf are rejected
//     (ErrNaNInf).
//
// Errors are wrapped as "NewAugmented: row <i>: <sentinel>".
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewAugmented(rows [][]float64, opts ...Option) (*Augmented, error) {
	n := len(rows)
	if n < 1 {
		return nil, fmt.Errorf("%s: %w", opNewAugmented, ErrBadShape)
	}
	d, err := NewDense(n, n+1, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewAugmented, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n+1 {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				opNewAugmented, i, len(rows[i]), n+1, ErrDimensionMismatch)
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j <= n; j++ {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", opNewAugmented, i, err)
			}
		}
	}

	return &Augmented{n: n, d: d}, nil
}

// N returns the number of unknowns (and equations).
func (a *Augmented) N() int { return a.n }

// Rows returns n.
func (a *Augmented) Rows() int { return a.n }

// Cols returns n+1.
func (a *Augmented) Cols() int { return a.n + 1 }

// At returns the entry at (i, j), j == n addressing the right-hand side.
func (a *Augmented) At(i, j int) (float64, error) { return a.d.At(i, j) }

// Set writes the entry at (i, j) subject to the numeric policy.
func (a *Augmented) Set(i, j int, v float64) error { return a.d.Set(i, j, v) }

// Coefficient returns A[i][j] without error reporting. Like slice indexing it
// panics on out-of-range indices; solvers call it inside validated loops.
func (a *Augmented) Coefficient(i, j int) float64 { return a.d.data[i*a.d.c+j] }

// RHS returns b[i], the right-hand side of equation i.
func (a *Augmented) RHS(i int) float64 { return a.d.data[i*a.d.c+a.n] }

// Clone returns an independent deep copy.
func (a *Augmented) Clone() *Augmented {
	return &Augmented{n: a.n, d: a.d.Clone()}
}

// Data returns the system as freshly allocated rows of length n+1.
func (a *Augmented) Data() [][]float64 {
	out := make([][]float64, a.n)
	for i := 0; i < a.n; i++ {
		out[i] = append([]float64(nil), a.d.row(i)...)
	}

	return out
}

// SwapRows exchanges equations i and k (full rows, including the RHS).
func (a *Augmented) SwapRows(i, k int) error { return a.d.swapRows(i, k) }

// ScaleRow multiplies equation i (coefficients and RHS) by s.
func (a *Augmented) ScaleRow(i int, s float64) error { return a.d.scaleRow(i, s) }

// AddScaledRow performs row[dst][j] -= f*row[src][j] for j in from..n.
// Columns before from are left untouched.
//
// Complexity: O(n).
func (a *Augmented) AddScaledRow(dst, src int, f float64, from int) error {
	if dst < 0 || dst >= a.n || src < 0 || src >= a.n || from < 0 || from > a.n {
		return fmt.Errorf("%s(%d,%d,from=%d): %w", opAddScaled, dst, src, from, ErrOutOfRange)
	}
	rd, rs := a.d.row(dst), a.d.row(src)
	for j := from; j <= a.n; j++ {
		rd[j] -= f * rs[j]
	}

	return nil
}

// Permute returns a copy whose row i is the receiver's row perm[i].
//
// Errors:
//   - ErrDimensionMismatch when len(perm) != n.
//   - ErrBadPermutation when perm is not a permutation of 0..n-1.
func (a *Augmented) Permute(perm []int) (*Augmented, error) {
	if len(perm) != a.n {
		return nil, fmt.Errorf("%s: %w", opPermute, ErrDimensionMismatch)
	}
	seen := make([]bool, a.n)
	for _, r := range perm {
		if r < 0 || r >= a.n || seen[r] {
			return nil, fmt.Errorf("%s: %v: %w", opPermute, perm, ErrBadPermutation)
		}
		seen[r] = true
	}

	out := &Augmented{n: a.n, d: &Dense{
		r:              a.d.r,
		c:              a.d.c,
		data:           make([]float64, len(a.d.data)),
		validateNaNInf: a.d.validateNaNInf,
	}}
	for i, r := range perm {
		copy(out.d.row(i), a.d.row(r))
	}

	return out, nil
}

// DominantAt reports whether equation row would be diagonally dominant if it
// were placed at position pos: |A[row][pos]| ≥ Σ_{j≠pos} |A[row][j]| over the
// coefficient block. The predicate depends on (row, pos) only, which is what
// makes ordering searches row-local.
func (a *Augmented) DominantAt(row, pos int) bool {
	r := a.d.row(row)
	var off float64
	for j := 0; j < a.n; j++ {
		if j != pos {
			off += math.Abs(r[j])
		}
	}

	return math.Abs(r[pos]) >= off
}

// IsDiagonallyDominant reports whether every row i satisfies
// |A[i][i]| ≥ Σ_{j≠i} |A[i][j]| over the n×n coefficient block.
//
// Complexity: O(n²).
func IsDiagonallyDominant(a *Augmented) bool {
	if a == nil {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !a.DominantAt(i, i) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (a *Augmented) String() string { return a.d.String() }
