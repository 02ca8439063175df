// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// maxRoundScale bounds |v·10^digits| for RoundTo. Beyond 2^52 every float64
// is already an integer at that scale, so rounding is the identity.
const maxRoundScale = 1 << 52

// RoundTo rounds v to the given number of decimal digits, halves away from
// zero. Negative zero is normalised to 0 so that display values compare
// equal. NaN and ±Inf are returned unchanged; digits < 0 is treated as 0.
func RoundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if digits < 0 {
		digits = 0
	}
	p := math.Pow(10, float64(digits))
	s := v * p
	if math.Abs(s) >= maxRoundScale || math.IsInf(s, 0) {
		return v
	}
	r := math.Round(s) / p
	if r == 0 {
		return 0 // drop the sign of -0
	}

	return r
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return append(Vector(nil), v...)
}

// Round returns a copy of v with every component passed through RoundTo.
func (v Vector) Round(digits int) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = RoundTo(x, digits)
	}

	return out
}

// MaxAbsDiff returns max_i |v[i] − w[i]|, the convergence measure of the
// iterative solver. A NaN component difference yields NaN, so a diverged
// iterate never compares below a tolerance.
//
// Errors:
//   - ErrDimensionMismatch when lengths differ.
func (v Vector) MaxAbsDiff(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, fmt.Errorf("MaxAbsDiff: len %d vs %d: %w", len(v), len(w), ErrDimensionMismatch)
	}
	var m float64
	for i := range v {
		d := math.Abs(v[i] - w[i])
		if math.IsNaN(d) {
			return d, nil
		}
		if d > m {
			m = d
		}
	}

	return m, nil
}

// Residual returns max_i |Σ_j A[i][j]·x[j] − b[i]| for the system a.
//
// Errors:
//   - ErrNilMatrix when a is nil; ErrDimensionMismatch when len(x) != n.
func Residual(a *Augmented, x Vector) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	if err := ValidateVecLen(x, a.n); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	var worst float64
	for i := 0; i < a.n; i++ {
		r := a.d.row(i)
		sum := -r[a.n]
		for j := 0; j < a.n; j++ {
			sum += r[j] * x[j]
		}
		if d := math.Abs(sum); d > worst {
			worst = d
		}
	}

	return worst, nil
}
