// SPDX-License-Identifier: MIT

package poly

// Polynomial is an immutable coefficient vector [c0, c1, …, ck] in ascending
// powers of x. The zero value is the zero polynomial.
type Polynomial struct {
	c []float64
}

// New returns the polynomial with the given coefficients, lowest power
// first. The slice is copied and nothing is trimmed: New(1, 0, 0) keeps
// three coefficients. New() is the zero polynomial [0].
func New(coeffs ...float64) Polynomial {
	if len(coeffs) == 0 {
		return Polynomial{c: []float64{0}}
	}

	return Polynomial{c: append([]float64(nil), coeffs...)}
}

// coeffs returns the backing slice, never empty. Callers must not modify it.
func (p Polynomial) coeffs() []float64 {
	if len(p.c) == 0 {
		return []float64{0}
	}

	return p.c
}

// Coeffs returns a copy of the coefficients, lowest power first.
func (p Polynomial) Coeffs() []float64 {
	return append([]float64(nil), p.coeffs()...)
}

// Coeff returns c_k, or 0 when k is negative or beyond the stored length.
func (p Polynomial) Coeff(k int) float64 {
	if k < 0 || k >= len(p.c) {
		return 0
	}

	return p.c[k]
}

// Len is the number of stored coefficients (at least 1).
func (p Polynomial) Len() int { return len(p.coeffs()) }

// Degree is the index of the highest non-zero coefficient; 0 for the zero
// polynomial and for constants.
func (p Polynomial) Degree() int {
	for k := len(p.c) - 1; k > 0; k-- {
		if p.c[k] != 0 {
			return k
		}
	}

	return 0
}

// IsZero reports whether every coefficient is exactly 0.
func (p Polynomial) IsZero() bool {
	for _, v := range p.c {
		if v != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer via Format.
func (p Polynomial) String() string { return Format(p) }
