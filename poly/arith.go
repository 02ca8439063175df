// SPDX-License-Identifier: MIT

package poly

// Add returns p + q. The result has max(p.Len(), q.Len()) coefficients.
func Add(p, q Polynomial) Polynomial {
	a, b := p.coeffs(), q.coeffs()
	if len(a) < len(b) {
		a, b = b, a
	}
	out := append([]float64(nil), a...)
	for k, v := range b {
		out[k] += v
	}

	return Polynomial{c: out}
}

// Scale returns s·p.
func Scale(p Polynomial, s float64) Polynomial {
	a := p.coeffs()
	out := make([]float64, len(a))
	for k, v := range a {
		out[k] = v * s
	}

	return Polynomial{c: out}
}

// Mul returns p·q by direct convolution of the coefficient vectors.
//
// Complexity: O(p.Len()·q.Len()).
func Mul(p, q Polynomial) Polynomial {
	a, b := p.coeffs(), q.coeffs()
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			out[i+j] += x * y
		}
	}

	return Polynomial{c: out}
}

// FromRoots returns the monic polynomial (x − r0)(x − r1)…(x − r_{m−1}).
// With no roots it returns the constant 1.
//
// Implementation:
//   - Multiply in place by one linear factor at a time, highest power first,
//     so a single buffer of len(roots)+1 is used.
func FromRoots(roots ...float64) Polynomial {
	out := make([]float64, len(roots)+1)
	out[0] = 1
	for m, r := range roots {
		// out currently holds a degree-m polynomial; multiply by (x − r).
		for k := m + 1; k > 0; k-- {
			out[k] = out[k-1] - r*out[k]
		}
		out[0] = -r * out[0]
	}

	return Polynomial{c: out}
}
