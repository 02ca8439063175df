// SPDX-License-Identifier: MIT

package poly

import "github.com/katalvlaran/numcalc/matrix"

// DisplayDigits is the number of decimal places kept by Evaluate and Format.
const DisplayDigits = 4

// EvaluateRaw returns Σ c_k·x^k by Horner's scheme without rounding.
//
// Complexity: O(p.Len()).
func EvaluateRaw(p Polynomial, x float64) float64 {
	c := p.coeffs()
	y := c[len(c)-1]
	for k := len(c) - 2; k >= 0; k-- {
		y = y*x + c[k]
	}

	return y
}

// Evaluate returns EvaluateRaw(p, x) rounded to DisplayDigits decimal places.
// The function is pure: the same p and x always give the same value.
func Evaluate(p Polynomial, x float64) float64 {
	return matrix.RoundTo(EvaluateRaw(p, x), DisplayDigits)
}

// EvaluateAll applies Evaluate to every point of xs, preserving order.
func EvaluateAll(p Polynomial, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Evaluate(p, x)
	}

	return out
}
