// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numcalc/matrix"
)

const variable = 'x'

var superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// superscript renders a non-negative exponent with Unicode superscript digits.
func superscript(k int) string {
	s := strconv.Itoa(k)
	var b strings.Builder
	for _, d := range s {
		b.WriteRune(superscriptDigits[d-'0'])
	}

	return b.String()
}

// Format renders p for display, highest power first.
//
// Rules:
//   - every coefficient is rounded to DisplayDigits places first; terms that
//     round to 0 are dropped;
//   - a coefficient of magnitude 1 is omitted except on the constant term;
//   - signs join terms as " + " / " - "; a leading negative term starts
//     with "-";
//   - the zero polynomial renders as "0".
//
// Examples: [1 0 1] → "x² + 1", [0 2] → "2x", [3 0 0 -0.5] → "-0.5x³ + 3".
func Format(p Polynomial) string {
	c := p.coeffs()
	var b strings.Builder
	for k := len(c) - 1; k >= 0; k-- {
		v := matrix.RoundTo(c[k], DisplayDigits)
		if v == 0 {
			continue
		}
		neg := v < 0
		mag := math.Abs(v)
		switch {
		case b.Len() == 0 && neg:
			b.WriteByte('-')
		case b.Len() > 0 && neg:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if mag != 1 || k == 0 {
			b.WriteString(strconv.FormatFloat(mag, 'f', -1, 64))
		}
		if k >= 1 {
			b.WriteRune(variable)
		}
		if k >= 2 {
			b.WriteString(superscript(k))
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// Equation renders p as "y = <Format(p)>".
func Equation(p Polynomial) string {
	return "y = " + Format(p)
}
