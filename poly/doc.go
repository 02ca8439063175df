// SPDX-License-Identifier: MIT

// Package poly provides an immutable real polynomial in monomial form
// together with the operations numcalc needs around it: construction,
// arithmetic used to expand interpolants, evaluation, display formatting and
// sampling for chart data.
//
// Representation:
//
//	A Polynomial holds coefficients [c0, c1, …, ck] for
//	c0 + c1·x + c2·x² + … + ck·x^k. Coefficients are copied on the way in and
//	on the way out; a Polynomial is never modified after construction and is
//	safe for concurrent use.
//
// Evaluation:
//
//	Evaluate uses Horner's scheme and rounds the result to DisplayDigits
//	decimal places (halves away from zero, -0 reported as 0). EvaluateRaw
//	skips the rounding. NaN and ±Inf propagate unchanged.
//
// Formatting:
//
//	Format writes terms from the highest power down, drops terms whose
//	rounded coefficient is zero, omits unit coefficients and renders
//	exponents as superscripts: "x² + 1", "2x", "-0.5x³ + 3".
package poly
