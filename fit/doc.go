// SPDX-License-Identifier: MIT

// Package fit builds polynomials from (x, y) observations, either by exact
// interpolation through every point or by least-squares regression of
// degree 1 or 2.
//
// Observations:
//
//	An Observation carries optional X and Y. Rows where either side is
//	missing are skipped by every builder, so adding or removing incomplete
//	rows never changes a result. Retained values must be finite.
//
// Interpolation:
//
//	Interpolate expands the Lagrange form Σ y_i·Π_{j≠i}(x − x_j)/(x_i − x_j)
//	numerically into monomial coefficients. k retained points give a
//	polynomial of degree at most k−1; no points give the zero polynomial.
//
// Regression:
//
//	Degree 1 uses the closed form from the sums n, Σx, Σy, Σxy, Σx².
//	Degree 2 solves the 3×3 normal equations with direct.Solve. A zero
//	denominator or a singular normal matrix reports ErrDegenerateFit.
//
// Chart data:
//
//	Domain and Curve reproduce the series the calculator plotted: the fitted
//	polynomial sampled every poly.DefaultStep over [min x − 2, max x + 2].
package fit
