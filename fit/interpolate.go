// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"

	"github.com/katalvlaran/numcalc/poly"
)

const opInterpolate = "Interpolate"

// Interpolate returns the polynomial of degree at most k−1 passing through
// the k complete observations of obs.
//
// Implementation:
//   - Stage 1: retain complete observations; reject non-finite values and
//     repeated x.
//   - Stage 2: for each i build the basis numerator Π_{j≠i}(x − x_j) with
//     poly.FromRoots and its denominator Π_{j≠i}(x_i − x_j).
//   - Stage 3: accumulate Σ (y_i / denominator_i)·numerator_i with poly.Scale
//     and poly.Add.
//
// Behavior highlights:
//   - k = 0 gives the zero polynomial [0]; k = 1 gives the constant [y0].
//
// Errors:
//   - ErrDuplicateAbscissa when two retained observations share x.
//   - matrix.ErrNaNInf for a non-finite retained value.
//
// Complexity:
//   - Time O(k³), Space O(k).
func Interpolate(obs []Observation) (poly.Polynomial, error) {
	xs, ys, err := points(obs)
	if err != nil {
		return poly.Polynomial{}, fmt.Errorf("%s: %w", opInterpolate, err)
	}
	k := len(xs)
	switch k {
	case 0:
		return poly.New(0), nil
	case 1:
		return poly.New(ys[0]), nil
	}

	seen := make(map[float64]int, k)
	for i, x := range xs {
		if j, dup := seen[x]; dup {
			return poly.Polynomial{}, fmt.Errorf("%s: x=%g at points %d and %d: %w", opInterpolate, x, j, i, ErrDuplicateAbscissa)
		}
		seen[x] = i
	}

	var (
		acc   = poly.New(0)
		roots = make([]float64, 0, k-1)
		den   float64
	)
	for i := 0; i < k; i++ {
		roots, den = roots[:0], 1
		for j := 0; j < k; j++ {
			if j == i {
				continue
			}
			roots = append(roots, xs[j])
			den *= xs[i] - xs[j]
		}
		acc = poly.Add(acc, poly.Scale(poly.FromRoots(roots...), ys[i]/den))
	}

	return acc, nil
}
