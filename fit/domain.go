// SPDX-License-Identifier: MIT

package fit

import "github.com/katalvlaran/numcalc/poly"

// DefaultPad widens the chart domain on both sides of the data.
const DefaultPad = 2.0

// Domain returns [min x − pad, max x + pad] over the complete observations.
//
// Errors:
//   - ErrNoObservations when nothing is retained.
//   - matrix.ErrNaNInf for a non-finite retained value.
func Domain(obs []Observation, pad float64) (from, to float64, err error) {
	xs, _, err := points(obs)
	if err != nil {
		return 0, 0, fitErrorf("Domain", err)
	}
	if len(xs) == 0 {
		return 0, 0, fitErrorf("Domain", ErrNoObservations)
	}
	from, to = xs[0], xs[0]
	for _, x := range xs[1:] {
		from = min(from, x)
		to = max(to, x)
	}

	return from - pad, to + pad, nil
}

// Curve samples p over Domain(obs, DefaultPad) every poly.DefaultStep.
func Curve(p poly.Polynomial, obs []Observation) ([]poly.Point, error) {
	from, to, err := Domain(obs, DefaultPad)
	if err != nil {
		return nil, err
	}
	pts, err := poly.Sample(p, from, to, poly.DefaultStep)
	if err != nil {
		return nil, fitErrorf("Curve", err)
	}

	return pts, nil
}
