// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numcalc/matrix"
)

// Observation is one (x, y) data row. A nil side is a missing value.
type Observation struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
}

// At returns a complete observation.
func At(x, y float64) Observation {
	return Observation{X: &x, Y: &y}
}

// Complete reports whether both X and Y are present.
func (o Observation) Complete() bool {
	return o.X != nil && o.Y != nil
}

// String renders the observation as "(x, y)" with "?" for a missing side.
func (o Observation) String() string {
	side := func(v *float64) string {
		if v == nil {
			return "?"
		}
		return fmt.Sprintf("%g", *v)
	}

	return "(" + side(o.X) + ", " + side(o.Y) + ")"
}

// Retain returns the complete observations of obs in input order.
func Retain(obs []Observation) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.Complete() {
			out = append(out, o)
		}
	}

	return out
}

// points splits the complete observations into parallel x and y slices.
//
// Errors:
//   - matrix.ErrNaNInf when a retained value is not finite.
func points(obs []Observation) (xs, ys []float64, err error) {
	xs = make([]float64, 0, len(obs))
	ys = make([]float64, 0, len(obs))
	for i, o := range obs {
		if !o.Complete() {
			continue
		}
		x, y := *o.X, *o.Y
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, nil, fmt.Errorf("observation %d: %w", i, matrix.ErrNaNInf)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys, nil
}
