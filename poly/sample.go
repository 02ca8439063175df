// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
)

const (
	// DefaultStep is the x spacing of chart series.
	DefaultStep = 0.5

	// maxSamples bounds the length of a sampled series.
	maxSamples = 1 << 20
)

// Point is one (x, y) pair of a sampled series.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Sample evaluates p at x = from + i·step for i = 0 … ⌈(to − from)/step⌉ − 1.
// The upper bound is reached only when it is not a whole number of steps
// away from from; from == to yields an empty series. Y values are rounded
// like Evaluate.
//
// Errors:
//   - ErrBadRange for non-finite bounds or step, to < from, step ≤ 0, or a
//     series longer than 2^20 points.
func Sample(p Polynomial, from, to, step float64) ([]Point, error) {
	for _, v := range [...]float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Sample: non-finite argument: %w", ErrBadRange)
		}
	}
	if to < from || step <= 0 {
		return nil, fmt.Errorf("Sample: [%g, %g] step %g: %w", from, to, step, ErrBadRange)
	}
	count := math.Ceil((to - from) / step)
	if count > maxSamples {
		return nil, fmt.Errorf("Sample: %g points: %w", count, ErrBadRange)
	}

	n := int(count)
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		x := from + float64(i)*step
		out[i] = Point{X: x, Y: Evaluate(p, x)}
	}

	return out, nil
}
