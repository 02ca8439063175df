// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numcalc/fit"
)

// parseFloats reads a comma-separated list such as "4, 1, 5".
func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d of %q: %w", i+1, s, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseRows reads one augmented row per element.
func parseRows(rows []string) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		v, err := parseFloats(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// parsePoint reads "x,y". Either side may be empty, marking it missing:
// "3," has no y and "," is an empty row.
func parsePoint(s string) (fit.Observation, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fit.Observation{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := optionalFloat(xs)
	if err != nil {
		return fit.Observation{}, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := optionalFloat(ys)
	if err != nil {
		return fit.Observation{}, fmt.Errorf("point %q: y: %w", s, err)
	}

	return fit.Observation{X: x, Y: y}, nil
}

func optionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func parsePoints(points []string) ([]fit.Observation, error) {
	out := make([]fit.Observation, len(points))
	for i, p := range points {
		o, err := parsePoint(p)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}

	return out, nil
}
