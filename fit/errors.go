// SPDX-License-Identifier: MIT

package fit

import "errors"

var (
	// ErrDuplicateAbscissa: two retained observations share the same x, so no
	// interpolating polynomial exists.
	ErrDuplicateAbscissa = errors.New("fit: duplicate abscissa")

	// ErrDegenerateFit: a regression cannot be determined (fewer than two
	// retained observations, a zero denominator, or singular normal equations).
	ErrDegenerateFit = errors.New("fit: degenerate fit")

	// ErrUnsupportedDegree: regression degree other than 1 or 2.
	ErrUnsupportedDegree = errors.New("fit: unsupported regression degree")

	// ErrNoObservations: an operation needs at least one complete observation.
	ErrNoObservations = errors.New("fit: no complete observations")
)
