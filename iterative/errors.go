// SPDX-License-Identifier: MIT

package iterative

import "errors"

// ErrNotDiagonallyDominant is returned when no ordering of the equations makes
// the coefficient block diagonally dominant.
var ErrNotDiagonallyDominant = errors.New("iterative: no diagonally dominant row ordering")

// ErrZeroRow is returned when an equation has an all-zero coefficient row.
// Such a row is trivially dominant, yet leaves its unknown undetermined.
var ErrZeroRow = errors.New("iterative: zero coefficient row")
