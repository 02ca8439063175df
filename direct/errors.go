// SPDX-License-Identifier: MIT

package direct

import "errors"

// ErrSingularMatrix is returned when the best available pivot in some column
// is exactly zero, i.e. the system has no unique solution.
var ErrSingularMatrix = errors.New("direct: singular matrix")
