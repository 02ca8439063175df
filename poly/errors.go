// SPDX-License-Identifier: MIT

package poly

import "errors"

// ErrBadRange is returned by Sample when the interval or step cannot produce
// a finite series (non-finite bounds, to < from, step ≤ 0).
var ErrBadRange = errors.New("poly: invalid sampling range")
