// SPDX-License-Identifier: MIT

package calc

import "errors"

// ErrUnknownKind is returned for a Job whose Kind is not one of the Kind
// constants.
var ErrUnknownKind = errors.New("calc: unknown job kind")
