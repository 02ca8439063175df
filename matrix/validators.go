// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the system reference is non-nil.
//
// Returns ErrNilMatrix if a == nil.
// Complexity: O(1).
func ValidateNotNil(a *Augmented) error {
	if a == nil || a.d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every entry of a and reports the first non-finite one.
// Systems built with WithNoValidateNaNInf can hold NaN/Inf; solvers that
// require finite input call this explicitly.
//
// Complexity: O(n²).
func ValidateFinite(a *Augmented) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	for idx, v := range a.d.data {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", idx/a.d.c, idx%a.d.c), ErrNaNInf)
		}
	}

	return nil
}
