// SPDX-License-Identifier: MIT
// Package sparse: canonical validation checks shared by the kernels.
//
// Purpose:
//   - Provide a single source of truth for nil/shape/alignment guards.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with an operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package sparse

import "fmt"

// validatorErrorf tags an underlying sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → equal shape.
// Used by Add/Sub. Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateBinarySameShape", ErrDimensionMismatch)
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Used by Mul. Returns ErrNilMatrix or ErrDimensionAlignment.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionAlignment)
	}
	return nil
}
