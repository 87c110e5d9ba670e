// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. Do not re-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix extents are negative.
	// Zero extents are legal: a 0×n or n×0 matrix simply holds no entries.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be non-negative")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// matrix extents. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates Add/Sub operands of unequal shape.
	ErrDimensionMismatch = errors.New("sparse: matrix dimensions must match")

	// ErrDimensionAlignment indicates a multiplication where left.Cols() does
	// not equal right.Rows(). Kept distinct from ErrDimensionMismatch so
	// callers can tell the two shape failures apart without string parsing.
	ErrDimensionAlignment = errors.New("sparse: matrix dimensions not aligned for multiplication")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
