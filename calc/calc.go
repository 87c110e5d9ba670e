// SPDX-License-Identifier: MIT
// Package calc: Load / Operate / Render / Save facades.
//
// Purpose:
//   - Give the interactive shell a four-call surface over the engine.
//   - Each facade delegates to the canonical implementation; errors
//     bubble as the underlying package sentinels.

package calc

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/codec"
	"github.com/katalvlaran/sparsemat/sparse"
)

// Load reads one matrix from the file at path.
// Failures: codec.ErrSourceUnavailable for I/O, codec.ErrMalformedHeader /
// codec.ErrMalformedEntry / codec.ErrEntryOutOfBounds for format.
// Complexity: O(file size + nnz).
func Load(path string) (*sparse.Matrix, error) {
	return codec.Load(path)
}

// Operate runs op over a and b and returns a fresh result matrix;
// operands are never mutated. Shape failures arrive as
// sparse.ErrDimensionMismatch (Add/Subtract) or
// sparse.ErrDimensionAlignment (Multiply).
// Complexity: that of the selected sparse kernel.
func Operate(op Op, a, b *sparse.Matrix) (*sparse.Matrix, error) {
	switch op {
	case OpAdd:
		return sparse.Add(a, b)
	case OpSubtract:
		return sparse.Sub(a, b)
	case OpMultiply:
		return sparse.Mul(a, b)
	default:
		return nil, fmt.Errorf("%d: %w", int(op), ErrUnknownOp)
	}
}

// Render returns m in the wire text format.
// Complexity: O(nnz log nnz).
func Render(m *sparse.Matrix) (string, error) {
	return codec.Render(m)
}

// Save writes m in the wire text format to the file at path.
// Complexity: O(nnz log nnz) encode + one file write.
func Save(path string, m *sparse.Matrix) error {
	return codec.Save(path, m)
}
