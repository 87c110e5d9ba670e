// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the
//     canonical implementation in this package.

package sparse

// NewIdentity returns I_n (n×n; ones on the diagonal, nothing elsewhere).
// Deterministic: fixed i-loop, single write per diagonal cell.
// Complexity: O(1) alloc + O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	// Allocate an empty n×n matrix via the strict constructor.
	I, err := New(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal; Set is bounds-safe and cannot fail after the
	// shape validation above.
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1)
	}

	return I, nil
}

// ZerosLike returns a new empty matrix with the same extents as m.
// Handy for staging accumulators with a guaranteed-compatible shape.
// Complexity: O(1).
func ZerosLike(m *Matrix) (*Matrix, error) {
	return New(m.Rows(), m.Cols())
}

// Sum is an alias for Add: a + b.
// Complexity: O(nnz(a) + nnz(b)).
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: a − b.
// Complexity: O(nnz(a) + nnz(b)).
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: the matrix product a × b.
// Complexity: O(nnz(b)) grouping + O(nnz(a) × avg fanout) accumulation.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }
