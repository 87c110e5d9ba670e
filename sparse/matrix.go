// SPDX-License-Identifier: MIT
// Package sparse: the Matrix type — fixed extents around an entry store.
//
// Purpose:
//   - Enforce bounds on every read/write; the store itself is unbounded.
//   - Give arithmetic kernels and the codec a single, value-like unit:
//     extents are set at construction and never mutated afterwards.

package sparse

import "fmt"

// matrixErrorf wraps an underlying error with method context, preserving
// the sentinel for errors.Is. Use only when err != nil.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a sparse rows×cols matrix of int64 values. Only non-zero
// entries occupy storage. The zero value is not ready to use; construct
// via New or the kernels in this package.
type Matrix struct {
	rows, cols int        // fixed extents, set at construction
	store      entryStore // non-zero entries only
}

// New creates an empty rows×cols Matrix.
// Stage 1 (Validate): extents must be non-negative; zero is legal.
// Stage 2 (Finalize): allocate an empty store and return.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	// Validate extents; a negative extent is a caller programming error.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// Return the initialized matrix with an empty store.
	return &Matrix{rows: rows, cols: cols, store: newEntryStore()}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols
}

// NNZ returns the number of stored non-zero entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return m.store.size()
}

// checkBounds validates 0 ≤ row < rows and 0 ≤ col < cols.
// Complexity: O(1).
func (m *Matrix) checkBounds(method string, row, col int) error {
	// Validate the row index.
	if row < 0 || row >= m.rows {
		return matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate the column index.
	if col < 0 || col >= m.cols {
		return matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return nil
}

// At retrieves the value at (row, col); absent coordinates read as 0.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): delegate to the store.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int64, error) {
	if err := m.checkBounds("At", row, col); err != nil {
		return 0, err
	}

	return m.store.get(row, col), nil
}

// Set assigns v at (row, col). Writing 0 removes any existing entry at
// the coordinate (the store never holds zeros).
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): delegate to the store's zero-aware setter.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v int64) error {
	if err := m.checkBounds("Set", row, col); err != nil {
		return err
	}
	m.store.set(row, col, v)

	return nil
}

// Entries returns an unordered snapshot of all non-zero entries. The
// slice is independent of the matrix: restartable iteration, unaffected
// by later Set calls.
// Complexity: O(nnz) time and space.
func (m *Matrix) Entries() []Entry {
	return m.store.entries()
}

// SortedEntries returns all non-zero entries ordered by ascending row,
// then ascending column — the canonical order for serialization.
// Complexity: O(nnz log nnz).
func (m *Matrix) SortedEntries() []Entry {
	return m.store.sortedEntries()
}

// Clone returns a deep copy: same extents, independent store.
// Complexity: O(nnz) time and space.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, store: m.store.clone()}
}
