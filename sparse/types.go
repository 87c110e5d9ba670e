// SPDX-License-Identifier: MIT

// Package sparse: domain types shared across the store, the Matrix
// wrapper and the arithmetic kernels. Errors live in errors.go per the
// package conventions.
package sparse

// coord is the (row, col) key of a stored entry. Using a small comparable
// struct keeps the map key compact and hash-friendly.
// Complexity: O(1) to build; used in O(nnz) scans during arithmetic.
type coord struct {
	r int // row index, 0-based
	c int // column index, 0-based
}

// Entry is one non-zero cell exposed by iteration: its coordinates and
// stored value. Val is never 0 for entries produced by this package.
type Entry struct {
	Row int   // row index, 0 ≤ Row < Rows()
	Col int   // column index, 0 ≤ Col < Cols()
	Val int64 // stored value, always non-zero
}
