// SPDX-License-Identifier: MIT
// Package sparse: arithmetic kernels — Add, Sub, Mul over two matrices.
//
// Purpose:
//   - Implement the three algebraic operations as pure functions: strict
//     fail-fast validation, a fresh result matrix, operands untouched.
//   - Walk non-zero entries only; never iterate rows×cols.
//
// Determinism:
//   - Entry iteration order is map order and therefore unspecified, but
//     every accumulation is a plain int64 sum, so the final value of each
//     coordinate is independent of summation order.
//
// Numeric policy:
//   - int64 two's-complement wraparound on overflow; no detection.

package sparse

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Use only when err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowEntry is one (col, val) pair inside a row group of the auxiliary
// multiplication index.
type rowEntry struct {
	col int
	val int64
}

// addSub computes out = a + sign·b for sign ∈ {+1, -1}.
// Internal helper shared by Add and Sub: validation, allocation and the
// two accumulation passes are identical for both operations.
//
// Stage 1 (Validate): ValidateBinarySameShape(a, b).
// Stage 2 (Prepare): clone a — the result starts as a's entry set.
// Stage 3 (Execute): fold b's entries in; sums reaching exactly zero are
// removed by the store's zero-aware setter, so cancellation is automatic.
//
// Complexity: O(nnz(a) + nnz(b)) time, O(nnz(result)) space.
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	// Validate shapes match (and operands are non-nil).
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, kernelErrorf(opTag, err)
	}

	// Start from a copy of a; extents carry over unchanged.
	res := a.Clone()

	// Fold b's entries into the result. Coordinates are in-bounds by the
	// shape check, so the store is addressed directly.
	for _, e := range b.Entries() {
		sum := res.store.get(e.Row, e.Col) + sign*e.Val
		res.store.set(e.Row, e.Col, sum) // zero sums vanish here
	}

	return res, nil
}

// Add returns a + b as a fresh matrix; operands are not mutated.
// Requires identical shapes, else ErrDimensionMismatch.
// Entries that cancel to exactly zero are absent from the result.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) {
	return addSub(a, b, 1, opAdd)
}

// Sub returns a − b as a fresh matrix; operands are not mutated.
// Requires identical shapes, else ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) {
	return addSub(a, b, -1, opSub)
}

// Mul returns the matrix product a×b as a fresh (a.Rows × b.Cols) matrix.
// Requires a.Cols() == b.Rows(), else ErrDimensionAlignment.
//
// Stage 1 (Validate): ValidateMulCompatible(a, b).
// Stage 2 (Prepare): group b's entries by row — bIndex[k] lists the
// (j, v) pairs of b's row k. This replaces the naive
// O(nnz(a) × nnz(b)) pairwise scan with O(nnz(a) × fanout(b-row)):
// for each entry of a only the matching row group of b is visited.
// Stage 3 (Execute): for each (i, k, v1) in a, accumulate
// result[i,j] += v1·v2 over every (j, v2) in bIndex[k]. Accumulation is
// plain int64 addition, so the final dot products are order-independent.
//
// Complexity: O(nnz(b)) grouping + O(nnz(a) × avg fanout) accumulation.
func Mul(a, b *Matrix) (*Matrix, error) {
	// Validate alignment (and operands are non-nil).
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Allocate the result; shape is (a.rows × b.cols). Extents are
	// non-negative by construction of the operands, so New cannot fail.
	res, err := New(a.Rows(), b.Cols())
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Build the row-grouped index over b's entries.
	bIndex := make(map[int][]rowEntry, b.Rows())
	for _, e := range b.Entries() {
		bIndex[e.Row] = append(bIndex[e.Row], rowEntry{col: e.Col, val: e.Val})
	}

	// Accumulate products: each entry of a meets only b's matching row.
	for _, e := range a.Entries() {
		group, ok := bIndex[e.Col] // b-rows with no entries contribute nothing
		if !ok {
			continue
		}
		for _, be := range group {
			sum := res.store.get(e.Row, be.col) + e.Val*be.val
			res.store.set(e.Row, be.col, sum) // zero sums vanish here
		}
	}

	return res, nil
}
