// Package sparse implements the coordinate-keyed sparse matrix core:
// an entry store that never holds zeros, a bounds-checked Matrix wrapper,
// and pure arithmetic kernels over non-zero entries.
//
// What:
//
//   - Matrix wraps a (row, col) → value store with fixed extents set at
//     construction; only non-zero int64 values are ever stored.
//   - Add / Sub combine two equal-shape matrices entry-by-entry; results
//     that cancel to exactly zero disappear from the result store.
//   - Mul multiplies aligned matrices using a row-grouped index over the
//     right operand, scanning non-zero entries only.
//   - All kernels allocate a fresh result; operands are never mutated.
//
// Why:
//
//   - Large mostly-empty matrices: memory scales with non-zero count,
//     not with rows×cols.
//   - Deterministic pipelines: SortedEntries gives a stable row-major
//     view for serialization and comparison.
//
// Complexity (nnz = number of stored non-zero entries):
//
//   - At/Set:            O(1).
//   - Add/Sub:           O(nnz(a) + nnz(b)).
//   - Mul:               O(nnz(a) × avg row fanout of b), after an
//     O(nnz(b)) grouping pass.
//   - SortedEntries:     O(nnz log nnz).
//
// Errors:
//
//   - ErrInvalidDimensions: construction with a negative extent.
//   - ErrIndexOutOfBounds: At/Set outside [0,rows)×[0,cols).
//   - ErrDimensionMismatch: Add/Sub on unequal shapes.
//   - ErrDimensionAlignment: Mul where left cols ≠ right rows.
//   - ErrNilMatrix: nil operand passed to a kernel.
//
// Overflow policy: values are int64 and arithmetic follows Go's
// two's-complement wraparound; no overflow detection is performed.
package sparse
