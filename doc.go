// Package sparsemat is a compact engine for sparse integer matrices:
// load them from a plain text format, combine them algebraically, and
// write the result back out byte-for-byte reproducibly.
//
// 🚀 What is sparsemat?
//
//	A small, focused library built from three layers:
//		• sparse/ — the coordinate store, the Matrix type and the
//		  arithmetic kernels (Add, Sub, Mul over non-zero entries only)
//		• codec/  — the strict text serializer/deserializer for the
//		  "rows=/cols=/(r, c, v)" file format
//		• calc/   — the thin load → operate → render contract consumed
//		  by the interactive shell in cmd/spmcalc
//
// ✨ Why choose sparsemat?
//
//   - Sparse by construction – only non-zero entries are ever stored;
//     results that cancel to zero vanish automatically
//   - Rock-solid guarantees – every mutation is bounds-checked, every
//     failure is a typed sentinel matchable with errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – serialization is row-major sorted, so identical
//     matrices always produce identical files
//
// Under the hood, everything is organized under three subpackages:
//
//	sparse/ — entry store, Matrix type, Add/Sub/Mul kernels & validators
//	codec/  — text format encoder/decoder with strict validation
//	calc/   — operation selector plus Load/Operate/Render/Save facades
//
// Quick example of the wire format:
//
//	rows=3
//	cols=3
//	(0, 0, 5)
//	(1, 2, -7)
//	(2, 1, 4)
//
// Dive into the per-package docs for the full contracts and error sets.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
