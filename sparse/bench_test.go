// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

// buildBenchMatrix fills an n×n matrix with nnz deterministic entries
// scattered via a fixed stride so runs are reproducible.
func buildBenchMatrix(b *testing.B, n, nnz int) *sparse.Matrix {
	b.Helper()
	m, err := sparse.New(n, n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	// Fixed stride walk spreads entries across rows and columns.
	for i := 0; i < nnz; i++ {
		r := (i * 7) % n
		c := (i * 13) % n
		if err = m.Set(r, c, int64(i%9+1)); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
	return m
}

// benchmarkAdd runs Add on two n×n matrices with nnz entries each.
func benchmarkAdd(b *testing.B, n, nnz int) {
	x := buildBenchMatrix(b, n, nnz)
	y := buildBenchMatrix(b, n, nnz)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Add(x, y); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// benchmarkMul runs Mul on two n×n matrices with nnz entries each.
func benchmarkMul(b *testing.B, n, nnz int) {
	x := buildBenchMatrix(b, n, nnz)
	y := buildBenchMatrix(b, n, nnz)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkAdd_Small benchmarks addition on 100×100 with 500 entries.
func BenchmarkAdd_Small(b *testing.B) { benchmarkAdd(b, 100, 500) }

// BenchmarkAdd_Medium benchmarks addition on 1000×1000 with 10k entries.
func BenchmarkAdd_Medium(b *testing.B) { benchmarkAdd(b, 1000, 10_000) }

// BenchmarkMul_Small benchmarks multiplication on 100×100 with 500 entries.
func BenchmarkMul_Small(b *testing.B) { benchmarkMul(b, 100, 500) }

// BenchmarkMul_Medium benchmarks multiplication on 1000×1000 with 10k entries.
func BenchmarkMul_Medium(b *testing.B) { benchmarkMul(b, 1000, 10_000) }

// BenchmarkSortedEntries benchmarks the row-major snapshot used by the codec.
func BenchmarkSortedEntries(b *testing.B) {
	m := buildBenchMatrix(b, 1000, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SortedEntries()
	}
}
