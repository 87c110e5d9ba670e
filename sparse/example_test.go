// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
)

// ExampleAdd demonstrates sparse addition with automatic cancellation:
// the (0,1) entries sum to zero and disappear from the result.
func ExampleAdd() {
	a, _ := sparse.New(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 7)

	b, _ := sparse.New(2, 2)
	_ = b.Set(0, 1, -7)
	_ = b.Set(1, 1, 2)

	sum, _ := sparse.Add(a, b)
	for _, e := range sum.SortedEntries() {
		fmt.Printf("(%d, %d, %d)\n", e.Row, e.Col, e.Val)
	}
	// Output:
	// (0, 0, 1)
	// (1, 1, 2)
}

// ExampleMul demonstrates a sparse dot product: [3 4] · [5 6]ᵀ = 39.
func ExampleMul() {
	a, _ := sparse.New(1, 2)
	_ = a.Set(0, 0, 3)
	_ = a.Set(0, 1, 4)

	b, _ := sparse.New(2, 1)
	_ = b.Set(0, 0, 5)
	_ = b.Set(1, 0, 6)

	prod, _ := sparse.Mul(a, b)
	v, _ := prod.At(0, 0)
	fmt.Println(v)
	// Output:
	// 39
}
