// SPDX-License-Identifier: MIT
// Package codec: deterministic serialization of the text matrix format.
//
// Purpose:
//   - Emit the persisted representation byte-for-byte reproducibly:
//     headers, then entries sorted row-major. The ordering is part of
//     the contract (round-trip testing, diffable files), not cosmetics.

package codec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Output line templates. Input tolerates whitespace around the in-triple
// commas; output always uses exactly ", ".
const (
	headerLineFmt = "%s%d\n"           // prefix + extent
	entryLineFmt  = "(%d, %d, %d)\n"   // row, col, value
	savePerm      = os.FileMode(0o644) // result file permissions
)

// Encode writes m to w: "rows=", "cols=", then one line per stored
// non-zero entry ordered by ascending row, then ascending column.
// Entries with value 0 never appear — the store cannot hold them.
// Complexity: O(nnz log nnz) for the sort, O(nnz) writes.
func Encode(w io.Writer, m *sparse.Matrix) error {
	// Guard nil early; the extent accessors would dereference it.
	if m == nil {
		return fmt.Errorf("Encode: %w", ErrNilMatrix)
	}

	// Headers first, always both, even for an empty matrix.
	if _, err := fmt.Fprintf(w, headerLineFmt, rowsPrefix, m.Rows()); err != nil {
		return fmt.Errorf("Encode: writing header: %w", err)
	}
	if _, err := fmt.Fprintf(w, headerLineFmt, colsPrefix, m.Cols()); err != nil {
		return fmt.Errorf("Encode: writing header: %w", err)
	}

	// Entries in canonical row-major order for deterministic output.
	for _, e := range m.SortedEntries() {
		if _, err := fmt.Fprintf(w, entryLineFmt, e.Row, e.Col, e.Val); err != nil {
			return fmt.Errorf("Encode: writing entry (%d,%d): %w", e.Row, e.Col, err)
		}
	}

	return nil
}

// Render returns m in the text format as a string. Thin wrapper over
// Encode into a strings.Builder; a Builder write cannot fail, so the
// only possible error is a nil matrix.
// Complexity: O(nnz log nnz).
func Render(m *sparse.Matrix) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Save encodes m and writes it to path, overwriting any existing file.
// Complexity: O(nnz log nnz) encode + one file write.
func Save(path string, m *sparse.Matrix) error {
	text, err := Render(m)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, []byte(text), savePerm); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}
