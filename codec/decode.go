// SPDX-License-Identifier: MIT
// Package codec: strict deserialization of the text matrix format.
//
// Purpose:
//   - Turn a textual source into a validated sparse.Matrix, or reject it
//     with a typed failure identifying the offending line.
//   - Bounds are checked here, at parse time: malformed input must never
//     reach the caller as a half-built matrix.

package codec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Format literals shared with encode.go; no magic strings in the logic.
const (
	rowsPrefix  = "rows=" // first header line literal
	colsPrefix  = "cols=" // second header line literal
	entryOpen   = "("     // entry line opening bracket
	entryClose  = ")"     // entry line closing bracket
	entryFields = 3       // row, col, value
)

// headerValue parses the integer suffix of a header line after the given
// prefix. The suffix must be a base-10 non-negative integer.
// Complexity: O(len(line)).
func headerValue(line, prefix string) (int, error) {
	// The prefix is a fixed literal; any deviation is malformed.
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q: %w", prefix, line, ErrMalformedHeader)
	}
	// Parse the remainder as an integer.
	n, err := strconv.Atoi(line[len(prefix):])
	if err != nil {
		return 0, fmt.Errorf("non-integer %q suffix in %q: %w", prefix, line, ErrMalformedHeader)
	}
	// Extents are declared sizes; a negative count is structurally invalid.
	if n < 0 {
		return 0, fmt.Errorf("negative %q value in %q: %w", prefix, line, ErrMalformedHeader)
	}

	return n, nil
}

// parseEntry parses one body line of the exact shape "(r, c, v)":
// fixed brackets, exactly three comma-separated integers, each trimmed of
// surrounding whitespace before parsing.
// Complexity: O(len(line)).
func parseEntry(line string, lineNo int) (r, c int, v int64, err error) {
	// Validate the bracket shape first.
	if !strings.HasPrefix(line, entryOpen) || !strings.HasSuffix(line, entryClose) {
		return 0, 0, 0, fmt.Errorf("line %d: %q: %w", lineNo, line, ErrMalformedEntry)
	}
	// Split the interior on commas; the field count must be exact.
	fields := strings.Split(line[len(entryOpen):len(line)-len(entryClose)], ",")
	if len(fields) != entryFields {
		return 0, 0, 0, fmt.Errorf("line %d: %q: want %d fields, got %d: %w",
			lineNo, line, entryFields, len(fields), ErrMalformedEntry)
	}
	// Parse each trimmed field as an integer.
	nums := make([]int64, entryFields)
	for i, f := range fields {
		nums[i], err = strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("line %d: %q: non-integer field %q: %w",
				lineNo, line, strings.TrimSpace(f), ErrMalformedEntry)
		}
	}

	return int(nums[0]), int(nums[1]), nums[2], nil
}

// Decode reads the text format from src and returns the parsed matrix.
//
// Stage 1 (Collect): split into whitespace-trimmed lines, dropping blank
// ones entirely — they never count toward structure.
// Stage 2 (Header): the first two surviving lines must be "rows=<n>" and
// "cols=<n>"; any deviation fails with ErrMalformedHeader.
// Stage 3 (Body): every further line must be "(r, c, v)"; structural
// violations fail with ErrMalformedEntry, coordinates outside the
// declared extents with ErrEntryOutOfBounds. Duplicate coordinates are
// legal: the last occurrence wins.
//
// An I/O failure while reading surfaces as ErrSourceUnavailable.
// Complexity: O(total input length + nnz).
func Decode(src io.Reader) (*sparse.Matrix, error) {
	// Collect trimmed, non-blank lines with their physical line numbers
	// so diagnostics point at the real location in the source.
	type numbered struct {
		no   int
		text string
	}
	var lines []numbered
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // allow long lines
	for no := 1; scanner.Scan(); no++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue // blank lines are skipped entirely
		}
		lines = append(lines, numbered{no: no, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %v: %w", err, ErrSourceUnavailable)
	}

	// The header requires two lines; fewer is structurally malformed.
	if len(lines) < 2 {
		return nil, fmt.Errorf("want 2 header lines, got %d: %w", len(lines), ErrMalformedHeader)
	}
	rows, err := headerValue(lines[0].text, rowsPrefix)
	if err != nil {
		return nil, err
	}
	cols, err := headerValue(lines[1].text, colsPrefix)
	if err != nil {
		return nil, err
	}

	// Extents are validated non-negative above, so New cannot fail.
	m, err := sparse.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("constructing %dx%d matrix: %w", rows, cols, err)
	}

	// Parse and apply every body line. Bounds are rejected here, before
	// the matrix is returned; Set then cannot fail.
	for _, ln := range lines[2:] {
		r, c, v, perr := parseEntry(ln.text, ln.no)
		if perr != nil {
			return nil, perr
		}
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return nil, fmt.Errorf("line %d: %q: coordinates outside %dx%d: %w",
				ln.no, ln.text, rows, cols, ErrEntryOutOfBounds)
		}
		_ = m.Set(r, c, v) // last duplicate wins; zero values simply vanish
	}

	return m, nil
}

// Load opens path and decodes its contents. An open failure wraps
// ErrSourceUnavailable; format failures propagate from Decode unchanged.
// Complexity: O(file size + nnz).
func Load(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, ErrSourceUnavailable)
	}
	defer f.Close()

	return Decode(f)
}
