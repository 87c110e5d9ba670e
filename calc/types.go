// SPDX-License-Identifier: MIT

// Package calc: operation selector type and its parsing.
package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOp indicates an operation selector outside the supported set.
var ErrUnknownOp = errors.New("calc: unknown operation")

// Op selects one algebraic operation over two matrices.
type Op int

const (
	// OpAdd requests A + B.
	OpAdd Op = iota + 1
	// OpSubtract requests A − B.
	OpSubtract
	// OpMultiply requests the matrix product A × B.
	OpMultiply
)

// String returns the human-readable operation name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// ParseOp maps an interactive selector to an Op. Accepted forms are the
// menu digits "1", "2", "3" and the case-insensitive operation names
// ("add", "subtract", "multiply"); surrounding whitespace is ignored.
// Unknown selectors fail with ErrUnknownOp.
// Complexity: O(len(s)).
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add":
		return OpAdd, nil
	case "2", "subtract":
		return OpSubtract, nil
	case "3", "multiply":
		return OpMultiply, nil
	default:
		return 0, fmt.Errorf("selector %q: %w", s, ErrUnknownOp)
	}
}
