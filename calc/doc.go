// Package calc is the shell-facing contract of the engine: load a matrix
// from a path, run one algebraic operation over two matrices, render or
// save the result.
//
// What:
//
//   - Op selects among Add, Subtract and Multiply; ParseOp accepts both
//     the interactive menu digits ("1"/"2"/"3") and the operation names.
//   - Load / Operate / Render / Save are thin facades over codec and
//     sparse — they compose and forward, never duplicate logic.
//
// Why:
//
//   - The interactive shell (cmd/spmcalc) should contain no engine
//     logic: everything it needs is this package's four calls plus the
//     sentinel errors of codec and sparse, which propagate unchanged.
//
// Errors:
//
//   - ErrUnknownOp: a selector outside {Add, Subtract, Multiply}.
//   - Everything else bubbles from codec (load/format failures) and
//     sparse (shape failures) as their own sentinels.
package calc
