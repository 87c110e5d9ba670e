// SPDX-License-Identifier: MIT

package codec

import "errors"

// Sentinel errors for codec operations. Decode wraps these with the
// offending line number and text; match with errors.Is.
var (
	// ErrSourceUnavailable indicates the underlying source could not be
	// opened or read. Distinct from format failures: the bytes never
	// arrived, so nothing can be said about their structure.
	ErrSourceUnavailable = errors.New("codec: matrix source unavailable")

	// ErrMalformedHeader indicates the first two non-blank lines are not
	// "rows=<n>" and "cols=<n>" with non-negative integer suffixes.
	ErrMalformedHeader = errors.New("codec: malformed header")

	// ErrMalformedEntry indicates a body line that is not a parenthesized
	// triple of integers.
	ErrMalformedEntry = errors.New("codec: malformed entry")

	// ErrEntryOutOfBounds indicates an entry whose coordinates fall
	// outside the extents declared by the header.
	ErrEntryOutOfBounds = errors.New("codec: entry out of bounds")

	// ErrNilMatrix indicates a nil matrix was passed to an encoder.
	ErrNilMatrix = errors.New("codec: nil matrix")
)
