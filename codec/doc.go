// Package codec converts between the plain text matrix format and
// sparse.Matrix values, validating structure strictly in both header and
// body — any malformed line rejects the whole source.
//
// What:
//
//   - Decode / Load parse the "rows=/cols=/(r, c, v)" format: blank lines
//     are skipped, the two headers must come first, every remaining line
//     must be a parenthesized integer triple within the declared extents.
//     Later duplicates of a coordinate overwrite earlier ones.
//   - Encode / Render / Save emit the same format deterministically:
//     headers first, then entries sorted by ascending row, then ascending
//     column, always with ", " as the in-triple separator.
//
// Why:
//
//   - The format is a persisted wire representation: output must be
//     byte-for-byte reproducible so identical matrices produce identical
//     files (round-trip law: Decode(Encode(m)) reconstructs m exactly).
//
// Errors:
//
//   - ErrSourceUnavailable: the underlying file/reader failed.
//   - ErrMalformedHeader: missing or malformed rows=/cols= lines.
//   - ErrMalformedEntry: a body line that is not "(int, int, int)";
//     the wrapped message carries the line number and its text.
//   - ErrEntryOutOfBounds: a triple whose coordinates fall outside the
//     declared extents — rejected at parse time, before any matrix is
//     returned.
package codec
