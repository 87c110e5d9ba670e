// SPDX-License-Identifier: MIT
// Package sparse: the entry store — the single place where the
// "no stored zeros" invariant is enforced.
//
// Purpose:
//   - Keep the zero-check-then-delete-or-insert logic centralized so the
//     invariant holds after every mutation, including those performed
//     internally by the arithmetic kernels.
//   - Provide snapshot iteration (unordered and row-major sorted) so
//     consumers never observe a map mid-mutation.

package sparse

import "sort"

// entryStore maps a (row, col) coordinate to its non-zero value. The
// zero value of entryStore is not ready to use; construct via newEntryStore.
type entryStore struct {
	data map[coord]int64 // only non-zero values, keyed by coordinate
}

// newEntryStore returns an empty store.
// Complexity: O(1).
func newEntryStore() entryStore {
	return entryStore{data: make(map[coord]int64)}
}

// get returns the stored value at (r, c), or 0 (the additive identity)
// when the coordinate is absent. Never fails; bounds are the caller's
// responsibility.
// Complexity: O(1).
func (s entryStore) get(r, c int) int64 {
	return s.data[coord{r, c}] // map lookup yields the zero value on miss
}

// set writes v at (r, c). Assigning 0 deletes any existing entry instead
// of storing it (no-op when absent); any other value inserts or
// overwrites. This is the ONLY mutation path, so the "value ≠ 0"
// invariant cannot be bypassed.
// Complexity: O(1).
func (s entryStore) set(r, c int, v int64) {
	key := coord{r, c}
	if v == 0 {
		delete(s.data, key) // zero removes rather than stores
		return
	}
	s.data[key] = v
}

// size returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (s entryStore) size() int {
	return len(s.data)
}

// entries returns an unordered snapshot of all stored entries. The
// returned slice is independent of the store: it can be ranged over
// repeatedly and survives later mutations.
// Complexity: O(nnz) time and space.
func (s entryStore) entries() []Entry {
	out := make([]Entry, 0, len(s.data)) // single allocation at exact capacity
	for k, v := range s.data {
		out = append(out, Entry{Row: k.r, Col: k.c, Val: v})
	}
	return out
}

// sortedEntries returns a snapshot sorted by ascending row, then
// ascending column. Map iteration has no defined order, so consumers
// needing deterministic output (serialization, comparison) use this.
// Complexity: O(nnz log nnz) time, O(nnz) space.
func (s entryStore) sortedEntries() []Entry {
	out := s.entries() // unordered snapshot first
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row // primary: row ascending
		}
		return out[i].Col < out[j].Col // secondary: column ascending
	})
	return out
}

// clone returns a deep copy of the store.
// Complexity: O(nnz) time and space.
func (s entryStore) clone() entryStore {
	dst := entryStore{data: make(map[coord]int64, len(s.data))}
	for k, v := range s.data {
		dst.data[k] = v // values are scalars; key copy is enough
	}
	return dst
}
