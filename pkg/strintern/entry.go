package strintern

import "sync/atomic"

// pageSize is the size of one page served by the bump pool allocator.
// MaxStringLength is derived from it so that one entry's payload always
// fits within a single fresh page.
const pageSize = 64 * 1024

// headerSize mirrors the fixed part of an on-disk-style Entry record
// (next pointer + handle + length) so MaxStringLength matches the
// original page_size - header_size formula, even though Go stores the
// header and payload in separate allocations (see doc.go).
const headerSize = 8 + 4 + 2

// MaxStringLength is the maximum number of payload bytes an Entry may
// hold. Strings longer than this are truncated at insertion.
const MaxStringLength = pageSize - headerSize

// Entry is an immutable (after publication) record of one interned
// string plus a forward link to the next entry in its hash bucket.
//
// Entry is only ever reachable to other goroutines after Subsystem.intern
// publishes it via an atomic store (either as a new bucket head, the new
// tail of a chain, or a handle-index slot). handle, length and data are
// written exactly once, before that publishing store, and never again;
// next starts nil and is stored at most once afterwards, when a later
// entry in the same bucket is appended behind this one.
type Entry struct {
	next   atomic.Pointer[Entry]
	handle Handle
	length uint16
	data   []byte
}

// handleOrPanic returns the entry's handle, panicking if it was never
// assigned. Reaching this would mean an Entry escaped the allocator
// without going through Subsystem.intern, which is an implementation bug.
func (e *Entry) handleOrPanic() Handle {
	if e.handle == 0 {
		panic("strintern: entry was not initialized")
	}
	return e.handle
}

// Len returns the byte length of the stored payload.
func (e *Entry) Len() uint16 { return e.length }

// IsEmpty reports whether the payload is zero bytes long.
func (e *Entry) IsEmpty() bool { return e.length == 0 }

// Bytes returns the stored payload. The returned slice must not be
// mutated; callers only ever observe it through read-only accessors.
func (e *Entry) Bytes() []byte { return e.data }

// String returns the stored payload viewed as a string.
func (e *Entry) String() string { return string(e.data) }

// chainNext acquire-loads the next entry in the same hash bucket,
// or nil at the end of the chain. Every call re-loads atomically;
// implementations must not cache a stale next pointer across iterations
// (see spec.md §9, "Iterator/chain walking").
func (e *Entry) chainNext() *Entry {
	return e.next.Load()
}
