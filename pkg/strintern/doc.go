// Package strintern implements a process-local, concurrent string
// interning subsystem: strings are deduplicated into immutable Entry
// records and referenced thereafter by a small, copyable Handle.
//
// A Subsystem never frees or moves an interned string once created,
// and never shrinks: Intern is the only write operation, and it is safe
// to call from any number of goroutines concurrently with each other and
// with Resolve, Length, IsEmpty, and Stats. Only the first call to
// intern a given byte sequence takes a lock; every later call for the
// same bytes is lock-free.
//
// Handles are only meaningful within the Subsystem that issued them.
// Passing a Handle, Text, or Name to a different Subsystem than the one
// that produced it is a programmer error and will either panic or
// silently resolve to the wrong string.
//
// # Encoding note
//
// The reference implementation this package is derived from packs an
// entry's header and payload bytes into one C-style allocation with a
// flexible array member. Go cannot express that safely, so Entry here
// instead holds a slice into a separately pool-allocated payload buffer
// (allocator.go). Go's non-moving garbage collector makes this free of
// the use-after-move hazards such a split would have in a copying
// runtime.
package strintern
