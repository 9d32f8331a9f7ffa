package strintern

import "sync/atomic"

// Handle is an opaque identifier returned by Subsystem.Intern. Two
// handles from the same Subsystem compare equal iff the underlying
// strings were byte-identical. The zero value is reserved as "no
// handle" (spec.md §3): Go has no niche-optimized Option type, so an
// optional handle is simply a Handle compared against zero rather than
// a separate wrapper type (see SPEC_FULL.md, Expansion C).
type Handle uint32

// Valid reports whether h refers to an issued handle. The zero Handle
// is never returned by Intern.
func (h Handle) Valid() bool { return h != 0 }

// handlesPerPage sizes one page of the handle-index vector to
// approximately 64 KiB, matching spec.md §4.3.
const handlesPerPage = pageSize / 8

// HandlesPerPage exports handlesPerPage for callers that need to reason
// about capacity rounding, e.g. sizing a Config.MaxStrings to land
// exactly on a page boundary.
const HandlesPerPage = handlesPerPage

// handlePage is one page of the handle-index vector: a fixed-size,
// never-resized array of slots. Once installed in handleIndex.pages,
// a handlePage's address never changes, so a slot pointer handed to a
// reader stays valid for the Subsystem's lifetime. Slots use atomic
// pointers for the same reason bucket chain links do: a lock-free
// random read must never observe a half-written *Entry.
type handlePage [handlesPerPage]atomic.Pointer[Entry]
