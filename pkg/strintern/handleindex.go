package strintern

import "sync/atomic"

// handleIndex is the paged, append-only handle -> *Entry mapping from
// spec.md §4.3. Reads are lock-free and wait-free; push must be
// externally serialized by the caller (Subsystem's writer mutex).
type handleIndex struct {
	pages  []atomic.Pointer[handlePage]
	length atomic.Uint32

	// nextIndex is the writer-only bump cursor. It is never touched by
	// readers, so it does not need to be atomic; length is the only
	// field readers synchronize on.
	nextIndex uint32
}

// newHandleIndex sizes the outer page-cell array for maxStrings entries,
// rounding up to a whole number of pages. Pages themselves are allocated
// lazily the first time a push lands in them.
func newHandleIndex(maxStrings uint32) *handleIndex {
	pageCount := (maxStrings + handlesPerPage - 1) / handlesPerPage
	if pageCount == 0 {
		pageCount = 1
	}
	return &handleIndex{pages: make([]atomic.Pointer[handlePage], pageCount)}
}

// push assigns the next handle to entry, publishes the pointer, and
// publishes the new length with a release store. The caller must
// serialize calls to push; only Subsystem.intern's writer-mutex-held
// path may call it.
func (h *handleIndex) push(entry *Entry) (handle Handle, bytesAdded int, pagesAdded int) {
	idx := h.nextIndex
	pageNum := idx / handlesPerPage
	slot := idx % handlesPerPage

	if int(pageNum) >= len(h.pages) {
		panic(newCapacityExceeded(uint32(len(h.pages)) * handlesPerPage))
	}

	page := h.pages[pageNum].Load()
	if page == nil {
		page = &handlePage{}
		h.pages[pageNum].Store(page)
		bytesAdded = handlesPerPage * 8
		pagesAdded = 1
	}

	page[slot].Store(entry)

	h.nextIndex++
	handle = Handle(idx + 1) // handles are 1-based; 0 is reserved
	entry.handle = handle

	h.length.Store(h.nextIndex) // release: publishes entry + handle + page

	return handle, bytesAdded, pagesAdded
}

// get returns the entry for handle, or nil if handle was never issued
// (or is not yet visible to this reader).
func (h *handleIndex) get(handle Handle) *Entry {
	if handle == 0 {
		return nil
	}
	idx := uint32(handle) - 1

	length := h.length.Load() // acquire
	if idx >= length {
		return nil
	}

	pageNum := idx / handlesPerPage
	slot := idx % handlesPerPage

	page := h.pages[pageNum].Load()
	if page == nil {
		return nil
	}
	return page[slot].Load()
}

// getUnchecked behaves like get but skips the length bound check. It
// must only be called with a handle previously returned by push on this
// same handleIndex (spec.md §4.3); callers with a handle from elsewhere
// invoke undefined behavior, matching the spec's InvalidHandle contract.
func (h *handleIndex) getUnchecked(handle Handle) *Entry {
	idx := uint32(handle) - 1
	pageNum := idx / handlesPerPage
	slot := idx % handlesPerPage
	page := h.pages[pageNum].Load()
	return page[slot].Load()
}
