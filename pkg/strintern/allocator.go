package strintern

// allocator serves variable-length string payloads from fixed-size pages
// and never frees them. It is the Go analogue of the bump pool allocator
// in spec.md §4.2: a single page is bump-allocated from until it can no
// longer satisfy a request, at which point a fresh page is appended to
// an owned, append-only page list.
//
// Go's garbage collector never relocates heap objects once they have
// escaped to the heap, so unlike the original the Entry header itself
// does not need to live inside the page: only the payload bytes are
// pool-allocated, to avoid one small allocation per interned string.
// This is encoding (b) from spec.md §9 ("a header holding a fat
// reference to a separate payload buffer"), chosen because Go cannot
// express a C-style flexible array member safely.
//
// allocator is not internally synchronized: the caller (Subsystem) must
// hold the writer mutex for every call, exactly as spec.md §4.2 requires.
type allocator struct {
	pages   [][]byte
	current []byte
	offset  int
}

// allocate copies payload into the current page (starting a new one if
// necessary) and returns the entry, plus the number of fresh bytes and
// pages the call consumed from the system allocator, for statistics.
func (a *allocator) allocate(payload []byte) (entry *Entry, bytesAdded int, pagesAdded int) {
	if len(a.current)-a.offset < len(payload) {
		a.current = make([]byte, pageSize)
		a.pages = append(a.pages, a.current)
		a.offset = 0
		bytesAdded = pageSize
		pagesAdded = 1
	}

	start := a.offset
	n := copy(a.current[start:], payload)
	a.offset += n

	return &Entry{
		length: uint16(n),
		data:   a.current[start : start+n : start+n],
	}, bytesAdded, pagesAdded
}
