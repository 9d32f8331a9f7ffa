package strintern

import (
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/astral-engine/astral/internal/logging"
)

// DefaultMaxStrings is used by New when Config.MaxStrings is left at
// zero, matching a typical subsystem capacity (spec.md §4.5: "typically
// 2^20").
const DefaultMaxStrings = 1 << 20

// Config configures a Subsystem at construction (spec.md §6).
type Config struct {
	// MaxStrings sizes the handle-index vector up front and so bounds the
	// number of distinct strings this Subsystem can ever hold. The bound
	// is rounded up to a whole page of HandlesPerPage handles, so the
	// real limit is the next multiple of HandlesPerPage at or above
	// MaxStrings. Zero means DefaultMaxStrings.
	MaxStrings uint32

	// Hasher is the hash used to place strings into buckets. Nil means
	// DefaultHasher (the MurmurHash3 variant in spec.md §4.4). Changing
	// it changes bucket distribution, never correctness.
	Hasher Hasher

	// TrackStrings enables the usage-statistics counters observable via
	// Subsystem.Stats. Disabled by default: the counters are then no-ops
	// and Stats reports ok=false.
	TrackStrings bool
}

// Subsystem owns the allocator, bucket table, and handle-index vector
// for one interning domain, and exposes the intern/query surface over
// them. It is the unit of isolation (spec.md §9): handles from one
// Subsystem must never be passed to another.
//
// A Subsystem is safe for concurrent use from any number of goroutines.
// Resolve and the fast (cache-hit) path of Intern are lock-free; only
// the slow (cache-miss) path of Intern takes the writer mutex.
type Subsystem struct {
	log    log.Logger
	hasher Hasher

	writerMu sync.Mutex // only path that blocks; guards allocator+table+index writes
	alloc    allocator
	table    bucketTable
	index    *handleIndex

	maxStrings uint32
	stats      *tracker
}

// New constructs a Subsystem as a child of parent, the engine's "system"
// object this subsystem was built from (spec.md §6: "parent system").
// Only parent's logger is consumed; parentLogger may be logging.Discard
// in tests that don't care about diagnostic output.
func New(parentLogger log.Logger, cfg Config) *Subsystem {
	maxStrings := cfg.MaxStrings
	if maxStrings == 0 {
		maxStrings = DefaultMaxStrings
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = DefaultHasher
	}

	s := &Subsystem{
		log:        logging.WithSubsystem(parentLogger, "string"),
		hasher:     hasher,
		index:      newHandleIndex(maxStrings),
		maxStrings: maxStrings,
		stats:      newTracker(cfg.TrackStrings),
	}

	level.Info(s.log).Log("msg", "initializing", "max_strings", maxStrings, "track_strings", cfg.TrackStrings)

	return s
}

// Close logs the shutdown diagnostic the spec requires (spec.md §6),
// including final statistics when tracking is enabled. A Subsystem needs
// no other teardown: Go's garbage collector reclaims every page, Entry,
// and table once the Subsystem itself becomes unreachable.
func (s *Subsystem) Close() {
	if stats, ok := s.stats.snapshot(); ok {
		level.Info(s.log).Log(
			"msg", "shutting down",
			"strings_allocated", stats.StringsAllocated,
			"used_memory", stats.UsedMemory,
			"allocations", stats.Allocations,
			"average_string_length", stats.AverageStringLen,
		)
		return
	}
	level.Info(s.log).Log("msg", "shutting down")
}

// Logger returns this Subsystem's logger, for callers that want to emit
// their own diagnostics under the same "subsystem=string" scope.
func (s *Subsystem) Logger() log.Logger { return s.log }

// Intern maps s to a Handle, creating a new entry if this exact byte
// sequence has never been seen before. It is infallible: overflowing
// the handle-index capacity (MaxStrings rounded up to a whole page) is a
// fatal programmer error and panics (spec.md §4.5, §7).
func (s *Subsystem) Intern(str string) Handle {
	return s.InternBytes([]byte(str))
}

// InternBytes is Intern over a raw byte slice, for callers (Text/Name,
// or UTF-8/UTF-16 conversions) that already have bytes rather than a
// Go string.
func (s *Subsystem) InternBytes(b []byte) Handle {
	// Truncate before hashing so the bucket key is computed over the same
	// bytes that are stored: an oversized input then maps to one handle
	// no matter how often it is interned.
	if len(b) > MaxStringLength {
		level.Warn(s.log).Log(
			"msg", "string truncated: exceeds max length",
			"max_length", MaxStringLength,
			"length", len(b),
		)
		b = b[:MaxStringLength]
	}

	full := s.hasher(b)
	short := shortHash(full)

	// Fast path: lock-free probe. Covers the overwhelming majority of
	// calls once the working set is warm.
	if e := s.table.find(b, short); e != nil {
		return e.handleOrPanic()
	}

	s.writerMu.Lock()
	defer s.writerMu.Unlock()

	// Re-probe: another writer may have raced us to this string while we
	// were acquiring the mutex.
	if e := s.table.find(b, short); e != nil {
		return e.handleOrPanic()
	}

	entry, allocBytes, allocPages := s.alloc.allocate(b)

	handle, indexBytes, indexPages := s.index.push(entry)

	s.table.publish(entry, short)

	s.stats.addMemory(allocBytes + indexBytes)
	s.stats.addAllocations(allocPages + indexPages)
	s.stats.addString(int(entry.length))

	return handle
}

// entryFor resolves a handle to its Entry, panicking with an
// InvalidHandle-class diagnostic if it was never issued by this
// Subsystem (spec.md §7: debug builds must assert). Go has no separate
// debug/release build mode, so this always asserts; callers that need
// the release-mode "undefined behavior" escape hatch would use
// handleIndex.getUnchecked directly, but nothing in this package does.
func (s *Subsystem) entryFor(h Handle) *Entry {
	e := s.index.get(h)
	if e == nil {
		panic(newInvalidHandle(h))
	}
	return e
}

// Resolve returns the string stored under h. h must have been returned
// by Intern on this same Subsystem.
func (s *Subsystem) Resolve(h Handle) string {
	return s.entryFor(h).String()
}

// ResolveBytes is Resolve without the string copy/conversion, returning
// the stored payload directly. The returned slice must not be mutated.
func (s *Subsystem) ResolveBytes(h Handle) []byte {
	return s.entryFor(h).Bytes()
}

// Length returns the byte length stored under h.
func (s *Subsystem) Length(h Handle) int {
	return int(s.entryFor(h).Len())
}

// IsEmpty reports whether h refers to the empty string.
func (s *Subsystem) IsEmpty(h Handle) bool {
	return s.entryFor(h).IsEmpty()
}

// Stats returns a snapshot of usage counters, and whether tracking is
// enabled. When ok is false, every field of the returned Stats is zero
// and must not be interpreted as "no usage yet" (spec.md §4.5).
func (s *Subsystem) Stats() (Stats, bool) {
	return s.stats.snapshot()
}

// GoString implements fmt.GoStringer. It includes usage statistics only
// when the Subsystem was built with TrackStrings enabled, mirroring the
// Rust reference's stats-gated Debug impl.
func (s *Subsystem) GoString() string {
	stats, ok := s.Stats()
	if !ok {
		return fmt.Sprintf("strintern.Subsystem{max_strings: %d}", s.maxStrings)
	}
	return fmt.Sprintf(
		"strintern.Subsystem{max_strings: %d, strings_allocated: %d, used_memory: %d, allocations: %d}",
		s.maxStrings, stats.StringsAllocated, stats.UsedMemory, stats.Allocations,
	)
}
