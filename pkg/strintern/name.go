package strintern

import (
	"fmt"
	"strconv"
	"strings"
)

// Name is a view optimized for strings that share a common textual
// prefix but differ only in a trailing decimal integer, e.g. "object-1",
// "object-2", .... The prefix is interned once and shared across every
// suffixed variant; the suffix is stored inline as a plain integer.
//
// Name is Copy-like: it is a value type that observes but does not own
// the Subsystem it was built from.
type Name struct {
	prefix Handle
	suffix uint32 // 0 means "no suffix"; a real suffix is always > 0
	sub    *Subsystem
}

// NewName splits s into a prefix and an optional trailing decimal
// suffix, interns the prefix on sub, and returns the resulting Name.
//
// Splitting rule: take the longest trailing run of ASCII digits. If
// there is no such run, or its leading digit is '0' (a leading-zero
// suffix, which includes the single-digit run "0"), or the run overflows
// a uint32, the whole string becomes the prefix and the suffix is
// absent. Otherwise the run is parsed as a decimal integer and stored
// as the suffix, and everything before it becomes the prefix.
//
// Rejecting every leading-zero run, not just "0" itself, is what keeps
// the split injective on its prefix: "foo-1" splits to prefix "foo-" +
// suffix 1, while "foo-01" — whose run also starts with '0' — keeps its
// whole text as the prefix, so the two never collide on PrefixHandle
// even though they'd render the same suffix value if zeros were merely
// stripped (see DESIGN.md, Open Question O3).
func NewName(sub *Subsystem, s string) Name {
	prefix, suffix, ok := splitName(s)
	if !ok {
		return Name{prefix: sub.Intern(s), sub: sub}
	}
	return Name{prefix: sub.Intern(prefix), suffix: suffix, sub: sub}
}

// NewNameFromParts builds a Name directly from an already-split prefix
// handle and suffix, without re-splitting. handle must have been issued
// by sub. suffix of 0 means "no suffix".
func NewNameFromParts(sub *Subsystem, handle Handle, suffix uint32) Name {
	return Name{prefix: handle, suffix: suffix, sub: sub}
}

func splitName(s string) (prefix string, suffix uint32, ok bool) {
	k := len(s)
	for k > 0 && isASCIIDigit(s[k-1]) {
		k--
	}
	if k == len(s) {
		return "", 0, false
	}

	digits := s[k:]
	if digits[0] == '0' { // leading-zero suffix, including the bare run "0"
		return "", 0, false
	}
	if len(digits) > 10 { // more digits than fit in a uint32 ("4294967295")
		return "", 0, false
	}

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return "", 0, false
	}

	return s[:k], uint32(n), true
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// PrefixHandle returns the handle of the interned prefix. Two Names
// built from strings differing only in their numeric suffix share the
// same PrefixHandle.
func (n Name) PrefixHandle() Handle { return n.prefix }

// Suffix returns the numeric suffix and whether one is present.
func (n Name) Suffix() (uint32, bool) {
	return n.suffix, n.suffix != 0
}

// PrefixString returns the prefix part of the name.
func (n Name) PrefixString() string {
	return n.sub.Resolve(n.prefix)
}

// String returns the resolved prefix alone when there is no suffix, and
// otherwise a concatenation of prefix and suffix.
func (n Name) String() string {
	if n.suffix == 0 {
		return n.PrefixString()
	}
	var b strings.Builder
	prefix := n.PrefixString()
	b.Grow(len(prefix) + 10)
	b.WriteString(prefix)
	b.WriteString(strconv.FormatUint(uint64(n.suffix), 10))
	return b.String()
}

// Len returns the byte length of the name, as if String() had been
// called: prefix length plus the decimal digit count of the suffix.
func (n Name) Len() int {
	length := n.sub.Length(n.prefix)
	if n.suffix != 0 {
		length += len(strconv.FormatUint(uint64(n.suffix), 10))
	}
	return length
}

// IsEmpty reports whether the name has zero length. A Name with a
// suffix is never empty, since the suffix contributes at least one
// digit.
func (n Name) IsEmpty() bool {
	if n.suffix != 0 {
		return false
	}
	return n.sub.IsEmpty(n.prefix)
}

// Equal reports whether n and other name the same string. Same-subsystem
// Names compare by (prefix handle, suffix); Names from different
// subsystems fall back to comparing their split representations.
func (n Name) Equal(other Name) bool {
	if n.sub == other.sub {
		return n.prefix == other.prefix && n.suffix == other.suffix
	}
	return n.PrefixString() == other.PrefixString() && n.suffix == other.suffix
}

// Compare orders n and other lexicographically by (prefix bytes, suffix).
func (n Name) Compare(other Name) int {
	if n.sub == other.sub && n.prefix == other.prefix {
		switch {
		case n.suffix < other.suffix:
			return -1
		case n.suffix > other.suffix:
			return 1
		default:
			return 0
		}
	}
	if c := strings.Compare(n.PrefixString(), other.PrefixString()); c != 0 {
		return c
	}
	switch {
	case n.suffix < other.suffix:
		return -1
	case n.suffix > other.suffix:
		return 1
	default:
		return 0
	}
}

// GoString implements fmt.GoStringer, showing the prefix handle and
// suffix (when present) alongside the rendered string.
func (n Name) GoString() string {
	if suffix, ok := n.Suffix(); ok {
		return fmt.Sprintf("strintern.Name{prefix: %d, suffix: %d, value: %q}", n.prefix, suffix, n.String())
	}
	return fmt.Sprintf("strintern.Name{prefix: %d, value: %q}", n.prefix, n.String())
}
