package strintern

import (
	"bytes"
	"fmt"
	"unicode/utf16"
)

// Text is a cheap, copyable view of a whole interned string: a Handle
// plus the Subsystem it was issued by. Testing two Texts for equality
// never touches the underlying bytes unless they come from different
// Subsystems; ordering them with Compare reads the bytes whenever the
// handles differ.
type Text struct {
	handle Handle
	sub    *Subsystem
}

// NewText wraps an already-issued handle as a Text. Most callers should
// use Subsystem.InternText instead.
func NewText(sub *Subsystem, h Handle) Text {
	return Text{handle: h, sub: sub}
}

// InternText interns s and returns it as a Text.
func (s *Subsystem) InternText(str string) Text {
	return Text{handle: s.Intern(str), sub: s}
}

// InternTextFromUTF16 decodes a UTF-16 code unit sequence (as produced by,
// e.g., a Windows API or a PathBuf originating off this platform), converts
// it to UTF-8, and interns the result. Unpaired surrogates are replaced with
// utf8.RuneError per utf16.Decode's own rules.
func (s *Subsystem) InternTextFromUTF16(units []uint16) Text {
	return s.InternText(string(utf16.Decode(units)))
}

// Handle returns the underlying handle.
func (t Text) Handle() Handle { return t.handle }

// Valid reports whether t wraps an issued handle.
func (t Text) Valid() bool { return t.handle.Valid() && t.sub != nil }

// String resolves t to its stored string.
func (t Text) String() string {
	return t.sub.Resolve(t.handle)
}

// Bytes resolves t to its stored bytes without copying. The returned
// slice must not be mutated.
func (t Text) Bytes() []byte {
	return t.sub.ResolveBytes(t.handle)
}

// Len returns the byte length of the stored string.
func (t Text) Len() int {
	return t.sub.Length(t.handle)
}

// IsEmpty reports whether t refers to the empty string.
func (t Text) IsEmpty() bool {
	return t.sub.IsEmpty(t.handle)
}

// Equal reports whether t and other refer to byte-identical strings.
// Texts from the same Subsystem compare by handle alone, which is the
// entire point of interning; Texts from different Subsystems fall back
// to a byte comparison (spec.md §4.6).
func (t Text) Equal(other Text) bool {
	if t.sub == other.sub {
		return t.handle == other.handle
	}
	return bytes.Equal(t.Bytes(), other.Bytes())
}

// Compare orders t and other lexicographically by their byte content.
// Same-subsystem equal handles short-circuit to 0 without touching the
// underlying bytes.
func (t Text) Compare(other Text) int {
	if t.sub == other.sub && t.handle == other.handle {
		return 0
	}
	return bytes.Compare(t.Bytes(), other.Bytes())
}

// GoString implements fmt.GoStringer, showing the handle and, when t is
// valid, the resolved string alongside it.
func (t Text) GoString() string {
	if !t.Valid() {
		return "strintern.Text{<invalid>}"
	}
	return fmt.Sprintf("strintern.Text{handle: %d, value: %q}", t.handle, t.String())
}
