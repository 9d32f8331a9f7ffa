package strintern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astral-engine/astral/pkg/strintern"
)

// The leading-zero rule rejects any trailing digit run whose first digit
// is '0', not just the bare run "0": this is what keeps the split
// injective on its prefix (see Test_NewName_Leading_Zero_Run_Never_Shares_A_Prefix_With_Its_Stripped_Form
// and DESIGN.md Open Question O3). Both "object-0042" and "object-0" fall
// under it, so both keep their whole text as the prefix with no suffix.
func Test_NewName_Splits_Trailing_Decimal_Suffix(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	leadingZeroRun := strintern.NewName(sub, "object-0042")
	_, ok := leadingZeroRun.Suffix()
	assert.False(t, ok)
	assert.Equal(t, "object-0042", leadingZeroRun.PrefixString())
	assert.Equal(t, "object-0042", leadingZeroRun.String())

	zeroSuffix := strintern.NewName(sub, "object-0")
	_, ok = zeroSuffix.Suffix()
	assert.False(t, ok)
	assert.Equal(t, "object-0", zeroSuffix.PrefixString())
	assert.Equal(t, "object-0", zeroSuffix.String())

	withSuffix := strintern.NewName(sub, "object-42")
	suffix, ok := withSuffix.Suffix()
	assert.True(t, ok)
	assert.Equal(t, uint32(42), suffix)
	assert.Equal(t, "object-", withSuffix.PrefixString())
}

// Scenario C: a pure-digit string has an empty prefix.
func Test_NewName_Pure_Digit_String_Has_Empty_Prefix(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	name := strintern.NewName(sub, "1234")

	assert.Equal(t, "", name.PrefixString())
	suffix, ok := name.Suffix()
	assert.True(t, ok)
	assert.Equal(t, uint32(1234), suffix)
}

func Test_NewName_Without_Trailing_Digits_Has_No_Suffix(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	name := strintern.NewName(sub, "foo")

	_, ok := name.Suffix()
	assert.False(t, ok)
	assert.Equal(t, "foo", name.String())
}

// Name equivalence law (spec.md §8 Law 6): Name("foo-1") and Name("foo-2")
// share a prefix handle but compare unequal.
func Test_NewName_Shares_Prefix_Handle_Across_Numeric_Suffixes(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	foo1 := strintern.NewName(sub, "foo-1")
	foo2 := strintern.NewName(sub, "foo-2")

	assert.Equal(t, foo1.PrefixHandle(), foo2.PrefixHandle())
	assert.False(t, foo1.Equal(foo2))
}

// Name equivalence law (spec.md §8 Law 6), second half: Name("foo-01")
// does NOT share "foo-1"'s prefix handle. "01" is a leading-zero digit
// run, so the whole string "foo-01" becomes its own prefix rather than
// splitting into prefix "foo-" + suffix 1 — which is exactly what keeps
// it from colliding with "foo-1".
func Test_NewName_Leading_Zero_Run_Never_Shares_A_Prefix_With_Its_Stripped_Form(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	foo1 := strintern.NewName(sub, "foo-1")
	foo01 := strintern.NewName(sub, "foo-01")

	assert.NotEqual(t, foo1.PrefixHandle(), foo01.PrefixHandle())
	assert.False(t, foo1.Equal(foo01))

	_, ok := foo01.Suffix()
	assert.False(t, ok)
	assert.Equal(t, "foo-01", foo01.String())
}

func Test_NewName_Round_Trips_When_No_Leading_Zero_Is_Involved(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	for _, s := range []string{"foo", "foo-1", "foo-123", "", "123", "a0", "v2-final"} {
		name := strintern.NewName(sub, s)
		assert.Equal(t, s, name.String(), "round-trip for %q", s)
	}
}

func Test_Name_Len_Counts_Prefix_Plus_Suffix_Digits(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	name := strintern.NewName(sub, "foo-123")

	assert.Equal(t, len("foo-123"), name.Len())
}

func Test_Name_Equal_Falls_Back_To_Split_Representation_Across_Subsystems(t *testing.T) {
	t.Parallel()

	subA := newSubsystem(t, false)
	subB := newSubsystem(t, false)

	a := strintern.NewName(subA, "shared-1")
	b := strintern.NewName(subB, "shared-1")

	assert.True(t, a.Equal(b))
}

func Test_Name_Compare_Orders_By_Prefix_Then_Suffix(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	a := strintern.NewName(sub, "item-1")
	b := strintern.NewName(sub, "item-2")

	assert.Negative(t, a.Compare(b))
}

func Test_Name_GoString_Reports_Prefix_And_Suffix_When_Present(t *testing.T) {
	t.Parallel()

	sub := newSubsystem(t, false)

	withSuffix := strintern.NewName(sub, "item-7")
	assert.Contains(t, withSuffix.GoString(), "suffix: 7")
	assert.Contains(t, withSuffix.GoString(), `"item-7"`)

	withoutSuffix := strintern.NewName(sub, "item")
	assert.NotContains(t, withoutSuffix.GoString(), "suffix:")
}
