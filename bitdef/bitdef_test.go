package bitdef

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	bd, err := Parse("1X0X")
	assert.NoError(err)
	assert.Equal(4, bd.Len())
	assert.Equal("1X0X", bd.String())
	assert.Equal(2, bd.Unknowns())
	assert.False(bd.Concrete())

	bd, err = Parse("0000_0101")
	assert.NoError(err)
	assert.Equal("00000101", bd.String())
	assert.True(bd.Concrete())
	assert.Equal(uint64(5), bd.Uint())

	bd, err = Parse("")
	assert.NoError(err)
	assert.True(bd.Empty())
	assert.Equal("", bd.String())

	_, err = Parse("10Z1")
	assert.ErrorIs(err, ErrBitChar("10Z1"))
}

func TestMustParse(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("X1", MustParse("x1").String())
	assert.Panics(func() { MustParse("2") })
}

func TestMerge(t *testing.T) {
	assert := assert.New(t)

	merged, err := Merge(MustParse("1XXX"), MustParse("X0XX"), MustParse("XXX1"))
	assert.NoError(err)
	assert.Equal("10X1", merged.String())

	// Agreeing overlaps are fine.
	merged, err = Merge(MustParse("11XX"), MustParse("1X0X"))
	assert.NoError(err)
	assert.Equal("110X", merged.String())

	_, err = Merge(MustParse("1XX"), MustParse("X0XX"))
	assert.ErrorIs(err, ErrBitWidthMismatch)

	_, err = Merge(MustParse("1X"), MustParse("0X"))
	assert.ErrorIs(err, ErrBitConflict)

	merged, err = Merge()
	assert.NoError(err)
	assert.True(merged.Empty())
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	joined, err := Concat(MustParse("10"), MustParse("X"), MustParse("01"))
	assert.NoError(err)
	assert.Equal("10X01", joined.String())

	_, err = Concat(Unknown(40), Unknown(40))
	assert.ErrorIs(err, ErrBitRange)
}

func TestFill(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1000", Fill(MustParse("1X0X"), false).String())
	assert.Equal("1101", Fill(MustParse("1X0X"), true).String())
	assert.Equal("0110", Fill(MustParse("0110"), true).String())
	assert.Equal("", Fill(Bitdef{}, true).String())

	filled, err := FillFrom(MustParse("1X0X"), MustParse("0110"))
	assert.NoError(err)
	assert.Equal("1100", filled.String())

	filled, err = FillFrom(MustParse("XXXX"), MustParse("X1X0"))
	assert.NoError(err)
	assert.Equal("X1X0", filled.String())

	_, err = FillFrom(MustParse("1X"), MustParse("011"))
	assert.ErrorIs(err, ErrBitWidthMismatch)
}

func TestCollapse(t *testing.T) {
	assert := assert.New(t)

	var got []string
	for bd := range Collapse(MustParse("1X0X")) {
		assert.True(bd.Concrete())
		got = append(got, bd.String())
	}
	assert.ElementsMatch([]string{"1000", "1001", "1100", "1101"}, got)

	// Deterministic.
	var again []string
	for bd := range Collapse(MustParse("1X0X")) {
		again = append(again, bd.String())
	}
	assert.Equal(got, again)

	concrete := slices.Collect(Collapse(MustParse("0110")))
	assert.Len(concrete, 1)
	assert.Equal("0110", concrete[0].String())

	empty := slices.Collect(Collapse(Bitdef{}))
	assert.Len(empty, 1)
}

func TestCollapseExhaustive(t *testing.T) {
	assert := assert.New(t)

	seen := map[uint64]int{}
	for bd := range Collapse(Unknown(10)) {
		seen[bd.Uint()]++
	}
	assert.Len(seen, 1024)
	for value, count := range seen {
		assert.Equal(1, count, "value %d", value)
	}
}

func TestCollapseStop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Collapse(Unknown(8)) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}

func TestExtract(t *testing.T) {
	assert := assert.New(t)

	bd := MustParse("1100_1010_X111")

	sub, err := Extract(bd, 3, 0)
	assert.NoError(err)
	assert.Equal("X111", sub.String())

	sub, err = Extract(bd, 11, 8)
	assert.NoError(err)
	assert.Equal("1100", sub.String())

	sub, err = Extract(bd, 5, 5)
	assert.NoError(err)
	assert.Equal("1", sub.String())

	_, err = Extract(bd, 12, 8)
	assert.ErrorIs(err, ErrBitRange)
	_, err = Extract(bd, 3, -1)
	assert.ErrorIs(err, ErrBitRange)
	_, err = Extract(bd, 2, 3)
	assert.ErrorIs(err, ErrBitRange)
}

func TestMatches(t *testing.T) {
	assert := assert.New(t)

	bd := MustParse("1X0X")
	for value := range uint64(16) {
		want := value == 0b1000 || value == 0b1001 || value == 0b1100 || value == 0b1101
		assert.Equal(want, bd.Matches(value), "value %04b", value)
	}
}

func TestBit(t *testing.T) {
	require := require.New(t)

	bd := MustParse("10X")
	require.Equal(byte('X'), bd.Bit(0))
	require.Equal(byte('0'), bd.Bit(1))
	require.Equal(byte('1'), bd.Bit(2))
	require.Equal(byte(0), bd.Bit(3))
}
