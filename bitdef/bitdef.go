// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bitdef

import (
	"iter"
	"strings"
)

// MAX_WIDTH is the widest bit field a Bitdef can hold.
const MAX_WIDTH = 64

// Bitdef is a fixed width bit field where each bit is 0, 1 or X (don't care).
//
// Bit 0 is the least significant (rightmost) bit. The zero value is the
// empty, zero width, bit field.
type Bitdef struct {
	width int
	value uint64 // Bit values, only meaningful where care is set.
	care  uint64 // Set bits are defined, clear bits are X.
}

// widthMask returns the mask covering all bits of a width.
func widthMask(width int) uint64 {
	if width >= MAX_WIDTH {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Parse converts a string of '0', '1' and 'X' characters, most significant
// bit first, into a Bitdef. Underscores are ignored as digit separators.
func Parse(text string) (bd Bitdef, err error) {
	for _, c := range text {
		switch c {
		case '_':
			continue
		case '0', '1', 'X', 'x':
		default:
			err = ErrBitChar(text)
			return
		}
		if bd.width == MAX_WIDTH {
			err = ErrBitRange
			return
		}
		bd.width++
		bd.value <<= 1
		bd.care <<= 1
		switch c {
		case '0':
			bd.care |= 1
		case '1':
			bd.care |= 1
			bd.value |= 1
		}
	}

	return
}

// MustParse is Parse for static tables; it panics on malformed text.
func MustParse(text string) Bitdef {
	bd, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return bd
}

// Unknown returns a Bitdef of the given width with every bit X.
func Unknown(width int) Bitdef {
	return Bitdef{width: width}
}

// FromUint returns a fully concrete Bitdef holding the low bits of value.
func FromUint(value uint64, width int) Bitdef {
	mask := widthMask(width)
	return Bitdef{width: width, value: value & mask, care: mask}
}

// Len returns the width of the bit field.
func (bd Bitdef) Len() int {
	return bd.width
}

// Empty returns true for a zero width bit field.
func (bd Bitdef) Empty() bool {
	return bd.width == 0
}

// Concrete returns true if no bit is X.
func (bd Bitdef) Concrete() bool {
	return bd.care == widthMask(bd.width)
}

// Unknowns returns the number of X bits.
func (bd Bitdef) Unknowns() (count int) {
	missing := ^bd.care & widthMask(bd.width)
	for ; missing != 0; missing &= missing - 1 {
		count++
	}
	return
}

// Uint returns the value of the bit field, with X bits read as 0.
func (bd Bitdef) Uint() uint64 {
	return bd.value & bd.care
}

// Bit returns the character ('0', '1' or 'X') of bit n.
func (bd Bitdef) Bit(n int) byte {
	switch {
	case n < 0 || n >= bd.width:
		return 0
	case bd.care&(1<<n) == 0:
		return 'X'
	case bd.value&(1<<n) == 0:
		return '0'
	default:
		return '1'
	}
}

// String renders the bit field most significant bit first.
func (bd Bitdef) String() string {
	var sb strings.Builder
	sb.Grow(bd.width)
	for n := bd.width - 1; n >= 0; n-- {
		sb.WriteByte(bd.Bit(n))
	}
	return sb.String()
}

// Merge overlays same width bit fields. Defined bits of each field are
// applied in turn; two fields defining the same bit differently is an error.
func Merge(defs ...Bitdef) (merged Bitdef, err error) {
	if len(defs) == 0 {
		return
	}

	merged.width = defs[0].width
	for _, bd := range defs {
		if bd.width != merged.width {
			err = ErrBitWidthMismatch
			return
		}
		both := merged.care & bd.care
		if (merged.value^bd.value)&both != 0 {
			err = ErrBitConflict
			return
		}
		merged.value |= bd.value & bd.care
		merged.care |= bd.care
	}

	return
}

// Concat joins bit fields, the first argument becoming the most significant.
func Concat(defs ...Bitdef) (joined Bitdef, err error) {
	for _, bd := range defs {
		if joined.width+bd.width > MAX_WIDTH {
			err = ErrBitRange
			return
		}
		joined.width += bd.width
		joined.value = (joined.value << bd.width) | (bd.value & bd.care)
		joined.care = (joined.care << bd.width) | bd.care
	}

	return
}

// Fill replaces every X bit with the bit value of fill.
func Fill(bd Bitdef, fill bool) Bitdef {
	mask := widthMask(bd.width)
	if fill {
		bd.value = (bd.value & bd.care) | (^bd.care & mask)
	} else {
		bd.value &= bd.care
	}
	bd.care = mask
	return bd
}

// FillFrom replaces every X bit with the matching bit of a same width default.
func FillFrom(bd Bitdef, def Bitdef) (filled Bitdef, err error) {
	if bd.width != def.width {
		err = ErrBitWidthMismatch
		return
	}
	filled = Bitdef{
		width: bd.width,
		value: (bd.value & bd.care) | (def.value & def.care &^ bd.care),
		care:  bd.care | def.care,
	}
	return
}

// Collapse enumerates every concrete bit field matched by bd, 2^k values for
// k X bits. The enumeration counts through the X bits from least significant
// upwards, so the order is deterministic.
func Collapse(bd Bitdef) iter.Seq[Bitdef] {
	var positions []int
	for n := range bd.width {
		if bd.care&(1<<n) == 0 {
			positions = append(positions, n)
		}
	}

	return func(yield func(Bitdef) bool) {
		total := uint64(1) << len(positions)
		base := bd.value & bd.care
		mask := widthMask(bd.width)
		for count := uint64(0); count < total; count++ {
			value := base
			for n, pos := range positions {
				if count&(1<<n) != 0 {
					value |= 1 << pos
				}
			}
			if !yield(Bitdef{width: bd.width, value: value, care: mask}) {
				return
			}
		}
	}
}

// Extract returns bits high down to low (both inclusive, bit 0 least significant).
func Extract(bd Bitdef, high, low int) (sub Bitdef, err error) {
	if low < 0 || high < low || high >= bd.width {
		err = ErrBitRange
		return
	}

	width := high - low + 1
	mask := widthMask(width)
	sub = Bitdef{
		width: width,
		value: (bd.value >> low) & mask,
		care:  (bd.care >> low) & mask,
	}
	return
}

// Matches returns true if the concrete value is one of the values bd collapses to.
func (bd Bitdef) Matches(value uint64) bool {
	return (value^bd.value)&bd.care == 0
}
