package bitdef

// NumberInRange returns true if value can be stored in width bits, either as
// a two's complement negative or as an unsigned positive number.
//
// Both -1 and 255 are accepted for an 8 bit field, and encode identically.
func NumberInRange(value int, width int) bool {
	if width <= 0 || width >= MAX_WIDTH {
		return false
	}
	low := -(1 << (width - 1))
	high := (1 << width) - 1
	return value >= low && value <= high
}

// FromNumber encodes value as a width bit two's complement field.
func FromNumber(value int, width int) (bd Bitdef, err error) {
	if !NumberInRange(value, width) {
		err = &ErrNumberRange{Value: value, Width: width}
		return
	}
	if value < 0 {
		value += 1 << width
	}
	bd = FromUint(uint64(value), width)
	return
}

// ToNumber decodes a concrete bit field as an unsigned number.
func ToNumber(bd Bitdef) (value int, err error) {
	if !bd.Concrete() || bd.width >= MAX_WIDTH {
		err = ErrBitRange
		return
	}
	value = int(bd.Uint())
	return
}
