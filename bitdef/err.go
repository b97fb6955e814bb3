package bitdef

import (
	"errors"

	"github.com/ezrec/eightbit/translate"
)

var f = translate.From

var (
	ErrBitWidthMismatch = errors.New(f("bit width mismatch"))
	ErrBitConflict      = errors.New(f("conflicting bit definitions"))
	ErrBitRange         = errors.New(f("bit index out of range"))
)

// ErrBitChar is raised for a bit field literal with a character other than 0, 1 or X.
type ErrBitChar string

func (err ErrBitChar) Error() string {
	return f("'%v' is not a bit field", string(err))
}

// ErrNumberRange is raised when a number does not fit a bit field.
type ErrNumberRange struct {
	Value int
	Width int
}

func (err *ErrNumberRange) Error() string {
	return f("%d does not fit in %d bits", err.Value, err.Width)
}
