package rom

import (
	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/translate"
)

var f = translate.From

// ErrCollision is raised when two microcode templates claim one address.
type ErrCollision struct {
	Address bitdef.Bitdef
}

func (err *ErrCollision) Error() string {
	return f("microcode address %v claimed more than once", err.Address)
}
