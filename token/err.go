package token

import (
	"github.com/ezrec/eightbit/translate"
)

var f = translate.From

// ErrNumber is raised for a word that is not an integer literal.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
