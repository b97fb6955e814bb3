package operation

import (
	"errors"
	"strings"

	"github.com/ezrec/eightbit/translate"
)

var f = translate.From

var (
	ErrSignatureNone      = errors.New(f("arguments match no signature"))
	ErrSignatureAmbiguous = errors.New(f("arguments match multiple signatures"))
	ErrStepCount          = errors.New(f("step count out of range"))
)

// ErrArgumentUnknown is raised for an argument that is neither a module nor a constant.
type ErrArgumentUnknown string

func (err ErrArgumentUnknown) Error() string {
	return f("'%v' is not a module or constant", string(err))
}

// ErrArgumentAmbiguous is raised when an argument falls in more than one
// argument class. The classes are exclusive, so this is an internal fault.
type ErrArgumentAmbiguous string

func (err ErrArgumentAmbiguous) Error() string {
	return f("'%v' matches more than one argument class", string(err))
}

// ErrParse reports a line whose mnemonic matched but whose arguments did not.
type ErrParse struct {
	Mnemonic   string
	Args       []string
	Signatures []Signature // Legal signatures, for the user.
	Err        error
}

func (err *ErrParse) Error() string {
	if errors.Is(err.Err, ErrSignatureNone) && len(err.Signatures) > 0 {
		legal := make([]string, len(err.Signatures))
		for n, sig := range err.Signatures {
			legal[n] = strings.TrimSpace(err.Mnemonic + " " + sig.String())
		}
		return f("%v %v: %v; legal forms: %v", err.Mnemonic, strings.Join(err.Args, " "), err.Err, strings.Join(legal, ", "))
	}
	return f("%v %v: %v", err.Mnemonic, strings.Join(err.Args, " "), err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}
