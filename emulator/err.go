package emulator

import (
	"errors"

	"github.com/ezrec/eightbit/translate"
)

var f = translate.From

var (
	ErrBusContention = errors.New(f("more than one output drives the bus"))
	ErrTickLimit     = errors.New(f("tick limit exceeded"))
	ErrMicrocode     = errors.New(f("microcode incomplete"))
	ErrProgramSize   = errors.New(f("program larger than memory"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
