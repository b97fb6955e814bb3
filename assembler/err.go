package assembler

import (
	"errors"

	"github.com/ezrec/eightbit/translate"
)

var f = translate.From

var (
	ErrLineNoOperation        = errors.New(f("unable to match line to an operation"))
	ErrLineMultipleOperations = errors.New(f("line matched multiple operations"))
	ErrVariableOffset         = errors.New(f("variable start offset out of range"))
)

// ErrLine is raised when a source line does not resolve to exactly one operation.
type ErrLine struct {
	Line string // Cleaned line text.
	Hint string // Mnemonic the line may have meant, if any.
	Err  error
}

func (err *ErrLine) Error() string {
	if len(err.Hint) > 0 {
		return f("'%v': %v (did you mean %v?)", err.Line, err.Err, err.Hint)
	}
	return f("'%v': %v", err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// ErrAssembly is the error returned for any failure to assemble a program.
type ErrAssembly struct {
	Kind   Kind
	LineNo int    // 1-based source line.
	Raw    string // Source line text, as read.
	Symbol string // Offending label or variable, if any.
	Err    error
}

func (err *ErrAssembly) Error() string {
	detail := err.Kind.String()
	if len(err.Symbol) > 0 {
		detail = f("%v %v", detail, err.Symbol)
	}
	if err.Err != nil {
		detail = f("%v: %v", detail, err.Err)
	}
	return f("Error processing line %d (%v): %v", err.LineNo, err.Raw, detail)
}

// Unwrap allows errors.Is to match both the Kind and the underlying error.
func (err *ErrAssembly) Unwrap() []error {
	if err.Err == nil {
		return []error{err.Kind}
	}
	return []error{err.Kind, err.Err}
}
