package assembler

// Kind classifies an ErrAssembly.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_LINE               = Kind(iota) // invalid line
	KIND_LABEL_DUPLICATE                 // label defined more than once
	KIND_LABEL_DOUBLE                    // line labeled more than once
	KIND_LABEL_UNDEFINED                 // undefined label
	KIND_VARIABLE_DUPLICATE              // variable defined more than once
	KIND_VARIABLE_CAPACITY               // too many variables
	KIND_PROGRAM_CAPACITY                // program too large
)

// Error makes a Kind matchable with errors.Is.
func (kind Kind) Error() string {
	return f(kind.String())
}
