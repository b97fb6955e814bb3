// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package operation

import (
	"strings"

	"github.com/ezrec/eightbit/bitdef"
)

// ValueType is the kind of value an argument takes.
type ValueType int

const (
	VALUE_MODULE   = ValueType(0) // module
	VALUE_CONSTANT = ValueType(1) // constant
)

// ArgDef describes one legal operand of an operation.
type ArgDef struct {
	ValueType        ValueType // Module name or constant.
	IsMemoryLocation bool      // Operand is written as [X].
	Value            string    // Module name, when ValueType is VALUE_MODULE.
}

func (ad ArgDef) String() (text string) {
	text = ad.Value
	if ad.ValueType == VALUE_CONSTANT {
		text = "<constant>"
	}
	if ad.IsMemoryLocation {
		text = "[" + text + "]"
	}
	return
}

// Signature is one legal combination of arguments for a mnemonic.
type Signature []ArgDef

func (sig Signature) String() string {
	words := make([]string, len(sig))
	for n, ad := range sig {
		words[n] = ad.String()
	}
	return strings.Join(words, " ")
}

// ByteType is the kind of a machine code byte.
type ByteType int

//go:generate go tool stringer -linecomment -type=ByteType,ConstantType
const (
	BYTE_INSTRUCTION = ByteType(0) // instruction
	BYTE_CONSTANT    = ByteType(1) // constant
)

// ConstantType is the kind of constant carried by a BYTE_CONSTANT byte.
type ConstantType int

const (
	CONSTANT_NONE     = ConstantType(0) // none
	CONSTANT_LABEL    = ConstantType(1) // label
	CONSTANT_VARIABLE = ConstantType(2) // variable
	CONSTANT_NUMBER   = ConstantType(3) // number
)

// MachineCodeByte is one byte of a machine code line.
//
// Instruction bytes carry their Bitstring from creation. Constant bytes carry
// the raw Constant text, and get their Bitstring during resolution.
type MachineCodeByte struct {
	Bitstring    bitdef.Bitdef // Resolved byte, empty until resolved.
	ByteType     ByteType
	ConstantType ConstantType // Only for BYTE_CONSTANT.
	Constant     string       // Raw constant text, e.g. "@loop", "$x", "#10".
	NumberValue  int          // Only for CONSTANT_NUMBER.
	Index        int          // Position among all bytes of the program.
}

// Resolved returns true once the byte holds a full 8 bit value.
func (mcb *MachineCodeByte) Resolved() bool {
	return mcb.Bitstring.Len() == 8 && mcb.Bitstring.Concrete()
}

// DataTemplate pairs a microcode address pattern with its control word.
// X bits in Address are don't care, X bits in Data take the default.
type DataTemplate struct {
	Address bitdef.Bitdef
	Data    bitdef.Bitdef
}

// Operation is an instruction of the assembly language.
type Operation interface {
	// Mnemonic is the first word of a line invoking this operation.
	Mnemonic() string
	// Signatures returns the legal argument combinations.
	Signatures() []Signature
	// ParseLine returns nil, nil for a line that is not this operation.
	// Otherwise it returns the instruction byte followed by one constant
	// byte per constant argument, or an *ErrParse.
	ParseLine(line string) ([]MachineCodeByte, error)
	// MicrocodeTemplates returns the control words of every step of every
	// signature, for every flag state the operation depends on.
	MicrocodeTemplates() ([]DataTemplate, error)
}
