package assembler

import (
	"strings"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/operation"
	"github.com/ezrec/eightbit/token"
)

// AssemblyLine is one line of source and the machine code it produced.
type AssemblyLine struct {
	LineNo int    // 1-based position in the source.
	Raw    string // Text as read.
	Clean  string // Text without comments and redundant whitespace.

	DefinesLabel bool
	DefinedLabel string

	// Label bound to this line, the first line with machine code after the
	// label's definition.
	HasLabelAssigned bool
	AssignedLabel    string

	DefinesVariable bool
	DefinedVariable string

	HasMachineCode bool
	MachineCode    []operation.MachineCodeByte
}

// cleanLine removes the comment from a line and collapses its whitespace.
func cleanLine(raw string) string {
	text, _, _ := strings.Cut(raw, "//")
	return strings.Join(token.Tokenize(text), " ")
}

// matchLine runs a line through every operation. Exactly one must accept it.
func (asm *Assembler) matchLine(clean string) (mcbs []operation.MachineCodeByte, err error) {
	matched := 0
	for _, op := range asm.catalog.Operations() {
		var got []operation.MachineCodeByte
		got, err = op.ParseLine(clean)
		if err != nil {
			err = &ErrLine{Line: clean, Err: err}
			return
		}
		if got == nil {
			continue
		}
		matched++
		mcbs = got
	}

	switch matched {
	case 0:
		err = &ErrLine{Line: clean, Hint: asm.hint(clean), Err: ErrLineNoOperation}
	case 1:
	default:
		err = &ErrLine{Line: clean, Err: ErrLineMultipleOperations}
	}
	if err != nil {
		mcbs = nil
	}

	return
}

// hint suggests the mnemonic a line with an unknown mnemonic may have meant.
func (asm *Assembler) hint(clean string) string {
	words := token.Tokenize(clean)
	if len(words) == 0 {
		return ""
	}
	op, err := asm.catalog.Lookup(strings.ToUpper(words[0]))
	if err != nil {
		return ""
	}
	return op.Mnemonic()
}

// processLine cleans and classifies a single source line.
func (asm *Assembler) processLine(lineNo int, raw string) (line *AssemblyLine, err error) {
	line = &AssemblyLine{
		LineNo: lineNo,
		Raw:    raw,
		Clean:  cleanLine(raw),
	}

	words := token.Tokenize(line.Clean)
	switch {
	case len(words) == 0:
	case len(words) == 1 && token.IsLabel(words[0]):
		line.DefinesLabel = true
		line.DefinedLabel = words[0]
	case len(words) == 1 && token.IsVariable(words[0]):
		line.DefinesVariable = true
		line.DefinedVariable = words[0]
	default:
		line.MachineCode, err = asm.matchLine(line.Clean)
		if err != nil {
			err = &ErrAssembly{Kind: KIND_LINE, LineNo: lineNo, Raw: raw, Err: err}
			return
		}
		line.HasMachineCode = true
	}

	return
}

// MachineCode returns the resolved bytes of the lines, in program order.
func MachineCode(lines []*AssemblyLine) (codes []bitdef.Bitdef) {
	for _, line := range lines {
		if !line.HasMachineCode {
			continue
		}
		for _, mcb := range line.MachineCode {
			codes = append(codes, mcb.Bitstring)
		}
	}
	return
}
