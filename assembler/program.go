package assembler

import (
	"iter"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/operation"
)

// Program is an assembled program.
type Program struct {
	Lines []*AssemblyLine
}

// Debug locates a program byte in the source.
type Debug struct {
	*AssemblyLine
	Offset int // Byte offset within the line's machine code.
}

// Debug returns the source line of the byte at index, or a zero Debug if
// no line holds it.
func (prog *Program) Debug(index int) (dbg Debug) {
	for _, line := range prog.Lines {
		if len(line.MachineCode) == 0 {
			continue
		}
		first := line.MachineCode[0].Index
		if index >= first && index < first+len(line.MachineCode) {
			dbg = Debug{
				AssemblyLine: line,
				Offset:       index - first,
			}
			break
		}
	}

	return
}

// MachineCode returns the resolved bytes in program order.
func (prog *Program) MachineCode() []bitdef.Bitdef {
	return MachineCode(prog.Lines)
}

// Binary returns the program as bytes, ready to load at address 0.
func (prog *Program) Binary() (bins []byte) {
	for _, mcb := range prog.Codes() {
		bins = append(bins, byte(mcb.Bitstring.Uint()))
	}

	return
}

// Codes iterates over the program bytes by index.
func (prog *Program) Codes() iter.Seq2[int, operation.MachineCodeByte] {
	return func(yield func(index int, mcb operation.MachineCodeByte) bool) {
		for _, line := range prog.Lines {
			for _, mcb := range line.MachineCode {
				if !yield(mcb.Index, mcb) {
					return
				}
			}
		}
	}
}
