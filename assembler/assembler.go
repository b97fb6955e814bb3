// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"bufio"
	"io"
	"log"

	"github.com/ezrec/eightbit/langdef"
	"github.com/ezrec/eightbit/operation"
)

// Assembler translates eight bit computer assembly into machine code.
type Assembler struct {
	Verbose             bool                  // If set, verbosely logs the assembler actions.
	Operations          []operation.Operation // Instruction set, operation.All() if nil.
	VariableStartOffset int                   // First data address given to a variable.

	catalog *operation.Catalog
}

// Assemble processes source lines with the full instruction set.
func Assemble(lines []string, variableStartOffset int) ([]*AssemblyLine, error) {
	asm := &Assembler{VariableStartOffset: variableStartOffset}
	return asm.Process(lines)
}

// Process runs the source lines through every assembly pass, returning the
// fully resolved lines.
func (asm *Assembler) Process(source []string) (lines []*AssemblyLine, err error) {
	if asm.VariableStartOffset < 0 || asm.VariableStartOffset > langdef.MAX_ADDRESS {
		err = ErrVariableOffset
		return
	}

	ops := asm.Operations
	if ops == nil {
		ops = operation.All()
	}
	asm.catalog = operation.NewCatalog(ops)

	for n, raw := range source {
		if asm.Verbose {
			log.Printf("%v: %v\n", n+1, raw)
		}
		var line *AssemblyLine
		line, err = asm.processLine(n+1, raw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	err = asm.validate(lines)
	if err != nil {
		return nil, err
	}

	indexBytes(lines)
	assignLabels(lines)

	for _, pass := range []func([]*AssemblyLine) error{
		asm.resolveLabels,
		asm.resolveNumbers,
		asm.resolveVariables,
	} {
		err = pass(lines)
		if err != nil {
			return nil, err
		}
	}

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var source []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		source = append(source, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	lines, err := asm.Process(source)
	if err != nil {
		return
	}

	prog = &Program{Lines: lines}

	return
}
