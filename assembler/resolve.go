package assembler

import (
	"iter"
	"log"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/langdef"
	"github.com/ezrec/eightbit/operation"
)

// variables yields each distinct variable once, with the line it first
// appears on, either as a definition or as an operand.
func variables(lines []*AssemblyLine) iter.Seq2[*AssemblyLine, string] {
	return func(yield func(*AssemblyLine, string) bool) {
		seen := map[string]bool{}
		for _, line := range lines {
			names := []string{}
			if line.DefinesVariable {
				names = append(names, line.DefinedVariable)
			}
			for _, mcb := range line.MachineCode {
				if mcb.ConstantType == operation.CONSTANT_VARIABLE {
					names = append(names, mcb.Constant)
				}
			}
			for _, name := range names {
				if seen[name] {
					continue
				}
				seen[name] = true
				if !yield(line, name) {
					return
				}
			}
		}
	}
}

// indexBytes numbers every machine code byte in program order.
func indexBytes(lines []*AssemblyLine) {
	index := 0
	for _, line := range lines {
		if !line.HasMachineCode {
			continue
		}
		for n := range line.MachineCode {
			line.MachineCode[n].Index = index
			index++
		}
	}
}

// assignLabels binds each label to the next line with machine code.
func assignLabels(lines []*AssemblyLine) {
	pending := ""
	for _, line := range lines {
		switch {
		case line.DefinesLabel && len(pending) == 0:
			pending = line.DefinedLabel
		case line.HasMachineCode && len(pending) > 0:
			line.HasLabelAssigned = true
			line.AssignedLabel = pending
			pending = ""
		}
	}
}

// resolveConstants sets the bit string of every constant byte of one type.
func resolveConstants(lines []*AssemblyLine, ct operation.ConstantType, value func(mcb *operation.MachineCodeByte) (bitdef.Bitdef, error)) (err error) {
	for _, line := range lines {
		for n := range line.MachineCode {
			mcb := &line.MachineCode[n]
			if mcb.ByteType != operation.BYTE_CONSTANT || mcb.ConstantType != ct {
				continue
			}
			mcb.Bitstring, err = value(mcb)
			if err != nil {
				return &ErrAssembly{Kind: KIND_LINE, LineNo: line.LineNo, Raw: line.Raw, Symbol: mcb.Constant, Err: err}
			}
		}
	}
	return
}

// resolveLabels replaces labels by the byte index of their line. A label
// after the last machine code takes the index one past the last byte.
func (asm *Assembler) resolveLabels(lines []*AssemblyLine) (err error) {
	address := map[string]int{}
	total := 0
	for _, line := range lines {
		if line.HasLabelAssigned {
			address[line.AssignedLabel] = total
		}
		total += len(line.MachineCode)
	}
	for _, line := range lines {
		if line.DefinesLabel {
			if _, ok := address[line.DefinedLabel]; !ok {
				address[line.DefinedLabel] = total
			}
		}
	}

	if asm.Verbose {
		for label, index := range address {
			log.Printf("label %v: %d", label, index)
		}
	}

	return resolveConstants(lines, operation.CONSTANT_LABEL, func(mcb *operation.MachineCodeByte) (bitdef.Bitdef, error) {
		return bitdef.FromNumber(address[mcb.Constant], langdef.INSTRUCTION_WIDTH)
	})
}

// resolveNumbers encodes every number constant.
func (asm *Assembler) resolveNumbers(lines []*AssemblyLine) (err error) {
	return resolveConstants(lines, operation.CONSTANT_NUMBER, func(mcb *operation.MachineCodeByte) (bitdef.Bitdef, error) {
		return bitdef.FromNumber(mcb.NumberValue, langdef.INSTRUCTION_WIDTH)
	})
}

// resolveVariables allocates data addresses to variables in order of first
// appearance, starting at the variable start offset.
func (asm *Assembler) resolveVariables(lines []*AssemblyLine) (err error) {
	address := map[string]int{}
	for _, name := range variables(lines) {
		address[name] = asm.VariableStartOffset + len(address)
		if asm.Verbose {
			log.Printf("variable %v: %d", name, address[name])
		}
	}

	return resolveConstants(lines, operation.CONSTANT_VARIABLE, func(mcb *operation.MachineCodeByte) (bitdef.Bitdef, error) {
		return bitdef.FromNumber(address[mcb.Constant], langdef.INSTRUCTION_WIDTH)
	})
}
