package assembler

import (
	"github.com/ezrec/eightbit/langdef"
	"github.com/ezrec/eightbit/operation"
)

// validate checks the whole program structure, returning the first failure
// found in check order.
func (asm *Assembler) validate(lines []*AssemblyLine) (err error) {
	checks := []func([]*AssemblyLine) error{
		checkLabelDuplicate,
		checkLabelDouble,
		checkLabelUndefined,
		checkVariableDuplicate,
		asm.checkVariableCapacity,
		checkProgramCapacity,
	}

	for _, check := range checks {
		cerr := check(lines)
		if cerr != nil && err == nil {
			err = cerr
		}
	}

	return
}

// lineError builds the error of a structural check.
func lineError(kind Kind, line *AssemblyLine, symbol string) error {
	return &ErrAssembly{Kind: kind, LineNo: line.LineNo, Raw: line.Raw, Symbol: symbol}
}

func checkLabelDuplicate(lines []*AssemblyLine) error {
	defined := map[string]bool{}
	for _, line := range lines {
		if !line.DefinesLabel {
			continue
		}
		if defined[line.DefinedLabel] {
			return lineError(KIND_LABEL_DUPLICATE, line, line.DefinedLabel)
		}
		defined[line.DefinedLabel] = true
	}
	return nil
}

func checkLabelDouble(lines []*AssemblyLine) error {
	pending := ""
	for _, line := range lines {
		switch {
		case line.DefinesLabel:
			if len(pending) > 0 {
				return lineError(KIND_LABEL_DOUBLE, line, line.DefinedLabel)
			}
			pending = line.DefinedLabel
		case line.HasMachineCode:
			pending = ""
		}
	}
	return nil
}

func checkLabelUndefined(lines []*AssemblyLine) error {
	defined := map[string]bool{}
	for _, line := range lines {
		if line.DefinesLabel {
			defined[line.DefinedLabel] = true
		}
	}

	for _, line := range lines {
		for _, mcb := range line.MachineCode {
			if mcb.ConstantType != operation.CONSTANT_LABEL {
				continue
			}
			if !defined[mcb.Constant] {
				return lineError(KIND_LABEL_UNDEFINED, line, mcb.Constant)
			}
		}
	}
	return nil
}

func checkVariableDuplicate(lines []*AssemblyLine) error {
	defined := map[string]bool{}
	for _, line := range lines {
		if !line.DefinesVariable {
			continue
		}
		if defined[line.DefinedVariable] {
			return lineError(KIND_VARIABLE_DUPLICATE, line, line.DefinedVariable)
		}
		defined[line.DefinedVariable] = true
	}
	return nil
}

// checkVariableCapacity requires every variable address, counting up from
// the start offset, to fit in a byte.
func (asm *Assembler) checkVariableCapacity(lines []*AssemblyLine) error {
	count := 0
	for line, name := range variables(lines) {
		count++
		if count > langdef.MAX_VARIABLES || asm.VariableStartOffset+count-1 > langdef.MAX_ADDRESS {
			return lineError(KIND_VARIABLE_CAPACITY, line, name)
		}
	}
	return nil
}

func checkProgramCapacity(lines []*AssemblyLine) error {
	total := 0
	for _, line := range lines {
		total += len(line.MachineCode)
		if total > langdef.MAX_BYTES {
			return lineError(KIND_PROGRAM_CAPACITY, line, "")
		}
	}
	return nil
}
