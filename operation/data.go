// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package operation

import (
	"github.com/ezrec/eightbit/langdef"
)

// Module sets of the data movement operations.
var (
	copyModules  = []langdef.Module{langdef.MODULE_ACC, langdef.MODULE_A, langdef.MODULE_B, langdef.MODULE_C, langdef.MODULE_SP, langdef.MODULE_PC}
	setModules   = []langdef.Module{langdef.MODULE_ACC, langdef.MODULE_A, langdef.MODULE_B, langdef.MODULE_C, langdef.MODULE_SP}
	dataModules  = []langdef.Module{langdef.MODULE_ACC, langdef.MODULE_A, langdef.MODULE_B, langdef.MODULE_C}
	indexModules = []langdef.Module{langdef.MODULE_ACC, langdef.MODULE_A, langdef.MODULE_B, langdef.MODULE_C, langdef.MODULE_SP, langdef.MODULE_PC}
	storeIndex   = []langdef.Module{langdef.MODULE_ACC, langdef.MODULE_A, langdef.MODULE_B, langdef.MODULE_C, langdef.MODULE_SP}
)

// fetchConstant reads the program byte after the instruction into the
// lines given, leaving PC on the following byte.
func fetchConstant(lines ...langdef.Control) [][]langdef.Control {
	return [][]langdef.Control{
		step(langdef.CTL_PC_OUT, langdef.CTL_MAR_IN),
		append(step(langdef.CTL_RAM_SEL_PROG, langdef.CTL_RAM_OUT, langdef.CTL_PC_COUNT), lines...),
	}
}

// Noop does nothing for one step.
type Noop struct{}

func (Noop) Mnemonic() string { return "NOOP" }
func (op Noop) Signatures() []Signature { return signatures(op) }
func (op Noop) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Noop) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Noop) encodings() []encoding {
	return []encoding{{
		sig:   Signature{},
		instr: opcode(langdef.GROUP_COPY, int(langdef.MODULE_ACC), int(langdef.MODULE_ACC)),
		code:  always(step()),
	}}
}

// Halt stops the clock.
type Halt struct{}

func (Halt) Mnemonic() string { return "HALT" }
func (op Halt) Signatures() []Signature { return signatures(op) }
func (op Halt) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Halt) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Halt) encodings() []encoding {
	return []encoding{{
		sig:   Signature{},
		instr: opcode(langdef.GROUP_COPY, int(langdef.MODULE_A), int(langdef.MODULE_A)),
		code:  always(step(langdef.CTL_HALT)),
	}}
}

// Copy copies one module into another: COPY src dest
type Copy struct{}

func (Copy) Mnemonic() string { return "COPY" }
func (op Copy) Signatures() []Signature { return signatures(op) }
func (op Copy) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Copy) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Copy) encodings() (encs []encoding) {
	for _, src := range copyModules {
		for _, dest := range copyModules {
			if src == dest {
				continue
			}
			encs = append(encs, encoding{
				sig:   Signature{ModuleArg(src, false), ModuleArg(dest, false)},
				instr: opcode(langdef.GROUP_COPY, int(src), int(dest)),
				code:  always(step(out(src), in(dest))),
			})
		}
	}
	return
}

// Set loads a constant into a module: SET dest <constant>
type Set struct{}

func (Set) Mnemonic() string { return "SET" }
func (op Set) Signatures() []Signature { return signatures(op) }
func (op Set) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Set) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Set) encodings() (encs []encoding) {
	for _, dest := range setModules {
		encs = append(encs, encoding{
			sig:   Signature{ModuleArg(dest, false), ConstantArg(false)},
			instr: opcode(langdef.GROUP_COPY, int(langdef.MODULE_CONST), int(dest)),
			code:  always(fetchConstant(in(dest))...),
		})
	}
	return
}

// Load reads data memory into a module: LOAD [src] dest
type Load struct{}

func (Load) Mnemonic() string { return "LOAD" }
func (op Load) Signatures() []Signature { return signatures(op) }
func (op Load) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Load) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Load) encodings() (encs []encoding) {
	for _, dest := range dataModules {
		for _, src := range indexModules {
			encs = append(encs, encoding{
				sig:   Signature{ModuleArg(src, true), ModuleArg(dest, false)},
				instr: opcode(langdef.GROUP_LOAD, int(src), int(dest)),
				code: always(
					step(out(src), langdef.CTL_MAR_IN),
					step(langdef.CTL_RAM_OUT, in(dest)),
				),
			})
		}
		encs = append(encs, encoding{
			sig:   Signature{ConstantArg(true), ModuleArg(dest, false)},
			instr: opcode(langdef.GROUP_LOAD, int(langdef.MODULE_CONST), int(dest)),
			code: always(append(fetchConstant(langdef.CTL_MAR_IN),
				step(langdef.CTL_RAM_OUT, in(dest)),
			)...),
		})
	}
	return
}

// Store writes a module to data memory: STORE src [dest]
type Store struct{}

func (Store) Mnemonic() string { return "STORE" }
func (op Store) Signatures() []Signature { return signatures(op) }
func (op Store) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Store) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Store) encodings() (encs []encoding) {
	for _, src := range dataModules {
		for _, dest := range storeIndex {
			encs = append(encs, encoding{
				sig:   Signature{ModuleArg(src, false), ModuleArg(dest, true)},
				instr: opcode(langdef.GROUP_STORE, int(src), int(dest)),
				code: always(
					step(out(dest), langdef.CTL_MAR_IN),
					step(out(src), langdef.CTL_RAM_IN),
				),
			})
		}
		encs = append(encs, encoding{
			sig:   Signature{ModuleArg(src, false), ConstantArg(true)},
			instr: opcode(langdef.GROUP_STORE, int(src), int(langdef.MODULE_CONST)),
			code: always(append(fetchConstant(langdef.CTL_MAR_IN),
				step(out(src), langdef.CTL_RAM_IN),
			)...),
		})
	}
	return
}

// Push decrements SP then stores a module at [SP]: PUSH src
type Push struct{}

func (Push) Mnemonic() string { return "PUSH" }
func (op Push) Signatures() []Signature { return signatures(op) }
func (op Push) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Push) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Push) encodings() (encs []encoding) {
	for _, src := range dataModules {
		encs = append(encs, encoding{
			sig:   Signature{ModuleArg(src, false)},
			instr: opcode(langdef.GROUP_STORE, int(src), int(langdef.MODULE_STACK)),
			code: always(
				append(step(langdef.CTL_SP_OUT, langdef.CTL_ALU_STORE_RESULT), langdef.AluSelect(langdef.ALU_OP_DECR)...),
				step(langdef.CTL_ALU_OUT, langdef.CTL_SP_IN, langdef.CTL_MAR_IN),
				step(out(src), langdef.CTL_RAM_IN),
			),
		})
	}
	return
}

// Pop loads a module from [SP] then increments SP: POP dest
type Pop struct{}

func (Pop) Mnemonic() string { return "POP" }
func (op Pop) Signatures() []Signature { return signatures(op) }
func (op Pop) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }
func (op Pop) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Pop) encodings() (encs []encoding) {
	for _, dest := range dataModules {
		encs = append(encs, encoding{
			sig:   Signature{ModuleArg(dest, false)},
			instr: opcode(langdef.GROUP_LOAD, int(langdef.MODULE_STACK), int(dest)),
			code: always(
				step(langdef.CTL_SP_OUT, langdef.CTL_MAR_IN),
				step(langdef.CTL_RAM_OUT, in(dest)),
				append(step(langdef.CTL_SP_OUT, langdef.CTL_ALU_STORE_RESULT), langdef.AluSelect(langdef.ALU_OP_INCR)...),
				step(langdef.CTL_ALU_OUT, langdef.CTL_SP_IN),
			),
		})
	}
	return
}
