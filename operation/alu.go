package operation

import (
	"fmt"
	"slices"

	"github.com/ezrec/eightbit/langdef"
)

var aluMnemonic = map[langdef.AluOp]string{
	langdef.ALU_OP_ADD:  "ADD",
	langdef.ALU_OP_SUB:  "SUB",
	langdef.ALU_OP_AND:  "AND",
	langdef.ALU_OP_OR:   "OR",
	langdef.ALU_OP_XOR:  "XOR",
	langdef.ALU_OP_INCR: "INCR",
	langdef.ALU_OP_DECR: "DECR",
	langdef.ALU_OP_NOT:  "NOT",
}

// aluSteps computes op on the bus value and stores the result and flags.
func aluSteps(op langdef.AluOp, lines ...langdef.Control) []langdef.Control {
	lines = append(slices.Clone(lines), langdef.CTL_ALU_STORE_RESULT, langdef.CTL_ALU_STORE_FLAGS)
	return append(lines, langdef.AluSelect(op)...)
}

// Alu combines ACC with an operand into ACC, updating the flags:
//
//	ADD|SUB|AND|OR|XOR <module>|<constant>
type Alu struct {
	Op langdef.AluOp
}

func (op Alu) Mnemonic() string {
	name, ok := aluMnemonic[op.Op]
	if !ok || op.Op > langdef.ALU_OP_XOR {
		return fmt.Sprintf("ALU(%d)", int(op.Op))
	}
	return name
}

func (op Alu) Signatures() []Signature { return signatures(op) }

func (op Alu) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }

func (op Alu) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (op Alu) encodings() (encs []encoding) {
	for _, operand := range dataModules {
		encs = append(encs, encoding{
			sig:   Signature{ModuleArg(operand, false)},
			instr: opcode(langdef.GROUP_ALU, int(op.Op), int(operand)),
			code: always(
				aluSteps(op.Op, out(operand)),
				step(langdef.CTL_ALU_OUT, langdef.CTL_ACC_IN),
			),
		})
	}
	encs = append(encs, encoding{
		sig:   Signature{ConstantArg(false)},
		instr: opcode(langdef.GROUP_ALU, int(op.Op), int(langdef.MODULE_CONST)),
		code: always(append(fetchConstant(aluSteps(op.Op)...),
			step(langdef.CTL_ALU_OUT, langdef.CTL_ACC_IN),
		)...),
	})
	return
}

// Counter increments or decrements a module, updating the flags:
//
//	INCR|DECR <module>
type Counter struct {
	Op langdef.AluOp
}

func (op Counter) Mnemonic() string {
	if op.Op != langdef.ALU_OP_INCR && op.Op != langdef.ALU_OP_DECR {
		return fmt.Sprintf("COUNTER(%d)", int(op.Op))
	}
	return aluMnemonic[op.Op]
}

func (op Counter) Signatures() []Signature { return signatures(op) }

func (op Counter) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }

func (op Counter) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (op Counter) encodings() (encs []encoding) {
	for _, m := range setModules {
		encs = append(encs, encoding{
			sig:   Signature{ModuleArg(m, false)},
			instr: opcode(langdef.GROUP_ALU, int(op.Op), int(m)),
			code: always(
				aluSteps(op.Op, out(m)),
				step(langdef.CTL_ALU_OUT, in(m)),
			),
		})
	}
	return
}

// Not inverts ACC, updating the flags.
type Not struct{}

func (Not) Mnemonic() string { return aluMnemonic[langdef.ALU_OP_NOT] }

func (op Not) Signatures() []Signature { return signatures(op) }

func (op Not) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }

func (op Not) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Not) encodings() []encoding {
	return []encoding{{
		sig:   Signature{},
		instr: opcode(langdef.GROUP_ALU, int(langdef.ALU_OP_NOT), langdef.FLOW_NOT),
		code: always(
			aluSteps(langdef.ALU_OP_NOT, langdef.CTL_ACC_OUT),
			step(langdef.CTL_ALU_OUT, langdef.CTL_ACC_IN),
		),
	}}
}
