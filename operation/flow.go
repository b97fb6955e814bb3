package operation

import (
	"fmt"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/langdef"
)

// jumpSteps loads PC from the program byte after the instruction.
func jumpSteps() [][]langdef.Control {
	return [][]langdef.Control{
		step(langdef.CTL_PC_OUT, langdef.CTL_MAR_IN),
		step(langdef.CTL_RAM_SEL_PROG, langdef.CTL_RAM_OUT, langdef.CTL_PC_IN),
	}
}

// Jump continues execution at a constant address: JUMP <constant>
type Jump struct{}

func (Jump) Mnemonic() string { return "JUMP" }

func (op Jump) Signatures() []Signature { return signatures(op) }

func (op Jump) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }

func (op Jump) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (Jump) encodings() []encoding {
	return []encoding{{
		sig:   Signature{ConstantArg(false)},
		instr: opcode(langdef.GROUP_ALU, int(langdef.ALU_OP_NOT), langdef.FLOW_JUMP),
		code:  always(jumpSteps()...),
	}}
}

var jumpFlow = map[langdef.Flag]int{
	langdef.FLAG_ZERO:     langdef.FLOW_JUMP_ZERO,
	langdef.FLAG_CARRY:    langdef.FLOW_JUMP_CARRY,
	langdef.FLAG_NEGATIVE: langdef.FLOW_JUMP_NEGATIVE,
	langdef.FLAG_OVERFLOW: langdef.FLOW_JUMP_OVERFLOW,
}

// JumpIf jumps to a constant address when a flag is set, and otherwise
// skips the address byte: JUMP_IF_<flag>_FLAG <constant>
type JumpIf struct {
	Flag langdef.Flag
}

func (op JumpIf) Mnemonic() string {
	return fmt.Sprintf("JUMP_IF_%v_FLAG", op.Flag)
}

func (op JumpIf) Signatures() []Signature { return signatures(op) }

func (op JumpIf) ParseLine(line string) ([]MachineCodeByte, error) { return parseLine(op, line) }

func (op JumpIf) MicrocodeTemplates() ([]DataTemplate, error) { return microcodeTemplates(op) }

func (op JumpIf) encodings() []encoding {
	flow, ok := jumpFlow[op.Flag]
	if !ok {
		panic(fmt.Sprintf("no jump for flag %v", op.Flag))
	}
	return []encoding{{
		sig:   Signature{ConstantArg(false)},
		instr: opcode(langdef.GROUP_ALU, int(langdef.ALU_OP_NOT), flow),
		code: []microcode{
			{
				flags: []bitdef.Bitdef{langdef.FlagBits(op.Flag, true)},
				steps: jumpSteps(),
			},
			{
				flags: []bitdef.Bitdef{langdef.FlagBits(op.Flag, false)},
				steps: [][]langdef.Control{step(langdef.CTL_PC_COUNT)},
			},
		},
	}}
}
