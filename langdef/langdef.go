// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package langdef

import (
	"fmt"

	"github.com/ezrec/eightbit/bitdef"
)

const (
	INSTRUCTION_WIDTH = 8  // Instruction byte width.
	FLAGS_WIDTH       = 4  // Status flag bits in a microcode address.
	STEP_WIDTH        = 3  // Step counter bits in a microcode address.
	ADDRESS_WIDTH     = INSTRUCTION_WIDTH + FLAGS_WIDTH + STEP_WIDTH
	DATA_WIDTH        = int(CONTROL_COUNT)
	FETCH_STEPS       = 2 // Steps 0 and 1 fetch the instruction byte.
	MAX_STEPS         = (1 << STEP_WIDTH) - FETCH_STEPS
	MAX_BYTES         = 255 // Maximum program size, in bytes.
	MAX_VARIABLES     = 255 // Maximum distinct variables.
	MAX_ADDRESS       = 255 // Highest data memory address.
)

// Module is a 3 bit source or destination code of an instruction byte.
type Module int

const (
	MODULE_ACC   = Module(0) // ACC
	MODULE_A     = Module(1) // A
	MODULE_B     = Module(2) // B
	MODULE_C     = Module(3) // C
	MODULE_SP    = Module(4) // SP
	MODULE_PC    = Module(5) // PC
	MODULE_CONST = Module(6) // CONST
	MODULE_STACK = Module(7) // STACK
)

var moduleName = [...]string{"ACC", "A", "B", "C", "SP", "PC", "CONST", "STACK"}

func (m Module) String() string {
	if m < 0 || int(m) >= len(moduleName) {
		return fmt.Sprintf("Module(%d)", int(m))
	}
	return moduleName[m]
}

// Modules addressable by name in assembly source.
var NAMED_MODULES = []Module{MODULE_ACC, MODULE_A, MODULE_B, MODULE_C, MODULE_SP, MODULE_PC}

// ModuleByName looks up a module by the name used in assembly source.
func ModuleByName(name string) (m Module, ok bool) {
	for _, m = range NAMED_MODULES {
		if m.String() == name {
			ok = true
			return
		}
	}
	return
}

// In returns the control line that latches the bus into a module.
func (m Module) In() (ctl Control, ok bool) {
	switch m {
	case MODULE_ACC:
		return CTL_ACC_IN, true
	case MODULE_A:
		return CTL_A_IN, true
	case MODULE_B:
		return CTL_B_IN, true
	case MODULE_C:
		return CTL_C_IN, true
	case MODULE_SP:
		return CTL_SP_IN, true
	case MODULE_PC:
		return CTL_PC_IN, true
	}
	return
}

// Out returns the control line that drives a module onto the bus.
func (m Module) Out() (ctl Control, ok bool) {
	switch m {
	case MODULE_ACC:
		return CTL_ACC_OUT, true
	case MODULE_A:
		return CTL_A_OUT, true
	case MODULE_B:
		return CTL_B_OUT, true
	case MODULE_C:
		return CTL_C_OUT, true
	case MODULE_SP:
		return CTL_SP_OUT, true
	case MODULE_PC:
		return CTL_PC_OUT, true
	}
	return
}

// Group is the 2 bit instruction group.
type Group int

const (
	GROUP_COPY  = Group(0)
	GROUP_LOAD  = Group(1)
	GROUP_STORE = Group(2)
	GROUP_ALU   = Group(3)
)

// AluOp is the 3 bit ALU function select.
type AluOp int

const (
	ALU_OP_ADD  = AluOp(0) // ACC + bus
	ALU_OP_SUB  = AluOp(1) // ACC - bus
	ALU_OP_AND  = AluOp(2) // ACC & bus
	ALU_OP_OR   = AluOp(3) // ACC | bus
	ALU_OP_XOR  = AluOp(4) // ACC ^ bus
	ALU_OP_INCR = AluOp(5) // bus + 1
	ALU_OP_DECR = AluOp(6) // bus - 1
	ALU_OP_NOT  = AluOp(7) // ^bus
)

// Control flow sub-group codes, in the destination field of ALU group
// bytes whose op field is ALU_OP_NOT.
const (
	FLOW_JUMP          = 0
	FLOW_JUMP_ZERO     = 1
	FLOW_JUMP_CARRY    = 2
	FLOW_JUMP_NEGATIVE = 3
	FLOW_JUMP_OVERFLOW = 4
	FLOW_NOT           = 6
)

// Flag is a status flag, in address bit order.
type Flag int

const (
	FLAG_ZERO     = Flag(3)
	FLAG_CARRY    = Flag(2)
	FLAG_NEGATIVE = Flag(1)
	FLAG_OVERFLOW = Flag(0)
)

func (fl Flag) String() string {
	switch fl {
	case FLAG_ZERO:
		return "ZERO"
	case FLAG_CARRY:
		return "CARRY"
	case FLAG_NEGATIVE:
		return "NEGATIVE"
	case FLAG_OVERFLOW:
		return "OVERFLOW"
	}
	return fmt.Sprintf("Flag(%d)", int(fl))
}

// field builds a width bit field with value placed at bit pos and every
// other bit X.
func field(width int, pos int, value uint64, size int) bitdef.Bitdef {
	defs := []bitdef.Bitdef{}
	if high := width - pos - size; high > 0 {
		defs = append(defs, bitdef.Unknown(high))
	}
	defs = append(defs, bitdef.FromUint(value, size))
	if pos > 0 {
		defs = append(defs, bitdef.Unknown(pos))
	}
	bd, err := bitdef.Concat(defs...)
	if err != nil {
		panic(err)
	}
	return bd
}

// GroupBits returns the instruction byte bit field of an instruction group.
func GroupBits(g Group) bitdef.Bitdef {
	return field(INSTRUCTION_WIDTH, 6, uint64(g), 2)
}

// SourceBits returns the instruction byte bit field of a source code.
func SourceBits(code int) bitdef.Bitdef {
	return field(INSTRUCTION_WIDTH, 3, uint64(code), 3)
}

// DestBits returns the instruction byte bit field of a destination code.
func DestBits(code int) bitdef.Bitdef {
	return field(INSTRUCTION_WIDTH, 0, uint64(code), 3)
}

// InstructionByte merges instruction byte fields.
func InstructionByte(defs ...bitdef.Bitdef) (bitdef.Bitdef, error) {
	return bitdef.Merge(defs...)
}

// InstructionAddress places an instruction byte in a microcode address.
func InstructionAddress(instr bitdef.Bitdef) (bitdef.Bitdef, error) {
	if instr.Len() != INSTRUCTION_WIDTH {
		return bitdef.Bitdef{}, bitdef.ErrBitWidthMismatch
	}
	return bitdef.Concat(instr, bitdef.Unknown(FLAGS_WIDTH+STEP_WIDTH))
}

// FlagBits returns the microcode address bit field of a flag state.
func FlagBits(fl Flag, state bool) bitdef.Bitdef {
	value := uint64(0)
	if state {
		value = 1
	}
	return field(ADDRESS_WIDTH, STEP_WIDTH+int(fl), value, 1)
}

// StepBits returns the microcode address bit field of a step number.
func StepBits(step int) bitdef.Bitdef {
	return field(ADDRESS_WIDTH, 0, uint64(step), STEP_WIDTH)
}

// AnyAddress is every microcode address.
func AnyAddress() bitdef.Bitdef {
	return bitdef.Unknown(ADDRESS_WIDTH)
}
