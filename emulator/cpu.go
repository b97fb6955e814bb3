// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/eightbit/langdef"
	"github.com/ezrec/eightbit/rom"
)

// MEMORY_SIZE is the size of both the program and the data memory.
const MEMORY_SIZE = 256

// Cpu is the clock level simulation of the eight bit computer. Every clock
// cycle runs the control word found in the microcode at the address made of
// the instruction register, the flags and the step counter.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A, B, C uint8 // General purpose registers.
	Acc     uint8 // Accumulator, the ALU's first operand.
	Sp      uint8 // Stack pointer.
	Pc      uint8 // Program counter.
	Mar     uint8 // Memory address register.
	Ir      uint8 // Instruction register.
	Alu     uint8 // ALU result latch.
	Flags   uint8 // ALU flags, bit n is langdef.Flag(n).
	Step    int   // Step counter.
	Ip      uint8 // Address of the executing instruction.
	Halted  bool

	Program [MEMORY_SIZE]byte // Program memory.
	Data    [MEMORY_SIZE]byte // Data memory.

	Ticks int // Clock cycles since reset.

	microcode []uint64
}

// NewCpu creates a CPU running the microcode of a complete ROM.
func NewCpu(microcode []rom.Entry) (cpu *Cpu, err error) {
	table := make([]uint64, 1<<langdef.ADDRESS_WIDTH)
	if len(microcode) != len(table) {
		err = ErrMicrocode
		return
	}
	for _, entry := range microcode {
		if entry.Address.Len() != langdef.ADDRESS_WIDTH || !entry.Address.Concrete() ||
			entry.Data.Len() != langdef.DATA_WIDTH || !entry.Data.Concrete() {
			err = ErrMicrocode
			return
		}
		table[entry.Address.Uint()] = entry.Data.Uint()
	}

	cpu = &Cpu{microcode: table}

	return
}

// Reset clears the registers and the data memory, keeping the program.
func (cpu *Cpu) Reset() {
	program := cpu.Program
	*cpu = Cpu{
		Verbose:   cpu.Verbose,
		Program:   program,
		microcode: cpu.microcode,
	}
}

// Address returns the microcode address of the current step.
func (cpu *Cpu) Address() int {
	return int(cpu.Ir)<<(langdef.FLAGS_WIDTH+langdef.STEP_WIDTH) |
		int(cpu.Flags)<<langdef.STEP_WIDTH |
		cpu.Step
}

// Flag returns the state of an ALU flag.
func (cpu *Cpu) Flag(fl langdef.Flag) bool {
	return cpu.Flags&(1<<fl) != 0
}

// memory returns the memory selected by a control word.
func (cpu *Cpu) memory(word uint64) *[MEMORY_SIZE]byte {
	if langdef.CTL_RAM_SEL_PROG.Active(word) {
		return &cpu.Program
	}
	return &cpu.Data
}

// bus returns the value driven onto the bus by the single active output.
func (cpu *Cpu) bus(word uint64) (value uint8, err error) {
	outputs := []struct {
		ctl   langdef.Control
		value uint8
	}{
		{langdef.CTL_A_OUT, cpu.A},
		{langdef.CTL_B_OUT, cpu.B},
		{langdef.CTL_C_OUT, cpu.C},
		{langdef.CTL_ACC_OUT, cpu.Acc},
		{langdef.CTL_SP_OUT, cpu.Sp},
		{langdef.CTL_PC_OUT, cpu.Pc},
		{langdef.CTL_RAM_OUT, cpu.memory(word)[cpu.Mar]},
		{langdef.CTL_ALU_OUT, cpu.Alu},
	}

	driven := 0
	for _, out := range outputs {
		if out.ctl.Active(word) {
			value = out.value
			driven++
		}
	}
	if driven > 1 {
		err = ErrBusContention
	}

	return
}

// alu computes op on the accumulator and a bus value.
func alu(op langdef.AluOp, acc uint8, value uint8) (result uint8, flags uint8) {
	var carry, overflow bool
	switch op {
	case langdef.ALU_OP_ADD:
		sum := uint16(acc) + uint16(value)
		result = uint8(sum)
		carry = sum > 0xff
		overflow = (acc^result)&(value^result)&0x80 != 0
	case langdef.ALU_OP_SUB:
		result = acc - value
		carry = acc < value
		overflow = (acc^value)&(acc^result)&0x80 != 0
	case langdef.ALU_OP_AND:
		result = acc & value
	case langdef.ALU_OP_OR:
		result = acc | value
	case langdef.ALU_OP_XOR:
		result = acc ^ value
	case langdef.ALU_OP_INCR:
		result = value + 1
		carry = value == 0xff
		overflow = value == 0x7f
	case langdef.ALU_OP_DECR:
		result = value - 1
		carry = value == 0
		overflow = value == 0x80
	case langdef.ALU_OP_NOT:
		result = ^value
	}

	set := func(fl langdef.Flag, state bool) {
		if state {
			flags |= 1 << fl
		}
	}
	set(langdef.FLAG_ZERO, result == 0)
	set(langdef.FLAG_CARRY, carry)
	set(langdef.FLAG_NEGATIVE, result&0x80 != 0)
	set(langdef.FLAG_OVERFLOW, overflow)

	return
}

// Tick runs a single clock cycle. Every input latches the bus at the end of
// the cycle, so an output always presents the value from before the cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		return
	}

	if cpu.Step == 0 {
		cpu.Ip = cpu.Pc
	}

	word := cpu.microcode[cpu.Address()]
	if cpu.Verbose {
		log.Printf("%02x.%d: %v", cpu.Ip, cpu.Step, activeLines(word))
	}

	value, err := cpu.bus(word)
	if err != nil {
		return
	}

	var op langdef.AluOp
	for n, ctl := range []langdef.Control{langdef.CTL_ALU_S0, langdef.CTL_ALU_S1, langdef.CTL_ALU_S2} {
		if ctl.Active(word) {
			op |= 1 << n
		}
	}
	result, flags := alu(op, cpu.Acc, value)

	inputs := []struct {
		ctl langdef.Control
		reg *uint8
	}{
		{langdef.CTL_A_IN, &cpu.A},
		{langdef.CTL_B_IN, &cpu.B},
		{langdef.CTL_C_IN, &cpu.C},
		{langdef.CTL_ACC_IN, &cpu.Acc},
		{langdef.CTL_SP_IN, &cpu.Sp},
		{langdef.CTL_PC_IN, &cpu.Pc},
		{langdef.CTL_IR_IN, &cpu.Ir},
	}

	if langdef.CTL_RAM_IN.Active(word) {
		cpu.memory(word)[cpu.Mar] = value
	}
	for _, in := range inputs {
		if in.ctl.Active(word) {
			*in.reg = value
		}
	}
	if langdef.CTL_MAR_IN.Active(word) {
		cpu.Mar = value
	}
	if langdef.CTL_ALU_STORE_RESULT.Active(word) {
		cpu.Alu = result
	}
	if langdef.CTL_ALU_STORE_FLAGS.Active(word) {
		cpu.Flags = flags
	}
	if langdef.CTL_PC_COUNT.Active(word) {
		cpu.Pc++
	}
	if langdef.CTL_HALT.Active(word) {
		cpu.Halted = true
	}

	if langdef.CTL_STEP_COUNTER_RESET.Active(word) {
		cpu.Step = 0
	} else {
		cpu.Step = (cpu.Step + 1) % (1 << langdef.STEP_WIDTH)
	}

	cpu.Ticks++

	return
}

// activeLines names the asserted lines of a control word.
func activeLines(word uint64) string {
	var names []string
	for ctl := range langdef.CONTROL_COUNT {
		if ctl.Active(word) {
			names = append(names, ctl.String())
		}
	}
	return strings.Join(names, " ")
}

// String dumps the registers and flags.
func (cpu *Cpu) String() (text string) {
	regs := []struct {
		name  string
		value uint8
	}{
		{"acc", cpu.Acc},
		{"a", cpu.A},
		{"b", cpu.B},
		{"c", cpu.C},
		{"sp", cpu.Sp},
		{"pc", cpu.Pc},
		{"mar", cpu.Mar},
		{"ir", cpu.Ir},
	}
	for _, reg := range regs {
		text += fmt.Sprintf("%s:%02X ", reg.name, reg.value)
	}

	flags := ""
	for _, fl := range []langdef.Flag{langdef.FLAG_ZERO, langdef.FLAG_CARRY, langdef.FLAG_NEGATIVE, langdef.FLAG_OVERFLOW} {
		if cpu.Flag(fl) {
			flags += fl.String()[:1]
		} else {
			flags += "-"
		}
	}
	text += "flags:" + flags

	return
}
