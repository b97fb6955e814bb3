// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/eightbit/assembler"
	"github.com/ezrec/eightbit/rom"
)

// DEFAULT_TICK_LIMIT bounds Run when TickLimit is not set.
const DEFAULT_TICK_LIMIT = 1 << 20

// Emulator state. CPU + the program it runs.
type Emulator struct {
	Verbose   bool               // If set, enables verbose logging.
	TickLimit int                // Clock cycles Run allows, DEFAULT_TICK_LIMIT if 0.
	*Cpu                         // Reference to the CPU simulation.
	Program   *assembler.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator, running the microcode of the full
// instruction set.
func NewEmulator() (emu *Emulator, err error) {
	builder := &rom.Builder{}
	microcode, err := builder.Rom()
	if err != nil {
		return
	}

	cpu, err := NewCpu(microcode)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:     cpu,
		Program: &assembler.Program{},
	}

	return
}

// Load copies an assembled program into program memory and resets.
func (emu *Emulator) Load(prog *assembler.Program) (err error) {
	binary := prog.Binary()
	if len(binary) > MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	emu.Program = prog
	emu.Cpu.Program = [MEMORY_SIZE]byte{}
	copy(emu.Cpu.Program[:], binary)

	emu.Reset()

	return
}

// Reset the CPU state, keeping the loaded program.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Cpu.Verbose = emu.Verbose
}

// LineNo returns the source line number of the executing instruction, or of
// the next one between instructions.
func (emu *Emulator) LineNo() int {
	ip := emu.Cpu.Ip
	if emu.Cpu.Step == 0 {
		ip = emu.Cpu.Pc
	}
	dbg := emu.Program.Debug(int(ip))
	if dbg.AssemblyLine == nil {
		return 0
	}
	return dbg.LineNo
}

// Tick performs a single clock cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Next runs the clock until the current instruction completes.
func (emu *Emulator) Next() (done bool, err error) {
	for {
		done, err = emu.Tick()
		if done || err != nil || emu.Cpu.Step == 0 {
			return
		}
	}
}

// Run runs the clock until the program halts.
func (emu *Emulator) Run() (err error) {
	limit := emu.TickLimit
	if limit == 0 {
		limit = DEFAULT_TICK_LIMIT
	}

	for !emu.Cpu.Halted {
		if emu.Cpu.Ticks >= limit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}
			return
		}
		_, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
