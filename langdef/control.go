package langdef

import (
	"fmt"

	"github.com/ezrec/eightbit/bitdef"
)

// Control is a control line of the CPU. The value is the bit index of the
// line in a microcode control word.
type Control int

const (
	CTL_A_IN               = Control(iota) // A_IN
	CTL_A_OUT                              // A_OUT
	CTL_B_IN                               // B_IN
	CTL_B_OUT                              // B_OUT
	CTL_C_IN                               // C_IN
	CTL_C_OUT                              // C_OUT
	CTL_ACC_IN                             // ACC_IN
	CTL_ACC_OUT                            // ACC_OUT
	CTL_SP_IN                              // SP_IN
	CTL_SP_OUT                             // SP_OUT
	CTL_PC_IN                              // PC_IN
	CTL_PC_OUT                             // PC_OUT
	CTL_PC_COUNT                           // PC_COUNT
	CTL_MAR_IN                             // MAR_IN
	CTL_RAM_IN                             // RAM_IN
	CTL_RAM_OUT                            // RAM_OUT
	CTL_RAM_SEL_PROG                       // RAM_SEL_PROG
	CTL_IR_IN                              // IR_IN
	CTL_ALU_S0                             // ALU_S0
	CTL_ALU_S1                             // ALU_S1
	CTL_ALU_S2                             // ALU_S2
	CTL_ALU_STORE_RESULT                   // ALU_STORE_RESULT
	CTL_ALU_STORE_FLAGS                    // ALU_STORE_FLAGS
	CTL_ALU_OUT                            // ALU_OUT
	CTL_STEP_COUNTER_RESET                 // STEP_COUNTER_RESET
	CTL_HALT                               // HALT
	CONTROL_COUNT
)

var controlName = [...]string{
	"A_IN", "A_OUT", "B_IN", "B_OUT", "C_IN", "C_OUT", "ACC_IN", "ACC_OUT",
	"SP_IN", "SP_OUT", "PC_IN", "PC_OUT", "PC_COUNT", "MAR_IN", "RAM_IN", "RAM_OUT",
	"RAM_SEL_PROG", "IR_IN", "ALU_S0", "ALU_S1", "ALU_S2", "ALU_STORE_RESULT",
	"ALU_STORE_FLAGS", "ALU_OUT", "STEP_COUNTER_RESET", "HALT",
}

func (ctl Control) String() string {
	if ctl < 0 || ctl >= CONTROL_COUNT {
		return fmt.Sprintf("Control(%d)", int(ctl))
	}
	return controlName[ctl]
}

// Bits returns the control word bit field asserting only this line.
func (ctl Control) Bits() bitdef.Bitdef {
	return field(DATA_WIDTH, int(ctl), 1, 1)
}

// Active returns true if the line is asserted in a concrete control word.
func (ctl Control) Active(word uint64) bool {
	return word&(1<<ctl) != 0
}

// AluSelect returns the ALU function select lines for an operation.
func AluSelect(op AluOp) (lines []Control) {
	for n, ctl := range []Control{CTL_ALU_S0, CTL_ALU_S1, CTL_ALU_S2} {
		if int(op)&(1<<n) != 0 {
			lines = append(lines, ctl)
		}
	}
	return
}

// ControlWord merges the bit fields of the given lines. Lines not named stay X.
func ControlWord(lines ...Control) (bitdef.Bitdef, error) {
	if len(lines) == 0 {
		return bitdef.Unknown(DATA_WIDTH), nil
	}
	defs := make([]bitdef.Bitdef, len(lines))
	for n, ctl := range lines {
		defs[n] = ctl.Bits()
	}
	return bitdef.Merge(defs...)
}

// DefaultControlWord has every control line inactive.
func DefaultControlWord() bitdef.Bitdef {
	return bitdef.FromUint(0, DATA_WIDTH)
}
