package operation

import (
	"fmt"
	"slices"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/langdef"
	"github.com/ezrec/eightbit/token"
)

// microcode is the step sequence of an encoding under one flag state.
type microcode struct {
	flags []bitdef.Bitdef     // Address flag fields, none if unconditional.
	steps [][]langdef.Control // Control lines of each step after the fetch.
}

// encoding binds a signature to its instruction byte and microcode.
type encoding struct {
	sig   Signature
	instr bitdef.Bitdef
	code  []microcode
}

// encoder is implemented by every operation of the catalog.
type encoder interface {
	Operation
	encodings() []encoding
}

// ModuleArg returns the argument definition of a named module.
func ModuleArg(m langdef.Module, memory bool) ArgDef {
	return ArgDef{ValueType: VALUE_MODULE, IsMemoryLocation: memory, Value: m.String()}
}

// ConstantArg returns the argument definition of a constant.
func ConstantArg(memory bool) ArgDef {
	return ArgDef{ValueType: VALUE_CONSTANT, IsMemoryLocation: memory}
}

// classify puts a word in exactly one of the four argument classes.
func classify(word string) (ad ArgDef, err error) {
	inner := token.MemoryPosition(word)
	_, plainModule := langdef.ModuleByName(word)
	_, memoryModule := langdef.ModuleByName(inner)
	plainConstant := token.IsConstant(word)
	memoryConstant := len(inner) > 0 && token.IsConstant(inner)

	matched := 0
	if plainModule {
		ad = ArgDef{ValueType: VALUE_MODULE, Value: word}
		matched++
	}
	if memoryModule {
		ad = ArgDef{ValueType: VALUE_MODULE, IsMemoryLocation: true, Value: inner}
		matched++
	}
	if plainConstant {
		ad = ArgDef{ValueType: VALUE_CONSTANT}
		matched++
	}
	if memoryConstant {
		ad = ArgDef{ValueType: VALUE_CONSTANT, IsMemoryLocation: true}
		matched++
	}

	switch matched {
	case 0:
		err = ErrArgumentUnknown(word)
	case 1:
	default:
		err = ErrArgumentAmbiguous(word)
	}

	return
}

// matchSignature finds the single signature matching the arguments.
func matchSignature(sigs []Signature, args []string) (index int, err error) {
	classes := make([]ArgDef, len(args))
	for n, word := range args {
		classes[n], err = classify(word)
		if _, unknown := err.(ErrArgumentUnknown); unknown {
			err = fmt.Errorf("%w: %w", ErrSignatureNone, err)
			return
		}
		if err != nil {
			return
		}
	}

	index = -1
	for n, sig := range sigs {
		if !slices.Equal(sig, Signature(classes)) {
			continue
		}
		if index >= 0 {
			err = ErrSignatureAmbiguous
			return
		}
		index = n
	}

	if index < 0 {
		err = ErrSignatureNone
	}

	return
}

// constantByte builds the machine code byte of a constant argument.
func constantByte(word string) (mcb MachineCodeByte, err error) {
	if token.IsMemoryIndex(word) {
		word = token.MemoryPosition(word)
	}

	mcb = MachineCodeByte{ByteType: BYTE_CONSTANT, Constant: word}
	switch {
	case token.IsLabel(word):
		mcb.ConstantType = CONSTANT_LABEL
	case token.IsVariable(word):
		mcb.ConstantType = CONSTANT_VARIABLE
	default:
		mcb.ConstantType = CONSTANT_NUMBER
		mcb.NumberValue, err = token.NumberValue(word)
		if err != nil {
			return
		}
		if !bitdef.NumberInRange(mcb.NumberValue, langdef.INSTRUCTION_WIDTH) {
			err = &bitdef.ErrNumberRange{Value: mcb.NumberValue, Width: langdef.INSTRUCTION_WIDTH}
		}
	}

	return
}

// signatures lists the signatures of an operation's encodings.
func signatures(op encoder) (sigs []Signature) {
	for _, enc := range op.encodings() {
		sigs = append(sigs, enc.sig)
	}
	return
}

// parseLine matches a line against an operation's signatures.
func parseLine(op encoder, line string) (mcbs []MachineCodeByte, err error) {
	words := token.Tokenize(line)
	if len(words) == 0 || words[0] != op.Mnemonic() {
		return
	}
	args := words[1:]

	defer func() {
		if err != nil {
			mcbs = nil
			err = &ErrParse{
				Mnemonic:   op.Mnemonic(),
				Args:       args,
				Signatures: op.Signatures(),
				Err:        err,
			}
		}
	}()

	encs := op.encodings()
	sigs := make([]Signature, len(encs))
	for n, enc := range encs {
		sigs[n] = enc.sig
	}

	index, err := matchSignature(sigs, args)
	if err != nil {
		return
	}
	enc := encs[index]

	mcbs = append(mcbs, MachineCodeByte{ByteType: BYTE_INSTRUCTION, Bitstring: enc.instr})
	for n, ad := range enc.sig {
		if ad.ValueType != VALUE_CONSTANT {
			continue
		}
		var mcb MachineCodeByte
		mcb, err = constantByte(args[n])
		if err != nil {
			return
		}
		mcbs = append(mcbs, mcb)
	}

	return
}

// microcodeTemplates expands an operation's encodings into data templates.
func microcodeTemplates(op encoder) (templates []DataTemplate, err error) {
	for _, enc := range op.encodings() {
		var base bitdef.Bitdef
		base, err = langdef.InstructionAddress(enc.instr)
		if err != nil {
			return nil, err
		}
		for _, mc := range enc.code {
			if len(mc.steps) == 0 || len(mc.steps) > langdef.MAX_STEPS {
				return nil, ErrStepCount
			}
			for n, lines := range mc.steps {
				if n == len(mc.steps)-1 {
					lines = append(slices.Clone(lines), langdef.CTL_STEP_COUNTER_RESET)
				}
				defs := append([]bitdef.Bitdef{base, langdef.StepBits(langdef.FETCH_STEPS + n)}, mc.flags...)
				var tmpl DataTemplate
				tmpl.Address, err = bitdef.Merge(defs...)
				if err != nil {
					return nil, err
				}
				tmpl.Data, err = langdef.ControlWord(lines...)
				if err != nil {
					return nil, err
				}
				templates = append(templates, tmpl)
			}
		}
	}

	return
}

// instruction merges instruction byte fields of static tables.
func instruction(defs ...bitdef.Bitdef) bitdef.Bitdef {
	instr, err := langdef.InstructionByte(defs...)
	if err != nil {
		panic(err)
	}
	return instr
}

// opcode builds an instruction byte from its group, source and destination codes.
func opcode(g langdef.Group, src, dest int) bitdef.Bitdef {
	return instruction(langdef.GroupBits(g), langdef.SourceBits(src), langdef.DestBits(dest))
}

// in returns the input line of a named module.
func in(m langdef.Module) langdef.Control {
	ctl, ok := m.In()
	if !ok {
		panic(fmt.Sprintf("module %v has no input", m))
	}
	return ctl
}

// out returns the output line of a named module.
func out(m langdef.Module) langdef.Control {
	ctl, ok := m.Out()
	if !ok {
		panic(fmt.Sprintf("module %v has no output", m))
	}
	return ctl
}

// always is unconditional microcode.
func always(steps ...[]langdef.Control) []microcode {
	return []microcode{{steps: steps}}
}

// step lists the control lines of one step.
func step(lines ...langdef.Control) []langdef.Control {
	return lines
}
