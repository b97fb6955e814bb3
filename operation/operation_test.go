package operation

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/prefixtree/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/langdef"
)

func TestCatalog(t *testing.T) {
	assert := assert.New(t)

	ops := All()
	assert.Len(ops, 21)

	seen := map[string]bool{}
	for _, op := range ops {
		assert.False(seen[op.Mnemonic()], op.Mnemonic())
		seen[op.Mnemonic()] = true
		assert.NotEmpty(op.Signatures(), op.Mnemonic())
	}
	assert.True(seen["JUMP_IF_OVERFLOW_FLAG"])
	assert.True(seen["SET"])

	cat := NewCatalog(ops)
	assert.Equal(ops, cat.Operations())

	op, err := cat.Lookup("JUMP")
	assert.NoError(err)
	assert.Equal(Jump{}, op)

	op, err = cat.Lookup("HAL")
	assert.NoError(err)
	assert.Equal("HALT", op.Mnemonic())

	op, err = cat.Lookup("JUMP_IF_Z")
	assert.NoError(err)
	assert.Equal(JumpIf{Flag: langdef.FLAG_ZERO}, op)

	_, err = cat.Lookup("JUMP_IF")
	assert.ErrorIs(err, prefixtree.ErrPrefixAmbiguous)

	_, err = cat.Lookup("MOVE")
	assert.ErrorIs(err, prefixtree.ErrPrefixNotFound)
}

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		word string
		ad   ArgDef
	}{
		{"A", ArgDef{ValueType: VALUE_MODULE, Value: "A"}},
		{"ACC", ArgDef{ValueType: VALUE_MODULE, Value: "ACC"}},
		{"[SP]", ArgDef{ValueType: VALUE_MODULE, IsMemoryLocation: true, Value: "SP"}},
		{"#5", ArgDef{ValueType: VALUE_CONSTANT}},
		{"@loop", ArgDef{ValueType: VALUE_CONSTANT}},
		{"$x", ArgDef{ValueType: VALUE_CONSTANT}},
		{"[$x]", ArgDef{ValueType: VALUE_CONSTANT, IsMemoryLocation: true}},
		{"[0x10]", ArgDef{ValueType: VALUE_CONSTANT, IsMemoryLocation: true}},
	}

	for _, entry := range table {
		ad, err := classify(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.ad, ad, entry.word)
	}

	for _, word := range []string{"Q", "[Q]", "[]", "acc", "[[A]]", "MAR"} {
		_, err := classify(word)
		assert.ErrorIs(err, ErrArgumentUnknown(word), word)
	}
}

func TestMatchSignature(t *testing.T) {
	assert := assert.New(t)

	sigs := []Signature{
		{ModuleArg(langdef.MODULE_A, false), ConstantArg(false)},
		{ModuleArg(langdef.MODULE_B, false), ConstantArg(false)},
		{ConstantArg(true)},
	}

	index, err := matchSignature(sigs, []string{"B", "#1"})
	assert.NoError(err)
	assert.Equal(1, index)

	index, err = matchSignature(sigs, []string{"[@x]"})
	assert.NoError(err)
	assert.Equal(2, index)

	_, err = matchSignature(sigs, []string{"C", "#1"})
	assert.ErrorIs(err, ErrSignatureNone)

	_, err = matchSignature(sigs, []string{"A"})
	assert.ErrorIs(err, ErrSignatureNone)

	_, err = matchSignature(sigs, []string{"A", "bogus"})
	assert.ErrorIs(err, ErrSignatureNone)
	assert.ErrorIs(err, ErrArgumentUnknown("bogus"))

	// A signature set with duplicates is a defect of the set.
	dup := append(sigs, Signature{ModuleArg(langdef.MODULE_A, false), ConstantArg(false)})
	_, err = matchSignature(dup, []string{"A", "#1"})
	assert.ErrorIs(err, ErrSignatureAmbiguous)
}

func TestSetParseLine(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mcbs, err := Set{}.ParseLine("SET A #5")
	require.NoError(err)
	require.Len(mcbs, 2)

	assert.Equal(BYTE_INSTRUCTION, mcbs[0].ByteType)
	assert.Equal("00110001", mcbs[0].Bitstring.String())
	assert.True(mcbs[0].Resolved())

	assert.Equal(BYTE_CONSTANT, mcbs[1].ByteType)
	assert.Equal(CONSTANT_NUMBER, mcbs[1].ConstantType)
	assert.Equal("#5", mcbs[1].Constant)
	assert.Equal(5, mcbs[1].NumberValue)
	assert.False(mcbs[1].Resolved())

	b, err := Set{}.ParseLine("SET B #3")
	require.NoError(err)
	require.Len(b, 2)

	// Only the destination field differs.
	diff := mcbs[0].Bitstring.Uint() ^ b[0].Bitstring.Uint()
	assert.NotZero(diff)
	assert.Zero(diff &^ 0b111)
}

func TestParseLineNoMatch(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{"", "COPY A B", "SETA A #1", "set A #1"} {
		mcbs, err := Set{}.ParseLine(line)
		assert.NoError(err, line)
		assert.Nil(mcbs, line)
	}
}

func TestParseLineErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Set{}.ParseLine("SET Q #5")
	var perr *ErrParse
	assert.True(errors.As(err, &perr))
	if perr != nil {
		assert.Equal("SET", perr.Mnemonic)
		assert.Equal([]string{"Q", "#5"}, perr.Args)
		assert.Equal(Set{}.Signatures(), perr.Signatures)
		assert.ErrorIs(err, ErrSignatureNone)
		assert.True(strings.Contains(err.Error(), "SET A <constant>"), err.Error())
	}

	_, err = Set{}.ParseLine("SET A")
	assert.ErrorIs(err, ErrSignatureNone)

	_, err = Set{}.ParseLine("SET A #256")
	var rerr *bitdef.ErrNumberRange
	assert.True(errors.As(err, &rerr))
	assert.True(errors.As(err, &perr))

	_, err = Set{}.ParseLine("SET A #-129")
	assert.True(errors.As(err, &rerr))

	mcbs, err := Set{}.ParseLine("SET A #-128")
	assert.NoError(err)
	assert.Equal(-128, mcbs[1].NumberValue)

	_, err = Halt{}.ParseLine("HALT A")
	assert.ErrorIs(err, ErrSignatureNone)
}

func TestParseLineConstants(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	mcbs, err := Load{}.ParseLine("LOAD [$x] A")
	require.NoError(err)
	require.Len(mcbs, 2)
	assert.Equal("01110001", mcbs[0].Bitstring.String())
	assert.Equal(CONSTANT_VARIABLE, mcbs[1].ConstantType)
	assert.Equal("$x", mcbs[1].Constant)

	mcbs, err = Load{}.ParseLine("LOAD [B] C")
	require.NoError(err)
	require.Len(mcbs, 1)
	assert.Equal("01010011", mcbs[0].Bitstring.String())

	mcbs, err = Store{}.ParseLine("STORE A [@table]")
	require.NoError(err)
	require.Len(mcbs, 2)
	assert.Equal("10001110", mcbs[0].Bitstring.String())
	assert.Equal(CONSTANT_LABEL, mcbs[1].ConstantType)
	assert.Equal("@table", mcbs[1].Constant)

	mcbs, err = JumpIf{Flag: langdef.FLAG_OVERFLOW}.ParseLine("JUMP_IF_OVERFLOW_FLAG @end")
	require.NoError(err)
	require.Len(mcbs, 2)
	assert.Equal("11111100", mcbs[0].Bitstring.String())

	mcbs, err = Alu{Op: langdef.ALU_OP_SUB}.ParseLine("SUB 0x10")
	require.NoError(err)
	require.Len(mcbs, 2)
	assert.Equal("11001110", mcbs[0].Bitstring.String())
	assert.Equal(16, mcbs[1].NumberValue)

	mcbs, err = Copy{}.ParseLine("COPY A B")
	require.NoError(err)
	require.Len(mcbs, 1)
	assert.Equal("00001010", mcbs[0].Bitstring.String())

	_, err = Copy{}.ParseLine("COPY A A")
	assert.ErrorIs(err, ErrSignatureNone)
}

func TestUniqueInstructionBytes(t *testing.T) {
	assert := assert.New(t)

	owner := map[uint64]string{}
	for _, op := range All() {
		enc, ok := op.(encoder)
		assert.True(ok, op.Mnemonic())
		for _, e := range enc.encodings() {
			assert.True(e.instr.Concrete(), op.Mnemonic())
			name := op.Mnemonic() + " " + e.sig.String()
			prior, dup := owner[e.instr.Uint()]
			assert.False(dup, "%v collides with %v", name, prior)
			owner[e.instr.Uint()] = name
		}
	}
}

func TestMicrocodeTemplates(t *testing.T) {
	assert := assert.New(t)

	for _, op := range All() {
		templates, err := op.MicrocodeTemplates()
		assert.NoError(err, op.Mnemonic())
		assert.NotEmpty(templates, op.Mnemonic())

		resets := 0
		for _, tmpl := range templates {
			assert.Equal(langdef.ADDRESS_WIDTH, tmpl.Address.Len())
			assert.Equal(langdef.DATA_WIDTH, tmpl.Data.Len())

			step, err := bitdef.Extract(tmpl.Address, langdef.STEP_WIDTH-1, 0)
			assert.NoError(err)
			assert.True(step.Concrete())
			assert.GreaterOrEqual(step.Uint(), uint64(langdef.FETCH_STEPS))

			if tmpl.Data.Bit(int(langdef.CTL_STEP_COUNTER_RESET)) == '1' {
				resets++
			}
		}

		// One reset per signature and flag state.
		states := len(op.Signatures())
		if _, cond := op.(JumpIf); cond {
			states *= 2
		}
		assert.Equal(states, resets, op.Mnemonic())
	}
}

func TestJumpIfTemplates(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	templates, err := JumpIf{Flag: langdef.FLAG_ZERO}.MicrocodeTemplates()
	require.NoError(err)
	require.Len(templates, 3)

	assert.Equal("11111001" + "1XXX" + "010", templates[0].Address.String())
	assert.Equal("11111001" + "1XXX" + "011", templates[1].Address.String())
	assert.Equal("11111001" + "0XXX" + "010", templates[2].Address.String())

	word := bitdef.Fill(templates[2].Data, false).Uint()
	assert.True(langdef.CTL_PC_COUNT.Active(word))
	assert.True(langdef.CTL_STEP_COUNTER_RESET.Active(word))
	assert.False(langdef.CTL_PC_IN.Active(word))

	word = bitdef.Fill(templates[1].Data, false).Uint()
	assert.True(langdef.CTL_PC_IN.Active(word))
	assert.True(langdef.CTL_RAM_SEL_PROG.Active(word))
}

func TestSetTemplates(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	templates, err := Set{}.MicrocodeTemplates()
	require.NoError(err)
	require.Len(templates, 2*len(Set{}.Signatures()))

	assert.Equal("00110001"+"XXXX"+"010", templates[2].Address.String())
	word := bitdef.Fill(templates[3].Data, false).Uint()
	for _, ctl := range []langdef.Control{langdef.CTL_RAM_SEL_PROG, langdef.CTL_RAM_OUT, langdef.CTL_A_IN, langdef.CTL_PC_COUNT, langdef.CTL_STEP_COUNTER_RESET} {
		assert.True(ctl.Active(word), ctl.String())
	}
}

func TestMnemonics(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ALU(5)", Alu{Op: langdef.ALU_OP_INCR}.Mnemonic())
	assert.Equal("COUNTER(0)", Counter{Op: langdef.ALU_OP_ADD}.Mnemonic())
	assert.Equal("NOT", Not{}.Mnemonic())
	assert.Equal("JUMP_IF_CARRY_FLAG", JumpIf{Flag: langdef.FLAG_CARRY}.Mnemonic())
	assert.Equal("[<constant>]", ConstantArg(true).String())
	assert.Equal("[SP]", ModuleArg(langdef.MODULE_SP, true).String())
	assert.Equal("number", CONSTANT_NUMBER.String())
	assert.Equal("ByteType(7)", ByteType(7).String())
}
