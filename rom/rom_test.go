package rom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/langdef"
	"github.com/ezrec/eightbit/operation"
)

// fakeOp is a synthetic operation with fixed templates.
type fakeOp struct {
	templates []operation.DataTemplate
	err       error
}

func (fakeOp) Mnemonic() string { return "FAKE" }

func (fakeOp) Signatures() []operation.Signature { return nil }

func (fakeOp) ParseLine(string) ([]operation.MachineCodeByte, error) { return nil, nil }

func (op fakeOp) MicrocodeTemplates() ([]operation.DataTemplate, error) {
	return op.templates, op.err
}

func TestFetch(t *testing.T) {
	assert := assert.New(t)

	templates := Fetch()
	assert.Len(templates, 2)
	assert.Equal("XXXXXXXXXXXX000", templates[0].Address.String())
	assert.Equal("XXXXXXXXXXXX001", templates[1].Address.String())

	word := templates[1].Data.Uint()
	assert.True(langdef.CTL_IR_IN.Active(word))
	assert.True(langdef.CTL_PC_COUNT.Active(word))
	assert.False(langdef.CTL_MAR_IN.Active(word))
}

func TestRomTotal(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	b := &Builder{}
	rom, err := b.Rom()
	require.NoError(err)
	require.Len(rom, 1<<langdef.ADDRESS_WIDTH)

	for n, entry := range rom {
		if !assert.Equal(uint64(n), entry.Address.Uint()) {
			break
		}
		assert.True(entry.Address.Concrete())
		assert.True(entry.Data.Concrete())
		assert.Equal(langdef.DATA_WIDTH, entry.Data.Len())
	}

	at := func(text string) uint64 {
		return rom[bitdef.MustParse(text).Uint()].Data.Uint()
	}

	// Fetch runs for every instruction and flag state.
	for _, address := range []string{"000000000000001", "111111111111001", "001100011010001"} {
		assert.True(langdef.CTL_IR_IN.Active(at(address)), address)
	}

	// SET A, second step, any flags.
	word := at("00110001" + "0110" + "011")
	assert.True(langdef.CTL_A_IN.Active(word))
	assert.True(langdef.CTL_STEP_COUNTER_RESET.Active(word))

	// NOOP has no third step.
	assert.Equal(uint64(0), at("00000000"+"0000"+"011"))

	// JUMP_IF_ZERO_FLAG splits on the zero flag only.
	assert.True(langdef.CTL_PC_COUNT.Active(at("11111001" + "0111" + "010")))
	assert.True(langdef.CTL_MAR_IN.Active(at("11111001" + "1000" + "010")))
}

func TestRomCollision(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{Operations: []operation.Operation{operation.Noop{}, operation.Noop{}}}
	rom, err := b.Rom()
	assert.Nil(rom)

	var cerr *ErrCollision
	if assert.True(errors.As(err, &cerr)) {
		assert.Equal("000000000000010", cerr.Address.String())
	}

	// Claiming a fetch step collides with the fetch cycle.
	fake := fakeOp{templates: []operation.DataTemplate{{
		Address: bitdef.MustParse("101010100000001"),
		Data:    langdef.DefaultControlWord(),
	}}}
	b = &Builder{Operations: []operation.Operation{fake}}
	_, err = b.Rom()
	assert.True(errors.As(err, &cerr))

	fake = fakeOp{err: operation.ErrStepCount}
	b = &Builder{Operations: []operation.Operation{fake}}
	_, err = b.Rom()
	assert.ErrorIs(err, operation.ErrStepCount)
}

func TestRomFillsData(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	data, err := langdef.ControlWord(langdef.CTL_HALT)
	require.NoError(err)

	fake := fakeOp{templates: []operation.DataTemplate{{
		Address: bitdef.MustParse("00000000XXXX010"),
		Data:    data,
	}}}
	b := &Builder{Operations: []operation.Operation{fake}}
	rom, err := b.Rom()
	require.NoError(err)

	for _, address := range []string{"000000000000010", "000000001111010"} {
		entry := rom[bitdef.MustParse(address).Uint()]
		assert.True(entry.Data.Concrete())
		assert.Equal(uint64(1)<<langdef.CTL_HALT, entry.Data.Uint())
	}
}

func TestSlice(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	b := &Builder{}
	rom, err := b.Rom()
	require.NoError(err)

	chips, err := Slice(rom)
	require.NoError(err)
	require.Len(chips, 4)

	for lane := range 4 {
		assert.Len(chips[lane], len(rom))
	}

	for n, entry := range rom {
		var word uint64
		for lane := range 4 {
			sub := chips[lane][n]
			assert.Equal(entry.Address, sub.Address)
			assert.Equal(8, sub.Data.Len())
			word |= sub.Data.Uint() << (8 * lane)
		}
		if !assert.Equal(entry.Data.Uint(), word) {
			break
		}
	}

	chips, err = Slice(nil)
	assert.NoError(err)
	assert.Empty(chips)

	mixed := []Entry{
		{Address: bitdef.FromUint(0, 2), Data: bitdef.FromUint(1, 8)},
		{Address: bitdef.FromUint(1, 2), Data: bitdef.FromUint(1, 16)},
	}
	_, err = Slice(mixed)
	assert.ErrorIs(err, bitdef.ErrBitWidthMismatch)

	narrow := []Entry{{Address: bitdef.FromUint(0, 1), Data: bitdef.MustParse("101")}}
	chips, err = Slice(narrow)
	assert.NoError(err)
	require.Len(chips, 1)
	assert.Equal("00000101", chips[0][0].Data.String())
}
