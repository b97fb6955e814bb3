// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"cmp"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/eightbit/bitdef"
	"github.com/ezrec/eightbit/internal"
	"github.com/ezrec/eightbit/langdef"
	"github.com/ezrec/eightbit/operation"
)

// Entry is the control word stored at one microcode address.
type Entry struct {
	Address bitdef.Bitdef
	Data    bitdef.Bitdef
}

// Builder generates the microcode ROM of an instruction set.
type Builder struct {
	Verbose    bool                  // If set, logs the generation steps.
	Operations []operation.Operation // Instruction set, operation.All() if nil.
}

// Fetch returns the templates of the instruction fetch, the first steps of
// every instruction.
func Fetch() (templates []operation.DataTemplate) {
	steps := [][]langdef.Control{
		{langdef.CTL_PC_OUT, langdef.CTL_MAR_IN},
		{langdef.CTL_RAM_SEL_PROG, langdef.CTL_RAM_OUT, langdef.CTL_IR_IN, langdef.CTL_PC_COUNT},
	}

	for n, lines := range steps {
		address, err := bitdef.Merge(langdef.AnyAddress(), langdef.StepBits(n))
		if err != nil {
			panic(err)
		}
		data, err := langdef.ControlWord(lines...)
		if err != nil {
			panic(err)
		}
		templates = append(templates, operation.DataTemplate{Address: address, Data: data})
	}

	return
}

// templates yields the fetch templates followed by those of every operation.
func (b *Builder) templates() (seq iter.Seq[operation.DataTemplate], err error) {
	ops := b.Operations
	if ops == nil {
		ops = operation.All()
	}

	seqs := []iter.Seq[operation.DataTemplate]{slices.Values(Fetch())}
	for _, op := range ops {
		var templates []operation.DataTemplate
		templates, err = op.MicrocodeTemplates()
		if err != nil {
			return
		}
		if b.Verbose {
			log.Printf("%v: %d templates", op.Mnemonic(), len(templates))
		}
		seqs = append(seqs, slices.Values(templates))
	}

	seq = internal.IterSeqConcat(seqs...)
	return
}

// Rom returns the complete microcode ROM, one entry per address in
// ascending address order. Two templates claiming the same address is an
// ErrCollision.
func (b *Builder) Rom() (rom []Entry, err error) {
	seq, err := b.templates()
	if err != nil {
		return
	}

	def := langdef.DefaultControlWord()
	entries := map[uint64]Entry{}
	for tmpl := range seq {
		var data bitdef.Bitdef
		data, err = bitdef.FillFrom(tmpl.Data, def)
		if err != nil {
			return
		}
		for address := range bitdef.Collapse(tmpl.Address) {
			if _, taken := entries[address.Uint()]; taken {
				err = &ErrCollision{Address: address}
				return
			}
			entries[address.Uint()] = Entry{Address: address, Data: data}
		}
	}

	if b.Verbose {
		log.Printf("rom: %d addresses from templates", len(entries))
	}

	for address := range bitdef.Collapse(langdef.AnyAddress()) {
		if _, ok := entries[address.Uint()]; !ok {
			entries[address.Uint()] = Entry{Address: address, Data: def}
		}
	}

	rom = make([]Entry, 0, len(entries))
	for _, entry := range entries {
		rom = append(rom, entry)
	}
	slices.SortFunc(rom, func(a, b Entry) int {
		return cmp.Compare(a.Address.Uint(), b.Address.Uint())
	})

	return
}

// Slice splits the ROM data into byte wide lanes, one per ROM chip. Lane 0
// holds the least significant byte of each control word.
func Slice(rom []Entry) (chips map[int][]Entry, err error) {
	chips = map[int][]Entry{}
	if len(rom) == 0 {
		return
	}

	width := rom[0].Data.Len()
	lanes := (width + 7) / 8
	pad := bitdef.FromUint(0, lanes*8-width)

	for _, entry := range rom {
		if entry.Data.Len() != width {
			err = bitdef.ErrBitWidthMismatch
			return nil, err
		}
		var data bitdef.Bitdef
		data, err = bitdef.Concat(pad, entry.Data)
		if err != nil {
			return nil, err
		}
		for lane := range lanes {
			var sub bitdef.Bitdef
			sub, err = bitdef.Extract(data, lane*8+7, lane*8)
			if err != nil {
				return nil, err
			}
			chips[lane] = append(chips[lane], Entry{Address: entry.Address, Data: sub})
		}
	}

	return
}
