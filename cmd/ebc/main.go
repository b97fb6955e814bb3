// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/beevik/prefixtree/v2"

	"github.com/ezrec/eightbit/assembler"
	"github.com/ezrec/eightbit/emulator"
	"github.com/ezrec/eightbit/rom"
)

type command func(args []string, out io.Writer) error

var (
	verbose bool
	offset  int
)

func main() {
	var output string

	flag.StringVar(&output, "o", "-", "Output file")
	flag.IntVar(&offset, "offset", 0, "First data address given to a variable")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] assemble|roms|run [file]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	commands := prefixtree.New[command]()
	commands.Add("assemble", cmdAssemble)
	commands.Add("roms", cmdRoms)
	commands.Add("run", cmdRun)

	cmd, err := commands.FindValue(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v: %v: %v", os.Args[0], flag.Arg(0), err)
	}

	out := io.Writer(os.Stdout)
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	buf := bufio.NewWriter(out)
	err = cmd(flag.Args()[1:], buf)
	if err == nil {
		err = buf.Flush()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// parse assembles the single file named by args, or stdin for "-".
func parse(args []string) (prog *assembler.Program, err error) {
	if len(args) != 1 {
		err = fmt.Errorf("expected one source file, got %d", len(args))
		return
	}

	name := args[0]
	input := io.Reader(os.Stdin)
	if name != "-" {
		inf, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer inf.Close()
		input = inf
	}

	asm := &assembler.Assembler{
		Verbose:             verbose,
		VariableStartOffset: offset,
	}
	prog, err = asm.Parse(input)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
	}

	return
}

// cmdAssemble prints the machine code, one byte per line.
func cmdAssemble(args []string, out io.Writer) (err error) {
	prog, err := parse(args)
	if err != nil {
		return
	}

	for _, code := range prog.MachineCode() {
		_, err = fmt.Fprintln(out, code)
		if err != nil {
			return
		}
	}

	return
}

// cmdRoms prints the microcode of each ROM chip.
func cmdRoms(args []string, out io.Writer) (err error) {
	if len(args) != 0 {
		err = fmt.Errorf("unexpected arguments: %v", args)
		return
	}

	builder := &rom.Builder{Verbose: verbose}
	entries, err := builder.Rom()
	if err != nil {
		return
	}

	chips, err := rom.Slice(entries)
	if err != nil {
		return
	}

	lanes := make([]int, 0, len(chips))
	for lane := range chips {
		lanes = append(lanes, lane)
	}
	slices.Sort(lanes)

	for _, lane := range lanes {
		fmt.Fprintf(out, "# chip %d\n", lane)
		for _, entry := range chips[lane] {
			_, err = fmt.Fprintf(out, "%v: %v\n", entry.Address, entry.Data)
			if err != nil {
				return
			}
		}
	}

	return
}

// cmdRun runs a program until it halts, then dumps the registers.
func cmdRun(args []string, out io.Writer) (err error) {
	prog, err := parse(args)
	if err != nil {
		return
	}

	emu, err := emulator.NewEmulator()
	if err != nil {
		return
	}
	emu.Verbose = verbose

	err = emu.Load(prog)
	if err != nil {
		return
	}

	err = emu.Run()
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(out, emu.String())

	return
}
