// Package langdef holds the fixed instruction set tables of the eight bit
// computer: module and group codes of the instruction byte, status flags,
// step numbers and control lines.
//
// A microcode address is the instruction byte, the four status flags and
// the three bit step counter:
//
//	14      7 6    3 2  0
//	[ instr  ][ZCNV][step]
//
// An instruction byte is a two bit group, a three bit source and a three
// bit destination:
//
//	7 6 5   3 2   0
//	[g][ src ][dest]
package langdef
