// Package rom generates the microcode ROM of the eight bit computer.
//
// Every address of the ROM is an instruction byte, the flags and a step
// number. The data at an address is the control word driving that step.
// Addresses no instruction uses hold the default control word.
package rom
