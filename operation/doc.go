// Package operation defines the instructions of the eight bit computer's
// assembly language.
//
// Each Operation recognises its own lines of assembly, turning them into an
// instruction byte followed by any constant bytes, and describes the
// microcode each of its encodings runs after the instruction fetch.
//
// An argument is in exactly one of four classes:
//
//	A        module
//	[A]      memory location held in a module
//	#5 @x $y constant
//	[#5]     memory location given by a constant
package operation
