// Package assembler turns eight bit computer assembly into machine code.
//
// A source line is one of:
//
//	@name            label definition, bound to the next line with machine code
//	$name            variable definition
//	MNEMONIC args..  an operation, see package operation
//
// Text after // is a comment. Labels resolve to program byte indexes,
// variables to data memory addresses allocated in order of first
// appearance.
//
//	    SET A #5
//	@loop
//	    DECR A
//	    STORE A [$count]
//	    JUMP_IF_ZERO_FLAG @done
//	    JUMP @loop
//	@done
//	    HALT
package assembler
