// Package bitdef manipulates fixed width bit fields with "don't care" bits.
//
// A bit field is written most significant bit first as a string of '0', '1'
// and 'X' characters, for example "1X0X". Fields are merged to build
// microcode addresses and control words, collapsed to enumerate every
// concrete address a wildcarded template claims, and sliced into bytes for
// the ROM chips.
package bitdef
