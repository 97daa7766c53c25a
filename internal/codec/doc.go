// Package codec implements the bit-exact 5-byte binary chord format and
// its hex helpers.
//
// The wire layout is a storage/interchange contract shared with every
// downstream consumer and must not drift:
//
//	Byte 0: bit7 reserved; bits6-4 root; bit3 add9; bit2 add6; bit1 add4; bit0 reserved
//	Byte 1: bits7-6 inversion; bits5-3 extension index; bits2-0 applied target
//	Byte 2: bits7-6 reserved; bit5 b13; bit4 #11; bit3 #9; bit2 b9; bit1 #5; bit0 b5
//	Byte 3: bit7 sus4; bit6 sus2; bit5 borrowed flag; bits4-0 borrowed scale index
//	Byte 4: bits7-2 reserved; bit1 omit5; bit0 omit3
//
// Encode normalizes first, so one logical chord has exactly one byte
// representation. Decode rejects malformed input with FormatError naming
// the offending byte.
package codec
