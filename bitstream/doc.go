package bitstream

/*

# Bit addressable streams decoded from hexadecimal text

This package provides the primitive building blocks for reading fixed width,
non byte aligned fields out of a message transmitted as hexadecimal text.

It follows the "functional primitives" style used elsewhere in this module:

- a small immutable value type (Stream)
- free functions taking the stream plus an explicit bit offset
- the caller threads the returned consumed count into its next offset

## Bit numbering

Each hex character contributes 4 bits, most significant bit first. The bits
are packed MSB-first into 64 bit words, so bit offset 0 is the MSB of word 0
and bit offset 64 is the MSB of word 1:

	hex:    D       2       F       E   ...
	bits:   1101    0010    1111    1110
	offset: 0..3    4..7    8..11   12..15

A field may straddle a word boundary. ReadBits splits such reads into the tail
of one word and the head of the next.

## Padding

Messages are padded with trailing zero bits to a whole number of hex digits
(and typically bytes). Nothing in this package interprets or validates those
bits; a reader simply stops at the end of the last field it needs.

*/
