package bitstream

import "fmt"

// FromHex decodes s, a string of case insensitive hexadecimal digits, into a
// Stream of 4*len(s) bits.
//
// Any byte outside [0-9a-fA-F] fails the whole decode. The error wraps
// ErrInvalidHex and reports the offending offset.
func FromHex(s string) (Stream, error) {
	words := make([]uint64, (len(s)+nibblesPerWord-1)/nibblesPerWord)
	for i := 0; i < len(s); i++ {
		nib, ok := hexNibble(s[i])
		if !ok {
			return Stream{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidHex, s[i], i)
		}
		shift := WordBits - NibbleBits*(i%nibblesPerWord+1)
		words[i/nibblesPerWord] |= uint64(nib) << shift
	}
	return Stream{words: words, n: len(s) * NibbleBits}, nil
}

// FromBytes returns the bits of b, most significant bit of b[0] first.
func FromBytes(b []byte) Stream {
	words := make([]uint64, (len(b)+7)/8)
	for i, v := range b {
		shift := WordBits - 8*(i%8+1)
		words[i/8] |= uint64(v) << shift
	}
	return Stream{words: words, n: len(b) * 8}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
