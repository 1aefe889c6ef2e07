package bitstream

import "errors"

const (
	// WordBits is the width of the storage words backing a Stream.
	WordBits = 64

	// NibbleBits is the number of bits contributed by a single hex character.
	NibbleBits = 4

	nibblesPerWord = WordBits / NibbleBits
)

var (
	ErrInvalidHex = errors.New("bitstream: invalid hex character")
	ErrTruncated  = errors.New("bitstream: read beyond end of stream")
	ErrBadWidth   = errors.New("bitstream: invalid field width")
	ErrOverflow   = errors.New("bitstream: value does not fit the field width")
)

// Stream is an immutable sequence of bits packed MSB-first into 64 bit
// words. The zero value is an empty stream.
type Stream struct {
	words []uint64
	n     int
}

// Len returns the number of bits in the stream, including any trailing
// padding carried by the source text.
func (s Stream) Len() int { return s.n }
