package bitstream

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ReadBits returns the width bits of s starting at offset as an unsigned
// value, along with the number of bits consumed (always width on success).
//
// width must be in [1, 64]. The span may cross a storage word boundary. A
// span reaching past Len() fails with ErrTruncated; callers must not read
// trailing padding they do not need.
func ReadBits(s Stream, offset, width int) (uint64, int, error) {
	if width <= 0 || width > WordBits {
		return 0, 0, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	if offset < 0 || offset+width > s.n {
		return 0, 0, fmt.Errorf(
			"%w: %d bits at offset %d, stream has %d", ErrTruncated, width, offset, s.n)
	}

	i := offset / WordBits
	bit := offset % WordBits

	if bit+width <= WordBits {
		return (s.words[i] << bit) >> (WordBits - width), width, nil
	}

	// The field straddles words i and i+1. offset+width <= n guarantees the
	// second word exists.
	hiWidth := WordBits - bit
	loWidth := width - hiWidth
	hi := (s.words[i] << bit) >> bit
	lo := s.words[i+1] >> (WordBits - loWidth)
	return hi<<loWidth | lo, width, nil
}

// ReadAs is ReadBits narrowed to T. It fails with ErrBadWidth if width
// exceeds the bit size of T.
func ReadAs[T constraints.Unsigned](s Stream, offset, width int) (T, int, error) {
	if width > bitSize[T]() {
		return 0, 0, fmt.Errorf("%w: %d bits into a %d bit value", ErrBadWidth, width, bitSize[T]())
	}
	v, n, err := ReadBits(s, offset, width)
	if err != nil {
		return 0, 0, err
	}
	return T(v), n, nil
}

func bitSize[T constraints.Unsigned]() int {
	n := 0
	for v := ^T(0); v != 0; v >>= 1 {
		n++
	}
	return n
}
