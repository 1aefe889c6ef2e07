package bitstream

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Writer appends fixed width fields to a growing bit sequence. The zero value
// is ready to use.
type Writer struct {
	words []uint64
	n     int
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int { return w.n }

// WriteBits appends the low width bits of v, most significant first.
//
// v must fit in width bits, otherwise ErrOverflow is returned and nothing is
// written.
func (w *Writer) WriteBits(v uint64, width int) error {
	if width <= 0 || width > WordBits {
		return fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	if width < WordBits && v>>width != 0 {
		return fmt.Errorf("%w: %d in %d bits", ErrOverflow, v, width)
	}

	bit := w.n % WordBits
	if bit == 0 {
		w.words = append(w.words, 0)
	}
	room := WordBits - bit
	last := len(w.words) - 1

	if width <= room {
		w.words[last] |= v << (room - width)
	} else {
		lo := width - room
		w.words[last] |= v >> lo
		w.words = append(w.words, v<<(WordBits-lo))
	}
	w.n += width
	return nil
}

// WriteStream appends every bit of s.
func (w *Writer) WriteStream(s Stream) error {
	for off := 0; off < s.n; off += WordBits {
		width := min(WordBits, s.n-off)
		v, _, err := ReadBits(s, off, width)
		if err != nil {
			return err
		}
		if err := w.WriteBits(v, width); err != nil {
			return err
		}
	}
	return nil
}

// Stream returns an immutable copy of the bits written so far.
func (w *Writer) Stream() Stream {
	words := make([]uint64, len(w.words))
	copy(words, w.words)
	return Stream{words: words, n: w.n}
}

// Bytes returns the written bits padded with zero bits to a whole byte.
func (w *Writer) Bytes() []byte {
	b := make([]byte, (w.n+7)/8)
	for i := range b {
		b[i] = byte(w.words[i/8] >> (WordBits - 8*(i%8+1)))
	}
	return b
}

// Hex returns Bytes as upper case hexadecimal text, the form in which
// messages are transmitted.
func (w *Writer) Hex() string {
	return strings.ToUpper(hex.EncodeToString(w.Bytes()))
}
