package packet

import (
	"fmt"
	"math/bits"

	"github.com/forestrie/go-advent2021/bitstream"
)

// readLiteral reads the 5 bit groups of a literal starting at offset and
// returns the bits consumed and the assembled value.
func readLiteral(s bitstream.Stream, offset int) (int, uint64, error) {
	i := offset
	var value uint64
	for {
		group, n, err := bitstream.ReadAs[uint8](s, i, GroupBits)
		if err != nil {
			return 0, 0, err
		}
		i += n
		if value>>(64-4) != 0 {
			return 0, 0, fmt.Errorf("%w: group %d", ErrLiteralOverflow, (i-offset)/GroupBits)
		}
		value = value<<4 | uint64(group&groupNibble)
		if group&groupContinue == 0 {
			return i - offset, value, nil
		}
	}
}

// EncodeLiteral returns the 5 bit groups encoding v, most significant nibble
// first. Every group but the last has its continuation bit set. Zero encodes
// as a single group.
func EncodeLiteral(v uint64) []uint8 {
	nibbles := max(1, (bits.Len64(v)+3)/4)
	groups := make([]uint8, nibbles)
	for i := range groups {
		shift := 4 * (nibbles - 1 - i)
		groups[i] = uint8(v>>shift) & groupNibble
		if i < nibbles-1 {
			groups[i] |= groupContinue
		}
	}
	return groups
}
