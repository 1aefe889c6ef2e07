package packet

import (
	"fmt"

	"github.com/forestrie/go-advent2021/bitstream"
)

// ParseOptions tunes ParsePacketWithOptions. The zero value is the default.
type ParseOptions struct {
	// MaxDepth is the deepest nesting accepted, the outermost packet being
	// depth 0. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses the outermost packet of s, which starts at bit 0, and returns
// it along with the sum of every version number in the tree.
func Parse(s bitstream.Stream) (Packet, uint64, error) {
	_, versionSum, p, err := ParsePacket(s, 0)
	return p, versionSum, err
}

// ParsePacket parses the packet starting at offset.
//
// It returns the number of bits the packet consumed (header and all
// descendants), the sum of the version numbers of the packet and all its
// descendants, and the packet itself. Any failure rejects the whole packet;
// no partial tree is returned.
func ParsePacket(s bitstream.Stream, offset int) (int, uint64, Packet, error) {
	return ParsePacketWithOptions(s, offset, ParseOptions{})
}

// ParsePacketWithOptions is ParsePacket with explicit options.
func ParsePacketWithOptions(
	s bitstream.Stream, offset int, opts ParseOptions) (int, uint64, Packet, error) {

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	consumed, versionSum, p, err := parsePacket(s, offset, 0, maxDepth)
	if err != nil {
		return 0, 0, Packet{}, err
	}
	return consumed, versionSum, p, nil
}

func parsePacket(s bitstream.Stream, offset, depth, maxDepth int) (int, uint64, Packet, error) {
	if depth > maxDepth {
		return 0, 0, Packet{}, fmt.Errorf("%w: packet at bit %d is at depth %d", ErrTooDeep, offset, depth)
	}

	i := offset
	version, n, err := bitstream.ReadAs[uint8](s, i, VersionBits)
	if err != nil {
		return 0, 0, Packet{}, fmt.Errorf("version of packet at bit %d: %w", offset, err)
	}
	i += n
	typeID, n, err := bitstream.ReadAs[uint8](s, i, TypeIDBits)
	if err != nil {
		return 0, 0, Packet{}, fmt.Errorf("type of packet at bit %d: %w", offset, err)
	}
	i += n

	p := Packet{Version: version, TypeID: TypeID(typeID)}

	if p.IsLiteral() {
		n, value, err := readLiteral(s, i)
		if err != nil {
			return 0, 0, Packet{}, fmt.Errorf("literal at bit %d: %w", offset, err)
		}
		i += n
		p.Value = value
		p.Bits = i - offset
		return p.Bits, uint64(version), p, nil
	}

	lengthType, n, err := bitstream.ReadAs[uint8](s, i, LengthTypeBits)
	if err != nil {
		return 0, 0, Packet{}, fmt.Errorf("length type of packet at bit %d: %w", offset, err)
	}
	i += n
	p.LengthType = LengthType(lengthType)

	versionSum := uint64(version)

	// Each child consumes at least MinPacketBits, so both loops strictly
	// shrink their remaining budget.
	switch p.LengthType {
	case LengthBits:
		budget, n, err := bitstream.ReadAs[uint16](s, i, BitLengthBits)
		if err != nil {
			return 0, 0, Packet{}, fmt.Errorf("bit length of packet at bit %d: %w", offset, err)
		}
		i += n
		end := i + int(budget)
		for i < end {
			n, childSum, child, err := parsePacket(s, i, depth+1, maxDepth)
			if err != nil {
				return 0, 0, Packet{}, err
			}
			i += n
			if i > end {
				return 0, 0, Packet{}, fmt.Errorf(
					"%w: %w: children of packet at bit %d overrun their %d bit span by %d bits",
					ErrTruncated, ErrLengthMismatch, offset, budget, i-end)
			}
			versionSum += childSum
			p.Children = append(p.Children, child)
		}

	case LengthCount:
		count, n, err := bitstream.ReadAs[uint16](s, i, CountBits)
		if err != nil {
			return 0, 0, Packet{}, fmt.Errorf("child count of packet at bit %d: %w", offset, err)
		}
		i += n
		if count > 0 {
			p.Children = make([]Packet, 0, count)
		}
		for range count {
			n, childSum, child, err := parsePacket(s, i, depth+1, maxDepth)
			if err != nil {
				return 0, 0, Packet{}, err
			}
			i += n
			versionSum += childSum
			p.Children = append(p.Children, child)
		}
	}

	p.Bits = i - offset
	return p.Bits, versionSum, p, nil
}
