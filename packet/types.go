package packet

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-advent2021/bitstream"
)

// TypeID selects the payload of a packet: a literal, or the operator applied
// to the children.
type TypeID uint8

const (
	TypeSum TypeID = iota
	TypeProduct
	TypeMinimum
	TypeMaximum
	TypeLiteral
	TypeGreater
	TypeLess
	TypeEqual
)

func (t TypeID) String() string {
	switch t {
	case TypeSum:
		return "sum"
	case TypeProduct:
		return "product"
	case TypeMinimum:
		return "minimum"
	case TypeMaximum:
		return "maximum"
	case TypeLiteral:
		return "literal"
	case TypeGreater:
		return "gt"
	case TypeLess:
		return "lt"
	case TypeEqual:
		return "eq"
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// LengthType selects how an operator packet declares the extent of its
// children.
type LengthType uint8

const (
	// LengthBits declares the total number of bits used by the children.
	LengthBits LengthType = 0
	// LengthCount declares the number of children.
	LengthCount LengthType = 1
)

// Field widths, in bits.
const (
	VersionBits    = 3
	TypeIDBits     = 3
	HeaderBits     = VersionBits + TypeIDBits
	GroupBits      = 5
	LengthTypeBits = 1
	BitLengthBits  = 15
	CountBits      = 11

	// MinPacketBits is the size of the smallest possible packet, a literal
	// with a single group. Every child parse consumes at least this much.
	MinPacketBits = HeaderBits + GroupBits

	groupContinue = 1 << (GroupBits - 1)
	groupNibble   = groupContinue - 1
)

// DefaultMaxDepth bounds packet nesting when ParseOptions.MaxDepth is zero.
const DefaultMaxDepth = 1024

var (
	ErrInvalidHex = bitstream.ErrInvalidHex
	ErrTruncated  = bitstream.ErrTruncated

	ErrUnknownOperator   = errors.New("packet: unknown operator")
	ErrEmptyOperator     = errors.New("packet: operator has no operands")
	ErrLengthMismatch    = errors.New("packet: children do not fill the declared length")
	ErrTooDeep           = errors.New("packet: nesting exceeds maximum depth")
	ErrLiteralOverflow   = errors.New("packet: literal exceeds 64 bits")
	ErrFieldOverflow     = errors.New("packet: value does not fit its field")
	ErrInvalidLengthType = errors.New("packet: invalid length type")
	ErrTreeSnapshot      = errors.New("packet: malformed tree snapshot")
)

// Packet is one decoded unit of a message.
//
// A literal (TypeID == TypeLiteral) carries Value and has no Children. Every
// other TypeID is an operator over Children, in transmission order, and
// Value is unused.
type Packet struct {
	Version    uint8
	TypeID     TypeID
	LengthType LengthType // operators only
	Value      uint64     // literals only
	Children   []Packet   // operators only

	// Bits is the span the packet occupied in the stream, including the
	// header and all descendants. It is set by the parser; hand built packets
	// may leave it zero.
	Bits int
}

// IsLiteral reports whether p carries a value rather than children.
func (p Packet) IsLiteral() bool { return p.TypeID == TypeLiteral }
