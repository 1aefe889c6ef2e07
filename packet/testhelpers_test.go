package packet

import (
	"math/rand"
	"testing"

	"github.com/forestrie/go-advent2021/bitstream"
	"github.com/stretchr/testify/require"
)

func mustStream(t *testing.T, hex string) bitstream.Stream {
	t.Helper()
	s, err := bitstream.FromHex(hex)
	require.NoError(t, err)
	return s
}

func lit(version uint8, v uint64) Packet {
	return Packet{Version: version, TypeID: TypeLiteral, Value: v}
}

func op(version uint8, t TypeID, lt LengthType, children ...Packet) Packet {
	return Packet{Version: version, TypeID: t, LengthType: lt, Children: children}
}

// stripBits clears the parser assigned spans so parsed trees compare equal
// to hand built ones.
func stripBits(p Packet) Packet {
	p.Bits = 0
	if p.Children == nil {
		return p
	}
	children := make([]Packet, len(p.Children))
	for i, c := range p.Children {
		children[i] = stripBits(c)
	}
	p.Children = children
	return p
}

var operatorTypes = []TypeID{
	TypeSum, TypeProduct, TypeMinimum, TypeMaximum, TypeGreater, TypeLess, TypeEqual,
}

// randomPacket builds a well formed tree of at most the given height.
func randomPacket(rng *rand.Rand, height int) Packet {
	version := uint8(rng.Intn(8))
	if height == 0 || rng.Intn(3) == 0 {
		return lit(version, rng.Uint64()>>rng.Intn(64))
	}
	t := operatorTypes[rng.Intn(len(operatorTypes))]
	n := 1 + rng.Intn(4)
	if t >= TypeGreater {
		n = 2
	}
	children := make([]Packet, n)
	for i := range children {
		children[i] = randomPacket(rng, height-1)
	}
	return op(version, t, LengthType(rng.Intn(2)), children...)
}

// evaluateReference evaluates without sharing any code with Evaluate.
func evaluateReference(p Packet) uint64 {
	if p.TypeID == TypeLiteral {
		return p.Value
	}
	vs := make([]uint64, len(p.Children))
	for i, c := range p.Children {
		vs[i] = evaluateReference(c)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		switch p.TypeID {
		case TypeSum:
			acc += v
		case TypeProduct:
			acc *= v
		case TypeMinimum:
			if v < acc {
				acc = v
			}
		case TypeMaximum:
			if v > acc {
				acc = v
			}
		}
	}
	var b bool
	switch p.TypeID {
	case TypeGreater:
		b = vs[0] > vs[1]
	case TypeLess:
		b = vs[0] < vs[1]
	case TypeEqual:
		b = vs[0] == vs[1]
	default:
		return acc
	}
	if b {
		return 1
	}
	return 0
}
