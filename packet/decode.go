package packet

import (
	"github.com/forestrie/go-advent2021/bitstream"
)

// Result is a fully decoded and evaluated message.
type Result struct {
	Root       Packet
	VersionSum uint64
	Value      uint64

	// Bits is the span of the outermost packet. The remaining
	// Stream.Len()-Bits bits are padding and are never interpreted.
	Bits int
}

// Decode parses the hexadecimal message and evaluates its outermost packet.
func Decode(hex string) (Result, error) {
	s, err := bitstream.FromHex(hex)
	if err != nil {
		return Result{}, err
	}
	root, versionSum, err := Parse(s)
	if err != nil {
		return Result{}, err
	}
	value, err := Evaluate(root)
	if err != nil {
		return Result{}, err
	}
	return Result{Root: root, VersionSum: versionSum, Value: value, Bits: root.Bits}, nil
}
