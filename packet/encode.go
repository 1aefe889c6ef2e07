package packet

import (
	"fmt"

	"github.com/forestrie/go-advent2021/bitstream"
)

// Encode is the inverse of ParsePacket. Operators are written with their
// LengthType, so parsing a message and encoding the result reproduces the
// original bits up to the trailing padding.
func Encode(p Packet) (bitstream.Stream, error) {
	var w bitstream.Writer
	if err := encodePacket(&w, p); err != nil {
		return bitstream.Stream{}, err
	}
	return w.Stream(), nil
}

// EncodeHex encodes p and returns it as upper case hex, zero padded to a
// whole byte.
func EncodeHex(p Packet) (string, error) {
	var w bitstream.Writer
	if err := encodePacket(&w, p); err != nil {
		return "", err
	}
	return w.Hex(), nil
}

func encodePacket(w *bitstream.Writer, p Packet) error {
	if err := w.WriteBits(uint64(p.Version), VersionBits); err != nil {
		return fmt.Errorf("%w: version %d", ErrFieldOverflow, p.Version)
	}
	if err := w.WriteBits(uint64(p.TypeID), TypeIDBits); err != nil {
		return fmt.Errorf("%w: type id %d", ErrFieldOverflow, p.TypeID)
	}

	if p.IsLiteral() {
		for _, g := range EncodeLiteral(p.Value) {
			if err := w.WriteBits(uint64(g), GroupBits); err != nil {
				return err
			}
		}
		return nil
	}

	switch p.LengthType {
	case LengthBits:
		var body bitstream.Writer
		for _, child := range p.Children {
			if err := encodePacket(&body, child); err != nil {
				return err
			}
		}
		if body.Len() >= 1<<BitLengthBits {
			return fmt.Errorf("%w: %d bits of children", ErrFieldOverflow, body.Len())
		}
		if err := w.WriteBits(uint64(LengthBits), LengthTypeBits); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(body.Len()), BitLengthBits); err != nil {
			return err
		}
		return w.WriteStream(body.Stream())

	case LengthCount:
		if len(p.Children) >= 1<<CountBits {
			return fmt.Errorf("%w: %d children", ErrFieldOverflow, len(p.Children))
		}
		if err := w.WriteBits(uint64(LengthCount), LengthTypeBits); err != nil {
			return err
		}
		if err := w.WriteBits(uint64(len(p.Children)), CountBits); err != nil {
			return err
		}
		for _, child := range p.Children {
			if err := encodePacket(w, child); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidLengthType, p.LengthType)
}
