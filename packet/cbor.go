package packet

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// nodeRecord is the CBOR form of one packet. A tree is stored as its
// preorder sequence of records; Children gives the number of records that
// are direct children, so no CBOR nesting is needed however deep the tree.
type nodeRecord struct {
	_          struct{} `cbor:",toarray"`
	Version    uint8
	TypeID     uint8
	LengthType uint8
	Value      uint64
	Children   uint32
	Bits       uint32
}

// TreeCodec marshals packet trees to and from a compact deterministic CBOR
// snapshot.
type TreeCodec struct {
	enc      cbor.EncMode
	dec      cbor.DecMode
	maxDepth int
}

type TreeCodecOption func(*TreeCodec)

// WithTreeMaxDepth sets the deepest nesting UnmarshalTree accepts. It should
// match the ParseOptions.MaxDepth the trees were parsed with. Zero or less
// means DefaultMaxDepth.
func WithTreeMaxDepth(depth int) TreeCodecOption {
	return func(c *TreeCodec) {
		c.maxDepth = depth
	}
}

// NewTreeCodec returns a codec using core deterministic CBOR encoding.
func NewTreeCodec(opts ...TreeCodecOption) (TreeCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return TreeCodec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return TreeCodec{}, err
	}
	c := TreeCodec{enc: enc, dec: dec}
	for _, o := range opts {
		o(&c)
	}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}
	return c, nil
}

// MarshalTree returns the CBOR snapshot of the tree rooted at p.
func (c TreeCodec) MarshalTree(p Packet) ([]byte, error) {
	records := make([]nodeRecord, 0, Count(p))
	Walk(p, func(_ int, p Packet) bool {
		records = append(records, nodeRecord{
			Version:    p.Version,
			TypeID:     uint8(p.TypeID),
			LengthType: uint8(p.LengthType),
			Value:      p.Value,
			Children:   uint32(len(p.Children)),
			Bits:       uint32(p.Bits),
		})
		return true
	})
	return c.enc.Marshal(records)
}

// UnmarshalTree rebuilds the tree from a snapshot produced by MarshalTree.
func (c TreeCodec) UnmarshalTree(data []byte) (Packet, error) {
	var records []nodeRecord
	if err := c.dec.Unmarshal(data, &records); err != nil {
		return Packet{}, fmt.Errorf("%w: %w", ErrTreeSnapshot, err)
	}
	p, next, err := buildTree(records, 0, 0, c.maxDepth)
	if err != nil {
		return Packet{}, err
	}
	if next != len(records) {
		return Packet{}, fmt.Errorf("%w: %d trailing records", ErrTreeSnapshot, len(records)-next)
	}
	return p, nil
}

func buildTree(records []nodeRecord, i, depth, maxDepth int) (Packet, int, error) {
	if i >= len(records) {
		return Packet{}, 0, fmt.Errorf("%w: missing record %d", ErrTreeSnapshot, i)
	}
	if depth > maxDepth {
		return Packet{}, 0, fmt.Errorf("%w: %w", ErrTreeSnapshot, ErrTooDeep)
	}
	r := records[i]
	p := Packet{
		Version:    r.Version,
		TypeID:     TypeID(r.TypeID),
		LengthType: LengthType(r.LengthType),
		Value:      r.Value,
		Bits:       int(r.Bits),
	}
	next := i + 1
	if p.IsLiteral() {
		if r.Children != 0 {
			return Packet{}, 0, fmt.Errorf("%w: literal record %d has children", ErrTreeSnapshot, i)
		}
		return p, next, nil
	}
	if int(r.Children) > len(records)-next {
		return Packet{}, 0, fmt.Errorf("%w: record %d claims %d children", ErrTreeSnapshot, i, r.Children)
	}
	// Childless operators keep nil Children, as the parser leaves them.
	if r.Children > 0 {
		p.Children = make([]Packet, 0, r.Children)
	}
	for range r.Children {
		child, after, err := buildTree(records, next, depth+1, maxDepth)
		if err != nil {
			return Packet{}, 0, err
		}
		p.Children = append(p.Children, child)
		next = after
	}
	return p, next, nil
}
