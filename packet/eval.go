package packet

import (
	"fmt"
	"slices"
)

// Evaluate returns the value of p: the literal value for a literal, or the
// operator applied to the values of the children in order.
//
//	sum, product, minimum, maximum: one or more children
//	gt, lt, eq: exactly two children, result 1 or 0
func Evaluate(p Packet) (uint64, error) {
	if p.IsLiteral() {
		return p.Value, nil
	}
	if p.TypeID > TypeEqual {
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperator, p.TypeID)
	}

	terms := make([]uint64, 0, len(p.Children))
	for _, child := range p.Children {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}
		terms = append(terms, v)
	}
	return apply(p.TypeID, terms)
}

func apply(t TypeID, terms []uint64) (uint64, error) {
	switch t {
	case TypeSum, TypeProduct, TypeMinimum, TypeMaximum:
		if len(terms) == 0 {
			return 0, fmt.Errorf("%w: %s", ErrEmptyOperator, t)
		}
	case TypeGreater, TypeLess, TypeEqual:
		if len(terms) != 2 {
			return 0, fmt.Errorf("%w: %s takes 2 operands, got %d", ErrUnknownOperator, t, len(terms))
		}
	}

	switch t {
	case TypeSum:
		var sum uint64
		for _, v := range terms {
			sum += v
		}
		return sum, nil
	case TypeProduct:
		product := uint64(1)
		for _, v := range terms {
			product *= v
		}
		return product, nil
	case TypeMinimum:
		return slices.Min(terms), nil
	case TypeMaximum:
		return slices.Max(terms), nil
	case TypeGreater:
		return boolValue(terms[0] > terms[1]), nil
	case TypeLess:
		return boolValue(terms[0] < terms[1]), nil
	case TypeEqual:
		return boolValue(terms[0] == terms[1]), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownOperator, t)
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
