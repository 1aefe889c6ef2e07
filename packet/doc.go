// Package packet decodes and evaluates the nested, self describing binary
// messages used by the day sixteen puzzle.
//
// A message is a single outermost packet. Every packet starts with a 6 bit
// header (3 bit version, 3 bit type id). Type id 4 is a literal whose value
// follows as 5 bit groups, each a continuation flag and a nibble. Any other
// type id is an operator whose children follow one of two length encodings:
//
//	length type 0: 15 bit count of bits occupied by the children
//	length type 1: 11 bit count of children
//
// Parsing is recursive descent over an immutable bitstream.Stream. Each parse
// step takes an offset and returns the number of bits it consumed, so the
// caller always knows exactly where the next field starts. The version sum is
// accumulated on the way back up the recursion.
//
// Evaluation is a separate bottom up fold over the parsed tree.
package packet
