package puzzle

import (
	"strings"

	"github.com/forestrie/go-advent2021/packet"
)

// DaySixteen decodes a hex encoded packet transmission.
var DaySixteen = Day{
	Number:    16,
	InputPath: "inputs/day/16/input",
	PartOne:   PacketVersionSum,
	PartTwo:   PacketValue,
}

// PacketVersionSum returns the sum of the version numbers of every packet in
// the transmission. A transmission that does not evaluate is rejected.
func PacketVersionSum(input string) (uint64, error) {
	r, err := packet.Decode(strings.TrimSpace(input))
	if err != nil {
		return 0, err
	}
	return r.VersionSum, nil
}

// PacketValue returns the evaluated value of the outermost packet.
func PacketValue(input string) (uint64, error) {
	r, err := packet.Decode(strings.TrimSpace(input))
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}
