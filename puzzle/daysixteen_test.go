package puzzle

import (
	"testing"

	"github.com/forestrie/go-advent2021/packet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySixteen(t *testing.T) {
	tests := []struct {
		input   string
		partOne uint64
		partTwo uint64
	}{
		{"D2FE28\n", 6, 2021},
		{"9C0141080250320F1802104A08", 20, 1},
		{"C200B40A82\n", 14, 3},
		{"8A004A801A8002F478", 16, 15},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DaySixteen.PartOne(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.partOne, got)

			got, err = DaySixteen.PartTwo(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.partTwo, got)
		})
	}
}

func TestDaySixteenErrors(t *testing.T) {
	_, err := PacketVersionSum("D2FX28")
	require.ErrorIs(t, err, packet.ErrInvalidHex)

	_, err = PacketValue("D2FX28")
	require.ErrorIs(t, err, packet.ErrInvalidHex)

	_, err = PacketVersionSum("EE00D40C82")
	require.ErrorIs(t, err, packet.ErrTruncated)

	_, err = PacketValue("")
	require.ErrorIs(t, err, packet.ErrTruncated)

	// Both parts reject trees that parse but do not evaluate.
	for _, tt := range []struct {
		input string
		want  error
	}{
		{"620000", packet.ErrEmptyOperator},
		{"38002D4280", packet.ErrUnknownOperator},
	} {
		_, err = PacketVersionSum(tt.input)
		require.ErrorIs(t, err, tt.want, tt.input)

		_, err = PacketValue(tt.input)
		require.ErrorIs(t, err, tt.want, tt.input)
	}
}
