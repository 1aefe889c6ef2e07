package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forestrie/go-advent2021/packet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"advent", "--log-level", "NOOP"}, args...)
	status := mainMain(context.Background(), args, &stdout, &stderr)
	return status, stdout.String(), stderr.String()
}

func writeDaySixteen(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "inputs", "day", "16", "input")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestMainDay(t *testing.T) {
	dir := t.TempDir()
	writeDaySixteen(t, dir, "9C0141080250320F1802104A08\n")

	for _, name := range []string{"16", "sixteen"} {
		t.Run(name, func(t *testing.T) {
			status, stdout, stderr := runMain(t, "--inputs", dir, "day", name)
			require.Equal(t, 0, status, stderr)
			assert.Equal(t, "Day 16, Part One: 20\nDay 16, Part Two: 1\n", stdout)
		})
	}
}

func TestMainDayInputsFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeDaySixteen(t, dir, "D2FE28")
	t.Setenv("ADVENT_INPUTS", dir)

	status, stdout, stderr := runMain(t, "day", "16")
	require.Equal(t, 0, status, stderr)
	assert.Equal(t, "Day 16, Part One: 6\nDay 16, Part Two: 2021\n", stdout)
}

func TestMainDayExplicitInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample")
	require.NoError(t, os.WriteFile(path, []byte("C200B40A82"), 0644))

	status, stdout, stderr := runMain(t, "day", "--input", path, "16")
	require.Equal(t, 0, status, stderr)
	assert.Equal(t, "Day 16, Part One: 14\nDay 16, Part Two: 3\n", stdout)
}

func TestMainDayErrors(t *testing.T) {
	dir := t.TempDir()
	writeDaySixteen(t, dir, "D2FE")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no day", []string{"day"}, errMissingDay.Error()},
		{"unknown day", []string{"--inputs", dir, "day", "99"}, "unknown day"},
		{"truncated input", []string{"--inputs", dir, "day", "16"}, "read beyond end of stream"},
		{"missing input", []string{"--inputs", t.TempDir(), "day", "16"}, "no such file"},
		{"input with many days", []string{"day", "--input", "x", "16", "sixteen"}, "single DAY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, stdout, stderr := runMain(t, tt.args...)
			assert.Equal(t, 1, status)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestMainInspect(t *testing.T) {
	status, stdout, stderr := runMain(t, "inspect", "38006F45291200")
	require.Equal(t, 0, status, stderr)
	assert.Equal(t, `v1 lt (bits, 2 children)
  v6 literal 10
  v2 literal 20
version sum: 9
value: 1
`, stdout)
}

func TestMainInspectCBOR(t *testing.T) {
	status, stdout, stderr := runMain(t, "inspect", "--cbor", "9C0141080250320F1802104A08")
	require.Equal(t, 0, status, stderr)

	data, err := hex.DecodeString(strings.TrimSpace(stdout))
	require.NoError(t, err)
	codec, err := packet.NewTreeCodec()
	require.NoError(t, err)
	root, err := codec.UnmarshalTree(data)
	require.NoError(t, err)

	want, err := packet.Decode("9C0141080250320F1802104A08")
	require.NoError(t, err)
	assert.Equal(t, want.Root, root)
}

func TestMainInspectErrors(t *testing.T) {
	status, _, stderr := runMain(t, "inspect", "ZZ")
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "invalid hex character")

	status, _, stderr = runMain(t, "inspect")
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "exactly one HEX")
}
