package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/forestrie/go-advent2021/packet"
	"github.com/urfave/cli/v3"
)

func cmdInspect() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Decode a hex packet transmission and show its structure",
		ArgsUsage: "HEX",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "cbor",
				Usage: "print the hex of the CBOR tree snapshot instead of the tree",
			},
		},
		Action: runInspect,
	}
}

func runInspect(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one HEX argument, got %d", cmd.Args().Len())
	}
	log, runID := newRunLog()

	r, err := packet.Decode(strings.TrimSpace(cmd.Args().First()))
	if err != nil {
		return err
	}
	log.Debugf("run %s: %d packets in %d bits", runID, packet.Count(r.Root), r.Bits)

	out := cmd.Root().Writer
	if cmd.Bool("cbor") {
		codec, err := packet.NewTreeCodec()
		if err != nil {
			return err
		}
		data, err := codec.MarshalTree(r.Root)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hex.EncodeToString(data))
		return nil
	}

	fmt.Fprint(out, packet.Format(r.Root))
	fmt.Fprintf(out, "version sum: %d\n", r.VersionSum)
	fmt.Fprintf(out, "value: %d\n", r.Value)
	return nil
}
