package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/forestrie/go-advent2021/puzzle"
	"github.com/urfave/cli/v3"
)

var errMissingDay = errors.New("a DAY argument is required")

func cmdDay() *cli.Command {
	return &cli.Command{
		Name:      "day",
		Usage:     "Solve both parts of one or more days",
		ArgsUsage: "DAY...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "input",
				Usage:     "input file to use instead of the day's default (single DAY only)",
				TakesFile: true,
			},
		},
		Action: runDay,
	}
}

func runDay(ctx context.Context, cmd *cli.Command) error {
	names := cmd.Args().Slice()
	if len(names) == 0 {
		return errMissingDay
	}
	input := cmd.String("input")
	if input != "" && len(names) > 1 {
		return fmt.Errorf("--input applies to a single DAY, got %d", len(names))
	}

	log, runID := newRunLog()
	log.Debugf("run %s: days %v", runID, names)

	registry := puzzle.Default()
	runner := puzzle.NewRunner(log, cmd.String("inputs"))
	out := cmd.Root().Writer

	for _, name := range names {
		day, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		answer, err := runner.Run(ctx, day, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Day %d, Part One: %d\n", answer.Day, answer.PartOne)
		fmt.Fprintf(out, "Day %d, Part Two: %d\n", answer.Day, answer.PartTwo)
	}
	return nil
}
