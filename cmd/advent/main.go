// Command advent runs the puzzle solvers against their input files.
//
//	advent day 16
//	advent --inputs ./data day sixteen
//	advent inspect 9C0141080250320F1802104A08
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

const serviceName = "advent"

func main() {
	os.Exit(mainMain(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func mainMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      serviceName,
		Usage:     "Advent of Code 2021 solver",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "inputs",
				Usage:   "directory the default day input paths are relative to",
				Value:   ".",
				Sources: cli.EnvVars("ADVENT_INPUTS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (DEBUG, INFO, ... or NOOP)",
				Value:   "INFO",
				Sources: cli.EnvVars("ADVENT_LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.New(cmd.String("log-level"))
			return ctx, nil
		},
		After: func(context.Context, *cli.Command) error {
			logger.OnExit()
			return nil
		},
		Commands: []*cli.Command{
			cmdDay(),
			cmdInspect(),
		},
	}
}

// newRunLog returns a logger whose messages are tagged with a fresh run id.
func newRunLog() (logger.Logger, string) {
	runID := uuid.NewString()
	return logger.Sugar.WithServiceName(serviceName + "/" + runID), runID
}
