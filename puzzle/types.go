package puzzle

import (
	"errors"
	"time"
)

var (
	ErrUnknownDay   = errors.New("puzzle: unknown day")
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	ErrInvalidDay   = errors.New("puzzle: day number must be between 1 and 25")
)

// Solver computes one part of a day's answer from the raw input text.
type Solver func(input string) (uint64, error)

// Day describes the solvers for one puzzle.
type Day struct {
	Number int

	// Names are additional lookup keys. The number and its english name are
	// always registered.
	Names []string

	// InputPath is the input file location relative to the runner's input
	// directory.
	InputPath string

	PartOne Solver
	PartTwo Solver
}

// Answer is the result of running both parts of a day.
type Answer struct {
	Day     int
	PartOne uint64
	PartTwo uint64
	Elapsed time.Duration
}
