package puzzle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Runner reads a day's input file and runs both of its parts.
type Runner struct {
	log      logger.Logger
	InputDir string
}

// NewRunner returns a runner resolving default input paths against inputDir.
func NewRunner(log logger.Logger, inputDir string) *Runner {
	return &Runner{log: log, InputDir: inputDir}
}

// Run solves both parts of day. inputPath, if not empty, replaces the day's
// default input location.
func (r *Runner) Run(ctx context.Context, day Day, inputPath string) (Answer, error) {
	path := inputPath
	if path == "" {
		path = filepath.Join(r.InputDir, day.InputPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: %w", day.Number, err)
	}
	input := string(data)

	answer := Answer{Day: day.Number}
	parts := []struct {
		name  string
		solve Solver
		dst   *uint64
	}{
		{"one", day.PartOne, &answer.PartOne},
		{"two", day.PartTwo, &answer.PartTwo},
	}

	start := time.Now()
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return Answer{}, err
		}
		partStart := time.Now()
		v, err := part.solve(input)
		if err != nil {
			return Answer{}, fmt.Errorf("day %d part %s: %w", day.Number, part.name, err)
		}
		*part.dst = v
		r.log.Debugf("day %d part %s: %d in %v", day.Number, part.name, v, time.Since(partStart))
	}
	answer.Elapsed = time.Since(start)
	r.log.Infof("day %d solved from %s in %v", day.Number, path, answer.Elapsed)
	return answer, nil
}
