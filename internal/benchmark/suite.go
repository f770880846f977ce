package benchmark

import (
	"fmt"
	"io"
	"time"

	"cipherbench/internal/cbc"
)

// Suite drives the full size × algorithm matrix. Execution is strictly
// sequential on one goroutine: concurrent cipher runs would contend for CPU
// and cache and corrupt the wall-clock figures.
type Suite struct {
	DataDir    string
	Sizes      []SizeSpec
	Algorithms []cbc.Algorithm
	Runner     *Runner
	Progress   io.Writer
}

// NewSuite builds a suite over the fixed algorithm set. Progress lines go to
// progress; pass nil to discard them.
func NewSuite(dataDir string, sizes []SizeSpec, reps int, progress io.Writer) *Suite {
	if progress == nil {
		progress = io.Discard
	}
	return &Suite{
		DataDir:    dataDir,
		Sizes:      sizes,
		Algorithms: cbc.Algorithms,
		Runner:     NewRunner(reps),
		Progress:   progress,
	}
}

// RunAll ensures fixtures exist, then benchmarks every (size, algorithm)
// pair in order, appending an encrypt and a decrypt row per pair. The first
// error aborts the whole run; no partial rows are emitted for the failed
// combination.
func (s *Suite) RunAll() (*Run, error) {
	if err := EnsureFixtures(s.DataDir, s.Sizes); err != nil {
		return nil, err
	}

	run := &Run{Timestamp: time.Now()}
	for _, size := range s.Sizes {
		fmt.Fprintf(s.Progress, "Benchmarking %s...\n", size.Label)
		payload, err := LoadFixture(s.DataDir, size)
		if err != nil {
			return nil, err
		}

		for _, alg := range s.Algorithms {
			fmt.Fprintf(s.Progress, "  - %s (%d runs)\n", alg.Name, s.Runner.Reps)
			enc, dec, err := s.Runner.Run(alg, size.Label, payload)
			if err != nil {
				return nil, err
			}
			run.Results = append(run.Results, enc, dec)
		}
	}
	return run, nil
}
