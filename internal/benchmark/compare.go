package benchmark

import "fmt"

// Comparison reports how one result row changed between two runs.
type Comparison struct {
	File           string
	Algorithm      string
	Operation      Operation
	ThroughputDiff float64 // percentage change, negative means slower
	AvgTimeDiff    float64 // percentage change, positive means slower
	Prev           Result
	Curr           Result
}

type rowKey struct {
	file      string
	algorithm string
	operation Operation
}

// Compare matches rows between two runs by (file, algorithm, operation).
// Rows present in only one of the runs are skipped.
func Compare(prev, curr *Run) []Comparison {
	prevMap := make(map[rowKey]Result, len(prev.Results))
	for _, r := range prev.Results {
		prevMap[rowKey{r.File, r.Algorithm, r.Operation}] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Results {
		p, ok := prevMap[rowKey{c.File, c.Algorithm, c.Operation}]
		if !ok {
			continue
		}

		comp := Comparison{
			File:      c.File,
			Algorithm: c.Algorithm,
			Operation: c.Operation,
			Prev:      p,
			Curr:      c,
		}
		if p.ThroughputMiBps > 0 {
			comp.ThroughputDiff = (c.ThroughputMiBps - p.ThroughputMiBps) / p.ThroughputMiBps * 100
		}
		if p.AvgTimeSeconds > 0 {
			comp.AvgTimeDiff = (c.AvgTimeSeconds - p.AvgTimeSeconds) / p.AvgTimeSeconds * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s/%s/%s: %+.2f%% MiB/s", c.File, c.Algorithm, c.Operation, c.ThroughputDiff)
}
