package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(file, alg string, op Operation, throughput, avgTime float64) Result {
	return Result{
		File:            file,
		Algorithm:       alg,
		Operation:       op,
		ThroughputMiBps: throughput,
		AvgTimeSeconds:  avgTime,
		InputBytes:      1024,
	}
}

func TestCompare(t *testing.T) {
	prev := &Run{Results: []Result{
		row("1KB", "AES-128", OpEncrypt, 100, 0.010),
		row("1KB", "AES-128", OpDecrypt, 200, 0.005),
		row("1KB", "DES", OpEncrypt, 50, 0.020),
	}}
	curr := &Run{Results: []Result{
		row("1KB", "AES-128", OpEncrypt, 110, 0.009),
		row("1KB", "AES-128", OpDecrypt, 150, 0.008),
		// DES row only in curr; must be skipped.
		row("1KB", "AES-256", OpEncrypt, 90, 0.011),
	}}

	comparisons := Compare(prev, curr)
	require.Len(t, comparisons, 2)

	assert.Equal(t, "AES-128", comparisons[0].Algorithm)
	assert.Equal(t, OpEncrypt, comparisons[0].Operation)
	assert.InDelta(t, 10.0, comparisons[0].ThroughputDiff, 0.001)
	assert.InDelta(t, -10.0, comparisons[0].AvgTimeDiff, 0.001)

	assert.Equal(t, OpDecrypt, comparisons[1].Operation)
	assert.InDelta(t, -25.0, comparisons[1].ThroughputDiff, 0.001)
	assert.InDelta(t, 60.0, comparisons[1].AvgTimeDiff, 0.001)
}

func TestCompareZeroBaseline(t *testing.T) {
	prev := &Run{Results: []Result{row("1KB", "DES", OpEncrypt, 0, 0)}}
	curr := &Run{Results: []Result{row("1KB", "DES", OpEncrypt, 42, 0.001)}}

	comparisons := Compare(prev, curr)
	require.Len(t, comparisons, 1)
	assert.Zero(t, comparisons[0].ThroughputDiff)
	assert.Zero(t, comparisons[0].AvgTimeDiff)
}

func TestComparisonString(t *testing.T) {
	c := Comparison{File: "1MB", Algorithm: "AES-256", Operation: OpDecrypt, ThroughputDiff: -12.5}
	assert.Equal(t, "1MB/AES-256/decrypt: -12.50% MiB/s", c.String())
}
