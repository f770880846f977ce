package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherbench/internal/db"
	"cipherbench/internal/report"
)

// setupRunEnv points the suite at temp directories with a reduced matrix so
// the command completes quickly.
func setupRunEnv(t *testing.T) (dataDir, resultsDir, historyDB string) {
	t.Helper()
	viper.Reset()

	root := t.TempDir()
	dataDir = filepath.Join(root, "data")
	resultsDir = filepath.Join(root, "results")
	historyDB = filepath.Join(root, "results", "history.db")

	t.Setenv("CIPHERBENCH_DATA_DIR", dataDir)
	t.Setenv("CIPHERBENCH_RESULTS_DIR", resultsDir)
	t.Setenv("CIPHERBENCH_HISTORY_DB", historyDB)
	t.Setenv("CIPHERBENCH_RUNS", "2")
	t.Setenv("CIPHERBENCH_SIZES", "1KB")
	return dataDir, resultsDir, historyDB
}

func TestRunSuiteWritesArtifacts(t *testing.T) {
	dataDir, resultsDir, historyDB := setupRunEnv(t)

	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	require.NoError(t, runSuite(runCmd, nil))

	// Fixture created lazily.
	fixture, err := os.ReadFile(filepath.Join(dataDir, "1KB.bin"))
	require.NoError(t, err)
	assert.Len(t, fixture, 1024)

	// All four artifacts present.
	for _, name := range []string{
		report.CSVName,
		report.SummaryName,
		report.EncryptChartName,
		report.DecryptChartName,
	} {
		_, err := os.Stat(filepath.Join(resultsDir, name))
		assert.NoError(t, err, name)
	}

	out := buf.String()
	assert.Contains(t, out, "Benchmarking 1KB...")
	assert.Contains(t, out, "AES-128 (2 runs)")
	assert.Contains(t, out, "Results saved to:")
	assert.Contains(t, out, "Throughput (MiB/s) - Encrypt")

	// The run landed in the history database.
	store, err := db.NewSQLiteStore(historyDB)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.LoadLatest(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	// 1 size x 3 algorithms x 2 operations.
	assert.Len(t, runs[0].Results, 6)
}

func TestRunSuiteNoHistory(t *testing.T) {
	_, _, historyDB := setupRunEnv(t)

	runNoHistory = true
	defer func() { runNoHistory = false }()

	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	require.NoError(t, runSuite(runCmd, nil))

	_, err := os.Stat(historyDB)
	assert.True(t, os.IsNotExist(err))
}

func TestRunSuiteReusesFixture(t *testing.T) {
	dataDir, _, _ := setupRunEnv(t)

	// Pre-seed the fixture; the run must use it unchanged.
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	seed := bytes.Repeat([]byte{0x5A}, 1024)
	fixturePath := filepath.Join(dataDir, "1KB.bin")
	require.NoError(t, os.WriteFile(fixturePath, seed, 0644))

	runNoHistory = true
	defer func() { runNoHistory = false }()

	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	require.NoError(t, runSuite(runCmd, nil))

	after, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	assert.Equal(t, seed, after)
}
