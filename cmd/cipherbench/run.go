package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cipherbench/internal/benchmark"
	"cipherbench/internal/config"
	"cipherbench/internal/db"
	"cipherbench/internal/report"
)

var runNoHistory bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark matrix and write result artifacts",
	Long: `Benchmarks every (payload size, algorithm) combination sequentially,
verifying each encrypt/decrypt round trip, then writes benchmark_results.csv,
benchmark_summary.txt and the two throughput charts to the results directory.
The completed run is also saved to the history database for later comparison
with 'cipherbench history'.`,
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "skip saving the run to the history database")
}

func runSuite(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	sizes := make([]benchmark.SizeSpec, len(cfg.Sizes))
	for i, s := range cfg.Sizes {
		sizes[i] = benchmark.SizeSpec{Label: s.Label, Bytes: s.Bytes}
	}

	out := cmd.OutOrStdout()
	suite := benchmark.NewSuite(cfg.DataDir, sizes, cfg.Runs, out)
	run, err := suite.RunAll()
	if err != nil {
		return fmt.Errorf("benchmark suite failed: %w", err)
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0755); err != nil {
		return fmt.Errorf("failed to create results directory %s: %w", cfg.ResultsDir, err)
	}

	csvPath := filepath.Join(cfg.ResultsDir, report.CSVName)
	if err := report.WriteCSV(csvPath, run); err != nil {
		return err
	}
	summaryPath := filepath.Join(cfg.ResultsDir, report.SummaryName)
	if err := report.WriteSummary(summaryPath, run); err != nil {
		return err
	}
	if err := report.WriteCharts(cfg.ResultsDir, run); err != nil {
		return err
	}

	if !runNoHistory {
		store, err := db.NewSQLiteStore(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
		if _, err := store.SaveRun(run); err != nil {
			return fmt.Errorf("failed to save run to history: %w", err)
		}
	}

	fmt.Fprintln(out)
	report.RenderArtifactList(out, []string{
		csvPath,
		summaryPath,
		filepath.Join(cfg.ResultsDir, report.EncryptChartName),
		filepath.Join(cfg.ResultsDir, report.DecryptChartName),
	})
	fmt.Fprintln(out)
	report.RenderConsole(out, run)
	return nil
}
