package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"cipherbench/internal/benchmark"
	"cipherbench/internal/config"
	"cipherbench/internal/db"
)

var (
	historyLimit     int
	historyThreshold float64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved runs and compare the two most recent",
	Long: `Lists benchmark runs saved in the history database and, when at
least two exist, prints the throughput change per (file, algorithm,
operation) row between the two most recent runs. Rows slowing down by more
than the threshold are flagged as regressions.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum number of runs to list")
	historyCmd.Flags().Float64Var(&historyThreshold, "threshold", 10.0, "percentage slowdown flagged as a regression")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	store, err := db.NewSQLiteStore(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadLatest(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No saved runs. Run 'cipherbench run' first.")
		return nil
	}

	fmt.Fprintln(out, "Saved runs:")
	for _, r := range runs {
		fmt.Fprintf(out, "  #%d  %s  (%d rows)\n", r.ID, r.Timestamp.Format(time.RFC3339), len(r.Results))
	}

	if len(runs) < 2 {
		return nil
	}

	curr, prev := runs[0], runs[1]
	comparisons := benchmark.Compare(prev, curr)
	if len(comparisons) == 0 {
		fmt.Fprintln(out, "\nThe two most recent runs share no comparable rows.")
		return nil
	}

	fmt.Fprintf(out, "\nRun #%d vs run #%d:\n", curr.ID, prev.ID)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "file\talgorithm\top\tprev MiB/s\tcurr MiB/s\tchange")
	for _, c := range comparisons {
		flag := ""
		if c.ThroughputDiff < -historyThreshold {
			flag = "  REGRESSION"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\t%+.2f%%%s\n",
			c.File, c.Algorithm, c.Operation, c.Prev.ThroughputMiBps, c.Curr.ThroughputMiBps, c.ThroughputDiff, flag)
	}
	return tw.Flush()
}
