// Package report renders a benchmark run into its artifacts: a CSV table, a
// pivoted text summary, a styled console table and PNG bar charts.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"cipherbench/internal/benchmark"
)

// Artifact file names inside the results directory.
const (
	CSVName          = "benchmark_results.csv"
	SummaryName      = "benchmark_summary.txt"
	EncryptChartName = "throughput_encrypt.png"
	DecryptChartName = "throughput_decrypt.png"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// WriteCSV writes one row per result in run order.
func WriteCSV(path string, run *benchmark.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"file", "algorithm", "operation", "avg_time_s", "throughput_mib_s", "input_bytes"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range run.Results {
		record := []string{
			r.File,
			r.Algorithm,
			string(r.Operation),
			strconv.FormatFloat(r.AvgTimeSeconds, 'g', -1, 64),
			strconv.FormatFloat(r.ThroughputMiBps, 'g', -1, 64),
			strconv.Itoa(r.InputBytes),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// Summary returns the pivoted throughput tables for both operations as
// plain text.
func Summary(run *benchmark.Run) string {
	var sb strings.Builder
	sb.WriteString("Throughput (MiB/s) - Encrypt\n")
	sb.WriteString(pivotTable(run, benchmark.OpEncrypt))
	sb.WriteString("\nThroughput (MiB/s) - Decrypt\n")
	sb.WriteString(pivotTable(run, benchmark.OpDecrypt))
	return sb.String()
}

// WriteSummary writes Summary to path.
func WriteSummary(path string, run *benchmark.Run) error {
	if err := os.WriteFile(path, []byte(Summary(run)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// RenderConsole writes the styled pivot tables to w.
func RenderConsole(w io.Writer, run *benchmark.Run) {
	fmt.Fprintln(w, titleStyle.Render("Throughput (MiB/s) - Encrypt"))
	fmt.Fprint(w, pivotTable(run, benchmark.OpEncrypt))
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Throughput (MiB/s) - Decrypt"))
	fmt.Fprint(w, pivotTable(run, benchmark.OpDecrypt))
}

// RenderArtifactList writes the saved artifact paths to w.
func RenderArtifactList(w io.Writer, paths []string) {
	fmt.Fprintln(w, "Results saved to:")
	for _, p := range paths {
		fmt.Fprintf(w, "- %s\n", pathStyle.Render(p))
	}
}

// pivotTable renders files as rows and algorithms as columns for one
// operation, values rounded to two decimals.
func pivotTable(run *benchmark.Run, op benchmark.Operation) string {
	fs := files(run)
	algs := algorithms(run)

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "file")
	for _, alg := range algs {
		fmt.Fprintf(tw, "\t%s", alg)
	}
	fmt.Fprintln(tw)

	for _, file := range fs {
		fmt.Fprintf(tw, "%s", file)
		for _, alg := range algs {
			if v, ok := throughput(run, file, alg, op); ok {
				fmt.Fprintf(tw, "\t%.2f", v)
			} else {
				fmt.Fprintf(tw, "\t-")
			}
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
	return sb.String()
}

// files returns the payload labels in first-seen order.
func files(run *benchmark.Run) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range run.Results {
		if !seen[r.File] {
			seen[r.File] = true
			out = append(out, r.File)
		}
	}
	return out
}

// algorithms returns the algorithm names in first-seen order.
func algorithms(run *benchmark.Run) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range run.Results {
		if !seen[r.Algorithm] {
			seen[r.Algorithm] = true
			out = append(out, r.Algorithm)
		}
	}
	return out
}

func throughput(run *benchmark.Run, file, algorithm string, op benchmark.Operation) (float64, bool) {
	for _, r := range run.Results {
		if r.File == file && r.Algorithm == algorithm && r.Operation == op {
			return r.ThroughputMiBps, true
		}
	}
	return 0, false
}
