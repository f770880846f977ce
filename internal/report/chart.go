package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"cipherbench/internal/benchmark"
)

// WriteCharts renders the encrypt and decrypt throughput bar charts into
// dir, grouped by payload size with one bar per algorithm.
func WriteCharts(dir string, run *benchmark.Run) error {
	if err := writeChart(filepath.Join(dir, EncryptChartName), run, benchmark.OpEncrypt, "Throughput Encrypt (MiB/s)"); err != nil {
		return err
	}
	return writeChart(filepath.Join(dir, DecryptChartName), run, benchmark.OpDecrypt, "Throughput Decrypt (MiB/s)")
}

func writeChart(path string, run *benchmark.Run, op benchmark.Operation, title string) error {
	fs := files(run)
	algs := algorithms(run)

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "MiB/s"
	p.Legend.Top = true

	width := vg.Points(20)
	for i, alg := range algs {
		values := make(plotter.Values, len(fs))
		for j, file := range fs {
			if v, ok := throughput(run, file, alg, op); ok {
				values[j] = v
			}
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("failed to build %s bars: %w", alg, err)
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		// Center the group of bars on each tick.
		bars.Offset = width * (vg.Length(i) - vg.Length(len(algs)-1)/2)

		p.Add(bars)
		p.Legend.Add(alg, bars)
	}
	p.NominalX(fs...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
