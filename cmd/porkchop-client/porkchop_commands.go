package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxygene76/porkchop-client/pkg/plot"
	"github.com/oxygene76/porkchop-client/pkg/porkchop"
)

var (
	pcInput      string
	pcOutput     string
	pcMetric     string
	pcClipFactor float64
)

var porkchopCmd = &cobra.Command{
	Use:   "porkchop",
	Short: "Reduce a transfer sweep CSV into a porkchop contour grid",
	Long: `Reduce the CSV written by the upstream porkchop solver into a
dense transfer-cost grid: feasible solutions only, duplicate
(depart, arrive) pairs folded to their minimum, outliers clipped against
high-clip-factor * minimum, and the global minimum-cost transfer marked.
The result is written as a heatmap chart spec.

Example:
  porkchop-client porkchop --input artifacts/pork.csv --metric dv_total_km_s`,
	RunE: runPorkchop,
}

func init() {
	porkchopCmd.Flags().StringVar(&pcInput, "input", "", "CSV produced by the porkchop solver (required)")
	porkchopCmd.Flags().StringVar(&pcOutput, "output", "", "Path for the chart spec (default derived from input name)")
	porkchopCmd.Flags().StringVar(&pcMetric, "metric", "", "Metric column to contour (default from config)")
	porkchopCmd.Flags().Float64Var(&pcClipFactor, "high-clip-factor", 0, "Clip values above factor * min to highlight valleys (default from config)")
	_ = porkchopCmd.MarkFlagRequired("input")
}

func runPorkchop(cmd *cobra.Command, args []string) error {
	metricName := pcMetric
	if metricName == "" {
		metricName = cfg.Plot.Metric
	}
	metric, err := porkchop.MetricByName(metricName)
	if err != nil {
		return err
	}

	clipFactor := pcClipFactor
	if clipFactor == 0 {
		clipFactor = cfg.Plot.HighClipFactor
	}
	if clipFactor < 1.0 {
		return fmt.Errorf("--high-clip-factor must be >= 1.0")
	}

	rows, err := porkchop.LoadRowsFile(pcInput)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d transfer rows from %s", len(rows), pcInput)

	result, err := porkchop.Reduce(rows, metric, clipFactor)
	if err != nil {
		return err
	}

	log.Printf("Reduced to %dx%d grid, %s range [%.3f, %.3f], minimum %.3f departing %s arriving %s",
		len(result.Grid.Arrives), len(result.Grid.Departs),
		metricName, result.Clip.Low, result.Clip.High,
		result.Minimum.Cost,
		result.Minimum.Depart.Format("2006-01-02"),
		result.Minimum.Arrive.Format("2006-01-02"))

	spec, err := plot.PorkchopSpec(result, metricName)
	if err != nil {
		return fmt.Errorf("failed to build chart spec: %w", err)
	}

	output := pcOutput
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(pcInput), filepath.Ext(pcInput))
		output = filepath.Join(cfg.Plot.OutputDir, base+"_porkchop.vl.json")
	}
	if err := writeSpec(output, spec); err != nil {
		return err
	}

	fmt.Printf("Saved porkchop chart spec to %s\n", output)
	return nil
}
