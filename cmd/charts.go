package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
	"github.com/isacmj7/stroke-prediction-analysis/internal/chart"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the fixed chart set as PNG images",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _, err := prepare(cfg.InputPath)
		if err != nil {
			return err
		}
		sum, err := analysis.Summarize(table)
		if err != nil {
			return err
		}
		byColumn, err := aggregateAll(table)
		if err != nil {
			return err
		}

		r, err := chart.NewRenderer(cfg.ChartsDir)
		if err != nil {
			return err
		}
		if _, err := r.Distribution("01_stroke_distribution.png", sum); err != nil {
			return fmt.Errorf("chart stage: %w", err)
		}
		for _, g := range groupings {
			if _, err := r.RateBars(g.ChartFile, g.Title, g.XLabel, byColumn[g.Column], g.Ordering); err != nil {
				return fmt.Errorf("chart stage: %w", err)
			}
		}
		if _, err := r.Heatmap("11_correlation_heatmap.png", analysis.Correlate(table)); err != nil {
			return fmt.Errorf("chart stage: %w", err)
		}
		fmt.Printf("✓ Rendered %d charts to %s\n", len(groupings)+2, cfg.ChartsDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}
