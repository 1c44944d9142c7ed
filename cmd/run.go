package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
	"github.com/isacmj7/stroke-prediction-analysis/internal/chart"
	"github.com/isacmj7/stroke-prediction-analysis/internal/export"
	"github.com/isacmj7/stroke-prediction-analysis/internal/manifest"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: clean, categorize, export tables and render charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, loadedRows, err := prepare(cfg.InputPath)
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

		rec := manifest.NewRun(cfg.InputPath)
		rec.LoadedRows = loadedRows
		rec.CleanRows = table.Len()
		rec.TotalPatients = sum.TotalPatients
		rec.StrokeCases = sum.StrokeCases
		rec.NoStrokeCases = sum.NoStrokeCases
		rec.StrokeRate = sum.StrokeRate

		w, err := export.NewWriter(cfg.TablesDir)
		if err != nil {
			return err
		}
		path, err := w.WriteTable("stroke_data.csv", table)
		if err != nil {
			return fmt.Errorf("export stage: %w", err)
		}
		rec.AddArtifact("table", path)
		for _, g := range groupings {
			path, err := w.WriteAggregation(g.TableFile, g.Column, byColumn[g.Column])
			if err != nil {
				return fmt.Errorf("export stage: %w", err)
			}
			rec.AddArtifact("table", path)
		}
		fmt.Printf("✓ Exported %d tables to %s\n", len(groupings)+1, cfg.TablesDir)

		r, err := chart.NewRenderer(cfg.ChartsDir)
		if err != nil {
			return err
		}
		path, err = r.Distribution("01_stroke_distribution.png", sum)
		if err != nil {
			return fmt.Errorf("chart stage: %w", err)
		}
		rec.AddArtifact("chart", path)
		for _, g := range groupings {
			path, err := r.RateBars(g.ChartFile, g.Title, g.XLabel, byColumn[g.Column], g.Ordering)
			if err != nil {
				return fmt.Errorf("chart stage: %w", err)
			}
			rec.AddArtifact("chart", path)
		}
		path, err = r.Heatmap("11_correlation_heatmap.png", analysis.Correlate(table))
		if err != nil {
			return fmt.Errorf("chart stage: %w", err)
		}
		rec.AddArtifact("chart", path)
		fmt.Printf("✓ Rendered %d charts to %s\n", len(groupings)+2, cfg.ChartsDir)

		if err := rec.Save(cfg.TablesDir); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}
		fmt.Printf("✓ Run %s: %d patients, %d stroke cases (%.2f%%)\n",
			rec.ID, sum.TotalPatients, sum.StrokeCases, sum.StrokeRate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
