package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isacmj7/stroke-prediction-analysis/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the annotated table and per-column summaries as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _, err := prepare(cfg.InputPath)
		if err != nil {
			return err
		}
		byColumn, err := aggregateAll(table)
		if err != nil {
			return err
		}

		w, err := export.NewWriter(cfg.TablesDir)
		if err != nil {
			return err
		}
		if _, err := w.WriteTable("stroke_data.csv", table); err != nil {
			return fmt.Errorf("export stage: %w", err)
		}
		for _, g := range groupings {
			if _, err := w.WriteAggregation(g.TableFile, g.Column, byColumn[g.Column]); err != nil {
				return fmt.Errorf("export stage: %w", err)
			}
		}
		fmt.Printf("✓ Exported %d tables to %s\n", len(groupings)+1, cfg.TablesDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
