package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print table-wide and risk-factor stroke statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _, err := prepare(cfg.InputPath)
		if err != nil {
			return err
		}
		sum, err := analysis.Summarize(table)
		if err != nil {
			return err
		}
		fmt.Println("\n[STROKE STATISTICS]")
		fmt.Printf("total_patients:  %d\n", sum.TotalPatients)
		fmt.Printf("stroke_cases:    %d\n", sum.StrokeCases)
		fmt.Printf("no_stroke_cases: %d\n", sum.NoStrokeCases)
		fmt.Printf("stroke_rate:     %.2f%%\n", sum.StrokeRate)

		risks, err := analysis.RiskFactorSummary(table)
		if err != nil {
			return err
		}
		fmt.Println("\n[RISK FACTORS]")
		for _, col := range analysis.RiskFactorColumns {
			fmt.Printf("%s:\n", col)
			for _, row := range risks[col] {
				fmt.Printf("  %-16s stroke %4d / %5d  rate %6.2f%%\n",
					row.Value, row.StrokeCount, row.TotalCount, row.StrokeRate)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
