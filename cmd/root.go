package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/isacmj7/stroke-prediction-analysis/internal/config"
)

var (
	// Global flags (wired to config on load)
	cfgFile       string
	flagInput     string
	flagTablesDir string
	flagChartsDir string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "strokecli",
	Short: "Stroke dataset analysis: clean, categorize, aggregate, export",
	Long: `strokecli loads the healthcare stroke dataset, repairs missing BMI values,
derives age/BMI/glucose categories, computes group-wise stroke-rate statistics,
and exports summary tables (CSV) and charts (PNG).`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.stroke-analysis/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "input dataset path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTablesDir, "tables-dir", "", "output directory for tabular exports (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagChartsDir, "charts-dir", "", "output directory for charts (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so path flags still work
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{
			InputPath: cfgpkg.DefaultInputPath,
			TablesDir: cfgpkg.DefaultTablesDir,
			ChartsDir: cfgpkg.DefaultChartsDir,
		}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("input") && flagInput != "" {
		cfg.InputPath = flagInput
	}
	if f.Changed("tables-dir") && flagTablesDir != "" {
		cfg.TablesDir = flagTablesDir
	}
	if f.Changed("charts-dir") && flagChartsDir != "" {
		cfg.ChartsDir = flagChartsDir
	}
}
