package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goclean/internal/export"
	"github.com/dbsmedya/goclean/internal/sample"
)

var (
	generateRows  int
	generateSeed  int64
	generateClean bool
	generateOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sample messy data",
	Long: `Generate writes a sample customer dataset for demonstrating the
pipeline. By default the data carries realistic defects: duplicate rows,
missing values, whitespace padding, inconsistent casing, mixed date
formats, outliers, and messy column labels.

Generation is deterministic for a given seed.

Example:
  goclean generate --rows 1000 --out sample_messy_data.csv`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateRows, "rows", 1000,
		"Number of base rows to generate")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42,
		"Random seed for reproducible output")
	generateCmd.Flags().BoolVar(&generateClean, "clean", false,
		"Generate defect-free data")
	generateCmd.Flags().StringVar(&generateOut, "out", "sample_messy_data.csv",
		"Output CSV path")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d := sample.Generate(generateRows, generateSeed, !generateClean)

	if err := export.WriteCSV(d, generateOut); err != nil {
		return fmt.Errorf("failed to write sample data: %w", err)
	}

	fmt.Printf("Sample data generated: %s (%d rows, %d columns)\n",
		generateOut, d.NumRows(), d.NumColumns())
	return nil
}
