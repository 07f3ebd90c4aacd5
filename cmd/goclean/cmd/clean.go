package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goclean/internal/config"
	"github.com/dbsmedya/goclean/internal/logger"
	"github.com/dbsmedya/goclean/internal/pipeline"
	"github.com/dbsmedya/goclean/internal/quality"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the data cleaning pipeline",
	Long: `Clean ingests the configured dataset, applies the cleaning steps,
validates the result when validation is configured, and exports the
cleaned data together with a quality report.

Steps applied (per configuration):
  - Column name standardization
  - Duplicate removal
  - Missing value resolution
  - Text whitespace normalization
  - Date parsing
  - Outlier removal

Example:
  goclean clean --config goclean.yaml --input raw.csv --remove-outliers`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	result, err := p.Run(context.Background())
	if err != nil {
		log.Errorw("Pipeline failed", "error", err)
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Println()
	fmt.Print(quality.RenderSummary(result.Report))
	fmt.Printf("\nCleaned data: %s\nQuality report: %s\n", result.OutputPath, result.ReportPath)
	fmt.Printf("Rows: %d -> %d (%d duplicates, %d outliers removed)\n",
		result.RowsIn, result.RowsOut, result.DuplicatesRemoved, result.OutliersRemoved)
	return nil
}

// loadConfigAndLogger loads the configuration file, applies CLI
// overrides, validates the result, and builds the logger.
func loadConfigAndLogger() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.Input,
		overrides.OutputDir, overrides.Format, overrides.Strategy, overrides.RemoveOutliers)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}
