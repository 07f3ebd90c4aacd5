package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goclean/internal/config"
	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/ingest"
	"github.com/dbsmedya/goclean/internal/quality"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Assess a dataset without cleaning it",
	Long: `Report ingests the configured dataset and prints its quality
report: row and column counts, duplication, missingness, and per-column
statistics. The dataset is not modified and nothing is exported.

Example:
  goclean report --config goclean.yaml --input raw.csv`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	d, err := ingestDataset(cfg)
	if err != nil {
		log.Errorw("Ingestion failed", "error", err)
		return fmt.Errorf("ingestion failed: %w", err)
	}

	report := quality.Assess(d, cfg.Cleaning.Dedupe.Subset)
	fmt.Print(quality.RenderSummary(report))
	return nil
}

// ingestDataset materializes the configured source.
func ingestDataset(cfg *config.Config) (*dataset.Dataset, error) {
	switch cfg.Input.Source {
	case "mysql":
		src, err := ingest.OpenSQL(&cfg.Input.Database)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		ctx := context.Background()
		if err := src.Ping(ctx); err != nil {
			return nil, err
		}
		return src.ReadTable(ctx, cfg.Input.Table)
	default:
		return ingest.ReadCSV(cfg.Input.Path)
	}
}
