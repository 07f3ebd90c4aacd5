// Package pipeline coordinates the cleaning run: ingest, clean,
// validate, assess, and export, in a fixed sequential order.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dbsmedya/goclean/internal/cleaner"
	"github.com/dbsmedya/goclean/internal/config"
	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/export"
	"github.com/dbsmedya/goclean/internal/ingest"
	"github.com/dbsmedya/goclean/internal/logger"
	"github.com/dbsmedya/goclean/internal/quality"
	"github.com/dbsmedya/goclean/internal/validate"
)

// Result contains statistics and artifacts of a pipeline run.
type Result struct {
	StartedAt         time.Time
	CompletedAt       time.Time
	Duration          time.Duration
	RowsIn            int
	RowsOut           int
	ColumnsIn         int
	ColumnsOut        int
	DuplicatesRemoved int
	OutliersRemoved   int
	Report            *quality.Report
	OutputPath        string
	ReportPath        string
}

// Pipeline runs the cleaning workflow described by its configuration.
type Pipeline struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a pipeline. A nil logger falls back to the default.
func New(cfg *config.Config, log *logger.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Pipeline{cfg: cfg, log: log}, nil
}

// Run executes the full workflow: ingest the raw dataset, clean it,
// optionally validate it, assess its quality, and export both the data
// and the report.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	result := &Result{StartedAt: time.Now()}

	raw, err := p.ingestData(ctx)
	if err != nil {
		return nil, err
	}
	result.RowsIn = raw.NumRows()
	result.ColumnsIn = raw.NumColumns()
	p.log.Infow("Ingested dataset", "rows", result.RowsIn, "columns", result.ColumnsIn)

	cleaned, err := p.Clean(raw, result)
	if err != nil {
		return nil, err
	}

	if p.cfg.Validation.Enabled {
		if err := p.runValidation(cleaned); err != nil {
			return nil, err
		}
		p.log.Info("Validation passed")
	}

	result.Report = quality.Assess(cleaned, p.cfg.Cleaning.Dedupe.Subset)

	if err := p.exportData(cleaned, result); err != nil {
		return nil, err
	}

	result.RowsOut = cleaned.NumRows()
	result.ColumnsOut = cleaned.NumColumns()
	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(result.StartedAt)

	p.log.Infow("Pipeline completed",
		"rows_in", result.RowsIn,
		"rows_out", result.RowsOut,
		"rows_removed", result.RowsIn-result.RowsOut,
		"duration", result.Duration,
	)
	return result, nil
}

// Clean applies the configured cleaning steps to a dataset, recording
// removal counts into result (which may be nil).
func (p *Pipeline) Clean(d *dataset.Dataset, result *Result) (*dataset.Dataset, error) {
	if result == nil {
		result = &Result{}
	}
	cfg := p.cfg.Cleaning
	cleaned := d
	var err error

	if cfg.StandardizeColumns {
		p.log.WithStep("standardize_columns").Debug("Standardizing column names")
		cleaned, err = cleaner.NormalizeColumnNames(cleaned)
		if err != nil {
			return nil, fmt.Errorf("column name standardization failed: %w", err)
		}
	}

	if cfg.Dedupe.Enabled {
		keep := cleaner.KeepPolicy(cfg.Dedupe.Keep)
		if keep == "" {
			keep = cleaner.KeepFirst
		}
		var removed int
		cleaned, removed, err = cleaner.RemoveDuplicates(cleaned, cfg.Dedupe.Subset, keep)
		if err != nil {
			return nil, fmt.Errorf("duplicate removal failed: %w", err)
		}
		result.DuplicatesRemoved = removed
		if removed > 0 {
			p.log.Infow("Removed duplicate rows", "count", removed)
		} else {
			p.log.Info("No duplicate rows found")
		}
	}

	opts := cleaner.MissingOptions{
		Strategy:  cleaner.MissingStrategy(cfg.Missing.Strategy),
		Threshold: cfg.Missing.Threshold,
	}
	if opts.Strategy == "" {
		opts.Strategy = cleaner.StrategyAuto
	}
	if cfg.Missing.FillValue != nil {
		v := dataset.Text(*cfg.Missing.FillValue)
		opts.FillValue = &v
	}
	cleaned, err = cleaner.ResolveMissing(cleaned, opts)
	if err != nil {
		return nil, fmt.Errorf("missing value resolution failed: %w", err)
	}

	cleaned = cleaner.NormalizeText(cleaned, columnsOrNil(cfg.Text.Columns))

	if len(cfg.Dates.Columns) > 0 {
		cleaned = cleaner.ParseDates(cleaned, cfg.Dates.Columns, cfg.Dates.Formats, p.log)
	}

	if cfg.Outliers.Enabled {
		threshold := cfg.Outliers.Threshold
		if threshold == 0 {
			threshold = cleaner.DefaultIQRThreshold
		}
		method := cleaner.OutlierMethod(cfg.Outliers.Method)
		if method == "" {
			method = cleaner.MethodIQR
		}
		var removed int
		cleaned, removed, err = cleaner.RemoveOutliers(cleaned, columnsOrNil(cfg.Outliers.Columns), method, threshold)
		if err != nil {
			return nil, fmt.Errorf("outlier removal failed: %w", err)
		}
		result.OutliersRemoved = removed
		if removed > 0 {
			p.log.Infow("Removed outlier rows", "count", removed)
		}
	}

	return cleaned, nil
}

func (p *Pipeline) ingestData(ctx context.Context) (*dataset.Dataset, error) {
	switch p.cfg.Input.Source {
	case "mysql":
		src, err := ingest.OpenSQL(&p.cfg.Input.Database)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		if err := src.Ping(ctx); err != nil {
			return nil, err
		}
		return src.ReadTable(ctx, p.cfg.Input.Table)
	default:
		return ingest.ReadCSV(p.cfg.Input.Path)
	}
}

func (p *Pipeline) runValidation(d *dataset.Dataset) error {
	v := p.cfg.Validation

	if len(v.Schema.Expected) > 0 {
		if err := validate.Schema(d, v.Schema.Expected, v.Schema.Strict); err != nil {
			return err
		}
	}
	if len(v.Types) > 0 {
		requirements := make(map[string]dataset.ColumnType, len(v.Types))
		for col, typ := range v.Types {
			requirements[col] = parseColumnType(typ)
		}
		if err := validate.Types(d, requirements); err != nil {
			return err
		}
	}
	if len(v.Ranges) > 0 {
		requirements := make(map[string]validate.Range, len(v.Ranges))
		for col, r := range v.Ranges {
			requirements[col] = validate.Range{Min: r.Min, Max: r.Max}
		}
		if err := validate.Ranges(d, requirements); err != nil {
			return err
		}
	}
	if len(v.Completeness.Columns) > 0 {
		threshold := v.Completeness.Threshold
		if threshold == 0 {
			threshold = validate.DefaultCompletenessThreshold
		}
		if err := validate.Completeness(d, v.Completeness.Columns, threshold); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) exportData(d *dataset.Dataset, result *Result) error {
	outputPath := filepath.Join(p.cfg.Output.Dir, p.cfg.Output.Filename)

	switch p.cfg.Output.Format {
	case "json":
		outputPath = withExtension(outputPath, ".json")
		if err := export.WriteJSON(d, outputPath); err != nil {
			return err
		}
	default:
		if err := export.WriteCSV(d, outputPath); err != nil {
			return err
		}
	}
	result.OutputPath = outputPath
	p.log.Infow("Exported cleaned data", "path", outputPath)

	reportPath := filepath.Join(p.cfg.Output.Dir, p.cfg.Output.ReportFilename)
	if err := export.WriteReport(result.Report, reportPath); err != nil {
		return err
	}
	result.ReportPath = reportPath
	p.log.Infow("Exported quality report", "path", reportPath)

	return nil
}

func parseColumnType(s string) dataset.ColumnType {
	switch s {
	case "numeric":
		return dataset.TypeNumeric
	case "date":
		return dataset.TypeDate
	default:
		return dataset.TypeText
	}
}

func withExtension(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + ext
}

// columnsOrNil maps an empty configured list to nil so the cleaning
// steps apply their own defaults.
func columnsOrNil(cols []string) []string {
	if len(cols) == 0 {
		return nil
	}
	return cols
}
