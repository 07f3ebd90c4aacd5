package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test input defaults
	if cfg.Input.Source != "csv" {
		t.Errorf("expected input source 'csv', got %s", cfg.Input.Source)
	}
	if cfg.Input.Database.Port != 3306 {
		t.Errorf("expected database port 3306, got %d", cfg.Input.Database.Port)
	}
	if cfg.Input.Database.TLS != "preferred" {
		t.Errorf("expected database TLS 'preferred', got %s", cfg.Input.Database.TLS)
	}
	if cfg.Input.Database.MaxConnections != 10 {
		t.Errorf("expected database max_connections 10, got %d", cfg.Input.Database.MaxConnections)
	}

	// Test output defaults
	if cfg.Output.Dir != "out" {
		t.Errorf("expected output dir 'out', got %s", cfg.Output.Dir)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("expected output format 'csv', got %s", cfg.Output.Format)
	}
	if cfg.Output.ReportFilename != "quality_report.json" {
		t.Errorf("expected report filename 'quality_report.json', got %s", cfg.Output.ReportFilename)
	}

	// Test cleaning defaults
	if !cfg.Cleaning.StandardizeColumns {
		t.Errorf("expected standardize_columns enabled by default")
	}
	if !cfg.Cleaning.Dedupe.Enabled {
		t.Errorf("expected dedupe enabled by default")
	}
	if cfg.Cleaning.Dedupe.Keep != "first" {
		t.Errorf("expected dedupe keep 'first', got %s", cfg.Cleaning.Dedupe.Keep)
	}
	if cfg.Cleaning.Missing.Strategy != "auto" {
		t.Errorf("expected missing strategy 'auto', got %s", cfg.Cleaning.Missing.Strategy)
	}
	if cfg.Cleaning.Missing.Threshold != 0.5 {
		t.Errorf("expected missing threshold 0.5, got %f", cfg.Cleaning.Missing.Threshold)
	}
	if cfg.Cleaning.Outliers.Enabled {
		t.Errorf("expected outliers disabled by default")
	}
	if cfg.Cleaning.Outliers.Method != "iqr" {
		t.Errorf("expected outlier method 'iqr', got %s", cfg.Cleaning.Outliers.Method)
	}
	if cfg.Cleaning.Outliers.Threshold != 1.5 {
		t.Errorf("expected outlier threshold 1.5, got %f", cfg.Cleaning.Outliers.Threshold)
	}

	// Test validation defaults
	if cfg.Validation.Enabled {
		t.Errorf("expected validation disabled by default")
	}
	if cfg.Validation.Completeness.Threshold != 0.95 {
		t.Errorf("expected completeness threshold 0.95, got %f", cfg.Validation.Completeness.Threshold)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected logging format 'text', got %s", cfg.Logging.Format)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Source = "mysql"
	cfg.Input.Table = "users"

	cfg.ApplyOverrides("debug", "json", "data.csv", "cleaned", "json", "drop_rows", true)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level override 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format override 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Input.Source != "csv" {
		t.Errorf("expected input override to switch source to csv, got %s", cfg.Input.Source)
	}
	if cfg.Input.Path != "data.csv" {
		t.Errorf("expected input path 'data.csv', got %s", cfg.Input.Path)
	}
	if cfg.Output.Dir != "cleaned" {
		t.Errorf("expected output dir 'cleaned', got %s", cfg.Output.Dir)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected output format 'json', got %s", cfg.Output.Format)
	}
	if cfg.Cleaning.Missing.Strategy != "drop_rows" {
		t.Errorf("expected strategy 'drop_rows', got %s", cfg.Cleaning.Missing.Strategy)
	}
	if !cfg.Cleaning.Outliers.Enabled {
		t.Errorf("expected outliers enabled")
	}
}

func TestApplyOverrides_EmptyValuesIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Path = "original.csv"

	cfg.ApplyOverrides("", "", "", "", "", "", false)

	if cfg.Input.Path != "original.csv" {
		t.Errorf("expected input path unchanged, got %s", cfg.Input.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level unchanged, got %s", cfg.Logging.Level)
	}
	if cfg.Cleaning.Outliers.Enabled {
		t.Errorf("expected outliers to stay disabled")
	}
}
