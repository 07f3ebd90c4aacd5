package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile        string
	logLevel       string
	logFormat      string
	inputPath      string
	outputDir      string
	exportFormat   string
	missStrategy   string
	removeOutliers bool
)

var rootCmd = &cobra.Command{
	Use:   "goclean",
	Short: "Tabular Data Cleaner & Quality Reporter",
	Long: `A CLI tool for cleaning messy tabular datasets and producing
quantitative data-quality reports.

Features:
  - Column name standardization
  - Duplicate row elimination with configurable identity and retention
  - Missing value resolution (auto, drop_rows, drop_columns, fill)
  - Multi-format date parsing with per-column format adoption
  - Statistical outlier filtering (IQR and Z-score)
  - Structured quality reports (completeness, duplication, column stats)`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "goclean.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// I/O overrides
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "",
		"Override input CSV file path")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "",
		"Override output directory")
	rootCmd.PersistentFlags().StringVar(&exportFormat, "format", "",
		"Override export format (csv, json)")

	// Cleaning overrides
	rootCmd.PersistentFlags().StringVar(&missStrategy, "missing-strategy", "",
		"Override missing value strategy (auto, drop_rows, drop_columns, fill)")
	rootCmd.PersistentFlags().BoolVar(&removeOutliers, "remove-outliers", false,
		"Enable outlier removal")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel       string
	LogFormat      string
	Input          string
	OutputDir      string
	Format         string
	Strategy       string
	RemoveOutliers bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:       logLevel,
		LogFormat:      logFormat,
		Input:          inputPath,
		OutputDir:      outputDir,
		Format:         exportFormat,
		Strategy:       missStrategy,
		RemoveOutliers: removeOutliers,
	}
}
