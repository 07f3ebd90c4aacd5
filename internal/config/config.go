// Package config provides configuration structures and loading for GoClean.
package config

// Config represents the complete application configuration.
type Config struct {
	Input      InputConfig      `yaml:"input" mapstructure:"input"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Cleaning   CleaningConfig   `yaml:"cleaning" mapstructure:"cleaning"`
	Validation ValidationConfig `yaml:"validation" mapstructure:"validation"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// InputConfig describes where the raw dataset comes from.
type InputConfig struct {
	Source   string         `yaml:"source" mapstructure:"source"` // csv or mysql
	Path     string         `yaml:"path" mapstructure:"path"`     // csv file path
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Table    string         `yaml:"table" mapstructure:"table"` // mysql table name
}

// DatabaseConfig represents a MySQL database connection configuration.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// OutputConfig describes where cleaned data and the report are written.
type OutputConfig struct {
	Dir            string `yaml:"dir" mapstructure:"dir"`
	Filename       string `yaml:"filename" mapstructure:"filename"`
	Format         string `yaml:"format" mapstructure:"format"` // csv or json
	ReportFilename string `yaml:"report_filename" mapstructure:"report_filename"`
}

// CleaningConfig holds the per-step settings of the cleaning engine.
type CleaningConfig struct {
	StandardizeColumns bool          `yaml:"standardize_columns" mapstructure:"standardize_columns"`
	Dedupe             DedupeConfig  `yaml:"dedupe" mapstructure:"dedupe"`
	Missing            MissingConfig `yaml:"missing" mapstructure:"missing"`
	Text               TextConfig    `yaml:"text" mapstructure:"text"`
	Dates              DateConfig    `yaml:"dates" mapstructure:"dates"`
	Outliers           OutlierConfig `yaml:"outliers" mapstructure:"outliers"`
}

// DedupeConfig configures duplicate elimination.
type DedupeConfig struct {
	Enabled bool     `yaml:"enabled" mapstructure:"enabled"`
	Subset  []string `yaml:"subset" mapstructure:"subset"` // empty = all columns
	Keep    string   `yaml:"keep" mapstructure:"keep"`     // first, last, none
}

// MissingConfig configures missing-value resolution.
type MissingConfig struct {
	Strategy  string  `yaml:"strategy" mapstructure:"strategy"` // auto, drop_rows, drop_columns, fill
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	FillValue *string `yaml:"fill_value,omitempty" mapstructure:"fill_value"`
}

// TextConfig configures free-text normalization.
type TextConfig struct {
	Columns []string `yaml:"columns" mapstructure:"columns"` // empty = all text columns
}

// DateConfig configures date parsing.
type DateConfig struct {
	Columns []string `yaml:"columns" mapstructure:"columns"`
	Formats []string `yaml:"formats" mapstructure:"formats"` // empty = built-in defaults
}

// OutlierConfig configures outlier filtering.
type OutlierConfig struct {
	Enabled   bool     `yaml:"enabled" mapstructure:"enabled"`
	Columns   []string `yaml:"columns" mapstructure:"columns"` // empty = all numeric columns
	Method    string   `yaml:"method" mapstructure:"method"`   // iqr or zscore
	Threshold float64  `yaml:"threshold" mapstructure:"threshold"`
}

// ValidationConfig configures the optional post-clean validation step.
type ValidationConfig struct {
	Enabled      bool                   `yaml:"enabled" mapstructure:"enabled"`
	Schema       SchemaConfig           `yaml:"schema" mapstructure:"schema"`
	Types        map[string]string      `yaml:"types" mapstructure:"types"` // column -> numeric|text|date
	Ranges       map[string]RangeConfig `yaml:"ranges" mapstructure:"ranges"`
	Completeness CompletenessConfig     `yaml:"completeness" mapstructure:"completeness"`
}

// SchemaConfig lists the columns the cleaned dataset must carry.
type SchemaConfig struct {
	Expected []string `yaml:"expected" mapstructure:"expected"`
	Strict   bool     `yaml:"strict" mapstructure:"strict"`
}

// RangeConfig bounds a numeric column; nil endpoints are unbounded.
type RangeConfig struct {
	Min *float64 `yaml:"min,omitempty" mapstructure:"min"`
	Max *float64 `yaml:"max,omitempty" mapstructure:"max"`
}

// CompletenessConfig names required columns and the minimum present fraction.
type CompletenessConfig struct {
	Columns   []string `yaml:"columns" mapstructure:"columns"`
	Threshold float64  `yaml:"threshold" mapstructure:"threshold"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Source: "csv",
			Database: DatabaseConfig{
				Port:               3306,
				TLS:                "preferred",
				MaxConnections:     10,
				MaxIdleConnections: 5,
			},
		},
		Output: OutputConfig{
			Dir:            "out",
			Filename:       "cleaned_data.csv",
			Format:         "csv",
			ReportFilename: "quality_report.json",
		},
		Cleaning: CleaningConfig{
			StandardizeColumns: true,
			Dedupe: DedupeConfig{
				Enabled: true,
				Keep:    "first",
			},
			Missing: MissingConfig{
				Strategy:  "auto",
				Threshold: 0.5,
			},
			Outliers: OutlierConfig{
				Enabled:   false,
				Method:    "iqr",
				Threshold: 1.5,
			},
		},
		Validation: ValidationConfig{
			Enabled: false,
			Completeness: CompletenessConfig{
				Threshold: 0.95,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, input, outputDir, format, strategy string, outliers bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if input != "" {
		c.Input.Source = "csv"
		c.Input.Path = input
	}
	if outputDir != "" {
		c.Output.Dir = outputDir
	}
	if format != "" {
		c.Output.Format = format
	}
	if strategy != "" {
		c.Cleaning.Missing.Strategy = strategy
	}
	if outliers {
		c.Cleaning.Outliers.Enabled = true
	}
}
