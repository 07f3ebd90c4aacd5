package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
// All problems are collected before returning so one error names them all.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateInput()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateCleaning()...)
	errors = append(errors, c.validateValidation()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateInput() ValidationErrors {
	var errors ValidationErrors

	switch c.Input.Source {
	case "csv":
		if c.Input.Path == "" {
			errors = append(errors, ValidationError{
				Field:   "input.path",
				Message: "path is required for csv source",
			})
		}
	case "mysql":
		if c.Input.Table == "" {
			errors = append(errors, ValidationError{
				Field:   "input.table",
				Message: "table is required for mysql source",
			})
		}
		errors = append(errors, c.validateDatabase("input.database", &c.Input.Database)...)
	default:
		errors = append(errors, ValidationError{
			Field:   "input.source",
			Message: "source must be 'csv' or 'mysql'",
		})
	}

	return errors
}

func (c *Config) validateDatabase(prefix string, db *DatabaseConfig) ValidationErrors {
	var errors ValidationErrors

	if db.Host == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".host",
			Message: "host is required",
		})
	}

	if db.Port <= 0 || db.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".port",
			Message: "port must be between 1 and 65535",
		})
	}

	if db.User == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".user",
			Message: "user is required",
		})
	}

	if db.Database == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".database",
			Message: "database name is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[db.TLS] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if db.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	if db.MaxIdleConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_idle_connections",
			Message: "max_idle_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	if c.Output.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "output.dir",
			Message: "dir is required",
		})
	}

	validFormats := map[string]bool{"csv": true, "json": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'csv' or 'json'",
		})
	}

	return errors
}

func (c *Config) validateCleaning() ValidationErrors {
	var errors ValidationErrors

	validKeep := map[string]bool{"first": true, "last": true, "none": true, "": true}
	if !validKeep[c.Cleaning.Dedupe.Keep] {
		errors = append(errors, ValidationError{
			Field:   "cleaning.dedupe.keep",
			Message: "keep must be 'first', 'last', or 'none'",
		})
	}

	validStrategies := map[string]bool{"auto": true, "drop_rows": true, "drop_columns": true, "fill": true, "": true}
	if !validStrategies[c.Cleaning.Missing.Strategy] {
		errors = append(errors, ValidationError{
			Field:   "cleaning.missing.strategy",
			Message: "strategy must be 'auto', 'drop_rows', 'drop_columns', or 'fill'",
		})
	}

	if c.Cleaning.Missing.Strategy == "fill" && c.Cleaning.Missing.FillValue == nil {
		errors = append(errors, ValidationError{
			Field:   "cleaning.missing.fill_value",
			Message: "fill_value is required when strategy is 'fill'",
		})
	}

	if c.Cleaning.Missing.Threshold < 0 || c.Cleaning.Missing.Threshold > 1 {
		errors = append(errors, ValidationError{
			Field:   "cleaning.missing.threshold",
			Message: "threshold must be between 0 and 1",
		})
	}

	validMethods := map[string]bool{"iqr": true, "zscore": true, "": true}
	if !validMethods[c.Cleaning.Outliers.Method] {
		errors = append(errors, ValidationError{
			Field:   "cleaning.outliers.method",
			Message: "method must be 'iqr' or 'zscore'",
		})
	}

	if c.Cleaning.Outliers.Threshold < 0 {
		errors = append(errors, ValidationError{
			Field:   "cleaning.outliers.threshold",
			Message: "threshold cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateValidation() ValidationErrors {
	var errors ValidationErrors

	if !c.Validation.Enabled {
		return errors
	}

	validTypes := map[string]bool{"numeric": true, "text": true, "date": true}
	for col, typ := range c.Validation.Types {
		if !validTypes[typ] {
			errors = append(errors, ValidationError{
				Field:   "validation.types." + col,
				Message: "type must be 'numeric', 'text', or 'date'",
			})
		}
	}

	for col, r := range c.Validation.Ranges {
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			errors = append(errors, ValidationError{
				Field:   "validation.ranges." + col,
				Message: "min cannot exceed max",
			})
		}
	}

	if c.Validation.Completeness.Threshold < 0 || c.Validation.Completeness.Threshold > 1 {
		errors = append(errors, ValidationError{
			Field:   "validation.completeness.threshold",
			Message: "threshold must be between 0 and 1",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
