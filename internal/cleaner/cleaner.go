// Package cleaner implements the column-wise and row-wise cleaning
// transforms: column name normalization, duplicate elimination, missing
// value resolution, text normalization, date parsing, and outlier
// filtering. Every transform is a pure function of its inputs.
package cleaner

import "fmt"

// ConfigError reports a structural misuse of a transform, such as an
// unknown strategy name or a fill strategy without a fill value. It is
// raised before any data is touched.
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
