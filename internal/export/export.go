// Package export writes cleaned datasets and quality reports to disk:
// delimited text, JSON records, and the report as nested JSON.
package export

import "fmt"

// ExportError reports a sink write failure.
type ExportError struct {
	Path    string
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("export %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("export %s: %s", e.Path, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
