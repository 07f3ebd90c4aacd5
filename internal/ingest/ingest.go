// Package ingest materializes datasets from delimited-text files and
// MySQL tables.
package ingest

import "fmt"

// IngestError reports a source that is absent or unparsable. Ingestion
// never silently returns an empty dataset.
type IngestError struct {
	Source  string
	Message string
	Err     error
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ingest %s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("ingest %s: %s", e.Source, e.Message)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}
