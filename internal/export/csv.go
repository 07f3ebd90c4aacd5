package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/dbsmedya/goclean/internal/dataset"
)

// WriteCSV writes the dataset as delimited text: a header record, then
// one record per row in column order. Missing cells become empty fields;
// other values use their canonical text form.
func WriteCSV(d *dataset.Dataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportError{Path: path, Message: "failed to create directory", Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Message: "failed to create file", Err: err}
	}
	defer f.Close()

	if err := WriteCSVTo(d, f); err != nil {
		return &ExportError{Path: path, Message: "write failed", Err: err}
	}
	return nil
}

// WriteCSVTo writes the dataset as CSV to a writer.
func WriteCSVTo(d *dataset.Dataset, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(d.Names()); err != nil {
		return err
	}
	record := make([]string, d.NumColumns())
	for i := 0; i < d.NumRows(); i++ {
		for j, v := range d.Row(i) {
			record[j] = v.String()
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
