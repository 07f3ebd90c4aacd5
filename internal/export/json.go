package export

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/quality"
)

// WriteJSON writes the dataset as an array of records, one object per
// row with field names equal to column names, fields in column order.
// Missing cells become null, numerics stay numbers, dates become ISO
// calendar dates.
func WriteJSON(d *dataset.Dataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportError{Path: path, Message: "failed to create directory", Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Message: "failed to create file", Err: err}
	}
	defer f.Close()

	if err := WriteJSONTo(d, f); err != nil {
		return &ExportError{Path: path, Message: "write failed", Err: err}
	}
	return nil
}

// WriteJSONTo writes the dataset as JSON records to a writer. Objects
// are built by hand so field order follows column order.
func WriteJSONTo(d *dataset.Dataset, w io.Writer) error {
	names := d.Names()
	encodedNames := make([][]byte, len(names))
	for i, name := range names {
		b, err := json.Marshal(name)
		if err != nil {
			return err
		}
		encodedNames[i] = b
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < d.NumRows(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, v := range d.Row(i) {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.Write(encodedNames[j])
			buf.WriteByte(':')
			field, err := json.Marshal(jsonValue(v))
			if err != nil {
				return err
			}
			buf.Write(field)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	_, err := w.Write(buf.Bytes())
	return err
}

func jsonValue(v dataset.Value) interface{} {
	switch v.Kind() {
	case dataset.KindNumeric:
		return v.Float()
	case dataset.KindText:
		return v.Str()
	case dataset.KindDate:
		return v.String()
	default:
		return nil
	}
}

// WriteReport serializes the quality report as indented JSON with
// numeric fields as numbers.
func WriteReport(r *quality.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportError{Path: path, Message: "failed to create directory", Err: err}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &ExportError{Path: path, Message: "failed to marshal report", Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &ExportError{Path: path, Message: "write failed", Err: err}
	}
	return nil
}
