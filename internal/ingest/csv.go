package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/dbsmedya/goclean/internal/dataset"
)

// naTokens are the cell spellings treated as missing by a delimited source.
var naTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"null": true,
	"NULL": true,
	"NaN":  true,
	"nan":  true,
}

// ReadCSV materializes a dataset from a CSV file. The first record is
// the header. Cells keep their raw text except for what the format
// naturally implies: NA spellings become missing, and a column whose
// every present cell parses as a number becomes numeric.
func ReadCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IngestError{Source: path, Message: "cannot open source", Err: err}
	}
	defer f.Close()

	d, err := ReadCSVFrom(f)
	if err != nil {
		return nil, &IngestError{Source: path, Message: "cannot parse source", Err: err}
	}
	return d, nil
}

// ReadCSVFrom materializes a dataset from CSV content.
func ReadCSVFrom(r io.Reader) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, io.ErrUnexpectedEOF
	}

	header := records[0]
	rows := records[1:]

	columns := make([]dataset.Column, len(header))
	for i, name := range header {
		values := make([]dataset.Value, len(rows))
		for j, row := range rows {
			values[j] = cellValue(row[i])
		}
		columns[i] = dataset.Column{Name: name, Values: coerceNumeric(values)}
	}
	return dataset.New(columns...)
}

func cellValue(raw string) dataset.Value {
	if naTokens[raw] {
		return dataset.Missing()
	}
	return dataset.Text(raw)
}

// coerceNumeric converts a column to numeric when every present cell
// parses as a number, mirroring what the source format implies.
func coerceNumeric(values []dataset.Value) []dataset.Value {
	parsed := make([]float64, len(values))
	present := 0
	for i, v := range values {
		if v.IsMissing() {
			continue
		}
		f, err := strconv.ParseFloat(v.Str(), 64)
		if err != nil {
			return values
		}
		parsed[i] = f
		present++
	}
	if present == 0 {
		return values
	}
	out := make([]dataset.Value, len(values))
	for i, v := range values {
		if v.IsMissing() {
			out[i] = v
		} else {
			out[i] = dataset.Number(parsed[i])
		}
	}
	return out
}
