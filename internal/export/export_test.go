package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/ingest"
	"github.com/dbsmedya/goclean/internal/quality"
)

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(
		dataset.Column{Name: "id", Values: []dataset.Value{dataset.Number(1), dataset.Number(2)}},
		dataset.Column{Name: "name", Values: []dataset.Value{dataset.Text("Alice"), dataset.Missing()}},
		dataset.Column{Name: "joined", Values: []dataset.Value{
			dataset.Date(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)), dataset.Missing(),
		}},
	)
	require.NoError(t, err)
	return d
}

func TestWriteCSVTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSVTo(sampleDataset(t), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,joined", lines[0])
	assert.Equal(t, "1,Alice,2021-06-01", lines[1])
	assert.Equal(t, "2,,", lines[2])
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	d, err := dataset.New(
		dataset.Column{Name: "x", Values: []dataset.Value{dataset.Number(1.5), dataset.Missing(), dataset.Number(3)}},
		dataset.Column{Name: "s", Values: []dataset.Value{dataset.Text("a"), dataset.Text("b,c"), dataset.Text(`d"e`)}},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "data.csv")
	require.NoError(t, WriteCSV(d, path))

	back, err := ingest.ReadCSV(path)
	require.NoError(t, err)

	require.Equal(t, d.Names(), back.Names())
	require.Equal(t, d.NumRows(), back.NumRows())
	for i, c := range d.Columns {
		for j, v := range c.Values {
			assert.True(t, v.Equal(back.Columns[i].Values[j]),
				"cell (%d,%d): wrote %v, read %v", j, i, v, back.Columns[i].Values[j])
		}
	}
}

func TestWriteJSONTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONTo(sampleDataset(t), &buf))

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)

	assert.Equal(t, 1.0, records[0]["id"])
	assert.Equal(t, "Alice", records[0]["name"])
	assert.Equal(t, "2021-06-01", records[0]["joined"])
	assert.Nil(t, records[1]["name"])

	// Field order follows column order.
	first := buf.String()
	assert.True(t, strings.Index(first, `"id"`) < strings.Index(first, `"name"`))
	assert.True(t, strings.Index(first, `"name"`) < strings.Index(first, `"joined"`))
}

func TestWriteJSONTo_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONTo(&dataset.Dataset{}, &buf))
	assert.Equal(t, "[]", buf.String())
}

func TestWriteReport(t *testing.T) {
	d := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "report", "quality.json")

	require.NoError(t, WriteReport(quality.Assess(d, nil), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2.0, decoded["total_rows"])
	assert.Contains(t, decoded, "column_stats")
}

func TestWriteCSV_BadPath(t *testing.T) {
	dir := t.TempDir()
	// A file where the parent directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocker"), []byte("x"), 0o644))

	err := WriteCSV(sampleDataset(t), filepath.Join(dir, "blocker", "data.csv"))
	require.Error(t, err)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
}
