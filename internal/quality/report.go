// Package quality computes structured data-quality reports over dataset
// snapshots: completeness, duplication, and per-column statistics.
package quality

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/stat"
)

// ColumnStats is a read-only snapshot of one column. The numeric fields
// are only set for numeric columns with present values; Std additionally
// needs at least two present values to be defined.
type ColumnStats struct {
	DType             string   `json:"dtype"`
	MissingCount      int      `json:"missing_count"`
	MissingPercentage float64  `json:"missing_percentage"`
	UniqueValues      int      `json:"unique_values"`
	Mean              *float64 `json:"mean,omitempty"`
	Median            *float64 `json:"median,omitempty"`
	Std               *float64 `json:"std,omitempty"`
	Min               *float64 `json:"min,omitempty"`
	Max               *float64 `json:"max,omitempty"`
}

// Report is the aggregate quality summary of one dataset snapshot. It is
// immutable after Assess returns; serialization belongs to the caller.
type Report struct {
	TotalRows          int                    `json:"total_rows"`
	TotalColumns       int                    `json:"total_columns"`
	DuplicateRows      int                    `json:"duplicate_rows"`
	ColumnsWithMissing int                    `json:"columns_with_missing"`
	TotalMissingValues int                    `json:"total_missing_values"`
	MissingPercentage  float64                `json:"missing_percentage"`
	ColumnStats        map[string]ColumnStats `json:"column_stats"`

	columnOrder []string
}

// ColumnOrder returns the column names in dataset order.
func (r *Report) ColumnOrder() []string {
	return r.columnOrder
}

// Assess computes a quality report over the dataset. Duplicate counting
// uses the same row-identity semantics as the duplicate eliminator
// (missing equals missing) over the optional subset, counting every
// occurrence beyond the first. The input dataset is not modified.
func Assess(d *dataset.Dataset, subset []string) *Report {
	types := dataset.InferTypes(d)
	rows := d.NumRows()
	cols := d.NumColumns()

	report := &Report{
		TotalRows:     rows,
		TotalColumns:  cols,
		DuplicateRows: countDuplicates(d, subset),
		columnOrder:   d.Names(),
	}

	// Ordered assembly keeps per-column work in dataset order.
	stats := orderedmap.NewOrderedMap[string, ColumnStats]()
	for _, c := range d.Columns {
		cs := columnStats(c, types[c.Name], rows)
		stats.Set(c.Name, cs)
		report.TotalMissingValues += cs.MissingCount
		if cs.MissingCount > 0 {
			report.ColumnsWithMissing++
		}
	}

	if rows > 0 && cols > 0 {
		report.MissingPercentage = float64(report.TotalMissingValues) / float64(rows*cols) * 100
	}

	report.ColumnStats = make(map[string]ColumnStats, stats.Len())
	for el := stats.Front(); el != nil; el = el.Next() {
		report.ColumnStats[el.Key] = el.Value
	}
	return report
}

func columnStats(c dataset.Column, t dataset.ColumnType, rows int) ColumnStats {
	cs := ColumnStats{DType: t.String()}
	unique := make(map[string]bool)
	var present []float64
	for _, v := range c.Values {
		if v.IsMissing() {
			cs.MissingCount++
			continue
		}
		unique[v.Kind().String()+"\x00"+v.String()] = true
		if v.Kind() == dataset.KindNumeric {
			present = append(present, v.Float())
		}
	}
	cs.UniqueValues = len(unique)
	if rows > 0 {
		cs.MissingPercentage = float64(cs.MissingCount) / float64(rows) * 100
	}

	if t == dataset.TypeNumeric && len(present) > 0 {
		cs.Mean = ptr(stat.Mean(present))
		cs.Median = ptr(stat.Median(present))
		cs.Min = ptr(stat.Min(present))
		cs.Max = ptr(stat.Max(present))
		if len(present) > 1 {
			cs.Std = ptr(stat.SampleStd(present))
		}
	}
	return cs
}

// countDuplicates counts rows that duplicate an earlier row under the
// identity subset (nil means all columns). Unknown subset columns are
// ignored so assessment never fails on a snapshot.
func countDuplicates(d *dataset.Dataset, subset []string) int {
	var cols []int
	if len(subset) == 0 {
		cols = make([]int, d.NumColumns())
		for i := range cols {
			cols[i] = i
		}
	} else {
		for _, name := range subset {
			if i := d.Index(name); i >= 0 {
				cols = append(cols, i)
			}
		}
	}
	if len(cols) == 0 {
		return 0
	}

	seen := make(map[string]bool)
	dupes := 0
	for i := 0; i < d.NumRows(); i++ {
		key := d.RowKey(i, cols)
		if seen[key] {
			dupes++
		}
		seen[key] = true
	}
	return dupes
}

func ptr(f float64) *float64 { return &f }
