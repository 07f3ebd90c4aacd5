package cleaner

import (
	"math"

	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/stat"
)

// OutlierMethod selects the outlier detection method.
type OutlierMethod string

const (
	// MethodIQR removes values outside [Q1 - t*IQR, Q3 + t*IQR].
	MethodIQR OutlierMethod = "iqr"
	// MethodZScore removes values whose |z| exceeds the threshold.
	MethodZScore OutlierMethod = "zscore"
)

// DefaultIQRThreshold is the default IQR multiplier.
const DefaultIQRThreshold = 1.5

// RemoveOutliers filters rows whose value in a target column is a
// statistical outlier. A nil column list means every numeric column.
// Columns are filtered sequentially over the shrinking dataset, so a row
// removed by an earlier column is never evaluated against later bounds,
// and each column's bounds are computed over the rows still present.
// Rows missing in the target column are kept. Returns the filtered
// dataset and the total number of rows removed.
func RemoveOutliers(d *dataset.Dataset, columns []string, method OutlierMethod, threshold float64) (*dataset.Dataset, int, error) {
	switch method {
	case MethodIQR, MethodZScore:
	default:
		return nil, 0, ConfigError{Field: "method", Message: "must be 'iqr' or 'zscore'"}
	}
	if threshold <= 0 {
		return nil, 0, ConfigError{Field: "threshold", Message: "must be positive"}
	}

	types := dataset.InferTypes(d)
	if columns == nil {
		for _, c := range d.Columns {
			if types[c.Name] == dataset.TypeNumeric {
				columns = append(columns, c.Name)
			}
		}
	}

	out := d.Clone()
	initial := out.NumRows()
	for _, name := range columns {
		c := out.Column(name)
		if c == nil || types[name] != dataset.TypeNumeric {
			continue
		}

		present := presentFloats(c.Values)
		if len(present) == 0 {
			continue
		}

		var keep []int
		switch method {
		case MethodIQR:
			q1 := stat.Quantile(present, 0.25)
			q3 := stat.Quantile(present, 0.75)
			iqr := q3 - q1
			lower := q1 - threshold*iqr
			upper := q3 + threshold*iqr
			keep = rowsWithin(c.Values, func(v float64) bool {
				return v >= lower && v <= upper
			})
		case MethodZScore:
			if len(present) < 2 {
				continue
			}
			mean := stat.Mean(present)
			std := stat.SampleStd(present)
			if std == 0 {
				continue
			}
			keep = rowsWithin(c.Values, func(v float64) bool {
				return math.Abs(v-mean)/std <= threshold
			})
		}
		out = out.SelectRows(keep)
	}
	return out, initial - out.NumRows(), nil
}

// rowsWithin returns the indices of rows whose value passes the bound
// check, keeping rows where the value is missing.
func rowsWithin(values []dataset.Value, within func(float64) bool) []int {
	var keep []int
	for i, v := range values {
		if v.Kind() != dataset.KindNumeric || within(v.Float()) {
			keep = append(keep, i)
		}
	}
	return keep
}
