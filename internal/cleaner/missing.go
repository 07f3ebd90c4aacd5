package cleaner

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/stat"
)

// MissingStrategy names a missing-value resolution strategy.
type MissingStrategy string

const (
	// StrategyAuto drops columns beyond the missing threshold and imputes
	// the rest: median for numeric columns, mode for everything else.
	StrategyAuto MissingStrategy = "auto"
	// StrategyDropRows removes every row with at least one missing cell.
	StrategyDropRows MissingStrategy = "drop_rows"
	// StrategyDropColumns removes every column with at least one missing cell.
	StrategyDropColumns MissingStrategy = "drop_columns"
	// StrategyFill replaces every missing cell with a supplied value.
	StrategyFill MissingStrategy = "fill"
)

// DefaultMissingThreshold is the fraction of missing values beyond which
// the auto strategy drops a column entirely.
const DefaultMissingThreshold = 0.5

// MissingOptions configures ResolveMissing.
type MissingOptions struct {
	Strategy  MissingStrategy
	Threshold float64        // column-drop threshold for auto
	FillValue *dataset.Value // required for StrategyFill
}

// DefaultMissingOptions returns the auto strategy with the default
// column-drop threshold.
func DefaultMissingOptions() MissingOptions {
	return MissingOptions{Strategy: StrategyAuto, Threshold: DefaultMissingThreshold}
}

// ResolveMissing applies the configured missing-value strategy. After it
// returns, every surviving column has zero missing cells. Malformed
// options fail with a ConfigError before any data is touched.
func ResolveMissing(d *dataset.Dataset, opts MissingOptions) (*dataset.Dataset, error) {
	switch opts.Strategy {
	case StrategyAuto:
		return resolveAuto(d, opts.Threshold)
	case StrategyDropRows:
		return dropMissingRows(d), nil
	case StrategyDropColumns:
		return dropMissingColumns(d), nil
	case StrategyFill:
		if opts.FillValue == nil {
			return nil, ConfigError{Field: "fill_value", Message: "must be provided when strategy is 'fill'"}
		}
		return fillMissing(d, *opts.FillValue), nil
	default:
		return nil, ConfigError{Field: "strategy", Message: "unknown strategy '" + string(opts.Strategy) + "'"}
	}
}

func resolveAuto(d *dataset.Dataset, threshold float64) (*dataset.Dataset, error) {
	// Classification happens once up front; imputation dispatches on it.
	types := dataset.InferTypes(d)
	rows := d.NumRows()

	var dropped []string
	for _, c := range d.Columns {
		missing := countMissing(c.Values)
		if rows > 0 && float64(missing)/float64(rows) > threshold {
			dropped = append(dropped, c.Name)
		}
	}
	out := d.DropColumns(dropped...)

	for i := range out.Columns {
		c := &out.Columns[i]
		if countMissing(c.Values) == 0 {
			continue
		}
		var fill dataset.Value
		if types[c.Name] == dataset.TypeNumeric {
			fill = dataset.Number(stat.Median(presentFloats(c.Values)))
		} else {
			fill = columnMode(c.Values)
		}
		for j, v := range c.Values {
			if v.IsMissing() {
				c.Values[j] = fill
			}
		}
	}
	return out, nil
}

// columnMode returns the most frequent present value. Ties break toward
// the value encountered first in column order, which keeps imputation
// reproducible. A column with no present values yields the literal text
// "Unknown".
func columnMode(values []dataset.Value) dataset.Value {
	counts := orderedmap.NewOrderedMap[string, int]()
	byKey := make(map[string]dataset.Value)
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		key := v.Kind().String() + "\x00" + v.String()
		n, _ := counts.Get(key)
		counts.Set(key, n+1)
		byKey[key] = v
	}
	if counts.Len() == 0 {
		return dataset.Text("Unknown")
	}
	best := ""
	bestCount := 0
	for el := counts.Front(); el != nil; el = el.Next() {
		if el.Value > bestCount {
			best = el.Key
			bestCount = el.Value
		}
	}
	return byKey[best]
}

func dropMissingRows(d *dataset.Dataset) *dataset.Dataset {
	var keep []int
	for i := 0; i < d.NumRows(); i++ {
		complete := true
		for _, c := range d.Columns {
			if c.Values[i].IsMissing() {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	return d.SelectRows(keep)
}

func dropMissingColumns(d *dataset.Dataset) *dataset.Dataset {
	var drop []string
	for _, c := range d.Columns {
		if countMissing(c.Values) > 0 {
			drop = append(drop, c.Name)
		}
	}
	return d.DropColumns(drop...)
}

func fillMissing(d *dataset.Dataset, fill dataset.Value) *dataset.Dataset {
	out := d.Clone()
	for i := range out.Columns {
		for j, v := range out.Columns[i].Values {
			if v.IsMissing() {
				out.Columns[i].Values[j] = fill
			}
		}
	}
	return out
}

func countMissing(values []dataset.Value) int {
	n := 0
	for _, v := range values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

func presentFloats(values []dataset.Value) []float64 {
	var xs []float64
	for _, v := range values {
		if v.Kind() == dataset.KindNumeric {
			xs = append(xs, v.Float())
		}
	}
	return xs
}
