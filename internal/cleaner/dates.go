package cleaner

import (
	"time"

	"github.com/dbsmedya/goclean/internal/dataset"
	"github.com/dbsmedya/goclean/internal/logger"
)

// DefaultDateFormats are the candidate layouts tried in priority order.
var DefaultDateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"01-02-2006",
}

// permissiveFormats are the extra layouts used by the per-value fallback
// when no single candidate format fits a whole column.
var permissiveFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseDates coerces the target columns to date values. Each candidate
// format is an all-or-nothing attempt over the column's present values:
// one unparsable value rejects the format for the whole column and the
// next candidate is tried. When no candidate fits, each value is parsed
// independently against every known layout and values that still fail
// become missing. Target columns absent from the dataset are skipped
// with a warning.
func ParseDates(d *dataset.Dataset, columns []string, formats []string, log *logger.Logger) *dataset.Dataset {
	if log == nil {
		log = logger.NewDefault()
	}
	if len(formats) == 0 {
		formats = DefaultDateFormats
	}

	out := d.Clone()
	for _, name := range columns {
		c := out.Column(name)
		if c == nil {
			log.Warnf("Date column %q not found in dataset", name)
			continue
		}

		adopted := false
		for _, layout := range formats {
			parsed, ok := parseWholeColumn(c.Values, layout)
			if ok {
				c.Values = parsed
				adopted = true
				log.Debugw("Parsed date column", "column", name, "format", layout)
				break
			}
		}
		if !adopted {
			c.Values = parsePermissive(c.Values, formats)
			log.Debugw("Parsed date column with per-value fallback", "column", name)
		}
	}
	return out
}

// parseWholeColumn attempts one layout over every present value. Cells
// that are already dates are accepted as-is; missing cells are skipped.
func parseWholeColumn(values []dataset.Value, layout string) ([]dataset.Value, bool) {
	parsed := make([]dataset.Value, len(values))
	for i, v := range values {
		switch v.Kind() {
		case dataset.KindMissing:
			parsed[i] = v
		case dataset.KindDate:
			parsed[i] = v
		case dataset.KindText:
			t, err := time.Parse(layout, v.Str())
			if err != nil {
				return nil, false
			}
			parsed[i] = dataset.Date(t)
		default:
			return nil, false
		}
	}
	return parsed, true
}

// parsePermissive parses each value independently, trying the candidate
// formats and then the permissive layouts. Unparsable values become
// missing rather than failing the run.
func parsePermissive(values []dataset.Value, formats []string) []dataset.Value {
	layouts := make([]string, 0, len(formats)+len(permissiveFormats))
	layouts = append(layouts, formats...)
	layouts = append(layouts, permissiveFormats...)

	parsed := make([]dataset.Value, len(values))
	for i, v := range values {
		switch v.Kind() {
		case dataset.KindMissing, dataset.KindDate:
			parsed[i] = v
			continue
		}
		parsed[i] = dataset.Missing()
		if v.Kind() != dataset.KindText {
			continue
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, v.Str()); err == nil {
				parsed[i] = dataset.Date(t)
				break
			}
		}
	}
	return parsed
}
