// Package validate provides schema, type, range, and completeness checks
// over a dataset. Each check collects every violation it finds before
// failing, so a single error enumerates all problems.
package validate

import (
	"fmt"
	"strings"

	"github.com/dbsmedya/goclean/internal/dataset"
)

// DefaultCompletenessThreshold is the minimum fraction of present values
// a required column must have.
const DefaultCompletenessThreshold = 0.95

// CheckError is a single validation violation: the constraint that was
// violated and what was observed.
type CheckError struct {
	Field      string
	Constraint string
	Observed   string
}

func (e CheckError) Error() string {
	if e.Observed == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
	}
	return fmt.Sprintf("%s: %s (observed %s)", e.Field, e.Constraint, e.Observed)
}

// CheckErrors is a collection of validation violations.
type CheckErrors []CheckError

func (e CheckErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// orNil converts an empty collection to a nil error.
func (e CheckErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Schema checks that the dataset has the expected columns. When strict,
// the dataset must have exactly those columns and nothing else.
func Schema(d *dataset.Dataset, expected []string, strict bool) error {
	var errs CheckErrors

	actual := make(map[string]bool, d.NumColumns())
	for _, name := range d.Names() {
		actual[name] = true
	}
	want := make(map[string]bool, len(expected))
	for _, name := range expected {
		want[name] = true
		if !actual[name] {
			errs = append(errs, CheckError{Field: name, Constraint: "required column missing"})
		}
	}
	if strict {
		for _, name := range d.Names() {
			if !want[name] {
				errs = append(errs, CheckError{Field: name, Constraint: "unexpected column"})
			}
		}
	}
	return errs.orNil()
}

// Types checks that columns carry the required classification.
func Types(d *dataset.Dataset, requirements map[string]dataset.ColumnType) error {
	var errs CheckErrors
	types := dataset.InferTypes(d)

	for _, name := range sortedKeys(requirements) {
		want := requirements[name]
		got, exists := types[name]
		if !exists {
			errs = append(errs, CheckError{Field: name, Constraint: "column not found"})
			continue
		}
		if got != want {
			errs = append(errs, CheckError{
				Field:      name,
				Constraint: "should be " + want.String(),
				Observed:   got.String(),
			})
		}
	}
	return errs.orNil()
}

// Range bounds a numeric column. Nil endpoints are unbounded.
type Range struct {
	Min *float64
	Max *float64
}

// Ranges checks that present values of numeric columns fall within their
// configured bounds, reporting the violation count per bound.
func Ranges(d *dataset.Dataset, requirements map[string]Range) error {
	var errs CheckErrors
	types := dataset.InferTypes(d)

	for _, name := range sortedKeys(requirements) {
		r := requirements[name]
		c := d.Column(name)
		if c == nil {
			errs = append(errs, CheckError{Field: name, Constraint: "column not found"})
			continue
		}
		if types[name] != dataset.TypeNumeric {
			errs = append(errs, CheckError{
				Field:      name,
				Constraint: "cannot validate range of non-numeric column",
				Observed:   types[name].String(),
			})
			continue
		}

		below, above := 0, 0
		for _, v := range c.Values {
			if v.Kind() != dataset.KindNumeric {
				continue
			}
			if r.Min != nil && v.Float() < *r.Min {
				below++
			}
			if r.Max != nil && v.Float() > *r.Max {
				above++
			}
		}
		if below > 0 {
			errs = append(errs, CheckError{
				Field:      name,
				Constraint: fmt.Sprintf("values below minimum %v", *r.Min),
				Observed:   fmt.Sprintf("%d violations", below),
			})
		}
		if above > 0 {
			errs = append(errs, CheckError{
				Field:      name,
				Constraint: fmt.Sprintf("values above maximum %v", *r.Max),
				Observed:   fmt.Sprintf("%d violations", above),
			})
		}
	}
	return errs.orNil()
}

// Completeness checks that required columns meet the minimum fraction of
// present values.
func Completeness(d *dataset.Dataset, required []string, threshold float64) error {
	var errs CheckErrors
	rows := d.NumRows()

	for _, name := range required {
		c := d.Column(name)
		if c == nil {
			errs = append(errs, CheckError{Field: name, Constraint: "required column not found"})
			continue
		}
		if rows == 0 {
			continue
		}
		missing := 0
		for _, v := range c.Values {
			if v.IsMissing() {
				missing++
			}
		}
		completeness := 1 - float64(missing)/float64(rows)
		if completeness < threshold {
			errs = append(errs, CheckError{
				Field:      name,
				Constraint: fmt.Sprintf("completeness below threshold %.2f", threshold),
				Observed:   fmt.Sprintf("%.2f", completeness),
			})
		}
	}
	return errs.orNil()
}
