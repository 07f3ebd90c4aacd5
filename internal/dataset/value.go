package dataset

import (
	"strconv"
	"time"
)

// Kind identifies which variant a cell value holds.
type Kind int

const (
	// KindMissing marks a cell with no data. It is distinct from the empty
	// string and from zero.
	KindMissing Kind = iota
	KindNumeric
	KindText
	KindDate
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	default:
		return "missing"
	}
}

// Value is a single tagged cell value: numeric, text, date, or missing.
type Value struct {
	kind Kind
	num  float64
	str  string
	date time.Time
}

// Missing returns the missing sentinel value.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumeric, num: f}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Date returns a date value truncated to its calendar date in UTC.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is the missing sentinel.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric payload. Only meaningful for KindNumeric.
func (v Value) Float() float64 { return v.num }

// Str returns the text payload. Only meaningful for KindText.
func (v Value) Str() string { return v.str }

// Time returns the date payload. Only meaningful for KindDate.
func (v Value) Time() time.Time { return v.date }

// Equal reports whether two values are equal. Missing equals missing,
// and values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumeric:
		return v.num == o.num
	case KindText:
		return v.str == o.str
	case KindDate:
		return v.date.Equal(o.date)
	default:
		return true
	}
}

// String returns the canonical text form of the value: numerics in their
// shortest decimal form, dates as ISO calendar dates, missing as the
// empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.str
	case KindDate:
		return v.date.Format("2006-01-02")
	default:
		return ""
	}
}

// encode returns a deterministic representation that distinguishes kinds,
// so the text "42" never collides with the number 42 in row identity keys.
func (v Value) encode() string {
	switch v.kind {
	case KindNumeric:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return "t:" + v.str
	case KindDate:
		return "d:" + v.date.Format("2006-01-02")
	default:
		return "m:"
	}
}
