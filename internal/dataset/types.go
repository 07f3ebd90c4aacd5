package dataset

// ColumnType is the declared classification of a column, computed once
// per dataset and dispatched on by the cleaning steps.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeNumeric
	TypeDate
)

// String returns the lowercase name of the column type.
func (t ColumnType) String() string {
	switch t {
	case TypeNumeric:
		return "numeric"
	case TypeDate:
		return "date"
	default:
		return "text"
	}
}

// Types maps column names to their classification.
type Types map[string]ColumnType

// InferTypes classifies every column from its present values: a column
// where every present value is numeric is Numeric, where every present
// value is a date is Date, and everything else (including columns with
// no present values) is Text.
func InferTypes(d *Dataset) Types {
	types := make(Types, len(d.Columns))
	for _, c := range d.Columns {
		types[c.Name] = classify(c.Values)
	}
	return types
}

func classify(values []Value) ColumnType {
	present := 0
	numeric := 0
	dates := 0
	for _, v := range values {
		switch v.Kind() {
		case KindMissing:
			continue
		case KindNumeric:
			numeric++
		case KindDate:
			dates++
		}
		present++
	}
	switch {
	case present == 0:
		return TypeText
	case numeric == present:
		return TypeNumeric
	case dates == present:
		return TypeDate
	default:
		return TypeText
	}
}
