package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInferTypes(t *testing.T) {
	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		values   []Value
		expected ColumnType
	}{
		{name: "all numeric", values: []Value{Number(1), Number(2)}, expected: TypeNumeric},
		{name: "numeric with missing", values: []Value{Number(1), Missing()}, expected: TypeNumeric},
		{name: "all dates", values: []Value{Date(day), Missing()}, expected: TypeDate},
		{name: "all text", values: []Value{Text("a"), Text("b")}, expected: TypeText},
		{name: "mixed numeric and text", values: []Value{Number(1), Text("a")}, expected: TypeText},
		{name: "mixed date and numeric", values: []Value{Date(day), Number(1)}, expected: TypeText},
		{name: "all missing", values: []Value{Missing(), Missing()}, expected: TypeText},
		{name: "empty column", values: []Value{}, expected: TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Dataset{Columns: []Column{{Name: "c", Values: tt.values}}}
			assert.Equal(t, tt.expected, InferTypes(d)["c"])
		})
	}
}

func TestColumnTypeString(t *testing.T) {
	assert.Equal(t, "numeric", TypeNumeric.String())
	assert.Equal(t, "date", TypeDate.String())
	assert.Equal(t, "text", TypeText.String())
}
