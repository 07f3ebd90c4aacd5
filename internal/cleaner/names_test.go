package cleaner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goclean/internal/dataset"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "padded and spaced", input: " First Name ", expected: "first_name"},
		{name: "hyphen stripped", input: "Last-Name", expected: "lastname"},
		{name: "already normal", input: "email", expected: "email"},
		{name: "uppercase", input: "AGE", expected: "age"},
		{name: "punctuation stripped", input: "Purchase Amount ($)", expected: "purchase_amount"},
		{name: "inner runs collapse", input: "a   b\tc", expected: "a_b_c"},
		{name: "digits kept", input: "Col 2", expected: "col_2"},
		{name: "only punctuation", input: "$$$", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeColumnNames(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: " First Name ", Values: texts("a")},
		dataset.Column{Name: "Last-Name", Values: texts("b")},
		dataset.Column{Name: "AGE", Values: numbers(30)},
	)

	out, err := NormalizeColumnNames(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"first_name", "lastname", "age"}, out.Names())
	// Only the labels change.
	assert.True(t, out.Columns[0].Values[0].Equal(dataset.Text("a")))
	// The input dataset keeps its original labels.
	assert.Equal(t, " First Name ", d.Columns[0].Name)
}

func TestNormalizeColumnNames_Collision(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "Total", Values: numbers(1)},
		dataset.Column{Name: " total ", Values: numbers(2)},
	)

	_, err := NormalizeColumnNames(d)
	require.Error(t, err)

	var cfgErr ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "columns", cfgErr.Field)
	assert.Contains(t, cfgErr.Message, "Total")
	assert.Contains(t, cfgErr.Message, " total ")
}
