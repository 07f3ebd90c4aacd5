package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/goclean/internal/dataset"
)

func TestNormalizeText_AllTextColumns(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "name", Values: texts("  Bob  ", "\tAlice\n", "Carol")},
		dataset.Column{Name: "age", Values: numbers(30, 25, 40)},
	)

	out := NormalizeText(d, nil)
	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, stringsOf(t, out, "name"))
	// Numeric columns pass through.
	assert.Equal(t, []float64{30, 25, 40}, floatsOf(t, out, "age"))
	// Input untouched.
	assert.Equal(t, "  Bob  ", d.Column("name").Values[0].Str())
}

func TestNormalizeText_TargetedColumns(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "a", Values: texts(" x ")},
		dataset.Column{Name: "b", Values: texts(" y ")},
	)

	out := NormalizeText(d, []string{"a"})
	assert.Equal(t, "x", out.Column("a").Values[0].Str())
	assert.Equal(t, " y ", out.Column("b").Values[0].Str())
}

func TestNormalizeText_IgnoresUnknownAndNonText(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "n", Values: numbers(1, 2)},
	)

	out := NormalizeText(d, []string{"n", "ghost"})
	assert.Equal(t, []float64{1, 2}, floatsOf(t, out, "n"))
}

func TestNormalizeText_MissingStaysMissing(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "c", Values: []dataset.Value{dataset.Text(" x "), dataset.Missing()}},
	)

	out := NormalizeText(d, nil)
	assert.True(t, out.Column("c").Values[1].IsMissing())
}

func TestNormalizeText_WhitespaceOnlyBecomesEmptyText(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "c", Values: texts("   ")},
	)

	out := NormalizeText(d, nil)
	v := out.Column("c").Values[0]
	assert.Equal(t, dataset.KindText, v.Kind())
	assert.Equal(t, "", v.Str())
}
