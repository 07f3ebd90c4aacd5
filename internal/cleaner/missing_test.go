package cleaner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goclean/internal/dataset"
)

func TestResolveMissing_AutoMedian(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "x", Values: []dataset.Value{
			dataset.Number(1), dataset.Number(2), dataset.Missing(), dataset.Number(4),
		}},
	)

	out, err := ResolveMissing(d, DefaultMissingOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 4}, floatsOf(t, out, "x"))
}

func TestResolveMissing_AutoMode(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "city", Values: []dataset.Value{
			dataset.Text("Oslo"), dataset.Text("Paris"), dataset.Text("Oslo"), dataset.Missing(),
		}},
	)

	out, err := ResolveMissing(d, DefaultMissingOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Oslo", "Paris", "Oslo", "Oslo"}, stringsOf(t, out, "city"))
}

func TestResolveMissing_AutoModeTieBreaksFirstEncountered(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "c", Values: []dataset.Value{
			dataset.Text("b"), dataset.Text("a"), dataset.Text("a"), dataset.Text("b"), dataset.Missing(),
		}},
	)

	out, err := ResolveMissing(d, DefaultMissingOptions())
	require.NoError(t, err)
	assert.Equal(t, "b", out.Column("c").Values[4].Str())
}

func TestResolveMissing_AutoDropsColumnOverThreshold(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "sparse", Values: []dataset.Value{
			dataset.Missing(), dataset.Missing(), dataset.Missing(), dataset.Number(1),
		}},
		dataset.Column{Name: "dense", Values: numbers(1, 2, 3, 4)},
	)

	out, err := ResolveMissing(d, DefaultMissingOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"dense"}, out.Names())
}

func TestResolveMissing_AutoThresholdIsStrict(t *testing.T) {
	// Exactly 50% missing is not beyond the default threshold.
	d := mustDataset(t,
		dataset.Column{Name: "x", Values: []dataset.Value{
			dataset.Number(2), dataset.Missing(), dataset.Number(4), dataset.Missing(),
		}},
	)

	out, err := ResolveMissing(d, DefaultMissingOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 3}, floatsOf(t, out, "x"))
}

func TestResolveMissing_AutoAllMissingColumn(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "empty", Values: []dataset.Value{dataset.Missing(), dataset.Missing()}},
	)

	out, err := ResolveMissing(d, MissingOptions{Strategy: StrategyAuto, Threshold: 1.0})
	require.NoError(t, err)
	assert.Equal(t, []string{"Unknown", "Unknown"}, stringsOf(t, out, "empty"))
}

func TestResolveMissing_AutoLeavesNoMissing(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "a", Values: []dataset.Value{dataset.Number(1), dataset.Missing(), dataset.Number(3)}},
		dataset.Column{Name: "b", Values: []dataset.Value{dataset.Missing(), dataset.Text("x"), dataset.Text("x")}},
	)

	out, err := ResolveMissing(d, DefaultMissingOptions())
	require.NoError(t, err)
	for _, c := range out.Columns {
		for _, v := range c.Values {
			assert.False(t, v.IsMissing(), "column %s still has missing values", c.Name)
		}
	}
}

func TestResolveMissing_DropRows(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "a", Values: []dataset.Value{dataset.Number(1), dataset.Missing(), dataset.Number(3)}},
		dataset.Column{Name: "b", Values: texts("x", "y", "z")},
	)

	out, err := ResolveMissing(d, MissingOptions{Strategy: StrategyDropRows})
	require.NoError(t, err)
	assert.Equal(t, 2, out.NumRows())
	assert.Equal(t, []string{"x", "z"}, stringsOf(t, out, "b"))
}

func TestResolveMissing_DropColumns(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "a", Values: []dataset.Value{dataset.Number(1), dataset.Missing()}},
		dataset.Column{Name: "b", Values: texts("x", "y")},
	)

	out, err := ResolveMissing(d, MissingOptions{Strategy: StrategyDropColumns})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, out.Names())
	assert.Equal(t, 2, out.NumRows())
}

func TestResolveMissing_Fill(t *testing.T) {
	fill := dataset.Text("n/a")
	d := mustDataset(t,
		dataset.Column{Name: "a", Values: []dataset.Value{dataset.Missing(), dataset.Text("x")}},
	)

	out, err := ResolveMissing(d, MissingOptions{Strategy: StrategyFill, FillValue: &fill})
	require.NoError(t, err)
	assert.Equal(t, []string{"n/a", "x"}, stringsOf(t, out, "a"))
}

func TestResolveMissing_FillWithoutValue(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "a", Values: []dataset.Value{dataset.Missing()}},
	)

	_, err := ResolveMissing(d, MissingOptions{Strategy: StrategyFill})
	require.Error(t, err)

	var cfgErr ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "fill_value", cfgErr.Field)
	// The input dataset is untouched.
	assert.True(t, d.Columns[0].Values[0].IsMissing())
}

func TestResolveMissing_UnknownStrategy(t *testing.T) {
	d := mustDataset(t,
		dataset.Column{Name: "a", Values: numbers(1)},
	)

	_, err := ResolveMissing(d, MissingOptions{Strategy: "sideways"})
	assert.Error(t, err)
}
