package cleaner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goclean/internal/dataset"
)

func mustDataset(t *testing.T, cols ...dataset.Column) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(cols...)
	require.NoError(t, err)
	return d
}

func numbers(xs ...float64) []dataset.Value {
	values := make([]dataset.Value, len(xs))
	for i, x := range xs {
		values[i] = dataset.Number(x)
	}
	return values
}

func texts(ss ...string) []dataset.Value {
	values := make([]dataset.Value, len(ss))
	for i, s := range ss {
		values[i] = dataset.Text(s)
	}
	return values
}

func floatsOf(t *testing.T, d *dataset.Dataset, name string) []float64 {
	t.Helper()
	c := d.Column(name)
	require.NotNil(t, c)
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		require.Equal(t, dataset.KindNumeric, v.Kind())
		out = append(out, v.Float())
	}
	return out
}

func stringsOf(t *testing.T, d *dataset.Dataset, name string) []string {
	t.Helper()
	c := d.Column(name)
	require.NotNil(t, c)
	out := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		out = append(out, v.String())
	}
	return out
}
