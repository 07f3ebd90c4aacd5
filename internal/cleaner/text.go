package cleaner

import (
	"strings"

	"github.com/dbsmedya/goclean/internal/dataset"
)

// NormalizeText trims leading and trailing whitespace from every present
// text value in the targeted columns. A nil target list means every
// column classified as text. Missing cells and non-text columns are left
// untouched; unknown column names are ignored.
func NormalizeText(d *dataset.Dataset, columns []string) *dataset.Dataset {
	types := dataset.InferTypes(d)
	if columns == nil {
		for _, c := range d.Columns {
			if types[c.Name] == dataset.TypeText {
				columns = append(columns, c.Name)
			}
		}
	}

	out := d.Clone()
	for _, name := range columns {
		c := out.Column(name)
		if c == nil || types[name] != dataset.TypeText {
			continue
		}
		for j, v := range c.Values {
			if v.Kind() == dataset.KindText {
				c.Values[j] = dataset.Text(strings.TrimSpace(v.Str()))
			}
		}
	}
	return out
}
