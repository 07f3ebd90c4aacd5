package cleaner

import (
	"github.com/dbsmedya/goclean/internal/dataset"
)

// KeepPolicy selects which of a group of duplicate rows survives.
type KeepPolicy string

const (
	// KeepFirst retains the first occurrence of each duplicate group.
	KeepFirst KeepPolicy = "first"
	// KeepLast retains the last occurrence of each duplicate group.
	KeepLast KeepPolicy = "last"
	// KeepNone drops every row that has any duplicate.
	KeepNone KeepPolicy = "none"
)

// RemoveDuplicates removes duplicate rows under the given identity
// subset (nil or empty means all columns). Two rows are duplicates iff
// every value in the subset compares equal, with missing equal to
// missing. Surviving rows keep their encountered order. Returns the
// deduplicated dataset and the number of rows removed.
func RemoveDuplicates(d *dataset.Dataset, subset []string, keep KeepPolicy) (*dataset.Dataset, int, error) {
	switch keep {
	case KeepFirst, KeepLast, KeepNone:
	default:
		return nil, 0, ConfigError{Field: "keep", Message: "must be 'first', 'last', or 'none'"}
	}

	cols, err := identityColumns(d, subset)
	if err != nil {
		return nil, 0, err
	}

	n := d.NumRows()
	keys := make([]string, n)
	counts := make(map[string]int, n)
	for i := 0; i < n; i++ {
		keys[i] = d.RowKey(i, cols)
		counts[keys[i]]++
	}

	var keepRows []int
	switch keep {
	case KeepFirst:
		seen := make(map[string]bool, len(counts))
		for i := 0; i < n; i++ {
			if !seen[keys[i]] {
				seen[keys[i]] = true
				keepRows = append(keepRows, i)
			}
		}
	case KeepLast:
		last := make(map[string]int, len(counts))
		for i := 0; i < n; i++ {
			last[keys[i]] = i
		}
		for i := 0; i < n; i++ {
			if last[keys[i]] == i {
				keepRows = append(keepRows, i)
			}
		}
	case KeepNone:
		for i := 0; i < n; i++ {
			if counts[keys[i]] == 1 {
				keepRows = append(keepRows, i)
			}
		}
	}

	return d.SelectRows(keepRows), n - len(keepRows), nil
}

// identityColumns resolves an identity subset to column indices. A nil
// or empty subset means every column.
func identityColumns(d *dataset.Dataset, subset []string) ([]int, error) {
	if len(subset) == 0 {
		cols := make([]int, len(d.Columns))
		for i := range cols {
			cols[i] = i
		}
		return cols, nil
	}
	cols := make([]int, 0, len(subset))
	for _, name := range subset {
		i := d.Index(name)
		if i < 0 {
			return nil, ConfigError{Field: "subset", Message: "column " + name + " not found"}
		}
		cols = append(cols, i)
	}
	return cols, nil
}
