package cleaner

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dbsmedya/goclean/internal/dataset"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeName canonicalizes a single column label: trim, lowercase,
// strip characters that are neither alphanumeric nor whitespace, then
// collapse whitespace runs to a single underscore.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonWordPattern.ReplaceAllString(s, "")
	return whitespacePattern.ReplaceAllString(s, "_")
}

// NormalizeColumnNames returns a dataset with every column label
// canonicalized, columns kept in order. When two distinct labels
// normalize to the same string the result would carry duplicate names,
// so the collision is reported as a ConfigError naming every colliding
// label instead of being silently produced.
func NormalizeColumnNames(d *dataset.Dataset) (*dataset.Dataset, error) {
	normalized := make([]string, len(d.Columns))
	origins := make(map[string][]string)
	for i, c := range d.Columns {
		normalized[i] = NormalizeName(c.Name)
		origins[normalized[i]] = append(origins[normalized[i]], c.Name)
	}

	var collisions []string
	for name, from := range origins {
		if len(from) > 1 {
			collisions = append(collisions, fmt.Sprintf("%q <- %s", name, strings.Join(from, ", ")))
		}
	}
	if len(collisions) > 0 {
		sort.Strings(collisions)
		return nil, ConfigError{
			Field:   "columns",
			Message: "labels collide after normalization: " + strings.Join(collisions, "; "),
		}
	}

	out := d.Clone()
	if err := out.Rename(normalized); err != nil {
		return nil, fmt.Errorf("failed to rename columns: %w", err)
	}
	return out, nil
}
