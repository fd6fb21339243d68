package browse

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExcludeFilter hides entries whose base name matches one of its patterns.
// Excluded entries never take a slot in the enumeration count, so offsets
// stay consistent from one page to the next.
type ExcludeFilter struct {
	patterns []string
}

// NewExcludeFilter builds a filter from doublestar patterns. Matching is case
// insensitive.
func NewExcludeFilter(patterns []string) *ExcludeFilter {
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		normalized = append(normalized, strings.ToLower(p))
	}
	return &ExcludeFilter{patterns: normalized}
}

func (f *ExcludeFilter) Excludes(name string) bool {
	if f == nil || len(f.patterns) == 0 {
		return false
	}
	name = strings.ToLower(name)
	for _, p := range f.patterns {
		matched, err := doublestar.Match(p, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}
