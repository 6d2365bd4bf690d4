package bundle

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"mdbundle/pkg/glob"

	"go.uber.org/zap"
)

// ResolveSet expands every pattern through exp and unions the matches into
// a set of base-relative paths. A pattern matching nothing contributes
// nothing; a malformed pattern fails the run.
func ResolveSet(exp glob.Expander, patterns []string, logger *zap.Logger) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := exp.Expand(normalizePattern(pattern))
		if err != nil {
			return nil, &UsageError{Msg: fmt.Sprintf("invalid pattern %q", pattern), Err: err}
		}
		logger.Debug("Expanded pattern",
			zap.String("pattern", pattern),
			zap.Int("matches", len(matches)))
		for _, m := range matches {
			set[m] = struct{}{}
		}
	}
	return set, nil
}

// normalizePattern widens a pattern without a path separator to match at
// any depth, so "*.txt" removes text files in subdirectories too. A "**"
// segment matches zero directories, so top-level files still match.
func normalizePattern(pattern string) string {
	if !strings.Contains(pattern, "/") {
		return "**/" + pattern
	}
	return pattern
}

// Subtract returns the members of include that are not in exclude. The
// result depends only on set membership, never on pattern order.
func Subtract(include, exclude map[string]struct{}) []string {
	selection := make([]string, 0, len(include))
	for p := range include {
		if _, excluded := exclude[p]; !excluded {
			selection = append(selection, p)
		}
	}
	return selection
}

// SortSelection orders paths by basename, ordinal ascending and
// case-sensitive, with the full path as tie-break. The comparison is a
// strict total order over distinct paths, so sorting is idempotent.
func SortSelection(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		bi := path.Base(paths[i])
		bj := path.Base(paths[j])
		if bi != bj {
			return bi < bj
		}
		return paths[i] < paths[j]
	})
}
