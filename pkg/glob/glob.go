// Package glob abstracts shell-style pattern expansion behind a narrow
// interface so callers stay pure with respect to the filesystem and can be
// tested against an in-memory fs.FS.
package glob

import (
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
)

// Expander expands one glob pattern into the file paths it matches beneath
// a fixed root. Supported syntax: '*', '**', '?', and character classes.
// A pattern that matches nothing yields an empty slice, not an error.
type Expander interface {
	Expand(pattern string) ([]string, error)
}

type fsExpander struct {
	fsys fs.FS
}

// NewFS returns an Expander rooted at fsys. Matching is case-sensitive and
// returned paths are slash-separated and relative to the root. Directories
// matched by a pattern are skipped; only regular files are reported.
func NewFS(fsys fs.FS) Expander {
	return fsExpander{fsys: fsys}
}

func (e fsExpander) Expand(pattern string) ([]string, error) {
	return doublestar.Glob(e.fsys, pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithNoFollow(),
	)
}
