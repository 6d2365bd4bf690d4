package bundle

import (
	"path"
	"strings"
)

// languageTags maps lowercased file extensions to Markdown fence language
// tags. Extensions absent from the table render a fence with no language
// hint. Extend by adding pairs; lookups never branch on content.
var languageTags = map[string]string{
	".c":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".css":   "css",
	".go":    "go",
	".h":     "c",
	".hpp":   "cpp",
	".html":  "html",
	".java":  "java",
	".js":    "javascript",
	".json":  "json",
	".jsx":   "jsx",
	".kt":    "kotlin",
	".md":    "markdown",
	".proto": "protobuf",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".sql":   "sql",
	".toml":  "toml",
	".ts":    "typescript",
	".tsx":   "tsx",
	".xml":   "xml",
	".yaml":  "yaml",
	".yml":   "yaml",
}

// LanguageTag returns the Markdown fence tag for relPath's extension,
// or the empty string when the extension is unknown or absent.
func LanguageTag(relPath string) string {
	return languageTags[strings.ToLower(path.Ext(relPath))]
}
