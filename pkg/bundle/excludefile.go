package bundle

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadExcludeFile reads extra exclude patterns from a file, one per line.
// Blank lines and lines starting with '#' are skipped. The patterns feed
// the same glob expansion as -x/--exclude arguments.
func LoadExcludeFile(path string, logger *zap.Logger) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Msg: "cannot read exclude-pattern file " + path, Err: err}
	}

	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, trimmed)
	}

	logger.Debug("Loaded exclude-pattern file",
		zap.String("file", path),
		zap.Int("patterns", len(patterns)))
	return patterns, nil
}
