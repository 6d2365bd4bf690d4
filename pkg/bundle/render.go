package bundle

import (
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"
)

// ReadFileContent reads one selected file and applies the skip policy:
// a file that became unreadable after selection, or whose content sniffs
// as binary, is dropped with a warning and the run continues. The second
// return value reports whether the file should be rendered.
func ReadFileContent(fsys fs.FS, relPath string, logger *zap.Logger) ([]byte, bool) {
	content, err := fs.ReadFile(fsys, relPath)
	if err != nil {
		logger.Warn("Skipping unreadable file",
			zap.String("path", relPath),
			zap.Error(err))
		return nil, false
	}

	if isBinary(content) {
		logger.Warn("Skipping binary file", zap.String("path", relPath))
		return nil, false
	}

	return content, true
}

// WriteSection emits one Markdown section: a heading with the
// base-relative path, then the file content inside a code fence tagged by
// extension. Content without a trailing newline gets one so the closing
// fence sits on its own line.
func WriteSection(w io.Writer, relPath string, content []byte) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n```%s\n", relPath, LanguageTag(relPath)); err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "```\n")
	return err
}
