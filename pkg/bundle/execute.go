package bundle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mdbundle/pkg/glob"

	"go.uber.org/zap"
)

// Execute runs the whole pipeline: expand include patterns beneath the
// base directory, subtract exclude matches, sort by basename, and render
// one Markdown section per file to the configured sink. The run is a
// single sequential pass; a sink failure aborts it, while unreadable or
// binary files are skipped with a warning.
func Execute(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	var stdout io.Writer = os.Stdout
	if args.Stdout != nil {
		stdout = args.Stdout
	}
	var stderr io.Writer = os.Stderr
	if args.Stderr != nil {
		stderr = args.Stderr
	}

	if len(args.Patterns) == 0 {
		return &UsageError{Msg: "at least one include pattern is required"}
	}

	baseDir := args.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return &ConfigError{Msg: "cannot resolve base directory " + baseDir, Err: err}
	}
	info, err := os.Stat(absBase)
	if err != nil {
		return &ConfigError{Msg: "base directory " + baseDir + " does not exist", Err: err}
	}
	if !info.IsDir() {
		return &ConfigError{Msg: "base directory " + baseDir + " is not a directory"}
	}

	logger.Debug("Starting bundle",
		zap.String("baseDir", absBase),
		zap.Strings("patterns", args.Patterns))

	fsys := os.DirFS(absBase)
	exp := glob.NewFS(fsys)

	include, err := ResolveSet(exp, args.Patterns, logger)
	if err != nil {
		return err
	}

	excludePatterns := append([]string(nil), args.Excludes...)
	if args.ExcludeFrom != "" {
		extra, err := LoadExcludeFile(args.ExcludeFrom, logger)
		if err != nil {
			return err
		}
		excludePatterns = append(excludePatterns, extra...)
	}
	exclude, err := ResolveSet(exp, excludePatterns, logger)
	if err != nil {
		return err
	}

	selection := Subtract(include, exclude)
	SortSelection(selection)
	logger.Debug("Resolved selection",
		zap.Int("included", len(include)),
		zap.Int("excluded", len(include)-len(selection)),
		zap.Int("selected", len(selection)))

	// The listing goes to the diagnostic stream so piped Markdown on
	// stdout stays clean.
	if !args.Quiet {
		for _, p := range selection {
			fmt.Fprintf(stderr, "Adding %s\n", p)
		}
	}

	out := stdout
	sinkName := "stdout"
	var outFile *os.File
	if args.Output != "" {
		f, err := os.Create(args.Output)
		if err != nil {
			return &SinkError{Path: args.Output, Err: err}
		}
		outFile = f
		out = f
		sinkName = args.Output
	}

	writer := bufio.NewWriter(out)
	rendered := 0
	for _, p := range selection {
		content, ok := ReadFileContent(fsys, p, logger)
		if !ok {
			continue
		}
		if rendered > 0 {
			if err := writer.WriteByte('\n'); err != nil {
				return sinkFail(outFile, sinkName, err)
			}
		}
		if err := WriteSection(writer, p, content); err != nil {
			return sinkFail(outFile, sinkName, err)
		}
		rendered++
	}
	if err := writer.Flush(); err != nil {
		return sinkFail(outFile, sinkName, err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return &SinkError{Path: sinkName, Err: err}
		}
	}

	logger.Info("Bundle complete",
		zap.String("output", sinkName),
		zap.Int("files", rendered))
	return nil
}

// sinkFail closes the output file, if any, and wraps the write error.
func sinkFail(f *os.File, name string, err error) error {
	if f != nil {
		_ = f.Close()
	}
	return &SinkError{Path: name, Err: err}
}
