package cmd

import (
	"mdbundle/pkg/bundle"
	"mdbundle/pkg/logging"
	"mdbundle/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	args   bundle.Arguments
	debug  bool
)

// RootCmd is the base command; it performs the bundling itself.
var RootCmd = &cobra.Command{
	Use:   "mdbundle PATTERN...",
	Short: "Bundle repository files into one Markdown document",
	Long: `mdbundle expands one or more shell-style glob patterns beneath a base
directory, drops matches of the exclude patterns, sorts the remaining files
by basename, and concatenates them into a single Markdown document with a
heading and a language-tagged code fence per file.

Wrap patterns in quotes so your shell does not expand them first:

  mdbundle "src/**/*.rs" README.md -o repo.md
  mdbundle "**/*.go" -B ~/projects/gizmo -x "**/*_test.go" > bundle.md`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, argv []string) error {
		var err error
		logger, err = logging.Setup(debug, "mdbundle", version.Version)
		return err
	},
	RunE: func(cmd *cobra.Command, argv []string) error {
		args.Patterns = argv
		return bundle.Execute(args, logger)
	},
}

func init() {
	flags := RootCmd.Flags()
	flags.StringArrayVarP(&args.Excludes, "exclude", "x", nil,
		"glob patterns to remove after inclusion (repeatable)")
	flags.StringVar(&args.ExcludeFrom, "exclude-from", "",
		"file with extra exclude patterns, one per line")
	flags.StringVarP(&args.BaseDir, "base-dir", "B", ".",
		"directory against which patterns are evaluated")
	flags.StringVarP(&args.Output, "output", "o", "",
		"write the Markdown document to FILE instead of stdout")
	flags.BoolVarP(&args.Quiet, "quiet", "q", false,
		"suppress the file listing on stderr")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging")
}

// Execute runs the root command and returns its error; the caller decides
// the exit status.
func Execute() error {
	return RootCmd.Execute()
}

// Logger returns the logger built for this invocation, or nil when flag
// parsing failed before logger setup.
func Logger() *zap.Logger {
	return logger
}
