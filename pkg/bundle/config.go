package bundle

import "io"

// Arguments holds the configuration options for one bundling run.
type Arguments struct {
	Patterns    []string // Include glob patterns; at least one is required.
	Excludes    []string // Exclude glob patterns supplied via -x/--exclude.
	ExcludeFrom string   // Optional file carrying extra exclude patterns, one per line.
	BaseDir     string   // Directory against which patterns are evaluated; "" means the current directory.
	Output      string   // Destination file for the Markdown document; "" means stdout.
	Quiet       bool     // If true, suppress the diagnostic file listing on the error stream.

	Stdout io.Writer // Markdown sink when Output is empty; defaults to os.Stdout.
	Stderr io.Writer // Diagnostic stream for the file listing; defaults to os.Stderr.
}
