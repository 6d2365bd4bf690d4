package main

import (
	"log"
	"mdbundle/cmd"
	"os"
	"strings"

	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()

	// Flush buffered log entries. Zap's Sync reports "invalid argument"
	// when stderr is a terminal on some platforms, so only surface sync
	// failures for real files and pipes.
	if logger := cmd.Logger(); logger != nil {
		if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
			if syncErr := logger.Sync(); syncErr != nil {
				if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
					log.Printf("Logger sync failed: %v", syncErr)
				}
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
