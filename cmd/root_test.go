package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandBundlesToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.go")
	if err := os.WriteFile(src, []byte("package hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.md")

	RootCmd.SetArgs([]string{"**/*.go", "-B", dir, "-o", out, "-q"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "# hello.go") {
		t.Errorf("missing heading in output:\n%s", got)
	}
	if !strings.Contains(got, "```go\npackage hello\n```") {
		t.Errorf("missing fenced content in output:\n%s", got)
	}
}

func TestRootCommandRequiresPattern(t *testing.T) {
	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	defer func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
	}()

	RootCmd.SetArgs([]string{"-q"})
	if err := RootCmd.Execute(); err == nil {
		t.Fatal("Execute without patterns should fail")
	}
}
