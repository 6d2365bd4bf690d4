package glob

import (
	"errors"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md":      {Data: []byte("readme\n")},
		"main.go":        {Data: []byte("package main\n")},
		"src/a.go":       {Data: []byte("package src\n")},
		"src/sub/b.go":   {Data: []byte("package sub\n")},
		"src/sub/c.txt":  {Data: []byte("text\n")},
		"docs/guide.md":  {Data: []byte("guide\n")},
		"docs/notes.txt": {Data: []byte("notes\n")},
	}
}

func expand(t *testing.T, pattern string) []string {
	t.Helper()
	got, err := NewFS(testFS()).Expand(pattern)
	if err != nil {
		t.Fatalf("Expand(%q) returned error: %v", pattern, err)
	}
	sort.Strings(got)
	return got
}

func TestExpandSingleStar(t *testing.T) {
	got := expand(t, "*.md")
	want := []string{"README.md"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand(*.md) mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandRecursive(t *testing.T) {
	got := expand(t, "**/*.go")
	want := []string{"main.go", "src/a.go", "src/sub/b.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand(**/*.go) mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandQuestionMark(t *testing.T) {
	got := expand(t, "src/?.go")
	want := []string{"src/a.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand(src/?.go) mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandCharacterClass(t *testing.T) {
	got := expand(t, "src/sub/[bc].*")
	want := []string{"src/sub/b.go", "src/sub/c.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand(src/sub/[bc].*) mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandSkipsDirectories(t *testing.T) {
	// "src" and "src/sub" match the pattern but are directories.
	got := expand(t, "**")
	for _, p := range got {
		if p == "src" || p == "src/sub" || p == "docs" || p == "." {
			t.Errorf("Expand(**) reported directory %q", p)
		}
	}
	if len(got) != 7 {
		t.Errorf("Expand(**) returned %d paths, want 7: %v", len(got), got)
	}
}

func TestExpandNoMatches(t *testing.T) {
	got := expand(t, "*.rs")
	if len(got) != 0 {
		t.Errorf("Expand(*.rs) = %v, want no matches", got)
	}
}

func TestExpandCaseSensitive(t *testing.T) {
	got := expand(t, "readme.md")
	if len(got) != 0 {
		t.Errorf("Expand(readme.md) = %v, want no matches (case-sensitive)", got)
	}
}

func TestExpandBadPattern(t *testing.T) {
	_, err := NewFS(testFS()).Expand("src/[")
	if err == nil {
		t.Fatal("Expand(src/[) should fail")
	}
	if !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("Expand(src/[) error = %v, want ErrBadPattern", err)
	}
}
