// internal/merger/walk_test.go
package merger

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectWalk(t *testing.T, root string, opts WalkOptions) []string {
	t.Helper()
	var visited []string
	err := walkFiles(root, root, opts, func(_, relPath string) {
		visited = append(visited, relPath)
	})
	require.NoError(t, err)
	sort.Strings(visited)
	return visited
}

func TestExtension(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Simple", input: "a.py", expected: ".py"},
		{name: "Last dot wins", input: "archive.tar.gz", expected: ".gz"},
		{name: "No dot", input: "Makefile", expected: ""},
		{name: "Dot file", input: ".env", expected: ".env"},
		{name: "Trailing dot", input: "odd.", expected: "."},
		{name: "Dot in directory only", input: "pkg.v2/README", expected: ""},
		{name: "Case kept", input: "src/Main.PY", expected: ".PY"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Extension(tc.input))
		})
	}
}

func TestWalkFiles_GitignoreToggle(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		".gitignore":        "*.out\nignored_dir/\n",
		"a.txt":             "a",
		"b.out":             "b",
		"ignored_dir/c.txt": "c",
		"sub/d.txt":         "d",
	})

	all := collectWalk(t, root, DefaultWalkOptions())
	assert.Contains(t, all, "a.txt")
	assert.Contains(t, all, "b.out")
	assert.Contains(t, all, "ignored_dir/c.txt")
	assert.Contains(t, all, "sub/d.txt")

	opts := DefaultWalkOptions()
	opts.UseGitignore = true
	filtered := collectWalk(t, root, opts)
	assert.Contains(t, filtered, "a.txt")
	assert.Contains(t, filtered, "sub/d.txt")
	assert.NotContains(t, filtered, "b.out")
	assert.NotContains(t, filtered, "ignored_dir/c.txt")
}

func TestWalkFiles_HiddenToggle(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"visible.txt":      "v",
		".secret/key.pem":  "k",
		"sub/.env":         "e",
		"sub/settings.ini": "s",
	})

	assert.Equal(t,
		[]string{".secret/key.pem", "sub/.env", "sub/settings.ini", "visible.txt"},
		collectWalk(t, root, DefaultWalkOptions()))

	assert.Equal(t,
		[]string{"sub/settings.ini", "visible.txt"},
		collectWalk(t, root, WalkOptions{IncludeHidden: false}))
}

func TestWalkFiles_ExcludePatterns(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"keep.go":         "package keep",
		"debug.log":       "log",
		"build/out.go":    "package build",
		"nested/build.go": "package nested",
	})

	opts := DefaultWalkOptions()
	opts.Excluder = NewExcluder([]string{"*.log", "build/", "# comment", ""})
	assert.Equal(t, []string{"keep.go", "nested/build.go"}, collectWalk(t, root, opts))
}

func TestWalkFiles_MissingDir(t *testing.T) {
	root := t.TempDir()
	err := walkFiles(root, filepath.Join(root, "missing"), DefaultWalkOptions(), func(string, string) {
		t.Fatal("visit must not be called")
	})
	assert.Error(t, err)
}

func TestNewExcluder_Empty(t *testing.T) {
	assert.Nil(t, NewExcluder(nil))
	assert.Nil(t, NewExcluder([]string{"", "  ", "# only a comment"}))

	var e *Excluder
	assert.False(t, e.Excludes("anything", false))
	assert.Nil(t, e.Patterns())
}
