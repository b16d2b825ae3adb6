// cmd/foldermerge/summary_test.go
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gagin/foldermerge/internal/merger"
)

func TestPrintSummary(t *testing.T) {
	result := merger.MergeResult{
		Merged: []merger.MergedFile{
			{RelativePath: "src/pkg/b.py", Size: 2048},
			{RelativePath: "src/a.py", Size: 10, HeaderPresent: true},
			{RelativePath: "docs/readme.md", Size: 8},
		},
		Failures: []*merger.FileReadError{
			{Path: "src/bad.py", Err: merger.ErrInvalidUTF8},
		},
	}
	files := []merger.FileEntry{
		{RelativePath: "src/a.py", Included: true},
		{RelativePath: "src/skip.py", Included: false},
	}

	var buf bytes.Buffer
	printSummary(&buf, "/work/project", "//", files, result)

	expected := `
--- Summary ---
Merged 3 files (2.0 KiB total) from 'project' with prefix "//":
project/
├── docs
│   └── readme.md (8 B)
└── src
    ├── a.py (10 B) [header kept]
    └── pkg
        └── b.py (2 KiB)

Skipped by choice (1):
- src/skip.py

Errors encountered (1):
- src/bad.py: ` + merger.ErrInvalidUTF8.Error() + `
---------------
`
	assert.Equal(t, expected, buf.String())
}

func TestPrintSummary_NothingMerged(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, "/work/project", "#", nil, merger.MergeResult{})
	assert.Equal(t, "\n--- Summary ---\nNo files merged.\n---------------\n", buf.String())
}

func TestNewPalette_NoColorForBuffers(t *testing.T) {
	p := newPalette(&bytes.Buffer{})
	assert.Equal(t, "plain", p.dir.Sprint("plain"))
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
