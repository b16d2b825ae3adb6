// internal/merger/exclusion.go
package merger

import (
	"log/slog"
	"strings"

	gitignorelib "github.com/sabhiram/go-gitignore"
)

// Excluder hides paths matching gitignore-style patterns from scanning and
// listing. A nil *Excluder excludes nothing.
type Excluder struct {
	patterns []string
	matcher  *gitignorelib.GitIgnore
}

// NewExcluder compiles the given patterns. Blank lines and comments are
// dropped; it returns nil when nothing is left.
func NewExcluder(patterns []string) *Excluder {
	kept := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil
	}
	slog.Debug("Compiled exclude patterns.", "patterns", kept)
	return &Excluder{
		patterns: kept,
		matcher:  gitignorelib.CompileIgnoreLines(kept...),
	}
}

// Patterns returns the compiled pattern lines.
func (e *Excluder) Patterns() []string {
	if e == nil {
		return nil
	}
	return append([]string(nil), e.patterns...)
}

// Excludes reports whether relPath (relative to the root, slash separated)
// is hidden. Directories are also tested with a trailing slash so that
// patterns like "build/" match the directory itself.
func (e *Excluder) Excludes(relPath string, isDir bool) bool {
	if e == nil || relPath == "" || relPath == "." {
		return false
	}
	if e.matcher.MatchesPath(relPath) {
		return true
	}
	return isDir && e.matcher.MatchesPath(strings.TrimSuffix(relPath, "/")+"/")
}

// excludedByAncestor reports whether relPath or any of its parent
// directories is hidden.
func (e *Excluder) excludedByAncestor(relPath string) bool {
	if e == nil {
		return false
	}
	parts := strings.Split(relPath, "/")
	for i := 1; i < len(parts); i++ {
		if e.Excludes(strings.Join(parts[:i], "/"), true) {
			return true
		}
	}
	return e.Excludes(relPath, false)
}
