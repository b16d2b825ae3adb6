// internal/merger/walk.go
package merger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	gocodewalker "github.com/boyter/gocodewalker"
)

// WalkOptions controls which files the recursive walks see.
type WalkOptions struct {
	UseGitignore  bool      // Honour .gitignore and .ignore files found in the tree
	IncludeHidden bool      // Visit dot-files and dot-directories
	Excluder      *Excluder // Extra gitignore-style patterns, relative to the root
}

// DefaultWalkOptions visits every file, hidden or not, and ignores
// .gitignore files.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{IncludeHidden: true}
}

// Extension returns the suffix of the file name starting at its last dot,
// dot included. Names without a dot have no extension.
func Extension(name string) string {
	return filepath.Ext(filepath.Base(name))
}

// walkFiles visits every regular file below dir. visit receives the absolute
// path and the slash-separated path relative to root. Visit order is not
// defined; callers sort what they collect. Errors on individual entries are
// logged and skipped; the first one is returned after the walk finishes.
func walkFiles(root, dir string, opts WalkOptions, visit func(absPath, relPath string)) error {
	dirInfo, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	fileListQueue := make(chan *gocodewalker.File, 100)
	fileWalker := gocodewalker.NewFileWalker(dir, fileListQueue)
	fileWalker.IgnoreGitIgnore = !opts.UseGitignore
	fileWalker.IgnoreIgnoreFile = !opts.UseGitignore
	fileWalker.IncludeHidden = opts.IncludeHidden

	var mu sync.Mutex
	var firstWalkError error
	fileWalker.SetErrorHandler(func(e error) bool {
		slog.Warn("Error reported by file walker.", "dir", dir, "error", e)
		mu.Lock()
		if firstWalkError == nil {
			firstWalkError = e
		}
		mu.Unlock()
		return true
	})

	var walkErr error
	processingDone := make(chan struct{})
	go func() {
		defer close(processingDone)
		walkErr = fileWalker.Start()
	}()

	for f := range fileListQueue {
		relPath, errRel := filepath.Rel(root, f.Location)
		if errRel != nil {
			slog.Warn("Could not determine relative path, skipping.", "root", root, "path", f.Location, "error", errRel)
			continue
		}
		relPath = filepath.ToSlash(relPath)

		// Symlinked directories come through as files.
		fileInfo, statErr := os.Stat(f.Location)
		if statErr == nil && fileInfo.IsDir() {
			slog.Debug("Walk: skipping directory entry.", "path", relPath)
			continue
		}
		if opts.Excluder.excludedByAncestor(relPath) {
			slog.Debug("Walk: skipping excluded path.", "path", relPath)
			continue
		}
		visit(f.Location, relPath)
	}
	<-processingDone

	if walkErr != nil {
		return fmt.Errorf("walk %s: %w", dir, walkErr)
	}
	mu.Lock()
	defer mu.Unlock()
	if firstWalkError != nil {
		return fmt.Errorf("walk %s: %w", dir, firstWalkError)
	}
	return nil
}
