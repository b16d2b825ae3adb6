// internal/merger/catalog.go
package merger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FolderEntry is an immediate subdirectory of the root.
type FolderEntry struct {
	Name     string
	Selected bool
}

// ExtensionEntry is a distinct file extension found under the root,
// leading dot included.
type ExtensionEntry struct {
	Ext      string
	Selected bool
}

// Catalog is the result of scanning a root directory.
type Catalog struct {
	Root       string
	Folders    []FolderEntry    // Sorted by name
	Extensions []ExtensionEntry // Sorted ascending, no duplicates
}

// FolderNames returns the folder names in catalog order.
func (c Catalog) FolderNames() []string {
	names := make([]string, len(c.Folders))
	for i, f := range c.Folders {
		names[i] = f.Name
	}
	return names
}

// ExtensionNames returns the extensions in catalog order.
func (c Catalog) ExtensionNames() []string {
	exts := make([]string, len(c.Extensions))
	for i, e := range c.Extensions {
		exts[i] = e.Ext
	}
	return exts
}

// Scan lists the immediate subdirectories of root and the distinct
// extensions of every file below it. Everything starts unselected.
// An unreadable root yields a *ScanError; problems deeper in the tree are
// logged and skipped.
func Scan(root string, opts WalkOptions) (Catalog, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Catalog{}, &ScanError{Path: root, Err: err}
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return Catalog{}, &ScanError{Path: absRoot, Err: err}
	}

	catalog := Catalog{Root: absRoot}
	for _, entry := range entries {
		name := entry.Name()
		if !isDirEntry(absRoot, entry) {
			continue
		}
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if opts.Excluder.Excludes(name, true) {
			slog.Debug("Scan: folder excluded by pattern.", "folder", name)
			continue
		}
		catalog.Folders = append(catalog.Folders, FolderEntry{Name: name})
	}

	exts := make(map[string]struct{})
	walkErr := walkFiles(absRoot, absRoot, opts, func(_, relPath string) {
		if ext := Extension(relPath); ext != "" {
			exts[ext] = struct{}{}
		}
	})
	if walkErr != nil {
		slog.Warn("Extension discovery finished with errors.", "root", absRoot, "error", walkErr)
	}

	sorted := make([]string, 0, len(exts))
	for ext := range exts {
		sorted = append(sorted, ext)
	}
	sort.Strings(sorted)
	for _, ext := range sorted {
		catalog.Extensions = append(catalog.Extensions, ExtensionEntry{Ext: ext})
	}

	slog.Info("Scanned folder.", "root", absRoot, "folders", len(catalog.Folders), "extensions", len(catalog.Extensions))
	return catalog, nil
}

// isDirEntry follows symlinks, so a link to a directory counts as a folder.
func isDirEntry(root string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}
