// internal/merger/lister.go
package merger

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// FileEntry is one file matching the current selection.
type FileEntry struct {
	AbsolutePath string
	RelativePath string // Relative to the root, always slash separated
	Included     bool
}

// ListFiles walks every selected folder below root and returns the files
// whose extension is selected, all included. Results are grouped by folder
// in name order, then sorted by relative path, so the same tree and the
// same selection always give the same list. No folders or no extensions
// gives an empty list.
func ListFiles(root string, folders, extensions []string, opts WalkOptions) []FileEntry {
	if len(folders) == 0 || len(extensions) == 0 {
		return []FileEntry{}
	}

	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[ext] = struct{}{}
	}

	folderSet := make(map[string]struct{}, len(folders))
	orderedFolders := make([]string, 0, len(folders))
	for _, name := range folders {
		if _, dup := folderSet[name]; dup {
			continue
		}
		folderSet[name] = struct{}{}
		orderedFolders = append(orderedFolders, name)
	}
	sort.Strings(orderedFolders)

	files := make([]FileEntry, 0)
	for _, folder := range orderedFolders {
		if folder == "" || folder == "." || folder == ".." || strings.ContainsAny(folder, `/\`) {
			slog.Warn("Ignoring folder name that is not a direct child of the root.", "folder", folder)
			continue
		}

		dir := filepath.Join(root, folder)
		found := make([]FileEntry, 0)
		walkErr := walkFiles(root, dir, opts, func(absPath, relPath string) {
			if _, ok := extSet[Extension(relPath)]; !ok {
				return
			}
			found = append(found, FileEntry{AbsolutePath: absPath, RelativePath: relPath, Included: true})
		})
		if walkErr != nil {
			slog.Warn("Listing folder finished with errors.", "folder", folder, "error", walkErr)
		}

		sort.Slice(found, func(i, j int) bool { return found[i].RelativePath < found[j].RelativePath })
		slog.Debug("Listed folder.", "folder", folder, "matches", len(found))
		files = append(files, found...)
	}
	return files
}
