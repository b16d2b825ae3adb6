// cmd/foldermerge/selection.go
package main

import (
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/gagin/foldermerge/internal/merger"
)

// selectionOptions stand in for the folder, extension and file checkboxes.
type selectionOptions struct {
	folders       []string
	extensions    []string
	allFolders    bool
	allExtensions bool
	skip          []string
}

func (o *selectionOptions) register(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&o.folders, "folders", "F", []string{}, "Comma-separated top-level folders to select.")
	flags.StringSliceVarP(&o.extensions, "extensions", "e", []string{}, "Comma-separated extensions to select (e.g. py,.txt).")
	flags.BoolVar(&o.allFolders, "all-folders", false, "Select every top-level folder.")
	flags.BoolVar(&o.allExtensions, "all-extensions", false, "Select every extension found.")
	flags.StringSliceVarP(&o.skip, "skip", "s", []string{}, "Comma-separated relative file paths to leave out after listing.")
}

// applySelection checks the requested folders and extensions, recomputes
// the file list once, then unchecks skipped files.
func applySelection(s *merger.Session, o selectionOptions) []merger.FileEntry {
	catalog := s.Catalog()

	folders := splitList(o.folders)
	if o.allFolders {
		folders = catalog.FolderNames()
	}
	for _, name := range folders {
		if !s.SetFolderSelected(name, true) {
			slog.Warn("Folder not found under root, ignoring.", "folder", name, "root", catalog.Root)
		}
	}

	exts := normalizeExtensions(o.extensions)
	if o.allExtensions {
		exts = catalog.ExtensionNames()
	}
	for _, ext := range exts {
		if !s.SetExtensionSelected(ext, true) {
			slog.Warn("Extension not found under root, ignoring.", "extension", ext, "root", catalog.Root)
		}
	}

	s.Recompute()

	for _, relPath := range splitList(o.skip) {
		if !s.SetFileIncluded(relPath, false) {
			slog.Warn("File to skip is not in the list, ignoring.", "path", relPath)
		}
	}

	files := s.Files()
	slog.Info("File list ready.",
		"folders", s.SelectedFolders(),
		"extensions", s.SelectedExtensions(),
		"files", len(files))
	return files
}
