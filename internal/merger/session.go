// internal/merger/session.go
package merger

import (
	"log/slog"
	"path/filepath"

	"github.com/gagin/foldermerge/internal/prefs"
)

// Session ties a root directory to its catalog, the current selection and
// the derived file list. The file list is only rebuilt by Recompute.
// A Session is meant to be driven by one caller at a time.
type Session struct {
	store prefs.Store
	opts  WalkOptions
	prefs prefs.Preferences

	root      string
	catalog   Catalog
	selection *Selection
	files     []FileEntry
}

// NewSession loads preferences from store once.
func NewSession(store prefs.Store, opts WalkOptions) *Session {
	s := &Session{store: store, opts: opts}
	if store != nil {
		s.prefs = store.Load()
	}
	return s
}

// Preferences returns the preferences as currently held in memory.
func (s *Session) Preferences() prefs.Preferences { return s.prefs }

// Root returns the open root, or "" before the first successful Open.
func (s *Session) Root() string { return s.root }

// Open scans root and, on success, replaces the catalog, resets the
// selection and clears the file list. On failure nothing changes.
func (s *Session) Open(root string) error {
	catalog, err := Scan(root, s.opts)
	if err != nil {
		slog.Error("Scan failed, keeping previous folder.", "root", root, "previous", s.root, "error", err)
		return err
	}
	s.root = catalog.Root
	s.catalog = catalog
	s.selection = NewSelection(catalog)
	s.files = []FileEntry{}
	return nil
}

// ChangeRoot opens root and saves it as the last used folder. A scan error
// is returned as is. A save error is returned as *prefs.SaveError after the
// root has already changed.
func (s *Session) ChangeRoot(root string) error {
	if err := s.Open(root); err != nil {
		return err
	}
	s.prefs.LastRootPath = s.root
	return s.savePrefs()
}

// Restore opens the last used folder. It returns ErrNoRoot when none is
// remembered.
func (s *Session) Restore() error {
	if s.prefs.LastRootPath == "" {
		return ErrNoRoot
	}
	return s.Open(s.prefs.LastRootPath)
}

// Catalog returns the scanned folders and extensions with their current
// selection state.
func (s *Session) Catalog() Catalog {
	if s.selection == nil {
		return s.catalog
	}
	return Catalog{
		Root:       s.catalog.Root,
		Folders:    s.selection.Folders(),
		Extensions: s.selection.Extensions(),
	}
}

// SetFolderSelected forwards to the selection. Call Recompute afterwards.
func (s *Session) SetFolderSelected(name string, selected bool) bool {
	if s.selection == nil {
		return false
	}
	return s.selection.SetFolderSelected(name, selected)
}

// SetExtensionSelected forwards to the selection. Call Recompute afterwards.
func (s *Session) SetExtensionSelected(ext string, selected bool) bool {
	if s.selection == nil {
		return false
	}
	return s.selection.SetExtensionSelected(ext, selected)
}

func (s *Session) SelectedFolders() []string {
	if s.selection == nil {
		return nil
	}
	return s.selection.SelectedFolders()
}

func (s *Session) SelectedExtensions() []string {
	if s.selection == nil {
		return nil
	}
	return s.selection.SelectedExtensions()
}

// Recompute rebuilds the file list from the selection. Earlier per-file
// choices are dropped; every file starts included.
func (s *Session) Recompute() []FileEntry {
	if s.selection == nil {
		s.files = []FileEntry{}
		return s.Files()
	}
	s.files = ListFiles(s.root, s.selection.SelectedFolders(), s.selection.SelectedExtensions(), s.opts)
	slog.Debug("Recomputed file list.", "files", len(s.files))
	return s.Files()
}

// Files returns a copy of the current file list.
func (s *Session) Files() []FileEntry {
	return append([]FileEntry(nil), s.files...)
}

// SetFileIncluded includes or skips one file of the current list. The path
// may use either separator style. It reports whether the file was found.
func (s *Session) SetFileIncluded(relPath string, included bool) bool {
	relPath = filepath.ToSlash(filepath.Clean(relPath))
	for i := range s.files {
		if s.files[i].RelativePath == relPath {
			s.files[i].Included = included
			return true
		}
	}
	return false
}

// Merge merges the current file list.
func (s *Session) Merge(headerPrefix string) (MergeResult, error) {
	if s.root == "" {
		return MergeResult{}, ErrNoRoot
	}
	return Merge(s.files, headerPrefix), nil
}

// Close saves the preferences one last time.
func (s *Session) Close() error {
	return s.savePrefs()
}

func (s *Session) savePrefs() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(s.prefs); err != nil {
		slog.Warn("Could not save settings.", "error", err)
		return err
	}
	return nil
}
