// internal/prefs/prefs.go

// Package prefs persists the settings that survive between runs.
package prefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const folderPathKey = "folder_path"

// Preferences are the values remembered across runs.
type Preferences struct {
	LastRootPath string
}

// Store loads and saves Preferences. Load never fails: a missing or corrupt
// store gives empty defaults. Save replaces the whole store or leaves it
// untouched.
type Store interface {
	Load() Preferences
	Save(Preferences) error
}

// LoadError describes why a store could not be read. It never reaches the
// user; FileStore logs it and falls back to defaults.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load settings %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// SaveError describes a failed write. Callers warn and carry on.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string { return fmt.Sprintf("save settings %s: %v", e.Path, e.Err) }
func (e *SaveError) Unwrap() error { return e.Err }

// DefaultPath returns <user config dir>/foldermerge/settings.json.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(configDir, "foldermerge", "settings.json"), nil
}

// FileStore keeps Preferences in a human-editable JSON object such as
// {"folder_path": "/home/me/project"}. Keys it does not know are kept as
// they were found.
type FileStore struct {
	path  string
	extra map[string]json.RawMessage
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Load reads the file. Any problem is logged at debug level and yields
// empty Preferences.
func (s *FileStore) Load() Preferences {
	p, err := s.load()
	if err != nil {
		slog.Debug("Using default settings.", "reason", err)
		return Preferences{}
	}
	return p
}

func (s *FileStore) load() (Preferences, error) {
	s.extra = nil
	content, err := os.ReadFile(s.path)
	if err != nil {
		return Preferences{}, &LoadError{Path: s.path, Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return Preferences{}, &LoadError{Path: s.path, Err: err}
	}
	if raw == nil {
		return Preferences{}, &LoadError{Path: s.path, Err: errors.New("settings are not a JSON object")}
	}

	var p Preferences
	if value, ok := raw[folderPathKey]; ok {
		if err := json.Unmarshal(value, &p.LastRootPath); err != nil {
			return Preferences{}, &LoadError{Path: s.path, Err: fmt.Errorf("%s: %w", folderPathKey, err)}
		}
	}
	delete(raw, folderPathKey)
	s.extra = raw
	slog.Debug("Loaded settings.", "path", s.path, "folder_path", p.LastRootPath)
	return p, nil
}

// Save writes the whole file through a temporary file in the same
// directory and renames it into place.
func (s *FileStore) Save(p Preferences) error {
	doc := make(map[string]any, len(s.extra)+1)
	for k, v := range s.extra {
		doc[k] = v
	}
	doc[folderPathKey] = p.LastRootPath

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	if err := writeFileAtomic(s.path, buf.Bytes()); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	slog.Debug("Saved settings.", "path", s.path, "folder_path", p.LastRootPath)
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// MemoryStore keeps Preferences in memory. SaveErr, when set, is returned
// by every Save.
type MemoryStore struct {
	Prefs   Preferences
	SaveErr error
	Saves   int
}

func (m *MemoryStore) Load() Preferences { return m.Prefs }

func (m *MemoryStore) Save(p Preferences) error {
	m.Saves++
	if m.SaveErr != nil {
		return &SaveError{Path: "memory", Err: m.SaveErr}
	}
	m.Prefs = p
	return nil
}
