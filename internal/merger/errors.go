// internal/merger/errors.go
package merger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUTF8 is wrapped by FileReadError when a file is not UTF-8 text.
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
	// ErrNoRoot is returned when an operation needs an open root directory.
	ErrNoRoot = errors.New("no root directory open")
)

// ScanError reports a root directory that could not be read at scan time.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot read folder %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// FileReadError reports a selected file that could not be read or decoded
// during a merge. The merge skips the file and carries on.
type FileReadError struct {
	Path    string // Relative to the root, slash separated
	AbsPath string
	Err     error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }
