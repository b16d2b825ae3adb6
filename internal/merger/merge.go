// internal/merger/merge.go
package merger

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MergedFile describes one file that made it into the output.
type MergedFile struct {
	RelativePath  string
	Size          int64
	HeaderPresent bool // The file already started with its own header
}

// MergeResult is the output of Merge.
type MergeResult struct {
	Text     string
	Merged   []MergedFile
	Failures []*FileReadError
}

// Err joins every per-file failure, or returns nil.
func (r MergeResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Header returns the line written above a file in the merged output.
func Header(prefix, relPath string) string {
	return prefix + " " + relPath
}

// Merge concatenates the included entries in list order. Each file is
// preceded by its header and a blank line, unless its content, ignoring
// leading whitespace, already starts with that exact header. Files that
// cannot be read as UTF-8 are skipped and reported in Failures.
func Merge(entries []FileEntry, headerPrefix string) MergeResult {
	var result MergeResult
	var outputBuilder strings.Builder

	for _, entry := range entries {
		if !entry.Included {
			continue
		}

		content, err := readText(entry.AbsolutePath)
		if err != nil {
			slog.Warn("Error reading file content, skipping.", "path", entry.RelativePath, "error", err)
			result.Failures = append(result.Failures, &FileReadError{
				Path:    entry.RelativePath,
				AbsPath: entry.AbsolutePath,
				Err:     err,
			})
			continue
		}

		header := Header(headerPrefix, entry.RelativePath)
		present := strings.HasPrefix(strings.TrimLeftFunc(content, unicode.IsSpace), header)
		if present {
			slog.Debug("File already carries its header.", "path", entry.RelativePath)
		} else {
			outputBuilder.WriteString(header)
			outputBuilder.WriteString("\n\n")
		}
		outputBuilder.WriteString(content)
		outputBuilder.WriteString("\n")

		result.Merged = append(result.Merged, MergedFile{
			RelativePath:  entry.RelativePath,
			Size:          int64(len(content)),
			HeaderPresent: present,
		})
	}

	result.Text = outputBuilder.String()
	slog.Debug("Merge finished.", "merged", len(result.Merged), "failed", len(result.Failures))
	return result
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
