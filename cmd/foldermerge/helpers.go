// cmd/foldermerge/helpers.go
package main

import (
	"fmt"
	"strings"
)

// normalizeExtensions turns flag values like "py, .txt" into ".py", ".txt".
// Case is kept because extensions are compared exactly. Order is kept and
// duplicates dropped.
func normalizeExtensions(extList []string) []string {
	seen := make(map[string]struct{})
	processed := make([]string, 0, len(extList))
	for _, ext := range extList {
		for _, part := range strings.Split(ext, ",") {
			cleaned := strings.TrimSpace(part)
			if cleaned == "" {
				continue
			}
			if !strings.HasPrefix(cleaned, ".") {
				cleaned = "." + cleaned
			}
			if _, dup := seen[cleaned]; dup {
				continue
			}
			seen[cleaned] = struct{}{}
			processed = append(processed, cleaned)
		}
	}
	return processed
}

// splitList splits comma separated flag values and trims blanks.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// formatBytes formats bytes into human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	val := float64(b) / float64(div)
	unitPrefix := "KMGTPE"[exp]
	if val == float64(int64(val)) {
		return fmt.Sprintf("%d %ciB", int64(val), unitPrefix)
	}
	return fmt.Sprintf("%.1f %ciB", val, unitPrefix)
}

func tern[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
