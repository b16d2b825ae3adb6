// dev_process_utils/increment_version.go
//
// Bumps the patch number of `const Version = "x.y.z"` in the foldermerge
// main package. Run from the repository root, optionally with another file.
package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const defaultVersionFile = "cmd/foldermerge/main.go"

// Captures: the text before the version, "major.minor.", patch, the rest of the line.
var versionLine = regexp.MustCompile(`^(const Version\s*=\s*")(\d+\.\d+\.)(\d+)(".*)$`)

// bumpPatch returns content with the patch number of the Version constant
// incremented, and the new version.
func bumpPatch(content string) (string, string, error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		matches := versionLine.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		patch, err := strconv.Atoi(matches[3])
		if err != nil {
			return "", "", fmt.Errorf("invalid patch number %q: %w", matches[3], err)
		}
		newVersion := matches[2] + strconv.Itoa(patch+1)
		lines[i] = matches[1] + newVersion + matches[4]
		return strings.Join(lines, "\n"), newVersion, nil
	}
	return "", "", errors.New("version constant not found")
}

func updateVersionInFile(versionFile string) error {
	content, err := os.ReadFile(versionFile)
	if err != nil {
		return fmt.Errorf("could not read '%s': %w", versionFile, err)
	}
	updated, newVersion, err := bumpPatch(string(content))
	if err != nil {
		return fmt.Errorf("%s: %w", versionFile, err)
	}
	info, err := os.Stat(versionFile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(versionFile, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("could not write '%s': %w", versionFile, err)
	}
	fmt.Printf("Version updated to %s in %s\n", newVersion, versionFile)
	return nil
}

func main() {
	versionFile := defaultVersionFile
	if len(os.Args) > 1 {
		versionFile = os.Args[1]
	}
	if err := updateVersionInFile(versionFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
