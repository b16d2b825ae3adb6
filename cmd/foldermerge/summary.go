// cmd/foldermerge/summary.go
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/gagin/foldermerge/internal/merger"
)

// TreeNode is one path component of the merged-files tree.
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	File     *merger.MergedFile
}

type palette struct {
	dir  *color.Color
	note *color.Color
	err  *color.Color
}

// newPalette colours output only when w is a terminal and NO_COLOR is unset.
func newPalette(w io.Writer) palette {
	p := palette{
		dir:  color.New(color.FgBlue, color.Bold),
		note: color.New(color.FgYellow),
		err:  color.New(color.FgRed),
	}
	enabled := isTerminal(w) && os.Getenv("NO_COLOR") == ""
	for _, c := range []*color.Color{p.dir, p.note, p.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func buildTree(files []merger.MergedFile) *TreeNode {
	root := &TreeNode{Name: ".", Children: make(map[string]*TreeNode)}
	for i := range files {
		file := &files[i]
		parts := strings.Split(file.RelativePath, "/")
		currentNode := root
		for j, part := range parts {
			if part == "" {
				continue
			}
			childNode, exists := currentNode.Children[part]
			if !exists {
				childNode = &TreeNode{Name: part, Children: make(map[string]*TreeNode)}
				currentNode.Children[part] = childNode
			}
			if j == len(parts)-1 {
				childNode.File = file
			}
			currentNode = childNode
		}
	}
	return root
}

func printTreeRecursive(writer io.Writer, p palette, node *TreeNode, indent string, isLast bool) {
	if node.Name != "." {
		connector := tern(isLast, "└── ", "├── ")
		if node.File != nil {
			marker := ""
			if node.File.HeaderPresent {
				marker = p.note.Sprint(" [header kept]")
			}
			fmt.Fprintf(writer, "%s%s%s (%s)%s\n", indent, connector, node.Name, formatBytes(node.File.Size), marker)
		} else {
			fmt.Fprintf(writer, "%s%s%s\n", indent, connector, p.dir.Sprint(node.Name))
		}
		indent += tern(isLast, "    ", "│   ")
	}

	childNames := make([]string, 0, len(node.Children))
	for name := range node.Children {
		childNames = append(childNames, name)
	}
	sort.Strings(childNames)
	for i, name := range childNames {
		printTreeRecursive(writer, p, node.Children[name], indent, i == len(childNames)-1)
	}
}

// printSummaryListSection prints a titled, sorted list; nothing when empty.
func printSummaryListSection(writer io.Writer, c *color.Color, titleFormat string, items map[string]string) {
	if len(items) == 0 {
		return
	}
	c.Fprintf(writer, titleFormat, len(items))
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if details := items[k]; details != "" {
			fmt.Fprintf(writer, "- %s: %s\n", k, details)
		} else {
			fmt.Fprintf(writer, "- %s\n", k)
		}
	}
}

// printSummary reports what went into the merged text, what the user left
// out, and what could not be read.
func printSummary(outputWriter io.Writer, root, prefix string, files []merger.FileEntry, result merger.MergeResult) {
	p := newPalette(outputWriter)
	fmt.Fprintln(outputWriter, "\n--- Summary ---")

	if len(result.Merged) > 0 {
		var totalSize int64
		for _, f := range result.Merged {
			totalSize += f.Size
		}
		rootName := filepath.Base(root)
		if rootName == "." || rootName == string(filepath.Separator) {
			rootName = root
		}
		fmt.Fprintf(outputWriter, "Merged %d files (%s total) from '%s' with prefix %q:\n",
			len(result.Merged), formatBytes(totalSize), rootName, prefix)
		fmt.Fprintf(outputWriter, "%s/\n", p.dir.Sprint(rootName))
		printTreeRecursive(outputWriter, p, buildTree(result.Merged), "", true)
	} else {
		fmt.Fprintln(outputWriter, "No files merged.")
	}

	skipped := make(map[string]string)
	for _, f := range files {
		if !f.Included {
			skipped[f.RelativePath] = ""
		}
	}
	printSummaryListSection(outputWriter, p.note, "\nSkipped by choice (%d):\n", skipped)

	failed := make(map[string]string, len(result.Failures))
	for _, f := range result.Failures {
		failed[f.Path] = f.Err.Error()
	}
	printSummaryListSection(outputWriter, p.err, "\nErrors encountered (%d):\n", failed)

	fmt.Fprintln(outputWriter, "---------------")
}
