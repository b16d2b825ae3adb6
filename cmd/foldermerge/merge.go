// cmd/foldermerge/merge.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// errFilesFailed makes the process exit non-zero after the merged text and
// the summary have been written; the summary already names the files.
var errFilesFailed = errors.New("some selected files could not be merged")

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func newMergeCmd(root *rootOptions) *cobra.Command {
	var (
		sel        selectionOptions
		prefix     string
		outputFile string
		copyOutput bool
		noSummary  bool
	)

	cmd := &cobra.Command{
		Use:   "merge [directory]",
		Short: "Concatenate the selected files, each under a header naming its path",
		Long: `Concatenate the selected files in list order. Each file is preceded by
"<prefix> <relative path>" and a blank line, unless the file already starts
with exactly that line.

Output:
  - Default: merged text to stdout, summary and logs to stderr.
  - With -o <file>: merged text to <file>, summary to stdout.
  - With --copy and no -o: merged text to the clipboard, summary to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, root, args)
			if err != nil {
				return err
			}
			defer a.close(cmd)

			files := applySelection(a.session, sel)
			headerPrefix := a.cfg.resolvePrefix(prefix, cmd.Flags().Changed("prefix"))

			result, err := a.session.Merge(headerPrefix)
			if err != nil {
				return err
			}
			if result.Text == "" {
				slog.Warn("No content generated. Output is empty (no matching files, or all were skipped or unreadable).")
			}

			var codeWriter, summaryWriter io.Writer
			var outputFileHandle *os.File
			switch {
			case outputFile != "":
				file, errCreate := os.Create(outputFile)
				if errCreate != nil {
					return fmt.Errorf("failed to create output file '%s': %w", outputFile, errCreate)
				}
				outputFileHandle = file
				codeWriter, summaryWriter = file, cmd.OutOrStdout()
				slog.Info("Writing merged text to file.", "path", outputFile)
			case copyOutput:
				codeWriter, summaryWriter = io.Discard, cmd.OutOrStdout()
			default:
				codeWriter, summaryWriter = cmd.OutOrStdout(), cmd.ErrOrStderr()
			}

			if _, errWrite := io.WriteString(codeWriter, result.Text); errWrite != nil {
				if outputFileHandle != nil {
					_ = outputFileHandle.Close()
				}
				return fmt.Errorf("failed to write output: %w", errWrite)
			}
			if outputFileHandle != nil {
				if errClose := outputFileHandle.Close(); errClose != nil {
					return fmt.Errorf("failed to close output file '%s': %w", outputFile, errClose)
				}
			}

			var copyErr error
			if copyOutput {
				if copyErr = copyToClipboard(result.Text); copyErr != nil {
					slog.Error("Failed to copy merged text to the clipboard.", "error", copyErr)
				} else {
					slog.Info("Copied merged text to the clipboard.", "bytes", len(result.Text))
				}
			}

			if !noSummary {
				printSummary(summaryWriter, a.session.Root(), headerPrefix, files, result)
			}

			if copyErr != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", copyErr)
			}
			if len(result.Failures) > 0 {
				return errFilesFailed
			}
			return nil
		},
	}

	sel.register(cmd.Flags())
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Header prefix written before each path (default from config, normally \"//\").")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the merged text to this file instead of stdout.")
	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the merged text to the clipboard.")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Do not print the summary.")
	return cmd
}
