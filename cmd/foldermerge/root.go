// cmd/foldermerge/root.go
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	directory  string
	configFile string
	settings   string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "foldermerge",
		Short: "Merge the text files of chosen folders into one blob",
		Long: `foldermerge scans a root folder, lets you pick top-level subfolders and file
extensions, and concatenates the matching files into a single text, each file
preceded by a header line naming its path relative to the root.

The last folder used is remembered and reopened when no folder is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.logLevel, cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.directory, "directory", "d", "", "Root folder to scan (use this OR a positional argument; default: last used folder).")
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to a custom configuration file (default ~/.config/foldermerge/config.toml).")
	flags.StringVar(&opts.settings, "settings", "", "Path to the settings file that remembers the last folder.")
	flags.StringVar(&opts.logLevel, "loglevel", "warn", "Set logging verbosity (debug, info, warn, error).")

	cmd.AddCommand(
		newScanCmd(opts),
		newListCmd(opts),
		newMergeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// setupLogging installs a text slog handler writing to w.
func setupLogging(levelStr string, w io.Writer) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
		fmt.Fprintf(w, "Invalid log level %q specified, defaulting to 'warn'. Use debug, info, warn, or error.\n", levelStr)
		logLevel = slog.LevelWarn
	}
	logOpts := &slog.HandlerOptions{Level: logLevel, AddSource: logLevel <= slog.LevelDebug}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, logOpts)))
}
