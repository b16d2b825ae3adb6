// cmd/foldermerge/app.go
package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gagin/foldermerge/internal/merger"
	"github.com/gagin/foldermerge/internal/prefs"
)

// app is one run of the tool: configuration, preference store and the
// session over the chosen root.
type app struct {
	cfg     Config
	session *merger.Session
}

// openApp loads configuration and preferences, then opens the root given on
// the command line or, failing that, the last used one.
func openApp(cmd *cobra.Command, opts *rootOptions, args []string) (*app, error) {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		if opts.configFile != "" {
			return nil, fmt.Errorf("could not load configuration: %w", err)
		}
		slog.Warn("Proceeding with default settings due to config load issue.", "error", err)
	}

	var store prefs.Store
	settingsPath, err := cfg.settingsPath(opts.settings)
	if err != nil {
		slog.Warn("Could not locate the settings file, the last folder will not be remembered.", "error", err)
		store = &prefs.MemoryStore{}
	} else {
		slog.Debug("Using settings file.", "path", settingsPath)
		store = prefs.NewFileStore(settingsPath)
	}

	a := &app{cfg: cfg, session: merger.NewSession(store, cfg.walkOptions())}

	target, err := resolveDirectory(opts.directory, cmd.Flags().Changed("directory"), args)
	if err != nil {
		return nil, err
	}

	if target == "" {
		if err := a.session.Restore(); err != nil {
			if errors.Is(err, merger.ErrNoRoot) {
				return nil, errors.New("no folder given and no folder remembered; pass a directory or use -d")
			}
			return nil, err
		}
		slog.Info("Reopened last used folder.", "root", a.session.Root())
		return a, nil
	}

	if err := a.session.ChangeRoot(target); err != nil {
		var saveErr *prefs.SaveError
		if !errors.As(err, &saveErr) {
			return nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", saveErr)
	}
	return a, nil
}

// close performs the shutdown save. A failure is only a warning.
func (a *app) close(cmd *cobra.Command) {
	if err := a.session.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
}

// resolveDirectory picks the root from a positional argument or -d, never
// both.
func resolveDirectory(flagValue string, flagChanged bool, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("refusing execution: multiple positional arguments provided: %v", args)
	}
	if len(args) == 1 {
		if flagChanged {
			return "", fmt.Errorf("refusing execution: cannot mix positional argument '%s' with flag '--directory'", args[0])
		}
		slog.Debug("Using root folder from positional argument.", "path", args[0])
		return tern(args[0] == "", ".", args[0]), nil
	}
	if flagChanged {
		slog.Debug("Using root folder from -d.", "path", flagValue)
		return tern(flagValue == "", ".", flagValue), nil
	}
	return "", nil
}
