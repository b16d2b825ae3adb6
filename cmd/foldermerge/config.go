// cmd/foldermerge/config.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/gagin/foldermerge/internal/merger"
	"github.com/gagin/foldermerge/internal/prefs"
)

// Config holds the settings read from config.toml. Pointer fields are nil
// when the key is absent.
type Config struct {
	Prefixes        []string `toml:"prefixes"`
	DefaultPrefix   *string  `toml:"default_prefix"`
	ExcludePatterns []string `toml:"exclude_patterns"`
	UseGitignore    *bool    `toml:"use_gitignore"`
	IncludeHidden   *bool    `toml:"include_hidden"`
	SettingsFile    *string  `toml:"settings_file"`
}

func newDefaultConfig() Config {
	return Config{
		Prefixes:        []string{"//", "#"},
		DefaultPrefix:   func(s string) *string { return &s }("//"),
		ExcludePatterns: []string{},
		UseGitignore:    func(b bool) *bool { return &b }(false),
		IncludeHidden:   func(b bool) *bool { return &b }(true),
		SettingsFile:    func(s string) *string { return &s }(""),
	}
}

// defaultConfigPath returns <user config dir>/foldermerge/config.toml.
func defaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "foldermerge", "config.toml"), nil
}

// loadConfig reads the custom config file when one is given, otherwise the
// default one. A missing default file is not an error; a missing custom
// file is.
func loadConfig(customConfigPath string) (Config, error) {
	isCustomPath := customConfigPath != ""
	configFile := ""

	if isCustomPath {
		abs, err := filepath.Abs(customConfigPath)
		if err != nil {
			return newDefaultConfig(), fmt.Errorf("invalid custom config path '%s': %w", customConfigPath, err)
		}
		configFile = abs
	} else {
		path, err := defaultConfigPath()
		if err != nil {
			slog.Warn("Could not determine user config directory. Using default settings only.", "error", err)
			return newDefaultConfig(), nil
		}
		configFile = path
	}

	slog.Debug("Reading configuration file", "path", configFile)
	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !isCustomPath {
			slog.Debug("No default config file found, using default settings.", "path", configFile)
			return newDefaultConfig(), nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return newDefaultConfig(), fmt.Errorf("specified configuration file '%s' not found", configFile)
		}
		return newDefaultConfig(), fmt.Errorf("error reading config file '%s': %w", configFile, err)
	}

	loadedCfg := newDefaultConfig()
	meta, err := toml.Decode(string(content), &loadedCfg)
	if err != nil {
		return newDefaultConfig(), fmt.Errorf("error decoding TOML from '%s': %w", configFile, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		slog.Warn("Unrecognized keys found in config file.", "path", configFile, "keys", undecoded)
	}

	cfg := loadedCfg.withDefaults()
	slog.Debug("Configuration loaded successfully.",
		"source", configFile,
		"prefixes", cfg.Prefixes,
		"default_prefix", *cfg.DefaultPrefix,
		"exclude_patterns", cfg.ExcludePatterns,
		"use_gitignore", *cfg.UseGitignore,
		"include_hidden", *cfg.IncludeHidden,
	)
	return cfg, nil
}

// withDefaults fills keys that were explicitly emptied or nulled.
func (c Config) withDefaults() Config {
	defaults := newDefaultConfig()
	if len(c.Prefixes) == 0 {
		slog.Debug("Config key 'prefixes' empty, using default.", "value", defaults.Prefixes)
		c.Prefixes = defaults.Prefixes
	}
	if c.DefaultPrefix == nil {
		c.DefaultPrefix = defaults.DefaultPrefix
	}
	if !slices.Contains(c.Prefixes, *c.DefaultPrefix) {
		slog.Warn("Config 'default_prefix' is not one of 'prefixes'.", "default_prefix", *c.DefaultPrefix, "prefixes", c.Prefixes)
	}
	if c.ExcludePatterns == nil {
		c.ExcludePatterns = defaults.ExcludePatterns
	}
	if c.UseGitignore == nil {
		c.UseGitignore = defaults.UseGitignore
	}
	if c.IncludeHidden == nil {
		c.IncludeHidden = defaults.IncludeHidden
	}
	if c.SettingsFile == nil {
		c.SettingsFile = defaults.SettingsFile
	}
	return c
}

func (c Config) walkOptions() merger.WalkOptions {
	return merger.WalkOptions{
		UseGitignore:  *c.UseGitignore,
		IncludeHidden: *c.IncludeHidden,
		Excluder:      merger.NewExcluder(c.ExcludePatterns),
	}
}

// settingsPath picks the preferences file: flag, then config, then the
// per-user default.
func (c Config) settingsPath(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Abs(flagValue)
	}
	if *c.SettingsFile != "" {
		return filepath.Abs(*c.SettingsFile)
	}
	return prefs.DefaultPath()
}

// resolvePrefix returns the requested prefix, or the configured default.
// Prefixes outside the configured set are allowed.
func (c Config) resolvePrefix(requested string, changed bool) string {
	if !changed {
		return *c.DefaultPrefix
	}
	if !slices.Contains(c.Prefixes, requested) {
		slog.Info("Using a header prefix outside the configured set.", "prefix", requested, "prefixes", c.Prefixes)
	}
	return requested
}
