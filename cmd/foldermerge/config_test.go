// cmd/foldermerge/config_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_CustomFile(t *testing.T) {
	path := writeConfig(t, `
prefixes = ["//", "#", "--"]
default_prefix = "#"
exclude_patterns = ["*.log", "build/"]
use_gitignore = true
include_hidden = false
settings_file = "prefs.json"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"//", "#", "--"}, cfg.Prefixes)
	assert.Equal(t, "#", *cfg.DefaultPrefix)
	assert.Equal(t, []string{"*.log", "build/"}, cfg.ExcludePatterns)
	assert.True(t, *cfg.UseGitignore)
	assert.False(t, *cfg.IncludeHidden)
	assert.Equal(t, "prefs.json", *cfg.SettingsFile)

	opts := cfg.walkOptions()
	assert.True(t, opts.UseGitignore)
	assert.False(t, opts.IncludeHidden)
	require.NotNil(t, opts.Excluder)
	assert.Equal(t, []string{"*.log", "build/"}, opts.Excluder.Patterns())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
prefixes = []
unknown_key = 1
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	defaults := newDefaultConfig()
	assert.Equal(t, defaults.Prefixes, cfg.Prefixes)
	assert.Equal(t, "//", *cfg.DefaultPrefix)
	assert.False(t, *cfg.UseGitignore)
	assert.True(t, *cfg.IncludeHidden)
	assert.Nil(t, cfg.walkOptions().Excluder)
}

func TestLoadConfig_MissingCustomFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "prefixes = [\n")
	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding TOML")
}

func TestResolvePrefix(t *testing.T) {
	cfg := newDefaultConfig()
	assert.Equal(t, "//", cfg.resolvePrefix("", false))
	assert.Equal(t, "#", cfg.resolvePrefix("#", true))
	assert.Equal(t, ";;", cfg.resolvePrefix(";;", true), "prefixes outside the set are allowed")
	assert.Equal(t, "", cfg.resolvePrefix("", true))
}

func TestSettingsPath(t *testing.T) {
	cfg := newDefaultConfig()
	dir := t.TempDir()

	fromFlag, err := cfg.settingsPath(filepath.Join(dir, "flag.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flag.json"), fromFlag)

	configured := filepath.Join(dir, "config.json")
	cfg.SettingsFile = &configured
	fromConfig, err := cfg.settingsPath("")
	require.NoError(t, err)
	assert.Equal(t, configured, fromConfig)
}
