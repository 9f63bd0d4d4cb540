package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, DefaultIndentWidth, cfg.Emit.IndentWidth)
	assert.False(t, cfg.Emit.BlankLineBetweenBlocks)
	assert.True(t, cfg.Input.Recursive)
	assert.Contains(t, cfg.Input.IncludePatterns, "**/*.yaml")
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Run("InvalidFormat", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Output.Format = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("NegativeIndent", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Emit.IndentWidth = -1
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadConfigToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfglower.toml")
	content := `
[output]
format = "json"

[emit]
indent_width = 4
blank_line_between_blocks = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Emit.IndentWidth)
	assert.True(t, cfg.Emit.BlankLineBetweenBlocks)
	// Unset sections keep defaults
	assert.Contains(t, cfg.Input.IncludePatterns, "**/*.yaml")
}

func TestLoadConfigYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".cfglower.yaml")
	content := `
output:
  format: yaml
emit:
  indent_width: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 3, cfg.Emit.IndentWidth)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadConfigNoPathUsesDefaults(t *testing.T) {
	// Run from a directory with no config file present
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfglower.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfglower.toml")

	require.NoError(t, WriteDefaultConfig(path))

	// The written file round-trips through the loader
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	// Existing files are never overwritten
	assert.Error(t, WriteDefaultConfig(path))
}
