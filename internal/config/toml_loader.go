package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// defaultTomlTemplate is the commented configuration written by `cfglower init`
const defaultTomlTemplate = `# cfglower configuration

[output]
# Output format: text, json, yaml
format = "text"

[emit]
# Spaces per nesting level in rendered procedure text
indent_width = 2
# Insert an empty line between emitted blocks
blank_line_between_blocks = false

[input]
# Recurse into directories when collecting graph documents
recursive = true
# Doublestar patterns graph documents must match
include_patterns = ["**/*.yaml", "**/*.yml"]
# Doublestar patterns graph documents must not match
exclude_patterns = []
`

// loadTomlInto reads a TOML config file into an existing configuration
func loadTomlInto(path string, config *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(content, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// WriteDefaultConfig writes the commented default configuration to path.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return os.WriteFile(path, []byte(defaultTomlTemplate), 0o644)
}
