package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default emission settings
const (
	// DefaultIndentWidth is the number of spaces per nesting level in
	// rendered procedure text
	DefaultIndentWidth = 2

	// DefaultOutputFormat is used when no format is configured
	DefaultOutputFormat = "text"
)

// Config represents the main configuration structure
type Config struct {
	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" toml:"output"`

	// Emit holds procedure text emission configuration
	Emit EmitConfig `mapstructure:"emit" yaml:"emit" toml:"emit"`

	// Input holds graph document collection configuration
	Input InputConfig `mapstructure:"input" yaml:"input" toml:"input"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// EmitConfig holds configuration for rendering lowered procedures
type EmitConfig struct {
	// IndentWidth is the number of spaces per nesting level
	IndentWidth int `mapstructure:"indent_width" yaml:"indent_width" toml:"indent_width"`

	// BlankLineBetweenBlocks inserts an empty line between emitted blocks
	BlankLineBetweenBlocks bool `mapstructure:"blank_line_between_blocks" yaml:"blank_line_between_blocks" toml:"blank_line_between_blocks"`
}

// InputConfig holds configuration for graph document collection
type InputConfig struct {
	// Recursive controls directory traversal
	Recursive bool `mapstructure:"recursive" yaml:"recursive" toml:"recursive"`

	// IncludePatterns are doublestar patterns files must match
	IncludePatterns []string `mapstructure:"include_patterns" yaml:"include_patterns" toml:"include_patterns"`

	// ExcludePatterns are doublestar patterns files must not match
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns" toml:"exclude_patterns"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Emit: EmitConfig{
			IndentWidth:            DefaultIndentWidth,
			BlankLineBetweenBlocks: false,
		},
		Input: InputConfig{
			Recursive:       true,
			IncludePatterns: []string{"**/*.yaml", "**/*.yml"},
		},
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if c.Emit.IndentWidth < 0 {
		return fmt.Errorf("indent width must not be negative: %d", c.Emit.IndentWidth)
	}
	return nil
}

// LoadConfig loads configuration from a file, falling back to defaults.
// YAML files go through viper; TOML files go through the TOML loader.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findDefaultConfigFile()
		if configPath == "" {
			return config, nil
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	if filepath.Ext(configPath) == ".toml" {
		if err := loadTomlInto(configPath, config); err != nil {
			return nil, err
		}
	} else {
		v := viper.New()
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := v.Unmarshal(config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// findDefaultConfigFile looks for a config file in the working directory
func findDefaultConfigFile() string {
	candidates := []string{
		"cfglower.toml",
		".cfglower.yaml",
		".cfglower.yml",
	}
	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
