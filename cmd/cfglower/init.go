package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verikit/cfglower/internal/config"
)

// InitCommand represents the init command
type InitCommand struct {
	path string
}

// NewInitCommand creates a new init command
func NewInitCommand() *InitCommand {
	return &InitCommand{
		path: "cfglower.toml",
	}
}

// CreateCobraCommand creates the cobra command for config initialization
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Write a commented default configuration to cfglower.toml in the
current directory. Existing files are never overwritten.`,
		RunE: i.runInit,
	}

	cmd.Flags().StringVarP(&i.path, "path", "p", "cfglower.toml", "Path of the configuration file to create")

	return cmd
}

// runInit executes the init command
func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefaultConfig(i.path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", i.path)
	return nil
}

// NewInitCmd creates and returns the init cobra command
func NewInitCmd() *cobra.Command {
	initCommand := NewInitCommand()
	return initCommand.CreateCobraCommand()
}
