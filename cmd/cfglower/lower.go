package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/verikit/cfglower/app"
	"github.com/verikit/cfglower/domain"
	"github.com/verikit/cfglower/service"
)

// LowerCommand represents the lower command
type LowerCommand struct {
	outputFormat    string
	outputPath      string
	configPath      string
	recursive       bool
	includePatterns []string
	excludePatterns []string
	indentWidth     int
	blankLines      bool
	noProgress      bool
}

// NewLowerCommand creates a new lower command
func NewLowerCommand() *LowerCommand {
	return &LowerCommand{}
}

// CreateCobraCommand creates the cobra command for graph lowering
func (l *LowerCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lower [paths...]",
		Short: "Lower graph documents into structured procedures",
		Long: `Lower YAML graph documents into structured procedure bodies.

Each document describes one procedure: its signature, its locals, and its
basic blocks with typed successors. The output is a single sequence of
labeled statements with explicit jumps, one label per block plus a
terminal return label.

Examples:
  # Lower a single graph document
  cfglower lower graphs/max.yaml

  # Lower every document under a directory as JSON
  cfglower lower graphs/ --format json

  # Write the result to a file
  cfglower lower graphs/max.yaml -o max.svl`,
		Args: cobra.MinimumNArgs(1),
		RunE: l.runLower,
	}

	cmd.Flags().StringVarP(&l.outputFormat, "format", "f", "", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&l.outputPath, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().StringVarP(&l.configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVarP(&l.recursive, "recursive", "r", true, "Recurse into directories")
	cmd.Flags().StringSliceVar(&l.includePatterns, "include", nil, "Include patterns for graph documents")
	cmd.Flags().StringSliceVar(&l.excludePatterns, "exclude", nil, "Exclude patterns for graph documents")
	cmd.Flags().IntVar(&l.indentWidth, "indent", 0, "Spaces per nesting level in procedure text")
	cmd.Flags().BoolVar(&l.blankLines, "blank-lines", false, "Insert an empty line between emitted blocks")
	cmd.Flags().BoolVar(&l.noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

// runLower executes the lower command
func (l *LowerCommand) runLower(cmd *cobra.Command, args []string) error {
	writer := cmd.OutOrStdout()
	if l.outputPath != "" {
		file, err := os.Create(l.outputPath)
		if err != nil {
			return domain.NewOutputError("failed to create output file", err)
		}
		defer file.Close()
		writer = file
	}

	req := domain.LowerRequest{
		Paths:                  args,
		OutputFormat:           domain.OutputFormat(l.outputFormat),
		OutputWriter:           writer,
		ConfigPath:             l.configPath,
		Recursive:              l.recursive,
		IncludePatterns:        l.includePatterns,
		ExcludePatterns:        l.excludePatterns,
		IndentWidth:            l.indentWidth,
		BlankLineBetweenBlocks: l.blankLines,
	}

	lowerService := service.NewLowerService()
	lowerService.SetProgressReporter(service.NewProgressReporter(cmd.ErrOrStderr(), !l.noProgress))

	useCase := app.NewLowerUseCase(
		lowerService,
		service.NewGraphFileReader(),
		service.NewOutputFormatter(),
	)

	return useCase.Execute(cmd.Context(), req)
}

// NewLowerCmd creates and returns the lower cobra command
func NewLowerCmd() *cobra.Command {
	lowerCommand := NewLowerCommand()
	return lowerCommand.CreateCobraCommand()
}
