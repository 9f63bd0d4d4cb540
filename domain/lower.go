package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// LowerRequest represents a request to lower graph description documents
type LowerRequest struct {
	// Input graph document files or directories to process
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	// Configuration
	ConfigPath string

	// Collection options
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// Emission options
	IndentWidth            int
	BlankLineBetweenBlocks bool
}

// LoweredProcedure represents the lowering result for a single graph
type LoweredProcedure struct {
	// Procedure identification
	Name     string `json:"name" yaml:"name"`
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty"`

	// The lowered procedure rendered as text
	Text string `json:"text" yaml:"text"`

	// Structural counts of the lowered output
	Blocks     int `json:"blocks" yaml:"blocks"`
	LabelDecls int `json:"label_decls" yaml:"label_decls"`
	LocalDecls int `json:"local_decls" yaml:"local_decls"`

	// Blocks whose successor was never explicitly wired and therefore
	// lower to an unreachable trap
	UnwiredBlocks []string `json:"unwired_blocks,omitempty" yaml:"unwired_blocks,omitempty"`
}

// LowerSummary represents aggregate statistics for a lowering run
type LowerSummary struct {
	TotalProcedures int `json:"total_procedures" yaml:"total_procedures"`
	TotalBlocks     int `json:"total_blocks" yaml:"total_blocks"`
	FilesProcessed  int `json:"files_processed" yaml:"files_processed"`
}

// LowerResponse represents the complete result of a lowering run
type LowerResponse struct {
	Procedures []LoweredProcedure `json:"procedures" yaml:"procedures"`
	Summary    LowerSummary       `json:"summary" yaml:"summary"`

	// Warnings and issues
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// LowerService defines the core business logic for graph lowering
type LowerService interface {
	// Lower processes the graph documents named by the request paths
	Lower(ctx context.Context, req LowerRequest) (*LowerResponse, error)

	// LowerFile processes a single graph document
	LowerFile(ctx context.Context, filePath string, req LowerRequest) (*LoweredProcedure, error)
}

// GraphFileReader defines the interface for collecting graph document files
type GraphFileReader interface {
	// CollectGraphFiles finds graph description documents in the given paths
	CollectGraphFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// IsValidGraphFile checks if a file looks like a graph document
	IsValidGraphFile(path string) bool
}

// OutputFormatter defines the interface for formatting lowering results
type OutputFormatter interface {
	// Format formats the response according to the specified format
	Format(response *LowerResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *LowerResponse, format OutputFormat, writer io.Writer) error
}

// ProgressReporter defines the interface for reporting progress during
// multi-file runs
type ProgressReporter interface {
	StartProgress(totalFiles int)
	UpdateProgress(currentFile string, processed, total int)
	FinishProgress()
}
