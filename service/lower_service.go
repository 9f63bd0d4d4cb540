package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/verikit/cfglower/domain"
	"github.com/verikit/cfglower/internal/ast"
	"github.com/verikit/cfglower/internal/version"
)

// LowerServiceImpl implements the LowerService interface
type LowerServiceImpl struct {
	loader   *GraphLoader
	progress domain.ProgressReporter
	logger   *log.Logger
}

// NewLowerService creates a new lowering service
func NewLowerService() *LowerServiceImpl {
	return &LowerServiceImpl{
		loader: NewGraphLoader(),
	}
}

// SetProgressReporter sets an optional progress reporter for multi-file runs
func (s *LowerServiceImpl) SetProgressReporter(progress domain.ProgressReporter) {
	s.progress = progress
}

// SetLogger sets an optional logger for diagnostics
func (s *LowerServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Lower processes the graph documents named by the request paths
func (s *LowerServiceImpl) Lower(ctx context.Context, req domain.LowerRequest) (*domain.LowerResponse, error) {
	response := &domain.LowerResponse{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Short(),
	}

	if s.progress != nil {
		s.progress.StartProgress(len(req.Paths))
		defer s.progress.FinishProgress()
	}

	for i, path := range req.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		procedure, err := s.LowerFile(ctx, path, req)
		if err != nil {
			response.Errors = append(response.Errors, err.Error())
			if s.logger != nil {
				s.logger.Printf("lower: %s: %v", path, err)
			}
			continue
		}

		response.Procedures = append(response.Procedures, *procedure)
		response.Summary.TotalProcedures++
		response.Summary.TotalBlocks += procedure.Blocks
		response.Summary.FilesProcessed++

		for _, label := range procedure.UnwiredBlocks {
			response.Warnings = append(response.Warnings,
				fmt.Sprintf("%s: block %q has no explicit successor and lowers to an unreachable trap", procedure.Name, label))
		}

		if s.progress != nil {
			s.progress.UpdateProgress(path, i, len(req.Paths))
		}
	}

	return response, nil
}

// LowerFile processes a single graph document
func (s *LowerServiceImpl) LowerFile(ctx context.Context, filePath string, req domain.LowerRequest) (*domain.LoweredProcedure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, domain.NewFileNotFoundError(filePath, err)
	}

	doc, err := s.loader.Parse(content)
	if err != nil {
		return nil, domain.NewParseError(filePath, err)
	}

	method, err := s.loader.BuildMethod(doc)
	if err != nil {
		return nil, domain.NewParseError(filePath, err)
	}

	blocks := method.BlockCount()
	unwired := method.UnwiredBlocks()

	lowered, err := method.Lower()
	if err != nil {
		return nil, err
	}

	text := lowered.Format(ast.PrintOptions{
		IndentWidth:            req.IndentWidth,
		BlankLineBetweenBlocks: req.BlankLineBetweenBlocks,
	})

	return &domain.LoweredProcedure{
		Name:          method.Name(),
		FilePath:      filePath,
		Text:          text,
		Blocks:        blocks,
		LabelDecls:    lowered.LabelDeclCount(),
		LocalDecls:    lowered.LocalDeclCount(),
		UnwiredBlocks: unwired,
	}, nil
}
