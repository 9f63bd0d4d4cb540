package app

import (
	"context"

	"github.com/verikit/cfglower/domain"
	"github.com/verikit/cfglower/internal/config"
)

// LowerUseCase orchestrates the graph lowering workflow
type LowerUseCase struct {
	service    domain.LowerService
	fileReader domain.GraphFileReader
	formatter  domain.OutputFormatter
}

// NewLowerUseCase creates a new lower use case
func NewLowerUseCase(
	service domain.LowerService,
	fileReader domain.GraphFileReader,
	formatter domain.OutputFormatter,
) *LowerUseCase {
	return &LowerUseCase{
		service:    service,
		fileReader: fileReader,
		formatter:  formatter,
	}
}

// Execute performs the complete lowering workflow
func (uc *LowerUseCase) Execute(ctx context.Context, req domain.LowerRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	finalReq, err := uc.applyConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	files, err := uc.fileReader.CollectGraphFiles(
		finalReq.Paths,
		finalReq.Recursive,
		finalReq.IncludePatterns,
		finalReq.ExcludePatterns,
	)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return domain.NewInvalidInputError("no graph documents found in the specified paths", nil)
	}

	finalReq.Paths = files

	response, err := uc.service.Lower(ctx, finalReq)
	if err != nil {
		return err
	}

	if err := uc.formatter.Write(response, finalReq.OutputFormat, finalReq.OutputWriter); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}

func (uc *LowerUseCase) validateRequest(req domain.LowerRequest) error {
	if len(req.Paths) == 0 {
		return domain.NewInvalidInputError("no input paths specified", nil)
	}
	if req.OutputWriter == nil {
		return domain.NewInvalidInputError("no output writer specified", nil)
	}
	return nil
}

// applyConfig merges file configuration into the request. Values the caller
// set explicitly on the request win over configured values.
func (uc *LowerUseCase) applyConfig(req domain.LowerRequest) (domain.LowerRequest, error) {
	cfg, err := config.LoadConfig(req.ConfigPath)
	if err != nil {
		return req, err
	}

	if req.OutputFormat == "" {
		req.OutputFormat = domain.OutputFormat(cfg.Output.Format)
	}
	if req.IndentWidth == 0 {
		req.IndentWidth = cfg.Emit.IndentWidth
	}
	if !req.BlankLineBetweenBlocks {
		req.BlankLineBetweenBlocks = cfg.Emit.BlankLineBetweenBlocks
	}
	if len(req.IncludePatterns) == 0 {
		req.IncludePatterns = cfg.Input.IncludePatterns
	}
	if len(req.ExcludePatterns) == 0 {
		req.ExcludePatterns = cfg.Input.ExcludePatterns
	}

	return req, nil
}
