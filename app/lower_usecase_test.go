package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verikit/cfglower/domain"
)

// stubLowerService records the request it receives
type stubLowerService struct {
	lastReq  domain.LowerRequest
	response *domain.LowerResponse
	err      error
}

func (s *stubLowerService) Lower(ctx context.Context, req domain.LowerRequest) (*domain.LowerResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubLowerService) LowerFile(ctx context.Context, filePath string, req domain.LowerRequest) (*domain.LoweredProcedure, error) {
	return nil, errors.New("not used")
}

type stubFileReader struct {
	files []string
	err   error
}

func (s *stubFileReader) CollectGraphFiles(paths []string, recursive bool, include, exclude []string) ([]string, error) {
	return s.files, s.err
}

func (s *stubFileReader) IsValidGraphFile(path string) bool {
	return true
}

type stubFormatter struct {
	written *domain.LowerResponse
	format  domain.OutputFormat
}

func (s *stubFormatter) Format(response *domain.LowerResponse, format domain.OutputFormat) (string, error) {
	return "", nil
}

func (s *stubFormatter) Write(response *domain.LowerResponse, format domain.OutputFormat, writer io.Writer) error {
	s.written = response
	s.format = format
	return nil
}

func newStubUseCase(files []string) (*LowerUseCase, *stubLowerService, *stubFormatter) {
	service := &stubLowerService{response: &domain.LowerResponse{}}
	formatter := &stubFormatter{}
	useCase := NewLowerUseCase(service, &stubFileReader{files: files}, formatter)
	return useCase, service, formatter
}

func TestLowerUseCaseExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("HappyPath", func(t *testing.T) {
		useCase, service, formatter := newStubUseCase([]string{"a.yaml", "b.yaml"})

		req := domain.LowerRequest{
			Paths:        []string{"graphs/"},
			OutputFormat: domain.OutputFormatJSON,
			OutputWriter: &bytes.Buffer{},
		}
		require.NoError(t, useCase.Execute(ctx, req))

		// Collected files replace the raw paths before the service runs
		assert.Equal(t, []string{"a.yaml", "b.yaml"}, service.lastReq.Paths)
		assert.Equal(t, domain.OutputFormatJSON, formatter.format)
		assert.NotNil(t, formatter.written)
	})

	t.Run("DefaultsFromConfig", func(t *testing.T) {
		useCase, service, formatter := newStubUseCase([]string{"a.yaml"})

		req := domain.LowerRequest{
			Paths:        []string{"graphs/"},
			OutputWriter: &bytes.Buffer{},
		}
		require.NoError(t, useCase.Execute(ctx, req))

		// Unset values fall back to configuration defaults
		assert.Equal(t, domain.OutputFormatText, formatter.format)
		assert.Equal(t, 2, service.lastReq.IndentWidth)
		assert.NotEmpty(t, service.lastReq.IncludePatterns)
	})

	t.Run("NoPaths", func(t *testing.T) {
		useCase, _, _ := newStubUseCase(nil)

		err := useCase.Execute(ctx, domain.LowerRequest{OutputWriter: &bytes.Buffer{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrCodeInvalidInput)
	})

	t.Run("NoWriter", func(t *testing.T) {
		useCase, _, _ := newStubUseCase(nil)

		err := useCase.Execute(ctx, domain.LowerRequest{Paths: []string{"a.yaml"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrCodeInvalidInput)
	})

	t.Run("NoFilesFound", func(t *testing.T) {
		useCase, _, _ := newStubUseCase(nil)

		err := useCase.Execute(ctx, domain.LowerRequest{
			Paths:        []string{"graphs/"},
			OutputWriter: &bytes.Buffer{},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no graph documents found")
	})

	t.Run("ServiceError", func(t *testing.T) {
		useCase, service, _ := newStubUseCase([]string{"a.yaml"})
		service.err = errors.New("boom")

		err := useCase.Execute(ctx, domain.LowerRequest{
			Paths:        []string{"graphs/"},
			OutputWriter: &bytes.Buffer{},
		})
		assert.Error(t, err)
	})
}
