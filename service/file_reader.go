package service

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/verikit/cfglower/domain"
)

// GraphFileReaderImpl implements the GraphFileReader interface
type GraphFileReaderImpl struct{}

// NewGraphFileReader creates a new graph file reader service
func NewGraphFileReader() *GraphFileReaderImpl {
	return &GraphFileReaderImpl{}
}

// CollectGraphFiles finds graph description documents in the given paths.
// The result is sorted so runs are deterministic.
func (r *GraphFileReaderImpl) CollectGraphFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if info.IsDir() {
			dirFiles, err := r.collectFromDirectory(path, recursive, includePatterns, excludePatterns)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
		} else if r.IsValidGraphFile(path) && r.shouldIncludeFile(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsValidGraphFile checks if a file looks like a graph document
func (r *GraphFileReaderImpl) IsValidGraphFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func (r *GraphFileReaderImpl) collectFromDirectory(dir string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		if r.IsValidGraphFile(path) && r.shouldIncludeFile(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInvalidInputError("failed to walk directory: "+dir, err)
	}

	return files, nil
}

// shouldIncludeFile applies doublestar include and exclude patterns.
// Patterns match against both the full path and the base name.
func (r *GraphFileReaderImpl) shouldIncludeFile(path string, includePatterns, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if r.matches(pattern, path) {
			return false
		}
	}

	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if r.matches(pattern, path) {
			return true
		}
	}
	return false
}

func (r *GraphFileReaderImpl) matches(pattern, path string) bool {
	if matched, _ := doublestar.Match(pattern, filepath.ToSlash(path)); matched {
		return true
	}
	matched, _ := doublestar.Match(pattern, filepath.Base(path))
	return matched
}
