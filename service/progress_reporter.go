package service

import (
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressReporterImpl implements the ProgressReporter interface with a
// terminal progress bar. Output goes to stderr so formatted results on
// stdout stay clean.
type ProgressReporterImpl struct {
	mu          sync.Mutex
	writer      io.Writer
	bar         *progressbar.ProgressBar
	interactive bool
	enabled     bool
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(writer io.Writer, enabled bool) *ProgressReporterImpl {
	if writer == nil {
		writer = os.Stderr
	}

	return &ProgressReporterImpl{
		writer:      writer,
		enabled:     enabled,
		interactive: isInteractive(writer),
	}
}

// StartProgress starts progress reporting for the given number of files.
// Single-file runs stay silent.
func (p *ProgressReporterImpl) StartProgress(totalFiles int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.interactive || totalFiles <= 1 {
		return
	}

	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription("Lowering"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// UpdateProgress updates the progress with the current file being processed
func (p *ProgressReporterImpl) UpdateProgress(currentFile string, processed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		_ = p.bar.Set(processed + 1)
	}
}

// FinishProgress completes progress reporting
func (p *ProgressReporterImpl) FinishProgress() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}

// isInteractive reports whether the writer is a terminal
func isInteractive(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
