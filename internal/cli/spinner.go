package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows an indeterminate progress indicator while a request is in flight.
type Spinner struct {
	bar    *progressbar.ProgressBar
	writer io.Writer
}

// StartSpinner starts a spinner on writer with the given description.
func StartSpinner(writer io.Writer, description string) *Spinner {
	if writer == nil {
		writer = os.Stderr
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)
	_ = bar.RenderBlank()

	return &Spinner{bar: bar, writer: writer}
}

// Describe changes the spinner text.
func (s *Spinner) Describe(description string) {
	s.bar.Describe("[cyan]" + description + "[reset]")
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if err := s.bar.Finish(); err != nil {
		slog.Debug("Failed to finish spinner", "error", err)
	}
	if err := s.bar.Clear(); err != nil {
		slog.Debug("Failed to clear spinner", "error", err)
		_, _ = fmt.Fprintln(s.writer)
	}
}
