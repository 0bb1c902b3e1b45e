// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints a classification run summary using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.RunSummary, names map[int64]string, cfg *contract.Config) error {
	return WriteRunSummary(summary, names, cfg)
}

// WriteClassifications prints stored classifications using the configured output format.
func (ow *OutWriter) WriteClassifications(items []schema.Classification, names map[int64]string, cfg *contract.Config) error {
	return WriteClassificationList(items, names, cfg)
}

// WriteScore prints a points computation using the configured output format.
func (ow *OutWriter) WriteScore(result schema.ScoreResult, cfg *contract.Config) error {
	return WriteScoreResult(result, cfg)
}

// WriteIndicators prints harvested indicators using the configured output format.
func (ow *OutWriter) WriteIndicators(items []schema.Indicator, cfg *contract.Config) error {
	return WriteIndicatorList(items, cfg)
}

// GetMaxTableNameWidth calculates the maximum width for venue names in table
// output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting: id, identifier,
	// code, label, reasoning, plus borders and padding
	baseWidth := 60

	// Calculate available space for the venue name
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 70 {
		// Maximum name width to prevent overly long names
		return 70
	}
	return available
}
