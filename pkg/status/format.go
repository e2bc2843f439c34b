package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how file changes and run summaries are formatted
type FileFormatter interface {
	// FormatFileChange formats a single file change line
	FormatFileChange(change FileChange) string

	// FormatSummary formats the end-of-run summary line
	FormatSummary(copied, skipped int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileChange formats a file change line with a colored status symbol
func (f *DefaultFileFormatter) FormatFileChange(change FileChange) string {
	var symbol rune
	var symbolColor color.Attribute
	switch change.Status {
	case StatusCreated:
		symbol = '✓'
		symbolColor = color.FgGreen
	case StatusReplaced:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case StatusSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case StatusError:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '?'
		symbolColor = color.FgWhite
	}

	line := fmt.Sprintf("%s %s %s",
		color.New(symbolColor).Sprint(string(symbol)),
		change.Path,
		color.New(color.Faint).Sprint(change.Status.String()))
	if change.Description != "" {
		line += color.New(color.Faint).Sprintf(" (%s)", change.Description)
	}
	return line
}

// FormatSummary formats the end-of-run summary line
func (f *DefaultFileFormatter) FormatSummary(copied, skipped int) string {
	return fmt.Sprintf("%s copied, %s skipped",
		color.New(color.FgGreen).Sprintf("%d", copied),
		color.New(color.FgYellow).Sprintf("%d", skipped))
}

// FormatError formats an error message
func (f *DefaultFileFormatter) FormatError(err error) string {
	return color.New(color.FgRed).Sprintf("error: %v", err)
}
