package ui

import "xunit/internal/domain"

// Viewer displays test results in an interactive TUI
type Viewer interface {
	View(results *domain.ResultsOutput) error
}
