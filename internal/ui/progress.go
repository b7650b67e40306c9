package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"xunit/internal/domain"
)

// ProgressBar shows the progress of a run. It is an execution.Listener.
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// NewProgressBar creates a progress bar for count tests writing to w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func (p *ProgressBar) RunStarted() {}

func (p *ProgressBar) TestStarted(domain.TestID) {}

// TestFinished advances the bar and updates the passed and failed counts
func (p *ProgressBar) TestFinished(outcome domain.TestOutcome) {
	if outcome.Status == domain.StatusPassed {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Describe(describe(p.passed, p.failed))
	_ = p.bar.Add(1)
}

// RunFinished completes the bar
func (p *ProgressBar) RunFinished([]domain.TestOutcome) {
	_ = p.bar.Finish()
}

func describe(passed, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
