package report

import (
	"slices"

	"xunit/internal/domain"
)

// SummaryListener builds a Summary while a run is in progress
type SummaryListener struct {
	summary Summary
}

// NewSummaryListener creates a SummaryListener
func NewSummaryListener() *SummaryListener {
	return &SummaryListener{}
}

func (l *SummaryListener) RunStarted() {
	l.summary = Summary{}
}

func (l *SummaryListener) TestStarted(domain.TestID) {}

func (l *SummaryListener) TestFinished(outcome domain.TestOutcome) {
	l.summary.Add(outcome)
}

func (l *SummaryListener) RunFinished([]domain.TestOutcome) {}

// Summary returns a copy of the summary collected so far
func (l *SummaryListener) Summary() Summary {
	s := l.summary
	s.Failures = slices.Clone(s.Failures)
	return s
}
