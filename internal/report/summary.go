// Package report folds test outcomes into a Summary and renders it as text.
package report

import (
	"time"

	"xunit/internal/domain"
)

// FailureRecord is one non-passing test of a run
type FailureRecord struct {
	ID      domain.TestID
	Status  domain.Status
	Kind    domain.FailureKind // zero for errored tests
	Message string
}

// Summary aggregates the outcomes of a run.
// Found always equals Passed + Failed + Errored.
type Summary struct {
	Found    int
	Passed   int
	Failed   int
	Errored  int
	Failures []FailureRecord // in run order
	Duration time.Duration   // sum of test durations
}

// Add folds one outcome into the summary
func (s *Summary) Add(outcome domain.TestOutcome) {
	s.Found++
	s.Duration += outcome.Duration

	switch outcome.Status {
	case domain.StatusPassed:
		s.Passed++
		return
	case domain.StatusFailed:
		s.Failed++
	default:
		s.Errored++
	}

	record := FailureRecord{
		ID:      outcome.ID,
		Status:  outcome.Status,
		Message: outcome.Reason(),
	}
	if outcome.Status == domain.StatusFailed && outcome.Failure != nil {
		record.Kind = outcome.Failure.Kind
	}
	s.Failures = append(s.Failures, record)
}

// FailedCount counts failed and errored tests together, as the text report does
func (s Summary) FailedCount() int {
	return s.Failed + s.Errored
}

// OK reports whether every test passed
func (s Summary) OK() bool {
	return s.FailedCount() == 0
}

// Summarize folds a sequence of outcomes into a Summary
func Summarize(outcomes []domain.TestOutcome) Summary {
	var s Summary
	for _, o := range outcomes {
		s.Add(o)
	}
	return s
}
