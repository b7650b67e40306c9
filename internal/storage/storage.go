package storage

import (
	"fmt"
	"strings"
	"time"

	"xunit/internal/config"
	"xunit/internal/domain"
	"xunit/internal/report"
)

// Storage persists and loads test run results (e.g. for the failures viewer).
type Storage interface {
	Save(runID string, summary report.Summary, outcomes []domain.TestOutcome) error
	Load() (*domain.ResultsOutput, error)
	// SaveOutput writes the full output (e.g. after marking failures resolved).
	SaveOutput(output *domain.ResultsOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
	now func() time.Time
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg, now: time.Now}
}

// BuildOutput converts a run into the persisted results structure
func BuildOutput(runID string, summary report.Summary, outcomes []domain.TestOutcome, at time.Time) *domain.ResultsOutput {
	output := &domain.ResultsOutput{
		Meta: domain.RunMeta{
			RunID:           runID,
			TotalTests:      summary.Found,
			PassedTests:     summary.Passed,
			FailedTests:     summary.Failed,
			ErroredTests:    summary.Errored,
			Duration:        summary.Duration.String(),
			DurationSeconds: summary.Duration.Seconds(),
			Timestamp:       at.Format(time.RFC3339),
		},
		Details: []domain.FailureDetail{},
	}

	for _, o := range outcomes {
		if o.Status == domain.StatusPassed {
			continue
		}
		output.Details = append(output.Details, failureDetail(o))
	}
	return output
}

func failureDetail(o domain.TestOutcome) domain.FailureDetail {
	detail := domain.FailureDetail{
		Suite:      o.ID.Suite,
		Test:       o.ID.Name,
		Status:     o.Status,
		Message:    o.Reason(),
		DurationMS: o.Duration.Milliseconds(),
	}
	if f := o.Failure; f != nil {
		detail.Kind = f.Kind
		if f.Expected != nil {
			detail.Expected = fmt.Sprintf("%v", f.Expected)
		}
		if f.Actual != nil {
			detail.Actual = fmt.Sprintf("%v", f.Actual)
		}
	}
	if f := o.Fault; f != nil {
		detail.FaultType = f.Type
		detail.StackTrace = stackLines(f.Stack)
	}
	return detail
}

// stackLines splits a goroutine stack into its non-empty lines
func stackLines(stack string) []string {
	var lines []string
	for _, line := range strings.Split(stack, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
