package domain

import (
	"fmt"
	"time"
)

// Status is the result of executing one test
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "passed":
		*s = StatusPassed
	case "failed":
		*s = StatusFailed
	case "errored":
		*s = StatusErrored
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// TestOutcome is the recorded result of executing one test case
type TestOutcome struct {
	ID       TestID
	Status   Status
	Failure  *AssertionFailure // set when Status is StatusFailed
	Fault    *Fault            // set when Status is StatusErrored
	Duration time.Duration
}

// Reason returns the failure or fault message, empty for passed tests
func (o TestOutcome) Reason() string {
	switch {
	case o.Failure != nil:
		return o.Failure.Message
	case o.Fault != nil:
		return o.Fault.Message
	default:
		return ""
	}
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	RunID           string  `json:"run_id"`
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	ErroredTests    int     `json:"errored_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ResultsOutput is the complete output structure for test results
type ResultsOutput struct {
	Meta    RunMeta         `json:"meta"`
	Details []FailureDetail `json:"details"`
}
