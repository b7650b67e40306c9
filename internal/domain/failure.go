package domain

import (
	"fmt"
	"strings"
)

// FailureKind tags which assertion produced an AssertionFailure
type FailureKind int

const (
	KindEquality FailureKind = iota + 1
	KindTruth
	KindIdentity
	KindNullCheck
	KindMissingException
	KindExplicit
)

var failureKindNames = map[FailureKind]string{
	KindEquality:         "equality",
	KindTruth:            "truth",
	KindIdentity:         "identity",
	KindNullCheck:        "null-check",
	KindMissingException: "missing-exception",
	KindExplicit:         "explicit",
}

func (k FailureKind) String() string {
	if name, ok := failureKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText writes the kind by name so stored results stay readable
func (k FailureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name written by MarshalText
func (k *FailureKind) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	if name == "" || name == "unknown" {
		*k = 0
		return nil
	}
	for kind, n := range failureKindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown failure kind %q", name)
}

// AssertionFailure is raised by a failing assertion and recorded as a Failed outcome
type AssertionFailure struct {
	Kind     FailureKind
	Expected any
	Actual   any
	Message  string
}

func (f *AssertionFailure) Error() string {
	return f.Message
}

// Fault describes an unexpected panic recovered while running a test
type Fault struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Stack   string `json:"stack,omitempty"`
}

func (f *Fault) Error() string {
	return f.Message
}

// NewFault captures a recovered panic value along with the stack at recovery
func NewFault(recovered any, stack []byte) *Fault {
	err := AsError(recovered)
	typeName := fmt.Sprintf("%T", recovered)
	if pe, ok := err.(*PanicError); ok {
		typeName = fmt.Sprintf("%T", pe.Value)
	}
	return &Fault{
		Message: err.Error(),
		Type:    typeName,
		Stack:   string(stack),
	}
}

// PanicError wraps a recovered panic value that is not an error
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsError converts a value returned by recover into an error
func AsError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return &PanicError{Value: recovered}
}

// FailureDetail is a non-passing outcome as persisted to the results file
type FailureDetail struct {
	Suite      string      `json:"suite"`
	Test       string      `json:"test"`
	Status     Status      `json:"status"`
	Kind       FailureKind `json:"kind,omitempty"`
	Message    string      `json:"message"`
	Expected   string      `json:"expected,omitempty"`
	Actual     string      `json:"actual,omitempty"`
	FaultType  string      `json:"fault_type,omitempty"`
	StackTrace []string    `json:"stack_trace,omitempty"`
	DurationMS int64       `json:"duration_ms"`
	Resolved   bool        `json:"resolved,omitempty"` // Track if test case is marked as resolved
}

// ID returns the identity of the failed test
func (d FailureDetail) ID() TestID {
	return TestID{Suite: d.Suite, Name: d.Test}
}
