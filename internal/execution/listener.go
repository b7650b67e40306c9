package execution

import "xunit/internal/domain"

// Listener observes a run. Events arrive in order: RunStarted, then
// TestStarted and TestFinished for each test, then RunFinished.
type Listener interface {
	RunStarted()
	TestStarted(id domain.TestID)
	TestFinished(outcome domain.TestOutcome)
	RunFinished(outcomes []domain.TestOutcome)
}

// ListenerFuncs adapts optional functions to a Listener
type ListenerFuncs struct {
	OnRunStarted   func()
	OnTestStarted  func(id domain.TestID)
	OnTestFinished func(outcome domain.TestOutcome)
	OnRunFinished  func(outcomes []domain.TestOutcome)
}

func (f ListenerFuncs) RunStarted() {
	if f.OnRunStarted != nil {
		f.OnRunStarted()
	}
}

func (f ListenerFuncs) TestStarted(id domain.TestID) {
	if f.OnTestStarted != nil {
		f.OnTestStarted(id)
	}
}

func (f ListenerFuncs) TestFinished(outcome domain.TestOutcome) {
	if f.OnTestFinished != nil {
		f.OnTestFinished(outcome)
	}
}

func (f ListenerFuncs) RunFinished(outcomes []domain.TestOutcome) {
	if f.OnRunFinished != nil {
		f.OnRunFinished(outcomes)
	}
}
