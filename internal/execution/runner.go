// Package execution runs registered tests one at a time and records an
// outcome for each of them.
package execution

import (
	"errors"
	"iter"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"xunit/internal/domain"
)

// Runner executes test cases sequentially, each inside its own recover
// boundary, so that a failing or panicking test never stops the run.
type Runner struct {
	listeners []Listener
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures a Runner
type Option func(*Runner)

// WithListener registers a listener for every run
func WithListener(l Listener) Option {
	return func(r *Runner) { r.listeners = append(r.listeners, l) }
}

// WithLogger sets the logger used for run diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithClock replaces time.Now for measuring test durations
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a new Runner
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddListener registers a listener for every following run
func (r *Runner) AddListener(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Run executes every test of the sequence in order and returns one outcome
// per test. Extra listeners observe this run only.
func (r *Runner) Run(tests iter.Seq[domain.TestCase], extra ...Listener) []domain.TestOutcome {
	listeners := append(append([]Listener(nil), r.listeners...), extra...)

	r.notify(listeners, "run_started", func(l Listener) { l.RunStarted() })

	var outcomes []domain.TestOutcome
	for tc := range tests {
		r.notify(listeners, "test_started", func(l Listener) { l.TestStarted(tc.ID) })

		outcome := r.runTest(tc)
		outcomes = append(outcomes, outcome)
		r.logOutcome(outcome)

		r.notify(listeners, "test_finished", func(l Listener) { l.TestFinished(outcome) })
	}

	r.notify(listeners, "run_finished", func(l Listener) { l.RunFinished(outcomes) })
	return outcomes
}

// runTest invokes the action of a single test. Assertion failures become
// Failed outcomes, every other panic an Errored one.
func (r *Runner) runTest(tc domain.TestCase) (outcome domain.TestOutcome) {
	start := r.now()
	outcome = domain.TestOutcome{ID: tc.ID, Status: domain.StatusPassed}

	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = classify(tc.ID, recovered, debug.Stack())
		}
		outcome.Duration = r.now().Sub(start)
	}()

	tc.Action()
	return outcome
}

func classify(id domain.TestID, recovered any, stack []byte) domain.TestOutcome {
	var failure *domain.AssertionFailure
	if errors.As(domain.AsError(recovered), &failure) {
		return domain.TestOutcome{ID: id, Status: domain.StatusFailed, Failure: failure}
	}
	return domain.TestOutcome{ID: id, Status: domain.StatusErrored, Fault: domain.NewFault(recovered, stack)}
}

// notify delivers an event to every listener. A panicking listener is
// logged and skipped.
func (r *Runner) notify(listeners []Listener, event string, deliver func(Listener)) {
	for _, l := range listeners {
		func() {
			defer func() {
				if recovered := recover(); recovered != nil {
					r.logger.Error("Listener panicked",
						zap.String("event", event),
						zap.Any("panic", recovered))
				}
			}()
			deliver(l)
		}()
	}
}

func (r *Runner) logOutcome(outcome domain.TestOutcome) {
	fields := []zap.Field{
		zap.Stringer("test", outcome.ID),
		zap.Stringer("status", outcome.Status),
		zap.Duration("duration", outcome.Duration),
	}
	switch outcome.Status {
	case domain.StatusPassed:
		r.logger.Debug("Test passed", fields...)
	case domain.StatusFailed:
		r.logger.Info("Test failed", append(fields, zap.String("reason", outcome.Reason()))...)
	default:
		r.logger.Warn("Test errored", append(fields,
			zap.String("reason", outcome.Reason()),
			zap.String("fault_type", outcome.Fault.Type))...)
	}
}
