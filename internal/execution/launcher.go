package execution

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xunit/internal/domain"
	"xunit/internal/registry"
	"xunit/internal/report"
)

// Run is the result of one launch
type Run struct {
	ID        string
	StartedAt time.Time
	Outcomes  []domain.TestOutcome
	Summary   report.Summary
}

// Launcher selects tests from a registry, runs them and summarizes the outcomes
type Launcher struct {
	registry *registry.Registry
	runner   *Runner
	logger   *zap.Logger
	now      func() time.Time
}

// NewLauncher creates a Launcher for the given registry
func NewLauncher(reg *registry.Registry, runner *Runner, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if runner == nil {
		runner = NewRunner(WithLogger(logger))
	}
	return &Launcher{
		registry: reg,
		runner:   runner,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute runs the tests matching any of the selectors, or every test when
// none are given, and returns the summary
func (l *Launcher) Execute(selectors ...registry.Selector) report.Summary {
	return l.Launch(selectors...).Summary
}

// Launch is Execute with the run identity and the individual outcomes
func (l *Launcher) Launch(selectors ...registry.Selector) Run {
	run := Run{
		ID:        uuid.New().String(),
		StartedAt: l.now(),
	}
	logger := l.logger.With(zap.String("run_id", run.ID))
	logger.Info("Starting test run",
		zap.Int("registered", l.registry.Len()),
		zap.Int("selectors", len(selectors)))

	summary := report.NewSummaryListener()
	run.Outcomes = l.runner.Run(l.registry.Select(selectors...), summary)
	run.Summary = summary.Summary()

	logger.Info("Test run finished",
		zap.Int("found", run.Summary.Found),
		zap.Int("passed", run.Summary.Passed),
		zap.Int("failed", run.Summary.Failed),
		zap.Int("errored", run.Summary.Errored),
		zap.Duration("duration", run.Summary.Duration))
	return run
}
