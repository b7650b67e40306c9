package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xunit/internal/execution"
	"xunit/internal/migration"
	"xunit/internal/storage"
	"xunit/internal/ui"
)

// ErrTestsFailed is returned by run when any test failed or errored,
// so the process exits with status 1
var ErrTestsFailed = errors.New("tests failed")

// RunCommand handles the run command
type RunCommand struct {
	deps *Deps
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(deps *Deps) *RunCommand {
	return &RunCommand{deps: deps}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.deps.Config
	logger := rc.deps.Logger
	st := storage.NewJSONStorage(cfg)
	out := cmd.OutOrStdout()

	selectors, err := buildSelectors(cfg, st)
	if err != nil {
		return err
	}

	count := 0
	for range rc.deps.Registry.Select(selectors...) {
		count++
	}
	if count == 0 {
		color.New(color.FgYellow).Fprintln(out, "No tests to execute")
		return nil
	}

	opts := []execution.Option{execution.WithLogger(logger)}
	if !cfg.Flags.NoProgress {
		opts = append(opts, execution.WithListener(ui.NewProgressBar(count, cmd.ErrOrStderr())))
	}
	launcher := execution.NewLauncher(rc.deps.Registry, execution.NewRunner(opts...), logger)
	run := launcher.Launch(selectors...)

	if err := st.Save(run.ID, run.Summary, run.Outcomes); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	if cfg.Flags.History {
		if err := rc.record(cmd.Context(), run); err != nil {
			return err
		}
	}

	ui.NewFormatter(out).PrintSummary(run.ID, run.Summary, cfg.Flags.Verbose)

	if !run.Summary.OK() {
		return fmt.Errorf("%w: %d of %d", ErrTestsFailed, run.Summary.FailedCount(), run.Summary.Found)
	}
	return nil
}

// record appends the run to the history database, creating it on first use
func (rc *RunCommand) record(ctx context.Context, run execution.Run) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := rc.deps.Config
	logger := rc.deps.Logger

	if err := migration.NewSchemaMigrator(cfg, logger).Run(ctx); err != nil {
		return fmt.Errorf("prepare history: %w", err)
	}
	driver, dsn, err := cfg.HistoryDataSource()
	if err != nil {
		return err
	}
	history, err := storage.OpenHistory(ctx, driver, dsn, logger)
	if err != nil {
		return err
	}
	defer history.Close()

	if err := history.Record(ctx, run.ID, run.StartedAt, run.Summary); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	logger.Info("Recorded run", zap.String("run_id", run.ID), zap.String("driver", driver))
	return nil
}
