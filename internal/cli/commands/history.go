package commands

import (
	"context"

	"github.com/spf13/cobra"

	"xunit/internal/migration"
	"xunit/internal/storage"
	"xunit/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	deps *Deps
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(deps *Deps) *HistoryCommand {
	return &HistoryCommand{deps: deps}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := hc.deps.Config

	// an empty history is created on first use rather than reported as an error
	if err := migration.NewSchemaMigrator(cfg, hc.deps.Logger).Run(ctx); err != nil {
		return err
	}
	driver, dsn, err := cfg.HistoryDataSource()
	if err != nil {
		return err
	}
	history, err := storage.OpenHistory(ctx, driver, dsn, hc.deps.Logger)
	if err != nil {
		return err
	}
	defer history.Close()

	runs, err := history.Recent(ctx, cfg.Flags.Limit)
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout())
	formatter.PrintHistory(runs)
	if len(runs) == 0 {
		return nil
	}

	failures, err := history.Failures(ctx, runs[0].ID)
	if err != nil {
		return err
	}
	formatter.PrintRunFailures(runs[0].ID, failures)
	return nil
}
