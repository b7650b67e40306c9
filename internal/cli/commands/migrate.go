package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xunit/internal/migration"
)

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	deps *Deps
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(deps *Deps) *MigrateCommand {
	return &MigrateCommand{deps: deps}
}

// Execute runs the command
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var migrator migration.Migrator = migration.NewSchemaMigrator(mc.deps.Config, mc.deps.Logger)
	if err := migrator.Run(ctx); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ History database is ready")
	return nil
}
