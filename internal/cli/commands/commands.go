package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xunit/internal/cli"
	"xunit/internal/config"
	"xunit/internal/registry"
)

// Deps are shared by all commands. Logger is replaced once the root
// command has parsed --log-level.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Registry *registry.Registry
}

// Commands holds all CLI commands
type Commands struct {
	deps     *Deps
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	Migrate  *MigrateCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(deps *Deps) *Commands {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Commands{
		deps:     deps,
		Run:      NewRunCommand(deps),
		List:     NewListCommand(deps),
		Failures: NewFailuresCommand(deps),
		Migrate:  NewMigrateCommand(deps),
		History:  NewHistoryCommand(deps),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		c.deps.Config.Flags = flags.ToConfigFlags()
		return nil
	}

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the registered test suites",
		Long:    "Run the registered tests one at a time, print the report and save the results",
		Args:    cobra.NoArgs,
		PreRunE: applyFlags,
		RunE:    c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'Calculator.*' or '*assert*')")
	runCmd.Flags().StringArrayVarP(&flags.Selectors, "select", "s", nil, "Select a suite, a test ('Suite.name') or a pattern; repeatable")
	runCmd.Flags().StringVarP(&flags.PlanPath, "plan", "p", "", "YAML file listing the selectors of the run")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only tests that did not pass in the last run (from storage/test-results.json)")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show status and kind of every failure")
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the progress bar")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run in the history database")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered tests",
		Long:    "List the registered suites without running them",
		Args:    cobra.NoArgs,
		PreRunE: applyFlags,
		RunE:    c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'Calculator.*' or '*assert*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List the tests of every suite")
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last test run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the run history database",
		Long:  "Create the history database (MySQL) or its directory (SQLite) and the history tables",
		Args:  cobra.NoArgs,
		RunE:  c.Migrate.Execute,
	}
	rootCmd.AddCommand(migrateCmd)

	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recent test runs",
		Long:    "Print the most recent runs recorded with 'run --history' and the failures of the latest one",
		Args:    cobra.NoArgs,
		PreRunE: applyFlags,
		RunE:    c.History.Execute,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", config.DefaultHistoryLimit, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
