package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xunit/internal/domain"
	"xunit/internal/registry"
	"xunit/internal/storage"
	"xunit/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	deps *Deps
}

// NewListCommand creates a new ListCommand
func NewListCommand(deps *Deps) *ListCommand {
	return &ListCommand{deps: deps}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.deps.Config
	out := cmd.OutOrStdout()

	var selectors []registry.Selector
	if cfg.Flags.NameFilter != "" {
		selectors = append(selectors, registry.SelectPattern(cfg.Flags.NameFilter))
	}

	var tests []domain.TestID
	for tc := range lc.deps.Registry.Select(selectors...) {
		tests = append(tests, tc.ID)
	}
	if len(tests) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No tests found")
		return nil
	}

	// a missing results file just means nothing is marked
	failed, _ := lastFailed(storage.NewJSONStorage(cfg))

	ui.NewFormatter(out).PrintTestList(tests, cfg.Flags.TestCases, failed)
	return nil
}
