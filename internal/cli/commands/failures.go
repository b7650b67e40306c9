package commands

import (
	"github.com/spf13/cobra"

	"xunit/internal/storage"
	"xunit/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	deps *Deps
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(deps *Deps) *FailuresCommand {
	return &FailuresCommand{deps: deps}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	st := storage.NewJSONStorage(fc.deps.Config)
	results, err := st.Load()
	if err != nil {
		return err
	}

	var viewer ui.Viewer = ui.NewErrorViewer(st, cmd.OutOrStdout())
	return viewer.View(results)
}
