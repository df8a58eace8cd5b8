package cli

import (
	"github.com/alexanderramin/tally/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Documents service.DocumentService
	Checklist service.ChecklistService
	Activity  service.ActivityService

	// IsInteractive reports whether stdin is attached to a terminal;
	// confirmation prompts are skipped when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tally",
		Short: "Track progress through markdown checklists",
	}

	root.AddCommand(
		newImportCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newCheckCmd(app),
		newUncheckCmd(app),
		newProgressCmd(app),
		newExportCmd(app),
		newLogCmd(app),
		newRenameCmd(app),
		newRemoveCmd(app),
		newTuiCmd(app),
	)

	return root
}
