package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTuiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui DOC",
		Short: "Work through a checklist interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("tui requires an interactive terminal")
			}
			p := tea.NewProgram(newChecklistModel(app, args[0]))
			_, err := p.Run()
			return err
		},
	}
}
