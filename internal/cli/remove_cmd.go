package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm DOC",
		Aliases: []string{"remove"},
		Short:   "Delete a stored checklist and its activity",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := app.Documents.GetRecord(ctx, args[0])
			if err != nil {
				return err
			}

			if !force {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("refusing to delete %q without --force in a non-interactive session", rec.Name)
				}
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete %q and its activity log?", rec.Name)).
						Value(&confirmed),
				)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Documents.Delete(ctx, rec.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", rec.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")
	return cmd
}
