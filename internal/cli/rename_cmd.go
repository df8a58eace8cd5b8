package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename DOC NAME",
		Short: "Rename a stored checklist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Documents.Rename(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed to %s\n", args[1])
			return nil
		},
	}
}
