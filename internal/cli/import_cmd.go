package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a markdown checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Documents.Import(context.Background(), args[0], name)
			if err != nil {
				return err
			}

			prog, err := app.Checklist.Progress(context.Background(), rec.ID, -1)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %s (%s): %d items, %d already checked\n",
				formatter.Bold(rec.Name), formatter.TruncID(rec.ID), prog.Total, prog.Checked)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Document name (defaults to the file name)")
	return cmd
}
