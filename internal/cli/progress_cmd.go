package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var section int

	cmd := &cobra.Command{
		Use:   "progress DOC",
		Short: "Show checked/total counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := app.Checklist.Progress(context.Background(), args[0], section-1)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.RenderProgress(prog.Pct(), 20),
				formatter.FormatCount(prog.Checked, prog.Total))
			return nil
		},
	}

	cmd.Flags().IntVar(&section, "section", 0, "Scope to one section (1-based)")
	return cmd
}
