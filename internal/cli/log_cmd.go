package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log DOC",
		Short: "Show recent check/uncheck activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Activity.ListRecent(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(formatter.Dim("No activity yet."))
				return nil
			}

			for _, e := range entries {
				mark := formatter.CheckMark(e.Action == domain.ActionCheck)
				fmt.Printf("%s %s %s %s\n",
					formatter.Dim(formatter.HumanTimestamp(e.CreatedAt)),
					mark,
					e.ItemText,
					formatter.Dim(e.ItemPath),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")
	return cmd
}
