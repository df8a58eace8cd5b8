package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored checklists",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := app.Documents.List(context.Background())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println(formatter.Dim("No checklists yet. Import one with: tally import FILE"))
				return nil
			}

			for _, info := range infos {
				fmt.Printf("%-24s %s  %s  %s\n",
					formatter.Bold(info.Record.Name),
					formatter.RenderProgress(info.Progress.Pct(), 12),
					formatter.FormatCount(info.Progress.Checked, info.Progress.Total),
					formatter.Dim(formatter.TruncID(info.Record.ID)),
				)
			}
			return nil
		},
	}
}
