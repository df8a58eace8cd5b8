package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check DOC PATH",
		Short: "Mark a checklist item as done",
		Long:  "Mark an item as done. PATH is the 1-based dotted address shown by `tally show`, e.g. 2.1.3.",
		Args:  cobra.ExactArgs(2),
		RunE:  runSetChecked(app, true),
	}
}

func newUncheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "uncheck DOC PATH",
		Short: "Mark a checklist item as not done",
		Args:  cobra.ExactArgs(2),
		RunE:  runSetChecked(app, false),
	}
}

func runSetChecked(app *App, value bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := domain.ParsePath(args[1])
		if err != nil {
			return err
		}

		item, err := app.Checklist.SetChecked(context.Background(), args[0], p, value)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", formatter.CheckMark(item.Checked), item.Text)

		prog, err := app.Checklist.Progress(context.Background(), args[0], -1)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n",
			formatter.RenderProgress(prog.Pct(), 20),
			formatter.FormatCount(prog.Checked, prog.Total))
		return nil
	}
}
