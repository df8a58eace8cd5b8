package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var section int

	cmd := &cobra.Command{
		Use:   "show DOC",
		Short: "Show a checklist as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Documents.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			sectionIdx := section - 1
			if section > 0 && sectionIdx >= len(doc.Sections) {
				return fmt.Errorf("section %d does not exist (document has %d)", section, len(doc.Sections))
			}

			prog := doc.Progress()
			fmt.Println(formatter.Header(doc.Name))
			fmt.Printf("%s %s\n\n",
				formatter.RenderProgress(prog.Pct(), 20),
				formatter.FormatCount(prog.Checked, prog.Total))
			fmt.Print(formatter.RenderChecklist(doc, sectionIdx))
			return nil
		},
	}

	cmd.Flags().IntVar(&section, "section", 0, "Show only one section (1-based)")
	return cmd
}
