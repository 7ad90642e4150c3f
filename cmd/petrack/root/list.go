package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

func newListCmd() *cobra.Command {
	var showDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects and their tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			subjects, err := svc.Subjects().List(ctx)
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No subjects yet. Add one with `petrack add subject <title>`."))
				return nil
			}

			for _, sub := range subjects {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.IconBook, ui.H2.Render(sub.Title), ui.Muted.Render(fmt.Sprintf("#%d", sub.ID)))
				shown := 0
				for _, t := range sub.Tasks {
					if t.Completed && !showDone {
						continue
					}
					mark := "[ ]"
					if t.Completed {
						mark = ui.Good.Render("[x]")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s #%d %s %s\n",
						mark, t.ID, t.Content, ui.Muted.Render("("+t.Difficulty+")"))
					shown++
				}
				if shown == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("  (nothing pending)"))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showDone, "all", "a", false, "Include completed tasks")
	return cmd
}
