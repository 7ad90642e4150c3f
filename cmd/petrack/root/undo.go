package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <subject_id> <task_id>",
		Short: "Reopen a completed task",
		Long: `Reopen a task by clearing its completed flag.

XP and coins already earned stay earned: rewards are granted per completion
event, and the task can only ever award XP once.`,
		Args: requireIDPair,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			subjectID, _ := strconv.ParseInt(args[0], 10, 64)
			taskID, _ := strconv.ParseInt(args[1], 10, 64)
			if err := svc.ReopenTask(ctx, subjectID, taskID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n",
				ui.Warn.Render(ui.IconWarn+" Reopened"), taskID,
				ui.Muted.Render("(earned XP kept)"))
			return nil
		},
	}

	return cmd
}
