package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <subject_id> <task_id> <content>",
		Short: "Rewrite a task's content",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("subject_id, task_id and content are required")
			}
			return requireIDPair(cmd, args[:2])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			subjectID, _ := strconv.ParseInt(args[0], 10, 64)
			taskID, _ := strconv.ParseInt(args[1], 10, 64)
			if err := svc.EditTask(ctx, subjectID, taskID, args[2]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Good.Render(ui.IconDone+" Updated"), taskID)
			return nil
		},
	}

	return cmd
}
