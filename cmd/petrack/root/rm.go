package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a subject or a task",
	}
	cmd.AddCommand(newRmSubjectCmd(), newRmTaskCmd())
	return cmd
}

func newRmSubjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject <subject_id>",
		Short: "Remove a subject and all of its tasks",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("subject_id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("subject_id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			subjectID, _ := strconv.ParseInt(args[0], 10, 64)
			if err := svc.DeleteSubject(ctx, subjectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render("🗑️ Removed subject"), subjectID)
			return nil
		},
	}

	return cmd
}

func newRmTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task <subject_id> <task_id>",
		Short: "Remove a single task",
		Args:  requireIDPair,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			subjectID, _ := strconv.ParseInt(args[0], 10, 64)
			taskID, _ := strconv.ParseInt(args[1], 10, 64)
			if err := svc.DeleteTask(ctx, subjectID, taskID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render("🗑️ Removed task"), taskID)
			return nil
		},
	}

	return cmd
}
