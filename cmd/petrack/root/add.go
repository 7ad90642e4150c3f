package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"petrack/internal/engine"
	"petrack/internal/ui"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a subject or a task",
	}
	cmd.AddCommand(newAddSubjectCmd(), newAddTaskCmd())
	return cmd
}

func newAddSubjectCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "subject <title>",
		Short: "Add a subject",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			subject, err := svc.CreateSubject(ctx, args[0], color)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d %s\n",
				ui.Good.Render(ui.IconPlus+" Added subject"), ui.IconBook, subject.ID, subject.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "Display color (hex)")
	return cmd
}

func newAddTaskCmd() *cobra.Command {
	var diff string

	cmd := &cobra.Command{
		Use:   "task <subject_id> <content>",
		Short: "Add a task to a subject",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("subject_id and content are required")
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
			difficulty := engine.ParseDifficulty(diff)
			task, err := svc.AddTask(ctx, subjectID, args[1], difficulty)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added task"), task.ID, task.Content,
				ui.Muted.Render(fmt.Sprintf("(%s, +%d XP on completion)", task.Difficulty, difficulty.XP())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "medium", "Difficulty (low|medium|high)")
	return cmd
}
