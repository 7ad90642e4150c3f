package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <subject_id> <task_id>",
		Short: "Complete a task and collect the reward",
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
			res, err := svc.CompleteTask(ctx, subjectID, taskID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), res.TaskID,
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.IconTrophy, ui.BadgeLevelUp,
					ui.Gold.Render(fmt.Sprintf("Level %d → %d, +%d coins (balance %d)",
						res.LevelBefore, res.LevelAfter, res.CoinBonus, res.Coins)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
					ui.LabelValue("XP", fmt.Sprintf("%d (level %d)", res.XPTotal, res.LevelAfter)))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
				ui.LabelValue("Today", fmt.Sprintf("%d task(s) done", res.History[res.Date])))
			return nil
		},
	}

	return cmd
}

func requireIDPair(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("subject_id and task_id are required")
	}
	for _, a := range args {
		if _, err := strconv.ParseInt(a, 10, 64); err != nil {
			return errors.New("ids must be integers")
		}
	}
	return nil
}
