package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the pet and your progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			o, err := svc.Overview(ctx)
			if err != nil {
				return err
			}

			name := o.PetName
			if name == "" {
				name = "Your pet"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPet, name+" ("+ui.HealthMood(o.Health)+")"))
			fmt.Fprintf(out, "%s %s %s\n", ui.IconHeart, ui.HealthBar(o.Health, 20), ui.HealthText(o.Health))
			fmt.Fprintln(out, "")

			toNext := o.NextLevelXP - o.XP
			fmt.Fprintln(out, ui.LabelValue("Level", o.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (next at %d, %d to go)", o.XP, o.NextLevelXP, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, o.Coins)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFire, o.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d task(s) done", o.TasksToday)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBag+" Backpack"))
			if len(o.Inventory) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty — visit `petrack shop`)"))
				return nil
			}
			for _, it := range o.Inventory {
				fmt.Fprintf(out, "- %s %s x%d %s\n",
					ui.CategoryIcon(it.Category), it.Name, it.Quantity, ui.Muted.Render("#"+fmt.Sprint(it.ID)))
			}
			return nil
		},
	}

	return cmd
}
