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

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the item catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			coins, err := svc.State().Coins(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, fmt.Sprintf("Shop (you have %s %d)", ui.IconCoin, coins)))
			for _, it := range engine.Catalog() {
				pack := ""
				if it.Quantity > 1 {
					pack = fmt.Sprintf(" x%d", it.Quantity)
				}
				affordable := ui.Good.Render(fmt.Sprintf("%d coins", it.Price))
				if it.Price > coins {
					affordable = ui.Bad.Render(fmt.Sprintf("%d coins", it.Price))
				}
				fmt.Fprintf(out, "%s #%d %s%s — %s\n", ui.CategoryIcon(it.Category), it.ID, it.Name, pack, affordable)
				fmt.Fprintf(out, "   %s\n", ui.Muted.Render(it.Description))
			}
			fmt.Fprintln(out, ui.Muted.Render("\nBuy with `petrack buy <item_id>`."))
			return nil
		},
	}

	return cmd
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item_id>",
		Short: "Buy a catalog item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item_id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("item_id must be an integer")
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

			itemID, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.Purchase(ctx, itemID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconShop+" Bought"), res.Item.Name,
				ui.Muted.Render(fmt.Sprintf("(-%d coins, %d left)", res.Item.Price, res.Coins)))
			return nil
		},
	}

	return cmd
}

func newUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <item_id>",
		Short: "Use an item from the backpack",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item_id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("item_id must be an integer")
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

			itemID, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.UseItem(ctx, itemID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Used %s %s\n",
				ui.CategoryIcon(res.Item.Category), res.Item.Name,
				ui.Muted.Render(fmt.Sprintf("(%d remaining)", res.Remaining)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				ui.IconHeart, ui.HealthText(res.HealthBefore), ui.HealthText(res.HealthAfter))
			return nil
		},
	}

	return cmd
}
