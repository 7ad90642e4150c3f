package root

import (
	"context"

	"github.com/spf13/cobra"

	"petrack/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive pet dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Health decays while the dashboard is open.
			go svc.DecayLoop(ctx)

			return tui.RunDashboard(ctx, svc, cfg.PollInterval, cmd.OutOrStdout())
		},
	}

	return cmd
}
