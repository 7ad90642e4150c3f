package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

func newPetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Manage the pet",
	}
	cmd.AddCommand(newPetNameCmd())
	return cmd
}

func newPetNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [new name]",
		Short: "Show or set the pet's name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				name, err := svc.State().PetName(ctx)
				if err != nil {
					return err
				}
				if name == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("The pet has no name yet."))
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconPet, ui.Title.Render(name))
				return nil
			}

			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return errors.New("name must not be blank")
			}
			if err := svc.State().SetPetName(ctx, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconSparkle+" Named"), name)
			return nil
		},
	}

	return cmd
}
