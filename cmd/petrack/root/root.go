package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"petrack/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "petrack",
	Short:         "Petrack — task manager with a virtual pet",
	Long:          "Petrack is a local-first task manager where completing tasks earns XP and coins that keep a virtual pet fed and happy.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newUndoCmd(),
		newEditCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newShopCmd(),
		newBuyCmd(),
		newUseCmd(),
		newPetCmd(),
		newServeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
