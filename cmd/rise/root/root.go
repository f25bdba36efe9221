package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rise/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rise",
	Short:         "RISE — habit scheduling with XP progression",
	Long:          "RISE proposes a starter daily protocol from a short questionnaire, tracks the accepted schedule, and levels up a profile as tasks complete.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newServeCmd(),
		newOnboardCmd(),
		newListCmd(),
		newDoCmd(),
		newStatusCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
