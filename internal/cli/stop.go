package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/models"
)

var stopCmd = &cobra.Command{
	Use:   "stop <executable>",
	Short: "Force-kill every runner with the given executable name",
	Long: `Force-kill every process whose image name matches the executable.

This matches by name only: runners of other games sharing the same
executable name are stopped too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sup, _, err := loadSupervisor(nil)
		if err != nil {
			return err
		}

		exe := models.SanitizeExecutableName(args[0])
		if err := sup.Terminate(cmd.Context(), exe); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Stopped " + exe))
		return nil
	},
}
