package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/models"
)

var provisionPath string

var provisionCmd = &cobra.Command{
	Use:   "provision <app-id> <executable>",
	Short: "Install the runner under a game's install path",
	Long: `Copy the bundled runner to games/<app-id>/<path>/<executable>.

The executable name may contain path separators for titles whose binary
lives in a subdirectory. Characters invalid in file names are removed.`,
	Args: cobra.ExactArgs(2),
	RunE: runProvision,
}

func init() {
	provisionCmd.Flags().StringVarP(&provisionPath, "path", "p", "", "Relative install path (default from settings)")
}

func runProvision(cmd *cobra.Command, args []string) error {
	sup, settings, err := loadSupervisor(nil)
	if err != nil {
		return err
	}

	exe := models.SanitizeExecutableName(args[1])
	msg, err := sup.Provision(args[0], relPathOr(provisionPath, settings), exe)
	if err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render(msg))
	return nil
}
