package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/host"
	"github.com/NRJ900/Quest-Passer/internal/models"
)

var statusCmd = &cobra.Command{
	Use:   "status <executable>",
	Short: "List running processes with the given executable name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exe := models.SanitizeExecutableName(args[0])
		procs, err := host.FindProcesses(cmd.Context(), exe)
		if err != nil {
			return err
		}

		if len(procs) == 0 {
			fmt.Println(styleWarning.Render("Not running: ") + styleValue.Render(exe))
			return nil
		}

		fmt.Println(badgeRunning.Render(fmt.Sprintf("%d running", len(procs))))
		for _, p := range procs {
			fmt.Println()
			fmt.Println(labelLine("PID", fmt.Sprintf("%d", p.PID)))
			if p.Exe != "" {
				fmt.Println(labelLine("Path", p.Exe))
			}
			if !p.StartedAt.IsZero() {
				up := time.Since(p.StartedAt).Round(time.Second)
				fmt.Println(labelLine("Uptime", up.String()))
			}
		}
		return nil
	},
}
