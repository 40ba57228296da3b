package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/config"
	"github.com/NRJ900/Quest-Passer/internal/host"
	"github.com/NRJ900/Quest-Passer/internal/models"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [app-id]",
	Short: "List finished runner sessions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appID := ""
		if len(args) == 1 {
			appID = args[0]
		}

		records, err := config.ListSessions(appID)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No sessions. Run 'questpasser start <app-id> <executable>' to start one.")
			return nil
		}

		if historyLimit > 0 && len(records) > historyLimit {
			records = records[:historyLimit]
		}
		for _, r := range records {
			fmt.Println(formatSession(r))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of sessions to show (0 = all)")
}

func formatSession(r *models.SessionRecord) string {
	badge := badgeExited.Render(fmt.Sprintf("code %d", r.ExitCode))
	if r.Status == string(host.StatusFailed) {
		badge = badgeFailed.Render("failed")
	}
	queued := ""
	if r.Queued {
		queued = styleHint.Render(" (queued)")
	}
	return fmt.Sprintf("  %s  %s  %s  %s%s",
		styleLabel.Render(r.StartedAt.Local().Format("2006-01-02 15:04")),
		styleValue.Render(padRight(truncate(r.Name, 24), 24)),
		padRight(r.Duration().Round(time.Second).String(), 10),
		badge,
		queued,
	)
}
