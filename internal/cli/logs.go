package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/host/watcher"
	"github.com/NRJ900/Quest-Passer/internal/runner"
)

var (
	logsPath   string
	logsFollow bool
)

var logsCmd = &cobra.Command{
	Use:   "logs <app-id>",
	Short: "Show a runner's debug trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sup, settings, err := loadSupervisor(nil)
		if err != nil {
			return err
		}

		dir := sup.Layout().TargetDir(args[0], relPathOr(logsPath, settings))
		f := watcher.NewFollower(filepath.Join(dir, runner.TraceFileName), os.Stdout)

		if !logsFollow {
			return f.Drain()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return f.Follow(ctx)
	},
}

func init() {
	logsCmd.Flags().StringVarP(&logsPath, "path", "p", "", "Relative install path (default from settings)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Keep printing new trace lines")
}
