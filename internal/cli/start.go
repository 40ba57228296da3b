package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/config"
	"github.com/NRJ900/Quest-Passer/internal/host"
	"github.com/NRJ900/Quest-Passer/internal/models"
)

var (
	startName        string
	startIcon        string
	startIconHash    string
	startPath        string
	startQueue       bool
	startTray        bool
	startNoProvision bool
)

var startCmd = &cobra.Command{
	Use:   "start <app-id> <executable>",
	Short: "Provision and launch a runner, then wait for it to exit",
	Long: `Provision the runner for a game (unless --no-provision), launch it with the
game's title and icon, and wait until it exits.

With --queue the runner is terminated after the configured queue timer.
Interrupting the command stops waiting; the runner keeps running.`,
	Args: cobra.ExactArgs(2),
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startName, "name", "n", "", "Window title (default: the app id)")
	startCmd.Flags().StringVar(&startIcon, "icon", "", "Icon URL")
	startCmd.Flags().StringVar(&startIconHash, "icon-hash", "", "Application icon hash, used to build the icon URL")
	startCmd.Flags().StringVarP(&startPath, "path", "p", "", "Relative install path (default from settings)")
	startCmd.Flags().BoolVar(&startQueue, "queue", false, "Terminate the runner after the queue timer")
	startCmd.Flags().BoolVar(&startTray, "tray", false, "Start hidden in the tray")
	startCmd.Flags().BoolVar(&startNoProvision, "no-provision", false, "Skip copying the runner")
	startCmd.MarkFlagsMutuallyExclusive("icon", "icon-hash")
}

func runStart(cmd *cobra.Command, args []string) error {
	exited := make(chan struct{}, 1)
	notifier := host.NotifierFunc(func(event string) {
		if event != host.EventGameExited {
			return
		}
		select {
		case exited <- struct{}{}:
		default:
		}
	})

	sup, settings, err := loadSupervisor(notifier)
	if err != nil {
		return err
	}

	game := models.Game{
		AppID:          args[0],
		Name:           startName,
		RelPath:        relPathOr(startPath, settings),
		ExecutableName: models.SanitizeExecutableName(args[1]),
		IconHash:       startIconHash,
	}
	if game.Name == "" {
		game.Name = game.AppID
	}
	iconURL := startIcon
	if iconURL == "" {
		iconURL = game.IconURL()
	}

	if !startNoProvision {
		msg, err := sup.Provision(game.AppID, game.RelPath, game.ExecutableName)
		if err != nil {
			return err
		}
		fmt.Println(styleHint.Render(msg))
	}

	proc, msg, err := sup.Spawn(host.SpawnRequest{
		AppID:          game.AppID,
		RelPath:        game.RelPath,
		ExecutableName: game.ExecutableName,
		Name:           game.Name,
		IconURL:        iconURL,
		StartHidden:    startTray,
	})
	if err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render(msg))
	fmt.Println(labelLine("Executable", proc.ExecutablePath))
	fmt.Println(labelLine("Session", proc.ID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var queue <-chan time.Time
	if startQueue {
		d := time.Duration(settings.QueueTimerSeconds) * time.Second
		fmt.Println(labelLine("Queue timer", d.String()))
		timer := time.NewTimer(d)
		defer timer.Stop()
		queue = timer.C
	}

	for {
		select {
		case <-exited:
			printExit(proc)
			rec := proc.Record()
			rec.Queued = startQueue
			if err := config.WriteSession(rec); err != nil {
				fmt.Println(styleWarning.Render(fmt.Sprintf("Session not saved: %v", err)))
			}
			return nil
		case <-queue:
			queue = nil
			fmt.Println(styleHint.Render("Queue timer elapsed, stopping runner..."))
			if err := sup.Terminate(ctx, game.ExecutableName); err != nil {
				fmt.Println(styleError.Render(err.Error()))
			}
		case <-ctx.Done():
			fmt.Println(styleWarning.Render("Stopped waiting; runner is still running."))
			for _, p := range sup.Processes() {
				if p.Status() == host.StatusRunning {
					fmt.Println(labelLine("PID", fmt.Sprintf("%d", p.PID)))
				}
			}
			return nil
		}
	}
}

func printExit(p *host.ManagedProcess) {
	elapsed := p.EndedAt().Sub(p.StartedAt).Round(time.Second)
	switch p.Status() {
	case host.StatusFailed:
		fmt.Printf("%s after %s: %s\n", badgeFailed.Render("Runner failed"), elapsed, p.Reason())
	default:
		fmt.Printf("%s after %s (code %d)\n", badgeExited.Render("Runner exited"), elapsed, p.ExitCode())
	}
}
