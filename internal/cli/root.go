// Package cli implements the questpasser CLI commands.
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/config"
	"github.com/NRJ900/Quest-Passer/internal/host"
	"github.com/NRJ900/Quest-Passer/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "questpasser",
	Short: "Run stand-in game sessions for activity detectors",
	Long: `Quest Passer provisions a small runner executable under a game's expected
install path and launches it, so an activity detector sees the game running.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSupervisor builds a supervisor from the saved settings.
func loadSupervisor(notifier host.Notifier) (*host.Supervisor, *models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	layout, err := layoutFor(settings)
	if err != nil {
		return nil, nil, err
	}

	sup := host.NewSupervisor(host.Options{
		Layout:   layout,
		Notifier: notifier,
		Logger:   log.Default(),
	})
	return sup, settings, nil
}

func layoutFor(settings *models.Settings) (host.Layout, error) {
	gamesDir, err := config.GamesDir(settings)
	if err != nil {
		return host.Layout{}, fmt.Errorf("failed to resolve games directory: %w", err)
	}
	runnerPath, err := config.BundledRunnerPath(settings)
	if err != nil {
		return host.Layout{}, fmt.Errorf("failed to resolve runner path: %w", err)
	}
	return host.Layout{GamesDir: gamesDir, RunnerPath: runnerPath}, nil
}

// relPathOr returns path, or the configured default when it is empty.
func relPathOr(path string, settings *models.Settings) string {
	if path != "" {
		return path
	}
	return settings.DefaultPath
}
