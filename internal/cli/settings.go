package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/config"
	"github.com/NRJ900/Quest-Passer/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show host settings",
	Long: `Show the host settings stored in ~/.questpasser/settings.yaml.

Use "settings set <key> <value>" to change one. Keys:
  runner_path          bundled runner to copy (empty = resources/ next to the host)
  games_dir            provisioned games directory (empty = games/ next to the host)
  default_path         relative install path used when none is given
  queue_timer_seconds  runtime of a queued session`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		layout, err := layoutFor(settings)
		if err != nil {
			return err
		}

		fmt.Println(labelLine("runner_path", orDefault(settings.RunnerPath, layout.RunnerPath)))
		fmt.Println(labelLine("games_dir", orDefault(settings.GamesDir, layout.GamesDir)))
		fmt.Println(labelLine("default_path", settings.DefaultPath))
		fmt.Println(labelLine("queue_timer_seconds", strconv.Itoa(settings.QueueTimerSeconds)))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a host setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if err := applySetting(settings, args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println(styleSuccess.Render("Settings updated."))
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

// applySetting sets one key on settings.
func applySetting(settings *models.Settings, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "runner_path":
		path, err := absOrEmpty(value)
		if err != nil {
			return err
		}
		settings.RunnerPath = path
	case "games_dir":
		path, err := absOrEmpty(value)
		if err != nil {
			return err
		}
		settings.GamesDir = path
	case "default_path":
		if value == "" {
			return fmt.Errorf("default_path must not be empty")
		}
		settings.DefaultPath = value
	case "queue_timer_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid queue_timer_seconds %q: expected a positive number", value)
		}
		settings.QueueTimerSeconds = n
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// absOrEmpty resolves a path setting against the current directory; empty
// selects the default location.
func absOrEmpty(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	path, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", value, err)
	}
	return path, nil
}

func orDefault(value, resolved string) string {
	if value != "" {
		return value
	}
	return resolved + styleHint.Render(" (default)")
}
