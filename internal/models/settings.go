package models

// Default settings values.
const (
	DefaultRelativePath      = "bin"
	DefaultQueueTimerSeconds = 930
)

// Settings represents the host settings.
// This corresponds to ~/.questpasser/settings.yaml.
type Settings struct {
	Version           int    `yaml:"version"`
	RunnerPath        string `yaml:"runner_path"`         // empty = bundled runner next to the host
	GamesDir          string `yaml:"games_dir"`           // empty = games/ next to the host
	DefaultPath       string `yaml:"default_path"`        // relative path used when a title has none
	QueueTimerSeconds int    `yaml:"queue_timer_seconds"` // runtime of a queued session
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:           1,
		DefaultPath:       DefaultRelativePath,
		QueueTimerSeconds: DefaultQueueTimerSeconds,
	}
}

// Normalize fills zero values with defaults.
func (s *Settings) Normalize() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.DefaultPath == "" {
		s.DefaultPath = DefaultRelativePath
	}
	if s.QueueTimerSeconds <= 0 {
		s.QueueTimerSeconds = DefaultQueueTimerSeconds
	}
}
