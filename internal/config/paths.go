// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/NRJ900/Quest-Passer/internal/models"
)

const (
	// GlobalDirName is the name of the global Quest Passer directory.
	GlobalDirName = ".questpasser"

	// GamesDirName is the name of the provisioned games directory next to the host.
	GamesDirName = "games"

	// ResourcesDirName holds files bundled with the host.
	ResourcesDirName = "resources"
)

// File names
const (
	SettingsFileName = "settings.yaml"
)

// RunnerFileName is the bundled runner binary name.
func RunnerFileName() string {
	if runtime.GOOS == "windows" {
		return "runner.exe"
	}
	return "runner"
}

// GlobalDir returns the path to the global Quest Passer directory (~/.questpasser/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// HostDir returns the directory containing the running host executable.
func HostDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// GamesDir returns the provisioned games directory, honoring the settings
// override.
func GamesDir(s *models.Settings) (string, error) {
	if s != nil && s.GamesDir != "" {
		return s.GamesDir, nil
	}
	dir, err := HostDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, GamesDirName), nil
}

// BundledRunnerPath returns the runner binary copied into game folders,
// honoring the settings override.
func BundledRunnerPath(s *models.Settings) (string, error) {
	if s != nil && s.RunnerPath != "" {
		return s.RunnerPath, nil
	}
	dir, err := HostDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ResourcesDirName, RunnerFileName()), nil
}
