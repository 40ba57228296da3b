package config

import (
	"github.com/NRJ900/Quest-Passer/internal/models"
)

// LoadSettings loads the host settings from ~/.questpasser/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom loads settings from path, filling missing values with
// defaults.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	s, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	s.Normalize()
	return s, nil
}

// SaveSettings saves the host settings to ~/.questpasser/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
