package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NRJ900/Quest-Passer/internal/models"
)

// SessionsDirName holds saved session records under the global directory.
const SessionsDirName = "sessions"

// SessionsDir returns ~/.questpasser/sessions.
func SessionsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionsDirName), nil
}

// WriteSession saves a session record under the global sessions directory.
func WriteSession(rec *models.SessionRecord) error {
	dir, err := SessionsDir()
	if err != nil {
		return err
	}
	return WriteSessionTo(dir, rec)
}

// WriteSessionTo saves rec as <dir>/<app_id>/<timestamp>-<session_id>.yaml.
func WriteSessionTo(dir string, rec *models.SessionRecord) error {
	if rec.AppID == "" || rec.SessionID == "" {
		return errors.New("session record needs an app id and a session id")
	}
	name := fmt.Sprintf("%s-%s.yaml", rec.StartedAt.UTC().Format("2006-01-02T15-04-05"), rec.SessionID)
	return SaveYAML(filepath.Join(dir, rec.AppID, name), rec)
}

// ListSessions returns saved records for appID, or for every title when
// appID is empty, newest first.
func ListSessions(appID string) ([]*models.SessionRecord, error) {
	dir, err := SessionsDir()
	if err != nil {
		return nil, err
	}
	return ListSessionsIn(dir, appID)
}

// ListSessionsIn is ListSessions rooted at dir. Unreadable records are skipped.
func ListSessionsIn(dir, appID string) ([]*models.SessionRecord, error) {
	var appDirs []string
	if appID != "" {
		appDirs = []string{filepath.Join(dir, appID)}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to read sessions dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				appDirs = append(appDirs, filepath.Join(dir, e.Name()))
			}
		}
	}

	var records []*models.SessionRecord
	for _, appDir := range appDirs {
		entries, err := os.ReadDir(appDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read sessions dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			rec := &models.SessionRecord{}
			if err := LoadYAML(filepath.Join(appDir, e.Name()), rec); err != nil {
				continue
			}
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})
	return records, nil
}
