package models

import "time"

// SessionRecord is the saved outcome of one runner session.
// Records live in ~/.questpasser/sessions/<app_id>/<session_id>.yaml.
type SessionRecord struct {
	SessionID      string    `yaml:"session_id"`
	AppID          string    `yaml:"app_id"`
	Name           string    `yaml:"name"`
	ExecutableName string    `yaml:"executable_name"`
	PID            int       `yaml:"pid"`
	Status         string    `yaml:"status"` // exited | failed
	ExitCode       int       `yaml:"exit_code"`
	Reason         string    `yaml:"reason,omitempty"`
	Queued         bool      `yaml:"queued,omitempty"`
	StartedAt      time.Time `yaml:"started_at"`
	EndedAt        time.Time `yaml:"ended_at"`
}

// Duration returns how long the session ran.
func (r *SessionRecord) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
