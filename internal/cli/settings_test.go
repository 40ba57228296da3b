package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NRJ900/Quest-Passer/internal/models"
)

func TestApplySetting(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		key     string
		value   string
		want    func(s *models.Settings)
		wantErr bool
	}{
		{name: "runner path", key: "runner_path", value: filepath.Join(wd, "opt", "runner"), want: func(s *models.Settings) { s.RunnerPath = filepath.Join(wd, "opt", "runner") }},
		{name: "clear runner path", key: "runner_path", value: "  ", want: func(s *models.Settings) { s.RunnerPath = "" }},
		{name: "games dir", key: "games_dir", value: filepath.Join(wd, "srv", "games"), want: func(s *models.Settings) { s.GamesDir = filepath.Join(wd, "srv", "games") }},
		{name: "relative games dir", key: "games_dir", value: "games", want: func(s *models.Settings) { s.GamesDir = filepath.Join(wd, "games") }},
		{name: "relative runner path", key: "runner_path", value: "res/runner", want: func(s *models.Settings) { s.RunnerPath = filepath.Join(wd, "res", "runner") }},
		{name: "default path", key: "default_path", value: "win64", want: func(s *models.Settings) { s.DefaultPath = "win64" }},
		{name: "empty default path", key: "default_path", value: "", wantErr: true},
		{name: "queue timer", key: "queue_timer_seconds", value: "60", want: func(s *models.Settings) { s.QueueTimerSeconds = 60 }},
		{name: "zero queue timer", key: "queue_timer_seconds", value: "0", wantErr: true},
		{name: "bad queue timer", key: "queue_timer_seconds", value: "soon", wantErr: true},
		{name: "unknown key", key: "colour", value: "blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := models.NewSettings()
			got.RunnerPath = "/old/runner"
			want := *got

			err := applySetting(got, tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if diff := cmp.Diff(&want, got); diff != "" {
					t.Errorf("settings changed on error (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("applySetting: %v", err)
			}
			tt.want(&want)
			if diff := cmp.Diff(&want, got); diff != "" {
				t.Errorf("applySetting mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRelPathOr(t *testing.T) {
	s := models.NewSettings()
	if got := relPathOr("", s); got != models.DefaultRelativePath {
		t.Errorf("relPathOr(\"\") = %q", got)
	}
	if got := relPathOr("win64", s); got != "win64" {
		t.Errorf("relPathOr(\"win64\") = %q", got)
	}
}
