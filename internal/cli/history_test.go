package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/NRJ900/Quest-Passer/internal/models"
)

func TestFormatSession(t *testing.T) {
	start := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)

	tests := []struct {
		name string
		rec  models.SessionRecord
		want []string
	}{
		{
			name: "exited",
			rec:  models.SessionRecord{Name: "Game", Status: "exited", ExitCode: 0, StartedAt: start, EndedAt: start.Add(15*time.Minute + 30*time.Second)},
			want: []string{"Game", "15m30s", "code 0"},
		},
		{
			name: "failed and queued",
			rec:  models.SessionRecord{Name: "Game", Status: "failed", ExitCode: -1, Queued: true, StartedAt: start, EndedAt: start},
			want: []string{"failed", "(queued)"},
		},
		{
			name: "long name",
			rec:  models.SessionRecord{Name: strings.Repeat("x", 40), Status: "exited", StartedAt: start, EndedAt: start},
			want: []string{strings.Repeat("x", 21) + "..."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatSession(&tt.rec)
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("formatSession() = %q, missing %q", got, s)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("abcdefghijkl", 8); got != "abcde..." {
		t.Errorf("truncate() = %q", got)
	}
}

func TestPadRightWide(t *testing.T) {
	if got := padRight("ゲーム", 8); got != "ゲーム  " {
		t.Errorf("padRight() = %q", got)
	}
	if got := padRight("long enough", 4); got != "long enough" {
		t.Errorf("padRight() = %q", got)
	}
}
