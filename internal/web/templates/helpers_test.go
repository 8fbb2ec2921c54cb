package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/boozedog/smoovboard/internal/ticket"
)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", time.Now().Add(-10 * time.Second), "just now"},
		{"1 minute ago", time.Now().Add(-1 * time.Minute), "1 minute ago"},
		{"5 minutes ago", time.Now().Add(-5 * time.Minute), "5 minutes ago"},
		{"1 hour ago", time.Now().Add(-1 * time.Hour), "1 hour ago"},
		{"3 hours ago", time.Now().Add(-3 * time.Hour), "3 hours ago"},
		{"yesterday", time.Now().Add(-30 * time.Hour), "yesterday"},
		{"5 days ago", time.Now().Add(-5 * 24 * time.Hour), "5 days ago"},
		{"old date falls back to format", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02 15:04")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relativeTime(tt.t)
			if got != tt.want {
				t.Errorf("relativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(time.Time{}); got != "-" {
		t.Errorf("zero time = %q", got)
	}
	ts := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	if got := formatTime(ts); got != "2026-08-29 14:30" {
		t.Errorf("formatTime = %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	got := string(markdown("# Heading\n\nSome **bold** text"))
	if !strings.Contains(got, "<h1>") || !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("markdown = %q", got)
	}
}

func TestNextPrevStatus(t *testing.T) {
	if got := nextStatus(ticket.StatusTodo); got != string(ticket.StatusInProgress) {
		t.Errorf("next(To Do) = %q", got)
	}
	if got := nextStatus(ticket.StatusDone); got != "" {
		t.Errorf("next(Done) = %q", got)
	}
	if got := prevStatus(ticket.StatusInProgress); got != string(ticket.StatusTodo) {
		t.Errorf("prev(In Progress) = %q", got)
	}
	if got := prevStatus(ticket.StatusTodo); got != "" {
		t.Errorf("prev(To Do) = %q", got)
	}
}
