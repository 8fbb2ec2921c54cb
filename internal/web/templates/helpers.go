package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/boozedog/smoovboard/internal/mailto"
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/boozedog/smoovboard/internal/workflow"
	"github.com/yuin/goldmark"
)

// relativeTime renders a timestamp as "5 minutes ago" style text, falling
// back to an absolute format for anything older than a week.
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < 2*time.Minute:
		return "1 minute ago"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 2*time.Hour:
		return "1 hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "yesterday"
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02 15:04")
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// markdown renders a ticket description to HTML.
func markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

func composeLink(t ticket.Ticket) string {
	return mailto.ComposeLink(t)
}

func nextStatus(s ticket.Status) string {
	if n, ok := workflow.Next(s); ok {
		return string(n)
	}
	return ""
}

func prevStatus(s ticket.Status) string {
	if p, ok := workflow.Prev(s); ok {
		return string(p)
	}
	return ""
}
