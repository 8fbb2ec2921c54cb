package mailto

import (
	"strings"
	"testing"

	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/ticket"
)

func TestComposeLink(t *testing.T) {
	tk := ticket.Ticket{
		Title:       "Fix login & session bug",
		Description: "Users get logged out\nafter 5 minutes",
		AssignedTo:  directory.Employee{Email: "alice@example.com"},
	}

	link := ComposeLink(tk)
	if !strings.HasPrefix(link, "mailto:alice%40example.com?subject=") {
		t.Errorf("link = %q", link)
	}
	if !strings.Contains(link, "subject=Fix%20login%20%26%20session%20bug") {
		t.Errorf("subject not encoded: %q", link)
	}
	if !strings.Contains(link, "body=Users%20get%20logged%20out%0Aafter%205%20minutes") {
		t.Errorf("body not encoded: %q", link)
	}
	// Spaces must be %20, never +.
	if strings.Contains(link, "+") {
		t.Errorf("link uses + encoding: %q", link)
	}
}
