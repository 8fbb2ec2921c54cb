// Package mailto builds compose links for the "email this ticket" helper.
package mailto

import (
	"net/url"
	"strings"

	"github.com/boozedog/smoovboard/internal/ticket"
)

// ComposeLink returns a mailto: URL addressed to the ticket's assignee with
// the title as subject and the description as body. Everything is
// percent-encoded; spaces use %20 since + is not reliable in mailto bodies.
func ComposeLink(t ticket.Ticket) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(url.QueryEscape(t.AssignedTo.Email))
	b.WriteString("?subject=")
	b.WriteString(escape(t.Title))
	b.WriteString("&body=")
	b.WriteString(escape(t.Description))
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
