package board

import (
	"sort"

	"github.com/boozedog/smoovboard/internal/ticket"
)

// ActivityEntry is one status-change comment tagged with its ticket.
type ActivityEntry struct {
	TicketID    string         `json:"ticketId"`
	TicketTitle string         `json:"ticketTitle"`
	Comment     ticket.Comment `json:"comment"`
}

// ActivityFeed flattens every ticket's comments and orders them newest
// first.
func ActivityFeed(tickets []ticket.Ticket) []ActivityEntry {
	var entries []ActivityEntry
	for _, t := range tickets {
		for _, c := range t.Comments {
			entries = append(entries, ActivityEntry{
				TicketID:    t.ID,
				TicketTitle: t.Title,
				Comment:     c,
			})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Comment.Timestamp.After(entries[j].Comment.Timestamp)
	})
	return entries
}
