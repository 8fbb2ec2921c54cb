package handler

import (
	"net/http"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/web/templates"
)

// Activity renders the full activity feed across every ticket.
func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	data := templates.ActivityData{
		Theme:   h.theme(),
		Entries: board.ActivityFeed(h.board.Tickets().List()),
	}
	if err := templates.ActivityPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
