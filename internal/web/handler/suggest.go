package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/boozedog/smoovboard/internal/extract"
	"github.com/boozedog/smoovboard/internal/suggest"
)

// Analyze runs the suggestion pipeline on the submitted description or
// uploaded document. Failures surface as a single error banner; per-item
// validation drops happen silently inside the pipeline.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(extract.MaxSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		redirectWithError(w, r, "/", "invalid form submission")
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))

	if file, header, err := r.FormFile("document"); err == nil {
		defer file.Close()
		text, extractErr := extract.Text(header.Filename, file)
		if extractErr != nil {
			redirectWithError(w, r, "/", extractErr.Error())
			return
		}
		description = text
	}

	if description == "" {
		redirectWithError(w, r, "/", "a project description is required")
		return
	}
	h.setDescription(description)

	_, _, err := h.pipeline.Analyze(r.Context(), description, h.board.Directory().Departments())
	if err != nil {
		redirectWithError(w, r, "/", err.Error())
		return
	}

	h.broker.Broadcast(refreshSignal())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AcceptSuggestion promotes a pending suggestion onto the board. On failure
// the suggestion stays in the pool so the user can retry.
func (h *Handler) AcceptSuggestion(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	s, err := h.pipeline.Get(id)
	if err != nil {
		redirectWithError(w, r, "/", err.Error())
		return
	}

	if _, err := h.board.CreateFromSuggestion(s); err != nil {
		redirectWithError(w, r, "/", err.Error())
		return
	}
	_ = h.pipeline.Remove(id)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DiscardSuggestion drops a pending suggestion without creating a ticket.
func (h *Handler) DiscardSuggestion(w http.ResponseWriter, r *http.Request) {
	if err := h.pipeline.Remove(r.FormValue("id")); err != nil && !errors.Is(err, suggest.ErrNotFound) {
		redirectWithError(w, r, "/", err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
