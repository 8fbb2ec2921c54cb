package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/boozedog/smoovboard/internal/web/templates"
)

// Ticket renders the ticket detail page.
func (h *Handler) Ticket(w http.ResponseWriter, r *http.Request) {
	tk, err := h.board.Tickets().Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Ticket not found", http.StatusNotFound)
		return
	}
	data := templates.TicketData{
		Theme:     h.theme(),
		Ticket:    tk,
		Employees: h.board.Directory().Employees(),
		Error:     r.URL.Query().Get("error"),
	}
	if err := templates.TicketPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NewTicket renders the manual ticket form.
func (h *Handler) NewTicket(w http.ResponseWriter, r *http.Request) {
	data := templates.NewTicketData{
		Theme:      h.theme(),
		Employees:  h.board.Directory().Employees(),
		AssigneeID: r.URL.Query().Get("assignee"),
		Error:      r.URL.Query().Get("error"),
	}
	if err := templates.NewTicketPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CreateTicket handles the manual ticket form submission.
func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/new", "invalid form submission")
		return
	}

	points, _ := strconv.Atoi(r.FormValue("points"))
	fields := board.ManualTicket{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		DueDate:     r.FormValue("due"),
		Priority:    ticket.Priority(r.FormValue("priority")),
		StoryPoints: points,
	}

	tk, err := h.board.CreateManual(fields, r.FormValue("assignee"))
	if err != nil {
		redirectWithError(w, r, "/new", err.Error())
		return
	}
	http.Redirect(w, r, "/ticket/"+tk.ID, http.StatusSeeOther)
}

// CommentForm renders the mandatory-comment form for a requested status
// change. Requesting the current status just bounces back to the board.
func (h *Handler) CommentForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	to := ticket.Status(r.URL.Query().Get("to"))

	pending, ok, err := h.board.RequestStatusChange(id, to)
	if err != nil {
		redirectWithError(w, r, "/", err.Error())
		return
	}
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tk, err := h.board.Tickets().Get(id)
	if err != nil {
		http.Error(w, "Ticket not found", http.StatusNotFound)
		return
	}
	data := templates.CommentFormData{
		Theme:  h.theme(),
		Ticket: tk,
		From:   pending.From,
		To:     pending.To,
		Error:  r.URL.Query().Get("error"),
	}
	if err := templates.CommentPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ConfirmStatus applies a status change with its mandatory comment.
func (h *Handler) ConfirmStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	from := ticket.Status(r.FormValue("from"))
	to := ticket.Status(r.FormValue("to"))

	if _, err := h.board.ConfirmStatusChange(id, to, from, r.FormValue("comment")); err != nil {
		back := "/ticket/" + id + "/comment?to=" + url.QueryEscape(string(to)) + "&error=" + url.QueryEscape(err.Error())
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UpdateDueDate sets a ticket's due date.
func (h *Handler) UpdateDueDate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.board.UpdateDueDate(id, r.FormValue("due")); err != nil {
		redirectWithError(w, r, "/ticket/"+id, err.Error())
		return
	}
	http.Redirect(w, r, "/ticket/"+id, http.StatusSeeOther)
}

// Reassign moves a ticket to another employee.
func (h *Handler) Reassign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.board.Reassign(id, r.FormValue("assignee")); err != nil {
		redirectWithError(w, r, "/ticket/"+id, err.Error())
		return
	}
	http.Redirect(w, r, "/ticket/"+id, http.StatusSeeOther)
}

// DeleteTicket removes a ticket. No confirmation step, unlike directory
// removals.
func (h *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	if err := h.board.RemoveTicket(r.PathValue("id")); err != nil {
		redirectWithError(w, r, "/", err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
