package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/boozedog/smoovboard/internal/api"
	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/theme"
)

// JSON API for the CLI client. Every endpoint mirrors a web handler but
// speaks api.* wire types and reports failures as {"error": message}.

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	slog.Warn("api request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// APIBoard returns the full session state.
func (h *Handler) APIBoard(w http.ResponseWriter, r *http.Request) {
	snapshot := api.BoardSnapshot{
		Departments:        h.board.Directory().Departments(),
		Tickets:            h.board.Tickets().List(),
		SelectedDepartment: h.board.SelectedDepartment(),
		CurrentView:        h.board.CurrentView(),
		Theme:              h.theme(),
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// APIAnalyze runs the suggestion pipeline on a description.
func (h *Handler) APIAnalyze(w http.ResponseWriter, r *http.Request) {
	var payload api.AnalyzeRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("a project description is required"))
		return
	}
	h.setDescription(description)

	tasks, published, err := h.pipeline.Analyze(r.Context(), description, h.board.Directory().Departments())
	if err != nil {
		writeError(w, r, http.StatusBadGateway, err)
		return
	}
	h.broker.Broadcast(refreshSignal())
	writeJSON(w, http.StatusOK, api.AnalyzeResponse{Tasks: tasks, Published: published})
}

// APISuggestions lists the pending suggestion pool.
func (h *Handler) APISuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.SuggestionsResponse{Tasks: h.pipeline.Pending()})
}

// APIAcceptSuggestion promotes a pending suggestion onto the board.
func (h *Handler) APIAcceptSuggestion(w http.ResponseWriter, r *http.Request) {
	var payload api.SuggestionRef
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s, err := h.pipeline.Get(payload.ID)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	tk, err := h.board.CreateFromSuggestion(s)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	_ = h.pipeline.Remove(payload.ID)
	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: tk})
}

// APIDiscardSuggestion drops a pending suggestion.
func (h *Handler) APIDiscardSuggestion(w http.ResponseWriter, r *http.Request) {
	var payload api.SuggestionRef
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := h.pipeline.Remove(payload.ID); err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

// APICreateTicket creates a manual ticket.
func (h *Handler) APICreateTicket(w http.ResponseWriter, r *http.Request) {
	var payload api.CreateTicketRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	fields := board.ManualTicket{
		Title:       strings.TrimSpace(payload.Title),
		Description: strings.TrimSpace(payload.Description),
		DueDate:     payload.DueDate,
		Priority:    payload.Priority,
		StoryPoints: payload.StoryPoints,
		Status:      payload.Status,
	}
	tk, err := h.board.CreateManual(fields, payload.AssigneeID)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: tk})
}

// APITickets lists every ticket.
func (h *Handler) APITickets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.TicketsResponse{Tickets: h.board.Tickets().List()})
}

// APITicket returns one ticket by ID.
func (h *Handler) APITicket(w http.ResponseWriter, r *http.Request) {
	tk, err := h.board.Tickets().Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: tk})
}

// APISetStatus moves a ticket between columns with its mandatory
// comment.
func (h *Handler) APISetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload api.StatusRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	current, err := h.board.Tickets().Get(id)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	tk, err := h.board.ConfirmStatusChange(id, payload.To, current.Status, payload.Comment)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: tk})
}

// APISetDueDate sets a ticket's due date.
func (h *Handler) APISetDueDate(w http.ResponseWriter, r *http.Request) {
	var payload api.DueDateRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	tk, err := h.board.UpdateDueDate(r.PathValue("id"), payload.DueDate)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: tk})
}

// APIReassign moves a ticket to another employee.
func (h *Handler) APIReassign(w http.ResponseWriter, r *http.Request) {
	var payload api.ReassignRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	tk, err := h.board.Reassign(r.PathValue("id"), payload.AssigneeID)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: tk})
}

// APIRemoveTicket deletes a ticket.
func (h *Handler) APIRemoveTicket(w http.ResponseWriter, r *http.Request) {
	if err := h.board.RemoveTicket(r.PathValue("id")); err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

// APIDirectory lists the departments with their members.
func (h *Handler) APIDirectory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.DirectoryResponse{Departments: h.board.Directory().Departments()})
}

// APIAddDepartment creates an empty department.
func (h *Handler) APIAddDepartment(w http.ResponseWriter, r *http.Request) {
	var payload api.DepartmentRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := h.board.AddDepartment(payload.Name); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

// APIRemoveDepartment deletes a department, its members and their
// tickets.
func (h *Handler) APIRemoveDepartment(w http.ResponseWriter, r *http.Request) {
	var payload api.DepartmentRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := h.board.RemoveDepartment(payload.Name); err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

// APIAddEmployee creates an employee in a department.
func (h *Handler) APIAddEmployee(w http.ResponseWriter, r *http.Request) {
	var payload api.EmployeeRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	e := directory.Employee{
		Name:  strings.TrimSpace(payload.Name),
		Email: strings.TrimSpace(payload.Email),
		Role:  strings.TrimSpace(payload.Role),
	}
	created, err := h.board.AddEmployee(e, payload.Department)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, api.EmployeeResponse{Employee: created})
}

// APIRemoveEmployee deletes an employee and their tickets.
func (h *Handler) APIRemoveEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.board.RemoveEmployee(r.PathValue("id")); err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

// APIEditEmployee updates an employee, optionally moving departments.
func (h *Handler) APIEditEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload api.EmployeeRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	_, origDept, ok := h.board.Directory().FindEmployee(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, directory.ErrEmployeeNotFound)
		return
	}
	newDept := payload.Department
	if newDept == "" {
		newDept = origDept
	}
	updated := directory.Employee{
		ID:    id,
		Name:  strings.TrimSpace(payload.Name),
		Email: strings.TrimSpace(payload.Email),
		Role:  strings.TrimSpace(payload.Role),
	}
	if err := h.board.EditEmployee(updated, newDept, origDept); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, api.EmployeeResponse{Employee: updated})
}

// APISelect sets the department filter.
func (h *Handler) APISelect(w http.ResponseWriter, r *http.Request) {
	var payload api.SelectRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	h.board.SelectDepartment(payload.Department)
	writeJSON(w, http.StatusOK, struct{}{})
}

// APISetView switches between the Scrum Master view and an employee
// view.
func (h *Handler) APISetView(w http.ResponseWriter, r *http.Request) {
	var payload api.ViewRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	h.board.SetView(payload.View)
	writeJSON(w, http.StatusOK, struct{}{})
}

// APIActivity returns the chronological comment feed.
func (h *Handler) APIActivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.ActivityResponse{Entries: board.ActivityFeed(h.board.Tickets().List())})
}

// APITheme reports the persisted theme flag.
func (h *Handler) APITheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.ThemeResponse{Theme: h.theme()})
}

// APISetTheme persists the theme flag.
func (h *Handler) APISetTheme(w http.ResponseWriter, r *http.Request) {
	var payload api.ThemeRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if !theme.Valid(payload.Theme) {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("unknown theme %q", payload.Theme))
		return
	}
	if err := theme.Save(h.stateDir, payload.Theme); err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
