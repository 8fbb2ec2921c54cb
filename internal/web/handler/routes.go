package handler

import "net/http"

// Routes builds the full route table: HTML pages, the SSE endpoint and the
// JSON API used by the CLI.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Pages.
	mux.HandleFunc("GET /{$}", h.Board)
	mux.HandleFunc("POST /select", h.SelectDepartment)
	mux.HandleFunc("POST /view", h.SetView)
	mux.HandleFunc("POST /analyze", h.Analyze)
	mux.HandleFunc("POST /suggestions/accept", h.AcceptSuggestion)
	mux.HandleFunc("POST /suggestions/discard", h.DiscardSuggestion)
	mux.HandleFunc("GET /new", h.NewTicket)
	mux.HandleFunc("POST /new", h.CreateTicket)
	mux.HandleFunc("GET /ticket/{id}", h.Ticket)
	mux.HandleFunc("GET /ticket/{id}/comment", h.CommentForm)
	mux.HandleFunc("POST /ticket/{id}/status", h.ConfirmStatus)
	mux.HandleFunc("POST /ticket/{id}/due", h.UpdateDueDate)
	mux.HandleFunc("POST /ticket/{id}/reassign", h.Reassign)
	mux.HandleFunc("POST /ticket/{id}/delete", h.DeleteTicket)
	mux.HandleFunc("GET /activity", h.Activity)
	mux.HandleFunc("GET /directory", h.Directory)
	mux.HandleFunc("POST /departments", h.AddDepartment)
	mux.HandleFunc("POST /departments/remove", h.RemoveDepartment)
	mux.HandleFunc("POST /employees", h.AddEmployee)
	mux.HandleFunc("POST /employees/remove", h.RemoveEmployee)
	mux.HandleFunc("GET /employees/{id}/edit", h.EditEmployee)
	mux.HandleFunc("POST /employees/{id}/edit", h.UpdateEmployee)
	mux.HandleFunc("POST /theme", h.ToggleTheme)

	// SSE endpoint.
	mux.HandleFunc("GET /events", h.Events)

	// JSON API for the CLI.
	mux.HandleFunc("GET /api/board", h.APIBoard)
	mux.HandleFunc("POST /api/analyze", h.APIAnalyze)
	mux.HandleFunc("GET /api/suggestions", h.APISuggestions)
	mux.HandleFunc("POST /api/suggestions/accept", h.APIAcceptSuggestion)
	mux.HandleFunc("POST /api/suggestions/discard", h.APIDiscardSuggestion)
	mux.HandleFunc("GET /api/tickets", h.APITickets)
	mux.HandleFunc("POST /api/tickets", h.APICreateTicket)
	mux.HandleFunc("GET /api/tickets/{id}", h.APITicket)
	mux.HandleFunc("POST /api/tickets/{id}/status", h.APISetStatus)
	mux.HandleFunc("POST /api/tickets/{id}/due", h.APISetDueDate)
	mux.HandleFunc("POST /api/tickets/{id}/assignee", h.APIReassign)
	mux.HandleFunc("POST /api/tickets/{id}/remove", h.APIRemoveTicket)
	mux.HandleFunc("GET /api/directory", h.APIDirectory)
	mux.HandleFunc("POST /api/departments", h.APIAddDepartment)
	mux.HandleFunc("POST /api/departments/remove", h.APIRemoveDepartment)
	mux.HandleFunc("POST /api/employees", h.APIAddEmployee)
	mux.HandleFunc("POST /api/employees/{id}/remove", h.APIRemoveEmployee)
	mux.HandleFunc("POST /api/employees/{id}/edit", h.APIEditEmployee)
	mux.HandleFunc("POST /api/select", h.APISelect)
	mux.HandleFunc("POST /api/view", h.APISetView)
	mux.HandleFunc("GET /api/activity", h.APIActivity)
	mux.HandleFunc("GET /api/theme", h.APITheme)
	mux.HandleFunc("POST /api/theme", h.APISetTheme)

	return mux
}
