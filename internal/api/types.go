// Package api defines the JSON wire types shared by the smoovboard
// server and its CLI client, plus the client itself.
package api

import (
	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/suggest"
	"github.com/boozedog/smoovboard/internal/ticket"
)

// BoardSnapshot is the full session state as seen by the CLI.
type BoardSnapshot struct {
	Departments        []directory.Department `json:"departments"`
	Tickets            []ticket.Ticket        `json:"tickets"`
	SelectedDepartment string                 `json:"selectedDepartment"`
	CurrentView        string                 `json:"currentView"`
	Theme              string                 `json:"theme"`
}

// AnalyzeRequest submits a project description to the suggestion
// pipeline.
type AnalyzeRequest struct {
	Description string `json:"description"`
}

// AnalyzeResponse reports the outcome of an analysis run. Published is
// false when a newer request finished first and this result was
// discarded.
type AnalyzeResponse struct {
	Tasks     []suggest.SuggestedTask `json:"tasks"`
	Published bool                    `json:"published"`
}

// SuggestionsResponse lists the pending suggestion pool.
type SuggestionsResponse struct {
	Tasks []suggest.SuggestedTask `json:"tasks"`
}

// SuggestionRef names one pending suggestion.
type SuggestionRef struct {
	ID string `json:"id"`
}

// TicketResponse wraps a single ticket.
type TicketResponse struct {
	Ticket ticket.Ticket `json:"ticket"`
}

// TicketsResponse wraps a ticket list.
type TicketsResponse struct {
	Tickets []ticket.Ticket `json:"tickets"`
}

// CreateTicketRequest creates a manual ticket.
type CreateTicketRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AssigneeID  string          `json:"assigneeId"`
	DueDate     string          `json:"dueDate"`
	Priority    ticket.Priority `json:"priority"`
	StoryPoints int             `json:"storyPoints"`
	Status      ticket.Status   `json:"status"`
}

// StatusRequest moves a ticket between columns. Comment is mandatory.
type StatusRequest struct {
	To      ticket.Status `json:"to"`
	Comment string        `json:"comment"`
}

// DueDateRequest sets a ticket's due date.
type DueDateRequest struct {
	DueDate string `json:"dueDate"`
}

// ReassignRequest moves a ticket to another employee.
type ReassignRequest struct {
	AssigneeID string `json:"assigneeId"`
}

// DirectoryResponse lists the departments with their members.
type DirectoryResponse struct {
	Departments []directory.Department `json:"departments"`
}

// DepartmentRequest names a department.
type DepartmentRequest struct {
	Name string `json:"name"`
}

// EmployeeRequest creates or edits an employee.
type EmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// EmployeeResponse wraps a single employee.
type EmployeeResponse struct {
	Employee directory.Employee `json:"employee"`
}

// SelectRequest sets the department filter.
type SelectRequest struct {
	Department string `json:"department"`
}

// ViewRequest sets the active view.
type ViewRequest struct {
	View string `json:"view"`
}

// ActivityResponse is the chronological comment feed.
type ActivityResponse struct {
	Entries []board.ActivityEntry `json:"entries"`
}

// ThemeRequest sets the persisted theme flag.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse reports the persisted theme flag.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

type emptyResponse struct{}
