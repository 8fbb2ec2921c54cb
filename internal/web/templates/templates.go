// Package templates renders the smoovboard web UI with html/template.
package templates

import (
	"html/template"
	"io"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/suggest"
	"github.com/boozedog/smoovboard/internal/ticket"
)

var page = template.Must(template.New("page").Funcs(template.FuncMap{
	"relativeTime": relativeTime,
	"formatTime":   formatTime,
	"markdown":     markdown,
	"composeLink":  composeLink,
	"next":         nextStatus,
	"prev":         prevStatus,
}).Parse(pageTemplate))

// BoardData drives the main board page.
type BoardData struct {
	Theme              string
	Departments        []directory.Department
	SelectedDepartment string
	CurrentView        string
	ViewEmployees      []directory.Employee

	ShowAnalyze bool
	Description string
	Suggestions []suggest.SuggestedTask
	Error       string

	Groups       []board.AssigneeGroup
	OwnColumns   board.Columns
	OwnEmployee  directory.Employee
	Progress     int
	ShowProgress bool
	Activity     []board.ActivityEntry
	Empty        bool
}

// TicketData drives the ticket detail page.
type TicketData struct {
	Theme     string
	Ticket    ticket.Ticket
	Employees []directory.Employee
	Error     string
}

// CommentFormData drives the mandatory-comment form for a status change.
type CommentFormData struct {
	Theme  string
	Ticket ticket.Ticket
	From   ticket.Status
	To     ticket.Status
	Error  string
}

// DirectoryData drives the employee directory page.
type DirectoryData struct {
	Theme       string
	Departments []directory.Department
	Error       string
}

// EditEmployeeData drives the edit-employee form.
type EditEmployeeData struct {
	Theme              string
	Employee           directory.Employee
	OriginalDepartment string
	Departments        []directory.Department
	Error              string
}

// ConfirmData drives the confirmation page for destructive directory
// operations.
type ConfirmData struct {
	Theme   string
	Title   string
	Message string
	Action  string
}

// ActivityData drives the activity feed page.
type ActivityData struct {
	Theme   string
	Entries []board.ActivityEntry
}

// NewTicketData drives the manual ticket form.
type NewTicketData struct {
	Theme      string
	Employees  []directory.Employee
	AssigneeID string
	Error      string
}

func BoardPage(w io.Writer, data BoardData) error {
	return page.ExecuteTemplate(w, "board-page", data)
}

func TicketPage(w io.Writer, data TicketData) error {
	return page.ExecuteTemplate(w, "ticket-page", data)
}

func CommentPage(w io.Writer, data CommentFormData) error {
	return page.ExecuteTemplate(w, "comment-page", data)
}

func DirectoryPage(w io.Writer, data DirectoryData) error {
	return page.ExecuteTemplate(w, "directory-page", data)
}

func EditEmployeePage(w io.Writer, data EditEmployeeData) error {
	return page.ExecuteTemplate(w, "edit-employee-page", data)
}

func ConfirmPage(w io.Writer, data ConfirmData) error {
	return page.ExecuteTemplate(w, "confirm-page", data)
}

func ActivityPage(w io.Writer, data ActivityData) error {
	return page.ExecuteTemplate(w, "activity-page", data)
}

func NewTicketPage(w io.Writer, data NewTicketData) error {
	return page.ExecuteTemplate(w, "new-ticket-page", data)
}
