package board

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/suggest"
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/boozedog/smoovboard/internal/workflow"
)

// Sentinel view values.
const (
	// ViewScrumMaster is the aggregate view showing every visible
	// employee's tickets with progress metrics.
	ViewScrumMaster = "Scrum Master"

	// AllTeams is the department filter that shows every team.
	AllTeams = "All Teams"
)

// ErrAssigneeNotFound is returned when a ticket operation references an
// employee that does not exist in the directory.
var ErrAssigneeNotFound = errors.New("assignee not found")

// PendingTransition describes a validated status change awaiting its
// mandatory comment. Nothing is mutated until the change is confirmed.
type PendingTransition struct {
	TicketID string        `json:"ticketId"`
	From     ticket.Status `json:"from"`
	To       ticket.Status `json:"to"`
}

// Board owns the directory and ticket stores plus the session's view state,
// and coordinates every operation that spans them. All mutations fire the
// notify hook after completing so the UI can refresh.
type Board struct {
	directory *directory.Store
	tickets   *ticket.Store

	mu                 sync.RWMutex
	selectedDepartment string
	currentView        string

	notify func()
}

// New creates a board over the given stores. notify may be nil.
func New(dir *directory.Store, tickets *ticket.Store, notify func()) *Board {
	if notify == nil {
		notify = func() {}
	}
	return &Board{
		directory:          dir,
		tickets:            tickets,
		selectedDepartment: AllTeams,
		currentView:        ViewScrumMaster,
		notify:             notify,
	}
}

// Directory exposes the directory store.
func (b *Board) Directory() *directory.Store { return b.directory }

// Tickets exposes the ticket store.
func (b *Board) Tickets() *ticket.Store { return b.tickets }

// SelectedDepartment returns the active department filter.
func (b *Board) SelectedDepartment() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selectedDepartment
}

// CurrentView returns the active view: ViewScrumMaster or an employee ID.
func (b *Board) CurrentView() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.currentView
}

// SelectDepartment sets the department filter and resets the view to the
// Scrum Master aggregate.
func (b *Board) SelectDepartment(name string) {
	b.mu.Lock()
	b.selectedDepartment = name
	b.currentView = ViewScrumMaster
	b.mu.Unlock()
	b.notify()
}

// SetView switches between the Scrum Master aggregate and a single
// employee's board.
func (b *Board) SetView(view string) {
	b.mu.Lock()
	b.currentView = view
	b.mu.Unlock()
	b.notify()
}

// Author returns the comment author for the current view: the employee's
// name when viewing as an employee, otherwise "Scrum Master".
func (b *Board) Author() string {
	view := b.CurrentView()
	if view == ViewScrumMaster {
		return ViewScrumMaster
	}
	if emp, _, ok := b.directory.FindEmployee(view); ok {
		return emp.Name
	}
	return "Unknown"
}

// AddDepartment adds an empty department to the directory.
func (b *Board) AddDepartment(name string) error {
	if err := b.directory.AddDepartment(name); err != nil {
		return err
	}
	b.notify()
	return nil
}

// RemoveDepartment removes a department, its members, and every ticket
// assigned to those members. If the removed department was the active
// filter, the filter resets to All Teams.
func (b *Board) RemoveDepartment(name string) error {
	memberIDs, err := b.directory.RemoveDepartment(name)
	if err != nil {
		return err
	}
	removed := b.tickets.RemoveByAssignees(memberIDs)
	slog.Info("removed department", "department", name, "members", len(memberIDs), "tickets", removed)

	b.mu.Lock()
	if b.selectedDepartment == name {
		b.selectedDepartment = AllTeams
		b.currentView = ViewScrumMaster
	}
	b.mu.Unlock()
	b.notify()
	return nil
}

// AddEmployee adds an employee, creating the department when needed.
func (b *Board) AddEmployee(e directory.Employee, departmentName string) (directory.Employee, error) {
	added, err := b.directory.AddEmployee(e, departmentName)
	if err != nil {
		return directory.Employee{}, err
	}
	b.notify()
	return added, nil
}

// RemoveEmployee removes an employee and every ticket assigned to them. If
// the removed employee was the active viewing-as selection, the view resets
// to Scrum Master.
func (b *Board) RemoveEmployee(id string) error {
	if err := b.directory.RemoveEmployee(id); err != nil {
		return err
	}
	removed := b.tickets.RemoveByAssignees([]string{id})
	slog.Info("removed employee", "employee", id, "tickets", removed)

	b.mu.Lock()
	if b.currentView == id {
		b.currentView = ViewScrumMaster
	}
	b.mu.Unlock()
	b.notify()
	return nil
}

// EditEmployee updates an employee record, moving it between departments if
// needed, then refreshes the embedded snapshot on every ticket assigned to
// them. This is the one place stale snapshots are resynchronized.
func (b *Board) EditEmployee(updated directory.Employee, newDepartment, originalDepartment string) error {
	if err := b.directory.EditEmployee(updated, newDepartment, originalDepartment); err != nil {
		return err
	}
	refreshed := b.tickets.RefreshAssignee(updated, newDepartment)
	slog.Info("edited employee", "employee", updated.ID, "refreshed_tickets", refreshed)
	b.notify()
	return nil
}

// CreateFromSuggestion promotes an accepted AI suggestion into a ticket.
// The suggested assignee must still exist in the directory.
func (b *Board) CreateFromSuggestion(s suggest.SuggestedTask) (ticket.Ticket, error) {
	assignee, _, ok := b.directory.FindEmployee(s.SuggestedAssigneeID)
	if !ok {
		return ticket.Ticket{}, fmt.Errorf("%w: %q", ErrAssigneeNotFound, s.SuggestedAssigneeID)
	}

	tk, err := b.tickets.Add(ticket.Ticket{
		Title:               s.Title,
		Description:         s.Description,
		SuggestedDepartment: s.SuggestedDepartment,
		SuggestedAssigneeID: s.SuggestedAssigneeID,
		SuggestedDueDate:    s.SuggestedDueDate,
		Priority:            ticket.Priority(s.Priority),
		StoryPoints:         s.StoryPoints,
		AssignedTo:          assignee,
		DueDate:             s.SuggestedDueDate,
		Status:              ticket.StatusTodo,
		Comments:            []ticket.Comment{},
		Created:             time.Now().UTC(),
	})
	if err != nil {
		return ticket.Ticket{}, err
	}
	b.notify()
	return tk, nil
}

// ManualTicket holds the caller-supplied fields for a manually entered
// ticket.
type ManualTicket struct {
	Title       string
	Description string
	DueDate     string
	Priority    ticket.Priority
	StoryPoints int
	Status      ticket.Status
}

// CreateManual builds a ticket directly from user input. Status defaults to
// To Do and the ID carries the manual-entry prefix.
func (b *Board) CreateManual(fields ManualTicket, assigneeID string) (ticket.Ticket, error) {
	assignee, departmentName, ok := b.directory.FindEmployee(assigneeID)
	if !ok {
		return ticket.Ticket{}, fmt.Errorf("%w: %q", ErrAssigneeNotFound, assigneeID)
	}
	if strings.TrimSpace(fields.Title) == "" {
		return ticket.Ticket{}, errors.New("title is required")
	}
	if !ticket.DatePattern.MatchString(fields.DueDate) {
		return ticket.Ticket{}, fmt.Errorf("%w: %q", ticket.ErrInvalidDueDate, fields.DueDate)
	}
	if fields.Status == "" {
		fields.Status = ticket.StatusTodo
	}
	if !ticket.ValidStatuses[fields.Status] {
		return ticket.Ticket{}, fmt.Errorf("invalid status %q", fields.Status)
	}
	if fields.Priority == "" {
		fields.Priority = ticket.DefaultPriority
	}
	if !ticket.ValidPriorities[fields.Priority] {
		return ticket.Ticket{}, fmt.Errorf("invalid priority %q", fields.Priority)
	}
	if fields.StoryPoints <= 0 {
		return ticket.Ticket{}, errors.New("story points must be positive")
	}

	now := time.Now().UTC()
	tk, err := b.tickets.Add(ticket.Ticket{
		ID:                  ticket.ManualID(now),
		Title:               fields.Title,
		Description:         fields.Description,
		SuggestedDepartment: departmentName,
		SuggestedAssigneeID: assigneeID,
		SuggestedDueDate:    fields.DueDate,
		Priority:            fields.Priority,
		StoryPoints:         fields.StoryPoints,
		AssignedTo:          assignee,
		DueDate:             fields.DueDate,
		Status:              fields.Status,
		Comments:            []ticket.Comment{},
		Created:             now,
	})
	if err != nil {
		return ticket.Ticket{}, err
	}
	b.notify()
	return tk, nil
}

// RequestStatusChange validates a transition and returns a pending
// descriptor without mutating the ticket. Requesting the current status is
// reported as no pending transition.
func (b *Board) RequestStatusChange(ticketID string, newStatus ticket.Status) (PendingTransition, bool, error) {
	tk, err := b.tickets.Get(ticketID)
	if err != nil {
		return PendingTransition{}, false, err
	}
	if tk.Status == newStatus {
		return PendingTransition{}, false, nil
	}
	if err := workflow.ValidateTransition(tk.Status, newStatus); err != nil {
		return PendingTransition{}, false, err
	}
	return PendingTransition{TicketID: ticketID, From: tk.Status, To: newStatus}, true, nil
}

// ConfirmStatusChange applies a pending transition: it appends exactly one
// audit comment and sets the new status atomically. The transition is
// re-validated against the store's single-step machine.
func (b *Board) ConfirmStatusChange(ticketID string, newStatus, fromStatus ticket.Status, commentText string) (ticket.Ticket, error) {
	if err := workflow.ValidateTransition(fromStatus, newStatus); err != nil {
		return ticket.Ticket{}, err
	}
	tk, err := b.tickets.ApplyStatusChange(ticketID, fromStatus, newStatus, commentText, b.Author(), time.Now().UTC())
	if err != nil {
		return ticket.Ticket{}, err
	}
	b.notify()
	return tk, nil
}

// UpdateDueDate sets a ticket's due date (and suggested due date).
func (b *Board) UpdateDueDate(ticketID, newDueDate string) (ticket.Ticket, error) {
	tk, err := b.tickets.UpdateDueDate(ticketID, newDueDate)
	if err != nil {
		return ticket.Ticket{}, err
	}
	b.notify()
	return tk, nil
}

// Reassign moves a ticket to a new assignee, refreshing the embedded
// snapshot and the suggested department.
func (b *Board) Reassign(ticketID, newAssigneeID string) (ticket.Ticket, error) {
	assignee, departmentName, ok := b.directory.FindEmployee(newAssigneeID)
	if !ok {
		return ticket.Ticket{}, fmt.Errorf("%w: %q", ErrAssigneeNotFound, newAssigneeID)
	}
	tk, err := b.tickets.Reassign(ticketID, assignee, departmentName)
	if err != nil {
		return ticket.Ticket{}, err
	}
	b.notify()
	return tk, nil
}

// RemoveTicket deletes a ticket. Unlike employee and department removal this
// needs no confirmation step.
func (b *Board) RemoveTicket(ticketID string) error {
	if err := b.tickets.Remove(ticketID); err != nil {
		return err
	}
	b.notify()
	return nil
}
