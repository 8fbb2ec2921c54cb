package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/suggest"
	"github.com/boozedog/smoovboard/internal/ticket"
)

func testBoard(t *testing.T) *Board {
	t.Helper()
	dir := directory.NewStoreWith([]directory.Department{
		{Name: "Software", Members: []directory.Employee{
			{ID: "alice-1", Name: "Alice Ray", Email: "alice@example.com", Role: "Engineer"},
			{ID: "bob-2", Name: "Bob Tan", Email: "bob@example.com", Role: "Engineer"},
		}},
		{Name: "Design", Members: []directory.Employee{
			{ID: "cara-3", Name: "Cara Wu", Email: "cara@example.com", Role: "Designer"},
		}},
	})
	return New(dir, ticket.NewStore(), nil)
}

func addTicketFor(t *testing.T, b *Board, assigneeID string) ticket.Ticket {
	t.Helper()
	tk, err := b.CreateManual(ManualTicket{
		Title:       "Task for " + assigneeID,
		DueDate:     "2026-09-15",
		StoryPoints: 2,
	}, assigneeID)
	if err != nil {
		t.Fatalf("create ticket for %s: %v", assigneeID, err)
	}
	return tk
}

// Removing an employee must delete all of their tickets and only theirs:
// afterwards no ticket references a missing employee.
func TestRemoveEmployeeCascades(t *testing.T) {
	b := testBoard(t)
	addTicketFor(t, b, "alice-1")
	addTicketFor(t, b, "alice-1")
	keep := addTicketFor(t, b, "bob-2")

	if err := b.RemoveEmployee("alice-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	left := b.Tickets().List()
	if len(left) != 1 || left[0].ID != keep.ID {
		t.Fatalf("tickets left = %+v", left)
	}
	for _, tk := range left {
		if _, _, ok := b.Directory().FindEmployee(tk.AssignedTo.ID); !ok {
			t.Errorf("ticket %s references missing employee %s", tk.ID, tk.AssignedTo.ID)
		}
	}
}

// Removing a department deletes exactly the tickets of its members.
func TestRemoveDepartmentCascades(t *testing.T) {
	b := testBoard(t)
	addTicketFor(t, b, "alice-1")
	addTicketFor(t, b, "bob-2")
	keep := addTicketFor(t, b, "cara-3")

	if err := b.RemoveDepartment("Software"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	left := b.Tickets().List()
	if len(left) != 1 || left[0].ID != keep.ID {
		t.Fatalf("tickets left = %+v", left)
	}
}

func TestRemoveDepartmentResetsFilter(t *testing.T) {
	b := testBoard(t)
	b.SelectDepartment("Software")

	if err := b.RemoveDepartment("Software"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if b.SelectedDepartment() != AllTeams {
		t.Errorf("filter = %q, want All Teams", b.SelectedDepartment())
	}
	if b.CurrentView() != ViewScrumMaster {
		t.Errorf("view = %q, want Scrum Master", b.CurrentView())
	}
}

func TestRemoveEmployeeResetsView(t *testing.T) {
	b := testBoard(t)
	b.SetView("alice-1")

	if err := b.RemoveEmployee("alice-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if b.CurrentView() != ViewScrumMaster {
		t.Errorf("view = %q, want Scrum Master", b.CurrentView())
	}
}

func TestSelectDepartmentResetsView(t *testing.T) {
	b := testBoard(t)
	b.SetView("alice-1")
	b.SelectDepartment("Design")

	if b.CurrentView() != ViewScrumMaster {
		t.Errorf("view = %q, want Scrum Master", b.CurrentView())
	}
	if b.SelectedDepartment() != "Design" {
		t.Errorf("filter = %q", b.SelectedDepartment())
	}
}

func TestEditEmployeeRefreshesSnapshots(t *testing.T) {
	b := testBoard(t)
	tk := addTicketFor(t, b, "alice-1")

	updated := directory.Employee{ID: "alice-1", Name: "Alice Ray", Email: "alice@example.com", Role: "Staff Engineer"}
	if err := b.EditEmployee(updated, "Design", "Software"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	got, _ := b.Tickets().Get(tk.ID)
	if got.AssignedTo.Role != "Staff Engineer" || got.SuggestedDepartment != "Design" {
		t.Errorf("snapshot after edit: %+v", got)
	}
}

func TestCreateFromSuggestion(t *testing.T) {
	b := testBoard(t)

	tk, err := b.CreateFromSuggestion(suggest.SuggestedTask{
		ID:                  "sg_1",
		Title:               "Design onboarding flow",
		Description:         "Wireframes first",
		SuggestedDepartment: "Design",
		SuggestedAssigneeID: "cara-3",
		SuggestedDueDate:    "2026-09-20",
		Priority:            "High",
		StoryPoints:         5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(tk.ID, ticket.IDPrefix) {
		t.Errorf("ID = %q", tk.ID)
	}
	if tk.Status != ticket.StatusTodo {
		t.Errorf("status = %s, want To Do", tk.Status)
	}
	if tk.DueDate != tk.SuggestedDueDate {
		t.Errorf("dueDate %q != suggestedDueDate %q", tk.DueDate, tk.SuggestedDueDate)
	}
	if tk.AssignedTo.Name != "Cara Wu" {
		t.Errorf("assignee = %+v", tk.AssignedTo)
	}
	if len(tk.Comments) != 0 {
		t.Errorf("comments = %d, want 0", len(tk.Comments))
	}
}

func TestCreateFromSuggestionUnknownAssignee(t *testing.T) {
	b := testBoard(t)
	_, err := b.CreateFromSuggestion(suggest.SuggestedTask{
		Title:               "Orphan task",
		SuggestedAssigneeID: "ghost-9",
	})
	if !errors.Is(err, ErrAssigneeNotFound) {
		t.Errorf("got %v, want ErrAssigneeNotFound", err)
	}
}

func TestCreateManualValidation(t *testing.T) {
	b := testBoard(t)

	tests := []struct {
		name   string
		fields ManualTicket
	}{
		{"empty title", ManualTicket{DueDate: "2026-09-15", StoryPoints: 1}},
		{"bad date", ManualTicket{Title: "x", DueDate: "soon", StoryPoints: 1}},
		{"bad status", ManualTicket{Title: "x", DueDate: "2026-09-15", StoryPoints: 1, Status: "Archived"}},
		{"bad priority", ManualTicket{Title: "x", DueDate: "2026-09-15", StoryPoints: 1, Priority: "Urgent"}},
		{"zero points", ManualTicket{Title: "x", DueDate: "2026-09-15", StoryPoints: 0}},
	}
	for _, tt := range tests {
		if _, err := b.CreateManual(tt.fields, "alice-1"); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	// Defaults apply when status and priority are unset.
	tk, err := b.CreateManual(ManualTicket{Title: "ok", DueDate: "2026-09-15", StoryPoints: 1}, "alice-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tk.Status != ticket.StatusTodo || tk.Priority != ticket.DefaultPriority {
		t.Errorf("defaults: status=%s priority=%s", tk.Status, tk.Priority)
	}
	if !strings.HasPrefix(tk.ID, ticket.ManualIDPrefix) {
		t.Errorf("ID = %q, want %s prefix", tk.ID, ticket.ManualIDPrefix)
	}
}

func TestStatusChangeRoundTrip(t *testing.T) {
	b := testBoard(t)
	tk := addTicketFor(t, b, "alice-1")

	pending, ok, err := b.RequestStatusChange(tk.ID, ticket.StatusInProgress)
	if err != nil || !ok {
		t.Fatalf("request: ok=%v err=%v", ok, err)
	}
	if pending.From != ticket.StatusTodo || pending.To != ticket.StatusInProgress {
		t.Errorf("pending = %+v", pending)
	}

	// Same-status requests are a silent no-op.
	if _, ok, err := b.RequestStatusChange(tk.ID, ticket.StatusTodo); err != nil || ok {
		t.Errorf("same status: ok=%v err=%v", ok, err)
	}

	// Skipping a step is rejected.
	if _, _, err := b.RequestStatusChange(tk.ID, ticket.StatusDone); err == nil {
		t.Error("expected error for To Do → Done")
	}

	got, err := b.ConfirmStatusChange(tk.ID, pending.To, pending.From, "starting work")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.Status != ticket.StatusInProgress || len(got.Comments) != 1 {
		t.Errorf("after confirm: status=%s comments=%d", got.Status, len(got.Comments))
	}
	// Comments record the author from the current view.
	if got.Comments[0].Author != ViewScrumMaster {
		t.Errorf("author = %q", got.Comments[0].Author)
	}
}

func TestConfirmStatusChangeAuthorFollowsView(t *testing.T) {
	b := testBoard(t)
	tk := addTicketFor(t, b, "alice-1")
	b.SetView("alice-1")

	got, err := b.ConfirmStatusChange(tk.ID, ticket.StatusInProgress, ticket.StatusTodo, "on it")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.Comments[0].Author != "Alice Ray" {
		t.Errorf("author = %q, want Alice Ray", got.Comments[0].Author)
	}
}

func TestReassignUpdatesSuggestedFields(t *testing.T) {
	b := testBoard(t)
	tk := addTicketFor(t, b, "alice-1")

	got, err := b.Reassign(tk.ID, "cara-3")
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if got.AssignedTo.ID != "cara-3" || got.SuggestedAssigneeID != "cara-3" || got.SuggestedDepartment != "Design" {
		t.Errorf("after reassign: %+v", got)
	}

	if _, err := b.Reassign(tk.ID, "ghost-9"); !errors.Is(err, ErrAssigneeNotFound) {
		t.Errorf("unknown assignee: got %v", err)
	}
}

func TestNotifyFiresOnMutations(t *testing.T) {
	fired := 0
	dir := directory.NewStoreWith([]directory.Department{
		{Name: "Software", Members: []directory.Employee{
			{ID: "alice-1", Name: "Alice Ray"},
		}},
	})
	b := New(dir, ticket.NewStore(), func() { fired++ })

	tk, _ := b.CreateManual(ManualTicket{Title: "x", DueDate: "2026-09-15", StoryPoints: 1}, "alice-1")
	_, _ = b.ConfirmStatusChange(tk.ID, ticket.StatusInProgress, ticket.StatusTodo, "go")
	_ = b.RemoveTicket(tk.ID)

	if fired != 3 {
		t.Errorf("notify fired %d times, want 3", fired)
	}
}
