package board

import (
	"testing"

	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/ticket"
)

func projTicket(id, assigneeID, assigneeName string, status ticket.Status) ticket.Ticket {
	return ticket.Ticket{
		ID:         id,
		Title:      "Ticket " + id,
		Status:     status,
		AssignedTo: directory.Employee{ID: assigneeID, Name: assigneeName},
	}
}

var projDepartments = []directory.Department{
	{Name: "Software", Members: []directory.Employee{
		{ID: "alice-1", Name: "Alice Ray"},
		{ID: "bob-2", Name: "Bob Tan"},
	}},
	{Name: "Design", Members: []directory.Employee{
		{ID: "cara-3", Name: "Cara Wu"},
	}},
}

func TestProjectAllTeams(t *testing.T) {
	tickets := []ticket.Ticket{
		projTicket("t1", "alice-1", "Alice Ray", ticket.StatusTodo),
		projTicket("t2", "cara-3", "Cara Wu", ticket.StatusDone),
	}

	proj := Project(projDepartments, tickets, AllTeams)
	if len(proj.Employees) != 3 {
		t.Errorf("employees = %d, want 3", len(proj.Employees))
	}
	if len(proj.Tickets) != 2 {
		t.Errorf("tickets = %d, want 2", len(proj.Tickets))
	}
}

func TestProjectSingleDepartment(t *testing.T) {
	tickets := []ticket.Ticket{
		projTicket("t1", "alice-1", "Alice Ray", ticket.StatusTodo),
		projTicket("t2", "cara-3", "Cara Wu", ticket.StatusDone),
	}

	proj := Project(projDepartments, tickets, "Design")
	if len(proj.Employees) != 1 || proj.Employees[0].ID != "cara-3" {
		t.Errorf("employees = %+v", proj.Employees)
	}
	if len(proj.Tickets) != 1 || proj.Tickets[0].ID != "t2" {
		t.Errorf("tickets = %+v", proj.Tickets)
	}

	// Unknown department projects nothing.
	proj = Project(projDepartments, tickets, "Nowhere")
	if len(proj.Employees) != 0 || len(proj.Tickets) != 0 {
		t.Errorf("unknown department: %+v", proj)
	}
}

func TestSplitByStatus(t *testing.T) {
	tickets := []ticket.Ticket{
		projTicket("t1", "alice-1", "Alice Ray", ticket.StatusTodo),
		projTicket("t2", "alice-1", "Alice Ray", ticket.StatusDone),
		projTicket("t3", "alice-1", "Alice Ray", ticket.StatusInProgress),
		projTicket("t4", "alice-1", "Alice Ray", ticket.StatusTodo),
	}

	c := SplitByStatus(tickets)
	if len(c.Todo) != 2 || len(c.InProgress) != 1 || len(c.Done) != 1 {
		t.Errorf("columns = %d/%d/%d", len(c.Todo), len(c.InProgress), len(c.Done))
	}
	// Order within a column follows input order.
	if c.Todo[0].ID != "t1" || c.Todo[1].ID != "t4" {
		t.Errorf("todo order = %s, %s", c.Todo[0].ID, c.Todo[1].ID)
	}
}

func TestGroupByAssignee(t *testing.T) {
	tickets := []ticket.Ticket{
		projTicket("t1", "bob-2", "Bob Tan", ticket.StatusTodo),
		projTicket("t2", "alice-1", "Alice Ray", ticket.StatusDone),
		projTicket("t3", "bob-2", "Bob Tan", ticket.StatusDone),
	}

	groups := GroupByAssignee(tickets)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	// Sorted by assignee name.
	if groups[0].Assignee.Name != "Alice Ray" || groups[1].Assignee.Name != "Bob Tan" {
		t.Errorf("order = %s, %s", groups[0].Assignee.Name, groups[1].Assignee.Name)
	}
	if len(groups[1].Columns.Todo) != 1 || len(groups[1].Columns.Done) != 1 {
		t.Errorf("bob's columns = %+v", groups[1].Columns)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		tickets []ticket.Ticket
		want    int
	}{
		{"empty", nil, 0},
		{"none done", []ticket.Ticket{
			projTicket("t1", "a", "A", ticket.StatusTodo),
		}, 0},
		{"all done", []ticket.Ticket{
			projTicket("t1", "a", "A", ticket.StatusDone),
			projTicket("t2", "a", "A", ticket.StatusDone),
		}, 100},
		{"one of three", []ticket.Ticket{
			projTicket("t1", "a", "A", ticket.StatusDone),
			projTicket("t2", "a", "A", ticket.StatusTodo),
			projTicket("t3", "a", "A", ticket.StatusInProgress),
		}, 33},
		{"two of three rounds up", []ticket.Ticket{
			projTicket("t1", "a", "A", ticket.StatusDone),
			projTicket("t2", "a", "A", ticket.StatusDone),
			projTicket("t3", "a", "A", ticket.StatusTodo),
		}, 67},
	}

	for _, tt := range tests {
		if got := Progress(tt.tickets); got != tt.want {
			t.Errorf("%s: Progress = %d, want %d", tt.name, got, tt.want)
		}
	}
}
