package board

import (
	"math"
	"sort"

	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/ticket"
)

// Projection is the pure derivation of what the user currently sees.
type Projection struct {
	Employees []directory.Employee
	Tickets   []ticket.Ticket
}

// Project filters employees and tickets by the selected department. With
// AllTeams selected, everything is visible.
func Project(departments []directory.Department, tickets []ticket.Ticket, selectedDepartment string) Projection {
	if selectedDepartment == AllTeams {
		var employees []directory.Employee
		for _, d := range departments {
			employees = append(employees, d.Members...)
		}
		return Projection{Employees: employees, Tickets: tickets}
	}

	var members []directory.Employee
	for _, d := range departments {
		if d.Name == selectedDepartment {
			members = d.Members
			break
		}
	}
	memberIDs := make(map[string]struct{}, len(members))
	for _, m := range members {
		memberIDs[m.ID] = struct{}{}
	}

	var visible []ticket.Ticket
	for _, t := range tickets {
		if _, ok := memberIDs[t.AssignedTo.ID]; ok {
			visible = append(visible, t)
		}
	}
	return Projection{Employees: members, Tickets: visible}
}

// Columns holds tickets split into the three status columns.
type Columns struct {
	Todo       []ticket.Ticket
	InProgress []ticket.Ticket
	Done       []ticket.Ticket
}

// SplitByStatus distributes tickets into status columns, preserving order.
func SplitByStatus(tickets []ticket.Ticket) Columns {
	var c Columns
	for _, t := range tickets {
		switch t.Status {
		case ticket.StatusTodo:
			c.Todo = append(c.Todo, t)
		case ticket.StatusInProgress:
			c.InProgress = append(c.InProgress, t)
		case ticket.StatusDone:
			c.Done = append(c.Done, t)
		}
	}
	return c
}

// AssigneeGroup is one employee's slice of the Scrum Master board.
type AssigneeGroup struct {
	Assignee directory.Employee
	Columns  Columns
}

// GroupByAssignee collapses tickets by assignee (first snapshot seen per ID
// wins) and returns the groups sorted alphabetically by assignee name.
func GroupByAssignee(tickets []ticket.Ticket) []AssigneeGroup {
	byID := make(map[string]*AssigneeGroup)
	var order []string
	for _, t := range tickets {
		g, ok := byID[t.AssignedTo.ID]
		if !ok {
			g = &AssigneeGroup{Assignee: t.AssignedTo}
			byID[t.AssignedTo.ID] = g
			order = append(order, t.AssignedTo.ID)
		}
		switch t.Status {
		case ticket.StatusTodo:
			g.Columns.Todo = append(g.Columns.Todo, t)
		case ticket.StatusInProgress:
			g.Columns.InProgress = append(g.Columns.InProgress, t)
		case ticket.StatusDone:
			g.Columns.Done = append(g.Columns.Done, t)
		}
	}

	groups := make([]AssigneeGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, *byID[id])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Assignee.Name < groups[j].Assignee.Name
	})
	return groups
}

// Progress returns the percentage of tickets that are Done, rounded to the
// nearest integer. An empty set is 0.
func Progress(tickets []ticket.Ticket) int {
	if len(tickets) == 0 {
		return 0
	}
	done := 0
	for _, t := range tickets {
		if t.Status == ticket.StatusDone {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tickets)) * 100))
}
