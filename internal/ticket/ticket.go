package ticket

import (
	"regexp"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
)

// Status represents the board column a ticket sits in.
type Status string

const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// ValidStatuses is the set of all valid status values.
var ValidStatuses = map[Status]bool{
	StatusTodo:       true,
	StatusInProgress: true,
	StatusDone:       true,
}

// Priority represents a ticket priority.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// DefaultPriority is Medium.
const DefaultPriority = PriorityMedium

// ValidPriorities is the set of all valid priority values.
var ValidPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// DatePattern matches the YYYY-MM-DD due-date format.
var DatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Comment is an append-only audit record created exactly once per status
// transition. Comments are never edited or deleted.
type Comment struct {
	Author     string    `json:"author"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	FromStatus Status    `json:"fromStatus"`
	ToStatus   Status    `json:"toStatus"`
}

// Ticket is a unit of work on the board. AssignedTo is an embedded snapshot
// of the employee at assignment time; it is refreshed only by the
// edit-employee and reassign operations.
type Ticket struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	SuggestedDepartment string             `json:"suggestedDepartment"`
	SuggestedAssigneeID string             `json:"suggestedAssigneeId"`
	SuggestedDueDate    string             `json:"suggestedDueDate"`
	Priority            Priority           `json:"priority"`
	StoryPoints         int                `json:"storyPoints"`
	AssignedTo          directory.Employee `json:"assignedTo"`
	DueDate             string             `json:"dueDate"`
	Status              Status             `json:"status"`
	Comments            []Comment          `json:"comments"`
	Created             time.Time          `json:"created"`
}

func (t *Ticket) clone() Ticket {
	out := *t
	out.Comments = make([]Comment, len(t.Comments))
	copy(out.Comments, t.Comments)
	return out
}
