package ticket

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
)

var (
	// ErrNotFound is returned when a ticket ID does not exist.
	ErrNotFound = errors.New("ticket not found")

	// ErrEmptyComment is returned when a status change is confirmed without
	// a comment.
	ErrEmptyComment = errors.New("a comment is required to change status")

	// ErrStaleTransition is returned when the ticket's status no longer
	// matches the transition's from-status.
	ErrStaleTransition = errors.New("ticket status changed since the transition was requested")

	// ErrInvalidDueDate is returned when a due date is not YYYY-MM-DD.
	ErrInvalidDueDate = errors.New("due date must be YYYY-MM-DD")
)

// Store holds all tickets in memory. Reads return copies.
type Store struct {
	mu      sync.RWMutex
	tickets []*Ticket
}

// NewStore creates an empty ticket store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts a ticket, generating a tk_ ID when none is set.
func (s *Store) Add(t Ticket) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		existing := make(map[string]bool, len(s.tickets))
		for _, tk := range s.tickets {
			existing[tk.ID] = true
		}
		id, err := GenerateID(existing)
		if err != nil {
			return Ticket{}, fmt.Errorf("generate ID: %w", err)
		}
		t.ID = id
	}
	if t.Comments == nil {
		t.Comments = []Comment{}
	}

	stored := t.clone()
	s.tickets = append(s.tickets, &stored)
	return t, nil
}

// Get retrieves a ticket by ID.
func (s *Store) Get(id string) (Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t.clone(), nil
		}
	}
	return Ticket{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns copies of all tickets in insertion order.
func (s *Store) List() []Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t.clone())
	}
	return out
}

// ApplyStatusChange sets the ticket's status and appends the mandatory audit
// comment in one step — both happen or neither does. The caller is expected
// to have validated the transition itself; this method still rejects an
// empty comment and a from-status that no longer matches.
func (s *Store) ApplyStatusChange(id string, from, to Status, commentText, author string, now time.Time) (Ticket, error) {
	if strings.TrimSpace(commentText) == "" {
		return Ticket{}, ErrEmptyComment
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.ID != id {
			continue
		}
		if t.Status != from {
			return Ticket{}, fmt.Errorf("%w: ticket is %s, expected %s", ErrStaleTransition, t.Status, from)
		}
		t.Comments = append(t.Comments, Comment{
			Author:     author,
			Text:       commentText,
			Timestamp:  now,
			FromStatus: from,
			ToStatus:   to,
		})
		t.Status = to
		return t.clone(), nil
	}
	return Ticket{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// UpdateDueDate sets both dueDate and suggestedDueDate; the two fields stay
// equal from this point on.
func (s *Store) UpdateDueDate(id, newDueDate string) (Ticket, error) {
	if !DatePattern.MatchString(newDueDate) {
		return Ticket{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, newDueDate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.ID == id {
			t.DueDate = newDueDate
			t.SuggestedDueDate = newDueDate
			return t.clone(), nil
		}
	}
	return Ticket{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Reassign replaces the assignee snapshot and the suggested assignee and
// department fields.
func (s *Store) Reassign(id string, assignee directory.Employee, departmentName string) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.ID == id {
			t.AssignedTo = assignee
			t.SuggestedAssigneeID = assignee.ID
			t.SuggestedDepartment = departmentName
			return t.clone(), nil
		}
	}
	return Ticket{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// RefreshAssignee updates the embedded snapshot on every ticket assigned to
// the employee. Used when an employee record is edited.
func (s *Store) RefreshAssignee(updated directory.Employee, departmentName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, t := range s.tickets {
		if t.AssignedTo.ID == updated.ID {
			t.AssignedTo = updated
			t.SuggestedDepartment = departmentName
			count++
		}
	}
	return count
}

// Remove deletes a ticket unconditionally.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tickets {
		if t.ID == id {
			s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// RemoveByAssignees deletes every ticket whose assignee is in the given ID
// set and returns how many were removed. Used for directory cascades.
func (s *Store) RemoveByAssignees(ids []string) int {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tickets[:0]
	removed := 0
	for _, t := range s.tickets {
		if _, gone := set[t.AssignedTo.ID]; gone {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tickets = kept
	return removed
}
