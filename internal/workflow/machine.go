package workflow

import (
	"fmt"
	"slices"
	"strings"

	"github.com/boozedog/smoovboard/internal/ticket"
)

// transitions defines the valid single-step status transitions. There is no
// direct To Do ↔ Done edge; a ticket always passes through In Progress.
var transitions = map[ticket.Status][]ticket.Status{
	ticket.StatusTodo:       {ticket.StatusInProgress},
	ticket.StatusInProgress: {ticket.StatusTodo, ticket.StatusDone},
	ticket.StatusDone:       {ticket.StatusInProgress},
}

// CanTransition returns true if the transition from → to is valid.
func CanTransition(from, to ticket.Status) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	return slices.Contains(allowed, to)
}

// ValidateTransition checks if the transition is valid and returns an error
// with guidance if not.
func ValidateTransition(from, to ticket.Status) error {
	if from == to {
		return fmt.Errorf("ticket is already %s", from)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("cannot move from %s to %s", from, to)
	}
	return nil
}

// Next returns the forward neighbor of a status, or false at the end.
func Next(s ticket.Status) (ticket.Status, bool) {
	switch s {
	case ticket.StatusTodo:
		return ticket.StatusInProgress, true
	case ticket.StatusInProgress:
		return ticket.StatusDone, true
	default:
		return "", false
	}
}

// Prev returns the backward neighbor of a status, or false at the start.
func Prev(s ticket.Status) (ticket.Status, bool) {
	switch s {
	case ticket.StatusDone:
		return ticket.StatusInProgress, true
	case ticket.StatusInProgress:
		return ticket.StatusTodo, true
	default:
		return "", false
	}
}

// StatusFromAlias resolves status aliases to canonical status values.
func StatusFromAlias(s string) (ticket.Status, error) {
	aliases := map[string]ticket.Status{
		"todo":        ticket.StatusTodo,
		"to-do":       ticket.StatusTodo,
		"to do":       ticket.StatusTodo,
		"backlog":     ticket.StatusTodo,
		"in-progress": ticket.StatusInProgress,
		"in progress": ticket.StatusInProgress,
		"inprogress":  ticket.StatusInProgress,
		"start":       ticket.StatusInProgress,
		"begin":       ticket.StatusInProgress,
		"done":        ticket.StatusDone,
		"complete":    ticket.StatusDone,
		"finish":      ticket.StatusDone,
	}

	if status, ok := aliases[strings.ToLower(s)]; ok {
		return status, nil
	}

	// Try as canonical status
	status := ticket.Status(s)
	if ticket.ValidStatuses[status] {
		return status, nil
	}

	return "", fmt.Errorf("unknown status %q — use one of: todo, in-progress, done", s)
}
