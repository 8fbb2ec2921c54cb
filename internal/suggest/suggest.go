// Package suggest turns a free-text project description into validated
// ticket proposals via an external generative-AI collaborator.
package suggest

import "errors"

// SuggestedTask is an AI proposal that has not yet been accepted onto the
// board. It exists only between the AI response and either promotion to a
// ticket or discard.
type SuggestedTask struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	SuggestedDepartment string `json:"suggestedDepartment"`
	SuggestedAssigneeID string `json:"suggestedAssigneeId"`
	SuggestedDueDate    string `json:"suggestedDueDate"`
	Priority            string `json:"priority"`
	StoryPoints         int    `json:"storyPoints"`
}

var (
	// ErrMissingAPIKey is returned when no Gemini credential is configured.
	// The message is surfaced to the user verbatim.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable not set. Please configure it in your deployment environment.")

	// ErrNotFound is returned when a suggestion ID is not in the pending
	// pool.
	ErrNotFound = errors.New("suggestion not found")
)
