package suggest

import (
	"testing"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
)

var validateDepartments = []directory.Department{
	{Name: "Software", Members: []directory.Employee{
		{ID: "alice-1", Name: "Alice Ray"},
	}},
	{Name: "Design", Members: []directory.Employee{
		{ID: "cara-3", Name: "Cara Wu"},
	}},
}

func validProposal() SuggestedTask {
	return SuggestedTask{
		Title:               "Build login",
		Description:         "Email and password form",
		SuggestedDepartment: "Software",
		SuggestedAssigneeID: "alice-1",
		SuggestedDueDate:    "2026-09-15",
		Priority:            "High",
		StoryPoints:         3,
	}
}

func TestValidateAcceptsAndAssignsIDs(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := Validate([]SuggestedTask{validProposal(), validProposal()}, validateDepartments, now)
	if len(got) != 2 {
		t.Fatalf("accepted = %d, want 2", len(got))
	}
	if got[0].ID != "sg_1700000000000-0" || got[1].ID != "sg_1700000000000-1" {
		t.Errorf("IDs = %q, %q", got[0].ID, got[1].ID)
	}
}

func TestValidateDropsInvalid(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*SuggestedTask)
	}{
		{"unknown department", func(p *SuggestedTask) { p.SuggestedDepartment = "Nowhere" }},
		{"unknown assignee", func(p *SuggestedTask) { p.SuggestedAssigneeID = "ghost-9" }},
		{"assignee in wrong department", func(p *SuggestedTask) { p.SuggestedAssigneeID = "cara-3" }},
		{"malformed due date", func(p *SuggestedTask) { p.SuggestedDueDate = "next Tuesday" }},
		{"invalid priority", func(p *SuggestedTask) { p.Priority = "Urgent" }},
		{"zero story points", func(p *SuggestedTask) { p.StoryPoints = 0 }},
		{"negative story points", func(p *SuggestedTask) { p.StoryPoints = -2 }},
	}

	for _, tt := range mutations {
		bad := validProposal()
		tt.mutate(&bad)

		// A bad proposal is dropped; the good one next to it survives.
		got := Validate([]SuggestedTask{bad, validProposal()}, validateDepartments, time.Now())
		if len(got) != 1 {
			t.Errorf("%s: accepted = %d, want 1", tt.name, len(got))
		}
	}
}

func TestValidateEmptyInput(t *testing.T) {
	got := Validate(nil, validateDepartments, time.Now())
	if len(got) != 0 {
		t.Errorf("accepted = %d, want 0", len(got))
	}
}
