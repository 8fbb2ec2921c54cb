package suggest

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/ticket"
)

// Validate cross-checks raw proposals against the current directory and
// drops any that fail. A dropped proposal is logged, not surfaced — a
// partial result is still a success. Survivors get pending-pool IDs.
func Validate(proposals []SuggestedTask, departments []directory.Department, now time.Time) []SuggestedTask {
	departmentNames := make(map[string]struct{}, len(departments))
	employeeDepartment := make(map[string]string)
	for _, d := range departments {
		departmentNames[d.Name] = struct{}{}
		for _, m := range d.Members {
			employeeDepartment[m.ID] = d.Name
		}
	}

	accepted := make([]SuggestedTask, 0, len(proposals))
	for i, p := range proposals {
		if reason := check(p, departmentNames, employeeDepartment); reason != "" {
			slog.Warn("dropping invalid AI proposal", "title", p.Title, "reason", reason)
			continue
		}
		p.ID = fmt.Sprintf("sg_%d-%d", now.UnixMilli(), i)
		accepted = append(accepted, p)
	}
	return accepted
}

func check(p SuggestedTask, departmentNames map[string]struct{}, employeeDepartment map[string]string) string {
	if _, ok := departmentNames[p.SuggestedDepartment]; !ok {
		return "unknown department"
	}
	dept, ok := employeeDepartment[p.SuggestedAssigneeID]
	if !ok {
		return "unknown assignee"
	}
	if dept != p.SuggestedDepartment {
		return "assignee not in suggested department"
	}
	if !ticket.DatePattern.MatchString(p.SuggestedDueDate) {
		return "malformed due date"
	}
	switch ticket.Priority(p.Priority) {
	case ticket.PriorityLow, ticket.PriorityMedium, ticket.PriorityHigh:
	default:
		return "invalid priority"
	}
	if p.StoryPoints <= 0 {
		return "story points not positive"
	}
	return ""
}
