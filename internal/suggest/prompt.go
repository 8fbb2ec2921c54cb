package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
)

// BuildPrompt renders the task-generation instructions for the AI
// collaborator: the current departments with their specialists, each
// specialist's role, and the project description to break down.
func BuildPrompt(description string, departments []directory.Department, today time.Time) string {
	roster, _ := json.MarshalIndent(rosterView(departments), "", "  ")

	var roles strings.Builder
	for i, dept := range departments {
		if i > 0 {
			roles.WriteString("\n\n")
		}
		fmt.Fprintf(&roles, "Department '%s':\n", dept.Name)
		for _, m := range dept.Members {
			fmt.Fprintf(&roles, "- %s (ID: %s): Specialist for %s.\n", m.Name, m.ID, m.Role)
		}
	}

	return fmt.Sprintf(`You are an expert Scrum Master and IT Project Manager. Your task is to analyze a high-level project description and break it down into smaller, actionable user stories/tickets for a Scrum board. You must delegate these tasks to the rightful person in charge based on their specific specialty within their department.

Here are the available departments and their specialist members:
"""
%s
"""

Here is a detailed breakdown of each specialist's role:
"""
%s
"""

Based on the following project description, generate a list of tasks. For each task, you must provide:
1. A clear 'title'.
2. A detailed 'description' of the work required.
3. The most appropriate 'suggestedDepartment' based on the specialty required.
4. The ID of the person in charge ('suggestedAssigneeId'). This ID MUST match the person responsible for that specialty.
5. A reasonable 'suggestedDueDate' in 'YYYY-MM-DD' format, based on today's date: %s.
6. A 'priority' level ('Low', 'Medium', or 'High') based on the task's perceived urgency and importance to the overall project.
7. An estimate for 'storyPoints'. This should be an integer from the Fibonacci sequence (1, 2, 3, 5, 8, 13) representing the complexity and effort.

Project Description:
"""
%s
"""

Rigorously follow the specialties when assigning tasks. Provide your output as a JSON array of objects, strictly following the defined schema.`,
		roster, roles.String(), today.Format("2006-01-02"), description)
}

type rosterMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type rosterDepartment struct {
	Name    string         `json:"name"`
	Members []rosterMember `json:"members"`
}

func rosterView(departments []directory.Department) []rosterDepartment {
	out := make([]rosterDepartment, 0, len(departments))
	for _, d := range departments {
		members := make([]rosterMember, 0, len(d.Members))
		for _, m := range d.Members {
			members = append(members, rosterMember{ID: m.ID, Name: m.Name, Role: m.Role})
		}
		out = append(out, rosterDepartment{Name: d.Name, Members: members})
	}
	return out
}
