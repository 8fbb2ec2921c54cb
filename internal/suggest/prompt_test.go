package suggest

import (
	"strings"
	"testing"
	"time"
)

func TestBuildPrompt(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	prompt := BuildPrompt("Launch the customer portal", validateDepartments, today)

	for _, want := range []string{
		"Launch the customer portal",
		"2026-08-29",
		`"id": "alice-1"`,
		"Department 'Design':",
		"- Cara Wu (ID: cara-3): Specialist for",
		"suggestedAssigneeId",
		"Fibonacci",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
