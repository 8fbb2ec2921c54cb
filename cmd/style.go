package cmd

import (
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusTodoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1)
	statusInProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	statusDoneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("28")).Padding(0, 1)

	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func statusBadge(s ticket.Status) string {
	switch s {
	case ticket.StatusInProgress:
		return statusInProgressStyle.Render(string(s))
	case ticket.StatusDone:
		return statusDoneStyle.Render(string(s))
	default:
		return statusTodoStyle.Render(string(s))
	}
}

func priorityBadge(p ticket.Priority) string {
	switch p {
	case ticket.PriorityHigh:
		return priorityHighStyle.Render(string(p))
	case ticket.PriorityLow:
		return priorityLowStyle.Render(string(p))
	default:
		return priorityMediumStyle.Render(string(p))
	}
}
