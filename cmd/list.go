package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/boozedog/smoovboard/internal/workflow"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets with optional filters",
	RunE:  runList,
}

var (
	listStatus   string
	listAssignee string
)

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (todo, in-progress, done)")
	listCmd.Flags().StringVar(&listAssignee, "assignee", "", "filter by assignee employee ID")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	tickets, err := apiClient().Tickets(cmd.Context())
	if err != nil {
		return err
	}

	if listStatus != "" {
		status, err := workflow.StatusFromAlias(listStatus)
		if err != nil {
			return err
		}
		tickets = filterTickets(tickets, func(t ticket.Ticket) bool { return t.Status == status })
	}
	if listAssignee != "" {
		tickets = filterTickets(tickets, func(t ticket.Ticket) bool { return t.AssignedTo.ID == listAssignee })
	}

	if len(tickets) == 0 {
		fmt.Println("No tickets found.")
		return nil
	}

	// Active work first, then by due date.
	sort.SliceStable(tickets, func(i, j int) bool {
		wi, wj := listStatusWeight(tickets[i].Status), listStatusWeight(tickets[j].Status)
		if wi != wj {
			return wi < wj
		}
		return tickets[i].DueDate < tickets[j].DueDate
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, tk := range tickets {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tk.ID, truncate(tk.Title, 40), statusBadge(tk.Status), priorityBadge(tk.Priority), tk.AssignedTo.Name, tk.DueDate); err != nil {
			return err
		}
	}
	return w.Flush()
}

func filterTickets(tickets []ticket.Ticket, keep func(ticket.Ticket) bool) []ticket.Ticket {
	var out []ticket.Ticket
	for _, t := range tickets {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// listStatusWeight returns sort weight: lower = higher in list.
func listStatusWeight(s ticket.Status) int {
	switch s {
	case ticket.StatusInProgress:
		return 0
	case ticket.StatusTodo:
		return 1
	case ticket.StatusDone:
		return 2
	default:
		return 3
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
