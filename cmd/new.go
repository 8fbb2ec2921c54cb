package cmd

import (
	"fmt"

	"github.com/boozedog/smoovboard/internal/api"
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a ticket manually",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

var (
	newDescription string
	newAssignee    string
	newDue         string
	newPriority    string
	newPoints      int
)

func init() {
	newCmd.Flags().StringVar(&newDescription, "description", "", "ticket description (markdown)")
	newCmd.Flags().StringVar(&newAssignee, "assignee", "", "assignee employee ID (required)")
	newCmd.Flags().StringVar(&newDue, "due", "", "due date, YYYY-MM-DD (required)")
	newCmd.Flags().StringVar(&newPriority, "priority", string(ticket.DefaultPriority), "priority: Low, Medium or High")
	newCmd.Flags().IntVar(&newPoints, "points", 1, "story points")
	_ = newCmd.MarkFlagRequired("assignee")
	_ = newCmd.MarkFlagRequired("due")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	tk, err := apiClient().CreateTicket(cmd.Context(), api.CreateTicketRequest{
		Title:       args[0],
		Description: newDescription,
		AssigneeID:  newAssignee,
		DueDate:     newDue,
		Priority:    ticket.Priority(newPriority),
		StoryPoints: newPoints,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created %s: %s → %s\n", tk.ID, tk.Title, tk.AssignedTo.Name)
	return nil
}
