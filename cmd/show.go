package cmd

import (
	"fmt"

	"github.com/boozedog/smoovboard/internal/mailto"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <ticket-id>",
	Short: "Show full ticket detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showMailto bool

func init() {
	showCmd.Flags().BoolVar(&showMailto, "mailto", false, "print a mailto link for the assignee")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	tk, err := apiClient().Ticket(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", headerStyle.Render(tk.Title), statusBadge(tk.Status))
	fmt.Printf("%s\n\n", mutedStyle.Render(tk.ID))
	if tk.Description != "" {
		fmt.Printf("%s\n\n", tk.Description)
	}
	fmt.Printf("assignee:  %s (%s, %s)\n", tk.AssignedTo.Name, tk.AssignedTo.Role, tk.SuggestedDepartment)
	fmt.Printf("priority:  %s\n", priorityBadge(tk.Priority))
	fmt.Printf("points:    %d\n", tk.StoryPoints)
	fmt.Printf("due:       %s\n", tk.DueDate)

	if showMailto {
		fmt.Printf("mailto:    %s\n", mailto.ComposeLink(tk))
	}

	if len(tk.Comments) > 0 {
		fmt.Printf("\n%s\n", headerStyle.Render("Comments"))
		for _, c := range tk.Comments {
			fmt.Printf("  %s %s (%s → %s)\n", c.Author, mutedStyle.Render(c.Timestamp.Format("2006-01-02 15:04")), c.FromStatus, c.ToStatus)
			fmt.Printf("    %s\n", c.Text)
		}
	}
	return nil
}
