package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "List pending AI suggestions",
	RunE:  runSuggestions,
}

var acceptCmd = &cobra.Command{
	Use:   "accept <suggestion-id>",
	Short: "Promote a pending suggestion into a ticket",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccept,
}

var discardCmd = &cobra.Command{
	Use:   "discard <suggestion-id>",
	Short: "Drop a pending suggestion",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiscard,
}

func init() {
	rootCmd.AddCommand(suggestionsCmd)
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(discardCmd)
}

func runSuggestions(cmd *cobra.Command, _ []string) error {
	tasks, err := apiClient().Suggestions(cmd.Context())
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No pending suggestions. Run `smoovboard analyze` first.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, task := range tasks {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			task.ID, truncate(task.Title, 40), task.SuggestedDepartment, task.SuggestedAssigneeID, task.Priority, task.StoryPoints); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runAccept(cmd *cobra.Command, args []string) error {
	tk, err := apiClient().AcceptSuggestion(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Created %s: %s → %s\n", tk.ID, tk.Title, tk.AssignedTo.Name)
	return nil
}

func runDiscard(cmd *cobra.Command, args []string) error {
	if err := apiClient().DiscardSuggestion(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Discarded %s\n", args[0])
	return nil
}
