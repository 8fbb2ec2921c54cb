package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due <ticket-id> <date>",
	Short: "Set a ticket's due date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	RunE:  runDue,
}

func init() {
	rootCmd.AddCommand(dueCmd)
}

func runDue(cmd *cobra.Command, args []string) error {
	tk, err := apiClient().SetDueDate(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s: due %s\n", tk.ID, tk.DueDate)
	return nil
}
