package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assignCmd = &cobra.Command{
	Use:   "assign <ticket-id> <employee-id>",
	Short: "Reassign a ticket to another employee",
	Args:  cobra.ExactArgs(2),
	RunE:  runAssign,
}

func init() {
	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	tk, err := apiClient().Reassign(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s: assigned to %s\n", tk.ID, tk.AssignedTo.Name)
	return nil
}
