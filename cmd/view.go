package cmd

import (
	"fmt"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select <department>",
	Short: "Filter the board to one department (or \"All Teams\")",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelect,
}

var viewCmd = &cobra.Command{
	Use:   "view <employee-id>",
	Short: "View the board as one employee (or \"Scrum Master\")",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(viewCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	if err := apiClient().SelectDepartment(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Filter: %s (view reset to %s)\n", args[0], board.ViewScrumMaster)
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	if err := apiClient().SetView(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Viewing as %s\n", args[0])
	return nil
}
