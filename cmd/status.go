package cmd

import (
	"fmt"
	"strings"

	"github.com/boozedog/smoovboard/internal/workflow"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <ticket-id> <status>",
	Short: "Move a ticket to a new column",
	Long:  `Moves a ticket one step through the workflow. Every move requires a comment explaining it; the comment is recorded on the ticket with the from and to columns.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

var statusComment string

func init() {
	statusCmd.Flags().StringVarP(&statusComment, "comment", "m", "", "mandatory comment explaining the move")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	target, err := workflow.StatusFromAlias(strings.ToLower(args[1]))
	if err != nil {
		return err
	}
	if strings.TrimSpace(statusComment) == "" {
		return fmt.Errorf("a comment is required: pass one with -m")
	}

	tk, err := apiClient().SetStatus(cmd.Context(), args[0], target, statusComment)
	if err != nil {
		return err
	}
	fmt.Printf("%s: → %s\n", tk.ID, tk.Status)
	return nil
}
