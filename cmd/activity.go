package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the comment feed, newest first",
	RunE:  runActivity,
}

func init() {
	rootCmd.AddCommand(activityCmd)
}

func runActivity(cmd *cobra.Command, _ []string) error {
	entries, err := apiClient().Activity(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  %s\n",
			mutedStyle.Render(e.Comment.Timestamp.Format("2006-01-02 15:04")),
			headerStyle.Render(e.TicketTitle),
			mutedStyle.Render(fmt.Sprintf("%s → %s", e.Comment.FromStatus, e.Comment.ToStatus)))
		fmt.Printf("    %s: %s\n", e.Comment.Author, e.Comment.Text)
	}
	return nil
}
