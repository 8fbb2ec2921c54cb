package cmd

import (
	"fmt"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the board grouped by assignee",
	RunE:  runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, _ []string) error {
	snapshot, err := apiClient().Board(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n",
		headerStyle.Render(snapshot.SelectedDepartment),
		mutedStyle.Render("viewing as "+snapshot.CurrentView))

	proj := board.Project(snapshot.Departments, snapshot.Tickets, snapshot.SelectedDepartment)
	if len(proj.Tickets) == 0 {
		fmt.Println("\nNo tickets on the board. Run `smoovboard analyze` or `smoovboard new` to create some.")
		return nil
	}

	fmt.Printf("%s %d%%\n", mutedStyle.Render("progress:"), board.Progress(proj.Tickets))

	for _, group := range board.GroupByAssignee(proj.Tickets) {
		fmt.Printf("\n%s %s\n", headerStyle.Render(group.Assignee.Name), mutedStyle.Render(group.Assignee.Role))
		for _, col := range []struct {
			label   string
			tickets []ticket.Ticket
		}{
			{"To Do", group.Columns.Todo},
			{"In Progress", group.Columns.InProgress},
			{"Done", group.Columns.Done},
		} {
			if len(col.tickets) == 0 {
				continue
			}
			fmt.Printf("  %s\n", col.label)
			for _, t := range col.tickets {
				fmt.Printf("    %s  %s  %s  due %s\n", t.ID, truncate(t.Title, 50), priorityBadge(t.Priority), t.DueDate)
			}
		}
	}
	return nil
}
