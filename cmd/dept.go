package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deptCmd = &cobra.Command{
	Use:   "dept",
	Short: "Manage departments",
}

var deptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments and their headcount",
	RunE:  runDeptList,
}

var deptAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an empty department",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeptAdd,
}

var deptRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a department, its members and their tickets",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeptRm,
}

var deptRmYes bool

func init() {
	deptRmCmd.Flags().BoolVar(&deptRmYes, "yes", false, "skip the confirmation prompt")
	deptCmd.AddCommand(deptListCmd, deptAddCmd, deptRmCmd)
	rootCmd.AddCommand(deptCmd)
}

func runDeptList(cmd *cobra.Command, _ []string) error {
	departments, err := apiClient().Directory(cmd.Context())
	if err != nil {
		return err
	}
	for _, d := range departments {
		fmt.Printf("%s  %s\n", headerStyle.Render(d.Name), mutedStyle.Render(fmt.Sprintf("%d member(s)", len(d.Members))))
	}
	return nil
}

func runDeptAdd(cmd *cobra.Command, args []string) error {
	if err := apiClient().AddDepartment(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Created department %s\n", args[0])
	return nil
}

func runDeptRm(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !deptRmYes {
		ok, err := confirm(fmt.Sprintf("Remove %s and all of its members' tickets?", name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}
	if err := apiClient().RemoveDepartment(cmd.Context(), name); err != nil {
		return err
	}
	fmt.Printf("Removed department %s\n", name)
	return nil
}
